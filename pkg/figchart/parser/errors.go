package parser

import "fmt"

// ParseError reports content that could not be decoded into a dataset.
type ParseError struct {
	Format Format
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Format, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(format Format, reason string, err error) *ParseError {
	return &ParseError{Format: format, Reason: reason, Err: err}
}

// errTooShort is the reason given for input without a header and a data row.
const errTooShort = "need a header row and at least one data row"
