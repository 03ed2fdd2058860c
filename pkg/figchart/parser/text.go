package parser

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText returns data as UTF-8 text. A UTF-8 or UTF-16 byte order mark
// selects that encoding; input without a BOM that is not valid UTF-8 is read
// as GB18030, the usual encoding of spreadsheet exports on Chinese systems.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	}
	dec := unicode.BOMOverride(simplifiedchinese.GB18030.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
