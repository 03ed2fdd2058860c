package figchart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/figchart-go/pkg/figchart/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input encoding is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported format")

// LoadError represents an error while loading a dataset.
type LoadError struct {
	Path   string
	Format parser.Format
	Err    error
}

func (e *LoadError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("load %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %q (%s): %v", e.Path, e.Format, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path string, format parser.Format, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Format: format,
		Err:    err,
	}
}
