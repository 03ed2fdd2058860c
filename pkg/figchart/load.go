package figchart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/parser"
)

// Load decodes the dataset stored at path. The format comes from
// opts.Format or the file extension. Any failure returns a *LoadError and
// no dataset, so callers keep whatever dataset they had.
func Load(path string, opts Options) (*models.Dataset, error) {
	format, ok := opts.FormatFor(path)
	if !ok {
		return nil, NewLoadError(path, opts.Format, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, NewLoadError(path, format, ErrFileNotFound)
		}
		return nil, NewLoadError(path, format, err)
	}

	ds, err := Decode(data, format, opts)
	if err != nil {
		return nil, NewLoadError(path, format, err)
	}
	return ds, nil
}

// Decode decodes in-memory data in the given format.
func Decode(data []byte, format parser.Format, opts Options) (*models.Dataset, error) {
	f, ok := parser.ParseFormat(string(format))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	ds, err := parser.Parse(data, f, opts.Sheet)
	if err != nil {
		return nil, err
	}
	if opts.ShouldTranspose() {
		ds = ds.Transpose()
	}
	return ds, nil
}
