// Package figchart loads tabular data and turns it into publication-style
// chart specifications.
package figchart

import "github.com/ukaji3/figchart-go/pkg/figchart/parser"

// Options configures how a dataset is loaded.
type Options struct {
	// Format overrides the format implied by the file extension.
	Format parser.Format
	// Sheet selects the worksheet of an xlsx workbook; empty means the first.
	Sheet string
	// Transpose swaps rows and columns after decoding.
	// If nil, the dataset is used as decoded.
	Transpose *bool
}

// DefaultOptions returns default load options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldTranspose returns whether to transpose the decoded dataset.
func (o Options) ShouldTranspose() bool {
	if o.Transpose != nil {
		return *o.Transpose
	}
	return false
}

// FormatFor returns the format to decode path with.
func (o Options) FormatFor(path string) (parser.Format, bool) {
	if o.Format != "" {
		return parser.ParseFormat(string(o.Format))
	}
	return parser.FormatFromPath(path)
}
