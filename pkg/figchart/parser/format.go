// Package parser decodes tabular files into datasets.
package parser

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// Format identifies an input encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatTXT  Format = "txt"
	FormatXLSX Format = "xlsx"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatTSV, FormatTXT, FormatXLSX, FormatJSON}

// ParseFormat maps a format name or file extension (with or without the
// leading dot) to a Format. "xls" is read as xlsx.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "csv":
		return FormatCSV, true
	case "tsv":
		return FormatTSV, true
	case "txt":
		return FormatTXT, true
	case "xlsx", "xls":
		return FormatXLSX, true
	case "json":
		return FormatJSON, true
	}
	return "", false
}

// FormatFromPath returns the format implied by a file name's extension.
func FormatFromPath(path string) (Format, bool) {
	return ParseFormat(filepath.Ext(path))
}

// Parse decodes data in the given format. sheet selects the worksheet for
// xlsx input; empty means the first sheet.
func Parse(data []byte, format Format, sheet string) (*models.Dataset, error) {
	switch format {
	case FormatCSV:
		return ParseDelimited(data, FormatCSV, ',')
	case FormatTSV:
		return ParseDelimited(data, FormatTSV, '\t')
	case FormatTXT:
		return ParseTXT(data)
	case FormatXLSX:
		return ParseXLSX(data, sheet)
	case FormatJSON:
		return ParseJSON(data)
	}
	return nil, newParseError(format, "unsupported format", nil)
}
