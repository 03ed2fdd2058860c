package parser

import (
	"encoding/csv"
	"strings"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// DetectDelimiter picks the delimiter of plain text from its first line:
// tab, then semicolon, then pipe, defaulting to comma.
func DetectDelimiter(text string) rune {
	first := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first = text[:i]
	}
	for _, d := range []rune{'\t', ';', '|'} {
		if strings.ContainsRune(first, d) {
			return d
		}
	}
	return ','
}

// ParseTXT decodes plain text with an auto-detected delimiter.
func ParseTXT(data []byte) (*models.Dataset, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, newParseError(FormatTXT, "decode text", err)
	}
	return parseDelimitedText(text, FormatTXT, DetectDelimiter(text))
}

// ParseDelimited decodes delimiter-separated text. Quoted fields may span
// lines; rows may have differing lengths.
func ParseDelimited(data []byte, format Format, delim rune) (*models.Dataset, error) {
	text, err := DecodeText(data)
	if err != nil {
		return nil, newParseError(format, "decode text", err)
	}
	return parseDelimitedText(text, format, delim)
}

func parseDelimitedText(text string, format Format, delim rune) (*models.Dataset, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, newParseError(format, "malformed content", err)
	}
	return toDataset(records, format)
}
