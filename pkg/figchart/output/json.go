// Package output writes chart specifications and export wrappers.
package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// ToJSON encodes spec. With pretty set the output is indented by two spaces.
// HTML characters are not escaped, so formatters like "{b}" stay readable.
func ToJSON(spec *models.ChartSpec, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, spec, pretty); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteJSON encodes spec to w followed by a newline.
func WriteJSON(w io.Writer, spec *models.ChartSpec, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(spec)
}
