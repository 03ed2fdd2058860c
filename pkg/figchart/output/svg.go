package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
)

// ExportPixelRatio is the pixel density multiplier rasters are exported at.
const ExportPixelRatio = 3

// WrapPNGAsSVG returns a minimal SVG document embedding a PNG raster as a
// data URI. The document is sized to the image; no vector data is produced.
func WrapPNGAsSVG(pngData []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("read png header: %w", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d">`, cfg.Width, cfg.Height)
	buf.WriteString("\n  ")
	fmt.Fprintf(&buf, `<image width="%d" height="%d" xlink:href="data:image/png;base64,`, cfg.Width, cfg.Height)
	buf.WriteString(base64.StdEncoding.EncodeToString(pngData))
	buf.WriteString(`"/>`)
	buf.WriteString("\n</svg>\n")
	return buf.Bytes(), nil
}
