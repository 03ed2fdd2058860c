package output

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func TestToJSON(t *testing.T) {
	spec := &models.ChartSpec{
		Tooltip: &models.Tooltip{Formatter: "{b}: {c} ({d}%)", Show: models.Bool(false)},
		Series: []models.Series{{
			Type: "line",
			Data: []models.Datum{models.Scalar(1), models.Scalar(math.NaN())},
		}},
	}

	compact, err := ToJSON(spec, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"tooltip": {"show": false, "formatter": "{b}: {c} ({d}%)"},
		"series": [{"type": "line", "data": [1, null]}]
	}`, string(compact))
	assert.NotContains(t, string(compact), "\n")

	pretty, err := ToJSON(spec, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"tooltip\"")
	assert.False(t, strings.HasSuffix(string(pretty), "\n"))
}

func TestWrapPNGAsSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 20))))

	svg, err := WrapPNGAsSVG(buf.Bytes())
	require.NoError(t, err)

	doc := string(svg)
	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.Contains(t, doc, `width="30" height="20"`)
	assert.Contains(t, doc, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(buf.Bytes()))

	_, err = WrapPNGAsSVG([]byte("not a png"))
	assert.Error(t, err)
}
