package figchart

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func TestDecodeSettings_YAML(t *testing.T) {
	s, err := DecodeSettings([]byte(`
chartType: bar
title: Yield
xColumn: region
yColumns: [1, cost]
colorScheme: lancet
showGrid: true
showLegend: false
`))
	require.NoError(t, err)

	assert.Equal(t, models.ChartBar, s.ChartType)
	assert.Equal(t, "Yield", s.Title)
	assert.Equal(t, models.ByName("region"), s.XColumn)
	assert.Equal(t, []models.ColumnRef{models.ByIndex(1), models.ByName("cost")}, s.YColumns)
	assert.Equal(t, "lancet", s.ColorScheme)
	assert.True(t, s.ShowGrid)
	assert.False(t, s.ShowLegend)
	// untouched keys keep their defaults
	assert.Equal(t, models.DefaultAxisFontSize, s.AxisFontSize)
	assert.Equal(t, models.ByIndex(1), s.ValueColumn)
}

func TestDecodeSettings_JSON(t *testing.T) {
	s, err := DecodeSettings([]byte(`{"chartType": "pie", "labelColumn": "fruit", "valueColumn": 2}`))
	require.NoError(t, err)
	assert.Equal(t, models.ChartPie, s.ChartType)
	assert.Equal(t, models.ByName("fruit"), s.LabelColumn)
	assert.Equal(t, models.ByIndex(2), s.ValueColumn)
}

func TestDecodeSettings_Errors(t *testing.T) {
	_, err := DecodeSettings([]byte("titel: typo\n"))
	assert.Error(t, err)

	_, err = DecodeSettings([]byte("chartType: radar\n"))
	assert.Error(t, err)

	s, err := DecodeSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)
}

func TestWriteSettings_RoundTrip(t *testing.T) {
	want := models.DefaultSettings()
	want.Title = "Growth"
	want.YColumns = []models.ColumnRef{models.ByName("height"), models.ByIndex(3)}

	var buf bytes.Buffer
	require.NoError(t, WriteSettings(&buf, want))

	got, err := DecodeSettings(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadSettings_Missing(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, ErrFileNotFound))
}
