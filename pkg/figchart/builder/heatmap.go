package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

const (
	// heatmapLabelLimit is the cell count from which cell labels are hidden.
	heatmapLabelLimit = 100
	heatmapGridExtra  = 10
	heatmapGridBottom = 65
)

// buildHeatmap places one cell per row on an X-by-Y category grid, colored
// through a visual map spanning the value range.
func buildHeatmap(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	grid := IndexHeatmap(ds, c.X, c.Ys[0], c.Value)

	spec, err := c.newSpec()
	if err != nil {
		return nil, err
	}
	// Cell names carry the "x, y: value" text, so the tooltip reads {b}.
	if spec.Tooltip, err = c.tooltip(models.Tooltip{Trigger: "item", Position: "top", Formatter: "{b}"}); err != nil {
		return nil, err
	}
	if spec.Grid, err = c.grid(models.Grid{Top: c.gridTop + heatmapGridExtra, Bottom: heatmapGridBottom}); err != nil {
		return nil, err
	}
	spec.XAxis, err = c.xAxis(models.Axis{
		Type:      "category",
		Data:      grid.XCategories,
		Name:      c.Settings.XAxisName,
		SplitArea: &models.SplitArea{Show: models.Bool(true)},
	})
	if err != nil {
		return nil, err
	}
	spec.YAxis, err = c.yAxis(models.Axis{
		Type:      "category",
		Data:      grid.YCategories,
		Name:      c.Settings.YAxisName,
		SplitArea: &models.SplitArea{Show: models.Bool(true)},
	})
	if err != nil {
		return nil, err
	}

	spec.VisualMap = &models.VisualMap{
		Min:        models.Value(grid.Min),
		Max:        models.Value(grid.Max),
		Calculable: true,
		Orient:     "horizontal",
		Left:       "center",
		Bottom:     4,
		InRange:    &models.InRange{Color: append([]string(nil), theme.HeatmapRamp...)},
		TextStyle:  &models.TextStyle{FontFamily: c.font, Color: "#000", FontSize: 11},
	}

	data := make([]models.Datum, len(grid.Cells))
	for i, cell := range grid.Cells {
		name := fmt.Sprintf("%s, %s: %s", grid.XCategories[cell.X], grid.YCategories[cell.Y], formatValue(cell.Value))
		data[i] = models.Named(name, float64(cell.X), float64(cell.Y), cell.Value)
	}

	spec.Series = []models.Series{{
		Name: ds.HeaderName(c.Value),
		Type: "heatmap",
		Data: data,
		Label: &models.Label{
			Show:       models.Bool(len(data) < heatmapLabelLimit),
			FontSize:   10,
			FontFamily: c.font,
			Color:      "#000",
		},
		Emphasis: &models.Emphasis{
			ItemStyle: &models.ItemStyle{ShadowBlur: 6, ShadowColor: "rgba(0,0,0,0.3)"},
		},
	}}
	return spec, nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
