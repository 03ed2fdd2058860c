package builder

import (
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

// outlierSeriesName names the scatter series holding boxplot outliers.
const outlierSeriesName = "Outliers"

// buildBoxplot draws one box per selected column, with outliers overlaid as
// a scatter series when any exist.
func buildBoxplot(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	summaries, outliers := SummarizeColumns(ds, c.Ys)

	categories := make([]string, len(c.Ys))
	for i, col := range c.Ys {
		categories[i] = ds.HeaderName(col)
	}

	spec, err := c.newSpec()
	if err != nil {
		return nil, err
	}
	if spec.Tooltip, err = c.tooltip(models.Tooltip{Trigger: "item"}); err != nil {
		return nil, err
	}
	if spec.Grid, err = c.grid(models.Grid{Top: c.gridTop, Bottom: gridBottom}); err != nil {
		return nil, err
	}
	spec.XAxis, err = c.xAxis(models.Axis{
		Type: "category",
		Data: categories,
		Name: c.Settings.XAxisName,
	})
	if err != nil {
		return nil, err
	}
	spec.YAxis, err = c.yAxis(models.Axis{
		Type:      "value",
		Name:      c.Settings.YAxisName,
		SplitLine: theme.GridSplitLine(c.Settings.ShowGrid),
	})
	if err != nil {
		return nil, err
	}

	boxes := make([]models.Datum, len(summaries))
	for i, s := range summaries {
		boxes[i] = models.Tuple(s[:]...)
	}
	spec.Series = []models.Series{{
		Type: "boxplot",
		Data: boxes,
		ItemStyle: &models.ItemStyle{
			Color:       "#fff",
			BorderColor: "#000",
			BorderWidth: models.Float(1.5),
		},
		Emphasis: &models.Emphasis{
			ItemStyle: &models.ItemStyle{BorderWidth: models.Float(2)},
		},
	}}

	if len(outliers) > 0 {
		points := make([]models.Datum, len(outliers))
		for i, o := range outliers {
			points[i] = models.Tuple(float64(o.Category), o.Value)
		}
		spec.Series = append(spec.Series, models.Series{
			Name:       outlierSeriesName,
			Type:       "scatter",
			Data:       points,
			SymbolSize: models.Float(5),
			ItemStyle: &models.ItemStyle{
				Color:       "#e74c3c",
				BorderColor: "#000",
				BorderWidth: models.Float(0.5),
			},
		})
	}
	return spec, nil
}
