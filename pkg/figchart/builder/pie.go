package builder

import (
	"math"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// buildPie draws a ring of the positive values in the value column, labelled
// by the label column. Pie charts have no axes and are never framed.
func buildPie(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	spec, err := c.newSpec()
	if err != nil {
		return nil, err
	}

	var (
		data  []models.Datum
		names []string
	)
	for i := range ds.Rows {
		v := ToNumber(ds.Cell(i, c.Value))
		if math.IsNaN(v) || v <= 0 {
			continue
		}
		name := models.CellString(ds.Cell(i, c.Label))
		data = append(data, models.Named(name, v))
		names = append(names, name)
	}

	if spec.Tooltip, err = c.tooltip(models.Tooltip{Trigger: "item", Formatter: "{b}: {c} ({d}%)"}); err != nil {
		return nil, err
	}

	center := []string{"50%", "55%"}
	if c.Settings.ShowLegend {
		center = []string{"40%", "55%"}
		legend, err := merge(c.style.Legend, models.Legend{
			Data:   names,
			Orient: "vertical",
			Right:  models.Px(20),
			Top:    models.Keyword("center"),
		})
		if err != nil {
			return nil, c.fail(err)
		}
		spec.Legend = &legend
	}

	formatter := "{b}\n{d}%"
	if c.Settings.ShowDataLabel {
		formatter = "{b}\n{c} ({d}%)"
	}
	if data == nil {
		data = []models.Datum{}
	}

	spec.Series = []models.Series{{
		Name:              ds.HeaderName(c.Value),
		Type:              "pie",
		Data:              data,
		Radius:            []string{"35%", "65%"},
		Center:            center,
		AvoidLabelOverlap: models.Bool(true),
		ItemStyle:         &models.ItemStyle{BorderColor: "#fff", BorderWidth: models.Float(2)},
		Label: &models.Label{
			Show:       models.Bool(true),
			FontFamily: c.font,
			FontSize:   c.Settings.AxisFontSize,
			Color:      "#000",
			Formatter:  formatter,
		},
		Emphasis: &models.Emphasis{
			Label: &models.Label{FontSize: c.Settings.AxisFontSize + 2, FontWeight: "bold"},
		},
	}}
	return spec, nil
}
