package builder

import (
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

// cartesian is the common skeleton of line, bar and scatter charts.
type cartesian struct {
	spec   *models.ChartSpec
	xData  []interface{}
	series []Series
}

func newCartesian(ds *models.Dataset, c *chartContext, tooltip models.Tooltip, legendIcon string) (*cartesian, error) {
	xData, series := ExtractXY(ds, c.X, c.Ys)

	spec, err := c.newSpec()
	if err != nil {
		return nil, err
	}
	if spec.Tooltip, err = c.tooltip(tooltip); err != nil {
		return nil, err
	}
	if spec.Legend, err = c.seriesLegend(seriesNames(series), legendIcon); err != nil {
		return nil, err
	}
	if spec.Grid, err = c.grid(models.Grid{Top: c.gridTop, Bottom: gridBottom}); err != nil {
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
	return &cartesian{spec: spec, xData: xData, series: series}, nil
}

func buildLine(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	cc, err := newCartesian(ds, c, models.Tooltip{Trigger: "axis"}, "roundRect")
	if err != nil {
		return nil, err
	}
	spec := cc.spec

	spec.XAxis, err = c.xAxis(models.Axis{
		Type:        "category",
		Data:        categoryStrings(cc.xData),
		Name:        c.Settings.XAxisName,
		BoundaryGap: models.Bool(false),
		SplitLine:   theme.GridSplitLine(c.Settings.ShowGrid),
	})
	if err != nil {
		return nil, err
	}

	for i, s := range cc.series {
		color := c.color(i)
		spec.Series = append(spec.Series, models.Series{
			Name:       s.Name,
			Type:       "line",
			Data:       scalars(s.Data),
			Smooth:     models.Bool(c.Settings.Smooth),
			Symbol:     lineSymbols[i%len(lineSymbols)],
			SymbolSize: models.Float(8),
			LineStyle:  &models.LineStyle{Width: models.Float(2.5)},
			ItemStyle:  &models.ItemStyle{Color: color},
			Label:      c.dataLabel(color),
			Emphasis:   &models.Emphasis{Scale: models.Float(1.5)},
		})
	}
	return spec, nil
}

func buildBar(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	cc, err := newCartesian(ds, c, models.Tooltip{
		Trigger:     "axis",
		AxisPointer: &models.AxisPointer{Type: "shadow"},
	}, "")
	if err != nil {
		return nil, err
	}
	spec := cc.spec

	spec.XAxis, err = c.xAxis(models.Axis{
		Type: "category",
		Data: categoryStrings(cc.xData),
		Name: c.Settings.XAxisName,
	})
	if err != nil {
		return nil, err
	}

	for i, s := range cc.series {
		color := c.color(i)
		spec.Series = append(spec.Series, models.Series{
			Name:        s.Name,
			Type:        "bar",
			Data:        scalars(s.Data),
			BarMaxWidth: 40,
			ItemStyle: &models.ItemStyle{
				Color:       color,
				BorderColor: "#000",
				BorderWidth: models.Float(0.5),
			},
			Label: c.dataLabel(color),
			Emphasis: &models.Emphasis{
				ItemStyle: &models.ItemStyle{ShadowBlur: 4, ShadowColor: "rgba(0,0,0,0.2)"},
			},
		})
	}
	return spec, nil
}

// buildScatter plots [x, y] pairs on a value X axis when the X column looks
// numeric, and index-positioned points on a category axis otherwise.
func buildScatter(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error) {
	cc, err := newCartesian(ds, c, models.Tooltip{Trigger: "item"}, "")
	if err != nil {
		return nil, err
	}
	spec := cc.spec

	numericX := IsNumericArray(cc.xData)
	xAxis := models.Axis{
		Type:      "category",
		Name:      c.Settings.XAxisName,
		SplitLine: theme.GridSplitLine(c.Settings.ShowGrid),
	}
	if numericX {
		xAxis.Type = "value"
	} else {
		xAxis.Data = categoryStrings(cc.xData)
	}
	if spec.XAxis, err = c.xAxis(xAxis); err != nil {
		return nil, err
	}

	for i, s := range cc.series {
		color := c.color(i)
		data := scalars(s.Data)
		if numericX {
			data = make([]models.Datum, len(s.Data))
			for j, y := range s.Data {
				data[j] = models.Tuple(ToNumber(cc.xData[j]), y)
			}
		}
		spec.Series = append(spec.Series, models.Series{
			Name:       s.Name,
			Type:       "scatter",
			Data:       data,
			Symbol:     scatterSymbols[i%len(scatterSymbols)],
			SymbolSize: models.Float(9),
			ItemStyle: &models.ItemStyle{
				Color:       color,
				BorderColor: "#000",
				BorderWidth: models.Float(0.5),
			},
			Label:    c.dataLabel(color),
			Emphasis: &models.Emphasis{Scale: models.Float(1.3)},
		})
	}
	return spec, nil
}
