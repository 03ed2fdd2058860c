// Package builder turns a dataset and chart settings into a chart
// specification. Every build is a pure function of its inputs: nothing is
// cached between calls and the returned spec is freshly allocated.
package builder

import (
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

const (
	gridTopTitled   = 55
	gridTopUntitled = 40
	gridBottom      = 60

	animationDuration = 500
	animationEasing   = "cubicOut"
)

var (
	// lineSymbols cycle across line series.
	lineSymbols = []string{"circle", "rect", "triangle", "diamond", "pin", "arrow"}
	// scatterSymbols cycle across scatter series.
	scatterSymbols = []string{"circle", "rect", "triangle", "diamond"}
)

type kindBuilder func(ds *models.Dataset, c *chartContext) (*models.ChartSpec, error)

var builders = map[models.ChartType]kindBuilder{
	models.ChartLine:    buildLine,
	models.ChartBar:     buildBar,
	models.ChartScatter: buildScatter,
	models.ChartPie:     buildPie,
	models.ChartHeatmap: buildHeatmap,
	models.ChartBoxplot: buildBoxplot,
}

// Build assembles the chart specification for ds. An empty chartType takes
// the kind from settings; an unknown kind builds a line chart. Every kind
// except pie is framed with AddBoxFrame.
func Build(ds *models.Dataset, settings models.Settings, chartType models.ChartType) (*models.ChartSpec, error) {
	if chartType == "" {
		chartType = settings.ChartType
	}
	build, ok := builders[chartType]
	if !ok {
		chartType, build = models.ChartLine, buildLine
	}
	if ds == nil {
		return nil, newSpecBuildError(chartType, "no dataset", nil)
	}

	r, err := Resolve(settings, ds.Headers, chartType)
	if err != nil {
		return nil, err
	}

	spec, err := build(ds, newChartContext(r))
	if err != nil {
		return nil, err
	}
	if chartType == models.ChartPie {
		return spec, nil
	}
	return AddBoxFrame(spec)
}

// chartContext carries what every kind builder shares for one build.
type chartContext struct {
	Resolved
	style   theme.Style
	palette []string
	font    string
	gridTop int
}

func newChartContext(r Resolved) *chartContext {
	gridTop := gridTopUntitled
	if r.Settings.Title != "" {
		gridTop = gridTopTitled
	}
	return &chartContext{
		Resolved: r,
		style:    theme.Base(r.Settings),
		palette:  theme.Lookup(r.Settings.ColorScheme).Colors,
		font:     theme.FontStack(r.Settings.FontFamily),
		gridTop:  gridTop,
	}
}

func (c *chartContext) color(i int) string {
	return c.palette[i%len(c.palette)]
}

// newSpec returns the parts common to every kind: canvas, palette,
// animation, title and toolbox.
func (c *chartContext) newSpec() (*models.ChartSpec, error) {
	textStyle := c.style.TextStyle
	spec := &models.ChartSpec{
		BackgroundColor:   c.style.BackgroundColor,
		TextStyle:         &textStyle,
		Color:             append([]string(nil), c.palette...),
		AnimationDuration: animationDuration,
		AnimationEasing:   animationEasing,
	}

	if c.Settings.Title != "" {
		title, err := merge(c.style.Title, models.Title{
			Text: c.Settings.Title,
			Left: "center",
			Top:  8,
		})
		if err != nil {
			return nil, c.fail(err)
		}
		spec.Title = &title
	}

	toolbox, err := merge(c.style.Toolbox, models.Toolbox{
		Right:    12,
		Top:      4,
		ItemSize: 13,
		Feature: &models.ToolboxFeature{
			SaveAsImage: &models.SaveAsImage{Title: "Save", PixelRatio: 3},
			DataZoom:    &models.DataZoom{Title: map[string]string{"zoom": "Zoom", "back": "Reset zoom"}},
			Restore:     &models.Restore{Title: "Restore"},
		},
	})
	if err != nil {
		return nil, c.fail(err)
	}
	spec.Toolbox = &toolbox
	return spec, nil
}

func (c *chartContext) tooltip(override models.Tooltip) (*models.Tooltip, error) {
	t, err := merge(c.style.Tooltip, override)
	if err != nil {
		return nil, c.fail(err)
	}
	return &t, nil
}

func (c *chartContext) grid(override models.Grid) (*models.Grid, error) {
	g, err := merge(c.style.Grid, override)
	if err != nil {
		return nil, c.fail(err)
	}
	return &g, nil
}

func (c *chartContext) xAxis(override models.Axis) ([]models.Axis, error) {
	a, err := merge(c.style.XAxis, override)
	if err != nil {
		return nil, c.fail(err)
	}
	return []models.Axis{a}, nil
}

func (c *chartContext) yAxis(override models.Axis) ([]models.Axis, error) {
	a, err := merge(c.style.YAxis, override)
	if err != nil {
		return nil, c.fail(err)
	}
	return []models.Axis{a}, nil
}

// seriesLegend returns the boxed in-plot legend, or nil unless the legend
// is enabled and there is more than one series to tell apart.
func (c *chartContext) seriesLegend(names []string, icon string) (*models.Legend, error) {
	if !c.Settings.ShowLegend || len(names) < 2 {
		return nil, nil
	}
	l, err := merge(c.style.Legend, models.Legend{
		Data:            names,
		Top:             models.Px(c.gridTop + 8),
		Left:            models.Px(85),
		Orient:          "vertical",
		BackgroundColor: "rgba(255,255,255,0.8)",
		BorderColor:     "#ccc",
		BorderWidth:     models.Float(1),
		BorderRadius:    4,
		Padding:         []int{8, 12},
		Icon:            icon,
	})
	if err != nil {
		return nil, c.fail(err)
	}
	return &l, nil
}

// dataLabel returns the point label style: bold text in a translucent box
// bordered with the series color. It is hidden unless data labels are on.
func (c *chartContext) dataLabel(color string) *models.Label {
	if !c.Settings.ShowDataLabel {
		return &models.Label{Show: models.Bool(false)}
	}
	return &models.Label{
		Show:            models.Bool(true),
		Position:        "top",
		Distance:        8,
		FontFamily:      c.font,
		FontSize:        c.Settings.AxisFontSize,
		FontWeight:      "bold",
		Color:           color,
		BackgroundColor: "rgba(255,255,255,0.85)",
		BorderColor:     color,
		BorderWidth:     models.Float(1),
		BorderRadius:    3,
		Padding:         []int{3, 6},
	}
}

func (c *chartContext) fail(err error) error {
	return newSpecBuildError(c.ChartType, "assemble spec", err)
}

func seriesNames(series []Series) []string {
	names := make([]string, len(series))
	for i, s := range series {
		names[i] = s.Name
	}
	return names
}

func scalars(values []float64) []models.Datum {
	out := make([]models.Datum, len(values))
	for i, v := range values {
		out[i] = models.Scalar(v)
	}
	return out
}
