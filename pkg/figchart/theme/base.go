package theme

import (
	"fmt"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

const (
	axisColor    = "#000000"
	textColor    = "#000000"
	subtextColor = "#333333"
	gridColor    = "rgba(0,0,0,0.1)"
)

// Style is the base style shared by every chart kind. Builders combine it
// with their own values, which take precedence.
type Style struct {
	BackgroundColor string
	TextStyle       models.TextStyle
	Title           models.Title
	Legend          models.Legend
	Tooltip         models.Tooltip
	XAxis           models.Axis
	YAxis           models.Axis
	Grid            models.Grid
	Toolbox         models.Toolbox
}

// FontStack returns the CSS font stack for a font family.
func FontStack(family string) string {
	if family == "" {
		family = models.DefaultFontFamily
	}
	return fmt.Sprintf("'%s', 'Noto Sans SC', Helvetica, sans-serif", family)
}

// GridSplitLine returns the dashed grid line style used for split lines.
func GridSplitLine(show bool) *models.SplitLine {
	return &models.SplitLine{
		Show:      models.Bool(show),
		LineStyle: &models.LineStyle{Color: gridColor, Type: "dashed", Width: models.Float(0.8)},
	}
}

// Base returns a freshly allocated base style for the given settings.
// Zero font sizes fall back to the defaults.
func Base(s models.Settings) Style {
	font := FontStack(s.FontFamily)
	axisFontSize := orDefault(s.AxisFontSize, models.DefaultAxisFontSize)
	axisNameFontSize := orDefault(s.AxisNameFontSize, models.DefaultAxisNameFontSize)
	titleFontSize := orDefault(s.TitleFontSize, models.DefaultTitleFontSize)

	return Style{
		BackgroundColor: "#ffffff",
		TextStyle:       models.TextStyle{FontFamily: font, Color: textColor},
		Title: models.Title{
			TextStyle: &models.TextStyle{
				FontFamily: font,
				FontWeight: "bold",
				Color:      textColor,
				FontSize:   titleFontSize,
			},
			SubtextStyle: &models.TextStyle{FontFamily: font, Color: subtextColor, FontSize: 12},
		},
		Legend: models.Legend{
			TextStyle:  &models.TextStyle{FontFamily: font, Color: textColor, FontSize: axisFontSize},
			ItemWidth:  25,
			ItemHeight: 10,
			ItemGap:    16,
		},
		Tooltip: models.Tooltip{
			BackgroundColor: "rgba(255, 255, 255, 0.96)",
			BorderColor:     "#ccc",
			BorderWidth:     models.Float(1),
			TextStyle:       &models.TextStyle{FontFamily: font, Color: textColor, FontSize: 12},
			BorderRadius:    2,
			Padding:         []int{6, 10},
			ExtraCSSText:    "box-shadow: 0 2px 8px rgba(0,0,0,0.15);",
		},
		XAxis: baseAxis(font, axisFontSize, axisNameFontSize, 32, 0),
		YAxis: baseAxis(font, axisFontSize, axisNameFontSize, 50, 90),
		Grid: models.Grid{
			Left:         75,
			Right:        40,
			Top:          50,
			Bottom:       60,
			ContainLabel: models.Bool(false),
		},
		Toolbox: models.Toolbox{
			IconStyle: &models.ItemStyle{BorderColor: "#666"},
		},
	}
}

// baseAxis builds the closed-frame axis style: solid black line, inward
// ticks with minor ticks, bold axis name centered on the axis.
func baseAxis(font string, labelSize, nameSize, nameGap, nameRotate int) models.Axis {
	return models.Axis{
		AxisLine: &models.AxisLine{
			Show:      models.Bool(true),
			LineStyle: &models.LineStyle{Color: axisColor, Width: models.Float(1.5)},
		},
		AxisTick: &models.AxisTick{
			Show:      models.Bool(true),
			Inside:    models.Bool(true),
			Length:    5,
			LineStyle: &models.LineStyle{Color: axisColor, Width: models.Float(1)},
		},
		MinorTick: &models.AxisTick{
			Show:        models.Bool(true),
			SplitNumber: 2,
			Length:      3,
			LineStyle:   &models.LineStyle{Color: axisColor, Width: models.Float(0.8)},
		},
		AxisLabel: &models.AxisLabel{
			FontFamily: font,
			Color:      textColor,
			FontSize:   labelSize,
			Margin:     10,
		},
		NameTextStyle: &models.TextStyle{
			FontFamily: font,
			Color:      textColor,
			FontSize:   nameSize,
			FontWeight: "bold",
		},
		NameLocation: "center",
		NameGap:      nameGap,
		NameRotate:   nameRotate,
		SplitLine:    GridSplitLine(false),
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
