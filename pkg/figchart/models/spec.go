package models

// ChartSpec is the declarative chart option handed to the renderer.
// Field names follow the ECharts option schema.
type ChartSpec struct {
	// BackgroundColor is the canvas background.
	BackgroundColor string `json:"backgroundColor,omitempty"`
	// TextStyle is the global text style.
	TextStyle *TextStyle `json:"textStyle,omitempty"`
	// Color is the palette series colors cycle through.
	Color []string `json:"color,omitempty"`
	// AnimationDuration is the initial animation length in milliseconds.
	AnimationDuration int `json:"animationDuration,omitempty"`
	// AnimationEasing is the initial animation easing name.
	AnimationEasing string `json:"animationEasing,omitempty"`
	// Title is set only when the chart has a title.
	Title *Title `json:"title,omitempty"`
	// Toolbox describes the interactive tool buttons.
	Toolbox *Toolbox `json:"toolbox,omitempty"`
	// Legend is nil when no legend is shown.
	Legend *Legend `json:"legend,omitempty"`
	// Tooltip is the chart-level tooltip.
	Tooltip *Tooltip `json:"tooltip,omitempty"`
	// Grid positions the cartesian plot area.
	Grid *Grid `json:"grid,omitempty"`
	// XAxis holds the primary X axis and, after framing, its top mirror.
	XAxis []Axis `json:"xAxis,omitempty"`
	// YAxis holds the primary Y axis and, after framing, its right mirror.
	YAxis []Axis `json:"yAxis,omitempty"`
	// VisualMap is set for heatmaps only.
	VisualMap *VisualMap `json:"visualMap,omitempty"`
	// Series lists real series followed by any phantom series.
	Series []Series `json:"series"`
}

type TextStyle struct {
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   int    `json:"fontSize,omitempty"`
	FontWeight string `json:"fontWeight,omitempty"`
	Color      string `json:"color,omitempty"`
}

type LineStyle struct {
	Color   string   `json:"color,omitempty"`
	Width   *float64 `json:"width,omitempty"`
	Type    string   `json:"type,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
}

type Title struct {
	Text         string     `json:"text,omitempty"`
	Left         string     `json:"left,omitempty"`
	Top          int        `json:"top,omitempty"`
	TextStyle    *TextStyle `json:"textStyle,omitempty"`
	SubtextStyle *TextStyle `json:"subtextStyle,omitempty"`
}

type Toolbox struct {
	Right     int             `json:"right,omitempty"`
	Top       int             `json:"top,omitempty"`
	ItemSize  int             `json:"itemSize,omitempty"`
	IconStyle *ItemStyle      `json:"iconStyle,omitempty"`
	Feature   *ToolboxFeature `json:"feature,omitempty"`
}

type ToolboxFeature struct {
	SaveAsImage *SaveAsImage `json:"saveAsImage,omitempty"`
	DataZoom    *DataZoom    `json:"dataZoom,omitempty"`
	Restore     *Restore     `json:"restore,omitempty"`
}

type SaveAsImage struct {
	Title      string `json:"title,omitempty"`
	PixelRatio int    `json:"pixelRatio,omitempty"`
}

type DataZoom struct {
	Title map[string]string `json:"title,omitempty"`
}

type Restore struct {
	Title string `json:"title,omitempty"`
}

type Legend struct {
	Data            []string   `json:"data,omitempty"`
	Top             *Offset    `json:"top,omitempty"`
	Left            *Offset    `json:"left,omitempty"`
	Right           *Offset    `json:"right,omitempty"`
	Orient          string     `json:"orient,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	BorderColor     string     `json:"borderColor,omitempty"`
	BorderWidth     *float64   `json:"borderWidth,omitempty"`
	BorderRadius    int        `json:"borderRadius,omitempty"`
	Padding         []int      `json:"padding,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	TextStyle       *TextStyle `json:"textStyle,omitempty"`
	ItemWidth       int        `json:"itemWidth,omitempty"`
	ItemHeight      int        `json:"itemHeight,omitempty"`
	ItemGap         int        `json:"itemGap,omitempty"`
}

type Tooltip struct {
	Show            *bool        `json:"show,omitempty"`
	Trigger         string       `json:"trigger,omitempty"`
	AxisPointer     *AxisPointer `json:"axisPointer,omitempty"`
	Formatter       string       `json:"formatter,omitempty"`
	Position        string       `json:"position,omitempty"`
	BackgroundColor string       `json:"backgroundColor,omitempty"`
	BorderColor     string       `json:"borderColor,omitempty"`
	BorderWidth     *float64     `json:"borderWidth,omitempty"`
	BorderRadius    int          `json:"borderRadius,omitempty"`
	Padding         []int        `json:"padding,omitempty"`
	TextStyle       *TextStyle   `json:"textStyle,omitempty"`
	ExtraCSSText    string       `json:"extraCssText,omitempty"`
}

type AxisPointer struct {
	Type string `json:"type,omitempty"`
}

type Grid struct {
	Left         int   `json:"left,omitempty"`
	Right        int   `json:"right,omitempty"`
	Top          int   `json:"top,omitempty"`
	Bottom       int   `json:"bottom,omitempty"`
	ContainLabel *bool `json:"containLabel,omitempty"`
}

// Axis describes one cartesian axis.
type Axis struct {
	// Type is "category" or "value".
	Type string `json:"type,omitempty"`
	// Position is "top"/"bottom" for X and "left"/"right" for Y.
	Position string `json:"position,omitempty"`
	// Name is the axis title.
	Name string `json:"name,omitempty"`
	// Data is the category domain; empty for value axes.
	Data          []string   `json:"data,omitempty"`
	BoundaryGap   *bool      `json:"boundaryGap,omitempty"`
	NameLocation  string     `json:"nameLocation,omitempty"`
	NameGap       int        `json:"nameGap,omitempty"`
	NameRotate    int        `json:"nameRotate,omitempty"`
	NameTextStyle *TextStyle `json:"nameTextStyle,omitempty"`
	AxisLine      *AxisLine  `json:"axisLine,omitempty"`
	AxisTick      *AxisTick  `json:"axisTick,omitempty"`
	MinorTick     *AxisTick  `json:"minorTick,omitempty"`
	AxisLabel     *AxisLabel `json:"axisLabel,omitempty"`
	SplitLine     *SplitLine `json:"splitLine,omitempty"`
	SplitArea     *SplitArea `json:"splitArea,omitempty"`
}

type AxisLine struct {
	Show      *bool      `json:"show,omitempty"`
	OnZero    *bool      `json:"onZero,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

type AxisTick struct {
	Show        *bool      `json:"show,omitempty"`
	Inside      *bool      `json:"inside,omitempty"`
	Length      int        `json:"length,omitempty"`
	SplitNumber int        `json:"splitNumber,omitempty"`
	LineStyle   *LineStyle `json:"lineStyle,omitempty"`
}

type AxisLabel struct {
	Show       *bool  `json:"show,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
	FontSize   int    `json:"fontSize,omitempty"`
	Color      string `json:"color,omitempty"`
	Margin     int    `json:"margin,omitempty"`
}

type SplitLine struct {
	Show      *bool      `json:"show,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
}

type SplitArea struct {
	Show *bool `json:"show,omitempty"`
}

// VisualMap maps heatmap values onto a color ramp.
type VisualMap struct {
	Min        Value      `json:"min"`
	Max        Value      `json:"max"`
	Calculable bool       `json:"calculable,omitempty"`
	Orient     string     `json:"orient,omitempty"`
	Left       string     `json:"left,omitempty"`
	Bottom     int        `json:"bottom,omitempty"`
	InRange    *InRange   `json:"inRange,omitempty"`
	TextStyle  *TextStyle `json:"textStyle,omitempty"`
}

type InRange struct {
	Color []string `json:"color,omitempty"`
}

// Series describes one drawable series.
type Series struct {
	// Name is shown in the legend and tooltips; phantom series carry a
	// suffixed name so they never group with real ones.
	Name string `json:"name,omitempty"`
	// Type is the ECharts series type.
	Type string `json:"type"`
	// Data holds the series items.
	Data []Datum `json:"data"`
	// XAxisIndex and YAxisIndex bind the series to an axis pair.
	XAxisIndex        *int       `json:"xAxisIndex,omitempty"`
	YAxisIndex        *int       `json:"yAxisIndex,omitempty"`
	Smooth            *bool      `json:"smooth,omitempty"`
	Symbol            string     `json:"symbol,omitempty"`
	SymbolSize        *float64   `json:"symbolSize,omitempty"`
	ShowSymbol        *bool      `json:"showSymbol,omitempty"`
	BarMaxWidth       int        `json:"barMaxWidth,omitempty"`
	Radius            []string   `json:"radius,omitempty"`
	Center            []string   `json:"center,omitempty"`
	AvoidLabelOverlap *bool      `json:"avoidLabelOverlap,omitempty"`
	LineStyle         *LineStyle `json:"lineStyle,omitempty"`
	ItemStyle         *ItemStyle `json:"itemStyle,omitempty"`
	AreaStyle         *AreaStyle `json:"areaStyle,omitempty"`
	Label             *Label     `json:"label,omitempty"`
	Tooltip           *Tooltip   `json:"tooltip,omitempty"`
	Emphasis          *Emphasis  `json:"emphasis,omitempty"`
}

type ItemStyle struct {
	Color       string   `json:"color,omitempty"`
	BorderColor string   `json:"borderColor,omitempty"`
	BorderWidth *float64 `json:"borderWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	ShadowBlur  int      `json:"shadowBlur,omitempty"`
	ShadowColor string   `json:"shadowColor,omitempty"`
}

type AreaStyle struct {
	Opacity *float64 `json:"opacity,omitempty"`
}

type Label struct {
	Show            *bool    `json:"show,omitempty"`
	Position        string   `json:"position,omitempty"`
	Distance        int      `json:"distance,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	FontSize        int      `json:"fontSize,omitempty"`
	FontWeight      string   `json:"fontWeight,omitempty"`
	Color           string   `json:"color,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	BorderColor     string   `json:"borderColor,omitempty"`
	BorderWidth     *float64 `json:"borderWidth,omitempty"`
	BorderRadius    int      `json:"borderRadius,omitempty"`
	Padding         []int    `json:"padding,omitempty"`
	Formatter       string   `json:"formatter,omitempty"`
}

type Emphasis struct {
	Disabled  *bool      `json:"disabled,omitempty"`
	Scale     *float64   `json:"scale,omitempty"`
	Label     *Label     `json:"label,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }
