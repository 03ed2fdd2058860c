package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChartType is one of the supported chart kinds.
type ChartType string

const (
	ChartLine    ChartType = "line"
	ChartBar     ChartType = "bar"
	ChartScatter ChartType = "scatter"
	ChartPie     ChartType = "pie"
	ChartHeatmap ChartType = "heatmap"
	ChartBoxplot ChartType = "boxplot"
)

// ChartTypes lists the supported chart kinds in display order.
var ChartTypes = []ChartType{ChartLine, ChartBar, ChartScatter, ChartPie, ChartHeatmap, ChartBoxplot}

// ParseChartType parses a chart kind name (case-insensitive).
func ParseChartType(s string) (ChartType, error) {
	t := ChartType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ChartTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid chart type: %q (must be line, bar, scatter, pie, heatmap, or boxplot)", s)
}

type columnRefKind uint8

const (
	columnUnset columnRefKind = iota
	columnByIndex
	columnByName
)

// ColumnRef selects a dataset column either by position or by header name.
// The zero value is unset.
type ColumnRef struct {
	kind  columnRefKind
	index int
	name  string
}

// ByIndex returns a reference to the column at position i.
func ByIndex(i int) ColumnRef { return ColumnRef{kind: columnByIndex, index: i} }

// ByName returns a reference to the first column whose header is name.
func ByName(name string) ColumnRef { return ColumnRef{kind: columnByName, name: name} }

// ParseColumnRef parses a command-line column reference. An all-digit string
// is an index; anything else is a header name.
func ParseColumnRef(s string) ColumnRef {
	if s == "" {
		return ColumnRef{}
	}
	if i, err := strconv.Atoi(s); err == nil && i >= 0 && !strings.HasPrefix(s, "+") {
		return ByIndex(i)
	}
	return ByName(s)
}

// IsSet reports whether the reference selects a column.
func (c ColumnRef) IsSet() bool { return c.kind != columnUnset }

// Index returns the position and true for an index reference.
func (c ColumnRef) Index() (int, bool) { return c.index, c.kind == columnByIndex }

// Name returns the header name and true for a name reference.
func (c ColumnRef) Name() (string, bool) { return c.name, c.kind == columnByName }

// String renders the reference for messages.
func (c ColumnRef) String() string {
	switch c.kind {
	case columnByIndex:
		return "#" + strconv.Itoa(c.index)
	case columnByName:
		return strconv.Quote(c.name)
	default:
		return "<unset>"
	}
}

// MarshalJSON encodes an index as a number and a name as a string.
func (c ColumnRef) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case columnByIndex:
		return []byte(strconv.Itoa(c.index)), nil
	case columnByName:
		return json.Marshal(c.name)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts a number (index), a string (name) or null.
func (c *ColumnRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ColumnRef{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*c = ByName(name)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("column reference must be a number or a string: %w", err)
	}
	if f != float64(int(f)) {
		return fmt.Errorf("column index must be an integer, got %v", f)
	}
	*c = ByIndex(int(f))
	return nil
}

// MarshalYAML encodes an index as an int and a name as a string.
func (c ColumnRef) MarshalYAML() (interface{}, error) {
	switch c.kind {
	case columnByIndex:
		return c.index, nil
	case columnByName:
		return c.name, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts an int scalar (index), any other scalar (name) or null.
func (c *ColumnRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: column reference must be a scalar", value.Line)
	}
	switch value.Tag {
	case "!!null":
		*c = ColumnRef{}
	case "!!int":
		i, err := strconv.Atoi(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: invalid column index %q", value.Line, value.Value)
		}
		*c = ByIndex(i)
	default:
		*c = ByName(value.Value)
	}
	return nil
}

// Settings is the user-editable chart configuration.
type Settings struct {
	ChartType        ChartType   `json:"chartType,omitempty" yaml:"chartType,omitempty"`
	Title            string      `json:"title" yaml:"title"`
	TitleFontSize    int         `json:"titleFontSize" yaml:"titleFontSize"`
	FontFamily       string      `json:"fontFamily" yaml:"fontFamily"`
	AxisFontSize     int         `json:"axisFontSize" yaml:"axisFontSize"`
	AxisNameFontSize int         `json:"axisNameFontSize" yaml:"axisNameFontSize"`
	XAxisName        string      `json:"xAxisName" yaml:"xAxisName"`
	YAxisName        string      `json:"yAxisName" yaml:"yAxisName"`
	XColumn          ColumnRef   `json:"xColumn" yaml:"xColumn"`
	YColumns         []ColumnRef `json:"yColumns" yaml:"yColumns"`
	LabelColumn      ColumnRef   `json:"labelColumn" yaml:"labelColumn"`
	ValueColumn      ColumnRef   `json:"valueColumn" yaml:"valueColumn"`
	ColorScheme      string      `json:"colorScheme" yaml:"colorScheme"`
	ShowLegend       bool        `json:"showLegend" yaml:"showLegend"`
	ShowGrid         bool        `json:"showGrid" yaml:"showGrid"`
	Smooth           bool        `json:"smooth" yaml:"smooth"`
	ShowDataLabel    bool        `json:"showDataLabel" yaml:"showDataLabel"`
}

// Default style values applied when a setting is zero.
const (
	DefaultTitleFontSize    = 14
	DefaultFontFamily       = "Arial"
	DefaultAxisFontSize     = 12
	DefaultAxisNameFontSize = 14
	DefaultColorScheme      = "nature"
)

// DefaultSettings returns the settings a fresh session starts with.
func DefaultSettings() Settings {
	return Settings{
		ChartType:        ChartLine,
		TitleFontSize:    DefaultTitleFontSize,
		FontFamily:       DefaultFontFamily,
		AxisFontSize:     DefaultAxisFontSize,
		AxisNameFontSize: DefaultAxisNameFontSize,
		XColumn:          ByIndex(0),
		LabelColumn:      ByIndex(0),
		ValueColumn:      ByIndex(1),
		ColorScheme:      DefaultColorScheme,
		ShowLegend:       true,
	}
}

// Clone returns a copy of s that shares no slices with it.
func (s Settings) Clone() Settings {
	s.YColumns = append([]ColumnRef(nil), s.YColumns...)
	return s
}
