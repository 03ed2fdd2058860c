package builder

import (
	"errors"

	"github.com/tiendc/go-deepcopy"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// phantomSuffix marks the invisible copies of real series.
const phantomSuffix = "_phantom"

// AddBoxFrame returns a copy of spec closed on all four sides. The primary
// X and Y axes are mirrored to the top and right with only their axis line
// visible, and every series gets an invisible phantom on the mirrored pair
// so both pairs scale against the same data. Phantoms follow the real
// series in order, so the result has twice as many series. spec itself is
// left untouched.
func AddBoxFrame(spec *models.ChartSpec) (*models.ChartSpec, error) {
	if spec == nil {
		return nil, newSpecBuildError("", "frame", errors.New("nil spec"))
	}
	kind := frameKind(spec)
	if len(spec.XAxis) != 1 || len(spec.YAxis) != 1 {
		return nil, newSpecBuildError(kind, "frame needs exactly one X and one Y axis", nil)
	}

	var out models.ChartSpec
	if err := deepcopy.Copy(&out, spec); err != nil {
		return nil, newSpecBuildError(kind, "copy spec", err)
	}

	top, err := mirrorAxis(out.XAxis[0], "top")
	if err != nil {
		return nil, newSpecBuildError(kind, "mirror x axis", err)
	}
	right, err := mirrorAxis(out.YAxis[0], "right")
	if err != nil {
		return nil, newSpecBuildError(kind, "mirror y axis", err)
	}
	out.XAxis = append(out.XAxis, top)
	out.YAxis = append(out.YAxis, right)

	taken := make(map[string]bool, len(out.Series))
	for _, s := range out.Series {
		taken[s.Name] = true
	}
	n := len(out.Series)
	for i := 0; i < n; i++ {
		var p models.Series
		if err := deepcopy.Copy(&p, &out.Series[i]); err != nil {
			return nil, newSpecBuildError(kind, "copy series", err)
		}
		out.Series = append(out.Series, phantom(p, taken))
	}
	return &out, nil
}

// mirrorAxis copies a onto the opposite side, keeping its type and category
// domain but showing nothing except the axis line.
func mirrorAxis(a models.Axis, position string) (models.Axis, error) {
	var m models.Axis
	if err := deepcopy.Copy(&m, &a); err != nil {
		return m, err
	}
	m.Position = position
	m.Name = ""
	m.NameTextStyle = nil
	m.AxisLine = &models.AxisLine{
		Show:      models.Bool(true),
		OnZero:    models.Bool(false),
		LineStyle: &models.LineStyle{Color: "#000", Width: models.Float(1.5)},
	}
	m.AxisTick = &models.AxisTick{Show: models.Bool(false)}
	m.MinorTick = &models.AxisTick{Show: models.Bool(false)}
	m.AxisLabel = &models.AxisLabel{Show: models.Bool(false)}
	m.SplitLine = &models.SplitLine{Show: models.Bool(false)}
	m.SplitArea = &models.SplitArea{Show: models.Bool(false)}
	return m, nil
}

// phantom binds s to the mirrored axes and switches off every visual channel.
func phantom(s models.Series, taken map[string]bool) models.Series {
	name := s.Name + phantomSuffix
	for taken[name] {
		name += "_"
	}
	s.Name = name
	s.XAxisIndex = models.Int(1)
	s.YAxisIndex = models.Int(1)
	s.ShowSymbol = models.Bool(false)
	s.SymbolSize = models.Float(0)
	s.LineStyle = &models.LineStyle{Opacity: models.Float(0), Width: models.Float(0)}
	s.ItemStyle = &models.ItemStyle{Opacity: models.Float(0)}
	s.AreaStyle = &models.AreaStyle{Opacity: models.Float(0)}
	s.Label = &models.Label{Show: models.Bool(false)}
	s.Tooltip = &models.Tooltip{Show: models.Bool(false)}
	s.Emphasis = &models.Emphasis{Disabled: models.Bool(true)}
	return s
}

func frameKind(spec *models.ChartSpec) models.ChartType {
	if len(spec.Series) > 0 {
		return models.ChartType(spec.Series[0].Type)
	}
	return ""
}
