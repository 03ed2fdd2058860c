package builder

import (
	"fmt"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
	"github.com/ukaji3/figchart-go/pkg/figchart/theme"
)

// Resolved holds the column indices and normalized settings for one build.
type Resolved struct {
	ChartType models.ChartType
	Settings  models.Settings

	// X is the category/value column for cartesian kinds and heatmaps.
	X int
	// Ys are the series columns; for heatmaps, the single Y category column.
	Ys []int
	// Label and Value are the pie columns; Value is also the heatmap value column.
	Label int
	Value int
}

// Resolve turns column references into plain indices against headers and
// fills defaults for unset settings. An explicit reference that matches no
// column yields a *ColumnNotFoundError; a chart kind that cannot find the
// columns it needs yields a *SpecBuildError.
func Resolve(s models.Settings, headers []string, chartType models.ChartType) (Resolved, error) {
	if len(headers) == 0 {
		return Resolved{}, newSpecBuildError(chartType, "dataset has no columns", nil)
	}

	r := Resolved{ChartType: chartType, Settings: normalizeSettings(s)}
	res := resolver{headers: headers, chartType: chartType}

	var err error
	switch chartType {
	case models.ChartPie:
		labelRef := s.LabelColumn
		if !labelRef.IsSet() {
			labelRef = s.XColumn
		}
		if r.Label, err = res.resolve(labelRef, 0); err != nil {
			return Resolved{}, err
		}
		valueRef := s.ValueColumn
		if !valueRef.IsSet() && len(s.YColumns) > 0 {
			valueRef = s.YColumns[0]
		}
		if r.Value, err = res.resolve(valueRef, 1); err != nil {
			return Resolved{}, err
		}

	case models.ChartHeatmap:
		if r.X, err = res.resolve(s.XColumn, 0); err != nil {
			return Resolved{}, err
		}
		y, err := res.resolve(refAt(s.YColumns, 0), 1)
		if err != nil {
			return Resolved{}, err
		}
		r.Ys = []int{y}
		if r.Value, err = res.resolve(refAt(s.YColumns, 1), 2); err != nil {
			return Resolved{}, err
		}

	case models.ChartBoxplot:
		if len(s.YColumns) == 0 {
			y, err := res.resolve(models.ColumnRef{}, 1)
			if err != nil {
				return Resolved{}, err
			}
			r.Ys = []int{y}
			break
		}
		if r.Ys, err = res.resolveAll(s.YColumns); err != nil {
			return Resolved{}, err
		}

	default:
		if r.X, err = res.resolve(s.XColumn, 0); err != nil {
			return Resolved{}, err
		}
		if r.Ys, err = res.resolveAll(s.YColumns); err != nil {
			return Resolved{}, err
		}
		if len(r.Ys) == 0 && len(headers) > 1 {
			// Never plot the X column against itself.
			if r.X == 1 {
				r.Ys = []int{0}
			} else {
				r.Ys = []int{1}
			}
		}
		if len(r.Ys) == 0 {
			return Resolved{}, newSpecBuildError(chartType, "no value columns selected", nil)
		}
	}

	return r, nil
}

type resolver struct {
	headers   []string
	chartType models.ChartType
}

// resolve maps ref to an index. An unset ref takes def, which must exist
// in the dataset for the chart kind to be buildable.
func (r resolver) resolve(ref models.ColumnRef, def int) (int, error) {
	if !ref.IsSet() {
		if def >= len(r.headers) {
			return 0, newSpecBuildError(r.chartType,
				fmt.Sprintf("needs at least %d columns, dataset has %d", def+1, len(r.headers)), nil)
		}
		return def, nil
	}

	if name, ok := ref.Name(); ok {
		for i, h := range r.headers {
			if h == name {
				return i, nil
			}
		}
		return 0, newSpecBuildError(r.chartType, "invalid column reference", &ColumnNotFoundError{Ref: ref})
	}

	idx, _ := ref.Index()
	if idx < 0 || idx >= len(r.headers) {
		return 0, newSpecBuildError(r.chartType, "invalid column reference", &ColumnNotFoundError{Ref: ref})
	}
	return idx, nil
}

func (r resolver) resolveAll(refs []models.ColumnRef) ([]int, error) {
	out := make([]int, 0, len(refs))
	for _, ref := range refs {
		if !ref.IsSet() {
			continue
		}
		idx, err := r.resolve(ref, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, idx)
	}
	return out, nil
}

func refAt(refs []models.ColumnRef, i int) models.ColumnRef {
	if i < len(refs) {
		return refs[i]
	}
	return models.ColumnRef{}
}

// normalizeSettings fills zero style settings with defaults and replaces an
// unknown palette key with the default palette.
func normalizeSettings(s models.Settings) models.Settings {
	s = s.Clone()
	if s.TitleFontSize <= 0 {
		s.TitleFontSize = models.DefaultTitleFontSize
	}
	if s.AxisFontSize <= 0 {
		s.AxisFontSize = models.DefaultAxisFontSize
	}
	if s.AxisNameFontSize <= 0 {
		s.AxisNameFontSize = models.DefaultAxisNameFontSize
	}
	if s.FontFamily == "" {
		s.FontFamily = models.DefaultFontFamily
	}
	if _, ok := theme.Palettes[s.ColorScheme]; !ok {
		s.ColorScheme = theme.DefaultPalette
	}
	return s
}
