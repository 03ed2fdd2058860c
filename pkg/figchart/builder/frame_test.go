package builder

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func framedInput() *models.ChartSpec {
	return &models.ChartSpec{
		XAxis: []models.Axis{{
			Type:      "category",
			Name:      "Month",
			Data:      []string{"Jan", "Feb"},
			AxisLabel: &models.AxisLabel{FontSize: 12},
			SplitLine: &models.SplitLine{Show: models.Bool(true)},
		}},
		YAxis: []models.Axis{{Type: "value", Name: "Sales"}},
		Series: []models.Series{
			{
				Name:      "a",
				Type:      "line",
				Data:      []models.Datum{models.Scalar(1), models.Scalar(2)},
				Symbol:    "circle",
				LineStyle: &models.LineStyle{Width: models.Float(2.5)},
				ItemStyle: &models.ItemStyle{Color: "#E64B35"},
				Label:     &models.Label{Show: models.Bool(true)},
			},
			{Name: "a_phantom", Type: "line", Data: []models.Datum{models.Scalar(3), models.Scalar(4)}},
		},
	}
}

func TestAddBoxFrame(t *testing.T) {
	in := framedInput()
	out, err := AddBoxFrame(in)
	require.NoError(t, err)

	require.Len(t, out.XAxis, 2)
	require.Len(t, out.YAxis, 2)

	top := out.XAxis[1]
	assert.Equal(t, "top", top.Position)
	assert.Equal(t, "category", top.Type)
	assert.Equal(t, []string{"Jan", "Feb"}, top.Data)
	assert.Empty(t, top.Name)
	assert.False(t, *top.AxisLabel.Show)
	assert.False(t, *top.AxisTick.Show)
	assert.False(t, *top.MinorTick.Show)
	assert.False(t, *top.SplitLine.Show)
	assert.True(t, *top.AxisLine.Show)
	assert.False(t, *top.AxisLine.OnZero)
	assert.Equal(t, "right", out.YAxis[1].Position)
	assert.Equal(t, "value", out.YAxis[1].Type)

	require.Len(t, out.Series, 2*len(in.Series))
	realNames := map[string]bool{}
	for i, s := range out.Series[:2] {
		assert.Equal(t, in.Series[i].Name, s.Name)
		realNames[s.Name] = true
	}
	for i, p := range out.Series[2:] {
		assert.False(t, realNames[p.Name], "phantom %q collides with a real series", p.Name)
		assert.True(t, strings.HasPrefix(p.Name, in.Series[i].Name+"_phantom"))
		assert.Equal(t, in.Series[i].Data, p.Data)
		assert.Equal(t, 1, *p.XAxisIndex)
		assert.Equal(t, 1, *p.YAxisIndex)
		assertInvisible(t, p)
	}
	assert.Equal(t, "a_phantom_", out.Series[2].Name)
	assert.Equal(t, "a_phantom_phantom", out.Series[3].Name)
}

func TestAddBoxFrame_DoesNotMutateInput(t *testing.T) {
	in := framedInput()
	before := framedInput()

	_, err := AddBoxFrame(in)
	require.NoError(t, err)
	assert.Equal(t, before, in)
}

func TestAddBoxFrame_RequiresSingleAxisPair(t *testing.T) {
	in := framedInput()
	in.XAxis = append(in.XAxis, in.XAxis[0])

	_, err := AddBoxFrame(in)
	var buildErr *SpecBuildError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, models.ChartLine, buildErr.ChartType)

	_, err = AddBoxFrame(&models.ChartSpec{})
	require.Error(t, err)
}

func assertInvisible(t *testing.T, s models.Series) {
	t.Helper()
	require.NotNil(t, s.ShowSymbol)
	assert.False(t, *s.ShowSymbol)
	assert.Equal(t, 0.0, *s.SymbolSize)
	assert.Equal(t, 0.0, *s.LineStyle.Opacity)
	assert.Equal(t, 0.0, *s.LineStyle.Width)
	assert.Equal(t, 0.0, *s.ItemStyle.Opacity)
	assert.Equal(t, 0.0, *s.AreaStyle.Opacity)
	assert.False(t, *s.Label.Show)
	assert.False(t, *s.Tooltip.Show)
	assert.True(t, *s.Emphasis.Disabled)
}
