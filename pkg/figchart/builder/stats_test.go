package builder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"even median", []float64{1, 2, 3, 4}, 50, 2.5},
		{"single", []float64{5}, 50, 5},
		{"first quartile", []float64{1, 2, 3, 4, 5}, 25, 2},
		{"interpolated quartile", []float64{1, 2, 3, 4}, 25, 1.75},
		{"min", []float64{3, 7, 9}, 0, 3},
		{"max", []float64{3, 7, 9}, 100, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Percentile(tt.sorted, tt.p), 1e-12)
		})
	}

	assert.True(t, math.IsNaN(Percentile(nil, 50)))
}

func TestSummarize_Degenerate(t *testing.T) {
	summary, outliers := Summarize([]float64{math.NaN(), math.NaN()})
	assert.Equal(t, FiveNumberSummary{0, 0, 0, 0, 0}, summary)
	assert.Empty(t, outliers)

	summary, outliers = Summarize(nil)
	assert.Equal(t, FiveNumberSummary{}, summary)
	assert.Empty(t, outliers)
}

func TestSummarize_Outlier(t *testing.T) {
	summary, outliers := Summarize([]float64{100, 3, 1, 5, 2, 4})

	// sorted: 1 2 3 4 5 100; Q1=2.25 Q2=3.5 Q3=4.75 IQR=2.5
	assert.InDelta(t, 1, summary[0], 1e-12)
	assert.InDelta(t, 2.25, summary[1], 1e-12)
	assert.InDelta(t, 3.5, summary[2], 1e-12)
	assert.InDelta(t, 4.75, summary[3], 1e-12)
	assert.InDelta(t, 8.5, summary[4], 1e-12)
	assert.Less(t, summary[4], 100.0)
	assert.Equal(t, []float64{100}, outliers)
}

func TestSummarize_IgnoresNaN(t *testing.T) {
	summary, outliers := Summarize([]float64{math.NaN(), 2, 4, math.NaN()})
	assert.Equal(t, FiveNumberSummary{2, 2.5, 3, 3.5, 4}, summary)
	assert.Empty(t, outliers)
}

func TestSummarizeColumns(t *testing.T) {
	ds := &models.Dataset{
		Headers: []string{"empty", "a", "b"},
		Rows: [][]interface{}{
			{nil, "1", 10.0},
			{"", "2", 10.0},
			{"x", "3", 10.0},
			{nil, "4", 10.0},
			{nil, "5", 10.0},
			{nil, "100", 10.0},
		},
	}

	summaries, outliers := SummarizeColumns(ds, []int{0, 1, 2})
	require.Len(t, summaries, 3)
	assert.Equal(t, FiveNumberSummary{}, summaries[0])
	assert.Equal(t, FiveNumberSummary{10, 10, 10, 10, 10}, summaries[2])
	assert.Equal(t, []Outlier{{Category: 1, Value: 100}}, outliers)
}
