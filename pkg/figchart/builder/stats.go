package builder

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// whiskerIQR is the whisker reach in interquartile ranges.
const whiskerIQR = 1.5

// FiveNumberSummary is [lowerWhisker, Q1, median, Q3, upperWhisker].
type FiveNumberSummary [5]float64

// Outlier is a value beyond the whiskers of the column at Category.
type Outlier struct {
	Category int
	Value    float64
}

// Percentile returns the p-th percentile (0-100) of sorted using linear
// interpolation between the closest ranks. It returns NaN for an empty input.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	idx := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(idx-float64(lower))
}

// Summarize computes the five-number summary of values, ignoring NaN, and
// returns the values lying outside the whiskers in ascending order.
// With no valid values the summary is all zeros and there are no outliers.
func Summarize(values []float64) (FiveNumberSummary, []float64) {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return FiveNumberSummary{}, nil
	}

	sample := (&stats.Sample{Xs: valid}).Sort()
	lo, hi := sample.Bounds()

	q1 := Percentile(sample.Xs, 25)
	q2 := Percentile(sample.Xs, 50)
	q3 := Percentile(sample.Xs, 75)
	iqr := q3 - q1
	lower := math.Max(lo, q1-whiskerIQR*iqr)
	upper := math.Min(hi, q3+whiskerIQR*iqr)

	var outliers []float64
	for _, v := range sample.Xs {
		if v < lower || v > upper {
			outliers = append(outliers, v)
		}
	}
	return FiveNumberSummary{lower, q1, q2, q3, upper}, outliers
}

// SummarizeColumns summarizes each column in cols. Outliers carry the
// position of their column within cols.
func SummarizeColumns(ds *models.Dataset, cols []int) ([]FiveNumberSummary, []Outlier) {
	summaries := make([]FiveNumberSummary, 0, len(cols))
	var outliers []Outlier
	for i, col := range cols {
		summary, out := Summarize(numericColumn(ds, col))
		summaries = append(summaries, summary)
		for _, v := range out {
			outliers = append(outliers, Outlier{Category: i, Value: v})
		}
	}
	return summaries, outliers
}
