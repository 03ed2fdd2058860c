package builder

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// numericSampleSize is how many leading entries IsNumericArray inspects.
const numericSampleSize = 10

// Series is a named numeric sequence extracted from one column.
// Unparsable cells hold NaN.
type Series struct {
	Name string
	Data []float64
}

// ToNumber coerces a raw cell to a number. Numbers pass through; nil, empty
// and whitespace-only strings, and unparsable strings yield NaN.
func ToNumber(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return x
	case float32:
		return float64(x)
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

// IsNumericArray reports whether the first entries of values all parse as
// numbers. An empty sequence is not numeric.
func IsNumericArray(values []interface{}) bool {
	if len(values) == 0 {
		return false
	}
	n := len(values)
	if n > numericSampleSize {
		n = numericSampleSize
	}
	for _, v := range values[:n] {
		if math.IsNaN(ToNumber(v)) {
			return false
		}
	}
	return true
}

// ExtractXY returns the raw X column and one numeric series per Y column.
func ExtractXY(ds *models.Dataset, x int, ys []int) ([]interface{}, []Series) {
	xData := ds.Column(x)

	series := make([]Series, 0, len(ys))
	for _, idx := range ys {
		series = append(series, Series{
			Name: ds.HeaderName(idx),
			Data: numericColumn(ds, idx),
		})
	}
	return xData, series
}

func numericColumn(ds *models.Dataset, col int) []float64 {
	out := make([]float64, len(ds.Rows))
	for i := range ds.Rows {
		out[i] = ToNumber(ds.Cell(i, col))
	}
	return out
}

func categoryStrings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = models.CellString(v)
	}
	return out
}
