package builder

import (
	"math"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// CategoryIndex is an insertion-ordered set of category labels.
type CategoryIndex struct {
	values    []string
	positions map[string]int
}

// NewCategoryIndex returns an empty index.
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{positions: make(map[string]int)}
}

// Add inserts v if it is new and returns its position.
func (c *CategoryIndex) Add(v string) int {
	if pos, ok := c.positions[v]; ok {
		return pos
	}
	pos := len(c.values)
	c.values = append(c.values, v)
	c.positions[v] = pos
	return pos
}

// Position returns the position of v, or -1 if absent.
func (c *CategoryIndex) Position(v string) int {
	if pos, ok := c.positions[v]; ok {
		return pos
	}
	return -1
}

// Values returns the categories in first-seen order.
func (c *CategoryIndex) Values() []string {
	return append([]string(nil), c.values...)
}

// Len returns the number of categories.
func (c *CategoryIndex) Len() int {
	return len(c.values)
}

// HeatCell is one heatmap cell addressed by category positions.
type HeatCell struct {
	X     int
	Y     int
	Value float64
}

// HeatmapGrid is the indexed form of a heatmap dataset.
type HeatmapGrid struct {
	XCategories []string
	YCategories []string
	// Cells holds one entry per dataset row, in row order.
	Cells []HeatCell
	// Min and Max span the valid values; both are 0 when none are valid.
	Min float64
	Max float64
}

// IndexHeatmap indexes the X and Y category columns of ds and maps every row
// to a cell. Lookups are map-backed, so the cost is linear in the row count.
func IndexHeatmap(ds *models.Dataset, x, y, value int) HeatmapGrid {
	xs, ys := NewCategoryIndex(), NewCategoryIndex()
	cells := make([]HeatCell, 0, len(ds.Rows))

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range ds.Rows {
		v := ToNumber(ds.Cell(i, value))
		cells = append(cells, HeatCell{
			X:     xs.Add(models.CellString(ds.Cell(i, x))),
			Y:     ys.Add(models.CellString(ds.Cell(i, y))),
			Value: v,
		})
		if !math.IsNaN(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo > hi {
		lo, hi = 0, 0
	}

	return HeatmapGrid{
		XCategories: xs.Values(),
		YCategories: ys.Values(),
		Cells:       cells,
		Min:         lo,
		Max:         hi,
	}
}
