package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// TableRegion is a zero-based, inclusive block of sheet cells.
type TableRegion struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Range returns the region in Excel notation, e.g. "A1:D10".
func (r TableRegion) Range() string {
	start, _ := excelize.CoordinatesToCellName(r.MinCol+1, r.MinRow+1)
	end, _ := excelize.CoordinatesToCellName(r.MaxCol+1, r.MaxRow+1)
	return fmt.Sprintf("%s:%s", start, end)
}

// Rows returns the number of rows in the region.
func (r TableRegion) Rows() int { return r.MaxRow - r.MinRow + 1 }

// Cols returns the number of columns in the region.
func (r TableRegion) Cols() int { return r.MaxCol - r.MinCol + 1 }

// DetectTable finds the block of sheet rows holding data. It reports false
// for an empty sheet or one too sparse to be a table.
func DetectTable(rows [][]string, params TableDetectionParams) (TableRegion, bool) {
	if len(rows) == 0 {
		return TableRegion{}, false
	}

	// Find the bounding box of non-empty cells
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return TableRegion{}, false
	}
	region := TableRegion{MinRow: minRow, MaxRow: maxRow, MinCol: minCol, MaxCol: maxCol}

	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return region, false
	}

	density := float64(nonEmptyCells) / float64(region.Rows()*region.Cols())
	if density < params.DensityMin {
		return region, false
	}
	return region, true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}

// crop returns the cells of rows inside region, padding short rows so every
// returned row spans the region's columns.
func crop(rows [][]string, region TableRegion) [][]string {
	out := make([][]string, 0, region.Rows())
	for r := region.MinRow; r <= region.MaxRow && r < len(rows); r++ {
		row := make([]string, region.Cols())
		for c := region.MinCol; c <= region.MaxCol && c < len(rows[r]); c++ {
			row[c-region.MinCol] = rows[r][c]
		}
		out = append(out, row)
	}
	return out
}
