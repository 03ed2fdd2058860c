// Package models defines data structures for chart specification building.
package models

import (
	"strconv"
)

// Dataset is a decoded table: a header row plus data rows of raw cells.
//
// A cell is nil (empty), string, float64, int64 or bool. Rows shorter than
// Headers read as empty cells.
type Dataset struct {
	// Headers are the column display names. They need not be unique.
	Headers []string `json:"headers"`
	// Rows holds the data rows in source order.
	Rows [][]interface{} `json:"rows"`
}

// Cell returns the raw cell at (row, col), or nil when the row is short.
func (d *Dataset) Cell(row, col int) interface{} {
	if row < 0 || row >= len(d.Rows) || col < 0 {
		return nil
	}
	r := d.Rows[row]
	if col >= len(r) {
		return nil
	}
	return r[col]
}

// Column returns the raw cells of a column, one per row.
func (d *Dataset) Column(col int) []interface{} {
	out := make([]interface{}, len(d.Rows))
	for i := range d.Rows {
		out[i] = d.Cell(i, col)
	}
	return out
}

// HeaderName returns the header of col, or "Column N" when the header is
// empty or col is beyond the header row.
func (d *Dataset) HeaderName(col int) string {
	if col >= 0 && col < len(d.Headers) && d.Headers[col] != "" {
		return d.Headers[col]
	}
	return "Column " + strconv.Itoa(col)
}

// Transpose returns a new dataset with rows and columns swapped.
// The header row takes part in the swap: the new headers are the old first
// column, and each old column (including its header) becomes a row.
func (d *Dataset) Transpose() *Dataset {
	if len(d.Rows) == 0 {
		return d.Clone()
	}

	matrix := make([][]interface{}, 0, len(d.Rows)+1)
	headerRow := make([]interface{}, len(d.Headers))
	for i, h := range d.Headers {
		headerRow[i] = h
	}
	matrix = append(matrix, headerRow)
	matrix = append(matrix, d.Rows...)

	// The header count decides the width of the source matrix
	swapped := make([][]interface{}, len(d.Headers))
	for c := range d.Headers {
		col := make([]interface{}, len(matrix))
		for r, row := range matrix {
			if c < len(row) {
				col[r] = row[c]
			}
		}
		swapped[c] = col
	}

	out := &Dataset{}
	if len(swapped) == 0 {
		return out
	}
	out.Headers = make([]string, len(swapped[0]))
	for i, v := range swapped[0] {
		out.Headers[i] = CellString(v)
	}
	out.Rows = swapped[1:]
	return out
}

// Clone returns a copy of the dataset that shares no row slices with d.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Headers: append([]string(nil), d.Headers...),
		Rows:    make([][]interface{}, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append([]interface{}(nil), row...)
	}
	return out
}

// CellString renders a raw cell the way it is shown on a category axis.
// Empty cells render as "".
func CellString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}
