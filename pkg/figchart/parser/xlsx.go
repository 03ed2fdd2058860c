package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// ParseXLSX decodes one worksheet of a workbook. An empty sheet name selects
// the first sheet. The sheet is cropped to the block of cells holding data
// and fully empty rows are dropped. A sheet with a print area is read from
// its first print area only.
func ParseXLSX(data []byte, sheet string) (*models.Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, newParseError(FormatXLSX, "open workbook", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, newParseError(FormatXLSX, "workbook has no sheets", nil)
		}
		sheet = sheets[0]
	}

	rows, err := SheetRows(f, sheet)
	if err != nil {
		return nil, err
	}
	if areas := printAreas(f)[sheet]; len(areas) > 0 {
		rows = crop(rows, areas[0])
	}
	region, ok := DetectTable(rows, TableDetectionParams{})
	if !ok {
		return nil, newParseError(FormatXLSX, errTooShort, nil)
	}
	return toDataset(crop(rows, region), FormatXLSX)
}

// SheetRows returns the text of every row of a sheet.
func SheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, newParseError(FormatXLSX, fmt.Sprintf("sheet %q not found", sheet), err)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, newParseError(FormatXLSX, "read rows", err)
	}
	return rows, nil
}

// SheetSummary describes one worksheet for inspection.
type SheetSummary struct {
	Name string
	// Range is the data block in Excel notation; empty for a blank sheet.
	Range string
	// Table reports whether the data block is dense enough to be a table.
	Table bool
	// PrintArea is the first print area in Excel notation, if any.
	PrintArea string
}

// SummarizeWorkbook lists every sheet of a workbook with its data block.
func SummarizeWorkbook(data []byte) ([]SheetSummary, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, newParseError(FormatXLSX, "open workbook", err)
	}
	defer f.Close()

	areas := printAreas(f)
	var out []SheetSummary
	for _, name := range f.GetSheetList() {
		rows, err := SheetRows(f, name)
		if err != nil {
			return nil, err
		}
		summary := SheetSummary{Name: name}
		if minRow, _, _, _ := findDataBounds(rows); minRow >= 0 {
			region, ok := DetectTable(rows, DefaultTableParams())
			summary.Range = region.Range()
			summary.Table = ok
		}
		if pa := areas[name]; len(pa) > 0 {
			summary.PrintArea = pa[0].Range()
		}
		out = append(out, summary)
	}
	return out, nil
}
