package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// printAreas returns the print areas of a workbook by sheet name. A sheet
// with a print area is charted from that area only.
func printAreas(f *excelize.File) map[string][]TableRegion {
	result := make(map[string][]TableRegion)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parseAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}
	return result
}

// parseAreaReference splits a reference such as 'Sheet 1'!$A$1:$D$10 into
// its sheet name and regions. Comma-separated parts yield several regions.
func parseAreaReference(ref string) (string, []TableRegion) {
	var sheetName string
	var areas []TableRegion

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if region, ok := parseRegion(part[idx+1:]); ok {
			areas = append(areas, region)
		}
	}
	return sheetName, areas
}

// parseRegion parses $A$1:$D$10 into a zero-based region.
func parseRegion(s string) (TableRegion, bool) {
	parts := strings.Split(strings.ReplaceAll(s, "$", ""), ":")
	if len(parts) != 2 {
		return TableRegion{}, false
	}
	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return TableRegion{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return TableRegion{}, false
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return TableRegion{
		MinRow: startRow - 1, MaxRow: endRow - 1,
		MinCol: startCol - 1, MaxCol: endCol - 1,
	}, true
}
