package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// parseValue types a raw text cell.
// Returns nil for blank cells, int64 for integers, float64 for decimals,
// bool for true/false, or the trimmed string.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float. NaN and Inf spellings stay text.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "true", "TRUE", "True":
		return true
	case "false", "FALSE", "False":
		return false
	}
	return s
}

// toDataset turns text records into a dataset: the first record is the
// header row, the rest are typed with parseValue. Records with no content
// are skipped.
func toDataset(records [][]string, format Format) (*models.Dataset, error) {
	var kept [][]string
	for _, rec := range records {
		if !isBlankRecord(rec) {
			kept = append(kept, rec)
		}
	}
	if len(kept) < 2 {
		return nil, newParseError(format, errTooShort, nil)
	}

	headers := make([]string, len(kept[0]))
	for i, h := range kept[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([][]interface{}, 0, len(kept)-1)
	for _, rec := range kept[1:] {
		row := make([]interface{}, len(rec))
		for i, cell := range rec {
			row[i] = parseValue(cell)
		}
		rows = append(rows, row)
	}
	return &models.Dataset{Headers: headers, Rows: rows}, nil
}

func isBlankRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
