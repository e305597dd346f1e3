package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// ErrMissingColumn reports a header that lacks one of the required columns.
var ErrMissingColumn = errors.New("required column not found in header")

// createHeaderMap creates a map of column names to their indices
func createHeaderMap(header []string, expectedHeader []string) (map[string]int, error) {
	columnMap := make(map[string]int)

	for _, column := range expectedHeader {
		found := false
		for i, field := range header {
			if strings.EqualFold(column, strings.TrimSpace(field)) {
				columnMap[column] = i
				found = true
				break
			}
		}

		if !found {
			return nil, fmt.Errorf("%w: '%s'", ErrMissingColumn, column)
		}
	}

	return columnMap, nil
}

// fieldAt returns the trimmed cell at idx, or "" when the row is too short.
// Spreadsheet exports drop trailing empty cells, so short rows are expected.
func fieldAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// instructionFromRow maps a raw table row onto a payment instruction using
// the resolved column positions. No validation happens here: blank and
// partial rows are returned as-is for the caller to skip or reject.
func instructionFromRow(row []string, columnMap map[string]int) domain.PaymentInstruction {
	return domain.PaymentInstruction{
		BSB:       fieldAt(row, columnMap[domain.ColumnBSB]),
		Account:   fieldAt(row, columnMap[domain.ColumnAccount]),
		Name:      fieldAt(row, columnMap[domain.ColumnName]),
		Reference: fieldAt(row, columnMap[domain.ColumnReference]),
		Amount:    fieldAt(row, columnMap[domain.ColumnAmount]),
	}
}
