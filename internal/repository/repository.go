// Package repository loads payment instructions out of the tabular formats
// the export understands: CSV files, Excel workbooks and in-memory uploads
// of either. Repositories return rows verbatim; skipping incomplete rows is
// the export service's call.
package repository

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// NewFileRepository picks the repository implementation matching the
// extension of path
func NewFileRepository(path string) (domain.InstructionRepository, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVInstructionRepository(path), nil
	case ".xlsx":
		return NewXLSXInstructionRepository(path), nil
	default:
		return nil, fmt.Errorf("unsupported instruction file %q: want .csv or .xlsx", path)
	}
}
