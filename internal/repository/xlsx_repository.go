package repository

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// XLSXInstructionRepository implements the InstructionRepository interface
// for Excel workbooks. Instructions are read from the first sheet only.
type XLSXInstructionRepository struct {
	FilePath string
}

// NewXLSXInstructionRepository creates a new XLSXInstructionRepository
func NewXLSXInstructionRepository(filePath string) *XLSXInstructionRepository {
	return &XLSXInstructionRepository{
		FilePath: filePath,
	}
}

// Source returns the name of the workbook the instructions come from
func (r *XLSXInstructionRepository) Source() string {
	return filepath.Base(r.FilePath)
}

// GetInstructions reads every data row of the first sheet as a payment
// instruction, in sheet order
func (r *XLSXInstructionRepository) GetInstructions() ([]domain.PaymentInstruction, error) {
	f, err := excelize.OpenFile(r.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	return instructionsFromWorkbook(f)
}

// instructionsFromWorkbook extracts instructions from the first sheet of an
// already opened workbook. Shared by the file and upload repositories.
func instructionsFromWorkbook(f *excelize.File) ([]domain.PaymentInstruction, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	columnMap, err := createHeaderMap(rows[0], domain.RequiredColumns)
	if err != nil {
		return nil, fmt.Errorf("mapping sheet columns: %w", err)
	}

	var instructions []domain.PaymentInstruction
	for _, row := range rows[1:] {
		instructions = append(instructions, instructionFromRow(row, columnMap))
	}

	return instructions, nil
}
