package repository

import (
	"fmt"
	"path/filepath"

	"github.com/wirasentana/aba-export-service/internal/domain"
	"github.com/wirasentana/aba-export-service/pkg/fileutil"
)

// CSVInstructionRepository implements the InstructionRepository interface for CSV files
type CSVInstructionRepository struct {
	FilePath string
}

// NewCSVInstructionRepository creates a new CSVInstructionRepository
func NewCSVInstructionRepository(filePath string) *CSVInstructionRepository {
	return &CSVInstructionRepository{
		FilePath: filePath,
	}
}

// Source returns the name of the file the instructions come from
func (r *CSVInstructionRepository) Source() string {
	return filepath.Base(r.FilePath)
}

// GetInstructions reads every data row of the CSV file as a payment
// instruction, in file order
func (r *CSVInstructionRepository) GetInstructions() ([]domain.PaymentInstruction, error) {
	return instructionsFromCSV(fileutil.NewCSVReader(r.FilePath))
}

// instructionsFromCSV drains an already configured CSV reader. Shared by the
// file and upload repositories.
func instructionsFromCSV(reader *fileutil.CSVReader) ([]domain.PaymentInstruction, error) {
	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading instruction header: %w", err)
	}

	columnMap, err := createHeaderMap(header, domain.RequiredColumns)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}

	var instructions []domain.PaymentInstruction
	var rowProcessorFn = func(row []string) error {
		instructions = append(instructions, instructionFromRow(row, columnMap))
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing instruction rows: %w", err)
	}

	return instructions, nil
}
