package repository

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wirasentana/aba-export-service/internal/domain"
	"github.com/wirasentana/aba-export-service/pkg/fileutil"
)

// UploadRepository implements the InstructionRepository interface for a file
// received over HTTP and held in memory. The format is decided by the
// extension of the uploaded name.
type UploadRepository struct {
	name string
	data []byte
}

// NewUploadRepository wraps an uploaded instruction file so it can serve
// instructions like its file-backed counterparts
func NewUploadRepository(name string, data []byte) (*UploadRepository, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
	default:
		return nil, fmt.Errorf("unsupported instruction file %q: want .csv or .xlsx", name)
	}

	return &UploadRepository{
		name: name,
		data: data,
	}, nil
}

// Source returns the name the file was uploaded under
func (r *UploadRepository) Source() string {
	return filepath.Base(r.name)
}

// GetInstructions parses the buffered upload into payment instructions
func (r *UploadRepository) GetInstructions() ([]domain.PaymentInstruction, error) {
	if strings.EqualFold(filepath.Ext(r.name), ".xlsx") {
		f, err := excelize.OpenReader(bytes.NewReader(r.data))
		if err != nil {
			return nil, fmt.Errorf("opening uploaded workbook: %w", err)
		}
		defer f.Close()

		return instructionsFromWorkbook(f)
	}

	return instructionsFromCSV(fileutil.NewCSVBufferReader(r.data))
}
