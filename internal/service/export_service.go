package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wirasentana/aba-export-service/internal/aba"
	"github.com/wirasentana/aba-export-service/internal/domain"
)

// ExportService orchestrates one conversion: payment instructions in, an
// assembled direct-entry document out
type ExportService struct {
	repo       domain.InstructionRepository
	originator domain.Originator
	logger     *zap.Logger
}

// NewExportService creates a new ExportService
func NewExportService(
	repo domain.InstructionRepository,
	originator domain.Originator,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExportService{
		repo:       repo,
		originator: originator,
		logger:     logger,
	}
}

// ExportResult carries the encoded document together with its run summary
type ExportResult struct {
	Document *aba.Document
	Summary  domain.ExportSummary
}

// Export performs the conversion for the given processing date: one detail
// record per complete instruction, bracketed by the descriptive and file
// total records. Incomplete rows are skipped and counted; a malformed amount
// on a complete row aborts the whole export.
func (s *ExportService) Export(processingDate time.Time) (ExportResult, error) {
	if err := s.originator.Validate(); err != nil {
		return ExportResult{}, fmt.Errorf("checking originator profile: %w", err)
	}

	instructions, err := s.repo.GetInstructions()
	if err != nil {
		return ExportResult{}, fmt.Errorf("fetching payment instructions: %w", err)
	}

	encoder := aba.NewEncoder(s.originator, processingDate)

	var batch aba.Batch
	skipped := 0
	for i, instruction := range instructions {
		record, cents, ok, err := encoder.Detail(instruction)
		if err != nil {
			// Row numbers are 1-based and count the header row, so data row i
			// sits at sheet row i+2.
			return ExportResult{}, fmt.Errorf("encoding row %d of %s: %w", i+2, s.repo.Source(), err)
		}
		if !ok {
			skipped++
			s.logger.Debug("skipping incomplete row",
				zap.String("source", s.repo.Source()),
				zap.Int("row", i+2),
			)
			continue
		}

		batch.Add(record, cents)
	}

	document, err := encoder.Assemble(&batch)
	if err != nil {
		return ExportResult{}, fmt.Errorf("assembling document: %w", err)
	}

	summary := domain.ExportSummary{
		Source:          s.repo.Source(),
		ProcessingDate:  processingDate,
		RowsRead:        len(instructions),
		AcceptedRecords: batch.Count(),
		SkippedRows:     skipped,
		TotalCents:      batch.TotalCents(),
		TotalAmount:     decimal.New(batch.TotalCents(), -2),
	}

	s.logger.Info("export assembled",
		zap.String("source", summary.Source),
		zap.Int("rows_read", summary.RowsRead),
		zap.Int("accepted", summary.AcceptedRecords),
		zap.Int("skipped", summary.SkippedRows),
		zap.String("total", summary.TotalAmount.StringFixed(2)),
	)

	return ExportResult{Document: document, Summary: summary}, nil
}
