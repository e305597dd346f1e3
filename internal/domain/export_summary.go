package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExportSummary describes the outcome of one table-to-document conversion.
type ExportSummary struct {
	Source          string
	ProcessingDate  time.Time
	RowsRead        int
	AcceptedRecords int
	SkippedRows     int
	TotalCents      int64
	TotalAmount     decimal.Decimal // TotalCents expressed in dollars
}
