package report

import (
	"encoding/json"

	"github.com/wirasentana/aba-export-service/internal/domain"
)

// OutputFormatter defines the interface for formatting export summaries
type OutputFormatter interface {
	Format(summary domain.ExportSummary) ([]byte, error)
	FileExtension() string
}

// JSONFormatter formats export summaries as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(summary domain.ExportSummary) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}
