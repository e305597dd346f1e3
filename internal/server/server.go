// Package server exposes the export over HTTP: one table upload in, one
// direct-entry document out.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wirasentana/aba-export-service/internal/aba"
	"github.com/wirasentana/aba-export-service/internal/domain"
	"github.com/wirasentana/aba-export-service/internal/report"
	"github.com/wirasentana/aba-export-service/internal/repository"
	"github.com/wirasentana/aba-export-service/internal/service"
)

const (
	dateField      = "2006-01-02"
	attachmentDate = "020106"
)

// Server handles the HTTP surface of the export
type Server struct {
	originator     domain.Originator
	maxUploadBytes int64
	logger         *zap.Logger
	router         *mux.Router
}

// New creates a Server exporting on behalf of the given originator profile
func New(originator domain.Originator, maxUploadMB int, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		originator:     originator,
		maxUploadBytes: int64(maxUploadMB) << 20,
		logger:         logger,
	}

	router := mux.NewRouter()
	router.HandleFunc("/v1/export", s.handleExport).Methods("POST")
	router.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	router.Use(s.requestLogger)
	s.router = router

	return s
}

// Handler returns the root handler, request logging included
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleExport converts one uploaded instruction table into a downloadable
// direct-entry document. With ?summary=1 the JSON run summary is returned
// instead of the document body.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	batchID := uuid.New().String()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("parsing upload: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "missing 'file' upload field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("reading upload: %v", err))
		return
	}

	processingDate := time.Now()
	if v := r.FormValue("date"); v != "" {
		processingDate, err = time.Parse(dateField, v)
		if err != nil {
			s.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid date %q: want YYYY-MM-DD", v))
			return
		}
	}

	repo, err := repository.NewUploadRepository(header.Filename, data)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := service.NewExportService(repo, s.originator, s.logger).Export(processingDate)
	if err != nil {
		s.respondWithError(w, exportStatus(err), err.Error())
		return
	}

	w.Header().Set("X-Batch-Id", batchID)
	w.Header().Set("X-Accepted-Records", strconv.Itoa(result.Summary.AcceptedRecords))
	w.Header().Set("X-Skipped-Rows", strconv.Itoa(result.Summary.SkippedRows))

	if wantSummary(r) {
		out, err := report.NewJSONFormatter(false).Format(result.Summary)
		if err != nil {
			s.respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("formatting summary: %v", err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(out)
		return
	}

	name := fmt.Sprintf("payments-%s-%s.aba", processingDate.Format(attachmentDate), batchID[:8])
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if _, err := result.Document.WriteTo(w); err != nil {
		s.logger.Warn("writing document", zap.String("batch_id", batchID), zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// exportStatus maps an export failure onto a response code: bad rows are the
// client's to fix, a record length violation is ours.
func exportStatus(err error) int {
	switch {
	case errors.Is(err, aba.ErrInvalidAmount), errors.Is(err, aba.ErrFieldOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, aba.ErrRecordLength):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func wantSummary(r *http.Request) bool {
	v := r.URL.Query().Get("summary")
	return v == "1" || v == "true"
}

// Error response helper
func (s *Server) respondWithError(w http.ResponseWriter, status int, errMsg string) {
	s.logger.Warn("request failed", zap.Int("status", status), zap.String("error", errMsg))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   errMsg,
	})
}
