package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	apierrors "growdash/internal/errors"
	"growdash/internal/exporter"
)

// ExportHandler serves the combined dataset downloads.
type ExportHandler struct {
	service      ExportServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewExportHandler creates a new export handler.
func NewExportHandler(service ExportServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ExportHandler {
	return &ExportHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "export_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the export routes.
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/environment", h.EnvironmentCSV)
	r.Get("/growth", h.GrowthXLSX)
	r.Get("/summary", h.GrowthSummaryCSV)

	return r
}

// EnvironmentCSV handles GET /api/export/environment
func (h *ExportHandler) EnvironmentCSV(w http.ResponseWriter, r *http.Request) {
	// Buffer the export so a late failure can still become a problem
	// document instead of a truncated download.
	var buf bytes.Buffer
	rows, err := h.service.EnvironmentCSV(r.Context(), &buf)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "serving environment export",
		slog.Int("rows", rows),
		slog.Int("bytes", buf.Len()))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", contentDisposition(exporter.EnvironmentFileName))
	w.Write(buf.Bytes())
}

// GrowthXLSX handles GET /api/export/growth
func (h *ExportHandler) GrowthXLSX(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	rows, err := h.service.GrowthXLSX(r.Context(), &buf)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "serving growth export",
		slog.Int("rows", rows),
		slog.Int("bytes", buf.Len()))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", contentDisposition(exporter.GrowthFileName))
	w.Write(buf.Bytes())
}

// GrowthSummaryCSV handles GET /api/export/summary
func (h *ExportHandler) GrowthSummaryCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.GrowthSummaryCSV(r.Context(), &buf); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", contentDisposition("생육요약_전체.csv"))
	w.Write(buf.Bytes())
}

// contentDisposition builds a Content-Disposition attachment header with
// an RFC 5987 encoded filename so the Korean names survive every browser.
func contentDisposition(filename string) string {
	return fmt.Sprintf(`attachment; filename="export"; filename*=UTF-8''%s`, url.PathEscape(filename))
}
