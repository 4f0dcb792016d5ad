package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	apierrors "growdash/internal/errors"
	customMiddleware "growdash/internal/middleware"
	"growdash/pkg/contracts/domain"
)

// DashboardHandler serves the three dashboard views as JSON.
type DashboardHandler struct {
	service      DashboardServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	params       *customMiddleware.QueryParamValidator
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service DashboardServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "dashboard_handler")),
		errorHandler: errorHandler,
		params:       customMiddleware.NewQueryParamValidator(logger, errorHandler),
	}
}

// Routes returns the dashboard routes.
func (h *DashboardHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/overview", h.Overview)
	r.Get("/environment", h.Environment)
	r.Get("/growth", h.Growth)
	r.Get("/schools", h.Schools)
	r.Post("/data/reload", h.Reload)

	return r
}

// Overview handles GET /api/overview
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Overview(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// Environment handles GET /api/environment?school=
func (h *DashboardHandler) Environment(w http.ResponseWriter, r *http.Request) {
	school, ok := h.schoolParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Environment(r.Context(), school)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// Growth handles GET /api/growth?school=
func (h *DashboardHandler) Growth(w http.ResponseWriter, r *http.Request) {
	school, ok := h.schoolParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Growth(r.Context(), school)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, resp)
}

// Schools handles GET /api/schools
func (h *DashboardHandler) Schools(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Schools(r.Context()))
}

// Reload handles POST /api/data/reload
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetReqID(r.Context())

	h.logger.InfoContext(r.Context(), "dataset reload requested",
		slog.String("request_id", reqID),
		slog.String("remote_addr", r.RemoteAddr))

	resp, err := h.service.Reload(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "dataset reload failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, resp)
}

// schoolParam reads and validates the school query parameter. Empty
// means all schools. The validator NFC-normalizes the name before the
// table lookup and writes the problem document on an unknown school.
func (h *DashboardHandler) schoolParam(w http.ResponseWriter, r *http.Request) (domain.School, bool) {
	school, ok := h.params.ValidateSchool(w, r, "school")
	if !ok {
		return "", false
	}
	return domain.School(school), true
}
