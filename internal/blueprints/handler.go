package blueprints

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/formatio/formatio/internal/intake"
	"github.com/formatio/formatio/internal/render"
	"github.com/formatio/formatio/pkg/handlers"
	"github.com/formatio/formatio/pkg/pagination"
	"github.com/formatio/formatio/pkg/routes"
)

// maxBatchSize bounds how many intakes a single batch request may carry.
const maxBatchSize = 10

// Handler provides HTTP endpoints for blueprint operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// BatchRequest carries the intakes for a batch generation request.
type BatchRequest struct {
	Intakes []intake.Intake `json:"intakes"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "blueprints"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for blueprint endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/blueprints",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/pdf", Handler: h.PDF},
			{Method: "POST", Pattern: "", Handler: h.Generate},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/batch", Handler: h.Batch},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
		},
	}
}

// Generate accepts an intake, runs the generation workflow, and returns the
// persisted document.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var in intake.Intake
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalidIntake, err))
		return
	}

	gen, err := h.sys.Generate(r.Context(), in)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, gen)
}

// Batch accepts up to maxBatchSize intakes and generates them independently.
// The response reports per-item outcomes; partial failure is not an error.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %w", ErrInvalidIntake, err))
		return
	}

	if len(req.Intakes) == 0 || len(req.Intakes) > maxBatchSize {
		handlers.RespondError(
			w, h.logger, http.StatusBadRequest,
			fmt.Errorf("%w: batch must contain 1-%d intakes", ErrInvalidIntake, maxBatchSize),
		)
		return
	}

	results := h.sys.GenerateBatch(r.Context(), req.Intakes)
	handlers.RespondJSON(w, http.StatusOK, results)
}

// List returns a paginated list of blueprint summaries with optional query
// parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Search accepts a JSON body with pagination and filter criteria and returns
// matching blueprint summaries.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single stored blueprint by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	rec, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rec)
}

// PDF renders a stored blueprint as a downloadable document.
func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	rec, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data, err := render.Render(buildPDF(&rec.Document))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	filename := render.SanitizeFilename(rec.Document.Header.Title, "blueprint")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(data); err != nil {
		h.logger.Warn("pdf response write failed", "id", id, "error", err)
	}
}

// Delete removes a stored blueprint by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID rejects malformed path identifiers, including literal client
// placeholders like "undefined", before any lookup runs.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, r.PathValue("id"))
	}
	return id, nil
}
