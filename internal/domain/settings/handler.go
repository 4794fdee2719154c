package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/domain/admin"
	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// UpsertRequest creates or replaces a setting
type UpsertRequest struct {
	Value       json.RawMessage `json:"value" validate:"required"`
	Description string          `json:"description" validate:"max=500"`
}

// Handler handles platform settings endpoints
type Handler struct {
	repo *Repository
}

// NewHandler creates settings handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes mounts the settings endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Get("/{key}", h.Get)
	r.Put("/{key}", h.Upsert)
	r.Delete("/{key}", h.Delete)

	return r
}

// List handles GET /settings
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, items)
}

// Get handles GET /settings/{key}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	s, err := h.repo.Get(r.Context(), key)
	if err != nil {
		response.InternalError(w)
		return
	}
	if s == nil {
		response.NotFound(w, "Setting not found")
		return
	}

	response.OK(w, s)
}

// Upsert handles PUT /settings/{key}
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if len(key) > 100 {
		response.BadRequest(w, "Setting key is too long")
		return
	}

	var req UpsertRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}
	if !json.Valid(req.Value) {
		response.BadRequest(w, "Setting value must be valid JSON")
		return
	}

	s := &Setting{
		Key:         key,
		Value:       req.Value,
		Description: req.Description,
	}
	if viewer := admin.ViewerFrom(r.Context()); viewer != nil {
		s.UpdatedBy = uuid.NullUUID{UUID: viewer.ID, Valid: true}
	}

	if err := h.repo.Upsert(r.Context(), s); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, s)
}

// Delete handles DELETE /settings/{key}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.repo.Delete(r.Context(), key); err != nil {
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
