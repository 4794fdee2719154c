package vehicle

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/storage"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// Handler handles fleet management endpoints
type Handler struct {
	repo    *Repository
	storage *storage.ObjectStorage
}

// NewHandler creates vehicle handler
func NewHandler(repo *Repository, store *storage.ObjectStorage) *Handler {
	return &Handler{repo: repo, storage: store}
}

// Routes mounts the fleet endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}/availability", h.UpdateAvailability)
	r.Post("/{id}/photo-upload", h.PhotoUpload)
	r.Delete("/{id}", h.Delete)

	return r
}

// List handles GET /vehicles
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	vehicles, total, err := h.repo.List(r.Context(), search, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, h.toResponse(v))
	}

	response.WithMeta(w, out, buildMeta(total, page, limit))
}

// Get handles GET /vehicles/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if v == nil {
		response.NotFound(w, "Vehicle not found")
		return
	}

	response.OK(w, h.toResponse(v))
}

// Create handles POST /vehicles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	now := time.Now()
	v := &Vehicle{
		ID:          uuid.New(),
		Name:        req.Name,
		Model:       req.Model,
		PlateNumber: strings.ToUpper(strings.TrimSpace(req.PlateNumber)),
		Type:        req.Type,
		Seats:       req.Seats,
		RatePerKm:   req.RatePerKm,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(r.Context(), v); err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, h.toResponse(v))
}

// Update handles PUT /vehicles/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	var req UpdateVehicleRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if v == nil {
		response.NotFound(w, "Vehicle not found")
		return
	}

	v.Name = req.Name
	v.Model = req.Model
	v.PlateNumber = strings.ToUpper(strings.TrimSpace(req.PlateNumber))
	v.Type = req.Type
	v.Seats = req.Seats
	v.RatePerKm = req.RatePerKm

	if err := h.repo.Update(r.Context(), v); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, h.toResponse(v))
}

// UpdateAvailability handles PATCH /vehicles/{id}/availability
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	var req UpdateAvailabilityRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if v == nil {
		response.NotFound(w, "Vehicle not found")
		return
	}

	if err := h.repo.SetAvailability(r.Context(), id, *req.IsAvailable); err != nil {
		response.InternalError(w)
		return
	}

	v.IsAvailable = *req.IsAvailable
	response.OK(w, h.toResponse(v))
}

// PhotoUpload handles POST /vehicles/{id}/photo-upload. It returns a presigned
// PUT URL and records the object key on the vehicle.
func (h *Handler) PhotoUpload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	var req PhotoUploadRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if v == nil {
		response.NotFound(w, "Vehicle not found")
		return
	}

	ext := extensionFor(req.ContentType)
	key := path.Join("vehicles", id.String(), fmt.Sprintf("photo-%d%s", time.Now().Unix(), ext))

	uploadURL, err := h.storage.PresignPut(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		response.BadGateway(w, "Failed to prepare upload")
		return
	}

	if err := h.repo.SetPhotoKey(r.Context(), id, key); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, PhotoUploadResponse{
		UploadURL: uploadURL,
		Key:       key,
		PublicURL: h.storage.GetURL(key),
	})
}

// Delete handles DELETE /vehicles/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid vehicle ID")
		return
	}

	v, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if v == nil {
		response.NotFound(w, "Vehicle not found")
		return
	}

	if v.PhotoKey.Valid {
		_ = h.storage.Delete(r.Context(), v.PhotoKey.String)
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

func (h *Handler) toResponse(v *Vehicle) *VehicleResponse {
	resp := &VehicleResponse{Vehicle: v}
	if v.PhotoKey.Valid {
		resp.PhotoURL = h.storage.GetURL(v.PhotoKey.String)
	}
	return resp
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func buildMeta(total, page, limit int) response.Meta {
	pages := (total + limit - 1) / limit
	return response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
