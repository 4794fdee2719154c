package rental

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// Handler handles rental package endpoints
type Handler struct {
	repo *Repository
}

// NewHandler creates rental handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Routes mounts the rental package endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.ListPackages)
	r.Post("/", h.CreatePackage)
	r.Get("/{id}", h.GetPackage)
	r.Put("/{id}", h.UpdatePackage)
	r.Delete("/{id}", h.DeletePackage)
	r.Post("/{id}/sub-packages", h.CreateSubPackage)
	r.Delete("/sub-packages/{subID}", h.DeleteSubPackage)
	r.Put("/sub-packages/{subID}/prices", h.SetPrice)

	return r
}

// ListPackages handles GET /rental-packages
func (h *Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.repo.ListPackages(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, packages)
}

// GetPackage handles GET /rental-packages/{id}
func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	p, err := h.repo.GetPackage(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if p == nil {
		response.NotFound(w, "Package not found")
		return
	}

	response.OK(w, p)
}

// CreatePackage handles POST /rental-packages
func (h *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req CreatePackageRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	now := time.Now()
	p := &Package{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.CreatePackage(r.Context(), p); err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, p)
}

// UpdatePackage handles PUT /rental-packages/{id}
func (h *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	var req UpdatePackageRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.repo.GetPackage(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if p == nil {
		response.NotFound(w, "Package not found")
		return
	}

	p.Name = req.Name
	p.Description = req.Description
	p.IsActive = *req.IsActive

	if err := h.repo.UpdatePackage(r.Context(), p); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, p)
}

// DeletePackage handles DELETE /rental-packages/{id}
func (h *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	if err := h.repo.DeletePackage(r.Context(), id); err != nil {
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// CreateSubPackage handles POST /rental-packages/{id}/sub-packages
func (h *Handler) CreateSubPackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid package ID")
		return
	}

	var req CreateSubPackageRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p, err := h.repo.GetPackage(r.Context(), packageID)
	if err != nil {
		response.InternalError(w)
		return
	}
	if p == nil {
		response.NotFound(w, "Package not found")
		return
	}

	now := time.Now()
	sp := &SubPackage{
		ID:         uuid.New(),
		PackageID:  packageID,
		Name:       req.Name,
		Hours:      req.Hours,
		IncludedKm: req.IncludedKm,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.repo.CreateSubPackage(r.Context(), sp); err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, sp)
}

// DeleteSubPackage handles DELETE /rental-packages/sub-packages/{subID}
func (h *Handler) DeleteSubPackage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "subID"))
	if err != nil {
		response.BadRequest(w, "Invalid sub-package ID")
		return
	}

	if err := h.repo.DeleteSubPackage(r.Context(), id); err != nil {
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}

// SetPrice handles PUT /rental-packages/sub-packages/{subID}/prices
func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	subID, err := uuid.Parse(chi.URLParam(r, "subID"))
	if err != nil {
		response.BadRequest(w, "Invalid sub-package ID")
		return
	}

	var req SetPriceRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sp, err := h.repo.GetSubPackage(r.Context(), subID)
	if err != nil {
		response.InternalError(w)
		return
	}
	if sp == nil {
		response.NotFound(w, "Sub-package not found")
		return
	}

	now := time.Now()
	price := &PackagePrice{
		ID:           uuid.New(),
		SubPackageID: subID,
		VehicleType:  req.VehicleType,
		BasePrice:    req.BasePrice,
		PricePerKm:   req.PricePerKm,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repo.UpsertPrice(r.Context(), price); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, price)
}
