package driver

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/pkg/password"
	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/storage"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// Handler handles driver management endpoints
type Handler struct {
	repo    *Repository
	storage *storage.ObjectStorage
}

// NewHandler creates driver handler
func NewHandler(repo *Repository, store *storage.ObjectStorage) *Handler {
	return &Handler{repo: repo, storage: store}
}

// Routes mounts the driver endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/status", h.UpdateStatus)
	r.Put("/{id}/vehicle", h.AssignVehicle)
	r.Post("/{id}/license-upload", h.LicenseUpload)

	return r
}

// List handles GET /drivers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := r.URL.Query().Get("status")
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	drivers, total, err := h.repo.List(r.Context(), status, search, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	out := make([]*DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, h.toResponse(d))
	}

	response.WithMeta(w, out, buildMeta(total, page, limit))
}

// Get handles GET /drivers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if d == nil {
		response.NotFound(w, "Driver not found")
		return
	}

	response.OK(w, h.toResponse(d))
}

// Create handles POST /drivers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDriverRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := h.repo.GetByEmail(r.Context(), email)
	if err != nil {
		response.InternalError(w)
		return
	}
	if existing != nil {
		response.Conflict(w, "A driver with this email already exists")
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		response.InternalError(w)
		return
	}

	now := time.Now()
	d := &Driver{
		ID:            uuid.New(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         email,
		Phone:         req.Phone,
		PasswordHash:  hash,
		LicenseNumber: req.LicenseNumber,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.repo.Create(r.Context(), d); err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, h.toResponse(d))
}

// UpdateStatus handles PUT /drivers/{id}/status. Approval and suspension both
// land here.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	var req UpdateStatusRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if d == nil {
		response.NotFound(w, "Driver not found")
		return
	}

	if req.Status == StatusApproved && !d.LicenseDocKey.Valid {
		response.Conflict(w, "Driver cannot be approved without a license document")
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), id, req.Status); err != nil {
		response.InternalError(w)
		return
	}

	d.Status = req.Status
	response.OK(w, h.toResponse(d))
}

// AssignVehicle handles PUT /drivers/{id}/vehicle
func (h *Handler) AssignVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	var req AssignVehicleRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	var vehicleID uuid.NullUUID
	if req.VehicleID != nil {
		parsed, err := uuid.Parse(*req.VehicleID)
		if err != nil {
			response.BadRequest(w, "Invalid vehicle ID")
			return
		}
		vehicleID = uuid.NullUUID{UUID: parsed, Valid: true}
	}

	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if d == nil {
		response.NotFound(w, "Driver not found")
		return
	}

	if err := h.repo.AssignVehicle(r.Context(), id, vehicleID); err != nil {
		response.InternalError(w)
		return
	}

	d.VehicleID = vehicleID
	response.OK(w, h.toResponse(d))
}

// LicenseUpload handles POST /drivers/{id}/license-upload
func (h *Handler) LicenseUpload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid driver ID")
		return
	}

	var req LicenseUploadRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	d, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if d == nil {
		response.NotFound(w, "Driver not found")
		return
	}

	ext := ".pdf"
	switch req.ContentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	}
	key := path.Join("drivers", id.String(), fmt.Sprintf("license-%d%s", time.Now().Unix(), ext))

	uploadURL, err := h.storage.PresignPut(r.Context(), key, req.ContentType, 15*time.Minute)
	if err != nil {
		response.BadGateway(w, "Failed to prepare upload")
		return
	}

	if err := h.repo.SetLicenseDocKey(r.Context(), id, key); err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, LicenseUploadResponse{UploadURL: uploadURL, Key: key})
}

func (h *Handler) toResponse(d *Driver) *DriverResponse {
	resp := &DriverResponse{Driver: d}
	if d.LicenseDocKey.Valid {
		resp.LicenseDocURL = h.storage.GetURL(d.LicenseDocKey.String)
	}
	return resp
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
