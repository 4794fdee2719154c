package ride

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/domain/driver"
	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// Handler handles ride management endpoints
type Handler struct {
	repo    *Repository
	drivers *driver.Repository
}

// NewHandler creates ride handler
func NewHandler(repo *Repository, drivers *driver.Repository) *Handler {
	return &Handler{repo: repo, drivers: drivers}
}

// Routes mounts the ride endpoints behind the given middleware
func (h *Handler) Routes(mws ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	for _, mw := range mws {
		r.Use(mw)
	}

	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Put("/{id}/driver", h.AssignDriver)
	r.Put("/{id}/status", h.UpdateStatus)

	return r
}

// List handles GET /rides
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)
	status := r.URL.Query().Get("status")
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	rides, total, err := h.repo.List(r.Context(), status, search, limit, (page-1)*limit)
	if err != nil {
		response.InternalError(w)
		return
	}

	pages := (total + limit - 1) / limit
	response.WithMeta(w, rides, response.Meta{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	})
}

// Get handles GET /rides/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid ride ID")
		return
	}

	rd, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if rd == nil {
		response.NotFound(w, "Ride not found")
		return
	}

	response.OK(w, rd)
}

// AssignDriver handles PUT /rides/{id}/driver. The driver must be approved and
// the ride still in requested state.
func (h *Handler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid ride ID")
		return
	}

	var req AssignDriverRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationError(w, errs)
		return
	}
	driverID, _ := uuid.Parse(req.DriverID)

	rd, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if rd == nil {
		response.NotFound(w, "Ride not found")
		return
	}
	if rd.Status != StatusRequested {
		response.Conflict(w, "Ride already has a driver or is no longer open")
		return
	}

	d, err := h.drivers.GetByID(r.Context(), driverID)
	if err != nil {
		response.InternalError(w)
		return
	}
	if d == nil {
		response.NotFound(w, "Driver not found")
		return
	}
	if d.Status != driver.StatusApproved {
		response.Conflict(w, "Driver is not approved")
		return
	}
	if !d.VehicleID.Valid {
		response.Conflict(w, "Driver has no vehicle assigned")
		return
	}

	if err := h.repo.AssignDriver(r.Context(), id, d.ID, d.VehicleID.UUID); err != nil {
		response.InternalError(w)
		return
	}

	rd.DriverID = uuid.NullUUID{UUID: d.ID, Valid: true}
	rd.VehicleID = d.VehicleID
	rd.Status = StatusAssigned
	response.OK(w, rd)
}

// UpdateStatus handles PUT /rides/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid ride ID")
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

	rd, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		response.InternalError(w)
		return
	}
	if rd == nil {
		response.NotFound(w, "Ride not found")
		return
	}

	if !CanTransition(rd.Status, req.Status) {
		response.Conflict(w, "Ride cannot move from "+rd.Status+" to "+req.Status)
		return
	}

	var cancelReason sql.NullString
	if req.Status == StatusCancelled && req.CancelReason != "" {
		cancelReason = sql.NullString{String: req.CancelReason, Valid: true}
	}

	if err := h.repo.UpdateStatus(r.Context(), id, req.Status, cancelReason); err != nil {
		response.InternalError(w)
		return
	}

	rd.Status = req.Status
	rd.CancelReason = cancelReason
	response.OK(w, rd)
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
