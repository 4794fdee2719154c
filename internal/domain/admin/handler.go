package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sawari/sawari-admin-api/internal/pkg/response"
	"github.com/sawari/sawari-admin-api/internal/pkg/validator"
)

// Handler handles admin HTTP requests
type Handler struct {
	service *Service
	tokens  *TokenService
}

// NewHandler creates admin handler
func NewHandler(service *Service, tokens *TokenService) *Handler {
	return &Handler{
		service: service,
		tokens:  tokens,
	}
}

// --- Authentication ---

// Login handles POST /auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	ip := r.Header.Get("X-Real-IP")
	if ip == "" {
		ip = r.RemoteAddr
	}

	account, err := h.service.Login(r.Context(), req.Email, req.Password, ip)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Unauthorized(w, "Invalid email or password")
		case errors.Is(err, ErrAccountNotActive):
			response.Forbidden(w, "Account is not active")
		default:
			response.InternalError(w)
		}
		return
	}

	token, err := h.tokens.Generate(account)
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, &LoginResponse{
		AccessToken: token,
		Admin:       AdminResponseFromEntity(account),
	})
}

// Me handles GET /auth/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	viewer := ViewerFrom(r.Context())
	if viewer == nil {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	response.OK(w, AdminResponseFromEntity(viewer))
}

// --- Admin accounts ---

// List handles GET /admin-accounts
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	viewer := ViewerFrom(r.Context())

	accounts, err := h.service.ListAdmins(r.Context(), viewer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]*AdminResponse, len(accounts))
	for i, a := range accounts {
		items[i] = AdminResponseFromEntity(a)
	}

	response.OK(w, items)
}

// Create handles POST /admin-accounts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	viewer := ViewerFrom(r.Context())
	account, err := h.service.CreateAdmin(r.Context(), viewer, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.Created(w, AdminResponseFromEntity(account))
}

// UpdateStatus handles PUT /admin-accounts/{id}/status. A status of active or
// inactive takes the toggle path, which rejects blocked targets; blocked
// takes the block path. Unblocking happens through the explicit unblock
// endpoint, never through this one.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid account ID")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	viewer := ViewerFrom(r.Context())

	var account *AdminAccount
	switch Status(req.Status) {
	case StatusBlocked:
		account, err = h.service.SetBlocked(r.Context(), viewer, targetID, true)
	default:
		account, err = h.service.SetActive(r.Context(), viewer, targetID, Status(req.Status) == StatusActive)
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, AdminResponseFromEntity(account))
}

// Unblock handles PUT /admin-accounts/{id}/unblock
func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid account ID")
		return
	}

	viewer := ViewerFrom(r.Context())
	account, err := h.service.SetBlocked(r.Context(), viewer, targetID, false)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, AdminResponseFromEntity(account))
}

// UpdatePermissions handles PUT /admin-accounts/{id}/permissions
func (h *Handler) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid account ID")
		return
	}

	var patch PermissionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	viewer := ViewerFrom(r.Context())
	account, err := h.service.UpdatePermissions(r.Context(), viewer, targetID, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response.OK(w, AdminResponseFromEntity(account))
}

// writeServiceError maps lifecycle errors to HTTP responses
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, ErrAuthorization):
		response.Forbidden(w, err.Error())
	case errors.Is(err, ErrSelfModification):
		response.Conflict(w, "You cannot modify your own account")
	case errors.Is(err, ErrIllegalState):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrUpdateInFlight):
		response.Conflict(w, "Another update for this account is still in progress")
	case errors.Is(err, ErrEmailTaken):
		response.Conflict(w, "Email already in use")
	case errors.Is(err, ErrNotFound):
		response.NotFound(w, "Admin account not found")
	case errors.Is(err, ErrCollaborator):
		response.BadGateway(w, err.Error())
	default:
		response.InternalError(w)
	}
}
