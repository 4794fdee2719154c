package admin

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest for POST /admin/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse after successful login
type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Admin       *AdminResponse `json:"admin"`
}

// CreateAdminRequest for POST /admin-accounts
type CreateAdminRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=7,max=20"`
	Role      string `json:"role" validate:"required,admin_role"`
	Password  string `json:"password" validate:"required,min=8"`
}

// UpdateStatusRequest for PUT /admin-accounts/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,account_status"`
}

// AdminResponse represents an admin account in the API
type AdminResponse struct {
	ID          uuid.UUID     `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Role        string        `json:"role"`
	Status      string        `json:"status"`
	Permissions PermissionSet `json:"permissions"`
	CreatedBy   *uuid.UUID    `json:"created_by,omitempty"`
	LastLoginAt *string       `json:"last_login_at,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// AdminResponseFromEntity converts entity to response
func AdminResponseFromEntity(a *AdminAccount) *AdminResponse {
	resp := &AdminResponse{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Role:        string(a.Role),
		Status:      string(a.Status),
		Permissions: a.PermissionSet,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}

	if a.CreatedBy.Valid {
		id := a.CreatedBy.UUID
		resp.CreatedBy = &id
	}
	if a.LastLoginAt.Valid {
		s := a.LastLoginAt.Time.Format(time.RFC3339)
		resp.LastLoginAt = &s
	}

	return resp
}
