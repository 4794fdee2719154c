package admin

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Status of an admin account
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// Valid reports whether the status is one of the defined values
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusBlocked:
		return true
	}
	return false
}

// AdminAccount represents one administrative user of the Sawari dashboard
type AdminAccount struct {
	ID           uuid.UUID     `db:"id" json:"id"`
	FirstName    string        `db:"first_name" json:"first_name"`
	LastName     string        `db:"last_name" json:"last_name"`
	Email        string        `db:"email" json:"email"`
	Phone        string        `db:"phone" json:"phone"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Role         Role          `db:"role" json:"role"`
	Status       Status        `db:"status" json:"status"`
	CreatedBy    uuid.NullUUID `db:"created_by" json:"created_by,omitempty"`
	PermissionSet
	LastLoginAt sql.NullTime `db:"last_login_at" json:"last_login_at,omitempty"`
	LastLoginIP sql.NullString `db:"last_login_ip" json:"-"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

// FullName returns the display name
func (a *AdminAccount) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Blocked reports whether the account is blocked. A blocked account's status
// and permissions are immutable until explicitly unblocked.
func (a *AdminAccount) Blocked() bool {
	return a.Status == StatusBlocked
}
