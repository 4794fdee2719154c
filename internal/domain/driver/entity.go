package driver

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Driver statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusSuspended = "suspended"
)

// Driver represents a driver account managed from the dashboard
type Driver struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	FirstName     string         `db:"first_name" json:"first_name"`
	LastName      string         `db:"last_name" json:"last_name"`
	Email         string         `db:"email" json:"email"`
	Phone         string         `db:"phone" json:"phone"`
	PasswordHash  string         `db:"password_hash" json:"-"`
	LicenseNumber string         `db:"license_number" json:"license_number"`
	LicenseDocKey sql.NullString `db:"license_doc_key" json:"-"`
	Status        string         `db:"status" json:"status"`
	Rating        float64        `db:"rating" json:"rating"`
	TotalRides    int            `db:"total_rides" json:"total_rides"`
	VehicleID     uuid.NullUUID  `db:"vehicle_id" json:"vehicle_id,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

// FullName returns the driver's full name
func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
