package vehicle

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Vehicle represents one car of the rental fleet
type Vehicle struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Model       string         `db:"model" json:"model"`
	PlateNumber string         `db:"plate_number" json:"plate_number"`
	Type        string         `db:"type" json:"type"` // sedan, suv, hatchback, van, bike
	Seats       int            `db:"seats" json:"seats"`
	RatePerKm   float64        `db:"rate_per_km" json:"rate_per_km"`
	PhotoKey    sql.NullString `db:"photo_key" json:"-"`
	IsAvailable bool           `db:"is_available" json:"is_available"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
