package ride

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Ride statuses
const (
	StatusRequested  = "requested"
	StatusAssigned   = "assigned"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Ride represents a trip booked by a customer
type Ride struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	CustomerName   string         `db:"customer_name" json:"customer_name"`
	CustomerPhone  string         `db:"customer_phone" json:"customer_phone"`
	PickupAddress  string         `db:"pickup_address" json:"pickup_address"`
	DropoffAddress string         `db:"dropoff_address" json:"dropoff_address"`
	DriverID       uuid.NullUUID  `db:"driver_id" json:"driver_id,omitempty"`
	VehicleID      uuid.NullUUID  `db:"vehicle_id" json:"vehicle_id,omitempty"`
	DistanceKm     float64        `db:"distance_km" json:"distance_km"`
	Fare           float64        `db:"fare" json:"fare"`
	Status         string         `db:"status" json:"status"`
	CancelReason   sql.NullString `db:"cancel_reason" json:"cancel_reason,omitempty"`
	RequestedAt    time.Time      `db:"requested_at" json:"requested_at"`
	CompletedAt    sql.NullTime   `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

// validTransitions lists the allowed status moves for a ride
var validTransitions = map[string][]string{
	StatusRequested:  {StatusAssigned, StatusCancelled},
	StatusAssigned:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a ride may move from its current status to next
func CanTransition(current, next string) bool {
	for _, s := range validTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}
