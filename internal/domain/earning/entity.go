package earning

import (
	"time"

	"github.com/google/uuid"
)

// Earning is the revenue record of one completed ride
type Earning struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RideID       uuid.UUID `db:"ride_id" json:"ride_id"`
	DriverID     uuid.UUID `db:"driver_id" json:"driver_id"`
	GrossAmount  float64   `db:"gross_amount" json:"gross_amount"`
	Commission   float64   `db:"commission" json:"commission"`
	DriverPayout float64   `db:"driver_payout" json:"driver_payout"`
	CompletedAt  time.Time `db:"completed_at" json:"completed_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Stats aggregates revenue for the dashboard cards
type Stats struct {
	TotalRevenue    float64 `db:"total_revenue" json:"total_revenue"`
	TotalCommission float64 `db:"total_commission" json:"total_commission"`
	TotalRides      int     `db:"total_rides" json:"total_rides"`
	RevenueToday    float64 `db:"revenue_today" json:"revenue_today"`
	RevenueWeek     float64 `db:"revenue_week" json:"revenue_week"`
	RevenueMonth    float64 `db:"revenue_month" json:"revenue_month"`
}

// DriverTotal is one row of the per-driver payout breakdown
type DriverTotal struct {
	DriverID     uuid.UUID `db:"driver_id" json:"driver_id"`
	DriverName   string    `db:"driver_name" json:"driver_name"`
	Rides        int       `db:"rides" json:"rides"`
	GrossAmount  float64   `db:"gross_amount" json:"gross_amount"`
	DriverPayout float64   `db:"driver_payout" json:"driver_payout"`
}
