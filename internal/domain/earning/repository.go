package earning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles earnings data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates earnings repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List returns earnings in the given period, newest first
func (r *Repository) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*Earning, int, error) {
	query := `
		SELECT * FROM earnings
		WHERE completed_at >= $1 AND completed_at < $2
		ORDER BY completed_at DESC
		LIMIT $3 OFFSET $4
	`
	var earnings []*Earning
	if err := r.db.SelectContext(ctx, &earnings, query, from, to, limit, offset); err != nil {
		return nil, 0, err
	}

	countQuery := `SELECT COUNT(*) FROM earnings WHERE completed_at >= $1 AND completed_at < $2`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, from, to); err != nil {
		return nil, 0, err
	}

	return earnings, total, nil
}

// ListByDriver returns one driver's earnings in the given period
func (r *Repository) ListByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time, limit, offset int) ([]*Earning, error) {
	query := `
		SELECT * FROM earnings
		WHERE driver_id = $1 AND completed_at >= $2 AND completed_at < $3
		ORDER BY completed_at DESC
		LIMIT $4 OFFSET $5
	`
	var earnings []*Earning
	if err := r.db.SelectContext(ctx, &earnings, query, driverID, from, to, limit, offset); err != nil {
		return nil, err
	}
	return earnings, nil
}

// GetStats aggregates revenue totals for the dashboard
func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			COALESCE(SUM(gross_amount), 0) AS total_revenue,
			COALESCE(SUM(commission), 0) AS total_commission,
			COUNT(*) AS total_rides,
			COALESCE(SUM(gross_amount) FILTER (WHERE completed_at >= date_trunc('day', NOW())), 0) AS revenue_today,
			COALESCE(SUM(gross_amount) FILTER (WHERE completed_at >= date_trunc('week', NOW())), 0) AS revenue_week,
			COALESCE(SUM(gross_amount) FILTER (WHERE completed_at >= date_trunc('month', NOW())), 0) AS revenue_month
		FROM earnings
	`
	var stats Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DriverTotals returns the per-driver payout breakdown for the given period
func (r *Repository) DriverTotals(ctx context.Context, from, to time.Time) ([]*DriverTotal, error) {
	query := `
		SELECT
			e.driver_id,
			d.first_name || ' ' || d.last_name AS driver_name,
			COUNT(*) AS rides,
			COALESCE(SUM(e.gross_amount), 0) AS gross_amount,
			COALESCE(SUM(e.driver_payout), 0) AS driver_payout
		FROM earnings e
		JOIN drivers d ON d.id = e.driver_id
		WHERE e.completed_at >= $1 AND e.completed_at < $2
		GROUP BY e.driver_id, d.first_name, d.last_name
		ORDER BY gross_amount DESC
	`
	var totals []*DriverTotal
	if err := r.db.SelectContext(ctx, &totals, query, from, to); err != nil {
		return nil, err
	}
	return totals, nil
}
