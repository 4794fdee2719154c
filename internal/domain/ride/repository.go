package ride

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles ride data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates ride repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Ride, error) {
	query := `SELECT * FROM rides WHERE id = $1`
	var rd Ride
	err := r.db.GetContext(ctx, &rd, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rd, nil
}

// List returns rides matching the status filter and search term, newest first
func (r *Repository) List(ctx context.Context, status, search string, limit, offset int) ([]*Ride, int, error) {
	query := `
		SELECT * FROM rides
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR customer_name ILIKE '%' || $2 || '%' OR customer_phone ILIKE '%' || $2 || '%'
		       OR pickup_address ILIKE '%' || $2 || '%' OR dropoff_address ILIKE '%' || $2 || '%')
		ORDER BY requested_at DESC
		LIMIT $3 OFFSET $4
	`
	var rides []*Ride
	if err := r.db.SelectContext(ctx, &rides, query, status, search, limit, offset); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*) FROM rides
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR customer_name ILIKE '%' || $2 || '%' OR customer_phone ILIKE '%' || $2 || '%'
		       OR pickup_address ILIKE '%' || $2 || '%' OR dropoff_address ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, status, search); err != nil {
		return nil, 0, err
	}

	return rides, total, nil
}

// ListByDriver returns a driver's rides, newest first
func (r *Repository) ListByDriver(ctx context.Context, driverID uuid.UUID, limit, offset int) ([]*Ride, error) {
	query := `
		SELECT * FROM rides
		WHERE driver_id = $1
		ORDER BY requested_at DESC
		LIMIT $2 OFFSET $3
	`
	var rides []*Ride
	if err := r.db.SelectContext(ctx, &rides, query, driverID, limit, offset); err != nil {
		return nil, err
	}
	return rides, nil
}

func (r *Repository) AssignDriver(ctx context.Context, id, driverID, vehicleID uuid.UUID) error {
	query := `
		UPDATE rides SET driver_id = $2, vehicle_id = $3, status = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, driverID, vehicleID, StatusAssigned)
	return err
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, cancelReason sql.NullString) error {
	query := `
		UPDATE rides SET
			status = $2,
			cancel_reason = $3,
			completed_at = CASE WHEN $2 = 'completed' THEN NOW() ELSE completed_at END,
			updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id, status, cancelReason)
	return err
}
