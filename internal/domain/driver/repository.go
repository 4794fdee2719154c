package driver

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles driver data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates driver repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, d *Driver) error {
	query := `
		INSERT INTO drivers (id, first_name, last_name, email, phone, password_hash,
			license_number, status, rating, total_rides, created_at, updated_at)
		VALUES (:id, :first_name, :last_name, :email, :phone, :password_hash,
			:license_number, :status, :rating, :total_rides, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, d)
	return err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Driver, error) {
	query := `SELECT * FROM drivers WHERE id = $1`
	var d Driver
	err := r.db.GetContext(ctx, &d, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*Driver, error) {
	query := `SELECT * FROM drivers WHERE email = $1`
	var d Driver
	err := r.db.GetContext(ctx, &d, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// List returns drivers matching the status filter and search term, newest first
func (r *Repository) List(ctx context.Context, status, search string, limit, offset int) ([]*Driver, int, error) {
	query := `
		SELECT * FROM drivers
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%'
		       OR email ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`
	var drivers []*Driver
	if err := r.db.SelectContext(ctx, &drivers, query, status, search, limit, offset); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*) FROM drivers
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR first_name ILIKE '%' || $2 || '%' OR last_name ILIKE '%' || $2 || '%'
		       OR email ILIKE '%' || $2 || '%' OR phone ILIKE '%' || $2 || '%')
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, status, search); err != nil {
		return nil, 0, err
	}

	return drivers, total, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE drivers SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	return err
}

func (r *Repository) AssignVehicle(ctx context.Context, id uuid.UUID, vehicleID uuid.NullUUID) error {
	query := `UPDATE drivers SET vehicle_id = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, vehicleID)
	return err
}

func (r *Repository) SetLicenseDocKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE drivers SET license_doc_key = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, key)
	return err
}
