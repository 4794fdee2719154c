package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles vehicle data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates vehicle repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, v *Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, model, plate_number, type, seats, rate_per_km, is_available, created_at, updated_at)
		VALUES (:id, :name, :model, :plate_number, :type, :seats, :rate_per_km, :is_available, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, v)
	return err
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	query := `SELECT * FROM vehicles WHERE id = $1`
	var v Vehicle
	err := r.db.GetContext(ctx, &v, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// List returns vehicles matching the search term, newest first
func (r *Repository) List(ctx context.Context, search string, limit, offset int) ([]*Vehicle, int, error) {
	query := `
		SELECT * FROM vehicles
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR plate_number ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var vehicles []*Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, query, search, limit, offset); err != nil {
		return nil, 0, err
	}

	countQuery := `
		SELECT COUNT(*) FROM vehicles
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR plate_number ILIKE '%' || $1 || '%')
	`
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, search); err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

func (r *Repository) Update(ctx context.Context, v *Vehicle) error {
	query := `
		UPDATE vehicles SET
			name = :name, model = :model, plate_number = :plate_number, type = :type,
			seats = :seats, rate_per_km = :rate_per_km, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, v)
	return err
}

func (r *Repository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE vehicles SET is_available = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, available)
	return err
}

func (r *Repository) SetPhotoKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE vehicles SET photo_key = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, key)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
