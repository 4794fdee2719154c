package rental

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles rental package data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates rental repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePackage(ctx context.Context, p *Package) error {
	query := `
		INSERT INTO rental_packages (id, name, description, is_active, created_at, updated_at)
		VALUES (:id, :name, :description, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

// GetPackage loads a package with its sub-packages and prices
func (r *Repository) GetPackage(ctx context.Context, id uuid.UUID) (*Package, error) {
	query := `SELECT * FROM rental_packages WHERE id = $1`
	var p Package
	err := r.db.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	subQuery := `SELECT * FROM rental_sub_packages WHERE package_id = $1 ORDER BY hours`
	if err := r.db.SelectContext(ctx, &p.SubPackages, subQuery, id); err != nil {
		return nil, err
	}

	for _, sp := range p.SubPackages {
		priceQuery := `SELECT * FROM rental_package_prices WHERE sub_package_id = $1 ORDER BY vehicle_type`
		if err := r.db.SelectContext(ctx, &sp.Prices, priceQuery, sp.ID); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// ListPackages returns packages without their nested tiers
func (r *Repository) ListPackages(ctx context.Context) ([]*Package, error) {
	query := `SELECT * FROM rental_packages ORDER BY created_at DESC`
	var packages []*Package
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *Repository) UpdatePackage(ctx context.Context, p *Package) error {
	query := `
		UPDATE rental_packages SET name = :name, description = :description,
			is_active = :is_active, updated_at = NOW()
		WHERE id = :id
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *Repository) DeletePackage(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rental_packages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *Repository) CreateSubPackage(ctx context.Context, sp *SubPackage) error {
	query := `
		INSERT INTO rental_sub_packages (id, package_id, name, hours, included_km, created_at, updated_at)
		VALUES (:id, :package_id, :name, :hours, :included_km, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, sp)
	return err
}

func (r *Repository) GetSubPackage(ctx context.Context, id uuid.UUID) (*SubPackage, error) {
	query := `SELECT * FROM rental_sub_packages WHERE id = $1`
	var sp SubPackage
	err := r.db.GetContext(ctx, &sp, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

func (r *Repository) DeleteSubPackage(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rental_sub_packages WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// UpsertPrice sets the fare of one vehicle type within a sub-package
func (r *Repository) UpsertPrice(ctx context.Context, p *PackagePrice) error {
	query := `
		INSERT INTO rental_package_prices (id, sub_package_id, vehicle_type, base_price, price_per_km, created_at, updated_at)
		VALUES (:id, :sub_package_id, :vehicle_type, :base_price, :price_per_km, :created_at, :updated_at)
		ON CONFLICT (sub_package_id, vehicle_type) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			price_per_km = EXCLUDED.price_per_km,
			updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}
