package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Repository handles settings data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates settings repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]*Setting, error) {
	query := `SELECT * FROM settings ORDER BY key`
	var items []*Setting
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) Get(ctx context.Context, key string) (*Setting, error) {
	query := `SELECT * FROM settings WHERE key = $1`
	var s Setting
	err := r.db.GetContext(ctx, &s, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Upsert creates or replaces a setting
func (r *Repository) Upsert(ctx context.Context, s *Setting) error {
	query := `
		INSERT INTO settings (key, value, description, updated_by, updated_at)
		VALUES (:key, :value, :description, :updated_by, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
	`
	_, err := r.db.NamedExecContext(ctx, query, s)
	return err
}

func (r *Repository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM settings WHERE key = $1`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}
