package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository handles notification data access
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates notification repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *Notification) error {
	query := `
		INSERT INTO notifications (id, kind, title, body, admin_id, created_by, created_at)
		VALUES (:id, :kind, :title, :body, :admin_id, :created_by, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, n)
	return err
}

// ListForAdmin returns broadcasts plus the admin's targeted notifications,
// newest first
func (r *Repository) ListForAdmin(ctx context.Context, adminID uuid.UUID, limit, offset int) ([]*Notification, error) {
	query := `
		SELECT * FROM notifications
		WHERE admin_id IS NULL OR admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	var notifications []*Notification
	if err := r.db.SelectContext(ctx, &notifications, query, adminID, limit, offset); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *Repository) MarkRead(ctx context.Context, id, adminID uuid.UUID) error {
	query := `
		UPDATE notifications SET read_at = NOW()
		WHERE id = $1 AND (admin_id IS NULL OR admin_id = $2) AND read_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, id, adminID)
	return err
}
