package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Directory is the admin directory collaborator: the authoritative store of
// AdminAccount records. Mutations return the post-mutation account, which the
// service treats as the source of truth.
type Directory interface {
	Create(ctx context.Context, account *AdminAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*AdminAccount, error)
	GetByEmail(ctx context.Context, email string) (*AdminAccount, error)
	List(ctx context.Context) ([]*AdminAccount, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*AdminAccount, error)
	UpdatePermissions(ctx context.Context, id uuid.UUID, perms PermissionSet) (*AdminAccount, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error
}

type directory struct {
	db *sqlx.DB
}

// NewDirectory creates the PostgreSQL-backed admin directory
func NewDirectory(db *sqlx.DB) Directory {
	return &directory{db: db}
}

func (d *directory) Create(ctx context.Context, account *AdminAccount) error {
	query := `
		INSERT INTO admin_accounts (
			id, first_name, last_name, email, phone, password_hash, role, status, created_by,
			perm_dashboard, perm_drivers, perm_vehicles, perm_rides,
			perm_earnings, perm_support, perm_notifications, perm_admin_management,
			created_at, updated_at
		) VALUES (
			:id, :first_name, :last_name, :email, :phone, :password_hash, :role, :status, :created_by,
			:perm_dashboard, :perm_drivers, :perm_vehicles, :perm_rides,
			:perm_earnings, :perm_support, :perm_notifications, :perm_admin_management,
			:created_at, :updated_at
		)
	`
	_, err := d.db.NamedExecContext(ctx, query, account)
	return err
}

func (d *directory) GetByID(ctx context.Context, id uuid.UUID) (*AdminAccount, error) {
	query := `SELECT * FROM admin_accounts WHERE id = $1`
	var account AdminAccount
	err := d.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (d *directory) GetByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	query := `SELECT * FROM admin_accounts WHERE email = $1`
	var account AdminAccount
	err := d.db.GetContext(ctx, &account, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (d *directory) List(ctx context.Context) ([]*AdminAccount, error) {
	query := `SELECT * FROM admin_accounts ORDER BY created_at DESC`
	var accounts []*AdminAccount
	err := d.db.SelectContext(ctx, &accounts, query)
	return accounts, err
}

func (d *directory) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*AdminAccount, error) {
	query := `
		UPDATE admin_accounts SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`
	var account AdminAccount
	if err := d.db.GetContext(ctx, &account, query, id, status); err != nil {
		return nil, err
	}
	return &account, nil
}

func (d *directory) UpdatePermissions(ctx context.Context, id uuid.UUID, perms PermissionSet) (*AdminAccount, error) {
	query := `
		UPDATE admin_accounts SET
			perm_dashboard = $2, perm_drivers = $3, perm_vehicles = $4, perm_rides = $5,
			perm_earnings = $6, perm_support = $7, perm_notifications = $8, perm_admin_management = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING *
	`
	var account AdminAccount
	err := d.db.GetContext(ctx, &account, query, id,
		perms.Dashboard,
		perms.Drivers,
		perms.Vehicles,
		perms.Rides,
		perms.Earnings,
		perms.Support,
		perms.Notifications,
		perms.AdminManagement,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (d *directory) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error {
	query := `UPDATE admin_accounts SET last_login_at = NOW(), last_login_ip = $2 WHERE id = $1`
	_, err := d.db.ExecContext(ctx, query, id, ip)
	return err
}
