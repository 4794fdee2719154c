package notification

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Notification kinds
const (
	KindSystem       = "system"
	KindRide         = "ride"
	KindDriver       = "driver"
	KindAnnouncement = "announcement"
)

// Notification is a message shown in the dashboard notification tray
type Notification struct {
	ID        uuid.UUID     `db:"id" json:"id"`
	Kind      string        `db:"kind" json:"kind"`
	Title     string        `db:"title" json:"title"`
	Body      string        `db:"body" json:"body"`
	AdminID   uuid.NullUUID `db:"admin_id" json:"admin_id,omitempty"` // null means broadcast
	CreatedBy uuid.NullUUID `db:"created_by" json:"created_by,omitempty"`
	ReadAt    sql.NullTime  `db:"read_at" json:"read_at,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}
