package settings

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Setting is a dashboard-editable configuration value, e.g. commission rate
// or support contact details. Values are stored as raw JSON so each key can
// carry its own shape.
type Setting struct {
	Key         string          `db:"key" json:"key"`
	Value       json.RawMessage `db:"value" json:"value"`
	Description string          `db:"description" json:"description"`
	UpdatedBy   uuid.NullUUID   `db:"updated_by" json:"updated_by,omitempty"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
