package notification

// SendRequest creates a notification. Without admin_id it goes to every
// dashboard.
type SendRequest struct {
	Kind    string  `json:"kind" validate:"required,oneof=system ride driver announcement"`
	Title   string  `json:"title" validate:"required,min=1,max=200"`
	Body    string  `json:"body" validate:"required,min=1,max=2000"`
	AdminID *string `json:"admin_id" validate:"omitempty,uuid"`
}
