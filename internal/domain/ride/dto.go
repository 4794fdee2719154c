package ride

// AssignDriverRequest assigns an approved driver to a requested ride
type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// UpdateStatusRequest moves a ride through its lifecycle
type UpdateStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=assigned in_progress completed cancelled"`
	CancelReason string `json:"cancel_reason" validate:"omitempty,max=500"`
}
