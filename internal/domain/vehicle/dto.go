package vehicle

// CreateVehicleRequest is the payload for adding a vehicle to the fleet
type CreateVehicleRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Model       string  `json:"model" validate:"required,min=1,max=100"`
	PlateNumber string  `json:"plate_number" validate:"required,min=3,max=20"`
	Type        string  `json:"type" validate:"required,vehicle_type"`
	Seats       int     `json:"seats" validate:"required,gte=1,lte=60"`
	RatePerKm   float64 `json:"rate_per_km" validate:"required,gte=0"`
}

// UpdateVehicleRequest is the payload for editing a vehicle
type UpdateVehicleRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Model       string  `json:"model" validate:"required,min=1,max=100"`
	PlateNumber string  `json:"plate_number" validate:"required,min=3,max=20"`
	Type        string  `json:"type" validate:"required,vehicle_type"`
	Seats       int     `json:"seats" validate:"required,gte=1,lte=60"`
	RatePerKm   float64 `json:"rate_per_km" validate:"required,gte=0"`
}

// UpdateAvailabilityRequest toggles whether a vehicle can be booked
type UpdateAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" validate:"required"`
}

// PhotoUploadRequest asks for a presigned upload slot for a vehicle photo
type PhotoUploadRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png image/webp"`
}

// PhotoUploadResponse carries the presigned URL the dashboard uploads to
type PhotoUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
}

// VehicleResponse is the API shape of a vehicle
type VehicleResponse struct {
	*Vehicle
	PhotoURL string `json:"photo_url,omitempty"`
}
