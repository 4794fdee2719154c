package driver

// CreateDriverRequest is the payload for registering a driver from the dashboard
type CreateDriverRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=2,max=100"`
	LastName      string `json:"last_name" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=7,max=20"`
	Password      string `json:"password" validate:"required,min=8"`
	LicenseNumber string `json:"license_number" validate:"required,min=3,max=50"`
}

// UpdateStatusRequest changes a driver's status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved suspended"`
}

// AssignVehicleRequest links a driver to a fleet vehicle. A null vehicle_id
// unassigns the current one.
type AssignVehicleRequest struct {
	VehicleID *string `json:"vehicle_id"`
}

// LicenseUploadRequest asks for a presigned upload slot for the license document
type LicenseUploadRequest struct {
	ContentType string `json:"content_type" validate:"required,oneof=image/jpeg image/png application/pdf"`
}

// LicenseUploadResponse carries the presigned URL the dashboard uploads to
type LicenseUploadResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
}

// DriverResponse is the API shape of a driver
type DriverResponse struct {
	*Driver
	LicenseDocURL string `json:"license_doc_url,omitempty"`
}
