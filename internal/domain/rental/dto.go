package rental

// CreatePackageRequest creates a rental package
type CreatePackageRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdatePackageRequest edits a rental package
type UpdatePackageRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
	IsActive    *bool  `json:"is_active" validate:"required"`
}

// CreateSubPackageRequest adds a tier to a package
type CreateSubPackageRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Hours      int    `json:"hours" validate:"required,gte=1,lte=720"`
	IncludedKm int    `json:"included_km" validate:"required,gte=1"`
}

// SetPriceRequest sets the fare of one vehicle type within a tier
type SetPriceRequest struct {
	VehicleType string  `json:"vehicle_type" validate:"required,vehicle_type"`
	BasePrice   float64 `json:"base_price" validate:"required,gte=0"`
	PricePerKm  float64 `json:"price_per_km" validate:"gte=0"`
}
