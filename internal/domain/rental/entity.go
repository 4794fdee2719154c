package rental

import (
	"time"

	"github.com/google/uuid"
)

// Package is a rental offering shown on the customer apps, e.g. "Airport
// Transfer" or "Full Day City".
type Package struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	SubPackages []*SubPackage `db:"-" json:"sub_packages,omitempty"`
}

// SubPackage is a duration/distance tier within a package, priced per vehicle
// type.
type SubPackage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PackageID  uuid.UUID `db:"package_id" json:"package_id"`
	Name       string    `db:"name" json:"name"`
	Hours      int       `db:"hours" json:"hours"`
	IncludedKm int       `db:"included_km" json:"included_km"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`

	Prices []*PackagePrice `db:"-" json:"prices,omitempty"`
}

// PackagePrice is the fare of a sub-package for one vehicle type
type PackagePrice struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SubPackageID uuid.UUID `db:"sub_package_id" json:"sub_package_id"`
	VehicleType  string    `db:"vehicle_type" json:"vehicle_type"`
	BasePrice    float64   `db:"base_price" json:"base_price"`
	PricePerKm   float64   `db:"price_per_km" json:"price_per_km"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
