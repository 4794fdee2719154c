package admin

// Feature identifies a dashboard feature area gated per admin account
type Feature string

const (
	FeatureDashboard       Feature = "dashboard"
	FeatureDrivers         Feature = "drivers"
	FeatureVehicles        Feature = "vehicles"
	FeatureRides           Feature = "rides"
	FeatureEarnings        Feature = "earnings"
	FeatureSupport         Feature = "support"
	FeatureNotifications   Feature = "notifications"
	FeatureAdminManagement Feature = "admin_management"
)

// Features lists every feature flag in dashboard menu order
var Features = []Feature{
	FeatureDashboard,
	FeatureDrivers,
	FeatureVehicles,
	FeatureRides,
	FeatureEarnings,
	FeatureSupport,
	FeatureNotifications,
	FeatureAdminManagement,
}

// PermissionSet is the fixed-shape per-account feature grant map. Every
// account carries exactly one, seeded from the default matrix at creation.
type PermissionSet struct {
	Dashboard       bool `db:"perm_dashboard" json:"dashboard"`
	Drivers         bool `db:"perm_drivers" json:"drivers"`
	Vehicles        bool `db:"perm_vehicles" json:"vehicles"`
	Rides           bool `db:"perm_rides" json:"rides"`
	Earnings        bool `db:"perm_earnings" json:"earnings"`
	Support         bool `db:"perm_support" json:"support"`
	Notifications   bool `db:"perm_notifications" json:"notifications"`
	AdminManagement bool `db:"perm_admin_management" json:"admin_management"`
}

// Has reports whether the set grants the given feature
func (p PermissionSet) Has(f Feature) bool {
	switch f {
	case FeatureDashboard:
		return p.Dashboard
	case FeatureDrivers:
		return p.Drivers
	case FeatureVehicles:
		return p.Vehicles
	case FeatureRides:
		return p.Rides
	case FeatureEarnings:
		return p.Earnings
	case FeatureSupport:
		return p.Support
	case FeatureNotifications:
		return p.Notifications
	case FeatureAdminManagement:
		return p.AdminManagement
	}
	return false
}

func (p *PermissionSet) set(f Feature, v bool) {
	switch f {
	case FeatureDashboard:
		p.Dashboard = v
	case FeatureDrivers:
		p.Drivers = v
	case FeatureVehicles:
		p.Vehicles = v
	case FeatureRides:
		p.Rides = v
	case FeatureEarnings:
		p.Earnings = v
	case FeatureSupport:
		p.Support = v
	case FeatureNotifications:
		p.Notifications = v
	case FeatureAdminManagement:
		p.AdminManagement = v
	}
}

// defaultPermissions maps each role to the permission set granted when an
// account of that role is created. Later edits are independent of this table.
var defaultPermissions = map[Role]PermissionSet{
	RoleSuperAdmin: {
		Dashboard: true, Drivers: true, Vehicles: true, Rides: true,
		Earnings: true, Support: true, Notifications: true, AdminManagement: true,
	},
	RoleAdmin: {
		Dashboard: true, Drivers: true, Vehicles: true, Rides: true,
		Earnings: true, Support: true, Notifications: true, AdminManagement: true,
	},
	RoleExecutiveAdmin: {
		Dashboard: true, Drivers: true, Vehicles: true, Rides: true,
		Support: true, Notifications: true,
	},
	RoleRideManager: {
		Dashboard: true, Rides: true,
	},
}

// DefaultPermissions returns the creation-time permission set for a role.
// Unrecognized roles get the most restrictive row.
func DefaultPermissions(role Role) PermissionSet {
	if p, ok := defaultPermissions[role]; ok {
		return p
	}
	return defaultPermissions[RoleRideManager]
}

// CanToggleFeature reports whether the viewer may see or edit another
// account's grant for the given feature. Granting a feature you do not hold
// yourself would be privilege escalation; only super_admin bypasses the
// own-grant requirement.
func CanToggleFeature(viewer *AdminAccount, f Feature) bool {
	if viewer == nil {
		return false
	}
	return viewer.Role == RoleSuperAdmin || viewer.PermissionSet.Has(f)
}

// PermissionPatch is a partial permission update: nil fields keep the
// target's prior value.
type PermissionPatch struct {
	Dashboard       *bool `json:"dashboard,omitempty"`
	Drivers         *bool `json:"drivers,omitempty"`
	Vehicles        *bool `json:"vehicles,omitempty"`
	Rides           *bool `json:"rides,omitempty"`
	Earnings        *bool `json:"earnings,omitempty"`
	Support         *bool `json:"support,omitempty"`
	Notifications   *bool `json:"notifications,omitempty"`
	AdminManagement *bool `json:"admin_management,omitempty"`
}

type patchEntry struct {
	feature Feature
	value   bool
}

// entries returns the fields present in the patch
func (p *PermissionPatch) entries() []patchEntry {
	var out []patchEntry
	add := func(f Feature, v *bool) {
		if v != nil {
			out = append(out, patchEntry{feature: f, value: *v})
		}
	}
	add(FeatureDashboard, p.Dashboard)
	add(FeatureDrivers, p.Drivers)
	add(FeatureVehicles, p.Vehicles)
	add(FeatureRides, p.Rides)
	add(FeatureEarnings, p.Earnings)
	add(FeatureSupport, p.Support)
	add(FeatureNotifications, p.Notifications)
	add(FeatureAdminManagement, p.AdminManagement)
	return out
}
