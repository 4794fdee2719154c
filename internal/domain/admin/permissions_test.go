package admin

import "testing"

func TestDefaultPermissionsRideManager(t *testing.T) {
	p := DefaultPermissions(RoleRideManager)

	for _, f := range Features {
		want := f == FeatureDashboard || f == FeatureRides
		if got := p.Has(f); got != want {
			t.Errorf("DefaultPermissions(ride_manager).Has(%s) = %v, want %v", f, got, want)
		}
	}
}

func TestDefaultPermissionsSuperAdminHasEverything(t *testing.T) {
	p := DefaultPermissions(RoleSuperAdmin)
	for _, f := range Features {
		if !p.Has(f) {
			t.Errorf("super_admin default is missing %s", f)
		}
	}
}

func TestDefaultPermissionsUnknownRoleIsRestrictive(t *testing.T) {
	if got, want := DefaultPermissions(Role("intern")), DefaultPermissions(RoleRideManager); got != want {
		t.Errorf("DefaultPermissions(unknown) = %+v, want ride_manager row", got)
	}
}

func TestCanToggleFeature(t *testing.T) {
	super := &AdminAccount{Role: RoleSuperAdmin}
	limited := &AdminAccount{
		Role:          RoleAdmin,
		PermissionSet: PermissionSet{Dashboard: true, Drivers: true},
	}

	if !CanToggleFeature(super, FeatureEarnings) {
		t.Error("super_admin must be able to toggle any feature")
	}
	if !CanToggleFeature(limited, FeatureDrivers) {
		t.Error("viewer holding drivers must be able to toggle drivers")
	}
	if CanToggleFeature(limited, FeatureEarnings) {
		t.Error("viewer without earnings must not toggle earnings")
	}
	if CanToggleFeature(nil, FeatureDashboard) {
		t.Error("nil viewer must not toggle anything")
	}
}

func TestPermissionPatchEntries(t *testing.T) {
	yes, no := true, false
	patch := &PermissionPatch{Drivers: &yes, Earnings: &no}

	entries := patch.entries()
	if len(entries) != 2 {
		t.Fatalf("entries() returned %d entries, want 2", len(entries))
	}
	if entries[0].feature != FeatureDrivers || entries[0].value != true {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].feature != FeatureEarnings || entries[1].value != false {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}
