package admin

import "testing"

var allRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleExecutiveAdmin, RoleRideManager}

func TestHierarchyContainsSelf(t *testing.T) {
	for _, role := range allRoles {
		found := false
		for _, r := range Hierarchy(role) {
			if r == role {
				found = true
			}
		}
		if !found {
			t.Errorf("Hierarchy(%s) does not contain %s", role, role)
		}
	}
}

func TestHierarchyUnknownRoleFallsBackToMostRestrictive(t *testing.T) {
	h := Hierarchy(Role("intern"))
	if len(h) != 1 || h[0] != RoleRideManager {
		t.Errorf("Hierarchy(unknown) = %v, want [ride_manager]", h)
	}
}

func TestCanCreateNeverAllowsPeers(t *testing.T) {
	for _, role := range allRoles {
		if CanCreate(role, role) {
			t.Errorf("CanCreate(%s, %s) = true, want false", role, role)
		}
	}
}

func TestCanCreate(t *testing.T) {
	tests := []struct {
		viewer, target Role
		want           bool
	}{
		{RoleSuperAdmin, RoleSuperAdmin, false},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleExecutiveAdmin, true},
		{RoleSuperAdmin, RoleRideManager, true},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleExecutiveAdmin, true},
		{RoleAdmin, RoleRideManager, true},
		{RoleExecutiveAdmin, RoleAdmin, false},
		{RoleExecutiveAdmin, RoleExecutiveAdmin, false},
		{RoleExecutiveAdmin, RoleRideManager, true},
		// ride_manager is a leaf role: it can provision no one at all
		{RoleRideManager, RoleSuperAdmin, false},
		{RoleRideManager, RoleAdmin, false},
		{RoleRideManager, RoleExecutiveAdmin, false},
		{RoleRideManager, RoleRideManager, false},
	}

	for _, tt := range tests {
		if got := CanCreate(tt.viewer, tt.target); got != tt.want {
			t.Errorf("CanCreate(%s, %s) = %v, want %v", tt.viewer, tt.target, got, tt.want)
		}
	}
}

func TestCanManageIncludesSelf(t *testing.T) {
	for _, role := range allRoles {
		if !CanManage(role, role) {
			t.Errorf("CanManage(%s, %s) = false, want true", role, role)
		}
	}
	if CanManage(RoleExecutiveAdmin, RoleAdmin) {
		t.Error("executive_admin must not manage admin")
	}
}
