package admin

// Role represents an admin privilege tier
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleAdmin          Role = "admin"
	RoleExecutiveAdmin Role = "executive_admin"
	RoleRideManager    Role = "ride_manager"
)

// roleRank orders roles by privilege (higher = more privileged)
var roleRank = map[Role]int{
	RoleSuperAdmin:     100,
	RoleAdmin:          80,
	RoleExecutiveAdmin: 60,
	RoleRideManager:    40,
}

// roleHierarchy maps each role to the set of roles it may create or manage.
// Every row contains the role itself plus all strictly lower roles;
// ride_manager is a leaf role that manages only itself.
var roleHierarchy = map[Role][]Role{
	RoleSuperAdmin:     {RoleSuperAdmin, RoleAdmin, RoleExecutiveAdmin, RoleRideManager},
	RoleAdmin:          {RoleAdmin, RoleExecutiveAdmin, RoleRideManager},
	RoleExecutiveAdmin: {RoleExecutiveAdmin, RoleRideManager},
	RoleRideManager:    {RoleRideManager},
}

// Valid reports whether the role is one of the defined tiers
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank returns the privilege rank of the role, 0 for unknown roles
func (r Role) Rank() int {
	return roleRank[r]
}

// Hierarchy returns the closed set of roles the given role may create or
// manage, always including the role itself. Unrecognized roles fall back to
// the most restrictive hierarchy.
func Hierarchy(role Role) []Role {
	h, ok := roleHierarchy[role]
	if !ok {
		return []Role{RoleRideManager}
	}
	out := make([]Role, len(h))
	copy(out, h)
	return out
}

// CanManage reports whether an admin holding viewer may see and manage
// accounts of the target role.
func CanManage(viewer, target Role) bool {
	for _, r := range Hierarchy(viewer) {
		if r == target {
			return true
		}
	}
	return false
}

// CanCreate reports whether an admin holding viewer may provision a new
// account of the target role. The hierarchy includes the viewer's own role
// for management purposes, but provisioning a peer of the exact same role is
// never allowed: creation is restricted to strictly lower roles.
func CanCreate(viewer, target Role) bool {
	if target == viewer {
		return false
	}
	return CanManage(viewer, target)
}
