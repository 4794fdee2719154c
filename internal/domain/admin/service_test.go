package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeDirectory struct {
	accounts map[uuid.UUID]*AdminAccount
	err      error
}

func newFakeDirectory(accounts ...*AdminAccount) *fakeDirectory {
	f := &fakeDirectory{accounts: map[uuid.UUID]*AdminAccount{}}
	for _, a := range accounts {
		f.accounts[a.ID] = a
	}
	return f
}

func (f *fakeDirectory) Create(ctx context.Context, account *AdminAccount) error {
	if f.err != nil {
		return f.err
	}
	f.accounts[account.ID] = account
	return nil
}

func (f *fakeDirectory) GetByID(ctx context.Context, id uuid.UUID) (*AdminAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.accounts[id], nil
}

func (f *fakeDirectory) GetByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) List(ctx context.Context) ([]*AdminAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*AdminAccount
	for _, a := range f.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeDirectory) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*AdminAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	a := f.accounts[id]
	a.Status = status
	return a, nil
}

func (f *fakeDirectory) UpdatePermissions(ctx context.Context, id uuid.UUID, perms PermissionSet) (*AdminAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	a := f.accounts[id]
	a.PermissionSet = perms
	return a, nil
}

func (f *fakeDirectory) UpdateLastLogin(ctx context.Context, id uuid.UUID, ip string) error {
	return f.err
}

func testAccount(role Role, perms PermissionSet) *AdminAccount {
	return &AdminAccount{
		ID:            uuid.New(),
		FirstName:     "Test",
		LastName:      "Admin",
		Email:         uuid.NewString() + "@sawari.app",
		Phone:         "+8801700000000",
		Role:          role,
		Status:        StatusActive,
		PermissionSet: perms,
	}
}

func validCreateRequest(role string) *CreateAdminRequest {
	return &CreateAdminRequest{
		FirstName: "Nadia",
		LastName:  "Rahman",
		Email:     "nadia@sawari.app",
		Phone:     "+8801711111111",
		Role:      role,
		Password:  "s3cret-pass",
	}
}

// --- CreateAdmin ---

func TestCreateAdminSetsDefaults(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	svc := NewService(newFakeDirectory(viewer))

	account, err := svc.CreateAdmin(context.Background(), viewer, validCreateRequest("ride_manager"))
	if err != nil {
		t.Fatalf("CreateAdmin failed: %v", err)
	}

	if account.Status != StatusActive {
		t.Errorf("new account status = %s, want active", account.Status)
	}
	if !account.CreatedBy.Valid || account.CreatedBy.UUID != viewer.ID {
		t.Errorf("new account creator = %v, want viewer id", account.CreatedBy)
	}
	if account.PermissionSet != DefaultPermissions(RoleRideManager) {
		t.Errorf("new account permissions = %+v, want ride_manager defaults", account.PermissionSet)
	}
	if account.PasswordHash == "" || account.PasswordHash == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
}

func TestCreateAdminExecutiveCannotProvisionAdmin(t *testing.T) {
	viewer := testAccount(RoleExecutiveAdmin, DefaultPermissions(RoleExecutiveAdmin))
	svc := NewService(newFakeDirectory(viewer))

	_, err := svc.CreateAdmin(context.Background(), viewer, validCreateRequest("admin"))
	if !errors.Is(err, ErrAuthorization) {
		t.Fatalf("err = %v, want ErrAuthorization", err)
	}
}

func TestCreateAdminValidatesBeforeAuthorizing(t *testing.T) {
	// Both checks would fail here; validation must win deterministically.
	viewer := testAccount(RoleExecutiveAdmin, DefaultPermissions(RoleExecutiveAdmin))
	svc := NewService(newFakeDirectory(viewer))

	req := validCreateRequest("admin")
	req.FirstName = ""

	_, err := svc.CreateAdmin(context.Background(), viewer, req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateAdminMissingFieldFailsEvenForSuperAdmin(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	svc := NewService(newFakeDirectory(viewer))

	req := validCreateRequest("ride_manager")
	req.FirstName = "   "

	_, err := svc.CreateAdmin(context.Background(), viewer, req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateAdminEmailTaken(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	existing := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	existing.Email = "nadia@sawari.app"
	svc := NewService(newFakeDirectory(viewer, existing))

	_, err := svc.CreateAdmin(context.Background(), viewer, validCreateRequest("ride_manager"))
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

// --- Status transitions ---

func TestSetActiveRejectsSelfForEveryRole(t *testing.T) {
	for _, role := range allRoles {
		viewer := testAccount(role, DefaultPermissions(RoleSuperAdmin))
		svc := NewService(newFakeDirectory(viewer))

		_, err := svc.SetActive(context.Background(), viewer, viewer.ID, false)
		if !errors.Is(err, ErrSelfModification) {
			t.Errorf("role %s: err = %v, want ErrSelfModification", role, err)
		}
	}
}

func TestSetActiveRequiresAdminManagement(t *testing.T) {
	viewer := testAccount(RoleAdmin, PermissionSet{Dashboard: true})
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, target))

	_, err := svc.SetActive(context.Background(), viewer, target.ID, false)
	if !errors.Is(err, ErrAuthorization) {
		t.Fatalf("err = %v, want ErrAuthorization", err)
	}
}

func TestSetActiveTogglesStatus(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, target))

	updated, err := svc.SetActive(context.Background(), viewer, target.ID, false)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if updated.Status != StatusInactive {
		t.Errorf("status = %s, want inactive", updated.Status)
	}

	updated, err = svc.SetActive(context.Background(), viewer, target.ID, true)
	if err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	if updated.Status != StatusActive {
		t.Errorf("status = %s, want active", updated.Status)
	}
}

func TestBlockedAccountCannotBeActivatedViaStatusSwitch(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	target.Status = StatusBlocked
	svc := NewService(newFakeDirectory(viewer, target))

	_, err := svc.SetActive(context.Background(), viewer, target.ID, true)
	if !errors.Is(err, ErrIllegalState) {
		t.Fatalf("status-switch err = %v, want ErrIllegalState", err)
	}

	// The explicit unblock path does reactivate it.
	updated, err := svc.SetBlocked(context.Background(), viewer, target.ID, false)
	if err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	if updated.Status != StatusActive {
		t.Errorf("status after unblock = %s, want active", updated.Status)
	}
}

func TestBlockOverridesInactiveState(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	target.Status = StatusInactive
	svc := NewService(newFakeDirectory(viewer, target))

	updated, err := svc.SetBlocked(context.Background(), viewer, target.ID, true)
	if err != nil {
		t.Fatalf("block failed: %v", err)
	}
	if updated.Status != StatusBlocked {
		t.Errorf("status = %s, want blocked", updated.Status)
	}
}

// --- Permission updates ---

func TestUpdatePermissionsRequiresOwnGrant(t *testing.T) {
	viewer := testAccount(RoleAdmin, PermissionSet{
		Dashboard:       true,
		Drivers:         true,
		AdminManagement: true,
	})
	target := testAccount(RoleRideManager, PermissionSet{Dashboard: true})
	svc := NewService(newFakeDirectory(viewer, target))

	yes := true

	// Viewer holds drivers: granting it is allowed.
	updated, err := svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Drivers: &yes})
	if err != nil {
		t.Fatalf("UpdatePermissions failed: %v", err)
	}
	if !updated.PermissionSet.Drivers {
		t.Error("target drivers grant not applied")
	}

	// Viewer does not hold earnings: granting it is privilege escalation.
	_, err = svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Earnings: &yes})
	if !errors.Is(err, ErrAuthorization) {
		t.Fatalf("err = %v, want ErrAuthorization", err)
	}
}

func TestUpdatePermissionsSuperAdminBypassesOwnGrant(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, PermissionSet{})
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, target))

	yes := true
	updated, err := svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Earnings: &yes})
	if err != nil {
		t.Fatalf("UpdatePermissions failed: %v", err)
	}
	if !updated.PermissionSet.Earnings {
		t.Error("earnings grant not applied")
	}
}

func TestUpdatePermissionsNoopFlagNeedsNoGrant(t *testing.T) {
	// A patch field equal to the target's current value changes nothing and
	// must not trip the feature-grant check.
	viewer := testAccount(RoleAdmin, PermissionSet{AdminManagement: true})
	target := testAccount(RoleRideManager, PermissionSet{Dashboard: true})
	svc := NewService(newFakeDirectory(viewer, target))

	no := false
	if _, err := svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Earnings: &no}); err != nil {
		t.Fatalf("no-op patch failed: %v", err)
	}
}

func TestUpdatePermissionsRejectsSelf(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	svc := NewService(newFakeDirectory(viewer))

	yes := true
	_, err := svc.UpdatePermissions(context.Background(), viewer, viewer.ID, &PermissionPatch{Earnings: &yes})
	if !errors.Is(err, ErrSelfModification) {
		t.Fatalf("err = %v, want ErrSelfModification", err)
	}
}

func TestUpdatePermissionsBlockedTargetIsImmutable(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	target.Status = StatusBlocked
	svc := NewService(newFakeDirectory(viewer, target))

	yes := true
	_, err := svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Rides: &yes})
	if !errors.Is(err, ErrIllegalState) {
		t.Fatalf("err = %v, want ErrIllegalState", err)
	}
}

func TestUpdatePermissionsPartialKeepsUnspecifiedFields(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, target))

	yes := true
	updated, err := svc.UpdatePermissions(context.Background(), viewer, target.ID, &PermissionPatch{Drivers: &yes})
	if err != nil {
		t.Fatalf("UpdatePermissions failed: %v", err)
	}
	if !updated.PermissionSet.Dashboard || !updated.PermissionSet.Rides {
		t.Error("unspecified fields must keep their prior value")
	}
	if !updated.PermissionSet.Drivers {
		t.Error("patched field not applied")
	}
}

// --- Locking and collaborator failures ---

func TestMutationRejectedWhileUpdateInFlight(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, target))

	if !svc.guard.tryAcquire(target.ID) {
		t.Fatal("could not acquire guard")
	}
	defer svc.guard.release(target.ID)

	_, err := svc.SetActive(context.Background(), viewer, target.ID, false)
	if !errors.Is(err, ErrUpdateInFlight) {
		t.Fatalf("err = %v, want ErrUpdateInFlight", err)
	}
}

func TestDirectoryFailureSurfacesAsCollaboratorError(t *testing.T) {
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	target := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	dir := newFakeDirectory(viewer, target)
	dir.err = errors.New("connection refused")
	svc := NewService(dir)

	_, err := svc.SetActive(context.Background(), viewer, target.ID, false)
	if !errors.Is(err, ErrCollaborator) {
		t.Fatalf("err = %v, want ErrCollaborator", err)
	}
}

func TestLocalChecksPrecedeDirectoryCalls(t *testing.T) {
	// Self-modification must be rejected before the directory is touched,
	// even when the directory itself is down.
	viewer := testAccount(RoleSuperAdmin, DefaultPermissions(RoleSuperAdmin))
	dir := newFakeDirectory(viewer)
	dir.err = errors.New("connection refused")
	svc := NewService(dir)

	_, err := svc.SetActive(context.Background(), viewer, viewer.ID, false)
	if !errors.Is(err, ErrSelfModification) {
		t.Fatalf("err = %v, want ErrSelfModification", err)
	}
}

// --- Listing ---

func TestListAdminsFilteredByHierarchy(t *testing.T) {
	viewer := testAccount(RoleExecutiveAdmin, DefaultPermissions(RoleExecutiveAdmin))
	peer := testAccount(RoleExecutiveAdmin, DefaultPermissions(RoleExecutiveAdmin))
	higher := testAccount(RoleAdmin, DefaultPermissions(RoleAdmin))
	lower := testAccount(RoleRideManager, DefaultPermissions(RoleRideManager))
	svc := NewService(newFakeDirectory(viewer, peer, higher, lower))

	visible, err := svc.ListAdmins(context.Background(), viewer)
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}

	for _, a := range visible {
		if a.ID == higher.ID {
			t.Error("executive_admin must not see admin accounts")
		}
	}
	if len(visible) != 3 {
		t.Errorf("visible = %d accounts, want 3 (self, peer, ride_manager)", len(visible))
	}
}
