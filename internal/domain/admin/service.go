package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sawari/sawari-admin-api/internal/pkg/password"
)

// Service is the admin lifecycle manager. Every operation takes the viewer
// explicitly; nothing is read from ambient session state. All locally
// detectable failures (validation, authorization, self-modification, illegal
// state) are rejected before the directory is called.
type Service struct {
	dir   Directory
	guard *mutationGuard
}

// NewService creates the admin service
func NewService(dir Directory) *Service {
	return &Service{
		dir:   dir,
		guard: newMutationGuard(),
	}
}

// --- Authentication ---

// Login authenticates an admin by email and password
func (s *Service) Login(ctx context.Context, email, pwd, ip string) (*AdminAccount, error) {
	account, err := s.dir.GetByEmail(ctx, email)
	if err != nil {
		return nil, collaboratorError(err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if account.Status != StatusActive {
		return nil, ErrAccountNotActive
	}

	if !password.Verify(pwd, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	_ = s.dir.UpdateLastLogin(ctx, account.ID, ip)

	return account, nil
}

// GetByID returns an admin account by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*AdminAccount, error) {
	account, err := s.dir.GetByID(ctx, id)
	if err != nil {
		return nil, collaboratorError(err)
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

// ListAdmins returns the accounts the viewer may see, filtered to the
// viewer's role hierarchy.
func (s *Service) ListAdmins(ctx context.Context, viewer *AdminAccount) ([]*AdminAccount, error) {
	accounts, err := s.dir.List(ctx)
	if err != nil {
		return nil, collaboratorError(err)
	}

	visible := make([]*AdminAccount, 0, len(accounts))
	for _, a := range accounts {
		if CanManage(viewer.Role, a.Role) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// --- Lifecycle operations ---

// CreateAdmin provisions a new admin account. Fields are validated before
// authorization is checked; the new account starts active with the default
// permission set for its role and records the viewer as creator.
func (s *Service) CreateAdmin(ctx context.Context, viewer *AdminAccount, req *CreateAdminRequest) (*AdminAccount, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	role := Role(req.Role)
	if !CanCreate(viewer.Role, role) {
		return nil, fmt.Errorf("%w: role %s cannot provision %s accounts", ErrAuthorization, viewer.Role, role)
	}

	existing, err := s.dir.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, collaboratorError(err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &AdminAccount{
		ID:            uuid.New(),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		PasswordHash:  hash,
		Role:          role,
		Status:        StatusActive,
		CreatedBy:     uuid.NullUUID{UUID: viewer.ID, Valid: true},
		PermissionSet: DefaultPermissions(role),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.dir.Create(ctx, account); err != nil {
		return nil, collaboratorError(err)
	}

	s.logAction(viewer, "admin.create", account.ID)

	return account, nil
}

// SetActive switches the target between active and inactive. This path never
// touches blocked accounts: a blocked account can only leave that state
// through SetBlocked.
func (s *Service) SetActive(ctx context.Context, viewer *AdminAccount, targetID uuid.UUID, active bool) (*AdminAccount, error) {
	if err := s.authorizeMutation(viewer, targetID); err != nil {
		return nil, err
	}

	if !s.guard.tryAcquire(targetID) {
		return nil, ErrUpdateInFlight
	}
	defer s.guard.release(targetID)

	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Blocked() {
		return nil, fmt.Errorf("%w: account is blocked", ErrIllegalState)
	}

	desired := StatusInactive
	if active {
		desired = StatusActive
	}

	updated, err := s.dir.UpdateStatus(ctx, targetID, desired)
	if err != nil {
		return nil, collaboratorError(err)
	}

	s.logAction(viewer, "admin.status."+string(desired), targetID)

	return updated, nil
}

// SetBlocked blocks or unblocks the target. Blocking overrides either the
// active or inactive state; unblocking always restores active.
func (s *Service) SetBlocked(ctx context.Context, viewer *AdminAccount, targetID uuid.UUID, blocked bool) (*AdminAccount, error) {
	if err := s.authorizeMutation(viewer, targetID); err != nil {
		return nil, err
	}

	if !s.guard.tryAcquire(targetID) {
		return nil, ErrUpdateInFlight
	}
	defer s.guard.release(targetID)

	if _, err := s.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	desired := StatusActive
	action := "admin.unblock"
	if blocked {
		desired = StatusBlocked
		action = "admin.block"
	}

	updated, err := s.dir.UpdateStatus(ctx, targetID, desired)
	if err != nil {
		return nil, collaboratorError(err)
	}

	s.logAction(viewer, action, targetID)

	return updated, nil
}

// UpdatePermissions applies a partial permission update to the target.
// Fields absent from the patch keep their prior value; each flag the patch
// would actually flip requires the viewer to hold that feature (or be
// super_admin).
func (s *Service) UpdatePermissions(ctx context.Context, viewer *AdminAccount, targetID uuid.UUID, patch *PermissionPatch) (*AdminAccount, error) {
	if err := s.authorizeMutation(viewer, targetID); err != nil {
		return nil, err
	}

	if !s.guard.tryAcquire(targetID) {
		return nil, ErrUpdateInFlight
	}
	defer s.guard.release(targetID)

	target, err := s.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target.Blocked() {
		return nil, fmt.Errorf("%w: account is blocked", ErrIllegalState)
	}

	next := target.PermissionSet
	for _, e := range patch.entries() {
		if next.Has(e.feature) == e.value {
			continue
		}
		if !CanToggleFeature(viewer, e.feature) {
			return nil, fmt.Errorf("%w: viewer does not hold the %s feature", ErrAuthorization, e.feature)
		}
		next.set(e.feature, e.value)
	}

	updated, err := s.dir.UpdatePermissions(ctx, targetID, next)
	if err != nil {
		return nil, collaboratorError(err)
	}

	s.logAction(viewer, "admin.permissions", targetID)

	return updated, nil
}

// authorizeMutation enforces the two preconditions shared by every status or
// permission mutation: never the viewer's own account, and the viewer must be
// super_admin or hold the admin_management feature.
func (s *Service) authorizeMutation(viewer *AdminAccount, targetID uuid.UUID) error {
	if viewer.ID == targetID {
		return ErrSelfModification
	}
	if viewer.Role != RoleSuperAdmin && !viewer.PermissionSet.Has(FeatureAdminManagement) {
		return fmt.Errorf("%w: admin management permission required", ErrAuthorization)
	}
	return nil
}

func (s *Service) logAction(viewer *AdminAccount, action string, targetID uuid.UUID) {
	log.Info().
		Str("action", action).
		Str("actor_id", viewer.ID.String()).
		Str("actor_role", string(viewer.Role)).
		Str("target_id", targetID.String()).
		Msg("Admin action")
}

func validateCreate(req *CreateAdminRequest) error {
	required := []struct {
		field, value string
	}{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"role", req.Role},
		{"password", req.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, f.field)
		}
	}
	if !Role(req.Role).Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}
	return nil
}

func collaboratorError(err error) error {
	return fmt.Errorf("%w: %v", ErrCollaborator, err)
}
