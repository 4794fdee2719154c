package admin

import "errors"

var (
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("required field missing or malformed")
	// ErrAuthorization is returned when the viewer's role hierarchy or
	// permission set does not allow the operation.
	ErrAuthorization = errors.New("operation not permitted")
	// ErrSelfModification is returned when an admin targets their own
	// status or permissions. Always rejected, regardless of role.
	ErrSelfModification = errors.New("cannot modify own account")
	// ErrIllegalState is returned when the operation is not valid for the
	// target account's current status.
	ErrIllegalState = errors.New("operation not valid for the account's current status")
	// ErrCollaborator is returned when the admin directory call failed.
	ErrCollaborator = errors.New("admin directory request failed")

	ErrNotFound           = errors.New("admin account not found")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotActive   = errors.New("admin account is not active")
	// ErrUpdateInFlight is returned when another mutation for the same
	// target account has not finished yet.
	ErrUpdateInFlight = errors.New("another update for this account is in flight")
)
