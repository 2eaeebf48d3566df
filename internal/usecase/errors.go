package usecase

import "errors"

// Sentinel errors services return so handlers can map them to HTTP statuses
// with errors.Is instead of matching message strings.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrSessionClosed      = errors.New("chat session is closed")
)
