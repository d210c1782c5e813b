package guestlist

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateCode      = errors.New("code already exists")
	ErrCodeConflict       = errors.New("code already in use by another promoter")
	ErrCapacityExceeded   = errors.New("capacity reached")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries per-field messages so the client can show
// them next to the offending inputs.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return "invalid input"
}
