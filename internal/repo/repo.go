package repo

import "errors"

// Storage-level sentinels. Services translate these into their own
// business errors so handlers never see a driver error.
var (
	// ErrNoRows is returned when a lookup does not match any record.
	ErrNoRows = errors.New("no rows")
	// ErrDuplicateEmail is returned when a user insert violates the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
