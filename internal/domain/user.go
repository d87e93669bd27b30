package domain

import "time"

// User is the domain entity for a registered account. Email is the
// sign-in identifier; PasswordHash is opaque to everything outside the
// user service.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	DateOfBirth  *time.Time
	PasswordHash string
	CreatedAt    time.Time
}
