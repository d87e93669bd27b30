package dto

import (
	"net/mail"
	"strings"
	"time"
)

// SignUpRequest is the JSON body for POST /signup.
type SignUpRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth Date   `json:"date_of_birth"` // optional: "1990-04-01" or RFC3339
}

// Validate checks required fields and email syntax before the request
// reaches the identity layer.
func (r SignUpRequest) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(r.FirstName) == "" {
		errs = errs.add("first_name", "required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = errs.add("email", "required")
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs = errs.add("email", "must be a valid email address")
	}
	if r.Password == "" {
		errs = errs.add("password", "required")
	}
	return errs.OrNil()
}

// LoginRequest is the JSON body for POST /login. UserName carries the
// account email. RememberMe is accepted for wire compatibility; token
// lifetime does not depend on it.
type LoginRequest struct {
	UserName   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// UserResponse is returned after a successful signup.
type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TokenResponse is returned by POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}
