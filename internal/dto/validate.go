package dto

import (
	"fmt"
	"strings"
)

// FieldError describes a single field-level violation found while
// validating a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the full set of violations for one request. It is
// returned by the Validate methods on the request DTOs so handlers can
// reject bad input before it reaches a service.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(parts, "; ")
}

func (e FieldErrors) add(field, message string) FieldErrors {
	return append(e, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no violations were collected, so callers can
// write `if err := req.Validate(); err != nil`.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
