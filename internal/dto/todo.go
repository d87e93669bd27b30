package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date parses a timestamp from JSON as either date-only ("2006-01-02")
// or RFC3339. Date-only is stored as start of that day in UTC.
type Date struct{ t *time.Time }

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339, // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d Date) Ptr() *time.Time { return d.t }

// TodoRequest is the JSON body for POST /todos and PUT /todos/{id}.
type TodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
	DueDate     Date   `json:"due_date"` // optional: "2026-02-19" or RFC3339
}

// Validate checks the request at the handler boundary, independent of
// the JSON decoder.
func (r TodoRequest) Validate() error {
	var errs FieldErrors
	if strings.TrimSpace(r.Title) == "" {
		errs = errs.add("title", "required")
	}
	if len(r.Title) > 120 {
		errs = errs.add("title", "must be at most 120 characters")
	}
	if len(r.Description) > 1000 {
		errs = errs.add("description", "must be at most 1000 characters")
	}
	return errs.OrNil()
}

type TodoResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      bool       `json:"status"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
