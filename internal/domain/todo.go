package domain

import "time"

// Todo is the persisted task entity. It does not depend on Gin,
// Postgres or Redis.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Status      bool
	DueDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
