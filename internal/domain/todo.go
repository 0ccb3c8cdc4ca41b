package domain

import "time"

// Todo is the single domain entity. It does not depend on Gin, Postgres or Redis.
type Todo struct {
	ID          string
	Title       string
	Description string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
