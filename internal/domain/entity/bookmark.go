package entity

import "time"

// Bookmark is a link saved by exactly one user. Every read and write is
// scoped by UserID; ownership is fixed at creation.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
