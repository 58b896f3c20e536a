package entity

import "time"

// Blog is a single post. AuthorID references an existing User and is
// fixed at creation time; only Title and Content are mutable.
type Blog struct {
	ID        int64
	Title     string
	Content   string
	AuthorID  int64
	Author    *User // Preloaded on reads; nil when not fetched.
	CreatedAt time.Time
	UpdatedAt time.Time // Touched on every edit.
}
