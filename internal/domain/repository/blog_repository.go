package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrBlogNotFound is a domain-specific error returned when a blog is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines the standard operations for blog persistence.
type BlogRepository interface {
	// FindByID retrieves a single blog by its unique ID, with the author preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Blog, error)

	// List returns the page slice [offset, offset+limit) ordered by
	// creation time descending (newest first), authors preloaded.
	List(ctx context.Context, offset, limit int) ([]*entity.Blog, error)

	// Count returns the total number of blogs.
	Count(ctx context.Context) (int64, error)

	// Create persists a new blog entity to the storage.
	Create(ctx context.Context, blog *entity.Blog) error

	// UpdateFields applies a partial update to the given blog. Only the
	// columns present in fields are written; unset request fields must
	// never reach this map.
	UpdateFields(ctx context.Context, id int64, fields map[string]any) (*entity.Blog, error)
}
