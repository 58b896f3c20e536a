package usecase

import (
	"context"
	"time"

	"quill/internal/domain/entity"
)

// BlogPageSize is the fixed number of posts per listing page.
const BlogPageSize = 50

// --- Input DTOs ---

// CreateBlogInput defines the data required to publish a post. AuthorID is
// never bound from the request body; the handler fills it from the
// authenticated identity, so a client-supplied author id is ignored.
type CreateBlogInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	AuthorID int64  `json:"-" validate:"required,gt=0"`
}

// UpdateBlogInput carries a partial edit. Nil pointers mean "leave the
// field alone"; they are dropped before the update reaches the store. A
// title that is set must stay non-empty.
type UpdateBlogInput struct {
	Title   *string `json:"title" validate:"omitnil,min=1"`
	Content *string `json:"content"`
}

// --- Output DTOs ---

// AuthorView is the author projection embedded in blog responses.
type AuthorView struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// BlogView is the response projection of a blog post.
type BlogView struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	AuthorID  int64       `json:"authorId"`
	Author    *AuthorView `json:"author,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Pagination is the listing metadata returned alongside each page.
type Pagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"pageSize"`
	TotalBlogs  int64 `json:"totalBlogs"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// BlogListOutput returns one page of blogs plus pagination metadata.
type BlogListOutput struct {
	Blogs      []*BlogView `json:"blogs"`
	Pagination Pagination  `json:"pagination"`
}

// NewBlogView projects a blog entity into its response view.
func NewBlogView(blog *entity.Blog) *BlogView {
	if blog == nil {
		return nil
	}

	view := &BlogView{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		AuthorID:  blog.AuthorID,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
	if blog.Author != nil {
		view.Author = &AuthorView{ID: blog.Author.ID, Name: blog.Author.Name}
	}

	return view
}

// BlogUsecase defines the interface for blog-related business operations.
type BlogUsecase interface {
	// ListBlogs returns the requested page; any page below 1 is treated as 1.
	ListBlogs(ctx context.Context, page int) (*BlogListOutput, error)

	// GetBlog returns a single post by id.
	GetBlog(ctx context.Context, id int64) (*BlogView, error)

	// CreateBlog publishes a post on behalf of the authenticated author.
	CreateBlog(ctx context.Context, input *CreateBlogInput) (*BlogView, error)

	// UpdateBlog applies a partial edit; only the post's author may edit it.
	UpdateBlog(ctx context.Context, actorID, blogID int64, input *UpdateBlogInput) (*BlogView, error)
}
