package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"
)

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListBlogs returns one page of published posts, newest first. A missing or
// malformed page query falls back to the first page rather than failing.
func (h *BlogHandler) ListBlogs(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	output, err := h.uc.ListBlogs(c.Request().Context(), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "blogs retrieved successfully")
}

// GetBlog returns a single post by its id.
func (h *BlogHandler) GetBlog(c echo.Context) error {
	blogID, err := parseBlogID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "blog id must be a positive integer")
	}

	view, err := h.uc.GetBlog(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"blog": view}, "blog retrieved successfully")
}

// CreateBlog publishes a post under the authenticated identity. Any authorId
// supplied in the request body is ignored.
func (h *BlogHandler) CreateBlog(c echo.Context) error {
	userID, _, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "token is invalid")
	}

	var input *usecase.CreateBlogInput
	if err := c.Bind(&input); err != nil || input == nil {
		// An empty body leaves input nil; the binder returns early on it.
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	input.AuthorID = userID
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.CreateBlog(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"blog":   view,
		"blogId": view.ID,
	}, "blog created successfully")
}

// UpdateBlog applies a partial update to a post the caller authored.
func (h *BlogHandler) UpdateBlog(c echo.Context) error {
	userID, _, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "token is invalid")
	}

	blogID, err := parseBlogID(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "blog id must be a positive integer")
	}

	var input *usecase.UpdateBlogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if input == nil {
		// An empty body is an edit with no fields; the usecase rejects it.
		input = &usecase.UpdateBlogInput{}
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.UpdateBlog(c.Request().Context(), userID, blogID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"blog": view}, "blog updated successfully")
}

func parseBlogID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse blog id")
	}
	if id <= 0 {
		return 0, errors.New("blog id must be positive")
	}

	return id, nil
}
