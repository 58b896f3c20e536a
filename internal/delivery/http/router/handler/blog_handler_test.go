package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/validator"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"
)

// recordingBlogUsecase records the inputs the handler forwards so tests can
// assert on what actually crosses the delivery boundary.
type recordingBlogUsecase struct {
	listPage    int
	getBlogID   int64
	createInput *usecase.CreateBlogInput
	updateActor int64
	updateBlog  int64
	updateInput *usecase.UpdateBlogInput
}

func (r *recordingBlogUsecase) ListBlogs(_ context.Context, page int) (*usecase.BlogListOutput, error) {
	r.listPage = page

	return &usecase.BlogListOutput{
		Blogs:      []*usecase.BlogView{},
		Pagination: usecase.Pagination{Page: page, PageSize: usecase.BlogPageSize},
	}, nil
}

func (r *recordingBlogUsecase) GetBlog(_ context.Context, id int64) (*usecase.BlogView, error) {
	r.getBlogID = id

	return &usecase.BlogView{ID: id}, nil
}

func (r *recordingBlogUsecase) CreateBlog(_ context.Context, input *usecase.CreateBlogInput) (*usecase.BlogView, error) {
	r.createInput = input

	return &usecase.BlogView{ID: 1, Title: input.Title, AuthorID: input.AuthorID}, nil
}

func (r *recordingBlogUsecase) UpdateBlog(_ context.Context, actorID, blogID int64, input *usecase.UpdateBlogInput) (*usecase.BlogView, error) {
	r.updateActor = actorID
	r.updateBlog = blogID
	r.updateInput = input

	return &usecase.BlogView{ID: blogID}, nil
}

func newBlogTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBlogHandler_ListBlogs_NonNumericPageDefaultsToFirst(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, rec := newBlogTestContext(t, http.MethodGet, "/api/v1/blog/bulk?page=abc", "")

	require.NoError(t, h.ListBlogs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, uc.listPage)
}

func TestBlogHandler_ListBlogs_PassesRequestedPage(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, _ := newBlogTestContext(t, http.MethodGet, "/api/v1/blog/bulk?page=3", "")

	require.NoError(t, h.ListBlogs(c))
	assert.Equal(t, 3, uc.listPage)
}

func TestBlogHandler_GetBlog_NonNumericID(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, rec := newBlogTestContext(t, http.MethodGet, "/api/v1/blog/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetBlog(c))
	// The request fails before the usecase is ever reached.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.getBlogID)
}

func TestBlogHandler_GetBlog_NegativeID(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, rec := newBlogTestContext(t, http.MethodGet, "/api/v1/blog/-3", "")
	c.SetParamNames("id")
	c.SetParamValues("-3")

	require.NoError(t, h.GetBlog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, uc.getBlogID)
}

func TestBlogHandler_CreateBlog_SpoofedAuthorIgnored(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	body := `{"title":"hello","content":"world","authorId":999}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/api/v1/blog", body)
	deliverycontext.SetIdentity(c, 7, "writer@example.com")

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.createInput)
	// The persisted author is always the token identity, never the body.
	assert.Equal(t, int64(7), uc.createInput.AuthorID)
}

func TestBlogHandler_CreateBlog_EmptyBody(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, rec := newBlogTestContext(t, http.MethodPost, "/api/v1/blog", "")
	deliverycontext.SetIdentity(c, 7, "writer@example.com")

	// The binder leaves the input nil on an empty body; the handler must
	// reject rather than dereference it.
	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.createInput)
}

func TestBlogHandler_CreateBlog_MissingIdentity(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	body := `{"title":"hello","content":"world"}`
	c, rec := newBlogTestContext(t, http.MethodPost, "/api/v1/blog", body)

	require.NoError(t, h.CreateBlog(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.createInput)
}

func TestBlogHandler_UpdateBlog_ForwardsActorAndDiff(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	body := `{"title":"renamed"}`
	c, rec := newBlogTestContext(t, http.MethodPut, "/api/v1/blog/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")
	deliverycontext.SetIdentity(c, 5, "writer@example.com")

	require.NoError(t, h.UpdateBlog(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.updateActor)
	assert.Equal(t, int64(7), uc.updateBlog)
	require.NotNil(t, uc.updateInput)
	require.NotNil(t, uc.updateInput.Title)
	assert.Equal(t, "renamed", *uc.updateInput.Title)
	assert.Nil(t, uc.updateInput.Content)
}

func TestBlogHandler_UpdateBlog_EmptyBodyForwardsEmptyDiff(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	c, rec := newBlogTestContext(t, http.MethodPut, "/api/v1/blog/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")
	deliverycontext.SetIdentity(c, 5, "writer@example.com")

	require.NoError(t, h.UpdateBlog(c))
	// An empty body becomes an empty diff, never a nil input; the usecase's
	// no-op rejection decides the outcome.
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.updateInput)
	assert.Nil(t, uc.updateInput.Title)
	assert.Nil(t, uc.updateInput.Content)
}

func TestBlogHandler_UpdateBlog_EmptyTitleRejected(t *testing.T) {
	uc := &recordingBlogUsecase{}
	h := NewBlogHandler(uc, testLogger())

	body := `{"title":""}`
	c, _ := newBlogTestContext(t, http.MethodPut, "/api/v1/blog/7", body)
	c.SetParamNames("id")
	c.SetParamValues("7")
	deliverycontext.SetIdentity(c, 5, "writer@example.com")

	err := h.UpdateBlog(c)

	// A set title must stay non-empty; the request fails validation before
	// the usecase is reached.
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Nil(t, uc.updateInput)
}
