package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager repository.TransactionManager
	blogRepo  repository.BlogRepository
	logger    *slog.Logger
}

// BlogServiceParams holds dependencies for blogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlogRepo  repository.BlogRepository
	Logger    *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager: params.TxManager,
		blogRepo:  params.BlogRepo,
		logger:    params.Logger,
	}
}

func (srv *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBlogs returns one page of posts, newest first, plus pagination metadata.
func (srv *blogService) ListBlogs(ctx context.Context, page int) (*usecase.BlogListOutput, error) {
	if page < 1 {
		page = 1
	}

	totalBlogs, err := srv.blogRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count blogs")
	}

	totalPages := int((totalBlogs + usecase.BlogPageSize - 1) / usecase.BlogPageSize)

	offset := (page - 1) * usecase.BlogPageSize
	blogs, err := srv.blogRepo.List(ctx, offset, usecase.BlogPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	views := make([]*usecase.BlogView, 0, len(blogs))
	for _, blog := range blogs {
		views = append(views, usecase.NewBlogView(blog))
	}

	return &usecase.BlogListOutput{
		Blogs: views,
		Pagination: usecase.Pagination{
			Page:        page,
			PageSize:    usecase.BlogPageSize,
			TotalBlogs:  totalBlogs,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

// GetBlog returns a single post by id.
func (srv *blogService) GetBlog(ctx context.Context, id int64) (*usecase.BlogView, error) {
	blog, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, domainerrors.ErrBlogNotFound.WrapMessage("get blog failed")
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return usecase.NewBlogView(blog), nil
}

// CreateBlog publishes a post. The author id comes from the authenticated
// identity; the middleware has already gated the route, so a missing id
// here is an internal-consistency failure.
func (srv *blogService) CreateBlog(ctx context.Context, input *usecase.CreateBlogInput) (*usecase.BlogView, error) {
	if input.AuthorID <= 0 {
		srv.log(ctx).Error("CreateBlog reached without an authenticated identity")

		return nil, domainerrors.ErrUnauthorized.WrapMessage("create blog failed")
	}

	srv.log(ctx).Info("Creating blog", slog.Int64("authorID", input.AuthorID))

	newBlog := &entity.Blog{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: input.AuthorID,
	}
	if err := srv.blogRepo.Create(ctx, newBlog); err != nil {
		srv.log(ctx).Error("Failed to create blog", slog.Int64("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create blog")
	}

	srv.log(ctx).Debug("Blog created", slog.Int64("blogID", newBlog.ID))

	return usecase.NewBlogView(newBlog), nil
}

// UpdateBlog applies a partial edit to an existing post. Fields the caller
// left unset are dropped; an edit with no effective fields is rejected
// before anything is written. Only the author may edit their post.
func (srv *blogService) UpdateBlog(ctx context.Context, actorID, blogID int64, input *usecase.UpdateBlogInput) (*usecase.BlogView, error) {
	var updated *entity.Blog

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		blogRepo := repoFactory.BlogRepo()

		blog, err := blogRepo.FindByID(ctx, blogID)
		if err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return domainerrors.ErrBlogNotFound.WrapMessage("update blog failed")
			}

			return errors.Wrap(err, "failed to find blog by id")
		}

		if blog.AuthorID != actorID {
			return domainerrors.ErrNotBlogAuthor.WrapMessage("update blog failed")
		}

		fields := buildUpdateFields(input)
		if len(fields) == 0 {
			return domainerrors.ErrEmptyBlogUpdate.WrapMessage("update blog failed")
		}

		updated, err = blogRepo.UpdateFields(ctx, blogID, fields)
		if err != nil {
			return errors.Wrap(err, "failed to update blog")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Blog update failed", slog.Int64("blogID", blogID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute blog update transaction")
	}

	srv.log(ctx).Debug("Blog updated", slog.Int64("blogID", blogID))

	return usecase.NewBlogView(updated), nil
}

// buildUpdateFields translates set pointers into a column map; nil pointers
// never make it into the map. A nil input yields an empty map, so the
// caller's empty-diff rejection covers it.
func buildUpdateFields(input *usecase.UpdateBlogInput) map[string]any {
	fields := make(map[string]any, 2)
	if input == nil {
		return fields
	}
	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Content != nil {
		fields["content"] = *input.Content
	}

	return fields
}
