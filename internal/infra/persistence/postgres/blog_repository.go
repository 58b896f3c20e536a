package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface using GORM.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

// FindByID retrieves a single blog by its unique ID with the author preloaded.
func (repo *blogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	var blogM model.BlogModel
	if err := repo.db.WithContext(ctx).Preload("Author").First(&blogM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by id")
	}

	return toBlogDomain(&blogM), nil
}

// List returns one page of blogs ordered by creation time descending,
// authors preloaded.
func (repo *blogRepository) List(ctx context.Context, offset, limit int) ([]*entity.Blog, error) {
	var blogMs []model.BlogModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&blogMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogMs))
	for i := range blogMs {
		blogs = append(blogs, toBlogDomain(&blogMs[i]))
	}

	return blogs, nil
}

// Count returns the total number of blogs.
func (repo *blogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BlogModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count blogs")
	}

	return count, nil
}

// Create persists a new blog entity to the database.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("blog author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// UpdateFields applies a partial update. Only the columns in fields are
// written, so request fields the caller left unset never touch the row.
func (repo *blogRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*entity.Blog, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrBlogNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---

func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		AuthorID:  data.AuthorID,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:       data.ID,
		Title:    data.Title,
		Content:  data.Content,
		AuthorID: data.AuthorID,
	}
}
