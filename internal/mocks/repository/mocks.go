// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockBlogRepository is a testify mock for repository.BlogRepository.
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) FindByID(ctx context.Context, id int64) (*entity.Blog, error) {
	args := m.Called(ctx, id)
	blog, _ := args.Get(0).(*entity.Blog)

	return blog, args.Error(1)
}

func (m *MockBlogRepository) List(ctx context.Context, offset, limit int) ([]*entity.Blog, error) {
	args := m.Called(ctx, offset, limit)
	blogs, _ := args.Get(0).([]*entity.Blog)

	return blogs, args.Error(1)
}

func (m *MockBlogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	args := m.Called(ctx, blog)

	return args.Error(0)
}

func (m *MockBlogRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*entity.Blog, error) {
	args := m.Called(ctx, id, fields)
	blog, _ := args.Get(0).(*entity.Blog)

	return blog, args.Error(1)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	args := m.Called()

	return args.Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) BlogRepo() repository.BlogRepository {
	args := m.Called()

	return args.Get(0).(repository.BlogRepository)
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
// When an expectation returns a RepositoryFactory, the callback is executed
// against it and its error propagated, mirroring the real manager. Returning
// an error instead short-circuits without running the callback.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		return fn(factory)
	}

	return args.Error(0)
}
