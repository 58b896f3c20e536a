package repository

import "context"

// RepositoryFactory creates repositories bound to a single transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	BlogRepo() BlogRepository
}

// TransactionManager runs multi-step persistence work atomically. Each
// repository handed to fn is bound to the same database transaction.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
