package repository

import "context"

// TransactionManager runs multi-step writes atomically.
type TransactionManager interface {
	// Execute runs fn inside one transaction: committed when fn returns nil,
	// rolled back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory builds repositories bound to the running transaction.
// Only the user upsert needs one today.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
}
