package repository

import "context"

// TransactionManager scopes a unit of work. The order merge engine relies on
// it to read, merge and write a cart without interleaving with another request.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the open transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	OrderRepo() OrderRepository
	ProductRepo() ProductRepository
	ImageRepo() ImageRepository
}
