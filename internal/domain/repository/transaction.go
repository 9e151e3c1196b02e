package repository

import "context"

// RepositoryFactory creates repository instances bound to a single
// transaction. Only the repositories that take part in multi-step atomic
// writes are exposed here.
type RepositoryFactory interface {
	// NewOrderRepository creates an order repository bound to the transaction.
	NewOrderRepository() OrderRepository
}

// TransactionManager runs application logic within one database transaction.
type TransactionManager interface {
	// Execute runs fn inside a transaction. If fn returns an error the
	// transaction is rolled back; otherwise it is committed.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
