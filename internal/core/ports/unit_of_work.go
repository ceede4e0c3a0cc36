package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command so concurrent
// operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary over the warehouse state.
// Mutations staged through the repositories become visible to readers
// only on Commit; Rollback discards them. Rollback is safe to call after
// the transaction has already ended, so handlers can pair an explicit
// Commit with a deferred Rollback.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit publishes staged changes and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards staged changes; a no-op once the transaction ended.
	Rollback(ctx context.Context) error

	// LedgerRepository returns a ledger repository bound to the transaction.
	LedgerRepository() LedgerRepository

	// ParcelRepository returns a parcel repository bound to the transaction.
	ParcelRepository() ParcelRepository
}
