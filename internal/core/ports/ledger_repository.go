// Package ports defines the repository interfaces of the warehouse domain.
// They establish the contract between the application layer and the
// storage adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"warehouse/internal/core/domain/model/stock"
)

// LedgerRepository is the persistence contract for the single stock
// ledger. The warehouse has exactly one; Get without an identifier
// returns it.
type LedgerRepository interface {
	// Get retrieves the ledger for mutation within the current transaction.
	Get(ctx context.Context) (*stock.Ledger, error)

	// Save stages the mutated ledger for commit.
	Save(ctx context.Context, ledger *stock.Ledger) error
}
