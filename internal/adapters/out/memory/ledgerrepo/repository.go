// Package ledgerrepo implements the ledger repository over an in-memory
// transaction.
package ledgerrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// ErrNoTransaction is returned when the repository is used outside an
// active unit of work.
var ErrNoTransaction = errors.New("ledger repository requires an active transaction")

// Tx is the transaction surface the repository needs: the working ledger
// clone and a way to stage the result for commit.
type Tx interface {
	WorkingLedger() *stock.Ledger
	StageLedger(ledger *stock.Ledger)
}

// Repository implements ports.LedgerRepository within a transaction.
type Repository struct {
	tx Tx
}

// NewRepository creates a repository bound to the given transaction.
func NewRepository(tx Tx) *Repository {
	return &Repository{tx: tx}
}

// Get returns the transaction's working ledger. Mutations apply to the
// clone only until Save and Commit publish them.
func (r *Repository) Get(_ context.Context) (*stock.Ledger, error) {
	ledger := r.tx.WorkingLedger()
	if ledger == nil {
		return nil, ErrNoTransaction
	}
	return ledger, nil
}

// Save stages the ledger for commit.
func (r *Repository) Save(_ context.Context, ledger *stock.Ledger) error {
	if ledger == nil {
		return errs.NewValueIsRequiredError("ledger")
	}

	r.tx.StageLedger(ledger)
	return nil
}
