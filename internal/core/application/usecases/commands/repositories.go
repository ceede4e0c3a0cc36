// Package commands contains the business operations that modify warehouse
// state, following the command side of the CQRS split. Every command is a
// constructor-validated value; every handler runs inside a unit of work.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces consumed by the command handlers. Handlers that
// only touch the ledger depend on the narrow LedgerUoW; the pack workflow
// needs both repositories.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LedgerRepoFactory provides the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// ParcelRepoFactory provides the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// LedgerUoW manages transactions for ledger-only operations.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// UoW manages transactions spanning the ledger and the parcel archive.
	// The pack workflow must stage its pops and its archive append as one
	// atomic unit.
	UoW interface {
		TxManager
		LedgerRepoFactory
		ParcelRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
