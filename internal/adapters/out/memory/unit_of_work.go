package memory

import (
	"context"
	"errors"

	"warehouse/internal/adapters/out/memory/ledgerrepo"
	"warehouse/internal/adapters/out/memory/parcelrepo"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit when the unit of work has
// no transaction in flight.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to a shared store.
// Each business operation gets a fresh unit of work; Begin serializes them
// on the store's lock.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory over the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for a single transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork runs one transaction against the store. Begin takes the
// store lock and clones the committed ledger; repositories work on the
// clone and stage results; Commit publishes the staged state and releases
// the lock. Rollback releases the lock without publishing and is safe to
// call after Commit, which keeps the deferred-rollback idiom panic free.
type UnitOfWork struct {
	store *Store

	active        bool
	workingLedger *stock.Ledger
	stagedLedger  *stock.Ledger
	stagedParcels []*parcel.Parcel
}

// Begin starts the transaction. It blocks until the store lock is free.
// Calling Begin on an already active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.active = true
	uow.workingLedger = uow.store.ledger.Clone()
	uow.stagedLedger = nil
	uow.stagedParcels = nil
	return nil
}

// Commit publishes the staged ledger and appends the staged parcels to
// the archive, then releases the store lock. The unit of work cannot be
// reused afterwards.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	if uow.stagedLedger != nil {
		uow.store.ledger = uow.stagedLedger
	}
	uow.store.parcels = append(uow.store.parcels, uow.stagedParcels...)

	uow.end()
	return nil
}

// Rollback discards staged state and releases the store lock. Calling it
// with no active transaction does nothing.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.end()
	return nil
}

func (uow *UnitOfWork) end() {
	uow.active = false
	uow.workingLedger = nil
	uow.stagedLedger = nil
	uow.stagedParcels = nil
	uow.store.mu.Unlock()
}

// LedgerRepository returns the ledger repository bound to this transaction.
func (uow *UnitOfWork) LedgerRepository() ports.LedgerRepository {
	return ledgerrepo.NewRepository(uow)
}

// ParcelRepository returns the parcel repository bound to this transaction.
func (uow *UnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewRepository(uow)
}

// WorkingLedger exposes the transaction's ledger clone to the ledger
// repository.
func (uow *UnitOfWork) WorkingLedger() *stock.Ledger {
	return uow.workingLedger
}

// StageLedger records the ledger to publish on commit.
func (uow *UnitOfWork) StageLedger(ledger *stock.Ledger) {
	uow.stagedLedger = ledger
}

// AppendParcel stages a parcel for the archive.
func (uow *UnitOfWork) AppendParcel(p *parcel.Parcel) {
	uow.stagedParcels = append(uow.stagedParcels, p)
}

// Parcels returns the archive as this transaction sees it: committed
// parcels followed by the ones staged so far.
func (uow *UnitOfWork) Parcels() []*parcel.Parcel {
	parcels := make([]*parcel.Parcel, 0, len(uow.store.parcels)+len(uow.stagedParcels))
	parcels = append(parcels, uow.store.parcels...)
	parcels = append(parcels, uow.stagedParcels...)
	return parcels
}
