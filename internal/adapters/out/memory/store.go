// Package memory provides the in-process implementation of the Unit of Work
// pattern over a single shared Store.
//
// The Store owns the committed state: one stock ledger and the append-only
// parcel archive. A unit of work acquires the store's lock on Begin, hands
// repositories a working clone of the ledger, stages changes, and publishes
// them atomically on Commit. Rollback discards the staged state. Either way
// the lock is released, so writers serialize and readers never observe a
// half-applied transaction.
//
// Usage:
//
//	store := memory.NewStore(ledger)
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	// Perform repository operations
//	ledger, err := uow.LedgerRepository().Get(ctx)
//	if err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// Store holds the committed warehouse state. All access goes through the
// mutex: units of work hold it for the whole transaction, readers take it
// only long enough to snapshot.
type Store struct {
	mu      sync.Mutex
	ledger  *stock.Ledger
	parcels []*parcel.Parcel
}

// NewStore creates a store seeded with the given ledger as its committed
// state.
func NewStore(ledger *stock.Ledger) (*Store, error) {
	if ledger == nil {
		return nil, errs.NewValueIsRequiredError("ledger")
	}

	return &Store{
		ledger:  ledger,
		parcels: make([]*parcel.Parcel, 0),
	}, nil
}

// ReadLedger returns a deep copy of the committed ledger. Callers may
// inspect it freely without racing writers.
func (s *Store) ReadLedger(_ context.Context) (*stock.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Clone(), nil
}

// ReadParcels returns the committed parcel archive in creation order.
// The slice is a copy; parcels themselves are immutable after packing.
func (s *Store) ReadParcels(_ context.Context) ([]*parcel.Parcel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parcels := make([]*parcel.Parcel, len(s.parcels))
	copy(parcels, s.parcels)
	return parcels, nil
}
