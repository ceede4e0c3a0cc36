package queries

import (
	"context"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
)

// LedgerReader provides read access to the committed ledger state.
// Implementations return a snapshot that the handler may inspect freely
// without affecting live state.
type LedgerReader interface {
	ReadLedger(ctx context.Context) (*stock.Ledger, error)
}

// ParcelReader provides read access to the packed parcel archive in
// creation order.
type ParcelReader interface {
	ReadParcels(ctx context.Context) ([]*parcel.Parcel, error)
}
