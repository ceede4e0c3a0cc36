package queries_test

import (
	"context"
	"testing"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"

	"github.com/stretchr/testify/require"
)

// fakeLedgerReader serves a fixed ledger, or a fixed error.
type fakeLedgerReader struct {
	ledger *stock.Ledger
	err    error
}

func (f fakeLedgerReader) ReadLedger(_ context.Context) (*stock.Ledger, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.ledger, nil
}

type fakeParcelReader struct {
	parcels []*parcel.Parcel
	err     error
}

func (f fakeParcelReader) ReadParcels(_ context.Context) ([]*parcel.Parcel, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.parcels, nil
}

func newTestLedger(t *testing.T, seed string) *stock.Ledger {
	t.Helper()
	ledger, err := stock.NewLedger(stock.DefaultLowStockThreshold, stock.DefaultAlertLogCapacity)
	require.NoError(t, err)
	if seed != "" {
		require.Empty(t, ledger.AddBatch(seed))
	}
	return ledger
}
