package stock

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box check of the FIFO discipline: units leave the queue in exactly
// the order they were inserted.
func TestLedger_PopOldest_ReturnsUnitsInInsertionOrder(t *testing.T) {
	ledger, err := NewLedger(DefaultLowStockThreshold, DefaultAlertLogCapacity)
	require.NoError(t, err)

	ledger.AddBatch("A1,A1,A1")

	inserted := make([]kernel.UUID, 0, 3)
	for _, unit := range ledger.queues["A1"] {
		inserted = append(inserted, unit.ID())
	}
	require.Len(t, inserted, 3)

	for i, want := range inserted {
		got := ledger.PopOldest("A1")
		require.NotNil(t, got, "pop %d", i)
		assert.True(t, want.IsEqual(got.ID()), "pop %d returned the wrong unit", i)
	}
	assert.Nil(t, ledger.PopOldest("A1"))
}
