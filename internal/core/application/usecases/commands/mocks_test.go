package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Get(ctx context.Context) (*stock.Ledger, error) {
	args := m.Called(ctx)
	if ledger, ok := args.Get(0).(*stock.Ledger); ok {
		return ledger, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepository) Save(ctx context.Context, ledger *stock.Ledger) error {
	args := m.Called(ctx, ledger)
	return args.Error(0)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) GetAll(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if parcels, ok := args.Get(0).([]*parcel.Parcel); ok {
		return parcels, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
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
