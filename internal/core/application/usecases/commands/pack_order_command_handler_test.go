package commands_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const defaultSeedBatch = "A3, A3, B5, B5, C1, C1, A2, A2"

func TestPackOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPackOrderCommand("A3, B5")
	require.NoError(t, err)

	ledger := newTestLedger(t, defaultSeedBatch)
	ledgerRepo := new(MockLedgerRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Get", ctx).Return(ledger, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		ledgerRepo.On("Save", ctx, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, result.Packed())
	assert.Equal(t, []parcel.Item{{Code: "B5", Volume: 5}, {Code: "A3", Volume: 3}}, result.Parcel.Items())
	assert.Equal(t, 1, ledger.QuantityOf("A3"))
	assert.Equal(t, 1, ledger.QuantityOf("B5"))

	ledgerRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_AllBackordered_SkipsArchive(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPackOrderCommand("Z9")
	require.NoError(t, err)

	ledger := newTestLedger(t, defaultSeedBatch)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Get", ctx).Return(ledger, nil).Once(),
		ledgerRepo.On("Save", ctx, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Packed())
	require.Len(t, result.Notices, 2)
	assert.Equal(t, stock.NoticeBackordered, result.Notices[0].Kind)
	assert.Equal(t, stock.NoticeAlertActivated, result.Notices[1].Kind)

	uow.AssertNotCalled(t, "ParcelRepository")
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.PackOrderCommand

	h := commands.NewPackOrderCommandHandler(new(MockUoWFactory))
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPackOrderCommandIsNotConstructed)
}

func TestPackOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPackOrderCommand("A3")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewPackOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestPackOrderCommandHandler_Handle_ArchiveError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPackOrderCommand("A3")
	require.NoError(t, err)

	ledger := newTestLedger(t, defaultSeedBatch)
	ledgerRepo := new(MockLedgerRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Get", ctx).Return(ledger, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(errors.New("archive error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewPackOrderCommand("A3")
	require.NoError(t, err)

	ledger := newTestLedger(t, defaultSeedBatch)
	ledgerRepo := new(MockLedgerRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		ledgerRepo.On("Get", ctx).Return(ledger, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		ledgerRepo.On("Save", ctx, ledger).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPackOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
