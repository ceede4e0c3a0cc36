package commands

import (
	"context"

	"warehouse/internal/core/domain/model/stock"
)

// AddStockCommandHandler applies a stock batch to the ledger inside a
// transaction and reports the notices the ledger raised: format
// rejections, resolved alerts, still-low warnings.
type AddStockCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewAddStockCommandHandler creates a handler over a ledger unit of work
// factory.
func NewAddStockCommandHandler(uowFactory LedgerUoWFactory) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch. The returned notices are the per-token
// diagnostics; an error means the command or the transaction failed, never
// that a token was rejected.
func (h *AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) ([]stock.Notice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledgerRepo := uow.LedgerRepository()
	ledger, err := ledgerRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	notices := ledger.AddBatch(cmd.Batch())

	if err = ledgerRepo.Save(ctx, ledger); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return notices, nil
}
