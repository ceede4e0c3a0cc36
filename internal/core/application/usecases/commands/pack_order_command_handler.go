package commands

import (
	"context"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/services"
)

// PackOrderResult reports the outcome of a pack operation. Parcel is nil
// when every requested item was backordered or blank, in which case
// nothing is archived. Notices always carries the full diagnostic trail.
type PackOrderResult struct {
	Parcel  *parcel.Parcel
	Notices []stock.Notice
}

// Packed reports whether a parcel was created and archived.
func (r PackOrderResult) Packed() bool {
	return r.Parcel != nil
}

// PackOrderCommandHandler runs the pack workflow: extract units from the
// ledger, raise low-stock alerts, archive the resulting parcel. The pop
// and the alert check form one atomic unit with the archive append, which
// is why the handler spans both repositories in a single transaction.
type PackOrderCommandHandler struct {
	uowFactory UoWFactory
	packer     services.Packer
}

// NewPackOrderCommandHandler creates a handler over a cross-aggregate unit
// of work factory.
func NewPackOrderCommandHandler(uowFactory UoWFactory) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory: uowFactory,
		packer:     services.NewPacker(),
	}
}

// Handle assembles the order. Shortages surface as notices in the result;
// an error means the command or the transaction failed.
func (h *PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) (PackOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PackOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PackOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledgerRepo := uow.LedgerRepository()
	ledger, err := ledgerRepo.Get(ctx)
	if err != nil {
		return PackOrderResult{}, err
	}

	packed, notices, err := h.packer.Pack(ledger, cmd.Order())
	if err != nil {
		return PackOrderResult{}, err
	}

	if packed != nil {
		if err = uow.ParcelRepository().Add(ctx, packed); err != nil {
			return PackOrderResult{}, err
		}
	}

	if err = ledgerRepo.Save(ctx, ledger); err != nil {
		return PackOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PackOrderResult{}, err
	}

	return PackOrderResult{Parcel: packed, Notices: notices}, nil
}
