package queries

import (
	"context"
)

// GetInventoryQueryHandler retrieves the inventory read model from the
// committed ledger snapshot. Reads bypass the unit of work entirely, as
// befits the query side of the CQRS split.
type GetInventoryQueryHandler struct {
	reader LedgerReader
}

// NewGetInventoryQueryHandler creates a handler over a ledger reader.
func NewGetInventoryQueryHandler(reader LedgerReader) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{reader: reader}
}

// Handle executes the query. Lines come back sorted by product code so
// repeated calls render identically.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) ([]GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ledger, err := h.reader.ReadLedger(ctx)
	if err != nil {
		return nil, err
	}

	inventory := ledger.Inventory()
	lines := make([]GetInventoryQueryResponse, 0, len(inventory))
	for _, line := range inventory {
		lines = append(lines, GetInventoryQueryResponse{
			Code:     line.Code,
			Quantity: line.Quantity,
			Low:      line.Low,
		})
	}

	return lines, nil
}
