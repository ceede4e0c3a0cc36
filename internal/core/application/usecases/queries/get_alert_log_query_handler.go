package queries

import (
	"context"
)

// GetAlertLogQueryHandler retrieves the alert log read model from the
// committed ledger snapshot.
type GetAlertLogQueryHandler struct {
	reader LedgerReader
}

// NewGetAlertLogQueryHandler creates a handler over a ledger reader.
func NewGetAlertLogQueryHandler(reader LedgerReader) GetAlertLogQueryHandler {
	return GetAlertLogQueryHandler{reader: reader}
}

// Handle executes the query.
func (h GetAlertLogQueryHandler) Handle(
	ctx context.Context,
	query GetAlertLogQuery,
) (GetAlertLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAlertLogQueryResponse{}, err
	}

	ledger, err := h.reader.ReadLedger(ctx)
	if err != nil {
		return GetAlertLogQueryResponse{}, err
	}

	return GetAlertLogQueryResponse{
		Codes:    ledger.Alerts(),
		Capacity: ledger.AlertCapacity(),
	}, nil
}
