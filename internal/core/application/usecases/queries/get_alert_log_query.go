package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetAlertLogQueryIsNotConstructed = errors.New(
		"GetAlertLogQuery must be created via NewGetAlertLogQuery constructor",
	)
)

// GetAlertLogQuery retrieves the pending low-stock alerts in the order
// they were raised, together with the log's capacity so callers can show
// how full it is.
type GetAlertLogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAlertLogQuery creates a query to retrieve the alert log.
func NewGetAlertLogQuery() GetAlertLogQuery {
	return GetAlertLogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAlertLogQueryIsNotConstructed if validation fails.
func (q GetAlertLogQuery) Validate() error {
	return q.guard.Validate(ErrGetAlertLogQueryIsNotConstructed)
}

// GetAlertLogQueryResponse is the alert log read model. Codes preserves
// insertion order, oldest alert first.
type GetAlertLogQueryResponse struct {
	Codes    []string
	Capacity int
}
