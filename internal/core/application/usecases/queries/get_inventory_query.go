// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var (
	ErrGetInventoryQueryIsNotConstructed = errors.New(
		"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
	)
)

// GetInventoryQuery retrieves the current stock level of every known
// product, including products whose queue has drained to zero.
//
// Example:
//
//	query := queries.NewGetInventoryQuery()
//	handler := queries.NewGetInventoryQueryHandler(store)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve inventory: %w", err)
//	}
//
//	for _, line := range lines {
//	    fmt.Printf("%s: %d units\n", line.Code, line.Quantity)
//	}
type GetInventoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query to retrieve the full inventory.
// This is a parameterless query that fetches every product line.
func NewGetInventoryQuery() GetInventoryQuery {
	return GetInventoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// GetInventoryQueryResponse is one inventory line in the read model.
// Low marks products whose quantity sits strictly below the ledger's
// low-stock threshold.
type GetInventoryQueryResponse struct {
	Code     string
	Quantity int
	Low      bool
}
