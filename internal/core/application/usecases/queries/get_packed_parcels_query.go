package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrGetPackedParcelsQueryIsNotConstructed = errors.New(
		"GetPackedParcelsQuery must be created via NewGetPackedParcelsQuery constructor",
	)
)

// GetPackedParcelsQuery retrieves every packed parcel from the archive in
// creation order, each numbered from 1.
type GetPackedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPackedParcelsQuery creates a query to retrieve the parcel archive.
func NewGetPackedParcelsQuery() GetPackedParcelsQuery {
	return GetPackedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackedParcelsQueryIsNotConstructed if validation fails.
func (q GetPackedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetPackedParcelsQueryIsNotConstructed)
}

// GetPackedParcelsQueryResponse is one archived parcel in the read model.
// Items lists the contents top of the pile first, so the smallest item
// leads and the heaviest base item comes last.
type GetPackedParcelsQueryResponse struct {
	Number int
	ID     kernel.UUID
	Items  []ParcelItemResponse
}

// ParcelItemResponse is one item inside an archived parcel.
type ParcelItemResponse struct {
	Code   string
	Volume int
}
