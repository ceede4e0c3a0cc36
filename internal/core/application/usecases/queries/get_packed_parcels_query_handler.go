package queries

import (
	"context"
)

// GetPackedParcelsQueryHandler retrieves the parcel archive read model.
type GetPackedParcelsQueryHandler struct {
	reader ParcelReader
}

// NewGetPackedParcelsQueryHandler creates a handler over a parcel reader.
func NewGetPackedParcelsQueryHandler(reader ParcelReader) GetPackedParcelsQueryHandler {
	return GetPackedParcelsQueryHandler{reader: reader}
}

// Handle executes the query. Parcels come back in the order they were
// packed, numbered from 1.
func (h GetPackedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetPackedParcelsQuery,
) ([]GetPackedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.reader.ReadParcels(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetPackedParcelsQueryResponse, 0, len(parcels))
	for i, p := range parcels {
		items := p.ItemsTopDown()
		itemResponses := make([]ParcelItemResponse, 0, len(items))
		for _, item := range items {
			itemResponses = append(itemResponses, ParcelItemResponse{
				Code:   item.Code,
				Volume: item.Volume,
			})
		}

		responses = append(responses, GetPackedParcelsQueryResponse{
			Number: i + 1,
			ID:     p.ID(),
			Items:  itemResponses,
		})
	}

	return responses, nil
}
