package ports

import (
	"context"

	"warehouse/internal/core/domain/model/parcel"
)

// ParcelRepository is the persistence contract for the packed-order
// archive. The archive is append-only: parcels are never updated,
// removed, or reordered after Add.
type ParcelRepository interface {
	// Add appends a packed parcel to the archive.
	Add(ctx context.Context, p *parcel.Parcel) error

	// GetAll retrieves every archived parcel in creation order.
	GetAll(ctx context.Context) ([]*parcel.Parcel, error)
}
