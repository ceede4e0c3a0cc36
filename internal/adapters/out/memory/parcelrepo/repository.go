// Package parcelrepo implements the parcel archive repository over an
// in-memory transaction.
package parcelrepo

import (
	"context"

	"warehouse/internal/core/domain/model/parcel"
)

// Tx is the transaction surface the repository needs: staging parcels for
// commit and reading the archive as the transaction sees it.
type Tx interface {
	AppendParcel(p *parcel.Parcel)
	Parcels() []*parcel.Parcel
}

// Repository implements ports.ParcelRepository within a transaction.
type Repository struct {
	tx Tx
}

// NewRepository creates a repository bound to the given transaction.
func NewRepository(tx Tx) *Repository {
	return &Repository{tx: tx}
}

// Add stages a packed parcel for the archive. The archive is append only,
// so there is no update path.
func (r *Repository) Add(_ context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.tx.AppendParcel(p)
	return nil
}

// GetAll returns the archive in creation order, staged parcels included.
func (r *Repository) GetAll(_ context.Context) ([]*parcel.Parcel, error) {
	return r.tx.Parcels(), nil
}
