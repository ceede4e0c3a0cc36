package parcel

import (
	"errors"
	"slices"
	"sort"

	"warehouse/internal/core/domain/model/kernel"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel bypassed the
	// NewParcel constructor.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelHasNoItems is returned for an attempt to create an empty
	// parcel. An order whose items were all backordered is never archived.
	ErrParcelHasNoItems = errors.New("parcel must contain at least one item")
)

// Item is one packed unit: a product code and its derived volume.
type Item struct {
	Code   string
	Volume int
}

// Parcel is the immutable record of a packed order. Items are ordered by
// volume descending from creation on; ties keep their extraction order.
type Parcel struct {
	id    kernel.UUID
	items []Item

	isConstructed bool
}

// NewParcel creates a parcel from the extracted items. The input slice is
// copied and stable-sorted by volume descending; the caller's slice is
// never retained or reordered.
func NewParcel(id kernel.UUID, items []Item) (*Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrParcelHasNoItems
	}

	sorted := slices.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume > sorted[j].Volume
	})

	return &Parcel{
		id:            id,
		items:         sorted,
		isConstructed: true,
	}, nil
}

// Validate ensures the parcel was created via NewParcel.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's identity.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Items returns the contents in packed order (volume descending). The
// slice is a copy.
func (p *Parcel) Items() []Item {
	return slices.Clone(p.items)
}

// ItemsTopDown returns the contents in reverse of the packed order: the
// most recently packed unit first, the way the open box reads from above.
func (p *Parcel) ItemsTopDown() []Item {
	top := slices.Clone(p.items)
	slices.Reverse(top)
	return top
}

// Size returns the number of packed items.
func (p *Parcel) Size() int {
	return len(p.items)
}
