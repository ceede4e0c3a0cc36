package services

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/model/stock"
)

// Packer assembles an order into a packed parcel by removing units from
// the stock ledger.
//
// Workflow per requested token:
//   - available: pop the oldest unit and collect {code, volume}
//   - unavailable: report a backorder, pack nothing for it
//   - either way, run the low-stock alert check afterwards
//
// The alert check runs for every non-blank token, including
// ones that never passed the add-stock format check; the pack path does
// not re-validate formats, so a persistent shortage keeps re-flagging
// itself order after order.
type Packer struct{}

// NewPacker creates a Packer.
func NewPacker() Packer {
	return Packer{}
}

// Pack processes a raw comma-separated order against the ledger. Blank
// tokens are skipped silently. It returns the created parcel together
// with the notices raised along the way; the parcel is nil when every
// requested item was backordered, since empty parcels are never archived.
// Shortages are notices, not errors.
func (p Packer) Pack(ledger *stock.Ledger, rawOrder string) (*parcel.Parcel, []stock.Notice, error) {
	var (
		items   []parcel.Item
		notices []stock.Notice
	)

	for _, token := range kernel.SplitCodes(rawOrder) {
		if token == "" {
			continue
		}

		if ledger.QuantityOf(token) > 0 {
			ledger.PopOldest(token)
			items = append(items, parcel.Item{Code: token, Volume: kernel.VolumeOf(token)})
		} else {
			notices = append(notices, stock.Notice{Kind: stock.NoticeBackordered, Code: token})
		}

		if n, ok := ledger.RegisterAlertIfLow(token); ok {
			notices = append(notices, n)
		}
	}

	if len(items) == 0 {
		return nil, notices, nil
	}

	packed, err := parcel.NewParcel(kernel.NewUUID(), items)
	if err != nil {
		return nil, notices, err
	}

	return packed, notices, nil
}
