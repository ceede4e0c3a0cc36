package stock

import (
	"fmt"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

const (
	// DefaultLowStockThreshold is the quantity below which a product is
	// considered critically low.
	DefaultLowStockThreshold = 2

	// DefaultAlertLogCapacity is the number of alert slots.
	DefaultAlertLogCapacity = 3
)

// Unit is one indistinguishable stock token for a product. The UUID exists
// so FIFO ordering is observable; it carries no business meaning.
type Unit struct {
	id   kernel.UUID
	code string
}

// ID returns the unit's identity.
func (u Unit) ID() kernel.UUID {
	return u.id
}

// Code returns the product code the unit belongs to.
func (u Unit) Code() string {
	return u.code
}

// InventoryLine is one row of the inventory listing.
type InventoryLine struct {
	Code     string
	Quantity int
	Low      bool
}

// Ledger is the StockLedger aggregate: per-product FIFO queues plus the
// alert log, mutated only together through the methods below.
//
// Queues are lazily created: a code that was never stocked reads as
// quantity 0. Units leave a queue strictly in arrival order.
type Ledger struct {
	queues    map[string][]Unit
	alerts    *AlertLog
	threshold int
}

// NewLedger creates an empty ledger. Threshold is the low-stock bound
// (alerts fire strictly below it) and alertCapacity bounds the alert log.
func NewLedger(threshold, alertCapacity int) (*Ledger, error) {
	if threshold < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"threshold",
			fmt.Errorf("%d is not greater than 0", threshold),
		)
	}

	alerts, err := NewAlertLog(alertCapacity)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		queues:    make(map[string][]Unit),
		alerts:    alerts,
		threshold: threshold,
	}, nil
}

// AddBatch processes a raw comma-separated list of product codes. Each
// token is normalized; tokens that fail the format check are reported and
// skipped, valid ones append one unit to the product's queue. After every
// append the alert log is checked: an alerted product back at the
// threshold is resolved, an alerted product still under it is reported as
// kept. AddBatch never raises alerts and never fails.
func (l *Ledger) AddBatch(raw string) []Notice {
	var notices []Notice

	for _, token := range kernel.SplitCodes(raw) {
		code, err := kernel.NewProductCode(token)
		if err != nil {
			notices = append(notices, Notice{Kind: NoticeFormatRejected, Code: token})
			continue
		}

		l.push(code.String())

		if n, ok := l.checkAlertResolution(code.String()); ok {
			notices = append(notices, n)
		}
	}

	return notices
}

// QuantityOf returns the current number of units for code, 0 for unknown
// codes. No side effects.
func (l *Ledger) QuantityOf(code string) int {
	return len(l.queues[code])
}

// PopOldest removes and returns the oldest unit for code, or nil when the
// queue is empty or unknown. It does not touch the alert log; callers
// decide when to run RegisterAlertIfLow.
func (l *Ledger) PopOldest(code string) *Unit {
	queue := l.queues[code]
	if len(queue) == 0 {
		return nil
	}

	unit := queue[0]
	l.queues[code] = queue[1:]
	return &unit
}

// RegisterAlertIfLow flags code when its quantity is strictly below the
// threshold. Nothing happens (no notice) when the quantity is sufficient
// or the code is already flagged. When the log is full the alert is
// refused and reported lost; a later call can still succeed once a slot
// frees up.
func (l *Ledger) RegisterAlertIfLow(code string) (Notice, bool) {
	qty := l.QuantityOf(code)
	if qty >= l.threshold {
		return Notice{}, false
	}
	if l.alerts.Contains(code) {
		return Notice{}, false
	}

	if l.alerts.Append(code) {
		return Notice{Kind: NoticeAlertActivated, Code: code, Quantity: qty, Threshold: l.threshold}, true
	}

	return Notice{Kind: NoticeAlertLogFull, Code: code, Capacity: l.alerts.Capacity()}, true
}

// Inventory lists all stocked products sorted lexicographically by code.
// Lines under the threshold carry the Low marker. Purely informational.
func (l *Ledger) Inventory() []InventoryLine {
	codes := make([]string, 0, len(l.queues))
	for code := range l.queues {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	lines := make([]InventoryLine, 0, len(codes))
	for _, code := range codes {
		qty := len(l.queues[code])
		lines = append(lines, InventoryLine{
			Code:     code,
			Quantity: qty,
			Low:      qty < l.threshold,
		})
	}
	return lines
}

// Alerts returns the alert log contents in insertion order.
func (l *Ledger) Alerts() []string {
	return l.alerts.Codes()
}

// Threshold returns the low-stock bound.
func (l *Ledger) Threshold() int {
	return l.threshold
}

// AlertCapacity returns the number of alert slots.
func (l *Ledger) AlertCapacity() int {
	return l.alerts.Capacity()
}

// Clone returns a deep copy. The unit of work stages mutations on a clone
// and publishes it on commit.
func (l *Ledger) Clone() *Ledger {
	queues := make(map[string][]Unit, len(l.queues))
	for code, queue := range l.queues {
		queues[code] = slices.Clone(queue)
	}
	return &Ledger{
		queues:    queues,
		alerts:    l.alerts.clone(),
		threshold: l.threshold,
	}
}

func (l *Ledger) push(code string) {
	l.queues[code] = append(l.queues[code], Unit{id: kernel.NewUUID(), code: code})
}

// checkAlertResolution runs after a unit was appended for code. An alerted
// product back at the threshold leaves the log; one still under it stays,
// with a notice either way. Unalerted products are silent regardless of
// quantity: only the pack path raises alerts.
func (l *Ledger) checkAlertResolution(code string) (Notice, bool) {
	if !l.alerts.Contains(code) {
		return Notice{}, false
	}

	qty := l.QuantityOf(code)
	if qty >= l.threshold {
		l.alerts.Remove(code)
		return Notice{Kind: NoticeAlertResolved, Code: code, Quantity: qty, Threshold: l.threshold}, true
	}

	return Notice{Kind: NoticeAlertStillLow, Code: code, Quantity: qty, Threshold: l.threshold}, true
}
