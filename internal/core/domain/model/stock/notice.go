package stock

import "fmt"

// NoticeKind classifies the recoverable conditions reported by ledger and
// packing operations.
type NoticeKind int

const (
	// NoticeUnknown is the zero value and reported by no operation.
	NoticeUnknown NoticeKind = iota

	// NoticeFormatRejected reports a token that failed the product code
	// format check and was skipped.
	NoticeFormatRejected

	// NoticeAlertResolved reports an alert removed from the log because the
	// product's quantity reached the threshold again.
	NoticeAlertResolved

	// NoticeAlertStillLow reports stock added to an alerted product that
	// remains under the threshold; the alert is kept.
	NoticeAlertStillLow

	// NoticeAlertActivated reports a product appended to the alert log.
	NoticeAlertActivated

	// NoticeAlertLogFull reports an alert refused because the log was at
	// capacity; the occurrence is lost.
	NoticeAlertLogFull

	// NoticeBackordered reports a requested product with no stock; the item
	// is excluded from the parcel.
	NoticeBackordered
)

// String returns a stable identifier for the kind, used in JSON payloads
// and logs.
func (k NoticeKind) String() string {
	switch k {
	case NoticeFormatRejected:
		return "format_rejected"
	case NoticeAlertResolved:
		return "alert_resolved"
	case NoticeAlertStillLow:
		return "alert_still_low"
	case NoticeAlertActivated:
		return "alert_activated"
	case NoticeAlertLogFull:
		return "alert_log_full"
	case NoticeBackordered:
		return "backordered"
	default:
		return "unknown"
	}
}

// Notice is a typed diagnostic emitted by ledger and packing operations.
// Notices are values, not errors: the operation that produced one has
// already handled the condition and moved on.
type Notice struct {
	Kind      NoticeKind
	Code      string
	Quantity  int
	Threshold int
	Capacity  int
}

// String renders the notice for console output. The wording differs from
// the data only cosmetically; Kind and the numeric fields carry the
// authoritative content.
func (n Notice) String() string {
	switch n.Kind {
	case NoticeFormatRejected:
		return fmt.Sprintf("invalid format ignored: %q", n.Code)
	case NoticeAlertResolved:
		return fmt.Sprintf("RESOLVED: alert %s cleared (stock %d >= %d)", n.Code, n.Quantity, n.Threshold)
	case NoticeAlertStillLow:
		return fmt.Sprintf("LOW STOCK: %s added, threshold not reached (%d/%d), alert kept",
			n.Code, n.Quantity, n.Threshold)
	case NoticeAlertActivated:
		return fmt.Sprintf("!!! ALERT ACTIVATED: %s (critical stock) !!!", n.Code)
	case NoticeAlertLogFull:
		return fmt.Sprintf("ALERT LOG FULL (%d/%d): alert for %s lost, handle pending alerts",
			n.Capacity, n.Capacity, n.Code)
	case NoticeBackordered:
		return fmt.Sprintf("BACKORDER: %s unavailable", n.Code)
	default:
		return fmt.Sprintf("unknown notice for %q", n.Code)
	}
}
