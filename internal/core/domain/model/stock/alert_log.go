package stock

import (
	"fmt"
	"slices"

	"warehouse/internal/pkg/errs"
)

// AlertLog is the insertion-ordered set of product codes currently flagged
// as critically low. Capacity is fixed at construction: a full log refuses
// new entries instead of evicting old ones, so an alert raised while the
// log is full is lost.
//
// Invariants:
//   - a code appears at most once
//   - the log never holds more than capacity entries
//   - order is insertion order; removal never reorders the rest
type AlertLog struct {
	capacity int
	codes    []string
}

// NewAlertLog creates an empty alert log with the given capacity.
func NewAlertLog(capacity int) (*AlertLog, error) {
	if capacity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"alertCapacity",
			fmt.Errorf("%d is not greater than 0", capacity),
		)
	}
	return &AlertLog{capacity: capacity}, nil
}

// Contains reports whether code is currently flagged.
func (l *AlertLog) Contains(code string) bool {
	return slices.Contains(l.codes, code)
}

// Append flags code, returning false when the log is at capacity or the
// code is already present. The caller decides what a refusal means.
func (l *AlertLog) Append(code string) bool {
	if len(l.codes) >= l.capacity || l.Contains(code) {
		return false
	}
	l.codes = append(l.codes, code)
	return true
}

// Remove clears the flag for code, preserving the order of the remaining
// entries. Returns false when the code was not flagged.
func (l *AlertLog) Remove(code string) bool {
	for i, c := range l.codes {
		if c == code {
			l.codes = append(l.codes[:i], l.codes[i+1:]...)
			return true
		}
	}
	return false
}

// Codes returns the flagged codes in insertion order. The slice is a copy.
func (l *AlertLog) Codes() []string {
	return slices.Clone(l.codes)
}

// Len returns the number of flagged codes.
func (l *AlertLog) Len() int {
	return len(l.codes)
}

// Capacity returns the maximum number of entries.
func (l *AlertLog) Capacity() int {
	return l.capacity
}

func (l *AlertLog) clone() *AlertLog {
	return &AlertLog{capacity: l.capacity, codes: slices.Clone(l.codes)}
}
