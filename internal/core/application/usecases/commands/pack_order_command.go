package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand requests that a raw comma-separated order be assembled
// into a parcel. Like AddStockCommand, the raw string travels untouched:
// blank tokens, unknown codes, and malformed codes are all resolved
// downstream as notices.
type PackOrderCommand struct {
	order string

	guard guard.ConstructorGuard
}

// NewPackOrderCommand creates a command for the given raw order string.
func NewPackOrderCommand(order string) (PackOrderCommand, error) {
	return PackOrderCommand{
		order: order,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

// Order returns the raw comma-separated product codes to pack.
func (c PackOrderCommand) Order() string {
	return c.order
}
