package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrAddStockCommandIsNotConstructed = errors.New(
	"AddStockCommand must be created via NewAddStockCommand constructor",
)

// AddStockCommand requests that a raw comma-separated batch of product
// codes be added to the ledger.
//
// The batch is carried as-is, malformed tokens included: rejecting them
// one by one, with a notice each and never an error, is the ledger's job.
// An empty batch is therefore legal input and yields a single format
// rejection, exactly like typing an empty line at the console.
type AddStockCommand struct {
	batch string

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command for the given raw batch string.
func NewAddStockCommand(batch string) (AddStockCommand, error) {
	return AddStockCommand{
		batch: batch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// Batch returns the raw comma-separated product codes.
func (c AddStockCommand) Batch() string {
	return c.batch
}
