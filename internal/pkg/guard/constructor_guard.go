// Package guard implements the constructor-guard pattern used by commands,
// queries, and value objects to detect zero-value instances that bypassed
// their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor
// from zero values. Embed one in a struct and set it with
// NewConstructorGuard inside the constructor; a zero-value struct then
// fails Validate.
//
// Example:
//
//	type AddStockCommand struct {
//	    batch string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAddStockCommand(batch string) (AddStockCommand, error) {
//	    ...
//	    return AddStockCommand{batch: batch, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c AddStockCommand) Validate() error {
//	    return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
