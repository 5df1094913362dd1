// Package guard lets value objects tell a constructed instance apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects that must only be built by their
// constructor. Its zero value fails validation, so a struct literal such as
// catalog.ProductVariant{} is rejected wherever the variant is consumed.
//
// Example:
//
//	type Quote struct {
//	    amount float64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewQuote(amount float64) Quote {
//	    return Quote{amount: amount, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q Quote) Validate() error {
//	    return q.guard.Validate(ErrQuoteIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
