// Package guard provides a defensive-programming helper that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through a constructor from zero
// values. Embed it in a struct and set it with NewConstructorGuard inside the
// constructor; a zero-value struct then fails Validate.
//
// Example:
//
//	type SubmitDraftCommand struct {
//	    draftID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSubmitDraftCommand(id kernel.UUID) (SubmitDraftCommand, error) {
//	    if err := id.Validate(); err != nil {
//	        return SubmitDraftCommand{}, err
//	    }
//	    return SubmitDraftCommand{draftID: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SubmitDraftCommand) Validate() error {
//	    return c.guard.Validate(ErrSubmitDraftCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
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
