// Package guard provides the constructor-guard pattern used by commands,
// queries, and value objects to ensure they are only created through their
// designated constructor functions. A zero-value struct embedding a
// ConstructorGuard fails validation, which prevents accidental use of
// uninitialized domain objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil error is passed as the validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embed it in a
// struct and set it via NewConstructorGuard inside the constructor; the
// zero value fails Validate.
//
// Example:
//
//	type CreateUserCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreateUserCommand(name string) (CreateUserCommand, error) {
//	    if name == "" {
//	        return CreateUserCommand{}, errors.New("name is required")
//	    }
//	    return CreateUserCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreateUserCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was created through its constructor.
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
