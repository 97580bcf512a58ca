package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. It guarantees that a zero-value object always
// fails validation with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created
// through their designated constructor functions. Embedding a guard in a
// struct makes the zero value detectable: the internal flag is only set by
// NewConstructorGuard, so any struct built by direct initialization fails
// Validate.
//
// Example:
//
//	type Email struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewEmail(raw string) (Email, error) {
//	    // ...validate raw...
//	    return Email{value: raw, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (e Email) Validate() error {
//	    return e.guard.Validate(ErrEmailIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it in every constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. It returns nil for constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard when
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
