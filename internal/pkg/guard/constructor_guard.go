// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries to detect zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was produced by its constructor.
// The zero value is "not constructed".
//
// Example usage:
//
//	var ErrStageIsNotConstructed = errors.New("Stage must be created via NewStage")
//
//	type Stage struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStage(name string) (Stage, error) {
//	    if name == "" {
//	        return Stage{}, errors.New("name is required")
//	    }
//	    return Stage{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Stage) Validate() error {
//	    return s.guard.Validate(ErrStageIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
