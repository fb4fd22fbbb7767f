// Package guard provides ConstructorGuard, a marker embedded in value objects,
// commands and queries so that zero values created without their constructor
// can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing object was built by its
// constructor. Its zero value reports "not constructed".
//
// Example:
//
//	var ErrRemarkNotConstructed = errors.New("Remark must be created via NewRemark")
//
//	type Remark struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRemark(text string) Remark {
//	    return Remark{text: text, guard: guard.NewConstructorGuard()}
//	}
//
//	func (r Remark) Validate() error {
//	    return r.guard.Validate(ErrRemarkNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
