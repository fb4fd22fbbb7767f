// Package errs holds the error types shared by the domain, the use cases and
// the adapters.
//
// Each family pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrStatusIsInvalid,
// ErrAccessIsForbidden) with a struct carrying the details. The structs
// unwrap to their sentinel, so callers match with errors.Is however deeply
// the error was wrapped or joined.
//
// KindOf reduces any error to the Kind a caller may observe. Everything that
// is not a missing order or actor, an unknown status or a refused access is
// KindUnexpected.
package errs
