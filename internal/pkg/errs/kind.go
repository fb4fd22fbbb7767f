package errs

import "errors"

// Kind is the failure classification exposed to callers of the order event
// operations. Transport adapters translate a Kind, never a concrete error.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindInvalidStatus
	KindForbiddenAccess
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidStatus:
		return "InvalidStatus"
	case KindForbiddenAccess:
		return "ForbiddenAccess"
	case KindUnexpected:
		return "Unexpected"
	default:
		return "Unexpected"
	}
}

// KindOf classifies err. A nil error has no kind and reports KindUnexpected;
// callers are expected to check for nil first.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrAccessIsForbidden):
		return KindForbiddenAccess
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrStatusIsInvalid):
		return KindInvalidStatus
	default:
		return KindUnexpected
	}
}
