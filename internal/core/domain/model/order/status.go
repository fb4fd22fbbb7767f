package order

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle marker recorded for an order.
//
// Delivered, Cancelled and Returned are terminal markers. The marker is
// informational: any status is accepted after any other, so that manual
// corrections such as Delivered -> Pending stay possible.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	Pending
	Assigned
	Loading
	InProgress
	Unloading
	Delivered
	Cancelled
	Returned
)

// Statuses returns the vocabulary in canonical order.
func Statuses() []Status {
	return []Status{Pending, Assigned, Loading, InProgress, Unloading, Delivered, Cancelled, Returned}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		Loading:    "Loading",
		InProgress: "InProgress",
		Unloading:  "Unloading",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Returned:   "Returned",
	}
}

// ParseStatus maps raw onto the vocabulary, ignoring ASCII case. Anything that is not
// exactly one of the vocabulary names (surrounding whitespace included) fails
// with an errs.StatusIsInvalidError.
//
// Example:
//
//	status, err := order.ParseStatus("inprogress") // InProgress, nil
//	_, err = order.ParseStatus("In Progress")      // ErrStatusIsInvalid
func ParseStatus(raw string) (Status, error) {
	if s, ok := statusesByLowerName[asciiLower(raw)]; ok {
		return s, nil
	}
	return Unknown, errs.NewStatusIsInvalidError(raw)
}

var statusesByLowerName = func() map[string]Status {
	m := make(map[string]Status, len(Statuses()))
	for _, s := range Statuses() {
		m[strings.ToLower(s.String())] = s
	}
	return m
}()

// asciiLower folds only A-Z, so look-alikes such as U+017F (long s) never
// match a vocabulary name.
func asciiLower(raw string) string {
	b := []byte(raw)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Validate checks that s is one of the vocabulary entries.
func (s Status) Validate() error {
	if s < Pending || s > Returned {
		return errs.NewStatusIsInvalidErrorWithCause(s.String(), fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the canonical name, or "Unknown" for values outside the vocabulary.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether s is one of Delivered, Cancelled or Returned.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Returned
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseStatus.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
