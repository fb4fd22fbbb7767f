// Package person holds the actor record: a person who reads or changes orders,
// with a display name and an optional set of elevated capabilities.
package person

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	ErrDisplayNameIsRequired  = errs.NewValueIsRequiredError("display name")
	ErrPersonIsNotConstructed = errors.New("Person must be created via NewPerson constructor")
)

// Capability is an elevated privilege that bypasses scoped membership checks.
type Capability string

const (
	CapabilityAdmin      Capability = "admin"
	CapabilitySuperAdmin Capability = "superadmin"
)

// ParseCapability maps a stored name onto a Capability, ignoring case.
func ParseCapability(raw string) (Capability, error) {
	switch c := Capability(strings.ToLower(strings.TrimSpace(raw))); c {
	case CapabilityAdmin, CapabilitySuperAdmin:
		return c, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("capability", fmt.Errorf("%q is not a known capability", raw))
	}
}

// Person is an actor that can be attributed with order events.
type Person struct {
	id           kernel.UUID
	displayName  string
	capabilities []Capability

	isConstructed bool
}

// NewPerson creates a person. Duplicate capabilities are collapsed.
func NewPerson(id kernel.UUID, displayName string, capabilities ...Capability) (*Person, error) {
	p := &Person{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setDisplayName(displayName),
		p.setCapabilities(capabilities),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Person) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPersonIsNotConstructed
	}
	return nil
}

func (p *Person) ID() kernel.UUID { return p.id }

func (p *Person) DisplayName() string { return p.displayName }

// Capabilities returns a copy of the person's elevated capabilities.
func (p *Person) Capabilities() []Capability {
	return slices.Clone(p.capabilities)
}

// Has reports whether the person holds capability c.
func (p *Person) Has(c Capability) bool {
	return slices.Contains(p.capabilities, c)
}

// IsElevated reports whether the person holds any elevated capability.
func (p *Person) IsElevated() bool {
	return p.Has(CapabilityAdmin) || p.Has(CapabilitySuperAdmin)
}

func (p *Person) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Person) setDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrDisplayNameIsRequired
	}
	p.displayName = name
	return nil
}

func (p *Person) setCapabilities(capabilities []Capability) error {
	for _, c := range capabilities {
		parsed, err := ParseCapability(string(c))
		if err != nil {
			return err
		}
		if !slices.Contains(p.capabilities, parsed) {
			p.capabilities = append(p.capabilities, parsed)
		}
	}
	return nil
}
