package organization

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrRoleIsRequired             = errs.NewValueIsRequiredError("role")
	ErrMembershipIsNotConstructed = errors.New("Membership must be created via NewMembership constructor")
)

// Role is a free-form label such as "admin" or "operator". It carries no
// authorization meaning of its own.
type Role string

// Membership grants a person standing within an organization, optionally
// narrowed to one of its branches.
type Membership struct {
	id             kernel.UUID
	personID       kernel.UUID
	organizationID kernel.UUID
	branchID       *kernel.UUID
	role           Role

	guard guard.ConstructorGuard
}

// NewMembership creates a membership. Pass a nil branchID for an
// organization-wide membership.
//
// Example:
//
//	m, err := organization.NewMembership(kernel.NewUUID(), personID, orgID, &branchID, "operator")
func NewMembership(
	id, personID, organizationID kernel.UUID,
	branchID *kernel.UUID,
	role Role,
) (Membership, error) {
	m := Membership{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		id.Validate(),
		personID.Validate(),
		organizationID.Validate(),
		m.setBranchID(branchID),
		m.setRole(role),
	); err != nil {
		return Membership{}, err
	}

	m.id = id
	m.personID = personID
	m.organizationID = organizationID
	return m, nil
}

func (m Membership) Validate() error {
	return m.guard.Validate(ErrMembershipIsNotConstructed)
}

func (m Membership) ID() kernel.UUID { return m.id }

func (m Membership) PersonID() kernel.UUID { return m.personID }

// OrganizationID returns the organization the membership belongs to. For a
// branch-scoped membership this is the branch's parent organization.
func (m Membership) OrganizationID() kernel.UUID { return m.organizationID }

// BranchID returns the branch the membership is narrowed to, or nil.
func (m Membership) BranchID() *kernel.UUID {
	if m.branchID == nil {
		return nil
	}
	b := *m.branchID
	return &b
}

// IsOrganizationWide reports whether the membership covers every branch.
func (m Membership) IsOrganizationWide() bool {
	return m.branchID == nil
}

func (m Membership) Role() Role { return m.role }

func (m *Membership) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	b := *branchID
	m.branchID = &b
	return nil
}

func (m *Membership) setRole(role Role) error {
	role = Role(strings.TrimSpace(string(role)))
	if role == "" {
		return ErrRoleIsRequired
	}
	m.role = role
	return nil
}
