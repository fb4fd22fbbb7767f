package order

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrScopeIsNotConstructed is returned when a Scope was not created via NewScope.
var ErrScopeIsNotConstructed = errors.New("Scope must be created via NewScope constructor")

// Scope is the organizational context of an order: the owning organization and,
// when the order is branch-scoped, the branch inside that organization.
type Scope struct {
	organizationID kernel.UUID
	branchID       *kernel.UUID

	guard guard.ConstructorGuard
}

// NewScope validates the organization and optional branch identifiers.
// A nil branchID yields an organization-wide scope.
func NewScope(organizationID kernel.UUID, branchID *kernel.UUID) (Scope, error) {
	if err := organizationID.Validate(); err != nil {
		return Scope{}, err
	}
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return Scope{}, err
		}
		b := *branchID
		branchID = &b
	}

	return Scope{
		organizationID: organizationID,
		branchID:       branchID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the scope was built by NewScope.
func (s Scope) Validate() error {
	return s.guard.Validate(ErrScopeIsNotConstructed)
}

// OrganizationID returns the owning organization.
func (s Scope) OrganizationID() kernel.UUID {
	return s.organizationID
}

// BranchID returns the branch the order is narrowed to, or nil.
func (s Scope) BranchID() *kernel.UUID {
	if s.branchID == nil {
		return nil
	}
	b := *s.branchID
	return &b
}

// IsBranchScoped reports whether the order is narrowed to a branch.
func (s Scope) IsBranchScoped() bool {
	return s.branchID != nil
}
