package organization

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrNameIsRequired               = errs.NewValueIsRequiredError("name")
	ErrOrganizationIsNotConstructed = errors.New("Organization must be created via NewOrganization constructor")
	ErrBranchIsNotConstructed       = errors.New("Branch must be created via NewBranch constructor")
)

// Organization is the root of an authorization scope.
type Organization struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

func NewOrganization(id kernel.UUID, name string) (*Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Organization{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (o *Organization) Validate() error {
	if o == nil {
		return ErrOrganizationIsNotConstructed
	}
	return o.guard.Validate(ErrOrganizationIsNotConstructed)
}

func (o *Organization) ID() kernel.UUID { return o.id }

func (o *Organization) Name() string { return o.name }

// Branch is a sub-organization nested one level under an Organization.
type Branch struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string

	guard guard.ConstructorGuard
}

func NewBranch(id, organizationID kernel.UUID, name string) (*Branch, error) {
	if err := errors.Join(id.Validate(), organizationID.Validate()); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Branch{
		id:             id,
		organizationID: organizationID,
		name:           name,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

func (b *Branch) ID() kernel.UUID { return b.id }

// OrganizationID returns the parent organization.
func (b *Branch) OrganizationID() kernel.UUID { return b.organizationID }

func (b *Branch) Name() string { return b.name }
