package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/organization"
)

// OrganizationRepository gives access to the organization graph.
// The core only reads it; the Add methods exist for seeding.
type OrganizationRepository interface {
	AddOrganization(ctx context.Context, org *organization.Organization) error
	AddBranch(ctx context.Context, branch *organization.Branch) error
	// AddMembership and OrderRepository.Add reject a branch that belongs to
	// another organization than the one named.
	AddMembership(ctx context.Context, membership organization.Membership) error

	GetBranch(ctx context.Context, id kernel.UUID) (*organization.Branch, error)

	// ListMembershipsByPerson returns every membership held by a person,
	// organization-wide and branch-scoped alike. An unknown person has none.
	ListMembershipsByPerson(ctx context.Context, personID kernel.UUID) ([]organization.Membership, error)
}
