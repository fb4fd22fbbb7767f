package shared

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// AccessRepositories is the subset of ports.Repositories needed to authorize.
type AccessRepositories interface {
	OrderRepository() ports.OrderRepository
	PersonRepository() ports.PersonRepository
	OrganizationRepository() ports.OrganizationRepository
}

// Authorized is the loaded context of a permitted access.
type Authorized struct {
	Order    *order.Order
	Actor    *person.Person
	Decision services.Decision
}

// AuthorizeOrderAccess loads the order and the actor, then runs the access
// guard. It fails with a not-found error when either is missing and with a
// forbidden-access error when the guard denies. operation labels the metric.
func AuthorizeOrderAccess(
	ctx context.Context,
	repos AccessRepositories,
	guard services.AccessGuard,
	operation string,
	orderID, actorID kernel.UUID,
) (Authorized, error) {
	o, err := repos.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return Authorized{}, fmt.Errorf("load order: %w", err)
	}

	actor, err := repos.PersonRepository().Get(ctx, actorID)
	if err != nil {
		return Authorized{}, fmt.Errorf("load actor: %w", err)
	}

	memberships, err := repos.OrganizationRepository().ListMembershipsByPerson(ctx, actorID)
	if err != nil {
		return Authorized{}, fmt.Errorf("load memberships: %w", err)
	}

	decision := guard.Check(o.Scope(), services.NewActor(actor, memberships))
	RecordAccessDecision(operation, decision)
	if err = decision.Err(actorID, orderID); err != nil {
		return Authorized{}, err
	}

	return Authorized{Order: o, Actor: actor, Decision: decision}, nil
}
