package services

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/pkg/errs"
)

// Rule names the access rule that produced a Decision.
type Rule string

const (
	RuleElevatedCapability Rule = "elevated_capability"
	RuleMembership         Rule = "membership"
	RuleNoStanding         Rule = "no_standing"
)

// Actor is the flattened authorization context of a person: identity,
// capabilities and memberships, all loaded before the check runs.
type Actor struct {
	PersonID     kernel.UUID
	Capabilities []person.Capability
	Memberships  []organization.Membership
}

// NewActor flattens p and its memberships into an Actor.
func NewActor(p *person.Person, memberships []organization.Membership) Actor {
	return Actor{
		PersonID:     p.ID(),
		Capabilities: p.Capabilities(),
		Memberships:  memberships,
	}
}

func (a Actor) isElevated() bool {
	for _, c := range a.Capabilities {
		if c == person.CapabilityAdmin || c == person.CapabilitySuperAdmin {
			return true
		}
	}
	return false
}

// Decision is the outcome of AccessGuard.Check.
type Decision struct {
	Allowed bool
	Rule    Rule
	Reason  string
}

// Err converts a deny decision into an errs.AccessIsForbiddenError and returns
// nil for an allow decision.
func (d Decision) Err(actorID, orderID kernel.UUID) error {
	if d.Allowed {
		return nil
	}
	return errs.NewAccessIsForbiddenError(actorID.String(), orderID.String(), d.Reason)
}

// AccessGuard decides whether an actor has standing for an order. It is a pure
// function of already loaded context and is safe for concurrent use.
//
// Rules are evaluated in order and the first match wins:
//  1. an actor with the admin or superadmin capability is allowed
//  2. an actor with a membership in the order's organization is allowed when
//     the order is not branch-scoped, the membership is organization-wide, or
//     the membership's branch equals the order's branch
//  3. everyone else is denied
//
// Example:
//
//	guard := services.NewAccessGuard()
//	decision := guard.Check(o.Scope(), services.NewActor(p, memberships))
//	if err := decision.Err(p.ID(), o.ID()); err != nil {
//	    return err
//	}
type AccessGuard struct{}

func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Check evaluates the access rules for an order scope and an actor.
func (g AccessGuard) Check(scope order.Scope, actor Actor) Decision {
	if actor.isElevated() {
		return Decision{Allowed: true, Rule: RuleElevatedCapability}
	}

	for _, m := range actor.Memberships {
		if coversScope(m, scope) {
			return Decision{Allowed: true, Rule: RuleMembership}
		}
	}

	return Decision{
		Allowed: false,
		Rule:    RuleNoStanding,
		Reason:  denyReason(scope, actor),
	}
}

func coversScope(m organization.Membership, scope order.Scope) bool {
	if !m.OrganizationID().IsEqual(scope.OrganizationID()) {
		return false
	}
	if !scope.IsBranchScoped() || m.IsOrganizationWide() {
		return true
	}
	return m.BranchID().IsEqual(*scope.BranchID())
}

func denyReason(scope order.Scope, actor Actor) string {
	for _, m := range actor.Memberships {
		if m.OrganizationID().IsEqual(scope.OrganizationID()) {
			return fmt.Sprintf("membership in organization %s is limited to branch %s, order belongs to branch %s",
				scope.OrganizationID(), m.BranchID(), scope.BranchID())
		}
	}
	return fmt.Sprintf("no membership in organization %s", scope.OrganizationID())
}
