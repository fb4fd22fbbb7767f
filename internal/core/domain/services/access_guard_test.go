package services_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graph struct {
	orgA, orgB         kernel.UUID
	branchA1, branchA2 kernel.UUID
	branchB1           kernel.UUID
}

func newGraph() graph {
	return graph{
		orgA:     kernel.NewUUID(),
		orgB:     kernel.NewUUID(),
		branchA1: kernel.NewUUID(),
		branchA2: kernel.NewUUID(),
		branchB1: kernel.NewUUID(),
	}
}

func mustScope(t *testing.T, orgID kernel.UUID, branchID *kernel.UUID) order.Scope {
	t.Helper()
	scope, err := order.NewScope(orgID, branchID)
	require.NoError(t, err)
	return scope
}

func mustMembership(t *testing.T, personID, orgID kernel.UUID, branchID *kernel.UUID) organization.Membership {
	t.Helper()
	m, err := organization.NewMembership(kernel.NewUUID(), personID, orgID, branchID, "operator")
	require.NoError(t, err)
	return m
}

func TestAccessGuard_Check(t *testing.T) {
	g := newGraph()
	personID := kernel.NewUUID()
	guard := services.NewAccessGuard()

	orgWideA := mustMembership(t, personID, g.orgA, nil)
	branchA1 := mustMembership(t, personID, g.orgA, &g.branchA1)
	branchA2 := mustMembership(t, personID, g.orgA, &g.branchA2)
	orgWideB := mustMembership(t, personID, g.orgB, nil)
	branchB1 := mustMembership(t, personID, g.orgB, &g.branchB1)

	testCases := []struct {
		name        string
		scope       order.Scope
		memberships []organization.Membership
		allowed     bool
		rule        services.Rule
	}{
		{"org-wide membership, org-wide order", mustScope(t, g.orgA, nil), []organization.Membership{orgWideA}, true, services.RuleMembership},
		{"org-wide membership, branch order", mustScope(t, g.orgA, &g.branchA1), []organization.Membership{orgWideA}, true, services.RuleMembership},
		{"matching branch membership", mustScope(t, g.orgA, &g.branchA1), []organization.Membership{branchA1}, true, services.RuleMembership},
		{"branch membership, org-wide order", mustScope(t, g.orgA, nil), []organization.Membership{branchA1}, true, services.RuleMembership},
		{"sibling branch membership", mustScope(t, g.orgA, &g.branchA1), []organization.Membership{branchA2}, false, services.RuleNoStanding},
		{"other organization org-wide", mustScope(t, g.orgA, nil), []organization.Membership{orgWideB}, false, services.RuleNoStanding},
		{"other organization branch", mustScope(t, g.orgA, &g.branchA1), []organization.Membership{branchB1}, false, services.RuleNoStanding},
		{"no memberships", mustScope(t, g.orgA, nil), nil, false, services.RuleNoStanding},
		{"second membership matches", mustScope(t, g.orgA, &g.branchA2), []organization.Membership{branchB1, branchA1, branchA2}, true, services.RuleMembership},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actor := services.Actor{PersonID: personID, Memberships: tc.memberships}

			decision := guard.Check(tc.scope, actor)

			assert.Equal(t, tc.allowed, decision.Allowed)
			assert.Equal(t, tc.rule, decision.Rule)
			if !tc.allowed {
				assert.NotEmpty(t, decision.Reason)
			}
		})
	}
}

func TestAccessGuard_ElevatedCapabilityBypassesMemberships(t *testing.T) {
	g := newGraph()
	guard := services.NewAccessGuard()
	scopes := []order.Scope{
		mustScope(t, g.orgA, nil),
		mustScope(t, g.orgA, &g.branchA1),
		mustScope(t, g.orgB, &g.branchB1),
	}

	for _, capability := range []person.Capability{person.CapabilityAdmin, person.CapabilitySuperAdmin} {
		p, err := person.NewPerson(kernel.NewUUID(), "Root", capability)
		require.NoError(t, err)

		for _, memberships := range [][]organization.Membership{
			nil,
			{mustMembership(t, p.ID(), g.orgB, &g.branchB1)},
		} {
			actor := services.NewActor(p, memberships)
			for _, scope := range scopes {
				decision := guard.Check(scope, actor)

				assert.True(t, decision.Allowed)
				assert.Equal(t, services.RuleElevatedCapability, decision.Rule)
			}
		}
	}
}

func TestDecision_Err(t *testing.T) {
	actorID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("allow yields nil", func(t *testing.T) {
		require.NoError(t, services.Decision{Allowed: true}.Err(actorID, orderID))
	})

	t.Run("deny yields forbidden access", func(t *testing.T) {
		err := services.Decision{Allowed: false, Reason: "no membership"}.Err(actorID, orderID)

		require.ErrorIs(t, err, errs.ErrAccessIsForbidden)
		assert.Equal(t, errs.KindForbiddenAccess, errs.KindOf(err))
		assert.Contains(t, err.Error(), actorID.String())
		assert.Contains(t, err.Error(), orderID.String())
	})
}

func TestAccessGuard_DenyReason(t *testing.T) {
	g := newGraph()
	personID := kernel.NewUUID()
	guard := services.NewAccessGuard()

	sibling := guard.Check(
		mustScope(t, g.orgA, &g.branchA1),
		services.Actor{PersonID: personID, Memberships: []organization.Membership{mustMembership(t, personID, g.orgA, &g.branchA2)}},
	)
	assert.Contains(t, sibling.Reason, "limited to branch "+g.branchA2.String())

	stranger := guard.Check(mustScope(t, g.orgA, nil), services.Actor{PersonID: personID})
	assert.Equal(t, "no membership in organization "+g.orgA.String(), stranger.Reason)
}
