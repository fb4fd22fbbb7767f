package queries_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/memory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// world is a small organization graph in a memory store.
type world struct {
	factory *memory.UnitOfWorkFactory
	repos   ports.UnitOfWork

	orgID      kernel.UUID
	driverID   kernel.UUID
	outsiderID kernel.UUID
}

func newWorld(t *testing.T) *world {
	t.Helper()
	ctx := t.Context()

	w := &world{
		factory:    memory.NewUnitOfWorkFactory(memory.NewStore()),
		orgID:      kernel.NewUUID(),
		driverID:   kernel.NewUUID(),
		outsiderID: kernel.NewUUID(),
	}
	w.repos = w.factory.Create()

	org, err := organization.NewOrganization(w.orgID, "Northwind")
	require.NoError(t, err)
	require.NoError(t, w.repos.OrganizationRepository().AddOrganization(ctx, org))

	driver, err := person.NewPerson(w.driverID, "Dana Driver")
	require.NoError(t, err)
	require.NoError(t, w.repos.PersonRepository().Add(ctx, driver))
	outsider, err := person.NewPerson(w.outsiderID, "Olly Outsider")
	require.NoError(t, err)
	require.NoError(t, w.repos.PersonRepository().Add(ctx, outsider))

	m, err := organization.NewMembership(kernel.NewUUID(), w.driverID, w.orgID, nil, "driver")
	require.NoError(t, err)
	require.NoError(t, w.repos.OrganizationRepository().AddMembership(ctx, m))

	return w
}

func (w *world) addOrder(t *testing.T) kernel.UUID {
	t.Helper()
	scope, err := order.NewScope(w.orgID, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), scope)
	require.NoError(t, err)
	require.NoError(t, w.repos.OrderRepository().Add(t.Context(), o))
	return o.ID()
}

func (w *world) appendEvent(
	t *testing.T,
	orderID kernel.UUID,
	status order.Status,
	actorID *kernel.UUID,
	occurredAt time.Time,
) *orderevent.OrderEvent {
	t.Helper()
	e, err := orderevent.New(orderID, status, nil, actorID, occurredAt)
	require.NoError(t, err)
	stored, err := w.repos.OrderEventRepository().Append(context.Background(), e)
	require.NoError(t, err)
	return stored
}
