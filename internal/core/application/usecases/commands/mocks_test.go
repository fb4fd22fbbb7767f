package commands_test

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPersonRepository struct{ mock.Mock }

func (m *MockPersonRepository) Add(ctx context.Context, p *person.Person) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*person.Person), args.Error(1)
}

func (m *MockPersonRepository) GetDisplayNames(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]string), args.Error(1)
}

type MockOrganizationRepository struct{ mock.Mock }

func (m *MockOrganizationRepository) AddOrganization(ctx context.Context, org *organization.Organization) error {
	return m.Called(ctx, org).Error(0)
}

func (m *MockOrganizationRepository) AddBranch(ctx context.Context, branch *organization.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockOrganizationRepository) AddMembership(ctx context.Context, membership organization.Membership) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *MockOrganizationRepository) GetBranch(ctx context.Context, id kernel.UUID) (*organization.Branch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Branch), args.Error(1)
}

func (m *MockOrganizationRepository) ListMembershipsByPerson(
	ctx context.Context,
	personID kernel.UUID,
) ([]organization.Membership, error) {
	args := m.Called(ctx, personID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]organization.Membership), args.Error(1)
}

type MockOrderEventRepository struct{ mock.Mock }

func (m *MockOrderEventRepository) Append(
	ctx context.Context,
	event *orderevent.OrderEvent,
) (*orderevent.OrderEvent, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderevent.OrderEvent), args.Error(1)
}

func (m *MockOrderEventRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*orderevent.OrderEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderevent.OrderEvent), args.Error(1)
}

func (m *MockOrderEventRepository) ListLatestBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*orderevent.OrderEvent, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderevent.OrderEvent), args.Error(1)
}

type MockUoW struct {
	mock.Mock

	orders        *MockOrderRepository
	persons       *MockPersonRepository
	organizations *MockOrganizationRepository
	events        *MockOrderEventRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:        new(MockOrderRepository),
		persons:       new(MockPersonRepository),
		organizations: new(MockOrganizationRepository),
		events:        new(MockOrderEventRepository),
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }

func (m *MockUoW) PersonRepository() ports.PersonRepository { return m.persons }

func (m *MockUoW) OrganizationRepository() ports.OrganizationRepository { return m.organizations }

func (m *MockUoW) OrderEventRepository() ports.OrderEventRepository { return m.events }

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }
