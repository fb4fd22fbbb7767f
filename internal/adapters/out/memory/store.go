// Package memory provides an in-process implementation of the core's ports.
// It backs the "memory" storage driver used for local development and the
// behavioural tests of the use cases.
//
// A UnitOfWork buffers its writes and publishes them atomically on Commit;
// Rollback discards them. Event identities come from one store-wide counter
// guarded by the store mutex, so concurrent appends never share an identity.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned by Commit and Rollback without Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// Store holds committed records.
type Store struct {
	mu sync.RWMutex

	lastEventID orderevent.ID

	orders        map[kernel.UUID]*order.Order
	persons       map[kernel.UUID]*person.Person
	organizations map[kernel.UUID]*organization.Organization
	branches      map[kernel.UUID]*organization.Branch
	memberships   []organization.Membership
	events        []*orderevent.OrderEvent
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		orders:        make(map[kernel.UUID]*order.Order),
		persons:       make(map[kernel.UUID]*person.Person),
		organizations: make(map[kernel.UUID]*organization.Organization),
		branches:      make(map[kernel.UUID]*organization.Branch),
	}
}

// UnitOfWorkFactory adapts the store to ports.UnitOfWorkFactory.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// changes are the writes buffered by one transaction.
type changes struct {
	orders        []*order.Order
	persons       []*person.Person
	organizations []*organization.Organization
	branches      []*organization.Branch
	memberships   []organization.Membership
	events        []*orderevent.OrderEvent
}

// UnitOfWork is a single-goroutine transaction over a Store.
type UnitOfWork struct {
	store *Store
	tx    *changes
}

func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if uow.tx == nil {
		uow.tx = &changes{}
	}
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	tx := uow.tx
	uow.tx = nil
	if err := ctx.Err(); err != nil {
		return err
	}

	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range tx.orders {
		s.orders[o.ID()] = o
	}
	for _, p := range tx.persons {
		s.persons[p.ID()] = p
	}
	for _, org := range tx.organizations {
		s.organizations[org.ID()] = org
	}
	for _, b := range tx.branches {
		s.branches[b.ID()] = b
	}
	s.memberships = append(s.memberships, tx.memberships...)
	s.events = append(s.events, tx.events...)
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

func (uow *UnitOfWork) PersonRepository() ports.PersonRepository {
	return &personRepository{uow: uow}
}

func (uow *UnitOfWork) OrganizationRepository() ports.OrganizationRepository {
	return &organizationRepository{uow: uow}
}

func (uow *UnitOfWork) OrderEventRepository() ports.OrderEventRepository {
	return &orderEventRepository{uow: uow}
}

// write runs fn with the store locked. Inside a transaction fn only sees the
// buffered changes; outside, they are applied immediately.
func (uow *UnitOfWork) write(fn func(s *Store, tx *changes) error) error {
	s := uow.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if uow.tx != nil {
		return fn(s, uow.tx)
	}

	direct := &changes{}
	if err := fn(s, direct); err != nil {
		return err
	}
	for _, o := range direct.orders {
		s.orders[o.ID()] = o
	}
	for _, p := range direct.persons {
		s.persons[p.ID()] = p
	}
	for _, org := range direct.organizations {
		s.organizations[org.ID()] = org
	}
	for _, b := range direct.branches {
		s.branches[b.ID()] = b
	}
	s.memberships = append(s.memberships, direct.memberships...)
	s.events = append(s.events, direct.events...)
	return nil
}

// read runs fn with the store read-locked and the transaction's own changes.
func (uow *UnitOfWork) read(fn func(s *Store, tx *changes)) {
	s := uow.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx := uow.tx
	if tx == nil {
		tx = &changes{}
	}
	fn(s, tx)
}

func (tx *changes) findOrder(id kernel.UUID) *order.Order {
	idx := slices.IndexFunc(tx.orders, func(o *order.Order) bool { return o.ID().IsEqual(id) })
	if idx < 0 {
		return nil
	}
	return tx.orders[idx]
}

func (tx *changes) findPerson(id kernel.UUID) *person.Person {
	idx := slices.IndexFunc(tx.persons, func(p *person.Person) bool { return p.ID().IsEqual(id) })
	if idx < 0 {
		return nil
	}
	return tx.persons[idx]
}

func (tx *changes) findBranch(s *Store, id kernel.UUID) *organization.Branch {
	idx := slices.IndexFunc(tx.branches, func(b *organization.Branch) bool { return b.ID().IsEqual(id) })
	if idx >= 0 {
		return tx.branches[idx]
	}
	return s.branches[id]
}

// checkBranchScope requires branchID, when set, to name a branch of
// organizationID.
func (tx *changes) checkBranchScope(s *Store, organizationID kernel.UUID, branchID *kernel.UUID) error {
	if branchID == nil {
		return nil
	}
	branch := tx.findBranch(s, *branchID)
	if branch == nil {
		return errs.NewObjectNotFoundError("branch", branchID.String())
	}
	if !branch.OrganizationID().IsEqual(organizationID) {
		return errs.NewValueIsInvalidErrorWithCause("branch", fmt.Errorf(
			"branch %s belongs to organization %s, not %s", branchID, branch.OrganizationID(), organizationID))
	}
	return nil
}
