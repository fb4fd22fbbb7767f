package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/pkg/errs"
)

func errAlreadyExists(kind string, id kernel.UUID) error {
	return errs.NewValueIsInvalidErrorWithCause(kind, fmt.Errorf("%s already exists", id))
}

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(s *Store, tx *changes) error {
		if _, ok := s.orders[aggregate.ID()]; ok || tx.findOrder(aggregate.ID()) != nil {
			return errAlreadyExists("order", aggregate.ID())
		}
		scope := aggregate.Scope()
		if err := tx.checkBranchScope(s, scope.OrganizationID(), scope.BranchID()); err != nil {
			return err
		}
		tx.orders = append(tx.orders, aggregate)
		return nil
	})
}

func (r *orderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	r.uow.read(func(s *Store, tx *changes) {
		if found = tx.findOrder(id); found == nil {
			found = s.orders[id]
		}
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return found, nil
}

type personRepository struct {
	uow *UnitOfWork
}

func (r *personRepository) Add(ctx context.Context, p *person.Person) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(s *Store, tx *changes) error {
		if _, ok := s.persons[p.ID()]; ok || tx.findPerson(p.ID()) != nil {
			return errAlreadyExists("person", p.ID())
		}
		tx.persons = append(tx.persons, p)
		return nil
	})
}

func (r *personRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *person.Person
	r.uow.read(func(s *Store, tx *changes) {
		if found = tx.findPerson(id); found == nil {
			found = s.persons[id]
		}
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("person", id.String())
	}
	return found, nil
}

func (r *personRepository) GetDisplayNames(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names := make(map[kernel.UUID]string, len(ids))
	r.uow.read(func(s *Store, tx *changes) {
		for _, id := range ids {
			p := tx.findPerson(id)
			if p == nil {
				p = s.persons[id]
			}
			if p != nil {
				names[id] = p.DisplayName()
			}
		}
	})
	return names, nil
}

type organizationRepository struct {
	uow *UnitOfWork
}

func (r *organizationRepository) AddOrganization(ctx context.Context, org *organization.Organization) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := org.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(s *Store, tx *changes) error {
		if _, ok := s.organizations[org.ID()]; ok {
			return errAlreadyExists("organization", org.ID())
		}
		tx.organizations = append(tx.organizations, org)
		return nil
	})
}

func (r *organizationRepository) AddBranch(ctx context.Context, branch *organization.Branch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := branch.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(s *Store, tx *changes) error {
		if _, ok := s.branches[branch.ID()]; ok {
			return errAlreadyExists("branch", branch.ID())
		}
		tx.branches = append(tx.branches, branch)
		return nil
	})
}

func (r *organizationRepository) AddMembership(ctx context.Context, membership organization.Membership) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := membership.Validate(); err != nil {
		return err
	}

	return r.uow.write(func(s *Store, tx *changes) error {
		if err := tx.checkBranchScope(s, membership.OrganizationID(), membership.BranchID()); err != nil {
			return err
		}
		tx.memberships = append(tx.memberships, membership)
		return nil
	})
}

func (r *organizationRepository) GetBranch(ctx context.Context, id kernel.UUID) (*organization.Branch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *organization.Branch
	r.uow.read(func(s *Store, tx *changes) {
		found = tx.findBranch(s, id)
	})
	if found == nil {
		return nil, errs.NewObjectNotFoundError("branch", id.String())
	}
	return found, nil
}

func (r *organizationRepository) ListMembershipsByPerson(
	ctx context.Context,
	personID kernel.UUID,
) ([]organization.Membership, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]organization.Membership, 0)
	r.uow.read(func(s *Store, tx *changes) {
		for _, m := range slices.Concat(s.memberships, tx.memberships) {
			if m.PersonID().IsEqual(personID) {
				result = append(result, m)
			}
		}
	})
	return result, nil
}

type orderEventRepository struct {
	uow *UnitOfWork
}

func (r *orderEventRepository) Append(
	ctx context.Context,
	event *orderevent.OrderEvent,
) (*orderevent.OrderEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if event.IsAppended() {
		return nil, errs.NewValueIsInvalidErrorWithCause("event", fmt.Errorf("event %d is already appended", event.ID()))
	}

	var stored *orderevent.OrderEvent
	err := r.uow.write(func(s *Store, tx *changes) error {
		if _, ok := s.orders[event.OrderID()]; !ok && tx.findOrder(event.OrderID()) == nil {
			return errs.NewObjectNotFoundError("order", event.OrderID().String())
		}

		s.lastEventID++
		restored, err := orderevent.Restore(
			s.lastEventID,
			event.OrderID(),
			event.Status(),
			event.Remark(),
			event.ActorID(),
			event.OccurredAt(),
		)
		if err != nil {
			return err
		}
		tx.events = append(tx.events, restored)
		stored = restored
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *orderEventRepository) ListByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*orderevent.OrderEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]*orderevent.OrderEvent, 0)
	r.uow.read(func(s *Store, tx *changes) {
		for _, e := range slices.Concat(s.events, tx.events) {
			if e.OrderID().IsEqual(orderID) {
				result = append(result, e)
			}
		}
	})
	slices.SortFunc(result, newestFirst)
	return result, nil
}

func (r *orderEventRepository) ListLatestBefore(
	ctx context.Context,
	cutoff time.Time,
	limit int,
) ([]*orderevent.OrderEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	latest := make(map[kernel.UUID]*orderevent.OrderEvent)
	r.uow.read(func(s *Store, tx *changes) {
		for _, e := range slices.Concat(s.events, tx.events) {
			current, ok := latest[e.OrderID()]
			if !ok || newestFirst(e, current) < 0 {
				latest[e.OrderID()] = e
			}
		}
	})

	result := make([]*orderevent.OrderEvent, 0)
	for _, e := range latest {
		if !e.Status().IsTerminal() && e.OccurredAt().Before(cutoff) {
			result = append(result, e)
		}
	}
	slices.SortFunc(result, func(a, b *orderevent.OrderEvent) int { return newestFirst(b, a) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// newestFirst orders events by descending timestamp, then descending identity.
func newestFirst(a, b *orderevent.OrderEvent) int {
	if c := b.OccurredAt().Compare(a.OccurredAt()); c != 0 {
		return c
	}
	return cmp.Compare(b.ID(), a.ID())
}
