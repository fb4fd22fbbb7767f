package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrListOrderEventsQueryIsNotConstructed = errors.New(
	"ListOrderEventsQuery must be created via NewListOrderEventsQuery constructor",
)

// ListOrderEventsQuery asks for the full event history of an order as seen by
// an actor.
//
// Example:
//
//	query, err := NewListOrderEventsQuery(orderID, actorID)
//	if err != nil {
//	    return fmt.Errorf("invalid history request: %w", err)
//	}
//
//	history, err := handler.Handle(ctx, query)
//	for _, e := range history {
//	    fmt.Printf("%s  %-10s  %s\n", e.AgeLabel, e.Status, e.ActorDisplayName)
//	}
type ListOrderEventsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrderEventsQuery(orderID, actorID kernel.UUID) (ListOrderEventsQuery, error) {
	query := ListOrderEventsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setActorID(actorID),
	); err != nil {
		return ListOrderEventsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderEventsQueryIsNotConstructed)
}

func (q ListOrderEventsQuery) OrderID() kernel.UUID { return q.orderID }

func (q ListOrderEventsQuery) ActorID() kernel.UUID { return q.actorID }

func (q *ListOrderEventsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *ListOrderEventsQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}
