package queries

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/shared"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// ListOrderEventsQueryHandler returns an order's history, most recent first.
// Every call reads the store afresh and computes age labels against the clock.
type ListOrderEventsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	guard      services.AccessGuard
	clock      ports.Clock
	logger     *slog.Logger
}

func NewListOrderEventsQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	guard services.AccessGuard,
	clock ports.Clock,
	logger *slog.Logger,
) ListOrderEventsQueryHandler {
	return ListOrderEventsQueryHandler{
		uowFactory: uowFactory,
		guard:      guard,
		clock:      clock,
		logger:     logger.With("component", "ListOrderEventsQueryHandler"),
	}
}

// Handle authorizes the actor and lists the order's events with resolved
// display names. An order without events yields an empty, non-nil slice.
func (h ListOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query ListOrderEventsQuery,
) ([]shared.OrderEventView, error) {
	var views []shared.OrderEventView
	err := query.Validate()
	if err == nil {
		views, err = h.handle(ctx, query)
	}

	attrs := []any{"order_id", query.OrderID().String(), "actor_id", query.ActorID().String()}
	if err == nil {
		attrs = append(attrs, "count", len(views))
	}
	shared.LogOutcome(ctx, h.logger, shared.OperationListOrderEvents, err, attrs...)

	return views, err
}

func (h ListOrderEventsQueryHandler) handle(
	ctx context.Context,
	query ListOrderEventsQuery,
) ([]shared.OrderEventView, error) {
	repos := h.uowFactory.Create()

	if _, err := shared.AuthorizeOrderAccess(
		ctx, repos, h.guard, shared.OperationListOrderEvents, query.OrderID(), query.ActorID(),
	); err != nil {
		return nil, err
	}

	events, err := repos.OrderEventRepository().ListByOrder(ctx, query.OrderID())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	names, err := repos.PersonRepository().GetDisplayNames(ctx, actorIDs(events))
	if err != nil {
		return nil, fmt.Errorf("resolve actors: %w", err)
	}

	now := h.clock.Now()
	views := make([]shared.OrderEventView, 0, len(events))
	for _, e := range events {
		views = append(views, shared.NewOrderEventView(e, shared.ResolveActorName(e, names), now))
	}

	return views, nil
}

// actorIDs returns the distinct acting persons of events in first-seen order.
func actorIDs(events []*orderevent.OrderEvent) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	ids := make([]kernel.UUID, 0)
	for _, e := range events {
		id := e.ActorID()
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	return ids
}
