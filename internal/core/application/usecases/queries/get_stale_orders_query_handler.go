package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// GetStaleOrdersQueryHandler lists stale orders, oldest first.
type GetStaleOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetStaleOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetStaleOrdersQueryHandler {
	return GetStaleOrdersQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetStaleOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleOrdersQuery,
) ([]GetStaleOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	events, err := h.uowFactory.Create().OrderEventRepository().ListLatestBefore(
		ctx, now.Add(-query.OlderThan()), query.Limit(),
	)
	if err != nil {
		return nil, err
	}

	stale := make([]GetStaleOrdersQueryResponse, 0, len(events))
	for _, e := range events {
		stale = append(stale, GetStaleOrdersQueryResponse{
			OrderID:    e.OrderID(),
			Status:     e.Status(),
			OccurredAt: e.OccurredAt(),
			AgeLabel:   e.AgeLabel(now),
		})
	}

	return stale, nil
}
