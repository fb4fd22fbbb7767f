package ports

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/orderevent"
)

// OrderEventRepository is the append-only store of order events.
// It offers no update or delete.
type OrderEventRepository interface {
	// Append stores an unappended event and returns the stored copy carrying
	// its identity. Identities are unique and increase across concurrent
	// appends. The referenced order must exist.
	Append(ctx context.Context, event *orderevent.OrderEvent) (*orderevent.OrderEvent, error)

	// ListByOrder returns every event of an order, most recent first. Events
	// with equal timestamps are ordered by descending identity. The result is
	// computed on every call.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderevent.OrderEvent, error)

	// ListLatestBefore returns, for each order whose most recent event is
	// non-terminal and occurred before the cutoff, that most recent event.
	// Results are ordered oldest first and capped at limit.
	ListLatestBefore(ctx context.Context, cutoff time.Time, limit int) ([]*orderevent.OrderEvent, error)
}
