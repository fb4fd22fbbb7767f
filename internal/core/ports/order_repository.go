// Package ports defines the contracts between the order event core and its
// infrastructure: repositories for orders, persons, the organization graph and
// order events, the unit of work that groups them, and the clock.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository gives the core read access to orders and their scope.
// Orders are owned by the wider order domain; Add exists for seeding.
type OrderRepository interface {
	// Add persists a new order. The order must be valid and not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its organizational scope.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
