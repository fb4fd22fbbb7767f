// Package shared holds the pieces both order event use cases need: loading and
// authorizing an order for an actor, the OrderEventView returned to callers,
// and outcome logging and metrics.
package shared

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"
)

const (
	// SystemActorName is shown for events without an acting person.
	SystemActorName = "System"

	// UnknownActorName is shown when the acting person no longer resolves.
	UnknownActorName = "Unknown"
)

// OrderEventView is an order event enriched for callers with the acting
// person's display name and the read-time age label.
type OrderEventView struct {
	ID               orderevent.ID
	OrderID          kernel.UUID
	Status           order.Status
	OccurredAt       time.Time
	Remark           *string
	ActorID          *kernel.UUID
	ActorDisplayName string
	AgeLabel         string
}

// NewOrderEventView builds the view of e as of now. actorName is ignored for
// system-generated events.
func NewOrderEventView(e *orderevent.OrderEvent, actorName string, now time.Time) OrderEventView {
	if e.IsSystemGenerated() {
		actorName = SystemActorName
	}
	return OrderEventView{
		ID:               e.ID(),
		OrderID:          e.OrderID(),
		Status:           e.Status(),
		OccurredAt:       e.OccurredAt(),
		Remark:           e.Remark(),
		ActorID:          e.ActorID(),
		ActorDisplayName: actorName,
		AgeLabel:         e.AgeLabel(now),
	}
}

// ResolveActorName picks the display name for e from names, falling back to
// SystemActorName or UnknownActorName.
func ResolveActorName(e *orderevent.OrderEvent, names map[kernel.UUID]string) string {
	actorID := e.ActorID()
	if actorID == nil {
		return SystemActorName
	}
	if name, ok := names[*actorID]; ok {
		return name
	}
	return UnknownActorName
}
