// Package ordereventrepo stores the append-only order event log in the
// "order_events" table. Identities come from a bigserial column.
package ordereventrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/orderevent"

	"github.com/google/uuid"
)

type OrderEventDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null"`
	Status     string     `gorm:"not null"`
	OccurredAt time.Time  `gorm:"type:timestamptz;not null"`
	Remark     *string
	ActorID    *uuid.UUID `gorm:"type:uuid"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

func fromDomain(e *orderevent.OrderEvent) OrderEventDTO {
	var actorID *uuid.UUID
	if id := e.ActorID(); id != nil {
		raw := id.Bytes()
		actorID = &raw
	}

	return OrderEventDTO{
		ID:         int64(e.ID()),
		OrderID:    e.OrderID().Bytes(),
		Status:     e.Status().String(),
		OccurredAt: e.OccurredAt(),
		Remark:     e.Remark(),
		ActorID:    actorID,
	}
}

func toDomain(dto OrderEventDTO) (*orderevent.OrderEvent, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		aID, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return nil, actorErr
		}

		actorID = &aID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return orderevent.Restore(orderevent.ID(dto.ID), orderID, status, dto.Remark, actorID, dto.OccurredAt)
}

func toDomainList(dtos []OrderEventDTO) ([]*orderevent.OrderEvent, error) {
	events := make([]*orderevent.OrderEvent, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}
