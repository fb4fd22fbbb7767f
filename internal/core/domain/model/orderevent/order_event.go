package orderevent

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

var (
	// ErrOrderEventIsNotConstructed is returned when an OrderEvent was not created
	// via New or Restore.
	ErrOrderEventIsNotConstructed = errors.New("OrderEvent must be created via New or Restore constructor")
	ErrOccurredAtIsRequired       = errs.NewValueIsRequiredError("occurred at")
)

// ID is the store-assigned identity of an event. IDs increase with every
// append; zero means "not yet appended".
type ID int64

// OrderEvent is one status record in an order's history.
type OrderEvent struct {
	id         ID
	orderID    kernel.UUID
	status     order.Status
	occurredAt time.Time
	remark     *string
	actorID    *kernel.UUID

	isConstructed bool
}

// New creates an event that has not been appended yet. occurredAt is stored
// in UTC and remark is normalized with NormalizeRemark.
//
// Example:
//
//	remark := "  gate code 4411 "
//	e, err := orderevent.New(orderID, order.Loading, &remark, &actorID, clock.Now())
func New(
	orderID kernel.UUID,
	status order.Status,
	remark *string,
	actorID *kernel.UUID,
	occurredAt time.Time,
) (*OrderEvent, error) {
	return Restore(0, orderID, status, remark, actorID, occurredAt)
}

// Restore rebuilds an event loaded from persistence.
func Restore(
	id ID,
	orderID kernel.UUID,
	status order.Status,
	remark *string,
	actorID *kernel.UUID,
	occurredAt time.Time,
) (*OrderEvent, error) {
	e := &OrderEvent{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setOrderID(orderID),
		e.setStatus(status),
		e.setOccurredAt(occurredAt),
		e.setActorID(actorID),
	); err != nil {
		return nil, err
	}
	e.remark = NormalizeRemark(remark)

	return e, nil
}

// NormalizeRemark trims surrounding whitespace; nil and blank remarks become nil.
func NormalizeRemark(remark *string) *string {
	if remark == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*remark)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (e *OrderEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrOrderEventIsNotConstructed
	}
	return nil
}

func (e *OrderEvent) ID() ID { return e.id }

// IsAppended reports whether the store has assigned an identity.
func (e *OrderEvent) IsAppended() bool { return e.id > 0 }

func (e *OrderEvent) OrderID() kernel.UUID { return e.orderID }

func (e *OrderEvent) Status() order.Status { return e.status }

// OccurredAt returns the UTC append time.
func (e *OrderEvent) OccurredAt() time.Time { return e.occurredAt }

// Remark returns the trimmed remark, or nil.
func (e *OrderEvent) Remark() *string {
	if e.remark == nil {
		return nil
	}
	r := *e.remark
	return &r
}

// ActorID returns the acting person, or nil for system-generated events.
func (e *OrderEvent) ActorID() *kernel.UUID {
	if e.actorID == nil {
		return nil
	}
	a := *e.actorID
	return &a
}

// IsSystemGenerated reports whether no person is attributed with the event.
func (e *OrderEvent) IsSystemGenerated() bool { return e.actorID == nil }

// AgeLabel renders the event's age relative to now. See AgeLabel.
func (e *OrderEvent) AgeLabel(now time.Time) string {
	return AgeLabel(e.occurredAt, now)
}

func (e *OrderEvent) setID(id ID) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("event id", fmt.Errorf("%d is negative", id))
	}
	e.id = id
	return nil
}

func (e *OrderEvent) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *OrderEvent) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *OrderEvent) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return ErrOccurredAtIsRequired
	}
	e.occurredAt = occurredAt.UTC()
	return nil
}

func (e *OrderEvent) setActorID(actorID *kernel.UUID) error {
	if actorID == nil {
		return nil
	}
	if err := actorID.Validate(); err != nil {
		return err
	}
	a := *actorID
	e.actorID = &a
	return nil
}
