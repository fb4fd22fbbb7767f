package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/orderevent"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderEventCommandIsNotConstructed = errors.New(
	"CreateOrderEventCommand must be created via NewCreateOrderEventCommand constructor",
)

// CreateOrderEventCommand asks to record a status event for an order on
// behalf of an actor.
//
// The status is carried as received. It is parsed by the handler only after
// the actor has been authorized, so that an unauthorized caller learns nothing
// about the status vocabulary.
//
// Example:
//
//	remark := "left at reception"
//	cmd, err := NewCreateOrderEventCommand(orderID, actorID, "Delivered", &remark)
//	if err != nil {
//	    return fmt.Errorf("invalid order event: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderEventCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	status  string
	remark  *string

	guard guard.ConstructorGuard
}

// NewCreateOrderEventCommand validates the identifiers and normalizes the
// remark. Returns an error when either identifier is not constructed.
func NewCreateOrderEventCommand(
	orderID, actorID kernel.UUID,
	status string,
	remark *string,
) (CreateOrderEventCommand, error) {
	cmd := CreateOrderEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateOrderEventCommand{}, err
	}
	cmd.status = status
	cmd.remark = orderevent.NormalizeRemark(remark)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderEventCommandIsNotConstructed)
}

func (c CreateOrderEventCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderEventCommand) ActorID() kernel.UUID { return c.actorID }

// RawStatus returns the status name exactly as received.
func (c CreateOrderEventCommand) RawStatus() string { return c.status }

// Remark returns the normalized remark, nil when absent.
func (c CreateOrderEventCommand) Remark() *string {
	if c.remark == nil {
		return nil
	}
	r := *c.remark
	return &r
}

func (c *CreateOrderEventCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderEventCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
