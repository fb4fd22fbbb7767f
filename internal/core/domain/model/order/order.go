package order

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the read model of a shipment that the order event core needs: who
// owns it and what status it was created or last stored with. The order record
// itself belongs to the wider order domain; this core never rewrites it.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// scope is the organization and optional branch that own the order
	scope Scope

	// status is the status stored on the order record
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a Pending order owned by scope.
//
// Example:
//
//	scope, _ := order.NewScope(orgID, &branchID)
//	o, err := order.NewOrder(kernel.NewUUID(), scope)
func NewOrder(id kernel.UUID, scope Scope) (*Order, error) {
	return RestoreOrder(id, scope, Pending)
}

// RestoreOrder rebuilds an order loaded from persistence.
func RestoreOrder(id kernel.UUID, scope Scope, status Status) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setScope(scope),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Scope returns the organizational context used for authorization.
func (o *Order) Scope() Scope {
	return o.scope
}

// Status returns the status stored on the order record.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setScope(scope Scope) error {
	if err := scope.Validate(); err != nil {
		return err
	}
	o.scope = scope
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
