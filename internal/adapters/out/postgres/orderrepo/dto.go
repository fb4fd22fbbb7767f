// Package orderrepo maps orders and their organizational scope to the
// "orders" table.
package orderrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the row shape of the "orders" table. Status is stored by name.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null"`
	BranchID       *uuid.UUID `gorm:"type:uuid"`
	Status         string     `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var branchID *uuid.UUID
	if id := aggregate.Scope().BranchID(); id != nil {
		raw := id.Bytes()
		branchID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.Scope().OrganizationID().Bytes(),
		BranchID:       branchID,
		Status:         aggregate.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	var branchID *kernel.UUID
	if dto.BranchID != nil {
		bID, branchErr := kernel.UUIDFromBytes((*dto.BranchID)[:])
		if branchErr != nil {
			return nil, branchErr
		}

		branchID = &bID
	}

	scope, err := order.NewScope(organizationID, branchID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, scope, status)
}
