// Package organizationrepo persists the organization graph: organizations,
// their branches and the memberships that tie persons to them.
package organizationrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

type OrganizationDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}

func (OrganizationDTO) TableName() string {
	return "organizations"
}

type BranchDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"not null"`
}

func (BranchDTO) TableName() string {
	return "branches"
}

// MembershipDTO is the row shape of the "memberships" table. A NULL branch
// means the membership covers the whole organization.
type MembershipDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PersonID       uuid.UUID  `gorm:"type:uuid;not null"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null"`
	BranchID       *uuid.UUID `gorm:"type:uuid"`
	Role           string     `gorm:"not null"`
}

func (MembershipDTO) TableName() string {
	return "memberships"
}

func membershipFromDomain(m organization.Membership) MembershipDTO {
	var branchID *uuid.UUID
	if id := m.BranchID(); id != nil {
		raw := id.Bytes()
		branchID = &raw
	}

	return MembershipDTO{
		ID:             m.ID().Bytes(),
		PersonID:       m.PersonID().Bytes(),
		OrganizationID: m.OrganizationID().Bytes(),
		BranchID:       branchID,
		Role:           string(m.Role()),
	}
}

func membershipToDomain(dto MembershipDTO) (organization.Membership, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return organization.Membership{}, err
	}

	personID, err := kernel.UUIDFromBytes(dto.PersonID[:])
	if err != nil {
		return organization.Membership{}, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return organization.Membership{}, err
	}

	var branchID *kernel.UUID
	if dto.BranchID != nil {
		bID, branchErr := kernel.UUIDFromBytes((*dto.BranchID)[:])
		if branchErr != nil {
			return organization.Membership{}, branchErr
		}

		branchID = &bID
	}

	return organization.NewMembership(id, personID, organizationID, branchID, organization.Role(dto.Role))
}
