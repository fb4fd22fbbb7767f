package organizationrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/organization"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements ports.OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db *gorm.DB
}

func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

func (r *GormOrganizationRepository) AddOrganization(ctx context.Context, org *organization.Organization) error {
	if err := org.Validate(); err != nil {
		return err
	}

	dto := OrganizationDTO{ID: org.ID().Bytes(), Name: org.Name()}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrganizationRepository) AddBranch(ctx context.Context, branch *organization.Branch) error {
	if err := branch.Validate(); err != nil {
		return err
	}

	dto := BranchDTO{
		ID:             branch.ID().Bytes(),
		OrganizationID: branch.OrganizationID().Bytes(),
		Name:           branch.Name(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormOrganizationRepository) AddMembership(ctx context.Context, membership organization.Membership) error {
	if err := membership.Validate(); err != nil {
		return err
	}

	dto := membershipFromDomain(membership)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewValueIsInvalidErrorWithCause("membership", err)
		}
		return err
	}
	return nil
}

// GetBranch loads a branch with its parent organization.
func (r *GormOrganizationRepository) GetBranch(ctx context.Context, id kernel.UUID) (*organization.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}
	return organization.NewBranch(id, organizationID, dto.Name)
}

func (r *GormOrganizationRepository) ListMembershipsByPerson(
	ctx context.Context,
	personID kernel.UUID,
) ([]organization.Membership, error) {
	var dtos []MembershipDTO
	if err := r.db.WithContext(ctx).
		Where("person_id = ?", personID.Bytes()).
		Order("organization_id").
		Order("branch_id NULLS FIRST").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	memberships := make([]organization.Membership, 0, len(dtos))
	for _, dto := range dtos {
		m, err := membershipToDomain(dto)
		if err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}

	return memberships, nil
}
