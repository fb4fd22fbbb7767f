package personrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/person"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormPersonRepository implements ports.PersonRepository using GORM.
type GormPersonRepository struct {
	db *gorm.DB
}

func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

func (r *GormPersonRepository) Add(ctx context.Context, p *person.Person) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormPersonRepository) Get(ctx context.Context, id kernel.UUID) (*person.Person, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("person", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDisplayNames looks all ids up in a single query.
func (r *GormPersonRepository) GetDisplayNames(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]string, error) {
	names := make(map[kernel.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var rows []struct {
		ID          uuid.UUID
		DisplayName string
	}
	if err := r.db.WithContext(ctx).
		Model(&PersonDTO{}).
		Select("id", "display_name").
		Where("id = ANY(?::uuid[])", pq.Array(raw)).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		names[id] = row.DisplayName
	}

	return names, nil
}
