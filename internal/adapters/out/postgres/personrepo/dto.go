// Package personrepo persists actors and resolves their display names.
package personrepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/person"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PersonDTO is the row shape of the "persons" table. Capabilities are a
// postgres text[] column.
type PersonDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DisplayName  string         `gorm:"not null"`
	Capabilities pq.StringArray `gorm:"type:text[];not null"`
}

func (PersonDTO) TableName() string {
	return "persons"
}

func fromDomain(p *person.Person) PersonDTO {
	capabilities := make(pq.StringArray, 0, len(p.Capabilities()))
	for _, c := range p.Capabilities() {
		capabilities = append(capabilities, string(c))
	}

	return PersonDTO{
		ID:           p.ID().Bytes(),
		DisplayName:  p.DisplayName(),
		Capabilities: capabilities,
	}
}

func toDomain(dto PersonDTO) (*person.Person, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	capabilities := make([]person.Capability, 0, len(dto.Capabilities))
	for _, raw := range dto.Capabilities {
		c, capErr := person.ParseCapability(raw)
		if capErr != nil {
			return nil, capErr
		}
		capabilities = append(capabilities, c)
	}

	return person.NewPerson(id, dto.DisplayName, capabilities...)
}
