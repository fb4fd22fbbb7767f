package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/person"
)

// PersonRepository gives access to actors.
type PersonRepository interface {
	// Add persists a new person.
	Add(ctx context.Context, p *person.Person) error

	// Get retrieves a person by identifier.
	// Returns errs.ObjectNotFoundError when the person does not exist.
	Get(ctx context.Context, id kernel.UUID) (*person.Person, error)

	// GetDisplayNames resolves display names for the given identifiers in one
	// round trip. Identifiers without a person are absent from the result.
	GetDisplayNames(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error)
}
