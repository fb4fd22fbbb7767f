package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per operation. Units of work
// are not shared between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// Repositories exposes the repositories bound to one unit of work. Outside a
// transaction they read and write directly.
type Repositories interface {
	OrderRepository() OrderRepository
	PersonRepository() PersonRepository
	OrganizationRepository() OrganizationRepository
	OrderEventRepository() OrderEventRepository
}

// UnitOfWork scopes the repositories to one transaction. Writes made between
// Begin and Commit become visible to other units of work all at once, or not
// at all after Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is active, as it is after Commit;
	// deferred rollbacks ignore that error.
	Rollback(ctx context.Context) error

	Repositories
}
