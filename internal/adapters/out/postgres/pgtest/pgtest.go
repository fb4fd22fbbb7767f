// Package pgtest starts a disposable PostgreSQL container with the service
// schema applied, for integration suites.
package pgtest

import (
	"context"
	"log/slog"
	"time"

	postgres_adapter "logistics/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated database running in a container.
type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and applies all migrations.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}
	d := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	d.DB, err = postgres_adapter.Open(dsn)
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(ctx, sqlDB, slog.New(slog.DiscardHandler)); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties every table and resets the event identity sequence.
func (d *Database) Truncate() error {
	return d.DB.Exec(`
		TRUNCATE TABLE order_events, orders, memberships, persons, branches, organizations
		RESTART IDENTITY CASCADE
	`).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
