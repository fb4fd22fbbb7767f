package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"logistics/internal/adapters/in/seed"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

// ErrStorageNotPersistent is returned by operations whose effect would not
// outlive the process, such as a standalone seed against the memory backend.
var ErrStorageNotPersistent = errors.New("storage driver memory does not persist; use serve --seed instead")

// Storage is the selected persistence backend.
type Storage struct {
	UoWFactory ports.UnitOfWorkFactory
	db         *gorm.DB
}

// OpenStorage connects the backend named by cfg.StorageDriver.
func OpenStorage(cfg Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on exit")
		return &Storage{UoWFactory: memory.NewUnitOfWorkFactory(memory.NewStore())}, nil
	case StorageDriverPostgres:
		db, err := postgres.Open(cfg.DSN())
		if err != nil {
			return nil, err
		}
		return &Storage{UoWFactory: postgres.NewGormUnitOfWorkFactory(db), db: db}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// Migrate applies the schema. The memory backend has none.
func (s *Storage) Migrate(ctx context.Context, logger *slog.Logger) error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return postgres.Migrate(ctx, sqlDB, logger)
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Persistent reports whether writes outlive the process.
func (s *Storage) Persistent() bool {
	return s.db != nil
}

// RequirePersistent fails with ErrStorageNotPersistent for the memory backend.
func (s *Storage) RequirePersistent() error {
	if !s.Persistent() {
		return ErrStorageNotPersistent
	}
	return nil
}

// SeedFile applies the YAML seed document at path in one transaction.
func (s *Storage) SeedFile(ctx context.Context, path string, logger *slog.Logger) (seed.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return seed.Summary{}, err
	}
	defer f.Close()

	doc, err := seed.Load(f)
	if err != nil {
		return seed.Summary{}, fmt.Errorf("seed %s: %w", path, err)
	}

	summary, err := doc.Apply(ctx, s.UoWFactory)
	if err != nil {
		return seed.Summary{}, fmt.Errorf("seed %s: %w", path, err)
	}

	logger.Info("seed applied",
		"file", path,
		"organizations", summary.Organizations,
		"branches", summary.Branches,
		"persons", summary.Persons,
		"memberships", summary.Memberships,
		"orders", summary.Orders,
		"events", summary.Events,
	)
	return summary, nil
}
