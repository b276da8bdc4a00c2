package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the resources backing them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the storage layer selected by cfg.Driver and, when
// cfg.SeedFile is set, fills it with the seed users.
//
//   - "memory" (default): ordered in-memory slice.
//   - "sqlite": private in-memory sqlite database, migrated on open.
//
// Both drivers lose their content when the process exits.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	storages := new(Storages)

	switch cfg.Driver {
	case config.DriverMemory, "":
		storages.UserRepository = NewMemoryUserRepository(logger)
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.db = db
		storages.UserRepository = NewUserRepository(db, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if cfg.SeedFile != "" {
		seeds, err := LoadSeedFile(cfg.SeedFile)
		if err != nil {
			storages.Close()
			return nil, err
		}
		if err := Seed(ctx, storages.UserRepository, seeds); err != nil {
			storages.Close()
			return nil, err
		}
		logger.Info().Int("count", len(seeds)).Str("file", cfg.SeedFile).Msg("seed users loaded")
	}

	return storages, nil
}

// Close releases the database behind the repositories, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
