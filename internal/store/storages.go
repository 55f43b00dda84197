package store

import (
	"context"
	"fmt"

	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

// Storage driver names accepted by [NewStorages].
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Storages groups the repositories of every entity kind. The service layer
// only depends on the [Repository] interfaces, never on the backend.
type Storages struct {
	Users     Repository[*models.User]
	Places    Repository[*models.Place]
	Amenities Repository[*models.Amenity]
	Reviews   Repository[*models.Review]

	db *DB
}

// NewStorages builds the repositories for the configured driver. SQL backends
// are connected and migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	switch cfg.Driver {
	case DriverMemory, "":
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(ids, log), nil
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	var (
		db  *DB
		err error
	)
	if cfg.Driver == DriverPostgres {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return NewSQLStorages(db, ids, log), nil
}

// NewMemoryStorages returns process-lifetime repositories. User emails and
// amenity names are unique.
func NewMemoryStorages(ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		Users:     NewMemoryRepository[*models.User](ids, log, "email"),
		Places:    NewMemoryRepository[*models.Place](ids, log),
		Amenities: NewMemoryRepository[*models.Amenity](ids, log, "name"),
		Reviews:   NewMemoryRepository[*models.Review](ids, log),
	}
}

// NewSQLStorages returns repositories backed by an already migrated db.
func NewSQLStorages(db *DB, ids IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		Users:     newSQLRepository(db, userMapper(), ids, log),
		Places:    newSQLRepository(db, placeMapper(), ids, log),
		Amenities: newSQLRepository(db, amenityMapper(), ids, log),
		Reviews:   newSQLRepository(db, reviewMapper(), ids, log),
		db:        db,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
