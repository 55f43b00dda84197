package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hbnb/hbnb-server/internal/crypto"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

// Facade is the single entry point of the business rules over users,
// places, amenities and reviews. It depends only on the repository contract,
// so any backend can be plugged in through [store.Storages].
//
// Operations that touch more than one repository hold mu for their whole
// sequence; within one process they never interleave.
type Facade struct {
	users     store.Repository[*models.User]
	places    store.Repository[*models.Place]
	amenities store.Repository[*models.Amenity]
	reviews   store.Repository[*models.Review]

	hasher crypto.PasswordHasher

	mu     sync.Mutex
	logger *logger.Logger
}

// NewFacade wires the facade to its repositories and password hasher.
func NewFacade(storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) *Facade {
	logger.Debug().Msg("creating facade")
	return &Facade{
		users:     storages.Users,
		places:    storages.Places,
		amenities: storages.Amenities,
		reviews:   storages.Reviews,
		hasher:    hasher,
		logger:    logger,
	}
}

// notFound maps store.ErrNotFound to the entity specific sentinel and wraps
// any other storage failure.
func notFound(err error, sentinel error) error {
	if errors.Is(err, store.ErrNotFound) {
		return sentinel
	}
	return storageError(err)
}

// storageError passes validation errors through and wraps everything else.
func storageError(err error) error {
	if errors.Is(err, models.ErrValidation) {
		return err
	}
	return fmt.Errorf("storage error: %w", err)
}
