package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/crypto"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/require"
)

const (
	testPepper = "test-pepper"
	testCost   = 4
)

func newTestHasher() crypto.PasswordHasher {
	return crypto.NewBcryptHasher(testPepper, testCost)
}

func newMemoryStorages(t *testing.T) *store.Storages {
	t.Helper()
	return store.NewMemoryStorages(utils.NewUUIDGenerator(), logger.Nop())
}

// newSQLiteStorages opens a private in-memory SQLite database. The test is
// skipped when the driver is unavailable (cgo disabled).
func newSQLiteStorages(t *testing.T) *store.Storages {
	t.Helper()
	cfg := config.Storage{Driver: "sqlite", DSN: "file:" + uuid.NewString() + "?mode=memory&cache=shared"}
	storages, err := store.NewStorages(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { storages.Close() })
	return storages
}

// backends lists the storage implementations every facade scenario runs on.
var backends = map[string]func(t *testing.T) *store.Storages{
	"memory": newMemoryStorages,
	"sqlite": newSQLiteStorages,
}

func newTestFacade(t *testing.T) *Facade {
	t.Helper()
	return NewFacade(newMemoryStorages(t), newTestHasher(), logger.Nop())
}

func mustCreateUser(t *testing.T, f *Facade, first, email string) *models.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), models.UserInput{
		FirstName: first,
		LastName:  "Tester",
		Email:     email,
		Password:  "password-" + first,
	})
	require.NoError(t, err)
	return user
}

func mustCreateAmenity(t *testing.T, f *Facade, name string) *models.Amenity {
	t.Helper()
	amenity, err := f.CreateAmenity(context.Background(), models.AmenityInput{Name: name})
	require.NoError(t, err)
	return amenity
}

func mustCreatePlace(t *testing.T, f *Facade, ownerID string, amenities ...string) *models.Place {
	t.Helper()
	place, err := f.CreatePlace(context.Background(), placeInput(ownerID, amenities...))
	require.NoError(t, err)
	return place
}

func mustCreateReview(t *testing.T, f *Facade, userID, placeID string, rating int) *models.Review {
	t.Helper()
	review, err := f.CreateReview(context.Background(), models.ReviewInput{
		Text:    "review text",
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	})
	require.NoError(t, err)
	return review
}

func placeInput(ownerID string, amenities ...string) models.PlaceInput {
	return models.PlaceInput{
		Title:       "Cozy Flat",
		Description: "Near the park",
		Price:       100,
		Latitude:    48.85,
		Longitude:   2.35,
		OwnerID:     ownerID,
		Amenities:   amenities,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}
