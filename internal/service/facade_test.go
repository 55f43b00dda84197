package service

import (
	"context"
	"sync"
	"testing"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Scenario(t *testing.T) {
	for name, newStorages := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f := NewFacade(newStorages(t), newTestHasher(), logger.Nop())

			alice := mustCreateUser(t, f, "Alice", "alice@example.com")
			bob := mustCreateUser(t, f, "Bob", "bob@example.com")
			wifi := mustCreateAmenity(t, f, "Wi-Fi")

			place, err := f.CreatePlace(ctx, models.PlaceInput{
				Title:     "Loft",
				Price:     120,
				Latitude:  40.7,
				Longitude: -74,
				OwnerID:   alice.ID,
				Amenities: []string{wifi.ID},
			})
			require.NoError(t, err)

			review, err := f.CreateReview(ctx, models.ReviewInput{Text: "Great!", Rating: 5, UserID: bob.ID, PlaceID: place.ID})
			require.NoError(t, err)

			reviews, err := f.GetReviewsByPlace(ctx, place.ID)
			require.NoError(t, err)
			require.Len(t, reviews, 1)
			assert.Equal(t, review.ID, reviews[0].ID)
			assert.Equal(t, "Great!", reviews[0].Text)
			assert.Equal(t, 5, reviews[0].Rating)

			_, err = f.CreateReview(ctx, models.ReviewInput{Text: "Mine is best", Rating: 5, UserID: alice.ID, PlaceID: place.ID})
			assert.ErrorIs(t, err, ErrSelfReviewForbidden)

			details, err := f.GetPlaceDetails(ctx, place.ID)
			require.NoError(t, err)
			assert.Equal(t, alice.ID, details.Owner.ID)
			require.Len(t, details.Amenities, 1)
			assert.Equal(t, wifi.ID, details.Amenities[0].ID)
			assert.Len(t, details.Reviews, 1)
		})
	}
}

func TestFacade_ConcurrentReviewsKeepPlaceConsistent(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade(t)
	owner := mustCreateUser(t, f, "Owner", "owner@example.com")
	place := mustCreatePlace(t, f, owner.ID)

	const n = 16
	users := make([]*models.User, n)
	for i := range users {
		users[i] = mustCreateUser(t, f, "Guest", "guest"+string(rune('a'+i))+"@example.com")
	}

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := f.CreateReview(ctx, models.ReviewInput{Text: "nice", Rating: 4, UserID: userID, PlaceID: place.ID})
			assert.NoError(t, err)
		}(u.ID)
	}
	wg.Wait()

	stored, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Reviews, n)

	all, err := f.GetAllReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
}
