package service

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

// CreateReview stores a review and appends it to the place's review
// collection. An owner cannot review their own place and a user reviews a
// place at most once.
func (f *Facade) CreateReview(ctx context.Context, input models.ReviewInput) (*models.Review, error) {
	log := f.logger.Ctx(ctx)

	review, err := models.NewReview(input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err = f.users.Get(ctx, review.UserID); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	place, err := f.places.Get(ctx, review.PlaceID)
	if err != nil {
		return nil, notFound(err, ErrPlaceNotFound)
	}
	if place.OwnerID == review.UserID {
		return nil, ErrSelfReviewForbidden
	}

	existing, err := f.reviews.ListByAttribute(ctx, "place_id", place.ID)
	if err != nil {
		return nil, storageError(err)
	}
	for _, other := range existing {
		if other.UserID == review.UserID {
			return nil, ErrAlreadyReviewed
		}
	}

	created, err := f.reviews.Add(ctx, review)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrAlreadyReviewed
		}
		return nil, storageError(err)
	}

	if _, err = f.places.Update(ctx, place.ID, models.AttachReview(created.ID)); err != nil {
		log.Err(err).Str("func", "*Facade.CreateReview").Str("review_id", created.ID).Msg("error attaching review, rolling back")
		if _, rollbackErr := f.reviews.Delete(ctx, created.ID); rollbackErr != nil {
			log.Err(rollbackErr).Str("func", "*Facade.CreateReview").Str("review_id", created.ID).Msg("error removing orphan review")
		}
		return nil, notFound(err, ErrPlaceNotFound)
	}

	return created, nil
}

func (f *Facade) GetReview(ctx context.Context, id string) (*models.Review, error) {
	review, err := f.reviews.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return review, nil
}

func (f *Facade) GetAllReviews(ctx context.Context) ([]*models.Review, error) {
	reviews, err := f.reviews.GetAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return reviews, nil
}

// GetReviewsByPlace returns the reviews of a place in the order they were
// written.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID string) ([]*models.Review, error) {
	place, err := f.GetPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return f.resolveReviews(ctx, place)
}

func (f *Facade) UpdateReview(ctx context.Context, id string, update models.ReviewUpdate) (*models.Review, error) {
	updated, err := f.reviews.Update(ctx, id, update)
	if err != nil {
		return nil, notFound(err, ErrReviewNotFound)
	}
	return updated, nil
}

// DeleteReview removes a review and detaches it from its place.
func (f *Facade) DeleteReview(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.deleteReview(ctx, id)
}

// deleteReview must be called with mu held.
func (f *Facade) deleteReview(ctx context.Context, id string) (bool, error) {
	review, err := f.reviews.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, storageError(err)
	}

	if _, err = f.places.Update(ctx, review.PlaceID, models.DetachReview(id)); err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, storageError(err)
	}

	deleted, err := f.reviews.Delete(ctx, id)
	if err != nil {
		return false, storageError(err)
	}
	return deleted, nil
}

func (f *Facade) resolveReviews(ctx context.Context, place *models.Place) ([]*models.Review, error) {
	reviews := make([]*models.Review, 0, len(place.Reviews))
	for _, reviewID := range place.Reviews {
		review, err := f.reviews.Get(ctx, reviewID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, storageError(err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}
