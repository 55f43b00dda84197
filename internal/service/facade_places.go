package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

// CreatePlace validates input, checks that the owner and every amenity exist
// and stores the place. Nothing is written when any check fails.
func (f *Facade) CreatePlace(ctx context.Context, input models.PlaceInput) (*models.Place, error) {
	log := f.logger.Ctx(ctx)

	place, err := models.NewPlace(input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err = f.ensureOwner(ctx, place.OwnerID); err != nil {
		return nil, err
	}
	if err = f.ensureAmenities(ctx, place.Amenities); err != nil {
		return nil, err
	}

	created, err := f.places.Add(ctx, place)
	if err != nil {
		log.Err(err).Str("func", "*Facade.CreatePlace").Msg("error storing place")
		return nil, storageError(err)
	}

	log.Info().Str("place_id", created.ID).Str("owner_id", created.OwnerID).Msg("place created")
	return created, nil
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*models.Place, error) {
	place, err := f.places.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPlaceNotFound)
	}
	return place, nil
}

func (f *Facade) GetAllPlaces(ctx context.Context) ([]*models.Place, error) {
	places, err := f.places.GetAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return places, nil
}

// GetPlaceDetails returns the place with its owner, amenities and reviews
// resolved. References that vanished concurrently are skipped.
func (f *Facade) GetPlaceDetails(ctx context.Context, id string) (models.PlaceDetails, error) {
	log := f.logger.Ctx(ctx)

	place, err := f.GetPlace(ctx, id)
	if err != nil {
		return models.PlaceDetails{}, err
	}

	owner, err := f.users.Get(ctx, place.OwnerID)
	if err != nil {
		return models.PlaceDetails{}, notFound(err, ErrOwnerNotFound)
	}

	amenities := make([]*models.Amenity, 0, len(place.Amenities))
	for _, amenityID := range place.Amenities {
		amenity, err := f.amenities.Get(ctx, amenityID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn().Str("place_id", id).Str("amenity_id", amenityID).Msg("dangling amenity reference")
				continue
			}
			return models.PlaceDetails{}, storageError(err)
		}
		amenities = append(amenities, amenity)
	}

	reviews, err := f.resolveReviews(ctx, place)
	if err != nil {
		return models.PlaceDetails{}, err
	}

	return place.Details(owner, amenities, reviews), nil
}

// UpdatePlace changes the supplied fields of a place. A new owner must exist;
// a supplied amenity list replaces the whole set and every id in it is
// checked before anything is written.
func (f *Facade) UpdatePlace(ctx context.Context, id string, update models.PlaceUpdate) (*models.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.places.Get(ctx, id); err != nil {
		return nil, notFound(err, ErrPlaceNotFound)
	}
	if update.OwnerID != nil {
		if err := f.ensureOwner(ctx, *update.OwnerID); err != nil {
			return nil, err
		}
	}
	if update.Amenities != nil {
		if err := f.ensureAmenities(ctx, models.UniqueIDs(*update.Amenities)); err != nil {
			return nil, err
		}
	}

	updated, err := f.places.Update(ctx, id, update)
	if err != nil {
		return nil, notFound(err, ErrPlaceNotFound)
	}

	return updated, nil
}

// DeletePlace removes a place and every review written about it.
func (f *Facade) DeletePlace(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.deletePlace(ctx, id)
}

// deletePlace must be called with mu held.
func (f *Facade) deletePlace(ctx context.Context, id string) (bool, error) {
	log := f.logger.Ctx(ctx)

	if _, err := f.places.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, storageError(err)
	}

	reviews, err := f.reviews.ListByAttribute(ctx, "place_id", id)
	if err != nil {
		return false, storageError(err)
	}
	for _, review := range reviews {
		if _, err = f.reviews.Delete(ctx, review.ID); err != nil {
			log.Err(err).Str("func", "*Facade.deletePlace").Str("review_id", review.ID).Msg("error deleting review")
			return false, storageError(err)
		}
	}

	deleted, err := f.places.Delete(ctx, id)
	if err != nil {
		return false, storageError(err)
	}

	log.Info().Str("place_id", id).Int("reviews", len(reviews)).Msg("place deleted")
	return deleted, nil
}

func (f *Facade) ensureOwner(ctx context.Context, ownerID string) error {
	if _, err := f.users.Get(ctx, ownerID); err != nil {
		return notFound(err, ErrOwnerNotFound)
	}
	return nil
}

func (f *Facade) ensureAmenities(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := f.amenities.Get(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrAmenityNotFound, id)
			}
			return storageError(err)
		}
	}
	return nil
}
