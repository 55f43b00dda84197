package service

import (
	"context"
	"errors"
	"slices"

	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

func (f *Facade) CreateAmenity(ctx context.Context, input models.AmenityInput) (*models.Amenity, error) {
	amenity, err := models.NewAmenity(input)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err = f.ensureAmenityNameFree(ctx, amenity.Name, ""); err != nil {
		return nil, err
	}

	created, err := f.amenities.Add(ctx, amenity)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateAmenityName
		}
		return nil, storageError(err)
	}

	return created, nil
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*models.Amenity, error) {
	amenity, err := f.amenities.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrAmenityNotFound)
	}
	return amenity, nil
}

func (f *Facade) GetAllAmenities(ctx context.Context) ([]*models.Amenity, error) {
	amenities, err := f.amenities.GetAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return amenities, nil
}

// UpdateAmenity renames an amenity. The new name may not belong to a
// different amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id string, update models.AmenityUpdate) (*models.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if update.Name != nil {
		if err := f.ensureAmenityNameFree(ctx, update.NormalizedName(), id); err != nil {
			return nil, err
		}
	}

	updated, err := f.amenities.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateAmenityName
		}
		return nil, notFound(err, ErrAmenityNotFound)
	}

	return updated, nil
}

// DeleteAmenity detaches the amenity from every place and removes it.
func (f *Facade) DeleteAmenity(ctx context.Context, id string) (bool, error) {
	log := f.logger.Ctx(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.amenities.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, storageError(err)
	}

	places, err := f.places.GetAll(ctx)
	if err != nil {
		return false, storageError(err)
	}
	for _, place := range places {
		if !slices.Contains(place.Amenities, id) {
			continue
		}
		if _, err = f.places.Update(ctx, place.ID, models.DetachAmenity(id)); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*Facade.DeleteAmenity").Str("place_id", place.ID).Msg("error detaching amenity")
			return false, storageError(err)
		}
	}

	deleted, err := f.amenities.Delete(ctx, id)
	if err != nil {
		return false, storageError(err)
	}
	return deleted, nil
}

// ensureAmenityNameFree must be called with mu held.
func (f *Facade) ensureAmenityNameFree(ctx context.Context, name, exceptID string) error {
	existing, err := f.amenities.GetByAttribute(ctx, "name", name)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return storageError(err)
	case existing.ID != exceptID:
		return ErrDuplicateAmenityName
	}
	return nil
}
