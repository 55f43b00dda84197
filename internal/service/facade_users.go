package service

import (
	"context"
	"errors"

	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

// CreateUser validates input, hashes the password and stores the user.
func (f *Facade) CreateUser(ctx context.Context, input models.UserInput) (*models.User, error) {
	log := f.logger.Ctx(ctx)

	user, err := models.NewUser(input)
	if err != nil {
		return nil, err
	}

	user.PasswordHash, err = f.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Str("func", "*Facade.CreateUser").Msg("error hashing password")
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err = f.ensureEmailFree(ctx, user.Email, ""); err != nil {
		return nil, err
	}

	created, err := f.users.Add(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		log.Err(err).Str("func", "*Facade.CreateUser").Msg("error storing user")
		return nil, storageError(err)
	}

	log.Info().Str("user_id", created.ID).Msg("user created")
	return created, nil
}

func (f *Facade) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := f.users.Get(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

// GetUserByEmail looks the user up by its normalized email.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := f.users.GetByAttribute(ctx, "email", models.NormalizeEmail(email))
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (f *Facade) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := f.users.GetAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return users, nil
}

// UpdateUser changes the supplied fields of a user. A new password is hashed
// before it is stored; a new email must not belong to another user.
func (f *Facade) UpdateUser(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	log := f.logger.Ctx(ctx)

	if err := update.Validate(); err != nil {
		return nil, err
	}

	patch := models.UserPatch{
		FirstName: update.FirstName,
		LastName:  update.LastName,
		Email:     update.Email,
		IsAdmin:   update.IsAdmin,
	}
	if update.Password != nil {
		hash, err := f.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "*Facade.UpdateUser").Msg("error hashing password")
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.users.Get(ctx, id); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	if update.Email != nil {
		if err := f.ensureEmailFree(ctx, update.NormalizedEmail(), id); err != nil {
			return nil, err
		}
	}

	updated, err := f.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateEmail
		}
		return nil, notFound(err, ErrUserNotFound)
	}

	return updated, nil
}

// DeleteUser removes a user together with the places they own (and the
// reviews of those places) and the reviews they wrote. It reports false when
// the user does not exist.
func (f *Facade) DeleteUser(ctx context.Context, id string) (bool, error) {
	log := f.logger.Ctx(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.users.Get(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, storageError(err)
	}

	places, err := f.places.ListByAttribute(ctx, "owner_id", id)
	if err != nil {
		return false, storageError(err)
	}
	for _, place := range places {
		if _, err = f.deletePlace(ctx, place.ID); err != nil {
			return false, err
		}
	}

	reviews, err := f.reviews.ListByAttribute(ctx, "user_id", id)
	if err != nil {
		return false, storageError(err)
	}
	for _, review := range reviews {
		if _, err = f.deleteReview(ctx, review.ID); err != nil {
			return false, err
		}
	}

	deleted, err := f.users.Delete(ctx, id)
	if err != nil {
		return false, storageError(err)
	}

	log.Info().Str("user_id", id).Int("places", len(places)).Int("reviews", len(reviews)).Msg("user deleted")
	return deleted, nil
}

// ensureEmailFree must be called with mu held. exceptID is the user allowed
// to already own the email.
func (f *Facade) ensureEmailFree(ctx context.Context, email, exceptID string) error {
	existing, err := f.users.GetByAttribute(ctx, "email", email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return storageError(err)
	case existing.ID != exceptID:
		return ErrDuplicateEmail
	}
	return nil
}
