package service

import (
	"context"
	"strings"
	"testing"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/mock"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)
	f := NewFacade(newMemoryStorages(t), hasher, logger.Nop())

	hasher.EXPECT().Hash("s3cret!").Return("$2a$hashed", nil)

	user, err := f.CreateUser(context.Background(), models.UserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com ",
		Password:  "s3cret!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "$2a$hashed", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_NeverStoresPlaintext(t *testing.T) {
	f := newTestFacade(t)
	hasher := newTestHasher()

	user := mustCreateUser(t, f, "Ada", "ada@example.com")
	stored, err := f.GetUser(context.Background(), user.ID)
	require.NoError(t, err)

	assert.NotContains(t, stored.PasswordHash, "password-Ada")
	assert.True(t, hasher.Verify("password-Ada", stored.PasswordHash))
	assert.False(t, hasher.Verify("password-Bob", stored.PasswordHash))
	assert.NotContains(t, mustJSON(t, stored.Response()), "password")
}

func TestCreateUser_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input models.UserInput
		field string
	}{
		{"empty first name", models.UserInput{LastName: "L", Email: "a@b.io", Password: "p"}, "first_name"},
		{"long last name", models.UserInput{FirstName: "F", LastName: strings.Repeat("x", 51), Email: "a@b.io", Password: "p"}, "last_name"},
		{"bad email", models.UserInput{FirstName: "F", LastName: "L", Email: "not-an-email", Password: "p"}, "email"},
		{"missing password", models.UserInput{FirstName: "F", LastName: "L", Email: "a@b.io"}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFacade(t)

			_, err := f.CreateUser(context.Background(), tt.input)

			require.ErrorIs(t, err, models.ErrValidation)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			users, err := f.GetAllUsers(context.Background())
			require.NoError(t, err)
			assert.Empty(t, users)
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	for name, newStorages := range backends {
		t.Run(name, func(t *testing.T) {
			f := NewFacade(newStorages(t), newTestHasher(), logger.Nop())
			mustCreateUser(t, f, "Ada", "ada@example.com")

			_, err := f.CreateUser(context.Background(), models.UserInput{
				FirstName: "Other", LastName: "Ada", Email: "ADA@example.com", Password: "x",
			})
			assert.ErrorIs(t, err, ErrDuplicateEmail)

			users, err := f.GetAllUsers(context.Background())
			require.NoError(t, err)
			assert.Len(t, users, 1)
		})
	}
}

func TestGetUser_NotFound(t *testing.T) {
	f := newTestFacade(t)

	_, err := f.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByEmail_CaseInsensitive(t *testing.T) {
	f := newTestFacade(t)
	user := mustCreateUser(t, f, "Ada", "ada@example.com")

	found, err := f.GetUserByEmail(context.Background(), "  ADA@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade(t)
	ada := mustCreateUser(t, f, "Ada", "ada@example.com")
	bob := mustCreateUser(t, f, "Bob", "bob@example.com")

	t.Run("changes supplied fields only", func(t *testing.T) {
		updated, err := f.UpdateUser(ctx, ada.ID, models.UserUpdate{FirstName: ptr("Augusta")})
		require.NoError(t, err)
		assert.Equal(t, "Augusta", updated.FirstName)
		assert.Equal(t, ada.LastName, updated.LastName)
		assert.Equal(t, ada.Email, updated.Email)
		assert.Equal(t, ada.PasswordHash, updated.PasswordHash)
	})

	t.Run("rehashes a new password", func(t *testing.T) {
		updated, err := f.UpdateUser(ctx, ada.ID, models.UserUpdate{Password: ptr("new-password")})
		require.NoError(t, err)
		assert.True(t, newTestHasher().Verify("new-password", updated.PasswordHash))
		assert.False(t, newTestHasher().Verify("password-Ada", updated.PasswordHash))
	})

	t.Run("keeping own email is allowed", func(t *testing.T) {
		_, err := f.UpdateUser(ctx, ada.ID, models.UserUpdate{Email: ptr("ADA@example.com")})
		assert.NoError(t, err)
	})

	t.Run("email of another user is rejected", func(t *testing.T) {
		_, err := f.UpdateUser(ctx, ada.ID, models.UserUpdate{Email: ptr(bob.Email)})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("invalid field leaves user unchanged", func(t *testing.T) {
		before, err := f.GetUser(ctx, bob.ID)
		require.NoError(t, err)

		_, err = f.UpdateUser(ctx, bob.ID, models.UserUpdate{FirstName: ptr("Robert"), Email: ptr("broken")})
		assert.ErrorIs(t, err, models.ErrValidation)

		after, err := f.GetUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		_, err := f.UpdateUser(ctx, bob.ID, models.UserUpdate{Password: ptr("")})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := f.UpdateUser(ctx, "missing", models.UserUpdate{FirstName: ptr("X")})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("missing user with a taken email", func(t *testing.T) {
		_, err := f.UpdateUser(ctx, "missing", models.UserUpdate{Email: ptr(bob.Email)})
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NotErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestDeleteUser_Cascades(t *testing.T) {
	for name, newStorages := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			f := NewFacade(newStorages(t), newTestHasher(), logger.Nop())

			owner := mustCreateUser(t, f, "Owner", "owner@example.com")
			guest := mustCreateUser(t, f, "Guest", "guest@example.com")
			third := mustCreateUser(t, f, "Third", "third@example.com")

			ownersPlace := mustCreatePlace(t, f, owner.ID)
			guestsPlace := mustCreatePlace(t, f, guest.ID)

			reviewOnOwners := mustCreateReview(t, f, third.ID, ownersPlace.ID, 4)
			guestReview := mustCreateReview(t, f, guest.ID, ownersPlace.ID, 5)
			ownerReview := mustCreateReview(t, f, owner.ID, guestsPlace.ID, 3)

			deleted, err := f.DeleteUser(ctx, owner.ID)
			require.NoError(t, err)
			assert.True(t, deleted)

			_, err = f.GetUser(ctx, owner.ID)
			assert.ErrorIs(t, err, ErrUserNotFound)
			_, err = f.GetPlace(ctx, ownersPlace.ID)
			assert.ErrorIs(t, err, ErrPlaceNotFound)
			for _, id := range []string{reviewOnOwners.ID, guestReview.ID, ownerReview.ID} {
				_, err = f.GetReview(ctx, id)
				assert.ErrorIs(t, err, ErrReviewNotFound)
			}

			remaining, err := f.GetPlace(ctx, guestsPlace.ID)
			require.NoError(t, err)
			assert.Empty(t, remaining.Reviews)

			deleted, err = f.DeleteUser(ctx, owner.ID)
			require.NoError(t, err)
			assert.False(t, deleted)
		})
	}
}
