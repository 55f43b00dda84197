package service

import (
	"context"
	"testing"
	"time"

	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/mock"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		PasswordPepper: testPepper,
		BcryptCost:     testCost,
		TokenSignKey:   "test-sign-key",
		TokenIssuer:    "hbnb-test",
		TokenDuration:  time.Hour,
	}
}

func newTestAuth(t *testing.T) (*Facade, AuthService) {
	t.Helper()
	f := newTestFacade(t)
	auth, err := NewAuthService(f, newTestHasher(), testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return f, auth
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	f, auth := newTestAuth(t)
	user := mustCreateUser(t, f, "Ada", "ada@example.com")

	token, err := auth.Login(ctx, "ADA@example.com", "password-Ada")
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, user.ID, token.UserID)
	assert.False(t, token.IsAdmin)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: user.ID}, parsed.Identity())
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	f, auth := newTestAuth(t)
	mustCreateUser(t, f, "Ada", "ada@example.com")

	_, unknownErr := auth.Login(ctx, "nobody@example.com", "password-Ada")
	_, wrongErr := auth.Login(ctx, "ada@example.com", "wrong")
	_, emptyErr := auth.Login(ctx, "ada@example.com", "")

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.ErrorIs(t, emptyErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_UnknownEmailVerifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("dummy-hash", nil)
	hasher.EXPECT().Verify("secret", "dummy-hash").Return(false).Times(1)

	f := NewFacade(newMemoryStorages(t), hasher, logger.Nop())
	auth, err := NewAuthService(f, hasher, testAppConfig(), logger.Nop())
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "nobody@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_KnownEmailVerifiesStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mock.NewMockPasswordHasher(ctrl)

	gomock.InOrder(
		hasher.EXPECT().Hash(gomock.Any()).Return("dummy-hash", nil),
		hasher.EXPECT().Hash("pw").Return("user-hash", nil),
		hasher.EXPECT().Verify("pw", "user-hash").Return(true),
	)

	f := NewFacade(newMemoryStorages(t), hasher, logger.Nop())
	auth, err := NewAuthService(f, hasher, testAppConfig(), logger.Nop())
	require.NoError(t, err)

	_, err = f.CreateUser(context.Background(), models.UserInput{FirstName: "A", LastName: "B", Email: "a@b.io", Password: "pw"})
	require.NoError(t, err)

	_, err = auth.Login(context.Background(), "a@b.io", "pw")
	assert.NoError(t, err)
}

func TestParseToken_Invalid(t *testing.T) {
	ctx := context.Background()
	_, auth := newTestAuth(t)

	foreign, err := utils.GenerateJWTToken("hbnb-test", "user-1", false, time.Hour, "other-key")
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := auth.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestCreateToken_CarriesAdminFlag(t *testing.T) {
	ctx := context.Background()
	_, auth := newTestAuth(t)

	token, err := auth.CreateToken(ctx, &models.User{Base: models.Base{ID: "admin-1"}, IsAdmin: true})
	require.NoError(t, err)

	parsed, err := auth.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin)
	assert.Equal(t, "admin-1", parsed.UserID)
}

func TestCreateToken_EmptyUserID(t *testing.T) {
	_, auth := newTestAuth(t)

	_, err := auth.CreateToken(context.Background(), &models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	admin := models.UserInput{FirstName: "Admin", LastName: "User", Email: "admin@example.com", Password: "root-pw"}

	t.Run("creates once", func(t *testing.T) {
		f, auth := newTestAuth(t)

		first, err := auth.EnsureAdmin(ctx, admin)
		require.NoError(t, err)
		assert.True(t, first.IsAdmin)

		second, err := auth.EnsureAdmin(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.PasswordHash, second.PasswordHash)

		users, err := f.GetAllUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("promotes existing user", func(t *testing.T) {
		f, auth := newTestAuth(t)
		existing := mustCreateUser(t, f, "Ada", "admin@example.com")
		require.False(t, existing.IsAdmin)

		promoted, err := auth.EnsureAdmin(ctx, admin)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, promoted.ID)
		assert.True(t, promoted.IsAdmin)

		token, err := auth.Login(ctx, "admin@example.com", "password-Ada")
		require.NoError(t, err)
		assert.True(t, token.IsAdmin)
	})
}

func TestNewServices_SeedsAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := testAppConfig()
	cfg.AdminEmail = "root@example.com"
	cfg.AdminPassword = "root-pw"

	services, err := NewServices(ctx, newMemoryStorages(t), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	token, err := services.AuthService.Login(ctx, "root@example.com", "root-pw")
	require.NoError(t, err)
	assert.True(t, token.IsAdmin)

	_, err = NewServices(ctx, newMemoryStorages(t), testAppConfig(), models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.NoError(t, err)
}
