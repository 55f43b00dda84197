package http

import (
	"context"
	"testing"
	"time"

	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/service"
	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@hbnb.io"
	testAdminPassword = "admin-secret"
)

func testAppConfig() config.App {
	return config.App{
		PasswordPepper: "test-pepper",
		BcryptCost:     4,
		TokenSignKey:   "test-sign-key",
		TokenIssuer:    "hbnb-test",
		TokenDuration:  time.Hour,
		AdminEmail:     testAdminEmail,
		AdminPassword:  testAdminPassword,
	}
}

// newTestHandler wires a handler to real services over memory storages with
// a seeded administrator.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	log := logger.Nop()
	storages := store.NewMemoryStorages(utils.NewUUIDGenerator(), log)
	services, err := service.NewServices(context.Background(), storages, testAppConfig(),
		models.NewAppBuildInfo("v1.2.3", "2026-10-17", "abc123"), log)
	require.NoError(t, err)

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, log)
}

// bearer logs in through the auth service and returns an Authorization value.
func bearer(t *testing.T, h *Handler, email, password string) string {
	t.Helper()
	token, err := h.services.AuthService.Login(context.Background(), email, password)
	require.NoError(t, err)
	return "Bearer " + token.SignedString
}
