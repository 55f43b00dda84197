package service

import (
	"context"
	"testing"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppVersion_ReturnsBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}, got)
}

func TestGetAppVersion_EmptyFieldsAreNotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", "deadbeef"), logger.Nop())

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, notAvailable, got.Version)
	assert.Equal(t, notAvailable, got.Date)
	assert.Equal(t, "deadbeef", got.Commit)
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx).Version)
}
