package service

import (
	"context"

	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// GetAppVersion reports the linker-injected build metadata; unset values are
// shown as "N/A".
func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version: orNotAvailable(s.buildInfo.BuildVersion()),
		Date:    orNotAvailable(s.buildInfo.BuildDate()),
		Commit:  orNotAvailable(s.buildInfo.BuildCommit()),
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}
