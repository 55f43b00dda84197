package service

import (
	"context"
	"fmt"

	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/crypto"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/store"
	"github.com/hbnb/hbnb-server/models"
)

type Services struct {
	Facade         *Facade
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(ctx context.Context, storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewBcryptHasher(cfg.PasswordPepper, cfg.BcryptCost)
	facade := NewFacade(storages, hasher, logger)

	authService, err := NewAuthService(facade, hasher, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	if cfg.AdminEmail != "" {
		admin := models.UserInput{
			FirstName: "Admin",
			LastName:  "User",
			Email:     cfg.AdminEmail,
			Password:  cfg.AdminPassword,
		}
		if _, err = authService.EnsureAdmin(ctx, admin); err != nil {
			return nil, fmt.Errorf("error seeding admin: %w", err)
		}
	}

	return &Services{
		Facade:         facade,
		AuthService:    authService,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
