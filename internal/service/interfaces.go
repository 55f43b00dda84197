package service

import (
	"context"

	"github.com/hbnb/hbnb-server/models"
)

// AuthService authenticates users and issues and validates their tokens.
type AuthService interface {
	// Login checks the credentials and issues a token. Every failure is
	// reported as ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Token, error)
	CreateToken(ctx context.Context, user *models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin makes sure an administrator with the given email exists.
	EnsureAdmin(ctx context.Context, input models.UserInput) (*models.User, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
