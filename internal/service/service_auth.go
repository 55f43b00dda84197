package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hbnb/hbnb-server/internal/config"
	"github.com/hbnb/hbnb-server/internal/crypto"
	"github.com/hbnb/hbnb-server/internal/logger"
	"github.com/hbnb/hbnb-server/internal/utils"
	"github.com/hbnb/hbnb-server/models"
)

// dummyPassword is hashed once at construction. Login verifies against that
// hash when the email is unknown so both failure paths cost one bcrypt
// comparison.
const dummyPassword = "hbnb-login-timing-equalizer"

// authService is the concrete implementation of AuthService.
type authService struct {
	// facade resolves users by email and creates the seeded admin.
	facade *Facade

	// hasher verifies the supplied password against the stored hash.
	hasher crypto.PasswordHasher

	// dummyHash is the hash of dummyPassword.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(facade *Facade, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("error preparing login hash: %w", err)
	}

	return &authService{
		facade:        facade,
		hasher:        hasher,
		dummyHash:     dummyHash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

// Login authenticates a user by email and password and issues a token.
//
// An unknown email, a wrong password and a user without a stored password
// all yield ErrInvalidCredentials, and each of them performs exactly one
// password verification.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := a.logger.Ctx(ctx)

	user, err := a.facade.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.Token{}, err
	}

	storedHash := a.dummyHash
	if user != nil && user.HasCredential() {
		storedHash = user.PasswordHash
	}

	if !a.hasher.Verify(password, storedHash) || user == nil || !user.HasCredential() {
		log.Info().Str("func", "*authService.Login").Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.CreateToken(ctx, user)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the admin flag, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user *models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.IsAdmin, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureAdmin creates the administrator described by input, or promotes the
// existing user with that email. Calling it again changes nothing.
func (a *authService) EnsureAdmin(ctx context.Context, input models.UserInput) (*models.User, error) {
	log := a.logger.Ctx(ctx)

	existing, err := a.facade.GetUserByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		input.IsAdmin = true
		admin, err := a.facade.CreateUser(ctx, input)
		if err != nil {
			return nil, err
		}
		log.Info().Str("user_id", admin.ID).Msg("admin account created")
		return admin, nil
	case err != nil:
		return nil, err
	case existing.IsAdmin:
		return existing, nil
	}

	isAdmin := true
	promoted, err := a.facade.UpdateUser(ctx, existing.ID, models.UserUpdate{IsAdmin: &isAdmin})
	if err != nil {
		return nil, err
	}
	log.Info().Str("user_id", promoted.ID).Msg("existing user promoted to admin")
	return promoted, nil
}
