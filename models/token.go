package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login.
//
// The subject ("sub") carries the user id; IsAdmin mirrors the user's admin
// flag at the time the token was issued.
type Claims struct {
	jwt.RegisteredClaims

	IsAdmin bool `json:"is_admin"`
}

// Token wraps a JWT with the identity extracted from it.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent as a bearer credential.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"access_token"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`

	// UserID is the identity extracted from the "sub" claim.
	UserID string `json:"-"`

	// IsAdmin is the admin flag extracted from the claims.
	IsAdmin bool `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity returns the caller identity the token represents.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.UserID, IsAdmin: t.IsAdmin}
}

// Identity is the authenticated caller of a facade operation.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// LoginRequest is the credentials payload of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
