// Package utils provides general-purpose helpers shared by the server
// packages: context keys, HMAC hashing, JSON response writing, an HTTP
// client, JWT issuing and validation, and UUID generation.
package utils

import (
	"context"

	"github.com/hbnb/hbnb-server/models"
)

// contextKey is a private type for context keys so values stored by this
// package never collide with string keys set elsewhere.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key the auth middleware stores the caller identity under.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated caller from the context.
//
// ok is false when no identity was stored or the stored identity has an
// empty user id.
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	if !ok || identity.UserID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
