// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"github.com/hbnb/hbnb-server/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash for an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// bcryptHasher is the private implementation of [PasswordHasher].
//
// The plaintext is first keyed with the pepper through HMAC-SHA256 and the
// hex digest is fed to bcrypt. The digest is always 64 bytes, which keeps
// long passwords under bcrypt's 72 byte input limit.
type bcryptHasher struct {
	pepper string
	cost   int
}

// NewBcryptHasher returns a [PasswordHasher] using the given server-wide
// pepper and bcrypt cost. A cost outside bcrypt's accepted range falls back
// to bcrypt.DefaultCost.
func NewBcryptHasher(pepper string, cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{pepper: pepper, cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(h.peppered(plain)), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

func (h *bcryptHasher) Verify(plain, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(h.peppered(plain))) == nil
}

func (h *bcryptHasher) peppered(plain string) string {
	return utils.HashString(plain, h.pepper)
}
