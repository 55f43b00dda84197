// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. It runs after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.PasswordPepper == "":
		return fmt.Errorf("%w: password pepper is required", ErrInvalidAppConfigs)
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case cfg.App.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: bcrypt cost must be between %d and %d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	case (cfg.App.AdminEmail == "") != (cfg.App.AdminPassword == ""):
		return fmt.Errorf("%w: admin email and password must be set together", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case "memory":
	case "postgres", "sqlite":
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
