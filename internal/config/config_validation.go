// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a joined error listing every
// violated rule otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}

	switch cfg.Storage.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.AuthRateLimit < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	return errors.Join(errs...)
}
