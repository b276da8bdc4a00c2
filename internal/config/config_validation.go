// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. All problems are reported at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d is out of range 1..65535", ErrInvalidServerConfigs, cfg.Server.Port))
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs))
	}

	switch cfg.Storage.Driver {
	case DriverMemory, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver))
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	return errors.Join(errs...)
}
