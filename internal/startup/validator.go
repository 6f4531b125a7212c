// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package startup

import (
	"github.com/akarpov/go-web-skeleton/internal/config"
	"github.com/akarpov/go-web-skeleton/internal/environment"
	"github.com/akarpov/go-web-skeleton/internal/logger"
)

// Validator checks that every configuration key an adopter declared as
// required carries a non-blank value before the server starts serving.
type Validator struct {
	required []string
	logger   *logger.Logger
}

// NewValidator builds a Validator with no required keys.
func NewValidator(logger *logger.Logger) *Validator {
	return &Validator{logger: logger}
}

// Require adds configuration keys to the required set and returns the
// validator for chaining. Keys use the dotted form understood by
// [config.StructuredConfig.Lookup], for example "auth.token_sign_key".
func (v *Validator) Require(keys ...string) *Validator {
	v.required = append(v.required, keys...)
	return v
}

// Validate checks the required keys against the loaded configuration and,
// on success, emits the startup announcement record.
//
// The first missing or blank key aborts validation with a
// [config.MissingKeyError] naming it; nothing is logged in that case, so
// a failed startup never announces itself. On success exactly one record
// of the form "Starting in <environment> on <host>" is written.
func (v *Validator) Validate(cfg *config.StructuredConfig, env environment.Descriptor) error {
	if err := cfg.ValidateRequired(v.required); err != nil {
		return err
	}

	v.logger.Info().
		Str("environment", env.Name).
		Str("host", env.Host).
		Msgf("Starting in %s on %s", env.Name, env.Host)

	return nil
}
