// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise. Required-key checking is a separate concern owned by the
// startup validator; validate only guards internal consistency.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.ReadHeaderTimeout < 0 || cfg.Server.KeepAliveTimeout < 0 || cfg.Server.DrainTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	if !strings.HasPrefix(cfg.Server.HealthPath, "/") {
		return ErrInvalidServerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	if cfg.Static.Dir != "" {
		if !strings.HasPrefix(cfg.Static.Prefix, "/") || !strings.HasSuffix(cfg.Static.Prefix, "/") {
			return ErrInvalidStaticConfigs
		}
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return ErrInvalidMetricsConfigs
	}

	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

// ValidateRequired checks that every key in required resolves to a
// non-blank value. The first missing key aborts with a [MissingKeyError]
// naming it. The required set is adopter-defined and empty by default.
func (cfg *StructuredConfig) ValidateRequired(required []string) error {
	for _, key := range required {
		v, ok := cfg.Lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return &MissingKeyError{Key: key}
		}
	}

	return nil
}

// LogLevel returns the configured minimum log level. validate guarantees
// the level parses, so errors here are impossible after a successful build.
func (cfg *StructuredConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
