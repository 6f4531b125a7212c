// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when
// configuration groups are incomplete or inconsistent. All of them are
// startup-time, fatal: the process must not begin serving.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a negative timeout or a health path that does not
	// begin with a slash).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates an unparseable log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidStaticConfigs indicates invalid static-content settings
	// (for example, a prefix without the surrounding slashes).
	ErrInvalidStaticConfigs = errors.New("invalid static content configuration")
	// ErrInvalidMetricsConfigs indicates an invalid metrics endpoint path.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a negative token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)

// MissingKeyError reports a required configuration key that is absent or
// blank. Startup must abort before the listener binds.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "missing required configuration key: " + e.Key
}
