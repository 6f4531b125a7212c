// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package config

import (
	"time"

	"github.com/akarpov/go-web-skeleton/internal/environment"
)

// StructuredConfig is the top-level configuration container for the
// application skeleton. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and optional JSON files.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// server, including the drain behaviour applied during shutdown.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings: the minimum emitted level and whether
	// per-request log records are produced.
	Log Log `envPrefix:"LOG_"`

	// Auth holds settings for the optional authentication and
	// authorization pipeline stages. Both stages are disabled when
	// TokenSignKey is empty.
	Auth Auth `envPrefix:"AUTH_"`

	// Static holds settings for the optional static-content stage.
	// The stage is disabled when Dir is empty.
	Static Static `envPrefix:"STATIC_"`

	// Metrics holds settings for the optional request-metrics stage.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// ContainerJSONFilePath is the path to the container-specific JSON
	// configuration file merged only when the container indicator
	// environment variable is set. Defaults to "config.container.json";
	// the default path is allowed to be absent, an explicitly configured
	// one is not.
	ContainerJSONFilePath string `env:"CONTAINER_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// HealthPath is the URL path answered by the liveness probe stage.
	// The probe short-circuits before every other stage, including the
	// security-header stage.
	// Env: SERVER_HEALTH_PATH
	HealthPath string `env:"HEALTH_PATH"`

	// ReadHeaderTimeout bounds how long the server waits for a client to
	// send the request headers. Connections exceeding it are forcibly
	// closed, including during drain.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// KeepAliveTimeout bounds how long an idle keep-alive connection is
	// retained before the server closes it.
	// Env: SERVER_KEEP_ALIVE_TIMEOUT
	KeepAliveTimeout time.Duration `env:"KEEP_ALIVE_TIMEOUT"`

	// DrainTimeout bounds the graceful-shutdown drain: in-flight requests
	// that have not completed when it elapses are forcibly terminated.
	// Env: SERVER_DRAIN_TIMEOUT
	DrainTimeout time.Duration `env:"DRAIN_TIMEOUT"`

	// DisableHTTPSRedirect suppresses the redirect-to-HTTPS behaviour of
	// the security stage regardless of environment. The redirect is also
	// suppressed automatically in the development environment.
	// Env: SERVER_DISABLE_HTTPS_REDIRECT
	DisableHTTPSRedirect bool `env:"DISABLE_HTTPS_REDIRECT"`
}

// Log holds logging configuration.
type Log struct {
	// Level is the minimum emitted log level ("debug", "info", "warn",
	// "error"). Parsed with zerolog.ParseLevel.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Requests enables the per-request log record (method, path, status,
	// response size, elapsed time). Off by default.
	// Env: LOG_REQUESTS
	Requests bool `env:"REQUESTS"`
}

// Auth holds settings for the authentication and authorization stages.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential. An empty key disables both auth stages.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token
	// and validated on every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// APIKeyHash is an optional bcrypt hash of a static API key accepted
	// in place of a JWT (the "ApiKey" authorization scheme).
	// Env: AUTH_API_KEY_HASH
	APIKeyHash string `env:"API_KEY_HASH"`
}

// Static holds settings for the static-content stage.
type Static struct {
	// Dir is the directory static files are served from. Empty disables
	// the stage.
	// Env: STATIC_DIR
	Dir string `env:"DIR"`

	// Prefix is the URL prefix under which static files are exposed.
	// Must begin and end with "/".
	// Env: STATIC_PREFIX
	Prefix string `env:"PREFIX"`
}

// Metrics holds settings for the request-metrics stage.
type Metrics struct {
	// Enabled turns on the request counter/duration instrumentation and
	// the metrics endpoint.
	// Env: METRICS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Path is the URL path the metrics endpoint is served on.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Container JSON file (only when env indicates a container)
//  4. JSON file (path resolved from sources 1 and 2)
//  5. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(env environment.Descriptor) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withContainerJSON(env).
		withJSON().
		withDefaults().
		build()
}

// Lookup returns the value of a flattened configuration key, reported as a
// string, and whether the key is known at all. The startup validator uses
// it to check adopter-declared required keys; a blank value is returned
// as-is so the validator can treat blank and absent uniformly.
func (cfg *StructuredConfig) Lookup(key string) (string, bool) {
	keys := map[string]string{
		"app.version":           cfg.App.Version,
		"server.address":        cfg.Server.HTTPAddress,
		"server.health_path":    cfg.Server.HealthPath,
		"log.level":             cfg.Log.Level,
		"auth.token_sign_key":   cfg.Auth.TokenSignKey,
		"auth.token_issuer":     cfg.Auth.TokenIssuer,
		"auth.api_key_hash":     cfg.Auth.APIKeyHash,
		"static.dir":            cfg.Static.Dir,
		"static.prefix":         cfg.Static.Prefix,
		"metrics.path":          cfg.Metrics.Path,
		"config.json_file_path": cfg.JSONFilePath,
		"config.container_file": cfg.ContainerJSONFilePath,
	}

	v, ok := keys[key]
	return v, ok
}
