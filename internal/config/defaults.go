package config

import "time"

// defaultContainerJSONPath is the conventional location of the
// container-specific settings file, merged only when the process runs in a
// container.
const defaultContainerJSONPath = "config.container.json"

// defaultConfig is the lowest-priority configuration layer. Every field an
// adopter leaves unset falls back to these values.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:       ":8080",
			HealthPath:        "/healthz",
			ReadHeaderTimeout: 30 * time.Second,
			KeepAliveTimeout:  2 * time.Minute,
			DrainTimeout:      30 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		Auth: Auth{
			TokenIssuer:   "go-web-skeleton",
			TokenDuration: time.Hour,
		},
		Static: Static{
			Prefix: "/static/",
		},
		Metrics: Metrics{
			Path: "/metrics",
		},
	}
}
