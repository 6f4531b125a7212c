package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── parseFlags ────────────────────────────────────────────────────────────────

// TestParseFlags_TableTest verifies that each flag lands in the expected
// config field.
func TestParseFlags_TableTest(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no args yields zero config",
			args: nil,
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "server address",
			args: []string{"-a", "localhost:9090"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
			},
		},
		{
			name: "config file path via -c",
			args: []string{"-c", "/etc/app/config.json"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/app/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config file path via -config alias",
			args: []string{"-config", "/etc/app/config.json"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/app/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "container config path",
			args: []string{"-container-config", "/etc/app/config.container.json"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/app/config.container.json", cfg.ContainerJSONFilePath)
			},
		},
		{
			name: "timeouts",
			args: []string{"-read-header-timeout", "10s", "-keep-alive-timeout", "1m", "-drain-timeout", "45s"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
				assert.Equal(t, time.Minute, cfg.Server.KeepAliveTimeout)
				assert.Equal(t, 45*time.Second, cfg.Server.DrainTimeout)
			},
		},
		{
			name: "auth settings",
			args: []string{"-token-sign-key", "secret", "-token-issuer", "me", "-token-duration", "30m"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
				assert.Equal(t, "me", cfg.Auth.TokenIssuer)
				assert.Equal(t, 30*time.Minute, cfg.Auth.TokenDuration)
			},
		},
		{
			name: "static content settings",
			args: []string{"-static-dir", "/var/www", "-static-prefix", "/assets/"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/var/www", cfg.Static.Dir)
				assert.Equal(t, "/assets/", cfg.Static.Prefix)
			},
		},
		{
			name: "observability paths",
			args: []string{"-health-path", "/livez", "-metrics-path", "/telemetry"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/livez", cfg.Server.HealthPath)
				assert.Equal(t, "/telemetry", cfg.Metrics.Path)
			},
		},
		{
			name: "log level",
			args: []string{"-log-level", "debug"},
			want: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

// TestParseFlags_MalformedArgs verifies that bad arguments surface as errors
// instead of being silently dropped.
func TestParseFlags_MalformedArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"-no-such-flag"}},
		{name: "unparsable duration", args: []string{"-read-header-timeout", "nonsense"}},
		{name: "invalid address", args: []string{"-a", "localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

// ── NetAddress ────────────────────────────────────────────────────────────────

// TestNetAddress_Set verifies parsing and validation of host:port values.
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    NetAddress
	}{
		{name: "host and port", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip and port", input: "127.0.0.1:80", want: NetAddress{Host: "127.0.0.1", Port: 80}},
		{name: "port only", input: ":8080", want: NetAddress{Host: "", Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not_a_host:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

// TestNetAddress_String verifies the canonical representation.
func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String(), "unset address must stay empty for the merge")
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
