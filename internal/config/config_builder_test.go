package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/go-web-skeleton/internal/environment"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, with earlier layers winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{
			App:  App{Version: "ignored"},
			Auth: Auth{TokenIssuer: "issuer"},
		},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version, "earlier layer must win")
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
}

// TestBuild_DefaultsFillUnsetFields verifies that the defaults layer
// populates everything an adopter leaves out.
func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/healthz", cfg.Server.HealthPath)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Server.KeepAliveTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.DrainTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("SERVER_READ_HEADER_TIMEOUT", "15s")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
	assert.Equal(t, 15*time.Second, b.configs[0].Server.ReadHeaderTimeout)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_MergedUnderneathEnv verifies that a JSON file referenced via
// an earlier layer is loaded but loses to the env layer on conflicts.
func TestWithJSON_MergedUnderneathEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
		"log": map[string]any{"level": "debug"},
	})
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestWithJSON_MissingFileFailsBuild verifies that an unreadable configured
// JSON file is a startup error.
func TestWithJSON_MissingFileFailsBuild(t *testing.T) {
	t.Setenv("CONFIG", filepath.Join(t.TempDir(), "nope.json"))

	cfg, err := newConfigBuilder().withEnv().withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestWithJSON_EarlierLayerPathWins verifies that when several layers name a
// JSON file, the highest-priority layer's path is the one loaded.
func TestWithJSON_EarlierLayerPathWins(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-env-path"},
	})
	flagsPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-flags-path"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: envPath},
		&StructuredConfig{JSONFilePath: flagsPath},
	)

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "from-env-path", cfg.App.Version)
}

// ── withContainerJSON ─────────────────────────────────────────────────────────

// TestWithContainerJSON_SkippedOutsideContainer verifies that the container
// layer is never consulted when the environment is not containerized.
func TestWithContainerJSON_SkippedOutsideContainer(t *testing.T) {
	t.Setenv("CONTAINER_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	env := environment.Descriptor{Name: environment.Production, InContainer: false}
	cfg, err := newConfigBuilder().withEnv().withContainerJSON(env).withDefaults().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

// TestWithContainerJSON_MergedWhenInContainer verifies that the container
// file layer is merged and overrides the base JSON file.
func TestWithContainerJSON_MergedWhenInContainer(t *testing.T) {
	basePath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":9000", "health_path": "/base-health"},
	})
	containerPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":80"},
	})
	t.Setenv("CONFIG", basePath)
	t.Setenv("CONTAINER_CONFIG", containerPath)

	env := environment.Descriptor{Name: environment.Production, InContainer: true}
	cfg, err := newConfigBuilder().
		withEnv().
		withContainerJSON(env).
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, ":80", cfg.Server.HTTPAddress, "container layer must override base JSON")
	assert.Equal(t, "/base-health", cfg.Server.HealthPath, "base JSON must fill the rest")
}

// TestWithContainerJSON_EarlierLayerPathWins verifies that the container file
// path, like every other setting, is resolved in layer-priority order.
func TestWithContainerJSON_EarlierLayerPathWins(t *testing.T) {
	envPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":81"},
	})
	flagsPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":82"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{ContainerJSONFilePath: envPath},
		&StructuredConfig{ContainerJSONFilePath: flagsPath},
	)

	env := environment.Descriptor{Name: environment.Production, InContainer: true}
	cfg, err := b.withContainerJSON(env).withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, ":81", cfg.Server.HTTPAddress)
}

// TestWithContainerJSON_DefaultPathMayBeAbsent verifies that the template
// tolerates a missing container file at the conventional default path.
func TestWithContainerJSON_DefaultPathMayBeAbsent(t *testing.T) {
	t.Setenv("CONTAINER_CONFIG", "")
	// t.Chdir requires Go 1.24; emulate it for older toolchains.
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	env := environment.Descriptor{Name: environment.Production, InContainer: true}
	cfg, err := newConfigBuilder().withEnv().withContainerJSON(env).withDefaults().build()
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

// TestWithContainerJSON_ExplicitPathMustExist verifies that an explicitly
// configured container file path that cannot be read fails the build.
func TestWithContainerJSON_ExplicitPathMustExist(t *testing.T) {
	t.Setenv("CONTAINER_CONFIG", filepath.Join(t.TempDir(), "absent.json"))

	env := environment.Descriptor{Name: environment.Production, InContainer: true}
	cfg, err := newConfigBuilder().withEnv().withContainerJSON(env).build()
	assert.Nil(t, cfg)
	require.Error(t, err)
}
