package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"

	"github.com/akarpov/go-web-skeleton/internal/environment"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withContainerJSON merges the container-specific JSON file, but only when
// the resolved environment indicates the process runs inside a container.
// The layer sits above the base JSON file so container settings override it.
//
// A missing file at the default path is tolerated (the template ships
// without one); a missing file at an explicitly configured path is an error.
func (b *configBuilder) withContainerJSON(env environment.Descriptor) *configBuilder {
	if !env.InContainer {
		return b
	}

	// layers are ordered highest-priority first, so the first layer that
	// names a path wins
	path := defaultContainerJSONPath
	explicit := false
	for _, cfg := range b.configs {
		if cfg.ContainerJSONFilePath != "" {
			path = cfg.ContainerJSONFilePath
			explicit = true
			break
		}
	}

	containerCfg, err := parseJSON(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, containerCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	// earlier layers take priority, same as the merge itself
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority layer.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}
