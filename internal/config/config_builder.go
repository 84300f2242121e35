package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	layers []*Layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]*Layer, 0, 4),
	}
}

func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(Layer)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg := merged.config()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// withLayer appends an already populated layer. Nil layers are skipped.
func (b *configBuilder) withLayer(layer *Layer) *configBuilder {
	if layer != nil {
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *configBuilder) withEnv(environ map[string]string) *configBuilder {
	envCfg := new(Layer)
	if err := parseEnv(envCfg, environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCfg)
	return b
}

// withFile appends the config file layer. path takes precedence over a
// config path set by a previous layer; nothing is appended when neither names
// a file.
func (b *configBuilder) withFile(path string) *configBuilder {
	if path == "" {
		for _, layer := range b.layers {
			if layer.ConfigPath != "" {
				path = layer.ConfigPath
			}
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, fileCfg)
	return b
}
