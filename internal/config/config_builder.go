// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates partial [Config] values from different sources
// and merges them onto [Defaults] on [build].
//
// The builder follows the fluent-interface pattern: each with* method
// appends a config source and returns the same *configBuilder so calls can
// be chained. Any error encountered during a with* step is stored in err
// and causes [build] to fail-fast without attempting to merge.
type configBuilder struct {
	// configs holds the ordered list of partial configurations to be
	// merged onto the default baseline. Sources appended later take
	// precedence over earlier ones for non-zero fields (mergo.Merge
	// semantics with WithOverride).
	configs []*Config

	// err accumulates errors from individual source-loading steps.
	err error
}

// newConfigBuilder creates and returns an empty *configBuilder ready for use.
func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*Config, 0, 2),
	}
}

// build merges all accumulated partial configurations onto [Defaults] and
// validates the result.
//
// Returns an error if any with* step previously recorded an error,
// mergo.Merge fails for any source, or the final config fails
// [Config.validate].
func (b *configBuilder) build() (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred building config: %w", b.err)
	}

	cfg := Defaults()
	for _, override := range b.configs {
		if err := mergo.Merge(cfg, override, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return cfg, cfg.validate()
}

// withEnv parses environment variables into a [Config] via [parseEnv] and
// appends the result to the builder.
//
// If parsing fails, the error is joined into b.err and the builder is
// returned unchanged so that subsequent steps are skipped gracefully.
//
// Returns the same *configBuilder to support method chaining.
func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}
