// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	envPrefix       = "SSTATIC_"
	envUnsafeInline = envPrefix + "UNSAFE_INLINE"
)

// parseEnv populates layer from SSTATIC_* variables using the caarlos0/env
// library. Fields are mapped via their `env` tags on [Layer].
//
// environ replaces the process environment when non-nil. The presence of
// SSTATIC_UNSAFE_INLINE enables unsafe inline regardless of its value.
func parseEnv(layer *Layer, environ map[string]string) error {
	if environ == nil {
		environ = processEnv()
	}

	err := env.ParseWithOptions(layer, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if _, ok := environ[envUnsafeInline]; ok {
		layer.UnsafeInline = true
	}

	return nil
}

func processEnv() map[string]string {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		environ[key] = value
	}
	return environ
}
