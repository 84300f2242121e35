// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.HTMLPath == "" {
		return fmt.Errorf("%w: html path is not set", ErrIncomplete)
	}

	if cfg.Host == "" {
		return fmt.Errorf("%w: host is not set", ErrIncomplete)
	}

	if cfg.Host != "localhost" && net.ParseIP(cfg.Host) == nil {
		return fmt.Errorf("%w: %q", ErrInvalidHost, cfg.Host)
	}

	if cfg.StaticEnabled() {
		// the route name is a single literal path segment
		if strings.ContainsAny(cfg.StaticPath, `/\{}*`) {
			return fmt.Errorf("%w: %q", ErrInvalidStaticPath, cfg.StaticPath)
		}
		if cfg.StaticContent == "" {
			return fmt.Errorf("%w: static content is not set", ErrIncomplete)
		}
	}

	return nil
}
