// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
)

// Default values of the lowest-priority layer.
const (
	DefaultHTMLPath      = "index.html"
	DefaultHost          = "0.0.0.0"
	DefaultPort          = 3333
	DefaultStaticContent = "static"
	DefaultMimeTypesPath = "/etc/mime.types"
)

// Config is the resolved, validated configuration of the server. It is built
// once at startup and never modified afterwards.
type Config struct {
	// HTMLPath is the maintenance page template. A missing file is replaced
	// with the built-in page.
	HTMLPath string

	// CSSPath is an optional stylesheet, or a directory of stylesheets,
	// injected at the {{ css }} placeholder.
	CSSPath string

	// JSPath is an optional script, or a directory of scripts, injected at
	// the {{ js }} placeholder.
	JSPath string

	// UnsafeInline switches the Content-Security-Policy from per-block
	// hashes to 'unsafe-inline'.
	UnsafeInline bool

	// Host is the IP address the server binds to.
	Host string

	// Port is the TCP port the server listens on.
	Port uint16

	// StaticPath is the first path segment of the static content route,
	// e.g. "assets" for /assets/<file>. Static serving is disabled when empty.
	StaticPath string

	// StaticContent is the file or directory served on the static route.
	StaticContent string

	// MimeTypesPath points to a mime.types table used for static content.
	MimeTypesPath string
}

// Address returns the listen address in host:port form.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// StaticEnabled reports whether the static content route is served.
func (c *Config) StaticEnabled() bool {
	return c.StaticPath != ""
}

// Layer is a partially filled configuration produced by a single source.
// Empty fields are unset and do not override lower layers.
//
// Port is kept as text so that an invalid value can fall back to
// [DefaultPort] instead of failing the whole resolution.
type Layer struct {
	HTMLPath      string `env:"HTML_PATH"`
	CSSPath       string `env:"CSS_PATH"`
	JSPath        string `env:"JS_PATH"`
	UnsafeInline  bool
	Host          string `env:"HOST"`
	Port          string `env:"PORT"`
	StaticPath    string `env:"STATIC_PATH"`
	StaticContent string `env:"STATIC_CONTENT"`
	MimeTypesPath string `env:"MIME_TYPES"`

	// ConfigPath names the config file layer. It is read from the
	// environment and the command line only.
	ConfigPath string `env:"CONFIG_PATH"`
}

// Defaults returns the built-in layer.
func Defaults() *Layer {
	return &Layer{
		HTMLPath:      DefaultHTMLPath,
		Host:          DefaultHost,
		Port:          strconv.Itoa(DefaultPort),
		StaticContent: DefaultStaticContent,
		MimeTypesPath: DefaultMimeTypesPath,
	}
}

// config converts a merged layer into a Config.
func (l *Layer) config() *Config {
	return &Config{
		HTMLPath:      l.HTMLPath,
		CSSPath:       l.CSSPath,
		JSPath:        l.JSPath,
		UnsafeInline:  l.UnsafeInline,
		Host:          l.Host,
		Port:          parsePort(l.Port),
		StaticPath:    l.StaticPath,
		StaticContent: l.StaticContent,
		MimeTypesPath: l.MimeTypesPath,
	}
}

func parsePort(s string) uint16 {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil || port == 0 {
		return DefaultPort
	}
	return uint16(port)
}

// Load resolves the configuration from the built-in defaults, the process
// environment, the config file and the given command-line layer. cli may be
// nil.
func Load(cli *Layer) (*Config, error) {
	return Resolve(Defaults(), nil, cli)
}

// Resolve folds defaults, the environment and cli, with the config file layer
// between environment and cli. A nil environ means the process environment.
//
// Returns [ErrIncomplete] or another validation error when the merged
// configuration cannot be used to start the server.
func Resolve(defaults *Layer, environ map[string]string, cli *Layer) (*Config, error) {
	if cli == nil {
		cli = new(Layer)
	}

	return newConfigBuilder().
		withLayer(defaults).
		withEnv(environ).
		withFile(cli.ConfigPath).
		withLayer(cli).
		build()
}
