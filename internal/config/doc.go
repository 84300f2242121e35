// Package config provides configuration loading, merging, and validation
// facilities for sstatic.
//
// Configuration is assembled from four layers in ascending priority (later
// layers override earlier non-empty fields):
//  1. Built-in defaults
//  2. Environment variables (SSTATIC_*)
//  3. Config file (YAML or JSON), named by --config or SSTATIC_CONFIG_PATH
//  4. Command-line flags
//
// The main entry point is [Load]; [Resolve] exposes the same fold for
// explicitly supplied layers.
package config
