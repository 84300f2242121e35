package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileLayer is the on-disk shape of the config file. Port accepts both a
// number and a string.
type fileLayer struct {
	HTMLPath      string `json:"html" yaml:"html"`
	CSSPath       string `json:"css" yaml:"css"`
	JSPath        string `json:"js" yaml:"js"`
	UnsafeInline  bool   `json:"unsafe_inline" yaml:"unsafe_inline"`
	Host          string `json:"host" yaml:"host"`
	Port          any    `json:"port" yaml:"port"`
	StaticPath    string `json:"static_path" yaml:"static_path"`
	StaticContent string `json:"static_content" yaml:"static_content"`
	MimeTypesPath string `json:"mime_types" yaml:"mime_types"`
}

// parseFile reads the config file at path. Files with a .json extension are
// decoded as JSON, everything else as YAML.
func parseFile(path string) (*Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg fileLayer
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &fileCfg)
	} else {
		err = yaml.Unmarshal(data, &fileCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	layer := &Layer{
		HTMLPath:      fileCfg.HTMLPath,
		CSSPath:       fileCfg.CSSPath,
		JSPath:        fileCfg.JSPath,
		UnsafeInline:  fileCfg.UnsafeInline,
		Host:          fileCfg.Host,
		StaticPath:    fileCfg.StaticPath,
		StaticContent: fileCfg.StaticContent,
		MimeTypesPath: fileCfg.MimeTypesPath,
	}
	if fileCfg.Port != nil {
		layer.Port = fmt.Sprint(fileCfg.Port)
	}

	return layer, nil
}
