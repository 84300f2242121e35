package store

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/sstatic/internal/logger"
)

//go:embed default.html
var defaultPage string

// DefaultPage returns the maintenance page built into the binary.
func DefaultPage() string {
	return defaultPage
}

// Content is the raw material of the maintenance page as read from disk.
// CSS and JS are nil when no path was configured.
type Content struct {
	HTML string
	CSS  []string
	JS   []string
}

// LoadContent reads the html page and the optional stylesheet and script
// trees. An unreadable html file is replaced with [DefaultPage]; all other
// failures are returned.
func LoadContent(htmlPath, cssPath, jsPath string, logger *logger.Logger) (*Content, error) {
	html, err := LoadPage(htmlPath, logger)
	if err != nil {
		return nil, err
	}

	content := &Content{HTML: html}

	if cssPath != "" {
		if content.CSS, err = LoadTree(cssPath); err != nil {
			return nil, fmt.Errorf("error loading css: %w", err)
		}
	}

	if jsPath != "" {
		if content.JS, err = LoadTree(jsPath); err != nil {
			return nil, fmt.Errorf("error loading js: %w", err)
		}
	}

	logger.Debug().
		Int("css_files", len(content.CSS)).
		Int("js_files", len(content.JS)).
		Msg("page content loaded")

	return content, nil
}

// LoadPage reads the html template at path. A directory is a [PathError];
// a file that cannot be read yields [DefaultPage] and a warning.
func LoadPage(path string, logger *logger.Logger) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", &PathError{Path: path, Text: "html path must not be a directory"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("no html file found, using default html page")
		return defaultPage, nil
	}

	return string(data), nil
}

// LoadTree reads the file at path, or every file below path when it is a
// directory. Files are returned in lexical path order.
func LoadTree(path string) ([]string, error) {
	var contents []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		contents = append(contents, string(data))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	return contents, nil
}
