package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile(t *testing.T) {
	want := &Layer{
		HTMLPath:      "index.html",
		CSSPath:       "css",
		JSPath:        "js",
		UnsafeInline:  true,
		Host:          "127.0.0.1",
		Port:          "8080",
		StaticPath:    "assets",
		StaticContent: "public",
		MimeTypesPath: "mime.types",
	}

	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "yaml",
			file: "sstatic.yaml",
			body: `
html: index.html
css: css
js: js
unsafe_inline: true
host: 127.0.0.1
port: 8080
static_path: assets
static_content: public
mime_types: mime.types
`,
		},
		{
			name: "json",
			file: "sstatic.json",
			body: `{
				"html": "index.html",
				"css": "css",
				"js": "js",
				"unsafe_inline": true,
				"host": "127.0.0.1",
				"port": 8080,
				"static_path": "assets",
				"static_content": "public",
				"mime_types": "mime.types"
			}`,
		},
		{
			name: "json with string port",
			file: "SSTATIC.JSON",
			body: `{"html": "index.html", "css": "css", "js": "js", "unsafe_inline": true, "host": "127.0.0.1",
				"port": "8080", "static_path": "assets", "static_content": "public", "mime_types": "mime.types"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeTempConfig(t, tt.file, tt.body)

			layer, err := parseFile(p)
			require.NoError(t, err)
			assert.Equal(t, want, layer)
		})
	}
}

func TestParseFile_EmptyFile(t *testing.T) {
	p := writeTempConfig(t, "empty.yaml", "")

	layer, err := parseFile(p)
	require.NoError(t, err)
	assert.Equal(t, &Layer{}, layer)
}

func TestParseFile_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := parseFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		p := writeTempConfig(t, "bad.yml", "html: [unclosed\n")
		_, err := parseFile(p)
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		p := writeTempConfig(t, "bad.json", `{"html": 1}`)
		_, err := parseFile(p)
		assert.Error(t, err)
	})
}
