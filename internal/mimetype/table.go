package mimetype

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultType is the content type used for files whose extension is unknown
// or absent.
const DefaultType = "text/plain"

//go:embed mime.types
var defaultTable string

// Table maps lowercase file extensions (without the dot) to MIME types.
// A Table is read-only once built and safe for concurrent use.
type Table struct {
	types map[string]string
}

// Default returns the table built into the binary.
func Default() *Table {
	t, err := Parse(strings.NewReader(defaultTable))
	if err != nil {
		panic(fmt.Sprintf("mimetype: embedded table is invalid: %v", err))
	}
	return t
}

// Load reads the table at path. An empty path, an unreadable file or a
// malformed table all yield [Default].
func Load(path string) *Table {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return Default()
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return Default()
	}
	return t
}

// Parse reads a table where every line is "type ext1 ext2 ...". Blank lines and
// lines starting with '#' are skipped. When an extension is listed more than
// once the last line wins.
func Parse(r io.Reader) (*Table, error) {
	types := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		for _, ext := range fields[1:] {
			types[ext] = fields[0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading mime types: %w", err)
	}

	return &Table{types: types}, nil
}

// Get returns the MIME type stored for ext. The lookup is case-sensitive, so
// callers are expected to lowercase the extension.
func (t *Table) Get(ext string) (string, bool) {
	mimeType, ok := t.types[ext]
	return mimeType, ok
}

// TypeFor returns the MIME type for a file name based on its lowercased
// extension, or [DefaultType].
func (t *Table) TypeFor(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return DefaultType
	}
	if mimeType, ok := t.Get(ext); ok {
		return mimeType
	}
	return DefaultType
}

// Len returns the number of known extensions.
func (t *Table) Len() int {
	return len(t.types)
}
