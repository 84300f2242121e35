package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MimeLookup resolves the content type of a file name.
type MimeLookup interface {
	TypeFor(name string) string
}

// Asset is a static file ready to be served.
type Asset struct {
	Content  []byte
	MimeType string
}

// AssetStore serves static content from a single file or a directory tree.
type AssetStore struct {
	root      string
	rootIsDir bool
	types     MimeLookup
}

// NewAssetStore returns a store rooted at root. The root is made absolute and
// symlinks are resolved once here; it must exist.
func NewAssetStore(root string, types MimeLookup) (*AssetStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("error resolving static content root: %w", err)
	}

	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("error resolving static content root: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("error accessing static content root: %w", err)
	}

	return &AssetStore{
		root:      abs,
		rootIsDir: info.IsDir(),
		types:     types,
	}, nil
}

// Root returns the resolved content root.
func (s *AssetStore) Root() string {
	return s.root
}

// Resolve returns the asset stored under name.
//
// When the root is a single file that file is returned whatever the name.
// Otherwise name is looked up below the root; directories, missing files and
// names escaping the root yield [ErrAssetNotFound].
func (s *AssetStore) Resolve(ctx context.Context, name string) (Asset, error) {
	if err := ctx.Err(); err != nil {
		return Asset{}, err
	}

	if !s.rootIsDir {
		return s.read(s.root, s.root)
	}

	target := filepath.Join(s.root, filepath.FromSlash(name))
	if err := s.contains(target); err != nil {
		return Asset{}, err
	}

	// the target may be a symlink pointing out of the root
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if err := s.contains(resolved); err != nil {
		return Asset{}, err
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}

	return s.read(resolved, target)
}

// read loads path and types it after name.
func (s *AssetStore) read(path, name string) (Asset, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrAssetNotFound, err)
	}

	return Asset{
		Content:  content,
		MimeType: s.types.TypeFor(name),
	}, nil
}

// contains reports an error unless path lies strictly below the root.
func (s *AssetStore) contains(path string) error {
	prefix := strings.TrimSuffix(s.root, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(filepath.Clean(path), prefix) {
		return fmt.Errorf("%w: %w", ErrAssetNotFound, ErrOutsideRoot)
	}
	return nil
}
