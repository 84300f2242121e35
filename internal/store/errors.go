package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the content stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAssetNotFound is returned when a requested static asset does not
	// exist, is a directory, or resolves outside the content root.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrOutsideRoot is wrapped into [ErrAssetNotFound] when the requested
	// name escapes the content root.
	ErrOutsideRoot = errors.New("path is outside the content root")
)

// PathError reports a path that violates a structural requirement, e.g. an
// html path pointing at a directory.
type PathError struct {
	Path string
	Text string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("error with path %q: %s", e.Path, e.Text)
}
