package config

import "errors"

// Validation errors returned by [Resolve] when the merged configuration
// cannot be used to start the server.
var (
	// ErrIncomplete indicates a required field is still empty after all
	// layers were merged.
	ErrIncomplete = errors.New("incomplete configuration")
	// ErrInvalidStaticPath indicates the static route name contains a path
	// separator or a route pattern character.
	ErrInvalidStaticPath = errors.New("static path must not contain a path separator or any of '{', '}', '*'")
	// ErrInvalidHost indicates the bind address is not an IP address.
	ErrInvalidHost = errors.New("host must be an IP address or localhost")
)
