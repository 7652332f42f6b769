package app

import "errors"

// Sentinel kinds for registry and dispatch errors.
var (
	// ErrEntrypointNotFound reports a dispatch against an unregistered key.
	ErrEntrypointNotFound = errors.New("entrypoint not found")

	// ErrConfiguration reports an invalid registration (duplicate key, nil
	// handler, negative price). Fatal at startup.
	ErrConfiguration = errors.New("invalid entrypoint configuration")
)
