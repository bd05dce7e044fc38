package launcher

import "errors"

// Terminal failure conditions of the launch flow. None of them trigger a
// retry; each maps to a distinct console message.
var (
	// ErrExecutableNotFound means no build candidate path exists.
	ErrExecutableNotFound = errors.New("simulation executable not found")

	// ErrResourcesDirMissing means resources/exps does not exist.
	ErrResourcesDirMissing = errors.New("experiment config directory not found")

	// ErrNoConfigsFound means the scan found zero configuration files.
	ErrNoConfigsFound = errors.New("no experiment configuration files found")
)
