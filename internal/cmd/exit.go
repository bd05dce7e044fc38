package cmd

import (
	"errors"
	"fmt"
)

// ExitError carries a specific process exit code up to main. It is how a
// nonzero simulation exit propagates as the launcher's own exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// AsExitError reports whether err wraps an ExitError, storing it in target.
func AsExitError(err error, target **ExitError) bool {
	return errors.As(err, target)
}
