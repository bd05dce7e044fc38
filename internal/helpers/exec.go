package helpers

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync"
)

// CommandRunner defines an interface for executing system commands
// This allows for mocking in tests and dependency injection
type CommandRunner interface {
	// CommandExists checks if a command is runnable. Names containing a
	// path separator are checked directly for execute permission.
	CommandExists(name string) bool

	// RunCommandInDirStreaming executes a command in a specific directory,
	// streaming output to the provided writers
	RunCommandInDirStreaming(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error

	// ProcessExited reports whether the error came from a process that
	// actually ran and exited, as opposed to one that never started
	ProcessExited(err error) bool

	// GetExitCode extracts the exit code from a command error
	GetExitCode(err error) int
}

// OSCommandRunner is the default implementation using os/exec
type OSCommandRunner struct {
	commandCache sync.Map // map[string]bool
}

// NewOSCommandRunner creates a new OSCommandRunner instance
func NewOSCommandRunner() *OSCommandRunner {
	return &OSCommandRunner{}
}

// CommandExists checks if a command is runnable
func (r *OSCommandRunner) CommandExists(name string) bool {
	if cached, ok := r.commandCache.Load(name); ok {
		if exists, ok := cached.(bool); ok {
			return exists
		}
		r.commandCache.Delete(name)
	}

	_, err := exec.LookPath(name)
	exists := err == nil
	r.commandCache.Store(name, exists)
	return exists
}

// RunCommandInDirStreaming executes a command in a specific directory with streaming output
// Pass nil for stdout/stderr to discard output
// SECURITY: Uses exec.CommandContext with separate arguments to prevent command injection
func (r *OSCommandRunner) RunCommandInDirStreaming(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	if stdout != nil {
		cmd.Stdout = stdout
	}
	if stderr != nil {
		cmd.Stderr = stderr
	}

	return cmd.Run()
}

// ProcessExited reports whether the error came from a process that ran and
// exited (including a signal death), as opposed to one that never started
func (r *OSCommandRunner) ProcessExited(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// GetExitCode extracts the exit code from a command error. Returns -1 for
// signal deaths and for processes that never started.
func (r *OSCommandRunner) GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return -1
}
