package helpers

import (
	"context"
	"io"
)

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	CommandExistsFunc            func(name string) bool
	RunCommandInDirStreamingFunc func(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error
	ProcessExitedFunc            func(err error) bool
	GetExitCodeFunc              func(err error) int
}

// CommandExists implements CommandRunner.CommandExists
func (m *MockCommandRunner) CommandExists(name string) bool {
	if m.CommandExistsFunc != nil {
		return m.CommandExistsFunc(name)
	}
	return false
}

// RunCommandInDirStreaming implements CommandRunner.RunCommandInDirStreaming
func (m *MockCommandRunner) RunCommandInDirStreaming(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) error {
	if m.RunCommandInDirStreamingFunc != nil {
		return m.RunCommandInDirStreamingFunc(ctx, dir, stdout, stderr, name, args...)
	}
	return nil
}

// ProcessExited implements CommandRunner.ProcessExited
func (m *MockCommandRunner) ProcessExited(err error) bool {
	if m.ProcessExitedFunc != nil {
		return m.ProcessExitedFunc(err)
	}
	return false
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	return 0
}
