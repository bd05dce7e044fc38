package launcher

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"time"

	"github.com/jaimeyzzz/qiwurun/internal/helpers"
)

// RunStatus classifies the outcome of one experiment run.
type RunStatus string

const (
	// StatusSuccess: the simulation exited with code 0.
	StatusSuccess RunStatus = "success"
	// StatusChildFailed: the simulation ran but exited nonzero or was
	// killed by a signal.
	StatusChildFailed RunStatus = "failed"
	// StatusSpawnFailed: the process could not be started at all, e.g. the
	// executable vanished between resolution and spawn.
	StatusSpawnFailed RunStatus = "spawn-failed"
)

// RunResult reports how an experiment run ended.
type RunResult struct {
	Status RunStatus
	// ExitCode is the child's exit status, or -1 when it was killed by a
	// signal or never started.
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
	// Err holds the underlying cause for StatusSpawnFailed and for abnormal
	// child termination.
	Err error
}

// Runner spawns the simulation executable for a selected configuration.
type Runner struct {
	runner helpers.CommandRunner
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner that streams child output to the given writers.
func NewRunner(runner helpers.CommandRunner, stdout, stderr io.Writer) *Runner {
	return &Runner{
		runner: runner,
		stdout: stdout,
		stderr: stderr,
	}
}

// RunExperiment runs the executable with the entry's resources-relative path
// as its single argument. The child's working directory is projectRoot; the
// launcher process itself never changes directory. The wait is synchronous and
// has no timeout: once started, the simulation cannot be aborted from here.
func (r *Runner) RunExperiment(ctx context.Context, executable, projectRoot string, entry ConfigEntry) RunResult {
	result := RunResult{StartedAt: time.Now()}

	err := r.runner.RunCommandInDirStreaming(ctx, projectRoot, r.stdout, r.stderr, executable, entry.RelPath)
	result.Duration = time.Since(result.StartedAt)

	if err == nil {
		result.Status = StatusSuccess
		return result
	}

	if r.runner.ProcessExited(err) {
		// The simulation ran and exited nonzero or was killed by a signal.
		// Either way this is a child failure, not a spawn failure.
		result.Status = StatusChildFailed
		result.ExitCode = r.runner.GetExitCode(err)
		result.Err = err
		return result
	}

	// Not an exit status: the process never ran. Keep the missing-executable
	// race distinguishable from a generic start failure via result.Err.
	result.Status = StatusSpawnFailed
	result.ExitCode = -1
	result.Err = err
	return result
}

// IsExecutableMissing reports whether a spawn failure was caused by the
// executable disappearing between resolution and spawn.
func IsExecutableMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, exec.ErrNotFound)
}
