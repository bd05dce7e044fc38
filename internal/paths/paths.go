// Package paths centralizes the filesystem layout of a qiwu project checkout
// and of qiwurun's own data files.
package paths

import (
	"os"
	"path/filepath"

	"github.com/jaimeyzzz/qiwurun/internal/config"
)

// ExperimentsSubdir is the directory under resources/ scanned for experiment
// configuration files.
const ExperimentsSubdir = "exps"

// Resolver computes project-relative and data paths from the configuration.
type Resolver struct {
	projectRoot string
	cfg         *config.Config
}

// NewResolver creates a Resolver rooted at the configured project root.
func NewResolver(cfg *config.Config) *Resolver {
	root := "."
	if cfg != nil && cfg.Paths.ProjectRoot != "" {
		root = cfg.Paths.ProjectRoot
	}
	return NewResolverWithRoot(cfg, root)
}

// NewResolverWithRoot creates a Resolver with an explicit project root,
// overriding the configured one. Useful for the --config-root flag and tests.
func NewResolverWithRoot(cfg *config.Config, root string) *Resolver {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Resolver{
		projectRoot: root,
		cfg:         cfg,
	}
}

// ProjectRoot returns the absolute project root directory.
func (r *Resolver) ProjectRoot() string {
	return r.projectRoot
}

// BuildDir returns <root>/build.
func (r *Resolver) BuildDir() string {
	return filepath.Join(r.projectRoot, "build")
}

// ResourcesDir returns <root>/resources.
func (r *Resolver) ResourcesDir() string {
	return filepath.Join(r.projectRoot, "resources")
}

// ExperimentsDir returns <root>/resources/exps.
func (r *Resolver) ExperimentsDir() string {
	return filepath.Join(r.ResourcesDir(), ExperimentsSubdir)
}

// ExecutableCandidates returns the expected output locations of the compiled
// simulation executable, ordered by priority. The first existing one wins.
func (r *Resolver) ExecutableCandidates(name string) []string {
	build := r.BuildDir()
	return []string{
		filepath.Join(build, "bin", "Release", name+".exe"),        // Windows Release
		filepath.Join(build, "bin", "RelWithDebInfo", name+".exe"), // Windows RelWithDebInfo
		filepath.Join(build, "bin", name),                          // Linux/macOS
		filepath.Join(build, name),                                 // Alternative path
	}
}

// DataDir returns the qiwurun data directory.
func (r *Resolver) DataDir() string {
	if r.cfg != nil && r.cfg.Paths.DataDir != "" {
		return r.cfg.Paths.DataDir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "qiwurun")
}

// DBFile returns the path of the run-history database.
func (r *Resolver) DBFile() string {
	if r.cfg != nil && r.cfg.Paths.DBFile != "" {
		return r.cfg.Paths.DBFile
	}
	return filepath.Join(r.DataDir(), "history.db")
}

// LogFile returns the path of the launcher log file.
func (r *Resolver) LogFile() string {
	if r.cfg != nil && r.cfg.Paths.LogFile != "" {
		return r.cfg.Paths.LogFile
	}
	return filepath.Join(r.DataDir(), "qiwurun.log")
}
