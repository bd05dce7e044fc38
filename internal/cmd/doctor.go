package cmd

import (
	"errors"
	"fmt"

	"github.com/jaimeyzzz/qiwurun/internal/config"
	"github.com/jaimeyzzz/qiwurun/internal/fsops"
	"github.com/jaimeyzzz/qiwurun/internal/helpers"
	"github.com/jaimeyzzz/qiwurun/internal/history"
	"github.com/jaimeyzzz/qiwurun/internal/launcher"
	"github.com/jaimeyzzz/qiwurun/internal/paths"
	"github.com/jaimeyzzz/qiwurun/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var projectRoot string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check project layout and launcher health",
		Long:  `Check that the simulation executable, experiment configurations, and launcher data files are where they should be.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			fsys := afero.NewOsFs()
			runner := helpers.NewOSCommandRunner()

			resolver := paths.NewResolver(cfg)
			if projectRoot != "" {
				resolver = paths.NewResolverWithRoot(cfg, projectRoot)
			}

			ui.PrintHeader("Launcher Diagnostics")
			fmt.Fprintln(cmd.OutOrStdout())

			var issues []string

			// 1. Executable candidates
			ui.PrintSubheader("Simulation Executable")
			candidates := resolver.ExecutableCandidates(cfg.Launcher.Executable)
			resolved, err := launcher.ResolveExecutable(fsys, candidates)
			for _, candidate := range candidates {
				if fsops.IsFile(fsys, candidate) {
					ui.PrintSuccess("%s", candidate)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", ui.CrossMark, candidate)
				}
			}
			if err != nil {
				issues = append(issues, "simulation executable not found, compile the project first")
			} else if !runner.CommandExists(resolved) {
				ui.PrintError("resolved executable is not runnable: %s", resolved)
				issues = append(issues, fmt.Sprintf("executable lacks execute permission: %s", resolved))
			} else {
				ui.PrintInfo("resolved: %s", resolved)
			}

			fmt.Fprintln(cmd.OutOrStdout())

			// 2. Experiment configurations
			ui.PrintSubheader("Experiment Configurations")
			configs, err := launcher.DiscoverConfigs(fsys, resolver.ResourcesDir())
			switch {
			case errors.Is(err, launcher.ErrResourcesDirMissing):
				ui.PrintError("config directory missing: %s", resolver.ExperimentsDir())
				issues = append(issues, fmt.Sprintf("config directory missing: %s", resolver.ExperimentsDir()))
			case err != nil:
				return fmt.Errorf("discover configs: %w", err)
			case len(configs) == 0:
				ui.PrintWarning("no configuration files under %s", resolver.ExperimentsDir())
				issues = append(issues, "no experiment configuration files found")
			default:
				ui.PrintSuccess("%d configuration file(s) under %s", len(configs), resolver.ExperimentsDir())
			}

			fmt.Fprintln(cmd.OutOrStdout())

			// 3. Launcher data
			ui.PrintSubheader("Launcher Data")
			if err := fsops.EnsureDir(fsys, resolver.DataDir(), 0755); err != nil {
				ui.PrintError("data directory not accessible: %s", resolver.DataDir())
				issues = append(issues, fmt.Sprintf("data directory not accessible: %s", resolver.DataDir()))
			} else if err := fsops.CheckWritable(fsys, resolver.DataDir()); err != nil {
				ui.PrintError("data directory not writable: %s", resolver.DataDir())
				issues = append(issues, fmt.Sprintf("data directory not writable: %s", resolver.DataDir()))
			} else {
				ui.PrintSuccess("data directory: %s", resolver.DataDir())
			}

			if store, err := history.Open(ctx, resolver.DBFile()); err != nil {
				ui.PrintError("history database: %v", err)
				issues = append(issues, fmt.Sprintf("history database unusable: %s", resolver.DBFile()))
			} else {
				store.Close()
				ui.PrintSuccess("history database: %s", resolver.DBFile())
			}

			fmt.Fprintln(cmd.OutOrStdout())

			if len(issues) > 0 {
				ui.PrintWarning("%d issue(s) found:", len(issues))
				ui.PrintList(issues)
				return &ExitError{Code: 1}
			}

			ui.PrintSuccess("All checks passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "config-root", "", "project root containing build/ and resources/ (default from config)")

	return cmd
}
