package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jaimeyzzz/qiwurun/internal/config"
	"github.com/jaimeyzzz/qiwurun/internal/helpers"
	"github.com/jaimeyzzz/qiwurun/internal/history"
	"github.com/jaimeyzzz/qiwurun/internal/launcher"
	"github.com/jaimeyzzz/qiwurun/internal/paths"
	"github.com/jaimeyzzz/qiwurun/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type runOptions struct {
	projectRoot string
	picker      bool
	selectIndex int
	pause       bool
}

// NewRunCmd creates the run command (also the default action of the root)
func NewRunCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pick and run an experiment configuration",
		Long:  `Resolves the simulation executable, lists available YAML experiment configurations, prompts for one, and runs the simulation with it.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("pause") {
				opts.pause = cfg.Launcher.PauseOnExit
			}
			return runLaunch(cmd, cfg, log, opts)
		},
	}

	cmd.Flags().StringVar(&opts.projectRoot, "config-root", "", "project root containing build/ and resources/ (default from config)")
	cmd.Flags().BoolVar(&opts.picker, "picker", false, "use the interactive fuzzy picker instead of the numbered menu")
	cmd.Flags().IntVar(&opts.selectIndex, "select", 0, "select entry N without prompting (1-based)")
	cmd.Flags().BoolVar(&opts.pause, "pause", false, "wait for Enter before exiting")

	return cmd
}

func runLaunch(cmd *cobra.Command, cfg *config.Config, log *zerolog.Logger, opts runOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	fsys := afero.NewOsFs()

	resolver := paths.NewResolver(cfg)
	if opts.projectRoot != "" {
		resolver = paths.NewResolverWithRoot(cfg, opts.projectRoot)
	}

	ui.PrintHeader("Qiwu Examples Runner")

	// Resolve the executable
	candidates := resolver.ExecutableCandidates(cfg.Launcher.Executable)
	executable, err := launcher.ResolveExecutable(fsys, candidates)
	if err != nil {
		ui.PrintError("executable not found, make sure the project is compiled")
		fmt.Fprintln(cmd.OutOrStdout(), "Expected locations:")
		ui.PrintList(candidates)
		return &ExitError{Code: 1}
	}
	log.Debug().Str("executable", executable).Msg("resolved executable")

	// Discover configurations
	configs, err := launcher.DiscoverConfigs(fsys, resolver.ResourcesDir())
	if err != nil {
		if errors.Is(err, launcher.ErrResourcesDirMissing) {
			ui.PrintError("YAML config directory not found: %s", resolver.ExperimentsDir())
			return &ExitError{Code: 1}
		}
		return fmt.Errorf("discover configs: %w", err)
	}
	if len(configs) == 0 {
		ui.PrintError("no YAML configuration files found under %s", resolver.ExperimentsDir())
		return &ExitError{Code: 1}
	}
	log.Debug().Int("count", len(configs)).Msg("discovered configurations")

	// Select one
	index, err := selectConfig(cmd, configs, opts)
	if err != nil {
		if errors.Is(err, ui.ErrMenuQuit) {
			ui.PrintInfo("Program exit")
			return nil
		}
		return err
	}
	entry := configs[index]

	// Run it
	fmt.Fprintln(cmd.OutOrStdout())
	ui.PrintKeyValue("Running", entry.Name)
	ui.PrintKeyValue("Using executable", executable)
	ui.PrintKeyValue("Configuration file", entry.RelPath)
	ui.PrintSeparator()
	fmt.Fprintf(cmd.OutOrStdout(), "Executing: %s %s\n", executable, entry.RelPath)

	runner := launcher.NewRunner(helpers.NewOSCommandRunner(), os.Stdout, os.Stderr)
	result := runner.RunExperiment(ctx, executable, resolver.ProjectRoot(), entry)

	recordRun(ctx, log, resolver, executable, entry, result)

	var runErr error
	switch result.Status {
	case launcher.StatusSuccess:
		fmt.Fprintln(cmd.OutOrStdout())
		ui.PrintSuccess("Experiment completed successfully")
	case launcher.StatusChildFailed:
		fmt.Fprintln(cmd.OutOrStdout())
		if result.ExitCode >= 0 {
			ui.PrintError("experiment failed with exit code %d", result.ExitCode)
			runErr = &ExitError{Code: result.ExitCode}
		} else {
			// Signal death: there is no child exit code to forward.
			ui.PrintError("experiment terminated abnormally: %v", result.Err)
			runErr = &ExitError{Code: 1}
		}
	case launcher.StatusSpawnFailed:
		fmt.Fprintln(cmd.OutOrStdout())
		if launcher.IsExecutableMissing(result.Err) {
			ui.PrintError("could not find executable at %s", executable)
		} else {
			ui.PrintError("could not start executable: %v", result.Err)
		}
		runErr = &ExitError{Code: 1}
	}

	if opts.pause {
		ui.WaitForEnter(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return runErr
}

// selectConfig picks one entry by flag, fuzzy picker, or numbered menu.
func selectConfig(cmd *cobra.Command, configs []launcher.ConfigEntry, opts runOptions) (int, error) {
	if opts.selectIndex != 0 {
		if opts.selectIndex < 1 || opts.selectIndex > len(configs) {
			ui.PrintError("--select must be between 1 and %d", len(configs))
			return -1, &ExitError{Code: 1}
		}
		return opts.selectIndex - 1, nil
	}

	if opts.picker {
		labels := make([]string, len(configs))
		for i, c := range configs {
			labels[i] = fmt.Sprintf("%s (%s)", c.Name, c.RelPath)
		}
		index, _, err := ui.SelectPrompt("Select configuration file", labels)
		return index, err
	}

	items := make([]string, len(configs))
	for i, c := range configs {
		items[i] = c.Name
	}
	return ui.PromptMenuSelection(cmd.InOrStdin(), cmd.OutOrStdout(), "Available configuration files", items)
}

// recordRun appends the outcome to the local history database. Failures are
// logged as warnings and never fail the run itself.
func recordRun(ctx context.Context, log *zerolog.Logger, resolver *paths.Resolver, executable string, entry launcher.ConfigEntry, result launcher.RunResult) {
	store, err := history.Open(ctx, resolver.DBFile())
	if err != nil {
		log.Warn().Err(err).Msg("history database unavailable")
		return
	}
	defer store.Close()

	run := &history.Run{
		ConfigName: entry.Name,
		ConfigPath: entry.RelPath,
		Executable: executable,
		StartedAt:  result.StartedAt,
		DurationMS: result.Duration.Milliseconds(),
		ExitCode:   result.ExitCode,
		Status:     string(result.Status),
	}
	if err := store.Record(ctx, run); err != nil {
		log.Warn().Err(err).Msg("failed to record run history")
		return
	}
	log.Debug().Str("run_id", run.RunID).Str("status", run.Status).Msg("run recorded")
}
