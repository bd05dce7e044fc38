package cmd

import (
	"github.com/jaimeyzzz/qiwurun/internal/config"
	"github.com/jaimeyzzz/qiwurun/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Invoking the binary with no subcommand
// starts the interactive launch flow.
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	runCmd := NewRunCmd(cfg, log)

	cmd := &cobra.Command{
		Use:           "qiwurun",
		Short:         "Qiwu simulation experiment launcher",
		Long:          `Locates the compiled qiwu-example executable, lists the YAML experiment configurations under resources/exps, and runs the simulation with the selected one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			ui.InitColors()
			if cfg.Logging.Color == "never" {
				ui.DisableColors()
			}
		},
		RunE: runCmd.RunE,
	}

	// Bare invocation shares the run command's flags
	cmd.Flags().AddFlagSet(runCmd.Flags())

	// Add subcommands
	cmd.AddCommand(runCmd)
	cmd.AddCommand(NewListCmd(cfg, log))
	cmd.AddCommand(NewHistoryCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd())
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}
