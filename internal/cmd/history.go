package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jaimeyzzz/qiwurun/internal/config"
	"github.com/jaimeyzzz/qiwurun/internal/history"
	"github.com/jaimeyzzz/qiwurun/internal/launcher"
	"github.com/jaimeyzzz/qiwurun/internal/paths"
	"github.com/jaimeyzzz/qiwurun/internal/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded experiment runs",
		Long:  `List past experiment runs recorded in the local history database, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			resolver := paths.NewResolver(cfg)

			store, err := history.Open(ctx, resolver.DBFile())
			if err != nil {
				ui.PrintError("failed to open history database: %v", err)
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.List(ctx, limit)
			if err != nil {
				ui.PrintError("failed to list runs: %v", err)
				return fmt.Errorf("list runs: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			if len(runs) == 0 {
				ui.PrintInfo("No experiment runs recorded")
				return nil
			}

			ui.PrintHeader("Experiment Run History")
			fmt.Fprintf(cmd.OutOrStdout(), "Showing %d run(s)\n\n", len(runs))

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Started", "Config", "Status", "Exit", "Duration"}),
				tablewriter.WithAlignment(tw.MakeAlign(5, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for _, run := range runs {
				table.Append(
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.ConfigName,
					colorizeStatus(run.Status),
					fmt.Sprintf("%d", run.ExitCode),
					(time.Duration(run.DurationMS) * time.Millisecond).String(),
				)
			}

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show (0 = all)")

	return cmd
}

func colorizeStatus(status string) string {
	switch launcher.RunStatus(status) {
	case launcher.StatusSuccess:
		return ui.Success.Sprint(status)
	case launcher.StatusChildFailed, launcher.StatusSpawnFailed:
		return ui.Error.Sprint(status)
	default:
		return status
	}
}
