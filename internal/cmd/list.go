package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaimeyzzz/qiwurun/internal/config"
	"github.com/jaimeyzzz/qiwurun/internal/launcher"
	"github.com/jaimeyzzz/qiwurun/internal/paths"
	"github.com/jaimeyzzz/qiwurun/internal/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput  bool
		projectRoot string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available experiment configurations",
		Long:  `List the YAML experiment configuration files discovered under resources/exps.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fsys := afero.NewOsFs()

			resolver := paths.NewResolver(cfg)
			if projectRoot != "" {
				resolver = paths.NewResolverWithRoot(cfg, projectRoot)
			}

			configs, err := launcher.DiscoverConfigs(fsys, resolver.ResourcesDir())
			if err != nil {
				if errors.Is(err, launcher.ErrResourcesDirMissing) {
					ui.PrintWarning("config directory not found: %s", resolver.ExperimentsDir())
					// Keep --json output shape stable: an empty array, not null.
					configs = []launcher.ConfigEntry{}
				} else {
					return fmt.Errorf("discover configs: %w", err)
				}
			}
			log.Debug().Int("count", len(configs)).Msg("discovered configurations")

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(configs)
			}

			if len(configs) == 0 {
				ui.PrintInfo("No configuration files found")
				return nil
			}

			ui.PrintHeader("Experiment Configurations")
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n\n", len(configs))

			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"#", "Name", "Path"}),
				tablewriter.WithAlignment(tw.MakeAlign(3, tw.AlignLeft)),
				tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
			)

			for i, entry := range configs {
				table.Append(fmt.Sprintf("%d", i+1), entry.Name, entry.RelPath)
			}

			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().StringVar(&projectRoot, "config-root", "", "project root containing resources/ (default from config)")

	return cmd
}
