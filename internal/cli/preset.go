package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/printcore/internal/catalog"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage saved imposition and cost-job presets",
	}
	cmd.AddCommand(newPresetListCmd())
	return cmd
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := catalog.DefaultPresetPath()
			if err != nil {
				return fmt.Errorf("resolving preset path: %w", err)
			}
			store, err := catalog.LoadPresets(path)
			if err != nil {
				return fmt.Errorf("loading presets: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(store)
		},
	}
}
