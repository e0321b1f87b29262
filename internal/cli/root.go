// Package cli implements the printcore command-line surface: impose,
// cover, and estimate subcommands over the internal/imposition,
// internal/coverspec, and internal/costestimate engines. Structured via
// github.com/spf13/cobra with log/slog logging and github.com/joho/godotenv
// configuration loading, grounded on cataloger's cmd/root.go.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the printcore root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "printcore",
		Short: "Imposition, cover-template, and cost-estimation core for print production",
		Long: `printcore imposes page-stream PDFs onto press sheets, builds perfect-bound
cover templates, and estimates print job costs from a paper and shipping
catalog.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			return nil
		},
	}

	cmd.AddCommand(newImposeCmd())
	cmd.AddCommand(newCoverCmd())
	cmd.AddCommand(newEstimateCmd())
	cmd.AddCommand(newPresetCmd())

	return cmd
}
