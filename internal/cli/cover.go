package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/coverspec"
	"github.com/piwi3910/printcore/internal/pdfsurface"
)

func newCoverCmd() *cobra.Command {
	var (
		interiorType, coverType     string
		interiorWeight, coverWeight float64
		interiorPages               int
		trimWidthIn, trimHeightIn   float64
		bleedIn                     float64
		outputDir, outputLabel      string
	)

	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Compute spine geometry and emit a two-page cover template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			in := coverspec.Input{
				InteriorType:   interiorType,
				InteriorWeight: interiorWeight,
				CoverType:      coverType,
				CoverWeight:    coverWeight,
				InteriorPages:  interiorPages,
				TrimWidthIn:    trimWidthIn,
				TrimHeightIn:   trimHeightIn,
				BleedIn:        bleedIn,
			}

			out, err := coverspec.Compute(cat, in)
			if err != nil {
				return err
			}
			for _, w := range out.Warnings {
				slog.Warn("cover template warning", "warning", w)
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			surface := pdfsurface.New(outputDir)
			if err := surface.StartDocument(cmd.Context(), outputLabel); err != nil {
				return err
			}
			if err := coverspec.RenderTemplate(cmd.Context(), surface, in, out); err != nil {
				return err
			}
			path, size, err := surface.FinishDocument(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("cover template written", "path", path, "bytes", size, "spine_in", out.SpineWidthIn)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&interiorType, "interior-type", "", "interior paper type key")
	f.Float64Var(&interiorWeight, "interior-weight", 0, "interior paper weight")
	f.StringVar(&coverType, "cover-type", "", "cover paper type key")
	f.Float64Var(&coverWeight, "cover-weight", 0, "cover paper weight")
	f.IntVar(&interiorPages, "interior-pages", 0, "interior page count")
	f.Float64Var(&trimWidthIn, "trim-width-in", 0, "finished trim width in inches")
	f.Float64Var(&trimHeightIn, "trim-height-in", 0, "finished trim height in inches")
	f.Float64Var(&bleedIn, "bleed-in", 0.125, "bleed in inches")
	f.StringVar(&outputDir, "output-dir", ".", "output directory")
	f.StringVar(&outputLabel, "output-label", "cover-template", "base filename for the rendered template")

	return cmd
}
