package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/costestimate"
	"github.com/piwi3910/printcore/internal/xlsxreport"
)

func newEstimateCmd() *cobra.Command {
	var (
		quantity                   int
		finishedWidthIn, finishedHeightIn float64
		bwPages                    int
		bwPaperSku                 string
		colorPages                 int
		colorPaperSku              string
		hasCover                   bool
		coverPaperSku              string
		coverPrintColor            string
		coverPrintsBothSides       bool
		lamination                 string
		binding                    string
		laborRatePerHour           float64
		markupPercent              float64
		spoilagePercent            float64
		calculateShipping          bool
		overrideShippingBox        string
		xlsxOut                    string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of a print job",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			spec := costestimate.JobSpec{
				Quantity:             quantity,
				FinishedWidthIn:      finishedWidthIn,
				FinishedHeightIn:     finishedHeightIn,
				BWPages:              bwPages,
				BWPaperSku:           bwPaperSku,
				ColorPages:           colorPages,
				ColorPaperSku:        colorPaperSku,
				HasCover:             hasCover,
				CoverPaperSku:        coverPaperSku,
				CoverPrintColor:      costestimate.PrintColor(coverPrintColor),
				CoverPrintsBothSides: coverPrintsBothSides,
				Lamination:           costestimate.Lamination(lamination),
				Binding:              costestimate.Binding(binding),
				LaborRatePerHour:     laborRatePerHour,
				MarkupPercent:        markupPercent,
				SpoilagePercent:      spoilagePercent,
				CalculateShipping:    calculateShipping,
				OverrideShippingBox:  overrideShippingBox,
			}

			breakdown := costestimate.Estimate(spec, cat)

			if xlsxOut != "" {
				if err := xlsxreport.WriteBreakdown(xlsxOut, breakdown); err != nil {
					return fmt.Errorf("writing xlsx report: %w", err)
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(breakdown)
		},
	}

	f := cmd.Flags()
	f.IntVar(&quantity, "quantity", 1, "job quantity")
	f.Float64Var(&finishedWidthIn, "finished-width-in", 0, "finished trim width in inches")
	f.Float64Var(&finishedHeightIn, "finished-height-in", 0, "finished trim height in inches")
	f.IntVar(&bwPages, "bw-pages", 0, "black-and-white interior page count")
	f.StringVar(&bwPaperSku, "bw-paper-sku", "", "black-and-white interior paper SKU")
	f.IntVar(&colorPages, "color-pages", 0, "color interior page count")
	f.StringVar(&colorPaperSku, "color-paper-sku", "", "color interior paper SKU")
	f.BoolVar(&hasCover, "has-cover", false, "job includes a cover")
	f.StringVar(&coverPaperSku, "cover-paper-sku", "", "cover paper SKU")
	f.StringVar(&coverPrintColor, "cover-print-color", "bw", "bw|color")
	f.BoolVar(&coverPrintsBothSides, "cover-prints-both-sides", false, "print both sides of the cover")
	f.StringVar(&lamination, "lamination", "none", "none|gloss|matte")
	f.StringVar(&binding, "binding", "none", "perfect_bound|saddle_stitch|none")
	f.Float64Var(&laborRatePerHour, "labor-rate-per-hour", 0, "labor rate in dollars per hour")
	f.Float64Var(&markupPercent, "markup-percent", 0, "markup percent")
	f.Float64Var(&spoilagePercent, "spoilage-percent", 0, "spoilage percent")
	f.BoolVar(&calculateShipping, "calculate-shipping", false, "include a shipping estimate")
	f.StringVar(&overrideShippingBox, "override-shipping-box", "", "force a specific shipping box by name")
	f.StringVar(&xlsxOut, "xlsx-out", "", "also write the breakdown as an XLSX workbook to this path")

	return cmd
}
