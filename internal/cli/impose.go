package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geom"
	"github.com/piwi3910/printcore/internal/imposition"
	"github.com/piwi3910/printcore/internal/pdfsurface"
	"github.com/piwi3910/printcore/internal/qrlabel"
)

// fixedSizePageSource is a minimal imposition.PageSource for inputs whose
// page count and uniform page size are already known (e.g. from the
// caller's own document metadata). Real PDF parsing is out of scope per
// spec.md §1; production callers supply their own PageSource adapter.
type fixedSizePageSource struct {
	pages        int
	widthPt      float64
	heightPt     float64
}

func (f fixedSizePageSource) PageCount(ctx context.Context) (int, error) { return f.pages, nil }

func (f fixedSizePageSource) PageSizePt(ctx context.Context, page imposition.PageHandle) (float64, float64, error) {
	return f.widthPt, f.heightPt, nil
}

func newImposeCmd() *cobra.Command {
	var (
		sheetName          string
		columns, rows      int
		bleedIn            float64
		hGutterIn, vGutterIn float64
		impositionType     string
		orientation        string
		duplex             bool
		readingDirection   string
		rowOffset          string
		alternateRotation  string
		creepIn            float64
		includeSlug        bool
		showSpineMarks     bool
		slipColor          string
		pageCount          int
		pageWidthIn        float64
		pageHeightIn       float64
		inputByteSize      int64
		outputDir          string
		outputLabel        string
		jobID, customer, contact, filename string
		quantity int
	)

	cmd := &cobra.Command{
		Use:   "impose",
		Short: "Impose a page-stream input onto press sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			sheet, err := cat.PressSheet(sheetName)
			if err != nil {
				return err
			}

			spec := imposition.Spec{
				SelectedSheet:       sheet,
				Columns:             columns,
				Rows:                rows,
				BleedIn:             bleedIn,
				HorizontalGutterIn:  hGutterIn,
				VerticalGutterIn:    vGutterIn,
				Type:                imposition.Type(impositionType),
				Orientation:         geom.Orientation(orientation),
				Duplex:              duplex,
				ReadingDirection:    imposition.ReadingDirection(readingDirection),
				RowOffset:           imposition.RowOffset(rowOffset),
				AlternateRotation:   imposition.AlternateRotation(alternateRotation),
				CreepIn:             creepIn,
				IncludeSlug:         includeSlug,
				ShowSpineMarks:      showSpineMarks,
				FirstSheetSlipColor: imposition.SlipColor(slipColor),
			}

			slug := imposition.JobSlug{
				JobID: jobID, Customer: customer, Contact: contact, Filename: filename,
				Quantity: quantity, DueDate: time.Now(),
				TrimWidthIn:  pageWidthIn,
				TrimHeightIn: pageHeightIn,
			}

			input := imposition.InputDocument{
				Source:   fixedSizePageSource{pages: pageCount, widthPt: geom.InchesToPoints(pageWidthIn), heightPt: geom.InchesToPoints(pageHeightIn)},
				ByteSize: inputByteSize,
				Filename: filename,
			}

			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
			surface := pdfsurface.New(outputDir)
			qr := qrlabel.NewGenerator()

			opts := imposition.RunOptions{
				QR:          qr,
				OutputLabel: outputLabel,
				OnProgress: func(ev imposition.ProgressEvent) {
					slog.Info("imposition progress", "chunk", ev.ChunkIndex, "sheet", ev.SheetIndex, "total_sheets", ev.TotalSheets)
				},
			}

			out, err := imposition.Run(cmd.Context(), input, spec, slug, surface, opts)
			if err != nil {
				return err
			}

			for _, w := range out.Plan.Warnings {
				slog.Warn("imposition plan warning", "detail", w)
			}
			for _, w := range out.Pagination.Warnings {
				slog.Warn("imposition pagination warning", "detail", w)
			}
			slog.Info("imposition complete", "total_sheets", out.TotalSheets, "chunks", len(out.Chunks), "orientation", out.Plan.Orientation)
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out.Pagination)
		},
	}

	f := cmd.Flags()
	f.StringVar(&sheetName, "sheet", "", "press sheet name from the catalog")
	f.IntVar(&columns, "columns", 1, "grid columns")
	f.IntVar(&rows, "rows", 1, "grid rows")
	f.Float64Var(&bleedIn, "bleed-in", 0, "bleed in inches")
	f.Float64Var(&hGutterIn, "h-gutter-in", 0, "horizontal gutter in inches")
	f.Float64Var(&vGutterIn, "v-gutter-in", 0, "vertical gutter in inches")
	f.StringVar(&impositionType, "type", "stack", "stack|repeat|collate_cut|booklet")
	f.StringVar(&orientation, "orientation", "auto", "auto|portrait|landscape")
	f.BoolVar(&duplex, "duplex", false, "print both sides")
	f.StringVar(&readingDirection, "reading-direction", "ltr", "ltr|rtl")
	f.StringVar(&rowOffset, "row-offset", "none", "none|half")
	f.StringVar(&alternateRotation, "alternate-rotation", "none", "none|alternate_columns|alternate_rows")
	f.Float64Var(&creepIn, "creep-in", 0, "total booklet creep in inches")
	f.BoolVar(&includeSlug, "include-slug", true, "draw the job slug strip")
	f.BoolVar(&showSpineMarks, "show-spine-marks", false, "draw spine indicators on first/last sheets")
	f.StringVar(&slipColor, "first-sheet-slip-color", "None", "Grey|Yellow|Green|Pink|Blue|None")
	f.IntVar(&pageCount, "page-count", 1, "input page count")
	f.Float64Var(&pageWidthIn, "page-width-in", 8.5, "uniform input page width in inches")
	f.Float64Var(&pageHeightIn, "page-height-in", 11, "uniform input page height in inches")
	f.Int64Var(&inputByteSize, "input-bytes", 0, "input file size in bytes, for chunk planning")
	f.StringVar(&outputDir, "output-dir", ".", "output directory for rendered PDFs")
	f.StringVar(&outputLabel, "output-label", "imposed", "base filename for rendered output")
	f.StringVar(&jobID, "job-id", "", "job id for the slug")
	f.StringVar(&customer, "customer", "", "customer name for the slug")
	f.StringVar(&contact, "contact", "", "contact name for the slug")
	f.StringVar(&filename, "filename", "", "source filename for the slug")
	f.IntVar(&quantity, "quantity", 1, "job quantity for the slug")

	return cmd
}
