package imposition

import (
	"context"
	"fmt"

	"github.com/piwi3910/printcore/internal/perrors"
)

// InputDocument is the single-page-stream PDF being imposed: a PageSource
// for reading page geometry/content, plus the metadata PlanChunks needs.
type InputDocument struct {
	Source   PageSource
	ByteSize int64
	Filename string
}

// ProgressEvent reports render progress, per spec.md §9 ("Progress is
// reported through an optional sink that receives (chunk_index,
// sheet_index, total_sheets) tuples").
type ProgressEvent struct {
	ChunkIndex  int
	SheetIndex  int
	TotalSheets int
}

// RunOptions carries the collaborators and knobs Run needs beyond the
// core Spec: the QR generator, an optional progress sink, and the label
// used for chunked output file naming.
type RunOptions struct {
	QR           QRGenerator
	OutputLabel  string
	OnProgress   func(ProgressEvent)
}

// Output summarizes a completed imposition run.
type Output struct {
	Chunks      []ChunkPlan
	TotalSheets int
	Pagination  PaginationReport
	Plan        PlanResult
}

// Run executes the full plan -> paginate -> render pipeline for one
// imposition job, per spec.md §4.3. It checks ctx before rendering each
// sheet and between chunks (spec.md §4.3 "Failure semantics").
func Run(ctx context.Context, input InputDocument, spec Spec, slug JobSlug, surface DrawingSurface, opts RunOptions) (Output, error) {
	n := spec.Normalized()

	pageCount, err := input.Source.PageCount(ctx)
	if err != nil {
		return Output{}, perrors.Wrap(perrors.PdfParseError, "reading input page count", err)
	}
	if pageCount <= 0 {
		return Output{}, perrors.New(perrors.InvalidGeometry, "input document has no pages")
	}

	pageWidthPt, pageHeightPt, err := input.Source.PageSizePt(ctx, PageHandle(0))
	if err != nil {
		return Output{}, perrors.Wrap(perrors.PdfParseError, "reading input page size", err)
	}

	plan, err := Plan(n, pageWidthPt, pageHeightPt)
	if err != nil {
		return Output{}, err
	}

	sheets, report, err := Paginate(n, pageCount)
	if err != nil {
		return Output{}, err
	}

	replicationFactor := n.SlotsPerSheet()
	chunks := PlanChunks(len(sheets), n.Duplex, n.Type, input.ByteSize, replicationFactor)

	for _, chunk := range chunks {
		if ctx.Err() != nil {
			return Output{}, perrors.ErrCancelled
		}

		label := opts.OutputLabel + chunk.Label()
		if err := surface.StartDocument(ctx, label); err != nil {
			return Output{}, perrors.Wrap(perrors.PdfRenderError, "starting output document", err)
		}

		for sheetIdx := chunk.StartSheet; sheetIdx < chunk.EndSheet; sheetIdx++ {
			if ctx.Err() != nil {
				return Output{}, perrors.ErrCancelled
			}

			sp := sheets[sheetIdx]
			isFirst := sheetIdx == 0
			isLast := sheetIdx == len(sheets)-1

			if opts.OnProgress != nil {
				opts.OnProgress(ProgressEvent{ChunkIndex: chunk.Index, SheetIndex: sheetIdx, TotalSheets: len(sheets)})
			}

			if err := renderFace(ctx, surface, opts.QR, input, plan, n, slug, sp.Front, false, isFirst, isLast, sheetIdx, len(sheets)); err != nil {
				return Output{}, wrapRenderErr(err, sheetIdx, "front")
			}
			if n.Duplex {
				if err := renderFace(ctx, surface, opts.QR, input, plan, n, slug, sp.Back, true, isFirst, isLast, sheetIdx, len(sheets)); err != nil {
					return Output{}, wrapRenderErr(err, sheetIdx, "back")
				}
			}
		}

		if _, _, err := surface.FinishDocument(ctx); err != nil {
			return Output{}, perrors.Wrap(perrors.PdfRenderError, "finishing output document", err)
		}
	}

	return Output{Chunks: chunks, TotalSheets: len(sheets), Pagination: report, Plan: plan}, nil
}

func wrapRenderErr(err error, sheetIdx int, face string) error {
	if perrors.Is(err, perrors.Cancelled) {
		return err
	}
	if _, ok := perrors.Kind(err); ok {
		return err
	}
	return perrors.Wrap(perrors.PdfRenderError, fmt.Sprintf("rendering sheet %d (%s)", sheetIdx, face), err)
}
