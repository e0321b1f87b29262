package imposition

import (
	"fmt"
	"math"

	"github.com/piwi3910/printcore/internal/geom"
	"github.com/piwi3910/printcore/internal/perrors"
)

// PlanResult is the output of the planning phase (spec.md §4.3 "Planning").
// All dimensions are in points.
type PlanResult struct {
	Orientation geom.Orientation

	SheetWidthPt  float64
	SheetHeightPt float64

	CellWPt float64
	CellHPt float64

	ColumnStridePt float64
	RowStridePt    float64

	BlockWPt float64
	BlockHPt float64

	// StartXPt, StartYPt is the origin (bottom-left, PDF space) of the
	// unshifted grid: slot (row, col) sits at
	//   x = StartXPt + col*ColumnStridePt + rowOffsetX(row)
	//   y = StartYPt + (Rows-1-row)*RowStridePt
	StartXPt float64
	StartYPt float64

	Columns int
	Rows    int

	BleedPt float64

	Warnings []string
}

// RowOffsetX returns the horizontal stagger applied to the given row
// (0-indexed from the top) under the plan's row-offset setting.
func (p PlanResult) RowOffsetX(row int, rowOffset RowOffset) float64 {
	if rowOffset == RowOffsetHalf && p.Rows > 1 && row%2 == 1 {
		return p.ColumnStridePt / 2
	}
	return 0
}

// SlotOrigin returns the bottom-left corner of slot (row, col) in points,
// within the press sheet's coordinate space.
func (p PlanResult) SlotOrigin(row, col int, rowOffset RowOffset) (x, y float64) {
	x = p.StartXPt + float64(col)*p.ColumnStridePt + p.RowOffsetX(row, rowOffset)
	y = p.StartYPt + float64(p.Rows-1-row)*p.RowStridePt
	return x, y
}

// Plan computes sheet orientation, cell/grid geometry, and slot centering
// for one imposition job, given the uniform input page size in points.
func Plan(spec Spec, pageWidthPt, pageHeightPt float64) (PlanResult, error) {
	n := spec.Normalized()

	if n.Columns < 1 || n.Rows < 1 {
		return PlanResult{}, perrors.New(perrors.InvalidGeometry,
			fmt.Sprintf("columns and rows must be >= 1, got %dx%d", n.Columns, n.Rows))
	}
	if err := geom.ValidateDimensions(pageWidthPt, pageHeightPt); err != nil {
		return PlanResult{}, err
	}

	bleedPt := geom.InchesToPoints(n.BleedIn)
	if pageWidthPt <= 2*bleedPt || pageHeightPt <= 2*bleedPt {
		return PlanResult{}, perrors.New(perrors.BleedExceedsPage,
			fmt.Sprintf("bleed %.3fin leaves no trim area on a %.3fx%.3fpt page", n.BleedIn, pageWidthPt, pageHeightPt))
	}

	hGutterPt := geom.InchesToPoints(n.HorizontalGutterIn)
	vGutterPt := geom.InchesToPoints(n.VerticalGutterIn)

	cellW, cellH := pageWidthPt, pageHeightPt
	colStride := cellW + hGutterPt
	rowStride := cellH + vGutterPt

	blockW := float64(n.Columns)*cellW + float64(n.Columns-1)*hGutterPt
	blockH := float64(n.Rows)*cellH + float64(n.Rows-1)*vGutterPt
	if n.RowOffset == RowOffsetHalf && n.Rows > 1 {
		blockW += colStride / 2
	}

	sheetLongPt := geom.InchesToPoints(n.SelectedSheet.LongSide)
	sheetShortPt := geom.InchesToPoints(n.SelectedSheet.ShortSide)

	orientation, sheetW, sheetH, warnings, err := resolveOrientation(n, sheetLongPt, sheetShortPt, blockW, blockH)
	if err != nil {
		return PlanResult{}, err
	}

	startX := (sheetW - blockW) / 2
	startY := (sheetH - blockH) / 2

	if n.Type == Booklet && n.CreepIn > 0 {
		maxCreepPt := geom.InchesToPoints(n.CreepIn) / 2
		if maxCreepPt+bleedPt > startX {
			warnings = append(warnings, fmt.Sprintf(
				"booklet creep of %.3fin at the outermost signature plus %.3fin bleed may push content past the press sheet's %.3fpt side margin",
				n.CreepIn/2, n.BleedIn, startX))
		}
	}

	return PlanResult{
		Orientation:    orientation,
		SheetWidthPt:   sheetW,
		SheetHeightPt:  sheetH,
		CellWPt:        cellW,
		CellHPt:        cellH,
		ColumnStridePt: colStride,
		RowStridePt:    rowStride,
		BlockWPt:       blockW,
		BlockHPt:       blockH,
		StartXPt:       startX,
		StartYPt:       startY,
		Columns:        n.Columns,
		Rows:           n.Rows,
		BleedPt:        bleedPt,
		Warnings:       warnings,
	}, nil
}

// fits reports whether a block of size (blockW, blockH) fits within a sheet
// of size (sheetW, sheetH).
func fits(sheetW, sheetH, blockW, blockH float64) bool {
	return blockW <= sheetW && blockH <= sheetH
}

// resolveOrientation implements spec.md §4.3 step 3 ("Sheet orientation"),
// including the "Absolute Max Layout" tie-break that prefers landscape
// (spec.md §9 Open Question 3 — preserved as-is, not made configurable).
func resolveOrientation(spec Spec, sheetLongPt, sheetShortPt, blockW, blockH float64) (geom.Orientation, float64, float64, []string, error) {
	landscapeW, landscapeH := sheetLongPt, sheetShortPt
	portraitW, portraitH := sheetShortPt, sheetLongPt

	switch spec.Orientation {
	case geom.OrientationLandscape:
		if !fits(landscapeW, landscapeH, blockW, blockH) {
			return "", 0, 0, nil, layoutExceedsErr(landscapeW, landscapeH, blockW, blockH)
		}
		return geom.OrientationLandscape, landscapeW, landscapeH, nil, nil
	case geom.OrientationPortrait:
		if !fits(portraitW, portraitH, blockW, blockH) {
			return "", 0, 0, nil, layoutExceedsErr(portraitW, portraitH, blockW, blockH)
		}
		return geom.OrientationPortrait, portraitW, portraitH, nil, nil
	default: // auto
		fitsLandscape := fits(landscapeW, landscapeH, blockW, blockH)
		fitsPortrait := fits(portraitW, portraitH, blockW, blockH)

		switch {
		case fitsLandscape && fitsPortrait:
			blockAspect := blockW / blockH
			landscapeAspect := landscapeW / landscapeH
			portraitAspect := portraitW / portraitH
			landscapeDelta := math.Abs(blockAspect - landscapeAspect)
			portraitDelta := math.Abs(blockAspect - portraitAspect)
			if portraitDelta < landscapeDelta {
				return geom.OrientationPortrait, portraitW, portraitH, nil, nil
			}
			// Tie (or landscape strictly closer) prefers landscape.
			return geom.OrientationLandscape, landscapeW, landscapeH, nil, nil
		case fitsLandscape:
			return geom.OrientationLandscape, landscapeW, landscapeH, nil, nil
		case fitsPortrait:
			return geom.OrientationPortrait, portraitW, portraitH, nil, nil
		default:
			return "", 0, 0, nil, layoutExceedsErr(landscapeW, landscapeH, blockW, blockH)
		}
	}
}

func layoutExceedsErr(sheetW, sheetH, blockW, blockH float64) error {
	return perrors.New(perrors.LayoutExceedsSheet,
		fmt.Sprintf("content block %.2fx%.2fpt does not fit either orientation of the selected sheet (tried %.2fx%.2fpt)", blockW, blockH, sheetW, sheetH))
}
