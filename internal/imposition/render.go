package imposition

import (
	"context"

	"github.com/piwi3910/printcore/internal/perrors"
)

// renderFace draws one side (front or back) of one sheet: embedded page
// content for every occupied slot, crop marks, spine marks, and (on the
// first sheet's front when the slip feature is on) the slip-color
// knockout.
func renderFace(
	ctx context.Context,
	s DrawingSurface,
	qr QRGenerator,
	input InputDocument,
	plan PlanResult,
	spec Spec,
	slug JobSlug,
	slots []SlotAssignment,
	isBack bool,
	isFirstSheet, isLastSheet bool,
	sheetIndex, totalSheets int,
) error {
	sheetW, sheetH := plan.SheetWidthPt, plan.SheetHeightPt

	if err := s.AddPage(ctx, sheetW, sheetH); err != nil {
		return err
	}

	applySlip := isFirstSheet && !isBack && spec.IncludeSlug &&
		spec.FirstSheetSlipColor != "" && spec.FirstSheetSlipColor != SlipNone
	if applySlip {
		if err := applyFirstSheetSlip(ctx, s, plan, spec, sheetW, sheetH); err != nil {
			return err
		}
	}

	for _, slot := range slots {
		if ctx.Err() != nil {
			return perrors.ErrCancelled
		}
		if slot.PageIndex < 0 {
			continue
		}

		trim := trimRect(plan, slot.Row, slot.Col, spec.RowOffset)
		x, y := plan.SlotOrigin(slot.Row, slot.Col, spec.RowOffset)

		embedded, err := s.EmbedPage(ctx, input.Source, PageHandle(slot.PageIndex), nil)
		if err != nil {
			return err
		}
		rotation := 0.0
		if slot.Rotated180 {
			rotation = 180
		}
		t := Transform{X: x + slot.CreepShiftPt, Y: y, RotationDeg: rotation, ScaleX: 1, ScaleY: 1}
		if err := s.DrawEmbedded(ctx, embedded, t); err != nil {
			return err
		}

		nb := slotNeighbors(slot.Row, slot.Col, plan.Columns, plan.Rows)
		if err := drawCropMarks(ctx, s, trim, nb); err != nil {
			return err
		}

		if spec.ShowSpineMarks && modeSupportsSpine(spec.Type) && (isFirstSheet || isLastSheet) {
			polarity := resolvePolarity(spec, isBack, slot.Rotated180)
			if err := drawSpineIndicator(ctx, s, trim, polarity); err != nil {
				return err
			}
		}
		if modeSupportsSpine(spec.Type) {
			polarity := resolvePolarity(spec, isBack, slot.Rotated180)
			if err := drawSpineSlugText(ctx, s, trim, plan.BleedPt, polarity, isBack); err != nil {
				return err
			}
		}
	}

	if spec.IncludeSlug {
		face := "front"
		if isBack {
			face = "back"
		}
		info := SlugInfo{SheetIndex: sheetIndex, TotalSheets: totalSheets, Face: face}
		if err := drawJobSlug(ctx, s, qr, sheetW, slug, info); err != nil {
			return err
		}
	}

	return nil
}
