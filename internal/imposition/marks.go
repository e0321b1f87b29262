package imposition

import (
	"context"
	"fmt"
)

// Crop mark geometry, spec.md §4.3 ("Marking" point 1). The spec names
// these L_crop/o_crop without fixing values; 1/8" length and 1/16" offset
// match the conventional prepress defaults SlabCut's own dimension
// annotations use for similar small fixed-offset marks.
const (
	CropMarkLengthPt = 9.0  // 0.125in
	CropMarkOffsetPt = 4.5  // 0.0625in
	SlugStripHeightPt = 36.0
	SlugQRSidePt      = 56.7 // 2cm
	SpineLabelSizePt  = 6.0
)

type neighborFlags struct {
	top, bottom, left, right bool
}

func slotNeighbors(row, col, columns, rows int) neighborFlags {
	return neighborFlags{
		top:    row > 0,
		bottom: row < rows-1,
		left:   col > 0,
		right:  col < columns-1,
	}
}

// trimRect returns the trim rectangle for slot (row, col): the cell inset
// by bleed on every side, per spec.md §4.3 planning point 1.
func trimRect(plan PlanResult, row, col int, rowOffset RowOffset) Rect {
	x, y := plan.SlotOrigin(row, col, rowOffset)
	return Rect{
		X: x + plan.BleedPt,
		Y: y + plan.BleedPt,
		W: plan.CellWPt - 2*plan.BleedPt,
		H: plan.CellHPt - 2*plan.BleedPt,
	}
}

// drawCropMarks draws the up-to-eight crop marks around one slot's trim
// rectangle, omitting any mark that would fall inside a neighboring cell.
func drawCropMarks(ctx context.Context, s DrawingSurface, trim Rect, nb neighborFlags) error {
	draw := func(x1, y1, x2, y2 float64) error {
		return s.DrawLine(ctx, x1, y1, x2, y2, ColorBlack, 0.5, false)
	}

	// Vertical marks above/below the trim, at left and right corners.
	if !nb.top {
		if err := draw(trim.X, trim.Top()+CropMarkOffsetPt, trim.X, trim.Top()+CropMarkOffsetPt+CropMarkLengthPt); err != nil {
			return err
		}
		if err := draw(trim.Right(), trim.Top()+CropMarkOffsetPt, trim.Right(), trim.Top()+CropMarkOffsetPt+CropMarkLengthPt); err != nil {
			return err
		}
	}
	if !nb.bottom {
		if err := draw(trim.X, trim.Y-CropMarkOffsetPt, trim.X, trim.Y-CropMarkOffsetPt-CropMarkLengthPt); err != nil {
			return err
		}
		if err := draw(trim.Right(), trim.Y-CropMarkOffsetPt, trim.Right(), trim.Y-CropMarkOffsetPt-CropMarkLengthPt); err != nil {
			return err
		}
	}
	// Horizontal marks left/right of the trim, at top and bottom corners.
	if !nb.left {
		if err := draw(trim.X-CropMarkOffsetPt, trim.Y, trim.X-CropMarkOffsetPt-CropMarkLengthPt, trim.Y); err != nil {
			return err
		}
		if err := draw(trim.X-CropMarkOffsetPt, trim.Top(), trim.X-CropMarkOffsetPt-CropMarkLengthPt, trim.Top()); err != nil {
			return err
		}
	}
	if !nb.right {
		if err := draw(trim.Right()+CropMarkOffsetPt, trim.Y, trim.Right()+CropMarkOffsetPt+CropMarkLengthPt, trim.Y); err != nil {
			return err
		}
		if err := draw(trim.Right()+CropMarkOffsetPt, trim.Top(), trim.Right()+CropMarkOffsetPt+CropMarkLengthPt, trim.Top()); err != nil {
			return err
		}
	}
	return nil
}

// bindingPolarity is which side of a slot the spine/binding edge sits on.
type bindingPolarity int

const (
	bindingLeft bindingPolarity = iota
	bindingRight
)

func (b bindingPolarity) flip() bindingPolarity {
	if b == bindingLeft {
		return bindingRight
	}
	return bindingLeft
}

// resolvePolarity composes the base reading-direction polarity with the
// work-and-turn and rotation flips, per spec.md §4.3 ("Marking" point 3,
// "Alternate rotation"): two flips compose to none.
func resolvePolarity(spec Spec, isBack bool, rotated180 bool) bindingPolarity {
	p := bindingLeft
	if spec.ReadingDirection == RTL {
		p = bindingRight
	}
	if isBack && workAndTurn(spec) {
		p = p.flip()
	}
	if rotated180 {
		p = p.flip()
	}
	return p
}

func modeSupportsSpine(t Type) bool {
	return t == Booklet || t == Stack || t == CollateCut
}

// drawSpineIndicator draws the small triangle + "SPINE" label on the
// binding edge, below the trim rectangle, per spec.md §4.3 point 2.
func drawSpineIndicator(ctx context.Context, s DrawingSurface, trim Rect, polarity bindingPolarity) error {
	var spineX float64
	if polarity == bindingLeft {
		spineX = trim.X
	} else {
		spineX = trim.Right()
	}

	triSize := 4.0
	tipY := trim.Y - CropMarkOffsetPt
	baseY := tipY - triSize
	if err := s.DrawLine(ctx, spineX-triSize/2, baseY, spineX+triSize/2, baseY, ColorBlack, 0.5, false); err != nil {
		return err
	}
	if err := s.DrawLine(ctx, spineX-triSize/2, baseY, spineX, tipY, ColorBlack, 0.5, false); err != nil {
		return err
	}
	if err := s.DrawLine(ctx, spineX+triSize/2, baseY, spineX, tipY, ColorBlack, 0.5, false); err != nil {
		return err
	}
	return s.DrawText(ctx, "SPINE", spineX, baseY-SpineLabelSizePt-2, SpineLabelSizePt, ColorBlack, 0)
}

// drawSpineSlugText repeats "FRONT SPINE"/"BACK SPINE" vertically within
// the bleed strip on the binding edge, per spec.md §4.3 point 3.
func drawSpineSlugText(ctx context.Context, s DrawingSurface, trim Rect, bleedPt float64, polarity bindingPolarity, isBack bool) error {
	if bleedPt <= 0 {
		return nil
	}
	label := "FRONT SPINE"
	if isBack {
		label = "BACK SPINE"
	}

	var x float64
	if polarity == bindingLeft {
		x = trim.X - bleedPt/2
	} else {
		x = trim.Right() + bleedPt/2
	}

	const stepPt = 100.0
	for y := trim.Y; y < trim.Top(); y += stepPt {
		if err := s.DrawText(ctx, label, x, y, SpineLabelSizePt, ColorBlack, 90); err != nil {
			return err
		}
	}
	return nil
}

// SlugInfo carries the per-sheet values the job slug strip needs beyond
// the static JobSlug record.
type SlugInfo struct {
	SheetIndex  int
	TotalSheets int
	Face        string // "front" or "back"
}

// slugLine renders the single human-readable line of the job slug, per
// spec.md §3/§6 field set.
func slugLine(slug JobSlug, info SlugInfo) string {
	return fmt.Sprintf("Sheet %d/%d (%s)  Job %s  Qty %d  Due %s  Trim %.3fx%.3fin",
		info.SheetIndex+1, info.TotalSheets, info.Face, slug.JobID, slug.Quantity, slug.DueDateString(),
		slug.TrimWidthIn, slug.TrimHeightIn)
}

// slugQRPayload encodes the full job record as the slug QR payload, per
// spec.md §6.
func slugQRPayload(slug JobSlug, info SlugInfo) string {
	return fmt.Sprintf("job=%s;customer=%s;contact=%s;file=%s;qty=%d;due=%s;trim=%.3fx%.3f;interior=%s;cover=%s;finish=%s;binding=%s;sheet=%d/%d;notes=%s",
		slug.JobID, slug.Customer, slug.Contact, slug.Filename, slug.Quantity, slug.DueDateString(),
		slug.TrimWidthIn, slug.TrimHeightIn, slug.InteriorSpec, slug.CoverSpec, slug.Finishing, slug.Binding,
		info.SheetIndex+1, info.TotalSheets, slug.Notes)
}

// drawJobSlug draws the QR + text strip along the bottom of the sheet,
// per spec.md §4.3 point 4.
func drawJobSlug(ctx context.Context, s DrawingSurface, qr QRGenerator, sheetW float64, slug JobSlug, info SlugInfo) error {
	payload := slugQRPayload(slug, info)
	png, err := qr.EncodePNG(payload, SlugQRSidePt)
	if err != nil {
		return err
	}
	img, err := s.EmbedPNG(ctx, png)
	if err != nil {
		return err
	}
	margin := 6.0
	if err := s.DrawImage(ctx, img, Rect{X: margin, Y: margin, W: SlugQRSidePt, H: SlugQRSidePt}); err != nil {
		return err
	}
	textX := margin*2 + SlugQRSidePt
	textY := margin + SlugQRSidePt/2
	return s.DrawText(ctx, slugLine(slug, info), textX, textY, 8, ColorBlack, 0)
}

func slipColorRGB(c SlipColor) Color {
	switch c {
	case SlipGrey:
		return Color{180, 180, 180}
	case SlipYellow:
		return Color{240, 220, 80}
	case SlipGreen:
		return Color{130, 200, 130}
	case SlipPink:
		return Color{235, 170, 195}
	case SlipBlue:
		return Color{140, 180, 230}
	default:
		return ColorWhite
	}
}

// applyFirstSheetSlip fills the whole sheet with the slip color, then
// knocks out each slot's cell area and the slug strip back to white, per
// spec.md §4.3 point 4 (first-sheet slip feature).
func applyFirstSheetSlip(ctx context.Context, s DrawingSurface, plan PlanResult, spec Spec, sheetW, sheetH float64) error {
	fill := slipColorRGB(spec.FirstSheetSlipColor)
	if err := s.DrawRectangle(ctx, Rect{X: 0, Y: 0, W: sheetW, H: sheetH}, &fill, nil, 0, false); err != nil {
		return err
	}
	for row := 0; row < plan.Rows; row++ {
		for col := 0; col < plan.Columns; col++ {
			x, y := plan.SlotOrigin(row, col, spec.RowOffset)
			white := ColorWhite
			if err := s.DrawRectangle(ctx, Rect{X: x, Y: y, W: plan.CellWPt, H: plan.CellHPt}, &white, nil, 0, false); err != nil {
				return err
			}
		}
	}
	white := ColorWhite
	return s.DrawRectangle(ctx, Rect{X: 0, Y: 0, W: sheetW, H: SlugStripHeightPt}, &white, nil, 0, false)
}
