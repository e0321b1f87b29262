package imposition

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotNeighbors(t *testing.T) {
	nb := slotNeighbors(0, 0, 2, 2)
	assert.False(t, nb.top)
	assert.False(t, nb.left)
	assert.True(t, nb.bottom)
	assert.True(t, nb.right)

	center := slotNeighbors(1, 1, 3, 3)
	assert.True(t, center.top)
	assert.True(t, center.bottom)
	assert.True(t, center.left)
	assert.True(t, center.right)
}

func TestTrimRectInsetsByBleed(t *testing.T) {
	plan := PlanResult{
		ColumnStridePt: 100, RowStridePt: 100,
		CellWPt: 100, CellHPt: 100,
		Rows: 1, Columns: 1,
		StartXPt: 0, StartYPt: 0,
		BleedPt: 9,
	}
	trim := trimRect(plan, 0, 0, RowOffsetNone)
	assert.Equal(t, 9.0, trim.X)
	assert.Equal(t, 9.0, trim.Y)
	assert.Equal(t, 82.0, trim.W)
	assert.Equal(t, 82.0, trim.H)
}

func TestRectTopAndRight(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 5, H: 7}
	assert.Equal(t, 15.0, r.Right())
	assert.Equal(t, 27.0, r.Top())
}

func TestResolvePolarityComposesFlips(t *testing.T) {
	ltr := Spec{ReadingDirection: LTR, Type: Stack, Columns: 2, Duplex: true}
	assert.Equal(t, bindingLeft, resolvePolarity(ltr, false, false))
	// Back side under work-and-turn flips once.
	assert.Equal(t, bindingRight, resolvePolarity(ltr, true, false))
	// Rotation flips again; two flips compose to none.
	assert.Equal(t, bindingLeft, resolvePolarity(ltr, true, true))

	rtl := Spec{ReadingDirection: RTL}
	assert.Equal(t, bindingRight, resolvePolarity(rtl, false, false))
}

func TestModeSupportsSpine(t *testing.T) {
	assert.True(t, modeSupportsSpine(Booklet))
	assert.True(t, modeSupportsSpine(Stack))
	assert.True(t, modeSupportsSpine(CollateCut))
	assert.False(t, modeSupportsSpine(Repeat))
}

func TestDrawCropMarksOmitsMarksTowardNeighbors(t *testing.T) {
	s := &fakeSurface{}
	trim := Rect{X: 10, Y: 10, W: 50, H: 50}

	allNeighbors := neighborFlags{top: true, bottom: true, left: true, right: true}
	require.NoError(t, drawCropMarks(context.Background(), s, trim, allNeighbors))
	assert.Equal(t, 0, s.lines)

	noNeighbors := neighborFlags{}
	s2 := &fakeSurface{}
	require.NoError(t, drawCropMarks(context.Background(), s2, trim, noNeighbors))
	assert.Equal(t, 8, s2.lines)
}

func TestSlugLineAndPayloadContainJobFields(t *testing.T) {
	slug := JobSlug{JobID: "J-42", Customer: "Acme", Quantity: 500, TrimWidthIn: 8.5, TrimHeightIn: 11}
	info := SlugInfo{SheetIndex: 2, TotalSheets: 10, Face: "front"}

	line := slugLine(slug, info)
	assert.Contains(t, line, "J-42")
	assert.Contains(t, line, "3/10")

	payload := slugQRPayload(slug, info)
	assert.Contains(t, payload, "job=J-42")
	assert.Contains(t, payload, "customer=Acme")
	assert.Contains(t, payload, "sheet=3/10")
}

func TestApplyFirstSheetSlipKnocksOutSlots(t *testing.T) {
	s := &fakeSurface{}
	plan := PlanResult{Columns: 2, Rows: 2, CellWPt: 50, CellHPt: 50, ColumnStridePt: 50, RowStridePt: 50}
	spec := Spec{FirstSheetSlipColor: SlipGrey}

	require.NoError(t, applyFirstSheetSlip(context.Background(), s, plan, spec, 300, 200))
	// One full-sheet fill + one knockout per slot + one slug-strip knockout.
	assert.Equal(t, 1+4+1, s.rects)
}
