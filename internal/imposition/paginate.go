package imposition

import (
	"fmt"
	"math"

	"github.com/piwi3910/printcore/internal/perrors"
)

// Paginate assigns input-page indices to slot positions for every sheet and
// side of the job, per the four modes in spec.md §4.3 ("Pagination").
func Paginate(spec Spec, pageCount int) ([]SheetPages, PaginationReport, error) {
	n := spec.Normalized()
	if pageCount <= 0 {
		return nil, PaginationReport{}, perrors.New(perrors.InvalidGeometry, "page count must be positive")
	}

	switch n.Type {
	case Booklet:
		return paginateBooklet(n, pageCount)
	case Repeat:
		return paginateRepeat(n, pageCount)
	case CollateCut:
		return paginateCollateCut(n, pageCount)
	default:
		return paginateStack(n, pageCount)
	}
}

// slotRowCol enumerates (row, col) in row-major order for an S-slot side.
func slotRowCol(columns, rows int) []struct{ Row, Col int } {
	out := make([]struct{ Row, Col int }, 0, columns*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			out = append(out, struct{ Row, Col int }{r, c})
		}
	}
	return out
}

// applyRotation sets Rotated180 per spec.md §4.3 ("Alternate rotation").
func applyRotation(spec Spec, row, col int) bool {
	switch spec.AlternateRotation {
	case AlternateColumns:
		return col%2 == 1
	case AlternateRows:
		return row%2 == 1
	default:
		return false
	}
}

// workAndTurn reports whether the back side must be reflected across the
// vertical axis for this mode (spec.md §4.3 "Work-and-turn reversal").
func workAndTurn(spec Spec) bool {
	return spec.Duplex && spec.Columns > 1 && (spec.Type == Stack || spec.Type == CollateCut)
}

// buildSide converts a slice of logical per-slot page indices (row-major)
// into placed SlotAssignments, applying work-and-turn mirroring for back
// sides and alternate rotation for all sides.
func buildSide(spec Spec, logical []int, isBack bool, pageCount int) []SlotAssignment {
	positions := slotRowCol(spec.Columns, spec.Rows)
	out := make([]SlotAssignment, len(positions))

	mirror := isBack && workAndTurn(spec)

	for idx, pos := range positions {
		srcIdx := idx
		if mirror {
			// Reverse within the row: physical column c reads the logical
			// slot for column (columns-1-c) in the same row.
			rowStart := pos.Row * spec.Columns
			mirroredCol := spec.Columns - 1 - pos.Col
			srcIdx = rowStart + mirroredCol
		}
		page := -1
		if srcIdx >= 0 && srcIdx < len(logical) {
			page = logical[srcIdx]
		}
		if page < 0 || page >= pageCount {
			page = -1
		}
		out[idx] = SlotAssignment{
			Row:        pos.Row,
			Col:        pos.Col,
			PageIndex:  page,
			Rotated180: applyRotation(spec, pos.Row, pos.Col),
		}
	}
	return out
}

func paginateStack(spec Spec, pageCount int) ([]SheetPages, PaginationReport, error) {
	s := spec.Columns * spec.Rows
	var totalSheets int
	if spec.Duplex {
		totalSheets = int(math.Ceil(float64(pageCount) / float64(2*s)))
	} else {
		totalSheets = int(math.Ceil(float64(pageCount) / float64(s)))
	}
	if totalSheets < 1 {
		totalSheets = 1
	}

	sheets := make([]SheetPages, totalSheets)
	for k := 0; k < totalSheets; k++ {
		frontLogical := make([]int, s)
		var backLogical []int
		if spec.Duplex {
			base := k * s * 2
			backLogical = make([]int, s)
			for i := 0; i < s; i++ {
				frontLogical[i] = base + 2*i
				backLogical[i] = base + 2*i + 1
			}
		} else {
			base := k * s
			for i := 0; i < s; i++ {
				frontLogical[i] = base + i
			}
		}

		sp := SheetPages{SheetIndex: k, Front: buildSide(spec, frontLogical, false, pageCount)}
		if spec.Duplex {
			sp.Back = buildSide(spec, backLogical, true, pageCount)
		}
		sheets[k] = sp
	}

	return sheets, PaginationReport{TotalSheets: totalSheets, PaddedPageCount: pageCount}, nil
}

func paginateRepeat(spec Spec, pageCount int) ([]SheetPages, PaginationReport, error) {
	s := spec.Columns * spec.Rows
	var totalSheets int
	if spec.Duplex {
		totalSheets = int(math.Ceil(float64(pageCount) / 2.0))
	} else {
		totalSheets = pageCount
	}
	if totalSheets < 1 {
		totalSheets = 1
	}

	sheets := make([]SheetPages, totalSheets)
	for k := 0; k < totalSheets; k++ {
		var frontMaster, backMaster int
		if spec.Duplex {
			frontMaster = 2 * k
			backMaster = 2*k + 1
		} else {
			frontMaster = k
		}

		frontLogical := make([]int, s)
		for i := range frontLogical {
			frontLogical[i] = frontMaster
		}
		sp := SheetPages{SheetIndex: k, Front: buildSide(spec, frontLogical, false, pageCount)}
		if spec.Duplex {
			backLogical := make([]int, s)
			for i := range backLogical {
				backLogical[i] = backMaster
			}
			sp.Back = buildSide(spec, backLogical, true, pageCount)
		}
		sheets[k] = sp
	}

	return sheets, PaginationReport{TotalSheets: totalSheets, PaddedPageCount: pageCount}, nil
}

func paginateCollateCut(spec Spec, pageCount int) ([]SheetPages, PaginationReport, error) {
	s := spec.Columns * spec.Rows
	pStack := int(math.Ceil(float64(pageCount) / float64(s)))

	var sheetsPerMode int
	var duplexFactor int
	if spec.Duplex {
		sheetsPerMode = int(math.Ceil(float64(pStack) / 2.0))
		duplexFactor = 2
	} else {
		sheetsPerMode = pStack
		duplexFactor = 1
	}
	if sheetsPerMode < 1 {
		sheetsPerMode = 1
	}

	columnOffset := func(i int) int { return i * sheetsPerMode * duplexFactor }

	sheets := make([]SheetPages, sheetsPerMode)
	for k := 0; k < sheetsPerMode; k++ {
		frontLogical := make([]int, s)
		for i := 0; i < s; i++ {
			frontLogical[i] = k*duplexFactor + columnOffset(i)
		}
		sp := SheetPages{SheetIndex: k, Front: buildSide(spec, frontLogical, false, pageCount)}
		if spec.Duplex {
			backLogical := make([]int, s)
			for i := 0; i < s; i++ {
				backLogical[i] = frontLogical[i] + 1
			}
			sp.Back = buildSide(spec, backLogical, true, pageCount)
		}
		sheets[k] = sp
	}

	return sheets, PaginationReport{TotalSheets: sheetsPerMode, PaddedPageCount: pageCount}, nil
}

func paginateBooklet(spec Spec, pageCount int) ([]SheetPages, PaginationReport, error) {
	padded := pageCount
	if rem := padded % 4; rem != 0 {
		padded += 4 - rem
	}
	n := padded / 4
	if n < 1 {
		n = 1
	}

	var warnings []string
	if padded != pageCount {
		warnings = append(warnings, fmt.Sprintf("booklet padded %d input pages to %d (added %d blank pages) to reach a multiple of 4", pageCount, padded, padded-pageCount))
	}

	creepStep := 0.0
	if n > 1 {
		creepStep = spec.CreepIn / float64(n-1)
	}

	sheets := make([]SheetPages, n)
	for k := 0; k < n; k++ {
		frontLeft := padded - 2*k - 1
		frontRight := 2 * k
		backLeft := 2*k + 1
		backRight := padded - 2*k - 2

		creepShift := geomCreepPt(creepStep, k)

		sheets[k] = SheetPages{
			SheetIndex: k,
			Front:      bookletSlots(spec, frontLeft, frontRight, -creepShift, creepShift, pageCount),
			Back:       bookletSlots(spec, backLeft, backRight, creepShift, -creepShift, pageCount),
		}
	}

	return sheets, PaginationReport{TotalSheets: n, PaddedPageCount: padded, Warnings: warnings}, nil
}

// bookletSlots places left/right page indices into the 2-slot spread,
// swapping which physical slot gets which role under RTL reading (spec.md
// §4.3 "Reading direction").
func bookletSlots(spec Spec, leftPage, rightPage int, leftCreep, rightCreep float64, pageCount int) []SlotAssignment {
	clamp := func(p int) int {
		if p < 0 || p >= pageCount {
			return -1
		}
		return p
	}
	slot0Page, slot1Page := clamp(leftPage), clamp(rightPage)
	slot0Creep, slot1Creep := leftCreep, rightCreep
	if spec.ReadingDirection == RTL {
		slot0Page, slot1Page = slot1Page, slot0Page
		slot0Creep, slot1Creep = slot1Creep, slot0Creep
	}
	return []SlotAssignment{
		{Row: 0, Col: 0, PageIndex: slot0Page, CreepShiftPt: slot0Creep},
		{Row: 0, Col: 1, PageIndex: slot1Page, CreepShiftPt: slot1Creep},
	}
}

// geomCreepPt converts a creep step in inches to a points offset scaled by
// the signature index, per spec.md §4.3 ("Creep (shingling)"): per-sheet
// step c/(N-1), outer page shifts by -k*step/2, inner page by +k*step/2.
// Callers multiply by -1/+1 for outer/inner as appropriate; this helper
// returns k*step/2 in points for signature k.
func geomCreepPt(stepIn float64, k int) float64 {
	return inchesToPointsLocal(stepIn) * float64(k) / 2
}

func inchesToPointsLocal(in float64) float64 { return in * 72.0 }
