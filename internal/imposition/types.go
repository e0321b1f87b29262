// Package imposition places the pages of a single-page-stream PDF onto
// larger press sheets for efficient printing and post-press cutting,
// folding, and binding. It operates in three phases — plan, paginate,
// render — described in spec.md §4.3.
package imposition

import (
	"time"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geom"
)

// Type selects the imposition layout strategy.
type Type string

const (
	Stack      Type = "stack"
	Repeat     Type = "repeat"
	CollateCut Type = "collate_cut"
	Booklet    Type = "booklet"
)

// ReadingDirection controls spread/slug left-right polarity.
type ReadingDirection string

const (
	LTR ReadingDirection = "ltr"
	RTL ReadingDirection = "rtl"
)

// RowOffset controls whether alternating rows are staggered horizontally.
type RowOffset string

const (
	RowOffsetNone RowOffset = "none"
	RowOffsetHalf RowOffset = "half"
)

// AlternateRotation controls 180-degree rotation of alternating rows/columns.
type AlternateRotation string

const (
	AlternateNone    AlternateRotation = "none"
	AlternateColumns AlternateRotation = "alternate_columns"
	AlternateRows    AlternateRotation = "alternate_rows"
)

// SlipColor names the first-sheet slip sheet color, or None to disable it.
type SlipColor string

const (
	SlipGrey   SlipColor = "Grey"
	SlipYellow SlipColor = "Yellow"
	SlipGreen  SlipColor = "Green"
	SlipPink   SlipColor = "Pink"
	SlipBlue   SlipColor = "Blue"
	SlipNone   SlipColor = "None"
)

// Spec is the immutable imposition specification for one job. It is never
// mutated after construction; Normalized() returns the booklet-forced copy
// used internally by Plan/Paginate.
type Spec struct {
	SelectedSheet catalog.PressSheetSize

	Columns int
	Rows    int

	BleedIn           float64
	HorizontalGutterIn float64
	VerticalGutterIn  float64

	Type        Type
	Orientation geom.Orientation
	Duplex      bool

	ReadingDirection  ReadingDirection
	RowOffset         RowOffset
	AlternateRotation AlternateRotation

	CreepIn float64

	IncludeSlug         bool
	ShowSpineMarks      bool
	FirstSheetSlipColor SlipColor
}

// Normalized applies the booklet-mode forcing rules from spec.md §3:
// booklet mode always implies 2 columns x 1 row and duplex.
func (s Spec) Normalized() Spec {
	if s.Type == Booklet {
		s.Columns = 2
		s.Rows = 1
		s.Duplex = true
	}
	return s
}

// SlotsPerSheet returns columns * rows for the normalized spec.
func (s Spec) SlotsPerSheet() int {
	n := s.Normalized()
	return n.Columns * n.Rows
}

// JobSlug is the purely informational job record embedded in slug marks
// and the slug QR payload (spec.md §3, §6).
type JobSlug struct {
	JobID    string
	Customer string
	Contact  string
	Filename string
	Quantity int
	DueDate  time.Time

	TrimWidthIn  float64
	TrimHeightIn float64

	InteriorSpec string
	CoverSpec    string
	Finishing    string
	Binding      string
	Notes        string
}

// DueDateString renders DueDate as MM/DD/YY per the slug QR payload format
// in spec.md §6.
func (j JobSlug) DueDateString() string {
	if j.DueDate.IsZero() {
		return ""
	}
	return j.DueDate.Format("01/02/06")
}

// SlotAssignment names which input page index (or -1 for an empty slot)
// occupies one row/column position on one sheet side.
type SlotAssignment struct {
	Row       int
	Col       int
	PageIndex int // -1 means blank: a booklet padding page, or an unfilled slot on the last sheet in other modes
	Rotated180 bool
	CreepShiftPt float64 // booklet only; horizontal shift applied at render time
}

// SheetPages holds the page assignments for one physical press sheet.
type SheetPages struct {
	SheetIndex int
	Front      []SlotAssignment
	Back       []SlotAssignment // nil unless Spec.Duplex
}

// PaginationReport summarizes a completed pagination pass.
type PaginationReport struct {
	TotalSheets int
	PaddedPageCount int // booklet only; equals input page count otherwise
	Warnings    []string
}
