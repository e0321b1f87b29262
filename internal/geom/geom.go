// Package geom provides unit conversions and rectangle geometry shared by
// the imposition engine and the cover/template engine. All internal
// computation happens in points; callers work in inches or millimeters and
// convert at the boundary.
package geom

import (
	"fmt"
	"math"

	"github.com/piwi3910/printcore/internal/perrors"
)

// PointsPerInch is the PDF/typographic point definition: 72 points per inch.
const PointsPerInch = 72.0

// PointsPerMM follows from PointsPerInch and the 25.4 mm/inch definition.
const PointsPerMM = PointsPerInch / 25.4

// InchesToPoints converts a length in inches to points.
func InchesToPoints(in float64) float64 {
	return in * PointsPerInch
}

// PointsToInches converts a length in points to inches.
func PointsToInches(pt float64) float64 {
	return pt / PointsPerInch
}

// MMToPoints converts a length in millimeters to points.
func MMToPoints(mm float64) float64 {
	return mm * PointsPerMM
}

// PointsToMM converts a length in points to millimeters.
func PointsToMM(pt float64) float64 {
	return pt / PointsPerMM
}

// Rect is an axis-aligned rectangle in points, with the origin at its
// bottom-left corner (PDF page-space convention: y grows upward).
type Rect struct {
	X, Y, W, H float64
}

// Right returns the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the rectangle's top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Contains reports whether the point (x, y) lies within the rectangle,
// inclusive of the boundary.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Top()
}

// ContainsRect reports whether r fully contains other.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Y+other.H <= r.Top()
}

// ValidateDimensions checks that width and height are strictly positive,
// returning perrors.InvalidGeometry otherwise.
func ValidateDimensions(w, h float64) error {
	if w <= 0 || h <= 0 {
		return perrors.New(perrors.InvalidGeometry,
			fmt.Sprintf("dimensions must be positive, got %.4f x %.4f", w, h))
	}
	return nil
}

// CenterFit centers a box of size (innerW, innerH) inside a box of size
// (outerW, outerH), returning the offset of the inner box's origin. Both
// boxes share an origin at (0, 0). Returns InvalidGeometry if either box
// has non-positive dimensions, or LayoutExceedsSheet-shaped inputs are left
// to the caller (CenterFit does not itself check that inner fits in outer;
// callers decide whether overflow is an error).
func CenterFit(outerW, outerH, innerW, innerH float64) (offsetX, offsetY float64, err error) {
	if err := ValidateDimensions(outerW, outerH); err != nil {
		return 0, 0, err
	}
	if err := ValidateDimensions(innerW, innerH); err != nil {
		return 0, 0, err
	}
	offsetX = (outerW - innerW) / 2
	offsetY = (outerH - innerH) / 2
	return offsetX, offsetY, nil
}

// MaxUnitsAlongAxis returns the maximum number of items of size `item`,
// separated by `gutter`, that fit within `available` space:
//
//	max_n = floor((available + gutter) / (item + gutter))
//
// Returns 0 (not an error) when nothing fits; returns InvalidGeometry when
// item <= 0.
func MaxUnitsAlongAxis(available, item, gutter float64) (int, error) {
	if item <= 0 {
		return 0, perrors.New(perrors.InvalidGeometry,
			fmt.Sprintf("item size must be positive, got %.4f", item))
	}
	if gutter < 0 {
		return 0, perrors.New(perrors.InvalidGeometry,
			fmt.Sprintf("gutter must be non-negative, got %.4f", gutter))
	}
	if available <= 0 {
		return 0, nil
	}
	n := math.Floor((available + gutter) / (item + gutter))
	if n < 0 {
		n = 0
	}
	return int(n), nil
}

// Orientation selects which side of a sheet runs horizontally.
type Orientation string

const (
	OrientationAuto      Orientation = "auto"
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// SheetDims returns the (width, height) in inches for a named sheet size
// given its long and short sides, resolved for the given orientation.
// OrientationAuto is not resolved here; callers pick portrait or landscape
// explicitly once they know which one admits the content (see
// internal/imposition's planning phase).
func SheetDims(longSide, shortSide float64, o Orientation) (width, height float64) {
	switch o {
	case OrientationLandscape:
		return longSide, shortSide
	default: // portrait
		return shortSide, longSide
	}
}
