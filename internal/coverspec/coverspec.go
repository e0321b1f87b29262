// Package coverspec computes spine/spread geometry for a perfect-bound
// cover and emits a two-page hinge/glue-guide PDF template, per spec.md
// §4.4. Rendering reuses the imposition engine's DrawingSurface so the
// same drawing-surface adapter (internal/pdfsurface) backs both engines.
package coverspec

import (
	"context"
	"fmt"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/geom"
	"github.com/piwi3910/printcore/internal/imposition"
	"github.com/piwi3910/printcore/internal/perrors"
)

// HingeOffsetIn is the dashed hinge-safe guide distance from each spine
// line, per spec.md §4.4 ("1/8 inch").
const HingeOffsetIn = 0.125

// Input is the cover/template job spec: interior and cover paper
// identities, interior page count, and finished trim geometry.
type Input struct {
	InteriorType   string
	InteriorWeight float64
	CoverType      string
	CoverWeight    float64

	InteriorPages int

	TrimWidthIn  float64
	TrimHeightIn float64
	BleedIn      float64
}

// Output is the computed spine/spread geometry.
type Output struct {
	SpineWidthIn   float64
	SpreadWidthIn  float64
	SpreadHeightIn float64
	Warnings       []string
}

// Compute derives spine width and full spread dimensions, per spec.md
// §4.4: spine = pages/PPI + 2*caliper; spread_w = 2*trim_w + spine +
// 2*bleed; spread_h = trim_h + 2*bleed.
func Compute(cat *catalog.Catalog, in Input) (Output, error) {
	if err := geom.ValidateDimensions(in.TrimWidthIn, in.TrimHeightIn); err != nil {
		return Output{}, err
	}
	if in.InteriorPages <= 0 {
		return Output{}, perrors.New(perrors.InvalidGeometry, "interior page count must be positive")
	}

	ppi, err := cat.InteriorPPI(in.InteriorType, in.InteriorWeight)
	if err != nil {
		return Output{}, err
	}
	caliper, err := cat.CoverCaliper(in.CoverType, in.CoverWeight)
	if err != nil {
		return Output{}, err
	}

	spine := float64(in.InteriorPages)/ppi + 2*caliper
	spreadW := 2*in.TrimWidthIn + spine + 2*in.BleedIn
	spreadH := in.TrimHeightIn + 2*in.BleedIn

	var warnings []string
	if in.InteriorPages%2 != 0 {
		warnings = append(warnings, fmt.Sprintf("interior page count %d is odd", in.InteriorPages))
	}

	return Output{SpineWidthIn: spine, SpreadWidthIn: spreadW, SpreadHeightIn: spreadH, Warnings: warnings}, nil
}

// RenderTemplate draws the outside- and inside-cover spread pages
// described in spec.md §4.4.
func RenderTemplate(ctx context.Context, s imposition.DrawingSurface, in Input, out Output) error {
	widthPt := geom.InchesToPoints(out.SpreadWidthIn)
	heightPt := geom.InchesToPoints(out.SpreadHeightIn)
	bleedPt := geom.InchesToPoints(in.BleedIn)
	trimWPt := geom.InchesToPoints(in.TrimWidthIn)
	spinePt := geom.InchesToPoints(out.SpineWidthIn)
	hingePt := geom.InchesToPoints(HingeOffsetIn)

	spineLeftX := bleedPt + trimWPt
	spineRightX := spineLeftX + spinePt

	if err := drawOutsideCover(ctx, s, widthPt, heightPt, spineLeftX, spineRightX, hingePt, bleedPt, trimWPt, spinePt); err != nil {
		return err
	}
	return drawInsideCover(ctx, s, widthPt, heightPt, spineLeftX, spineRightX, hingePt, bleedPt, trimWPt, spinePt)
}

func drawOutsideCover(ctx context.Context, s imposition.DrawingSurface, widthPt, heightPt, spineLeftX, spineRightX, hingePt, bleedPt, trimWPt, spinePt float64) error {
	if err := s.AddPage(ctx, widthPt, heightPt); err != nil {
		return err
	}
	trim := imposition.Rect{X: bleedPt, Y: bleedPt, W: widthPt - 2*bleedPt, H: heightPt - 2*bleedPt}
	if err := s.DrawRectangle(ctx, trim, nil, &imposition.ColorBlack, 0.75, false); err != nil {
		return err
	}

	cyan := imposition.ColorCyan
	for _, x := range []float64{spineLeftX, spineRightX} {
		if err := s.DrawLine(ctx, x, bleedPt, x, heightPt-bleedPt, cyan, 1, false); err != nil {
			return err
		}
	}
	for _, base := range []float64{spineLeftX, spineRightX} {
		for _, x := range []float64{base - hingePt, base + hingePt} {
			if err := s.DrawLine(ctx, x, bleedPt, x, heightPt-bleedPt, imposition.ColorBlack, 0.5, true); err != nil {
				return err
			}
		}
	}

	backPanel := imposition.Rect{X: bleedPt + hingePt, Y: bleedPt + hingePt, W: trimWPt - hingePt - (spineLeftX - bleedPt - trimWPt) - hingePt, H: heightPt - 2*bleedPt - 2*hingePt}
	frontPanel := imposition.Rect{X: spineRightX + hingePt, Y: bleedPt + hingePt, W: widthPt - bleedPt - hingePt - spineRightX - hingePt, H: heightPt - 2*bleedPt - 2*hingePt}
	if err := s.DrawRectangle(ctx, backPanel, nil, &imposition.ColorBlack, 0.25, true); err != nil {
		return err
	}
	if err := s.DrawRectangle(ctx, frontPanel, nil, &imposition.ColorBlack, 0.25, true); err != nil {
		return err
	}

	labelY := heightPt / 2
	if err := s.DrawText(ctx, "BACK COVER", backPanel.X+6, labelY, 9, imposition.ColorBlack, 0); err != nil {
		return err
	}
	if err := s.DrawText(ctx, "SPINE", spineLeftX+(spinePt/2)-10, labelY, 7, imposition.ColorBlack, 90); err != nil {
		return err
	}
	return s.DrawText(ctx, "FRONT COVER", frontPanel.X+6, labelY, 9, imposition.ColorBlack, 0)
}

func drawInsideCover(ctx context.Context, s imposition.DrawingSurface, widthPt, heightPt, spineLeftX, spineRightX, hingePt, bleedPt, trimWPt, spinePt float64) error {
	if err := s.AddPage(ctx, widthPt, heightPt); err != nil {
		return err
	}
	trim := imposition.Rect{X: bleedPt, Y: bleedPt, W: widthPt - 2*bleedPt, H: heightPt - 2*bleedPt}
	if err := s.DrawRectangle(ctx, trim, nil, &imposition.ColorBlack, 0.75, false); err != nil {
		return err
	}

	cyan := imposition.ColorCyan
	for _, x := range []float64{spineLeftX, spineRightX} {
		if err := s.DrawLine(ctx, x, bleedPt, x, heightPt-bleedPt, cyan, 1, false); err != nil {
			return err
		}
	}

	glueBandX := spineLeftX - hingePt
	glueBandW := spinePt + 2*hingePt
	pink := imposition.ColorPink
	glueBand := imposition.Rect{X: glueBandX, Y: bleedPt, W: glueBandW, H: heightPt - 2*bleedPt}
	if err := s.DrawRectangle(ctx, glueBand, &pink, nil, 0, false); err != nil {
		return err
	}
	if err := s.DrawText(ctx, "NO PRINTING - GLUE AREA", glueBandX+2, heightPt/2, 6, imposition.ColorBlack, 90); err != nil {
		return err
	}

	if err := s.DrawText(ctx, "INSIDE BACK COVER", bleedPt+6, heightPt/2, 9, imposition.ColorBlack, 0); err != nil {
		return err
	}
	return s.DrawText(ctx, "INSIDE FRONT COVER", spineRightX+hingePt+6, heightPt/2, 9, imposition.ColorBlack, 0)
}
