package coverspec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/catalog"
	"github.com/piwi3910/printcore/internal/imposition"
)

// fakeSurface records DrawingSurface calls without needing a PDF library.
type fakeSurface struct {
	pages int
	rects int
	lines int
	texts int
}

func (f *fakeSurface) StartDocument(ctx context.Context, label string) error { return nil }
func (f *fakeSurface) FinishDocument(ctx context.Context) (string, int64, error) {
	return "cover.pdf", 512, nil
}
func (f *fakeSurface) AddPage(ctx context.Context, w, h float64) error {
	f.pages++
	return nil
}
func (f *fakeSurface) EmbedPage(ctx context.Context, src imposition.PageSource, p imposition.PageHandle, clip *imposition.Rect) (imposition.EmbeddedHandle, error) {
	return 0, nil
}
func (f *fakeSurface) DrawEmbedded(ctx context.Context, h imposition.EmbeddedHandle, t imposition.Transform) error {
	return nil
}
func (f *fakeSurface) DrawRectangle(ctx context.Context, r imposition.Rect, fill, stroke *imposition.Color, lw float64, dashed bool) error {
	f.rects++
	return nil
}
func (f *fakeSurface) DrawLine(ctx context.Context, x1, y1, x2, y2 float64, c imposition.Color, lw float64, dashed bool) error {
	f.lines++
	return nil
}
func (f *fakeSurface) DrawText(ctx context.Context, text string, x, y, sizePt float64, c imposition.Color, rot float64) error {
	f.texts++
	return nil
}
func (f *fakeSurface) EmbedPNG(ctx context.Context, data []byte) (imposition.ImageHandle, error) {
	return 0, nil
}
func (f *fakeSurface) DrawImage(ctx context.Context, h imposition.ImageHandle, r imposition.Rect) error {
	return nil
}

func TestComputeSpineWidthScenarioE(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	out, err := Compute(cat, Input{
		InteriorType:   "opaque",
		InteriorWeight: 80,
		CoverType:      "silk",
		CoverWeight:    100,
		InteriorPages:  96,
		TrimWidthIn:    6,
		TrimHeightIn:   9,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.259, out.SpineWidthIn, 1e-9)
	assert.Empty(t, out.Warnings)
}

func TestComputeOddPageCountWarns(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	out, err := Compute(cat, Input{
		InteriorType:   "opaque",
		InteriorWeight: 80,
		CoverType:      "silk",
		CoverWeight:    100,
		InteriorPages:  97,
		TrimWidthIn:    6,
		TrimHeightIn:   9,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Warnings)
}

func TestComputeSpreadGeometry(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	in := Input{
		InteriorType:   "opaque",
		InteriorWeight: 80,
		CoverType:      "silk",
		CoverWeight:    100,
		InteriorPages:  96,
		TrimWidthIn:    6,
		TrimHeightIn:   9,
		BleedIn:        0.125,
	}
	out, err := Compute(cat, in)
	require.NoError(t, err)

	expectedW := 2*in.TrimWidthIn + out.SpineWidthIn + 2*in.BleedIn
	expectedH := in.TrimHeightIn + 2*in.BleedIn
	assert.InDelta(t, expectedW, out.SpreadWidthIn, 1e-6)
	assert.InDelta(t, expectedH, out.SpreadHeightIn, 1e-6)
}

func TestComputeRejectsZeroPages(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	_, err = Compute(cat, Input{InteriorType: "opaque", InteriorWeight: 80, CoverType: "silk", CoverWeight: 100, TrimWidthIn: 6, TrimHeightIn: 9})
	assert.Error(t, err)
}

func TestRenderTemplateDrawsTwoPages(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	in := Input{
		InteriorType: "opaque", InteriorWeight: 80,
		CoverType: "silk", CoverWeight: 100,
		InteriorPages: 96, TrimWidthIn: 6, TrimHeightIn: 9, BleedIn: 0.125,
	}
	out, err := Compute(cat, in)
	require.NoError(t, err)

	s := &fakeSurface{}
	require.NoError(t, RenderTemplate(context.Background(), s, in, out))
	assert.Equal(t, 2, s.pages)
	assert.Greater(t, s.rects, 0)
	assert.Greater(t, s.lines, 0)
	assert.Greater(t, s.texts, 0)
}
