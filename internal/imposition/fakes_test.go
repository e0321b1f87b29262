package imposition

import (
	"context"
	"errors"
)

// fakePageSource is a uniform-page-size stand-in for a real PDF reader,
// used because parsing a real PDF is out of scope (spec.md §1 Non-goals).
type fakePageSource struct {
	pages    int
	widthPt  float64
	heightPt float64
	failErr  error
}

func (f *fakePageSource) PageCount(ctx context.Context) (int, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	return f.pages, nil
}

func (f *fakePageSource) PageSizePt(ctx context.Context, page PageHandle) (float64, float64, error) {
	if f.failErr != nil {
		return 0, 0, f.failErr
	}
	return f.widthPt, f.heightPt, nil
}

// fakeSurface records calls rather than producing real output, so render
// logic can be exercised without a PDF library.
type fakeSurface struct {
	pagesAdded     int
	embeds         int
	drawnEmbedded  int
	rects          int
	lines          int
	texts          int
	images         int
	documentsBegun int
	finished       int
	nextEmbed      EmbeddedHandle
	nextImage      ImageHandle
}

func (f *fakeSurface) StartDocument(ctx context.Context, label string) error {
	f.documentsBegun++
	return nil
}

func (f *fakeSurface) FinishDocument(ctx context.Context) (string, int64, error) {
	f.finished++
	return "fake-output.pdf", 1024, nil
}

func (f *fakeSurface) AddPage(ctx context.Context, widthPt, heightPt float64) error {
	f.pagesAdded++
	return nil
}

func (f *fakeSurface) EmbedPage(ctx context.Context, src PageSource, page PageHandle, clip *Rect) (EmbeddedHandle, error) {
	f.embeds++
	f.nextEmbed++
	return f.nextEmbed, nil
}

func (f *fakeSurface) DrawEmbedded(ctx context.Context, h EmbeddedHandle, t Transform) error {
	f.drawnEmbedded++
	return nil
}

func (f *fakeSurface) DrawRectangle(ctx context.Context, r Rect, fillColor *Color, strokeColor *Color, lineWidthPt float64, dashed bool) error {
	f.rects++
	return nil
}

func (f *fakeSurface) DrawLine(ctx context.Context, x1, y1, x2, y2 float64, color Color, lineWidthPt float64, dashed bool) error {
	f.lines++
	return nil
}

func (f *fakeSurface) DrawText(ctx context.Context, text string, x, y float64, sizePt float64, color Color, rotationDeg float64) error {
	f.texts++
	return nil
}

func (f *fakeSurface) EmbedPNG(ctx context.Context, data []byte) (ImageHandle, error) {
	f.images++
	f.nextImage++
	return f.nextImage, nil
}

func (f *fakeSurface) DrawImage(ctx context.Context, h ImageHandle, r Rect) error {
	return nil
}

// fakeQR avoids depending on a real QR-encoding library in tests.
type fakeQR struct {
	failErr error
}

func (f *fakeQR) EncodePNG(payload string, targetSidePt float64) ([]byte, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	return []byte("fake-png-bytes"), nil
}

var errFakeSourceFailed = errors.New("fake source failure")
