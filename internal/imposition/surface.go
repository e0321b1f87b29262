package imposition

import "context"

// Transform is an affine placement for an embedded page or image: translate
// by (X, Y) points, then rotate by RotationDeg degrees about its own center,
// then scale by (ScaleX, ScaleY).
type Transform struct {
	X, Y         float64
	RotationDeg  float64
	ScaleX       float64
	ScaleY       float64
}

// PageHandle identifies one page of a source PDF, as returned by PageSource.
type PageHandle int

// EmbeddedHandle identifies a page embedded into the output document,
// as returned by DrawingSurface.EmbedPage.
type EmbeddedHandle int

// ImageHandle identifies a raster image embedded into the output document.
type ImageHandle int

// PageSource reads page geometry and content from an input PDF. Parsing a
// real PDF is out of scope (spec.md §1 Non-goals); production callers
// supply their own adapter, and tests use a fake.
type PageSource interface {
	PageCount(ctx context.Context) (int, error)
	PageSizePt(ctx context.Context, page PageHandle) (widthPt, heightPt float64, err error)
}

// DrawingSurface is the injected rendering sink described in spec.md §4.3
// ("Rendering"). It hides PDF-library specifics from the pagination and
// marking logic, which only ever deal in geometry.
type DrawingSurface interface {
	AddPage(ctx context.Context, widthPt, heightPt float64) error
	EmbedPage(ctx context.Context, src PageSource, page PageHandle, clip *Rect) (EmbeddedHandle, error)
	DrawEmbedded(ctx context.Context, h EmbeddedHandle, t Transform) error
	DrawRectangle(ctx context.Context, r Rect, fillColor *Color, strokeColor *Color, lineWidthPt float64, dashed bool) error
	DrawLine(ctx context.Context, x1, y1, x2, y2 float64, color Color, lineWidthPt float64, dashed bool) error
	DrawText(ctx context.Context, text string, x, y float64, sizePt float64, color Color, rotationDeg float64) error
	EmbedPNG(ctx context.Context, data []byte) (ImageHandle, error)
	DrawImage(ctx context.Context, h ImageHandle, r Rect) error

	// StartDocument opens a new output document under the given label;
	// FinishDocument flushes it to storage, returning its identifying label
	// (e.g. a file path) and byte size. Run calls each once per chunk.
	StartDocument(ctx context.Context, label string) error
	FinishDocument(ctx context.Context) (label string, byteSize int64, err error)
}

// Rect is a local alias kept distinct from geom.Rect so DrawingSurface
// implementations don't need to import internal/geom just for this shape;
// the two are field-for-field identical and freely convertible.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the rectangle's right edge x-coordinate.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the rectangle's top edge y-coordinate (PDF bottom-left space,
// so "top" is the larger y value).
func (r Rect) Top() float64 { return r.Y + r.H }

// Color is an RGB color in the 0-255 range per channel.
type Color struct {
	R, G, B uint8
}

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorCyan  = Color{0, 170, 170}
	ColorPink  = Color{230, 150, 190}
)

// QRGenerator produces a PNG-encoded QR code for the given payload string,
// sized to approximately targetSidePt points square.
type QRGenerator interface {
	EncodePNG(payload string, targetSidePt float64) ([]byte, error)
}
