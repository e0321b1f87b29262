// Package pdfsurface implements the imposition engine's DrawingSurface on
// top of github.com/go-pdf/fpdf, grounded on SlabCut's
// export.ExportPDF/renderSheetPage (page creation, Rect, Line, CellFormat,
// TransformBegin/Rotate/End for rotated text) and export.ExportLabels/
// renderLabel (RegisterImageOptionsReader, ImageOptions for QR/raster
// embedding).
//
// Embedding another PDF's page content verbatim requires a dedicated PDF
// importer library that neither the teacher nor the rest of the retrieved
// pack depends on; since spec.md §1 explicitly places PDF parsing out of
// scope, EmbedPage here returns a lightweight handle and DrawEmbedded
// renders a labeled placeholder box at the target transform rather than
// importing real page content. Production wiring of a real importer is a
// replacement of EmbedPage and DrawEmbedded.
package pdfsurface

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/printcore/internal/imposition"
	"github.com/piwi3910/printcore/internal/perrors"
)

// Surface implements imposition.DrawingSurface. It is not safe for
// concurrent use; the imposition engine is single-threaded per spec.md §5.
type Surface struct {
	OutputDir string

	pdf          *fpdf.Fpdf
	pageCount    int
	nextEmbedded imposition.EmbeddedHandle
	nextImage    imposition.ImageHandle
	embeds       map[imposition.EmbeddedHandle]embedRecord
	images       map[imposition.ImageHandle]string
	label        string
}

type embedRecord struct {
	page imposition.PageHandle
	clip *imposition.Rect
}

// New returns a Surface that writes chunked output PDFs into dir.
func New(outputDir string) *Surface {
	return &Surface{
		OutputDir: outputDir,
		embeds:    make(map[imposition.EmbeddedHandle]embedRecord),
		images:    make(map[imposition.ImageHandle]string),
	}
}

func (s *Surface) StartDocument(ctx context.Context, label string) error {
	s.pdf = fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "",
		Size:           fpdf.SizeType{Wd: 612, Ht: 792},
		FontDirStr:     "",
	})
	s.pdf.SetAutoPageBreak(false, 0)
	s.pageCount = 0
	s.label = label
	s.embeds = make(map[imposition.EmbeddedHandle]embedRecord)
	s.images = make(map[imposition.ImageHandle]string)
	s.nextEmbedded = 0
	s.nextImage = 0
	return nil
}

func (s *Surface) FinishDocument(ctx context.Context) (string, int64, error) {
	if s.pdf == nil {
		return "", 0, perrors.New(perrors.PdfRenderError, "FinishDocument called before StartDocument")
	}
	path := fmt.Sprintf("%s/%s.pdf", s.OutputDir, s.label)
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return "", 0, perrors.Wrap(perrors.PdfRenderError, "serializing output document", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", 0, perrors.Wrap(perrors.PdfRenderError, "writing output document", err)
	}
	return path, int64(buf.Len()), nil
}

func (s *Surface) AddPage(ctx context.Context, widthPt, heightPt float64) error {
	s.pdf.AddPageFormat("P", fpdf.SizeType{Wd: widthPt, Ht: heightPt})
	s.pageCount++
	return nil
}

func (s *Surface) EmbedPage(ctx context.Context, src imposition.PageSource, page imposition.PageHandle, clip *imposition.Rect) (imposition.EmbeddedHandle, error) {
	h := s.nextEmbedded
	s.nextEmbedded++
	s.embeds[h] = embedRecord{page: page, clip: clip}
	return h, nil
}

// pdfY converts a bottom-left-origin y coordinate (PDF/imposition
// convention) to fpdf's top-left-origin y, given the current page height.
func (s *Surface) pdfY(y, objectH float64) float64 {
	_, ph := s.pdf.GetPageSize()
	return ph - y - objectH
}

func (s *Surface) DrawEmbedded(ctx context.Context, h imposition.EmbeddedHandle, t imposition.Transform) error {
	rec, ok := s.embeds[h]
	if !ok {
		return perrors.New(perrors.PdfRenderError, fmt.Sprintf("unknown embedded handle %d", h))
	}
	w, hh := 1.0, 1.0
	if rec.clip != nil {
		w, hh = rec.clip.W, rec.clip.H
	}
	w *= t.ScaleX
	hh *= t.ScaleY

	s.pdf.TransformBegin()
	if t.RotationDeg != 0 {
		s.pdf.TransformRotate(t.RotationDeg, t.X+w/2, s.pdfY(t.Y, hh)+hh/2)
	}
	s.pdf.SetDrawColor(150, 150, 150)
	s.pdf.SetLineWidth(0.5)
	s.pdf.Rect(t.X, s.pdfY(t.Y, hh), w, hh, "D")
	s.pdf.SetFont("Helvetica", "", 6)
	label := fmt.Sprintf("p%d", rec.page+1)
	labelW := s.pdf.GetStringWidth(label)
	s.pdf.SetXY(t.X+(w-labelW)/2, s.pdfY(t.Y, hh)+hh/2-2)
	s.pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
	s.pdf.TransformEnd()
	return nil
}

func rgb(c imposition.Color) (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

func (s *Surface) DrawRectangle(ctx context.Context, r imposition.Rect, fillColor, strokeColor *imposition.Color, lineWidthPt float64, dashed bool) error {
	style := ""
	if fillColor != nil {
		fr, fg, fb := rgb(*fillColor)
		s.pdf.SetFillColor(fr, fg, fb)
		style += "F"
	}
	if strokeColor != nil {
		sr, sg, sb := rgb(*strokeColor)
		s.pdf.SetDrawColor(sr, sg, sb)
		if lineWidthPt > 0 {
			s.pdf.SetLineWidth(lineWidthPt)
		}
		style += "D"
	}
	if style == "" {
		style = "D"
	}
	s.pdf.Rect(r.X, s.pdfY(r.Y, r.H), r.W, r.H, style)
	return nil
}

func (s *Surface) DrawLine(ctx context.Context, x1, y1, x2, y2 float64, color imposition.Color, lineWidthPt float64, dashed bool) error {
	r, g, b := rgb(color)
	s.pdf.SetDrawColor(r, g, b)
	if lineWidthPt > 0 {
		s.pdf.SetLineWidth(lineWidthPt)
	}
	if dashed {
		s.pdf.SetDashPattern([]float64{2, 2}, 0)
	} else {
		s.pdf.SetDashPattern([]float64{}, 0)
	}
	s.pdf.Line(x1, s.pdfY(y1, 0), x2, s.pdfY(y2, 0))
	return nil
}

func (s *Surface) DrawText(ctx context.Context, text string, x, y float64, sizePt float64, color imposition.Color, rotationDeg float64) error {
	r, g, b := rgb(color)
	s.pdf.SetTextColor(r, g, b)
	s.pdf.SetFont("Helvetica", "", sizePt)
	w := s.pdf.GetStringWidth(text)

	s.pdf.TransformBegin()
	if rotationDeg != 0 {
		s.pdf.TransformRotate(rotationDeg, x, s.pdfY(y, 0))
	}
	s.pdf.SetXY(x, s.pdfY(y, 0)-sizePt/2)
	s.pdf.CellFormat(w, sizePt, text, "", 0, "L", false, 0, "")
	s.pdf.TransformEnd()
	return nil
}

func (s *Surface) EmbedPNG(ctx context.Context, data []byte) (imposition.ImageHandle, error) {
	h := s.nextImage
	s.nextImage++
	name := fmt.Sprintf("img_%d", h)
	s.pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	s.images[h] = name
	return h, nil
}

func (s *Surface) DrawImage(ctx context.Context, h imposition.ImageHandle, r imposition.Rect) error {
	name, ok := s.images[h]
	if !ok {
		return perrors.New(perrors.PdfRenderError, fmt.Sprintf("unknown image handle %d", h))
	}
	s.pdf.ImageOptions(name, r.X, s.pdfY(r.Y, r.H), r.W, r.H, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
