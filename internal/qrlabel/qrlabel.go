// Package qrlabel generates the QR-code PNG embedded in the imposition
// engine's job slug strip, grounded on SlabCut's export.ExportLabels /
// renderLabel QR-generation path.
package qrlabel

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/printcore/internal/perrors"
)

// Generator implements imposition.QRGenerator on top of
// github.com/skip2/go-qrcode.
type Generator struct {
	// RecoveryLevel defaults to qrcode.Medium when zero-valued callers use
	// the NewGenerator constructor instead of a bare struct literal.
	RecoveryLevel qrcode.RecoveryLevel
}

// NewGenerator returns a Generator with medium error-correction, matching
// SlabCut's renderLabel QR codes.
func NewGenerator() *Generator {
	return &Generator{RecoveryLevel: qrcode.Medium}
}

// EncodePNG renders payload as a square PNG QR code. targetSidePt sizes
// the raster in pixels at a fixed 4px/pt density, which is plenty for the
// small slug-strip reproduction size the imposition engine embeds it at.
func (g *Generator) EncodePNG(payload string, targetSidePt float64) ([]byte, error) {
	sizePx := int(targetSidePt * 4)
	if sizePx < 64 {
		sizePx = 64
	}
	png, err := qrcode.Encode(payload, g.RecoveryLevel, sizePx)
	if err != nil {
		return nil, perrors.Wrap(perrors.QrGenerationError, fmt.Sprintf("encoding QR payload of %d bytes", len(payload)), err)
	}
	return png, nil
}
