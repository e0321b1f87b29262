package pdfsurface

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/printcore/internal/imposition"
	"github.com/piwi3910/printcore/internal/qrlabel"
)

func TestSurfaceWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	require.NoError(t, s.StartDocument(ctx, "job1"))
	require.NoError(t, s.AddPage(ctx, 612, 792))

	red := imposition.Color{R: 200, G: 0, B: 0}
	require.NoError(t, s.DrawRectangle(ctx, imposition.Rect{X: 10, Y: 10, W: 100, H: 50}, &red, &imposition.ColorBlack, 1, false))
	require.NoError(t, s.DrawLine(ctx, 0, 0, 100, 100, imposition.ColorBlack, 0.5, true))
	require.NoError(t, s.DrawText(ctx, "hello", 20, 20, 10, imposition.ColorBlack, 0))

	path, size, err := s.FinishDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "job1.pdf"), path)
	assert.Greater(t, size, int64(0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, size, info.Size())
}

func TestSurfaceEmbedPageAndDrawEmbeddedPlaceholder(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()

	require.NoError(t, s.StartDocument(ctx, "job2"))
	require.NoError(t, s.AddPage(ctx, 612, 792))

	h, err := s.EmbedPage(ctx, nil, imposition.PageHandle(0), &imposition.Rect{W: 200, H: 300})
	require.NoError(t, err)
	require.NoError(t, s.DrawEmbedded(ctx, h, imposition.Transform{X: 50, Y: 50, RotationDeg: 90, ScaleX: 1, ScaleY: 1}))

	_, _, err = s.FinishDocument(ctx)
	require.NoError(t, err)
}

func TestSurfaceDrawEmbeddedUnknownHandleErrors(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()
	require.NoError(t, s.StartDocument(ctx, "job3"))
	require.NoError(t, s.AddPage(ctx, 612, 792))

	err := s.DrawEmbedded(ctx, imposition.EmbeddedHandle(99), imposition.Transform{ScaleX: 1, ScaleY: 1})
	assert.Error(t, err)
}

func TestSurfaceEmbedsRealQRPNG(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	ctx := context.Background()
	require.NoError(t, s.StartDocument(ctx, "job4"))
	require.NoError(t, s.AddPage(ctx, 612, 792))

	gen := qrlabel.NewGenerator()
	png, err := gen.EncodePNG("job=J1", 56.7)
	require.NoError(t, err)

	imgHandle, err := s.EmbedPNG(ctx, png)
	require.NoError(t, err)
	require.NoError(t, s.DrawImage(ctx, imgHandle, imposition.Rect{X: 6, Y: 6, W: 56.7, H: 56.7}))

	_, size, err := s.FinishDocument(ctx)
	require.NoError(t, err)
	assert.Greater(t, size, int64(0))
}

func TestSurfaceFinishBeforeStartErrors(t *testing.T) {
	s := New(t.TempDir())
	_, _, err := s.FinishDocument(context.Background())
	assert.Error(t, err)
}
