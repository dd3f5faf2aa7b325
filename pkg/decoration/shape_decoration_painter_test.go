package decoration

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shapefill/pkg/graphics"
	shapetest "github.com/go-drift/shapefill/pkg/testing"
)

var cfg100x50 = ImageConfiguration{Size: graphics.Size{Width: 100, Height: 50}, TextDirection: graphics.TextDirectionLTR}

func newPainter(t *testing.T, d *ShapeDecoration, onChanged func()) *shapeDecorationPainter {
	t.Helper()
	bp, err := d.CreateBoxPainter(onChanged)
	require.NoError(t, err)
	return bp.(*shapeDecorationPainter)
}

func TestPainter_SameRectDoesNotRebuildPaths(t *testing.T) {
	shape := newCountingBorder(roundedBorder(2, 8))
	d := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: shape})
	p := newPainter(t, d, nil)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	assert.Equal(t, 1, shape.outerCalls)
	assert.Equal(t, 0, shape.innerCalls)
	assert.Equal(t, 2, shape.paintCalls)

	p.Paint(canvas, graphics.Offset{X: 10}, cfg100x50)
	assert.Equal(t, 2, shape.outerCalls)
}

func TestPainter_TextDirectionChangeRebuilds(t *testing.T) {
	shape := newCountingBorder(roundedBorder(2, 8))
	d := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: shape})
	p := newPainter(t, d, nil)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	rtl := cfg100x50
	rtl.TextDirection = graphics.TextDirectionRTL
	p.Paint(canvas, graphics.Offset{}, rtl)
	assert.Equal(t, 2, shape.outerCalls)
	assert.Equal(t, graphics.TextDirectionRTL, p.state.textDirection)
}

func TestPainter_NothingToFillSkipsOuterPath(t *testing.T) {
	shape := newCountingBorder(roundedBorder(2, 8))
	d := MustShapeDecoration(ShapeDecorationConfig{Shape: shape})
	p := newPainter(t, d, nil)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	assert.Equal(t, 0, shape.outerCalls)
	assert.Nil(t, p.interiorPaint)
	assert.Nil(t, p.state.outerPath)
	assert.Equal(t, []string{"drawPath"}, canvas.OpNames())
}

func TestPainter_ShadowPaintsBuiltOnceShadowPathsEveryRect(t *testing.T) {
	shape := newCountingBorder(roundedBorder(0, 4))
	d := MustShapeDecoration(ShapeDecorationConfig{
		Color: blue,
		Shadows: []graphics.BoxShadow{
			{Color: graphics.RGBA(0, 0, 0, 80), Offset: graphics.Offset{Y: 2}, BlurRadius: 4},
			{Color: graphics.RGBA(0, 0, 0, 40), Offset: graphics.Offset{Y: 6}, BlurRadius: 8, Spread: 1},
		},
		Shape: shape,
	})
	p := newPainter(t, d, nil)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	require.Len(t, p.shadowPaints, 2)
	firstPaints := &p.shadowPaints[0]
	firstPaths := p.state.shadowPaths
	assert.Equal(t, 3, shape.outerCalls)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	assert.Equal(t, 3, shape.outerCalls)

	p.Paint(canvas, graphics.Offset{X: 5, Y: 5}, cfg100x50)
	assert.Equal(t, 6, shape.outerCalls)
	assert.Same(t, firstPaints, &p.shadowPaints[0])
	assert.NotSame(t, firstPaths[0], p.state.shadowPaths[0])

	bounds := p.state.shadowPaths[1].Bounds()
	assert.Equal(t, graphics.Rect{Left: 4, Top: 10, Right: 106, Bottom: 62}, bounds)
	assert.InDelta(t, 4, p.shadowPaints[1].MaskBlurSigma, 1e-9)
}

func TestPainter_GradientShaderFollowsRect(t *testing.T) {
	grad := graphics.NewLinearGradient(graphics.AlignmentCenterLeft, graphics.AlignmentCenterRight, graphics.EvenStops(red, blue))
	d := MustShapeDecoration(ShapeDecorationConfig{Gradient: grad, Shape: roundedBorder(0, 0)})
	p := newPainter(t, d, nil)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	paint := p.interiorPaint
	require.NotNil(t, paint.Shader)
	assert.Equal(t, graphics.Offset{X: 0, Y: 25}, paint.Shader.Start)

	p.Paint(canvas, graphics.Offset{X: 20}, cfg100x50)
	assert.Same(t, paint, p.interiorPaint)
	assert.Equal(t, graphics.Offset{X: 20, Y: 25}, p.interiorPaint.Shader.Start)
	assert.Equal(t, graphics.Offset{X: 120, Y: 25}, p.interiorPaint.Shader.End)
	assert.Equal(t, "linear", canvas.Ops()[len(canvas.Ops())-1].Params["shader"])
}

func TestPainter_PaintOrder(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{
		Color:   blue,
		Shadows: []graphics.BoxShadow{{Color: graphics.RGBA(0, 0, 0, 64), BlurRadius: 6}},
		Image:   &DecorationImage{Provider: NewMemoryImage(solidImage(4, 4, color.White))},
		Shape:   roundedBorder(2, 8),
	})
	p := newPainter(t, d, func() {})
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)

	// shadow, fill, clipped image, outline
	require.Equal(t, []string{
		"drawPath",
		"drawPath",
		"save", "clipPath", "drawImageRect", "restore",
		"drawPath",
	}, canvas.OpNames())
	ops := canvas.Ops()
	assert.Equal(t, 3.0, ops[0].Params["blurSigma"])
	assert.Equal(t, "0xFF0000FF", ops[1].Params["color"])
	assert.Equal(t, "0xFFFF0000", ops[6].Params["color"])
	assert.Equal(t, graphics.FillRuleEvenOdd.String(), ops[6].Params["fillRule"])
}

func TestPainter_ImageClippedToInnerPath(t *testing.T) {
	shape := newCountingBorder(roundedBorder(5, 8))
	d := MustShapeDecoration(ShapeDecorationConfig{
		Image: &DecorationImage{Provider: NewMemoryImage(solidImage(4, 4, color.White)), Fit: ImageFitFill},
		Shape: shape,
	})
	p := newPainter(t, d, func() {})
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	assert.Equal(t, 1, shape.innerCalls)
	assert.Equal(t, 0, shape.outerCalls)

	clip := canvas.Ops()[1]
	require.Equal(t, "clipPath", clip.Op)
	bounds := clip.Params["bounds"].(map[string]any)
	assert.Equal(t, 5.0, bounds["left"])
	assert.Equal(t, 95.0, bounds["right"])

	img := canvas.Ops()[2]
	require.Equal(t, "drawImageRect", img.Op)
	dst := img.Params["dst"].(map[string]any)
	assert.Equal(t, 0.0, dst["left"])
	assert.Equal(t, 100.0, dst["right"])
}

func TestPainter_AsyncImageNotifiesAndPaints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(8, 8, color.Black)))
	require.NoError(t, f.Close())

	changed := make(chan struct{}, 1)
	onChanged := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	d := MustShapeDecoration(ShapeDecorationConfig{
		Image: &DecorationImage{Provider: FileImage{Path: path}},
		Shape: roundedBorder(0, 0),
	})
	p := newPainter(t, d, onChanged)
	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)

	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	if canvas.Count("drawImageRect") == 0 {
		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("onChanged was not called")
		}
		canvas.Reset()
		p.Paint(canvas, graphics.Offset{}, cfg100x50)
	}
	assert.Equal(t, 1, canvas.Count("drawImageRect"))
}

func TestPainter_DisposeReleasesImagePainter(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{
		Image: &DecorationImage{Provider: NewMemoryImage(solidImage(2, 2, color.White))},
		Shape: roundedBorder(1, 2),
	})
	p := newPainter(t, d, func() {})
	p.Paint(shapetest.NewRecordingCanvas(cfg100x50.Size), graphics.Offset{}, cfg100x50)
	imagePainter := p.imagePainter
	require.NotNil(t, imagePainter)

	p.Dispose()
	assert.True(t, imagePainter.disposed)
	assert.Nil(t, imagePainter.Image())
	assert.Nil(t, p.onChanged)
	assert.Nil(t, p.imagePainter)

	canvas := shapetest.NewRecordingCanvas(cfg100x50.Size)
	p.Paint(canvas, graphics.Offset{}, cfg100x50)
	assert.Empty(t, canvas.Ops())
	assert.Nil(t, p.imagePainter)

	assert.NotPanics(t, p.Dispose)
}

func TestPainter_DisposeWithoutImage(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(1, 2)})
	p := newPainter(t, d, nil)
	assert.NotPanics(t, func() {
		p.Dispose()
		p.Dispose()
	})
}
