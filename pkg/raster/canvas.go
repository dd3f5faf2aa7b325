package raster

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// Canvas implements graphics.Canvas on top of a gg.Context.
//
// Canvas is not safe for concurrent use. Drawing failures reported by gg
// do not interrupt painting; the first one is kept and returned by Err.
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int

	// saves records, per Save or SaveLayerAlpha, whether a layer was pushed.
	saves []bool
	err   error
}

var _ graphics.Canvas = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Close releases the underlying gg context.
func (c *Canvas) Close() error {
	return c.ctx.Close()
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns a snapshot of the rendered pixels.
func (c *Canvas) Image() *image.RGBA {
	img := c.ctx.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// EncodePNG writes the rendered pixels as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := c.ctx.EncodePNG(w); err != nil {
		return errors.Wrap("raster.Canvas.EncodePNG", errors.KindRender, err)
	}
	return nil
}

// SavePNG writes the rendered pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return errors.Wrap("raster.Canvas.SavePNG", errors.KindRender, err)
	}
	return nil
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() graphics.Size {
	return graphics.Size{Width: float64(c.width), Height: float64(c.height)}
}

// Save pushes the current transform and clip.
func (c *Canvas) Save() {
	c.ctx.Push()
	c.saves = append(c.saves, false)
}

// SaveLayerAlpha starts a layer that is composited with alpha on Restore.
// Bounds is a hint and is not used.
func (c *Canvas) SaveLayerAlpha(_ graphics.Rect, alpha float64) {
	c.ctx.Push()
	c.ctx.PushLayer(gg.BlendNormal, alpha)
	c.saves = append(c.saves, true)
}

// Restore pops the most recent Save or SaveLayerAlpha. Unbalanced calls
// are ignored.
func (c *Canvas) Restore() {
	n := len(c.saves)
	if n == 0 {
		return
	}
	if c.saves[n-1] {
		c.ctx.PopLayer()
	}
	c.saves = c.saves[:n-1]
	c.ctx.Pop()
}

// Translate moves the origin.
func (c *Canvas) Translate(dx, dy float64) {
	c.ctx.Translate(dx, dy)
}

// ClipRect intersects the clip with rect.
func (c *Canvas) ClipRect(rect graphics.Rect) {
	c.ctx.ClipRect(rect.Left, rect.Top, rect.Width(), rect.Height())
}

// ClipPath intersects the clip with the interior of path.
func (c *Canvas) ClipPath(path *graphics.Path) {
	if path == nil {
		return
	}
	c.ctx.ClearPath()
	appendPath(c.ctx, path)
	c.ctx.Clip()
}

// DrawRect draws rect with paint.
func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	path := graphics.NewPath()
	path.AddRect(rect)
	c.DrawPath(path, paint)
}

// DrawRRect draws rrect with paint.
func (c *Canvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	path := graphics.NewPath()
	path.AddRRect(rrect)
	c.DrawPath(path, paint)
}

// DrawPath fills or strokes path with paint.
func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path == nil || path.IsEmpty() {
		return
	}
	if paint.Shader == nil && paint.Color.Alpha() == 0 {
		return
	}
	if paint.MaskBlurSigma > 0 && paint.Style == graphics.PaintStyleFill {
		c.drawBlurred(path, paint)
		return
	}
	c.ctx.ClearPath()
	appendPath(c.ctx, path)
	c.ctx.SetFillBrush(c.brush(paint))
	c.ctx.SetFillRule(fillRule(path.FillRule))
	if paint.Style == graphics.PaintStyleStroke {
		c.ctx.SetLineWidth(paint.StrokeWidth)
		c.ctx.SetLineJoin(lineJoin(paint.StrokeJoin))
		c.record("raster.Canvas.DrawPath", c.ctx.Stroke())
		return
	}
	c.record("raster.Canvas.DrawPath", c.ctx.Fill())
}

// DrawImageRect draws the srcRect region of img scaled into dstRect.
//
// The image is resampled into device space with the interpolator matching
// quality, then filled as a pattern over dstRect so the clip applies.
func (c *Canvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality) {
	if img == nil {
		return
	}
	src := img.Bounds()
	if srcRect != (graphics.Rect{}) {
		src = image.Rect(
			src.Min.X+int(math.Floor(srcRect.Left)), src.Min.Y+int(math.Floor(srcRect.Top)),
			src.Min.X+int(math.Ceil(srcRect.Right)), src.Min.Y+int(math.Ceil(srcRect.Bottom)),
		).Intersect(src)
	}
	dst := c.deviceRect(dstRect)
	visible := dst.Intersect(image.Rect(0, 0, c.width, c.height))
	if src.Empty() || visible.Empty() {
		return
	}

	// The pattern samples at device coordinates modulo its size, so the
	// scaled image is placed on a canvas-sized buffer.
	buf := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	interpolator(quality).Scale(buf, dst, img, src, draw.Src, nil)
	c.fillDevice(visible, buf, "raster.Canvas.DrawImageRect")
}

// fillDevice fills the device rect r with the pixels of a canvas-sized
// straight-alpha buffer. The current clip applies.
func (c *Canvas) fillDevice(r image.Rectangle, buf *image.NRGBA, op string) {
	c.ctx.Push()
	defer c.ctx.Pop()
	c.ctx.Identity()
	c.ctx.ClearPath()
	addRect(c.ctx, r)
	c.ctx.SetFillRule(gg.FillRuleNonZero)
	c.ctx.SetFillPattern(c.ctx.CreateImagePattern(gg.ImageBufFromImage(buf), 0, 0, 0, 0))
	c.record(op, c.ctx.Fill())
}

func (c *Canvas) record(op string, err error) {
	if err != nil && c.err == nil {
		c.err = errors.Wrap(op, errors.KindRender, err)
	}
}

// appendPath adds path to ctx's current path in local coordinates.
func appendPath(ctx *gg.Context, path *graphics.Path) {
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			ctx.MoveTo(a[0], a[1])
		case graphics.PathOpLineTo:
			ctx.LineTo(a[0], a[1])
		case graphics.PathOpQuadTo:
			ctx.QuadraticTo(a[0], a[1], a[2], a[3])
		case graphics.PathOpCubicTo:
			ctx.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case graphics.PathOpClose:
			ctx.ClosePath()
		}
	}
}

// deviceRect maps a local rect to whole device pixels.
func (c *Canvas) deviceRect(r graphics.Rect) image.Rectangle {
	x0, y0 := c.ctx.TransformPoint(r.Left, r.Top)
	x1, y1 := c.ctx.TransformPoint(r.Right, r.Bottom)
	return image.Rect(
		int(math.Round(math.Min(x0, x1))), int(math.Round(math.Min(y0, y1))),
		int(math.Round(math.Max(x0, x1))), int(math.Round(math.Max(y0, y1))),
	)
}

// devicePoint maps a local point to device space. Gradient brushes are
// evaluated at device coordinates.
func (c *Canvas) devicePoint(o graphics.Offset) (float64, float64) {
	return c.ctx.TransformPoint(o.X, o.Y)
}

func (c *Canvas) brush(paint graphics.Paint) gg.Brush {
	s := paint.Shader
	if s == nil || len(s.Stops) == 0 {
		return gg.Solid(toRGBA(paint.Color))
	}
	switch s.Type {
	case graphics.GradientTypeLinear:
		x0, y0 := c.devicePoint(s.Start)
		x1, y1 := c.devicePoint(s.End)
		b := gg.NewLinearGradientBrush(x0, y0, x1, y1).SetExtend(extendMode(s.TileMode))
		for _, stop := range s.Stops {
			b.AddColorStop(stop.Position, toRGBA(stop.Color))
		}
		return b
	case graphics.GradientTypeRadial:
		cx, cy := c.devicePoint(s.Center)
		b := gg.NewRadialGradientBrush(cx, cy, 0, s.Radius).SetExtend(extendMode(s.TileMode))
		for _, stop := range s.Stops {
			b.AddColorStop(stop.Position, toRGBA(stop.Color))
		}
		return b
	case graphics.GradientTypeSweep:
		cx, cy := c.devicePoint(s.Center)
		b := gg.NewSweepGradientBrush(cx, cy, s.StartAngle).SetExtend(extendMode(s.TileMode))
		if s.EndAngle != s.StartAngle {
			b.SetEndAngle(s.EndAngle)
		}
		for _, stop := range s.Stops {
			b.AddColorStop(stop.Position, toRGBA(stop.Color))
		}
		return b
	default:
		return gg.Solid(toRGBA(paint.Color))
	}
}

func addRect(ctx *gg.Context, r image.Rectangle) {
	ctx.MoveTo(float64(r.Min.X), float64(r.Min.Y))
	ctx.LineTo(float64(r.Max.X), float64(r.Min.Y))
	ctx.LineTo(float64(r.Max.X), float64(r.Max.Y))
	ctx.LineTo(float64(r.Min.X), float64(r.Max.Y))
	ctx.ClosePath()
}

func toRGBA(c graphics.Color) gg.RGBA {
	r, g, b, a := c.RGBAF()
	return gg.RGBA2(r, g, b, a)
}

func fillRule(r graphics.PathFillRule) gg.FillRule {
	if r == graphics.FillRuleEvenOdd {
		return gg.FillRuleEvenOdd
	}
	return gg.FillRuleNonZero
}

func lineJoin(j graphics.StrokeJoin) gg.LineJoin {
	switch j {
	case graphics.JoinRound:
		return gg.LineJoinRound
	case graphics.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func extendMode(m graphics.TileMode) gg.ExtendMode {
	switch m {
	case graphics.TileModeRepeated:
		return gg.ExtendRepeat
	case graphics.TileModeMirror:
		return gg.ExtendReflect
	default:
		return gg.ExtendPad
	}
}

func interpolator(q graphics.FilterQuality) draw.Interpolator {
	switch q {
	case graphics.FilterQualityNone:
		return draw.NearestNeighbor
	case graphics.FilterQualityLow:
		return draw.ApproxBiLinear
	case graphics.FilterQualityHigh:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}
