package decoration

import (
	"image"
	"image/color"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/graphics"
)

var (
	red   = graphics.RGB(255, 0, 0)
	green = graphics.RGB(0, 255, 0)
	blue  = graphics.RGB(0, 0, 255)
)

// countingBorder wraps a ShapeBorder and counts path and paint requests.
type countingBorder struct {
	inner borders.ShapeBorder

	outerCalls int
	innerCalls int
	paintCalls int
}

func newCountingBorder(inner borders.ShapeBorder) *countingBorder {
	return &countingBorder{inner: inner}
}

func (c *countingBorder) Dimensions() graphics.EdgeInsets { return c.inner.Dimensions() }

func (c *countingBorder) OuterPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	c.outerCalls++
	return c.inner.OuterPath(rect, dir)
}

func (c *countingBorder) InnerPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	c.innerCalls++
	return c.inner.InnerPath(rect, dir)
}

func (c *countingBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection) {
	c.paintCalls++
	c.inner.Paint(canvas, rect, dir)
}

func (c *countingBorder) Scale(t float64) borders.ShapeBorder { return c.inner.Scale(t) }

func (c *countingBorder) LerpFrom(borders.ShapeBorder, float64) borders.ShapeBorder { return nil }

func (c *countingBorder) LerpTo(borders.ShapeBorder, float64) borders.ShapeBorder { return nil }

func (c *countingBorder) Add(borders.ShapeBorder) borders.ShapeBorder { return nil }

func (c *countingBorder) Equal(other borders.ShapeBorder) bool {
	o, ok := other.(*countingBorder)
	return ok && o == c
}

func (c *countingBorder) Hash() uint64 { return c.inner.Hash() }

func (c *countingBorder) String() string { return "counting(" + c.inner.String() + ")" }

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func roundedBorder(width, radius float64) borders.RoundedRectangleBorder {
	return borders.RoundedRectangleBorder{
		Side:         borders.BorderSide{Color: red, Width: width},
		BorderRadius: borders.BorderRadiusCircular(radius),
	}
}
