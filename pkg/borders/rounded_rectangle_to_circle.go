package borders

import (
	"fmt"
	"math"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// roundedRectangleToCircleBorder is the intermediate shape produced while
// morphing between a RoundedRectangleBorder and a CircleBorder.
//
// Circularity 0 is the rounded rectangle; 1 is the circle.
type roundedRectangleToCircleBorder struct {
	Side         BorderSide
	BorderRadius BorderRadius
	Circularity  float64
}

// adjustRect pulls the longer dimension of rect toward a square.
func (b roundedRectangleToCircleBorder) adjustRect(rect graphics.Rect) graphics.Rect {
	if b.Circularity == 0 || rect.Width() == rect.Height() {
		return rect
	}
	if rect.Width() < rect.Height() {
		delta := b.Circularity * (rect.Height() - rect.Width()) / 2
		return graphics.Rect{Left: rect.Left, Top: rect.Top + delta, Right: rect.Right, Bottom: rect.Bottom - delta}
	}
	delta := b.Circularity * (rect.Width() - rect.Height()) / 2
	return graphics.Rect{Left: rect.Left + delta, Top: rect.Top, Right: rect.Right - delta, Bottom: rect.Bottom}
}

func (b roundedRectangleToCircleBorder) adjustBorderRadius(rect graphics.Rect) BorderRadius {
	if b.Circularity == 0 {
		return b.BorderRadius
	}
	return LerpBorderRadius(b.BorderRadius, BorderRadiusCircular(rect.ShortestSide()/2), b.Circularity)
}

func (b roundedRectangleToCircleBorder) outer(rect graphics.Rect) graphics.RRect {
	return b.adjustBorderRadius(rect).ToRRect(b.adjustRect(rect))
}

// Dimensions implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Dimensions() graphics.EdgeInsets {
	return graphics.EdgeInsetsAll(b.Side.EffectiveWidth())
}

// OuterPath implements ShapeBorder.
func (b roundedRectangleToCircleBorder) OuterPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(b.outer(rect))
	return path
}

// InnerPath implements ShapeBorder.
func (b roundedRectangleToCircleBorder) InnerPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(b.outer(rect).Deflate(b.Side.EffectiveWidth()))
	return path
}

// Paint implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection) {
	if !b.Side.IsVisible() {
		return
	}
	strokeBand(canvas, b.OuterPath(rect, dir), b.InnerPath(rect, dir), b.Side)
}

// Scale implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Scale(t float64) ShapeBorder {
	return roundedRectangleToCircleBorder{
		Side:         b.Side.Scale(t),
		BorderRadius: b.BorderRadius.Scale(t),
		Circularity:  b.Circularity,
	}
}

// LerpFrom implements ShapeBorder.
func (b roundedRectangleToCircleBorder) LerpFrom(a ShapeBorder, t float64) ShapeBorder {
	switch a := a.(type) {
	case RoundedRectangleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: LerpBorderRadius(a.BorderRadius, b.BorderRadius, t),
			Circularity:  b.Circularity * t,
		}
	case CircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: b.BorderRadius,
			Circularity:  b.Circularity + (1-b.Circularity)*(1-t),
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: LerpBorderRadius(a.BorderRadius, b.BorderRadius, t),
			Circularity:  graphics.LerpFloat(a.Circularity, b.Circularity, t),
		}
	}
	return nil
}

// LerpTo implements ShapeBorder.
func (b roundedRectangleToCircleBorder) LerpTo(other ShapeBorder, t float64) ShapeBorder {
	switch o := other.(type) {
	case RoundedRectangleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: LerpBorderRadius(b.BorderRadius, o.BorderRadius, t),
			Circularity:  b.Circularity * (1 - t),
		}
	case CircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: b.BorderRadius,
			Circularity:  b.Circularity + (1-b.Circularity)*t,
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: LerpBorderRadius(b.BorderRadius, o.BorderRadius, t),
			Circularity:  graphics.LerpFloat(b.Circularity, o.Circularity, t),
		}
	}
	return nil
}

// Add implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Add(ShapeBorder) ShapeBorder {
	return nil
}

// Equal implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Equal(other ShapeBorder) bool {
	o, ok := other.(roundedRectangleToCircleBorder)
	return ok && o == b
}

// Hash implements ShapeBorder.
func (b roundedRectangleToCircleBorder) Hash() uint64 {
	h := hashing.New().String("RoundedRectangleToCircleBorder")
	b.Side.hash(h)
	b.BorderRadius.hash(h)
	h.Float(b.Circularity)
	return h.Sum64()
}

func (b roundedRectangleToCircleBorder) String() string {
	return fmt.Sprintf("RoundedRectangleBorder(%s, %s, %.1f%% of the way to being a CircleBorder)",
		b.Side, b.BorderRadius, math.Round(b.Circularity*1000)/10)
}
