package borders

import (
	"fmt"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// RoundedRectangleBorder is a rectangle with rounded corners and a single
// side style on every edge.
type RoundedRectangleBorder struct {
	Side         BorderSide
	BorderRadius BorderRadius
}

// Dimensions implements ShapeBorder.
func (b RoundedRectangleBorder) Dimensions() graphics.EdgeInsets {
	return graphics.EdgeInsetsAll(b.Side.EffectiveWidth())
}

func (b RoundedRectangleBorder) outer(rect graphics.Rect) graphics.RRect {
	return b.BorderRadius.ToRRect(rect)
}

// OuterPath implements ShapeBorder.
func (b RoundedRectangleBorder) OuterPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(b.outer(rect))
	return path
}

// InnerPath implements ShapeBorder.
func (b RoundedRectangleBorder) InnerPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRRect(b.outer(rect).Deflate(b.Side.EffectiveWidth()))
	return path
}

// Paint implements ShapeBorder.
func (b RoundedRectangleBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection) {
	if !b.Side.IsVisible() {
		return
	}
	strokeBand(canvas, b.OuterPath(rect, dir), b.InnerPath(rect, dir), b.Side)
}

// Scale implements ShapeBorder.
func (b RoundedRectangleBorder) Scale(t float64) ShapeBorder {
	return RoundedRectangleBorder{Side: b.Side.Scale(t), BorderRadius: b.BorderRadius.Scale(t)}
}

// LerpFrom implements ShapeBorder.
func (b RoundedRectangleBorder) LerpFrom(a ShapeBorder, t float64) ShapeBorder {
	switch a := a.(type) {
	case nil:
		return b.Scale(t)
	case RoundedRectangleBorder:
		return RoundedRectangleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: LerpBorderRadius(a.BorderRadius, b.BorderRadius, t),
		}
	case CircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: b.BorderRadius,
			Circularity:  1 - t,
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: LerpBorderRadius(a.BorderRadius, b.BorderRadius, t),
			Circularity:  a.Circularity * (1 - t),
		}
	case Border:
		if a.IsUniform() {
			return RoundedRectangleBorder{
				Side:         LerpBorderSide(a.Top, b.Side, t),
				BorderRadius: LerpBorderRadius(BorderRadius{}, b.BorderRadius, t),
			}
		}
	}
	return nil
}

// LerpTo implements ShapeBorder.
func (b RoundedRectangleBorder) LerpTo(other ShapeBorder, t float64) ShapeBorder {
	switch o := other.(type) {
	case nil:
		return b.Scale(1 - t)
	case RoundedRectangleBorder:
		return RoundedRectangleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: LerpBorderRadius(b.BorderRadius, o.BorderRadius, t),
		}
	case CircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: b.BorderRadius,
			Circularity:  t,
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: LerpBorderRadius(b.BorderRadius, o.BorderRadius, t),
			Circularity:  o.Circularity * t,
		}
	case Border:
		if o.IsUniform() {
			return RoundedRectangleBorder{
				Side:         LerpBorderSide(b.Side, o.Top, t),
				BorderRadius: LerpBorderRadius(b.BorderRadius, BorderRadius{}, t),
			}
		}
	}
	return nil
}

// Add implements ShapeBorder.
func (b RoundedRectangleBorder) Add(other ShapeBorder) ShapeBorder {
	o, ok := other.(RoundedRectangleBorder)
	if !ok || o.BorderRadius != b.BorderRadius || !canMerge(b.Side, o.Side) {
		return nil
	}
	return RoundedRectangleBorder{Side: mergeSides(b.Side, o.Side), BorderRadius: b.BorderRadius}
}

// Equal implements ShapeBorder.
func (b RoundedRectangleBorder) Equal(other ShapeBorder) bool {
	o, ok := other.(RoundedRectangleBorder)
	return ok && o == b
}

// Hash implements ShapeBorder.
func (b RoundedRectangleBorder) Hash() uint64 {
	h := hashing.New().String("RoundedRectangleBorder")
	b.Side.hash(h)
	b.BorderRadius.hash(h)
	return h.Sum64()
}

func (b RoundedRectangleBorder) String() string {
	return fmt.Sprintf("RoundedRectangleBorder(%s, %s)", b.Side, b.BorderRadius)
}
