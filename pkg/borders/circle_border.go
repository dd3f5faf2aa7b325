package borders

import (
	"fmt"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// CircleBorder is the largest circle that fits centered in the painted
// rect.
type CircleBorder struct {
	Side BorderSide
}

func circleRect(rect graphics.Rect) graphics.Rect {
	return graphics.RectFromCircle(rect.Center(), rect.ShortestSide()/2)
}

// Dimensions implements ShapeBorder.
func (b CircleBorder) Dimensions() graphics.EdgeInsets {
	return graphics.EdgeInsetsAll(b.Side.EffectiveWidth())
}

// OuterPath implements ShapeBorder.
func (b CircleBorder) OuterPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddOval(circleRect(rect))
	return path
}

// InnerPath implements ShapeBorder.
func (b CircleBorder) InnerPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	inner := circleRect(rect).Deflate(b.Side.EffectiveWidth())
	if inner.IsEmpty() {
		c := rect.Center()
		inner = graphics.Rect{Left: c.X, Top: c.Y, Right: c.X, Bottom: c.Y}
	}
	path := graphics.NewPath()
	path.AddOval(inner)
	return path
}

// Paint implements ShapeBorder.
func (b CircleBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection) {
	if !b.Side.IsVisible() {
		return
	}
	strokeBand(canvas, b.OuterPath(rect, dir), b.InnerPath(rect, dir), b.Side)
}

// Scale implements ShapeBorder.
func (b CircleBorder) Scale(t float64) ShapeBorder {
	return CircleBorder{Side: b.Side.Scale(t)}
}

// LerpFrom implements ShapeBorder.
func (b CircleBorder) LerpFrom(a ShapeBorder, t float64) ShapeBorder {
	switch a := a.(type) {
	case nil:
		return b.Scale(t)
	case CircleBorder:
		return CircleBorder{Side: LerpBorderSide(a.Side, b.Side, t)}
	case RoundedRectangleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: a.BorderRadius,
			Circularity:  t,
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(a.Side, b.Side, t),
			BorderRadius: a.BorderRadius,
			Circularity:  a.Circularity + (1-a.Circularity)*t,
		}
	case Border:
		if a.IsUniform() {
			return roundedRectangleToCircleBorder{
				Side:        LerpBorderSide(a.Top, b.Side, t),
				Circularity: t,
			}
		}
	}
	return nil
}

// LerpTo implements ShapeBorder.
func (b CircleBorder) LerpTo(other ShapeBorder, t float64) ShapeBorder {
	switch o := other.(type) {
	case nil:
		return b.Scale(1 - t)
	case CircleBorder:
		return CircleBorder{Side: LerpBorderSide(b.Side, o.Side, t)}
	case RoundedRectangleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: o.BorderRadius,
			Circularity:  1 - t,
		}
	case roundedRectangleToCircleBorder:
		return roundedRectangleToCircleBorder{
			Side:         LerpBorderSide(b.Side, o.Side, t),
			BorderRadius: o.BorderRadius,
			Circularity:  1 - (1-o.Circularity)*t,
		}
	case Border:
		if o.IsUniform() {
			return roundedRectangleToCircleBorder{
				Side:        LerpBorderSide(b.Side, o.Top, t),
				Circularity: 1 - t,
			}
		}
	}
	return nil
}

// Add implements ShapeBorder.
func (b CircleBorder) Add(other ShapeBorder) ShapeBorder {
	o, ok := other.(CircleBorder)
	if !ok || !canMerge(b.Side, o.Side) {
		return nil
	}
	return CircleBorder{Side: mergeSides(b.Side, o.Side)}
}

// Equal implements ShapeBorder.
func (b CircleBorder) Equal(other ShapeBorder) bool {
	o, ok := other.(CircleBorder)
	return ok && o == b
}

// Hash implements ShapeBorder.
func (b CircleBorder) Hash() uint64 {
	h := hashing.New().String("CircleBorder")
	b.Side.hash(h)
	return h.Sum64()
}

func (b CircleBorder) String() string {
	return fmt.Sprintf("CircleBorder(%s)", b.Side)
}
