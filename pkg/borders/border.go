package borders

import (
	"fmt"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// Border is a rectangular outline with an independent side on each edge.
//
// The zero value is a borderless rectangle.
type Border struct {
	Top    BorderSide
	Right  BorderSide
	Bottom BorderSide
	Left   BorderSide
}

// BorderAll uses side on every edge.
func BorderAll(side BorderSide) Border {
	return Border{Top: side, Right: side, Bottom: side, Left: side}
}

// BorderSymmetric uses vertical on the left and right edges and horizontal
// on the top and bottom edges.
func BorderSymmetric(vertical, horizontal BorderSide) Border {
	return Border{Top: horizontal, Right: vertical, Bottom: horizontal, Left: vertical}
}

// IsUniform reports whether all four sides are identical.
func (b Border) IsUniform() bool {
	return b.Top == b.Right && b.Right == b.Bottom && b.Bottom == b.Left
}

func (b Border) sides() [4]BorderSide {
	return [4]BorderSide{b.Top, b.Right, b.Bottom, b.Left}
}

// Dimensions implements ShapeBorder.
func (b Border) Dimensions() graphics.EdgeInsets {
	return graphics.EdgeInsets{
		Left:   b.Left.EffectiveWidth(),
		Top:    b.Top.EffectiveWidth(),
		Right:  b.Right.EffectiveWidth(),
		Bottom: b.Bottom.EffectiveWidth(),
	}
}

// OuterPath implements ShapeBorder.
func (b Border) OuterPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRect(rect)
	return path
}

// InnerPath implements ShapeBorder.
func (b Border) InnerPath(rect graphics.Rect, _ graphics.TextDirection) *graphics.Path {
	path := graphics.NewPath()
	path.AddRect(b.Dimensions().DeflateRect(rect))
	return path
}

// Paint implements ShapeBorder. A uniform border is stroked in one pass;
// otherwise each visible edge is filled as a trapezoid so corners miter
// between differing widths.
func (b Border) Paint(canvas graphics.Canvas, rect graphics.Rect, _ graphics.TextDirection) {
	if b.IsUniform() {
		if !b.Top.IsVisible() {
			return
		}
		w := b.Top.Width
		canvas.DrawRect(rect.Deflate(w/2), b.Top.ToPaint())
		return
	}
	in := b.Dimensions().DeflateRect(rect)
	edges := [4]struct {
		side BorderSide
		pts  [4]graphics.Offset
	}{
		{b.Top, [4]graphics.Offset{{X: rect.Left, Y: rect.Top}, {X: rect.Right, Y: rect.Top}, {X: in.Right, Y: in.Top}, {X: in.Left, Y: in.Top}}},
		{b.Right, [4]graphics.Offset{{X: rect.Right, Y: rect.Top}, {X: rect.Right, Y: rect.Bottom}, {X: in.Right, Y: in.Bottom}, {X: in.Right, Y: in.Top}}},
		{b.Bottom, [4]graphics.Offset{{X: rect.Right, Y: rect.Bottom}, {X: rect.Left, Y: rect.Bottom}, {X: in.Left, Y: in.Bottom}, {X: in.Right, Y: in.Bottom}}},
		{b.Left, [4]graphics.Offset{{X: rect.Left, Y: rect.Bottom}, {X: rect.Left, Y: rect.Top}, {X: in.Left, Y: in.Top}, {X: in.Left, Y: in.Bottom}}},
	}
	for _, e := range edges {
		if !e.side.IsVisible() {
			continue
		}
		path := graphics.NewPath()
		path.MoveTo(e.pts[0].X, e.pts[0].Y)
		for _, p := range e.pts[1:] {
			path.LineTo(p.X, p.Y)
		}
		path.Close()
		paint := graphics.DefaultPaint()
		paint.Color = e.side.Color
		canvas.DrawPath(path, paint)
	}
}

// Scale implements ShapeBorder.
func (b Border) Scale(t float64) ShapeBorder {
	return Border{Top: b.Top.Scale(t), Right: b.Right.Scale(t), Bottom: b.Bottom.Scale(t), Left: b.Left.Scale(t)}
}

// LerpFrom implements ShapeBorder.
func (b Border) LerpFrom(a ShapeBorder, t float64) ShapeBorder {
	switch a := a.(type) {
	case nil:
		return b.Scale(t)
	case Border:
		return LerpBorder(a, b, t)
	}
	return nil
}

// LerpTo implements ShapeBorder.
func (b Border) LerpTo(other ShapeBorder, t float64) ShapeBorder {
	switch other := other.(type) {
	case nil:
		return b.Scale(1 - t)
	case Border:
		return LerpBorder(b, other, t)
	}
	return nil
}

// Add implements ShapeBorder.
func (b Border) Add(other ShapeBorder) ShapeBorder {
	o, ok := other.(Border)
	if !ok {
		return nil
	}
	bs, os := b.sides(), o.sides()
	for i := range bs {
		if !canMerge(bs[i], os[i]) {
			return nil
		}
	}
	return Border{
		Top:    mergeSides(b.Top, o.Top),
		Right:  mergeSides(b.Right, o.Right),
		Bottom: mergeSides(b.Bottom, o.Bottom),
		Left:   mergeSides(b.Left, o.Left),
	}
}

// Equal implements ShapeBorder.
func (b Border) Equal(other ShapeBorder) bool {
	o, ok := other.(Border)
	return ok && o == b
}

// Hash implements ShapeBorder.
func (b Border) Hash() uint64 {
	h := hashing.New().String("Border")
	for _, s := range b.sides() {
		s.hash(h)
	}
	return h.Sum64()
}

func (b Border) String() string {
	if b.IsUniform() {
		return fmt.Sprintf("Border.all(%s)", b.Top)
	}
	return fmt.Sprintf("Border(top: %s, right: %s, bottom: %s, left: %s)", b.Top, b.Right, b.Bottom, b.Left)
}

// LerpBorder interpolates each side.
func LerpBorder(a, b Border, t float64) Border {
	return Border{
		Top:    LerpBorderSide(a.Top, b.Top, t),
		Right:  LerpBorderSide(a.Right, b.Right, t),
		Bottom: LerpBorderSide(a.Bottom, b.Bottom, t),
		Left:   LerpBorderSide(a.Left, b.Left, t),
	}
}
