package borders

import "github.com/go-drift/shapefill/pkg/graphics"

// ShapeBorder is a closed outline that decorations fill, clip images to,
// and stroke.
//
// Paths returned by OuterPath and InnerPath are freshly allocated; callers
// may cache them. Implementations must accept
// [graphics.TextDirectionUnspecified].
type ShapeBorder interface {
	// Dimensions is how far the border insets content on each edge.
	Dimensions() graphics.EdgeInsets

	// OuterPath is the outline of the shape for rect.
	OuterPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path

	// InnerPath is the outline of the area inside the stroke.
	InnerPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path

	// Paint strokes the border for rect.
	Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection)

	// Scale returns the border with widths and radii multiplied by t.
	Scale(t float64) ShapeBorder

	// LerpFrom interpolates from a (which may be nil) to this border.
	// It returns nil when it does not know how to blend with a.
	LerpFrom(a ShapeBorder, t float64) ShapeBorder

	// LerpTo interpolates from this border to b (which may be nil).
	// It returns nil when it does not know how to blend with b.
	LerpTo(b ShapeBorder, t float64) ShapeBorder

	// Add merges other, painted outside this border, into a single border
	// of the same kind. It returns nil when the two cannot be merged.
	Add(other ShapeBorder) ShapeBorder

	// Equal reports structural equality.
	Equal(other ShapeBorder) bool

	// Hash is consistent with Equal.
	Hash() uint64

	String() string
}

// Lerp interpolates between two borders, either of which may be nil.
//
// b.LerpFrom is consulted first, then a.LerpTo. When neither knows the
// other, the result switches from a to b at t = 0.5.
func Lerp(a, b ShapeBorder, t float64) ShapeBorder {
	if a == nil && b == nil {
		return nil
	}
	var result ShapeBorder
	if b != nil {
		result = b.LerpFrom(a, t)
	}
	if result == nil && a != nil {
		result = a.LerpTo(b, t)
	}
	if result != nil {
		return result
	}
	if t < 0.5 {
		return a
	}
	return b
}

// Add returns inner surrounded by outer. Compatible borders merge into a
// single thicker border; anything else becomes a compound border that
// paints outer first and nests inner inside it.
func Add(inner, outer ShapeBorder) ShapeBorder {
	switch {
	case inner == nil:
		return outer
	case outer == nil:
		return inner
	}
	if merged := inner.Add(outer); merged != nil {
		return merged
	}
	return newCompoundBorder(outer, inner)
}

// Equal compares two possibly-nil borders.
func Equal(a, b ShapeBorder) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// strokeBand fills the region between two closed outlines with the side's
// color.
func strokeBand(canvas graphics.Canvas, outer, inner *graphics.Path, side BorderSide) {
	if !side.IsVisible() {
		return
	}
	band := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	band.AddPath(outer)
	band.AddPath(inner)
	paint := graphics.DefaultPaint()
	paint.Color = side.Color
	canvas.DrawPath(band, paint)
}
