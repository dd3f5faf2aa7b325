package animation

import (
	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/decoration"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// Tween interpolates between Begin and End.
//
// Use the helper constructors for decorations, borders and colors, or
// build one directly with a Lerp function.
type Tween[T any] struct {
	// Begin is the value at t = 0.
	Begin T
	// End is the value at t = 1.
	End T
	// Lerp interpolates between Begin and End.
	Lerp func(a, b T, t float64) T
	// Curve, when set, eases t before Lerp sees it.
	Curve Curve
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Curve != nil {
		t = tw.Curve(t)
	}
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor creates a tween for colors. A transparent end fades the other
// color by alpha.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: graphics.LerpColor}
}

// TweenDecoration creates a tween between any two decorations, either of
// which may be nil.
func TweenDecoration(begin, end decoration.Decoration) *Tween[decoration.Decoration] {
	return &Tween[decoration.Decoration]{Begin: begin, End: end, Lerp: decoration.Lerp}
}

// TweenShapeDecoration creates a tween between two shape decorations.
func TweenShapeDecoration(begin, end *decoration.ShapeDecoration) *Tween[*decoration.ShapeDecoration] {
	return &Tween[*decoration.ShapeDecoration]{Begin: begin, End: end, Lerp: decoration.LerpShapeDecoration}
}

// TweenShapeBorder creates a tween between two outlines, morphing across
// kinds where the borders support it.
func TweenShapeBorder(begin, end borders.ShapeBorder) *Tween[borders.ShapeBorder] {
	return &Tween[borders.ShapeBorder]{Begin: begin, End: end, Lerp: borders.Lerp}
}

// TweenShadows creates a tween between two shadow lists.
func TweenShadows(begin, end []graphics.BoxShadow) *Tween[[]graphics.BoxShadow] {
	return &Tween[[]graphics.BoxShadow]{Begin: begin, End: end, Lerp: graphics.LerpBoxShadows}
}
