package graphics

import "fmt"

// BoxShadow defines a drop shadow cast by a shape.
//
// The shadow is the shape's outline for the painted rect shifted by Offset
// and grown by Spread, filled with Color and blurred by BlurRadius.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64 // sigma = blurRadius * 0.5
	Spread     float64
}

// Sigma returns the blur sigma for the shadow's mask filter.
// Returns 0 if BlurRadius is negative.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// ToPaint returns the fill paint that draws this shadow. It depends only on
// the shadow, never on the rect it is drawn for.
func (s BoxShadow) ToPaint() Paint {
	paint := DefaultPaint()
	paint.Color = s.Color
	paint.MaskBlurSigma = s.Sigma()
	return paint
}

// Scale multiplies the offset, blur and spread by factor. The color is kept.
func (s BoxShadow) Scale(factor float64) BoxShadow {
	return BoxShadow{
		Color:      s.Color,
		Offset:     s.Offset.Scale(factor),
		BlurRadius: s.BlurRadius * factor,
		Spread:     s.Spread * factor,
	}
}

func (s BoxShadow) String() string {
	return fmt.Sprintf("BoxShadow(%s, (%.1f, %.1f), %.1f, %.1f)",
		s.Color, s.Offset.X, s.Offset.Y, s.BlurRadius, s.Spread)
}

// BoxShadowElevation returns a Material-style elevation shadow.
// Level is clamped to 1-5; higher levels have larger blur and offset.
func BoxShadowElevation(level int, color Color) BoxShadow {
	level = max(1, min(level, 5))
	offsets := [...]float64{1, 2, 4, 6, 8}
	blurs := [...]float64{3, 6, 10, 14, 18}
	spreads := [...]float64{0, 0, 1, 2, 3}
	return BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: offsets[level-1]},
		BlurRadius: blurs[level-1],
		Spread:     spreads[level-1],
	}
}

// LerpBoxShadow interpolates two shadows field by field.
func LerpBoxShadow(a, b BoxShadow, t float64) BoxShadow {
	return BoxShadow{
		Color:      mixColor(a.Color, b.Color, t),
		Offset:     LerpOffset(a.Offset, b.Offset, t),
		BlurRadius: max(0, LerpFloat(a.BlurRadius, b.BlurRadius, t)),
		Spread:     LerpFloat(a.Spread, b.Spread, t),
	}
}

// LerpBoxShadows interpolates two shadow lists element by element.
//
// Both nil yields nil. When the lists differ in length, the surplus entries
// of the longer list shrink toward (or grow from) zero intensity.
func LerpBoxShadows(a, b []BoxShadow, t float64) []BoxShadow {
	if a == nil && b == nil {
		return nil
	}
	n := max(len(a), len(b))
	out := make([]BoxShadow, 0, n)
	common := min(len(a), len(b))
	for i := 0; i < common; i++ {
		out = append(out, LerpBoxShadow(a[i], b[i], t))
	}
	for i := common; i < len(a); i++ {
		out = append(out, a[i].Scale(1-t))
	}
	for i := common; i < len(b); i++ {
		out = append(out, b[i].Scale(t))
	}
	return out
}
