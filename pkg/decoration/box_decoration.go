package decoration

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// BoxShape selects the outline of a BoxDecoration.
type BoxShape int

const (
	// BoxShapeRectangle is a rectangle, rounded when BorderRadius is set.
	BoxShapeRectangle BoxShape = iota
	// BoxShapeCircle is the largest centered circle. BorderRadius is ignored.
	BoxShapeCircle
)

// String returns a human-readable representation of the box shape.
func (s BoxShape) String() string {
	switch s {
	case BoxShapeRectangle:
		return "rectangle"
	case BoxShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("BoxShape(%d)", int(s))
	}
}

// BoxDecoration is the simpler box model: a shape kind, an optional border
// and an optional corner radius instead of an arbitrary ShapeBorder.
//
// It paints through the equivalent ShapeDecoration.
type BoxDecoration struct {
	Color        graphics.Color
	Gradient     *graphics.Gradient
	Image        *DecorationImage
	Shadows      []graphics.BoxShadow
	Border       *borders.Border
	BorderRadius *borders.BorderRadius
	Shape        BoxShape
}

// ShapeDecorationFromBoxDecoration converts the box model to a
// ShapeDecoration.
//
// A circle becomes a CircleBorder stroked with the border's top side. A
// rectangle with a radius becomes a RoundedRectangleBorder stroked with the
// top side. Both require a uniform border and fail with ErrInvalidArgument
// otherwise. A rectangle without a radius keeps the border as is.
func ShapeDecorationFromBoxDecoration(b *BoxDecoration) (*ShapeDecoration, error) {
	const op = "decoration.ShapeDecorationFromBoxDecoration"
	if b == nil {
		return nil, errors.InvalidArgument(op, "box decoration is nil")
	}
	needsUniform := b.Shape == BoxShapeCircle || b.BorderRadius != nil
	if needsUniform && b.Border != nil && !b.Border.IsUniform() {
		return nil, errors.InvalidArgument(op, "%s border must be uniform, got %s", b.describeShape(), b.Border)
	}
	d, err := NewShapeDecoration(ShapeDecorationConfig{
		Color:    b.Color,
		Gradient: b.Gradient,
		Image:    b.Image,
		Shadows:  b.Shadows,
		Shape:    b.outline(),
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (b *BoxDecoration) describeShape() string {
	if b.Shape == BoxShapeCircle {
		return "circle"
	}
	return "rounded rectangle"
}

// outline is the ShapeBorder equivalent of the box model. Non-uniform
// borders on circles and rounded rectangles use the top side.
func (b *BoxDecoration) outline() borders.ShapeBorder {
	var top borders.BorderSide
	if b.Border != nil {
		top = b.Border.Top
	}
	switch {
	case b.Shape == BoxShapeCircle:
		return borders.CircleBorder{Side: top}
	case b.BorderRadius != nil:
		return borders.RoundedRectangleBorder{Side: top, BorderRadius: *b.BorderRadius}
	case b.Border != nil:
		return *b.Border
	default:
		return borders.Border{}
	}
}

// Padding implements Decoration.
func (b *BoxDecoration) Padding() graphics.EdgeInsets {
	if b.Border == nil {
		return graphics.EdgeInsets{}
	}
	return b.Border.Dimensions()
}

// IsComplex implements Decoration.
func (b *BoxDecoration) IsComplex() bool {
	return len(b.Shadows) > 0
}

// HitTest implements Decoration.
func (b *BoxDecoration) HitTest(size graphics.Size, position graphics.Offset, dir graphics.TextDirection) bool {
	return b.outline().OuterPath(graphics.RectFromOffsetSize(graphics.Offset{}, size), dir).Contains(position)
}

// ClipPath implements Decoration.
func (b *BoxDecoration) ClipPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	return b.outline().OuterPath(rect, dir)
}

// CreateBoxPainter implements Decoration by converting to a
// ShapeDecoration.
func (b *BoxDecoration) CreateBoxPainter(onChanged func()) (BoxPainter, error) {
	d, err := ShapeDecorationFromBoxDecoration(b)
	if err != nil {
		return nil, err
	}
	return d.CreateBoxPainter(onChanged)
}

// LerpFrom implements Decoration. Shape decorations handle blending with
// box decorations themselves.
func (b *BoxDecoration) LerpFrom(a Decoration, t float64) Decoration {
	switch a := a.(type) {
	case nil:
		return LerpBoxDecoration(nil, b, t)
	case *BoxDecoration:
		return LerpBoxDecoration(a, b, t)
	}
	return nil
}

// LerpTo implements Decoration.
func (b *BoxDecoration) LerpTo(other Decoration, t float64) Decoration {
	switch o := other.(type) {
	case nil:
		return LerpBoxDecoration(b, nil, t)
	case *BoxDecoration:
		return LerpBoxDecoration(b, o, t)
	}
	return nil
}

// Equal implements Decoration.
func (b *BoxDecoration) Equal(other Decoration) bool {
	o, ok := other.(*BoxDecoration)
	if !ok || o == nil {
		return false
	}
	if b == o {
		return true
	}
	return b.Color == o.Color &&
		b.Gradient.Equal(o.Gradient) &&
		b.Image.Equal(o.Image) &&
		slices.Equal(b.Shadows, o.Shadows) &&
		ptrEqual(b.Border, o.Border) &&
		ptrEqual(b.BorderRadius, o.BorderRadius) &&
		b.Shape == o.Shape
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Hash implements Decoration.
func (b *BoxDecoration) Hash() uint64 {
	h := hashing.New().String("BoxDecoration").Uint32(uint32(b.Color))
	hashGradient(h, b.Gradient)
	hashImage(h, b.Image)
	hashShadows(h, b.Shadows)
	h.Bool(b.Border != nil)
	if b.Border != nil {
		h.Uint64(b.Border.Hash())
	}
	h.Bool(b.BorderRadius != nil)
	if b.BorderRadius != nil {
		// A borderless rounded rectangle hashes just its radii.
		h.Uint64(borders.RoundedRectangleBorder{BorderRadius: *b.BorderRadius}.Hash())
	}
	h.Int(int(b.Shape))
	return h.Sum64()
}

// Properties implements Decoration.
func (b *BoxDecoration) Properties() []Property {
	var props []Property
	if b.Color != graphics.ColorTransparent {
		props = append(props, stringProperty("color", b.Color))
	}
	if b.Gradient != nil {
		props = append(props, stringProperty("gradient", b.Gradient))
	}
	if b.Image != nil {
		props = append(props, stringProperty("image", b.Image))
	}
	if len(b.Shadows) > 0 {
		props = append(props, listProperty("shadows", b.Shadows))
	}
	if b.Border != nil {
		props = append(props, stringProperty("border", *b.Border))
	}
	if b.BorderRadius != nil {
		props = append(props, stringProperty("borderRadius", *b.BorderRadius))
	}
	if b.Shape != BoxShapeRectangle {
		props = append(props, stringProperty("shape", b.Shape))
	}
	return props
}

func (b *BoxDecoration) String() string {
	parts := make([]string, 0, 7)
	for _, p := range b.Properties() {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("BoxDecoration(%s)", strings.Join(parts, ", "))
}

// LerpBoxDecoration interpolates two box decorations field by field. A nil
// side contributes nothing. The shape kind and the image switch at
// t = 0.5.
func LerpBoxDecoration(a, b *BoxDecoration, t float64) *BoxDecoration {
	if a == nil && b == nil {
		return nil
	}
	if a != nil && b != nil {
		if t == 0 {
			return a
		}
		if t == 1 {
			return b
		}
	}
	var x, y BoxDecoration
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	if y.Gradient != nil && x.Gradient == nil && x.Color != graphics.ColorTransparent {
		x.Gradient, x.Color = y.Gradient.Flat(x.Color), graphics.ColorTransparent
	}
	if x.Gradient != nil && y.Gradient == nil && y.Color != graphics.ColorTransparent {
		y.Gradient, y.Color = x.Gradient.Flat(y.Color), graphics.ColorTransparent
	}

	out := &BoxDecoration{
		Color:    graphics.LerpColor(x.Color, y.Color, t),
		Gradient: graphics.LerpGradient(x.Gradient, y.Gradient, t),
		Shadows:  graphics.LerpBoxShadows(x.Shadows, y.Shadows, t),
		Image:    y.Image,
		Shape:    y.Shape,
	}
	if t < 0.5 {
		out.Image, out.Shape = x.Image, x.Shape
	}
	if x.Border != nil || y.Border != nil {
		border := borders.LerpBorder(derefOr(x.Border), derefOr(y.Border), t)
		out.Border = &border
	}
	if x.BorderRadius != nil || y.BorderRadius != nil {
		radius := borders.LerpBorderRadius(derefOr(x.BorderRadius), derefOr(y.BorderRadius), t)
		out.BorderRadius = &radius
	}
	return out
}

func derefOr[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
