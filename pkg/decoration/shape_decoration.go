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

// ShapeDecorationConfig holds the fields of a ShapeDecoration.
//
// A zero Color means no color. Color and Gradient are mutually exclusive.
type ShapeDecorationConfig struct {
	Color    graphics.Color
	Gradient *graphics.Gradient
	Image    *DecorationImage
	Shadows  []graphics.BoxShadow
	Shape    borders.ShapeBorder
}

// ShapeDecoration fills a ShapeBorder.
//
// Painting happens in a fixed order: shadows in list order, then the
// color or gradient fill of the outer path, then the image clipped to the
// inner path, and finally the border's own stroke.
type ShapeDecoration struct {
	color    graphics.Color
	gradient *graphics.Gradient
	image    *DecorationImage
	shadows  []graphics.BoxShadow
	shape    borders.ShapeBorder
}

// NewShapeDecoration validates cfg and returns the decoration. It fails
// with ErrInvalidArgument when both Color and Gradient are set or when
// Shape is nil.
func NewShapeDecoration(cfg ShapeDecorationConfig) (*ShapeDecoration, error) {
	const op = "decoration.NewShapeDecoration"
	if cfg.Color != graphics.ColorTransparent && cfg.Gradient != nil {
		return nil, errors.InvalidArgument(op, "color and gradient are mutually exclusive")
	}
	if cfg.Shape == nil {
		return nil, errors.InvalidArgument(op, "shape is required")
	}
	return &ShapeDecoration{
		color:    cfg.Color,
		gradient: cfg.Gradient,
		image:    cfg.Image,
		shadows:  slices.Clone(cfg.Shadows),
		shape:    cfg.Shape,
	}, nil
}

// MustShapeDecoration is like NewShapeDecoration but panics on error.
func MustShapeDecoration(cfg ShapeDecorationConfig) *ShapeDecoration {
	d, err := NewShapeDecoration(cfg)
	if err != nil {
		panic(err)
	}
	return d
}

// Color returns the fill color, or ColorTransparent when unset.
func (d *ShapeDecoration) Color() graphics.Color { return d.color }

// Gradient returns the fill gradient, or nil.
func (d *ShapeDecoration) Gradient() *graphics.Gradient { return d.gradient }

// Image returns the background image, or nil.
func (d *ShapeDecoration) Image() *DecorationImage { return d.image }

// Shadows returns a copy of the shadow list.
func (d *ShapeDecoration) Shadows() []graphics.BoxShadow { return slices.Clone(d.shadows) }

// Shape returns the outline.
func (d *ShapeDecoration) Shape() borders.ShapeBorder { return d.shape }

// Padding implements Decoration.
func (d *ShapeDecoration) Padding() graphics.EdgeInsets {
	return d.shape.Dimensions()
}

// IsComplex implements Decoration. Shadows are expensive to draw.
func (d *ShapeDecoration) IsComplex() bool {
	return len(d.shadows) > 0
}

// ClipPath implements Decoration.
func (d *ShapeDecoration) ClipPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	return d.shape.OuterPath(rect, dir)
}

// HitTest implements Decoration.
func (d *ShapeDecoration) HitTest(size graphics.Size, position graphics.Offset, dir graphics.TextDirection) bool {
	return d.shape.OuterPath(graphics.RectFromOffsetSize(graphics.Offset{}, size), dir).Contains(position)
}

// CreateBoxPainter implements Decoration. onChanged is required when the
// decoration has an image.
func (d *ShapeDecoration) CreateBoxPainter(onChanged func()) (BoxPainter, error) {
	if d.image != nil && onChanged == nil {
		return nil, errors.InvalidArgument("decoration.ShapeDecoration.CreateBoxPainter",
			"onChanged is required for a decoration with an image")
	}
	return newShapeDecorationPainter(d, onChanged), nil
}

// LerpFrom implements Decoration. A *BoxDecoration is converted first.
func (d *ShapeDecoration) LerpFrom(a Decoration, t float64) Decoration {
	switch a := a.(type) {
	case nil:
		return LerpShapeDecoration(nil, d, t)
	case *ShapeDecoration:
		return LerpShapeDecoration(a, d, t)
	case *BoxDecoration:
		from, err := ShapeDecorationFromBoxDecoration(a)
		if err != nil {
			return nil
		}
		return LerpShapeDecoration(from, d, t)
	}
	return nil
}

// LerpTo implements Decoration. A *BoxDecoration is converted first.
func (d *ShapeDecoration) LerpTo(b Decoration, t float64) Decoration {
	switch b := b.(type) {
	case nil:
		return LerpShapeDecoration(d, nil, t)
	case *ShapeDecoration:
		return LerpShapeDecoration(d, b, t)
	case *BoxDecoration:
		to, err := ShapeDecorationFromBoxDecoration(b)
		if err != nil {
			return nil
		}
		return LerpShapeDecoration(d, to, t)
	}
	return nil
}

// Equal implements Decoration. Shadow order matters.
func (d *ShapeDecoration) Equal(other Decoration) bool {
	o, ok := other.(*ShapeDecoration)
	if !ok || o == nil {
		return false
	}
	if d == o {
		return true
	}
	return d.color == o.color &&
		d.gradient.Equal(o.gradient) &&
		d.image.Equal(o.image) &&
		slices.Equal(d.shadows, o.shadows) &&
		borders.Equal(d.shape, o.shape)
}

// Hash implements Decoration.
func (d *ShapeDecoration) Hash() uint64 {
	h := hashing.New().String("ShapeDecoration").Uint32(uint32(d.color))
	hashGradient(h, d.gradient)
	hashImage(h, d.image)
	hashShadows(h, d.shadows)
	h.Uint64(d.shape.Hash())
	return h.Sum64()
}

// Properties implements Decoration.
func (d *ShapeDecoration) Properties() []Property {
	var props []Property
	if d.color != graphics.ColorTransparent {
		props = append(props, stringProperty("color", d.color))
	}
	if d.gradient != nil {
		props = append(props, stringProperty("gradient", d.gradient))
	}
	if d.image != nil {
		props = append(props, stringProperty("image", d.image))
	}
	if len(d.shadows) > 0 {
		props = append(props, listProperty("shadows", d.shadows))
	}
	props = append(props, stringProperty("shape", d.shape))
	return props
}

func (d *ShapeDecoration) String() string {
	parts := make([]string, 0, 5)
	for _, p := range d.Properties() {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("ShapeDecoration(%s)", strings.Join(parts, ", "))
}

// LerpShapeDecoration interpolates two decorations, either of which may be
// nil.
//
// With both set, t == 0 returns a and t == 1 returns b. Otherwise a nil
// side contributes no fill, no shadows and no shape. A color on one side
// and a gradient on the other blend as gradients, the color becoming a
// flat gradient with the other side's geometry. The image is not blended:
// a's image is used below t = 0.5 and b's from there on.
func LerpShapeDecoration(a, b *ShapeDecoration, t float64) *ShapeDecoration {
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
	var colorA, colorB graphics.Color
	var gradA, gradB *graphics.Gradient
	var shadowsA, shadowsB []graphics.BoxShadow
	var shapeA, shapeB borders.ShapeBorder
	var imgA, imgB *DecorationImage
	if a != nil {
		colorA, gradA, shadowsA, shapeA, imgA = a.color, a.gradient, a.shadows, a.shape, a.image
	}
	if b != nil {
		colorB, gradB, shadowsB, shapeB, imgB = b.color, b.gradient, b.shadows, b.shape, b.image
	}
	if gradB != nil && gradA == nil && colorA != graphics.ColorTransparent {
		gradA, colorA = gradB.Flat(colorA), graphics.ColorTransparent
	}
	if gradA != nil && gradB == nil && colorB != graphics.ColorTransparent {
		gradB, colorB = gradA.Flat(colorB), graphics.ColorTransparent
	}

	img := imgB
	if t < 0.5 {
		img = imgA
	}
	return &ShapeDecoration{
		color:    graphics.LerpColor(colorA, colorB, t),
		gradient: graphics.LerpGradient(gradA, gradB, t),
		image:    img,
		shadows:  graphics.LerpBoxShadows(shadowsA, shadowsB, t),
		shape:    borders.Lerp(shapeA, shapeB, t),
	}
}
