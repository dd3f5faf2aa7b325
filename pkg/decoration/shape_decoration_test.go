package decoration

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

func TestNewShapeDecoration_Validation(t *testing.T) {
	grad := graphics.NewLinearGradient(graphics.AlignmentTopLeft, graphics.AlignmentBottomRight, graphics.EvenStops(red, blue))

	tests := []struct {
		name string
		cfg  ShapeDecorationConfig
	}{
		{"color and gradient", ShapeDecorationConfig{Color: red, Gradient: grad, Shape: borders.CircleBorder{}}},
		{"missing shape", ShapeDecorationConfig{Color: red}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewShapeDecoration(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
			assert.Equal(t, errors.KindInvalidArgument, errors.KindOf(err))
		})
	}

	assert.Panics(t, func() { MustShapeDecoration(ShapeDecorationConfig{}) })
}

func TestNewShapeDecoration_CopiesShadows(t *testing.T) {
	shadows := []graphics.BoxShadow{{Color: red, BlurRadius: 2}}
	d := MustShapeDecoration(ShapeDecorationConfig{Shadows: shadows, Shape: borders.CircleBorder{}})
	shadows[0].Color = blue
	assert.Equal(t, red, d.Shadows()[0].Color)
}

func TestShapeDecoration_PaddingAndComplexity(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(3, 4)})
	assert.Equal(t, graphics.EdgeInsetsAll(3), d.Padding())
	assert.False(t, d.IsComplex())

	shadowed := MustShapeDecoration(ShapeDecorationConfig{
		Shadows: []graphics.BoxShadow{{Color: red}},
		Shape:   roundedBorder(3, 4),
	})
	assert.True(t, shadowed.IsComplex())
}

func TestShapeDecoration_HitTest(t *testing.T) {
	size := graphics.Size{Width: 100, Height: 100}
	circle := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}})
	assert.True(t, circle.HitTest(size, graphics.Offset{X: 50, Y: 50}, graphics.TextDirectionLTR))
	assert.False(t, circle.HitTest(size, graphics.Offset{X: 2, Y: 2}, graphics.TextDirectionLTR))
	assert.False(t, circle.HitTest(size, graphics.Offset{X: 500, Y: 500}, graphics.TextDirectionLTR))

	rect := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(0, 0)})
	assert.True(t, rect.HitTest(size, graphics.Offset{X: 2, Y: 2}, graphics.TextDirectionLTR))
}

func TestShapeDecoration_ClipPathIsOuterPath(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(4, 10)})
	rect := graphics.RectFromLTWH(10, 10, 80, 40)
	assert.Equal(t, rect, d.ClipPath(rect, graphics.TextDirectionLTR).Bounds())
}

func TestShapeDecoration_CreateBoxPainterRequiresOnChangedForImage(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{
		Image: &DecorationImage{Provider: NewMemoryImage(solidImage(1, 1, color.White))},
		Shape: borders.CircleBorder{},
	})
	bp, err := d.CreateBoxPainter(nil)
	require.Error(t, err)
	assert.Nil(t, bp)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))

	bp, err = d.CreateBoxPainter(func() {})
	require.NoError(t, err)
	bp.Dispose()
}

func TestShapeDecoration_EqualAndHash(t *testing.T) {
	s1 := graphics.BoxShadow{Color: red, BlurRadius: 2}
	s2 := graphics.BoxShadow{Color: blue, Offset: graphics.Offset{Y: 3}}
	build := func(shadows ...graphics.BoxShadow) *ShapeDecoration {
		return MustShapeDecoration(ShapeDecorationConfig{Color: green, Shadows: shadows, Shape: roundedBorder(1, 6)})
	}

	a, b := build(s1, s2), build(s1, s2)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	reordered := build(s2, s1)
	assert.False(t, a.Equal(reordered))
	assert.NotEqual(t, a.Hash(), reordered.Hash())

	assert.False(t, a.Equal(nil))
	assert.False(t, a.Equal(&BoxDecoration{Color: green}))
}

func TestShapeDecoration_EqualImagesByProviderKey(t *testing.T) {
	provider := NewMemoryImage(solidImage(1, 1, color.White))
	a := MustShapeDecoration(ShapeDecorationConfig{Image: &DecorationImage{Provider: provider}, Shape: borders.CircleBorder{}})
	b := MustShapeDecoration(ShapeDecorationConfig{Image: &DecorationImage{Provider: provider, Opacity: 1}, Shape: borders.CircleBorder{}})
	other := MustShapeDecoration(ShapeDecorationConfig{
		Image: &DecorationImage{Provider: NewMemoryImage(solidImage(1, 1, color.White))},
		Shape: borders.CircleBorder{},
	})
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(other))

	clamped := MustShapeDecoration(ShapeDecorationConfig{Image: &DecorationImage{Provider: provider, Opacity: 3}, Shape: borders.CircleBorder{}})
	assert.True(t, a.Equal(clamped))
	assert.Equal(t, a.Hash(), clamped.Hash())
}

func TestLerpShapeDecoration_Endpoints(t *testing.T) {
	a := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(1, 2)})
	b := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: borders.CircleBorder{}})

	assert.Same(t, a, LerpShapeDecoration(a, b, 0))
	assert.Same(t, b, LerpShapeDecoration(a, b, 1))
	assert.Nil(t, LerpShapeDecoration(nil, nil, 0.3))
}

func TestLerpShapeDecoration_FromNothing(t *testing.T) {
	shadow := graphics.BoxShadow{Color: red, BlurRadius: 8, Spread: 2}
	b := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shadows: []graphics.BoxShadow{shadow}, Shape: roundedBorder(4, 8)})

	mid := LerpShapeDecoration(nil, b, 0.5)
	require.NotNil(t, mid)
	assert.Equal(t, uint8(128), mid.Color().Alpha())
	assert.Equal(t, []graphics.BoxShadow{shadow.Scale(0.5)}, mid.Shadows())
	assert.True(t, borders.Equal(roundedBorder(2, 4), mid.Shape()))

	out := LerpShapeDecoration(b, nil, 0.25)
	require.NotNil(t, out)
	assert.True(t, borders.Equal(roundedBorder(3, 6), out.Shape()))

	assert.NotPanics(t, func() { LerpShapeDecoration(nil, b, 0) })
	assert.NotPanics(t, func() { LerpShapeDecoration(b, nil, 1) })
}

func TestLerpShapeDecoration_ColorToGradient(t *testing.T) {
	grad := graphics.NewLinearGradient(graphics.AlignmentCenterLeft, graphics.AlignmentCenterRight, graphics.EvenStops(blue, green))
	a := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(0, 0)})
	b := MustShapeDecoration(ShapeDecorationConfig{Gradient: grad, Shape: roundedBorder(0, 0)})

	for _, mid := range []*ShapeDecoration{LerpShapeDecoration(a, b, 0.5), LerpShapeDecoration(b, a, 0.5)} {
		assert.Equal(t, graphics.ColorTransparent, mid.Color())
		require.NotNil(t, mid.Gradient())
		assert.Equal(t, graphics.GradientTypeLinear, mid.Gradient().Type)
		assert.Equal(t, graphics.AlignmentCenterLeft, mid.Gradient().Linear.Begin)
	}

	mid := LerpShapeDecoration(a, b, 0.5)
	stops := mid.Gradient().Stops()
	require.Len(t, stops, 2)
	assert.Equal(t, graphics.LerpColor(red, blue, 0.5), stops[0].Color)
	assert.Equal(t, graphics.LerpColor(red, green, 0.5), stops[1].Color)

	// The result still satisfies the color/gradient exclusivity.
	_, err := NewShapeDecoration(ShapeDecorationConfig{Color: mid.Color(), Gradient: mid.Gradient(), Shape: mid.Shape()})
	assert.NoError(t, err)
}

func TestLerpShapeDecoration_ImageSwitchesAtHalf(t *testing.T) {
	imgA := &DecorationImage{Provider: NewMemoryImage(solidImage(1, 1, color.White))}
	imgB := &DecorationImage{Provider: NewMemoryImage(solidImage(1, 1, color.Black))}
	a := MustShapeDecoration(ShapeDecorationConfig{Image: imgA, Shape: borders.CircleBorder{}})
	b := MustShapeDecoration(ShapeDecorationConfig{Image: imgB, Shape: borders.CircleBorder{}})

	assert.Same(t, imgA, LerpShapeDecoration(a, b, 0.49).Image())
	assert.Same(t, imgB, LerpShapeDecoration(a, b, 0.5).Image())
	assert.Nil(t, LerpShapeDecoration(a, nil, 0.75).Image())
}

func TestLerpShapeDecoration_ShadowsPadShorterList(t *testing.T) {
	s1 := graphics.BoxShadow{Color: red, BlurRadius: 4}
	s2 := graphics.BoxShadow{Color: blue, Offset: graphics.Offset{X: 4, Y: 4}, BlurRadius: 10}
	a := MustShapeDecoration(ShapeDecorationConfig{Shadows: []graphics.BoxShadow{s1}, Shape: borders.CircleBorder{}})
	b := MustShapeDecoration(ShapeDecorationConfig{Shadows: []graphics.BoxShadow{s1, s2}, Shape: borders.CircleBorder{}})

	mid := LerpShapeDecoration(a, b, 0.5)
	require.Len(t, mid.Shadows(), 2)
	assert.Equal(t, s1, mid.Shadows()[0])
	assert.Equal(t, s2.Scale(0.5), mid.Shadows()[1])
}

func TestLerpShapeDecoration_ShapeMorph(t *testing.T) {
	a := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(2, 0)})
	b := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{Side: borders.BorderSide{Color: red, Width: 2}}})

	mid := LerpShapeDecoration(a, b, 0.5)
	assert.Contains(t, mid.Shape().String(), "50.0% of the way to being a CircleBorder")
}

func TestShapeDecoration_LerpFromBoxDecoration(t *testing.T) {
	radius := borders.BorderRadiusCircular(8)
	box := &BoxDecoration{Color: red, BorderRadius: &radius}
	shape := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: borders.RoundedRectangleBorder{BorderRadius: borders.BorderRadiusCircular(16)}})

	got, ok := shape.LerpFrom(box, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	assert.True(t, borders.Equal(borders.RoundedRectangleBorder{BorderRadius: borders.BorderRadiusCircular(12)}, got.Shape()))
	assert.Equal(t, graphics.LerpColor(red, blue, 0.5), got.Color())

	back, ok := shape.LerpTo(box, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	assert.Equal(t, got.Color(), back.Color())
}

func TestShapeDecoration_Properties(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{
		Color:   red,
		Shadows: []graphics.BoxShadow{{Color: blue}},
		Shape:   borders.CircleBorder{},
	})
	var names []string
	for _, p := range d.Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"color", "shadows", "shape"}, names)
	assert.Contains(t, d.String(), "color: #FFFF0000")
	assert.Contains(t, d.String(), "CircleBorder")
}
