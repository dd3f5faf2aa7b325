package decoration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/graphics"
)

func TestLerp_NilHandling(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: roundedBorder(2, 4)})

	assert.Nil(t, Lerp(nil, nil, 0.5))

	in, ok := Lerp(nil, d, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	assert.Equal(t, uint8(128), in.Color().Alpha())

	out, ok := Lerp(d, nil, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	assert.Equal(t, uint8(128), out.Color().Alpha())
}

func TestLerp_Endpoints(t *testing.T) {
	a := &BoxDecoration{Color: red}
	b := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: borders.CircleBorder{}})
	assert.Same(t, a, Lerp(a, b, 0))
	assert.Same(t, b, Lerp(a, b, 1))
}

func TestLerp_BoxToShape(t *testing.T) {
	radius := borders.BorderRadiusCircular(8)
	box := &BoxDecoration{Color: red, BorderRadius: &radius}
	shape := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: borders.RoundedRectangleBorder{BorderRadius: borders.BorderRadiusCircular(16)}})

	forward, ok := Lerp(box, shape, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	backward, ok := Lerp(shape, box, 0.5).(*ShapeDecoration)
	require.True(t, ok)
	assert.True(t, borders.Equal(forward.Shape(), backward.Shape()))
}

func TestLerp_BoxToBox(t *testing.T) {
	a := &BoxDecoration{Color: red}
	b := &BoxDecoration{Color: blue}
	got, ok := Lerp(a, b, 0.5).(*BoxDecoration)
	require.True(t, ok)
	assert.Equal(t, graphics.LerpColor(red, blue, 0.5), got.Color)
}

// opaqueDecoration blends with nothing but nil.
type opaqueDecoration struct {
	*BoxDecoration
}

func (o opaqueDecoration) LerpFrom(a Decoration, t float64) Decoration {
	if a != nil {
		return nil
	}
	return o.BoxDecoration.LerpFrom(nil, t)
}

func (o opaqueDecoration) LerpTo(b Decoration, t float64) Decoration {
	if b != nil {
		return nil
	}
	return o.BoxDecoration.LerpTo(nil, t)
}

func TestLerp_UnrelatedFadesThroughNothing(t *testing.T) {
	a := opaqueDecoration{&BoxDecoration{Color: red}}
	b := MustShapeDecoration(ShapeDecorationConfig{Color: blue, Shape: borders.CircleBorder{}})

	first, ok := Lerp(a, b, 0.25).(*BoxDecoration)
	require.True(t, ok)
	assert.Equal(t, red.ScaleAlpha(0.5), first.Color)

	second, ok := Lerp(a, b, 0.75).(*ShapeDecoration)
	require.True(t, ok)
	assert.Equal(t, blue.ScaleAlpha(0.5), second.Color())
}

func TestEqual(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}})
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(d, nil))
	assert.False(t, Equal(nil, d))
	assert.True(t, Equal(d, MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}})))
}

func TestDescribeProperties(t *testing.T) {
	d := MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}})
	got := DescribeProperties(d.Properties(), "  ")
	assert.Equal(t, "  color: #FFFF0000\n  shape: CircleBorder(BorderSide(#00000000, 0.0))\n", got)
}
