package decoration

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
	shapetest "github.com/go-drift/shapefill/pkg/testing"
)

func TestShapeDecorationFromBoxDecoration_Outline(t *testing.T) {
	side := borders.BorderSide{Color: red, Width: 2}
	uniform := borders.BorderAll(side)
	radius := borders.BorderRadiusCircular(6)

	tests := []struct {
		name string
		box  *BoxDecoration
		want borders.ShapeBorder
	}{
		{"plain", &BoxDecoration{Color: blue}, borders.Border{}},
		{"rectangle border", &BoxDecoration{Border: &uniform}, uniform},
		{"rounded", &BoxDecoration{Border: &uniform, BorderRadius: &radius}, borders.RoundedRectangleBorder{Side: side, BorderRadius: radius}},
		{"rounded without border", &BoxDecoration{BorderRadius: &radius}, borders.RoundedRectangleBorder{BorderRadius: radius}},
		{"circle", &BoxDecoration{Border: &uniform, Shape: BoxShapeCircle}, borders.CircleBorder{Side: side}},
		{"circle ignores radius", &BoxDecoration{BorderRadius: &radius, Shape: BoxShapeCircle}, borders.CircleBorder{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ShapeDecorationFromBoxDecoration(tt.box)
			require.NoError(t, err)
			assert.True(t, borders.Equal(tt.want, d.Shape()), "got %s", d.Shape())
		})
	}
}

func TestShapeDecorationFromBoxDecoration_CopiesFill(t *testing.T) {
	shadows := []graphics.BoxShadow{{Color: red, BlurRadius: 3}}
	d, err := ShapeDecorationFromBoxDecoration(&BoxDecoration{Color: green, Shadows: shadows})
	require.NoError(t, err)
	assert.Equal(t, green, d.Color())
	assert.Equal(t, shadows, d.Shadows())
}

func TestShapeDecorationFromBoxDecoration_RejectsNonUniform(t *testing.T) {
	mixed := borders.Border{
		Top:    borders.BorderSide{Color: red, Width: 1},
		Bottom: borders.BorderSide{Color: blue, Width: 4},
	}
	radius := borders.BorderRadiusCircular(4)

	for _, box := range []*BoxDecoration{
		{Border: &mixed, Shape: BoxShapeCircle},
		{Border: &mixed, BorderRadius: &radius},
		nil,
	} {
		_, err := ShapeDecorationFromBoxDecoration(box)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	}

	d, err := ShapeDecorationFromBoxDecoration(&BoxDecoration{Border: &mixed})
	require.NoError(t, err)
	assert.True(t, borders.Equal(mixed, d.Shape()))
}

func TestShapeDecorationFromBoxDecoration_ColorAndGradient(t *testing.T) {
	grad := graphics.NewLinearGradient(graphics.AlignmentTopCenter, graphics.AlignmentBottomCenter, graphics.EvenStops(red, blue))
	_, err := ShapeDecorationFromBoxDecoration(&BoxDecoration{Color: red, Gradient: grad})
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestBoxDecoration_PaintsThroughShapeDecoration(t *testing.T) {
	radius := borders.BorderRadiusCircular(10)
	box := &BoxDecoration{Color: blue, BorderRadius: &radius}
	bp, err := box.CreateBoxPainter(nil)
	require.NoError(t, err)
	defer bp.Dispose()

	canvas := shapetest.NewRecordingCanvas(graphics.Size{Width: 80, Height: 40})
	bp.Paint(canvas, graphics.Offset{}, ImageConfiguration{Size: graphics.Size{Width: 80, Height: 40}})
	assert.Equal(t, []string{"drawPath"}, canvas.OpNames())
	assert.Equal(t, "0xFF0000FF", canvas.Ops()[0].Params["color"])
}

func TestBoxDecoration_HitTestCircle(t *testing.T) {
	box := &BoxDecoration{Color: red, Shape: BoxShapeCircle}
	size := graphics.Size{Width: 40, Height: 40}
	assert.True(t, box.HitTest(size, graphics.Offset{X: 20, Y: 20}, graphics.TextDirectionLTR))
	assert.False(t, box.HitTest(size, graphics.Offset{X: 1, Y: 1}, graphics.TextDirectionLTR))
}

func TestBoxDecoration_Padding(t *testing.T) {
	border := borders.Border{Left: borders.BorderSide{Color: red, Width: 3}}
	assert.Equal(t, graphics.EdgeInsets{Left: 3}, (&BoxDecoration{Border: &border}).Padding())
	assert.Equal(t, graphics.EdgeInsets{}, (&BoxDecoration{}).Padding())
}

func TestBoxDecoration_EqualAndHash(t *testing.T) {
	r1, r2 := borders.BorderRadiusCircular(4), borders.BorderRadiusCircular(4)
	a := &BoxDecoration{Color: red, BorderRadius: &r1}
	b := &BoxDecoration{Color: red, BorderRadius: &r2}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c := &BoxDecoration{Color: red}
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(MustShapeDecoration(ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}})))

	provider := NewMemoryImage(solidImage(1, 1, color.White))
	unset := &BoxDecoration{Image: &DecorationImage{Provider: provider}}
	opaque := &BoxDecoration{Image: &DecorationImage{Provider: provider, Opacity: 1}}
	assert.True(t, unset.Equal(opaque))
	assert.Equal(t, unset.Hash(), opaque.Hash())
}

func TestLerpBoxDecoration(t *testing.T) {
	r := borders.BorderRadiusCircular(10)
	a := &BoxDecoration{Color: red, Shape: BoxShapeRectangle}
	b := &BoxDecoration{Color: blue, BorderRadius: &r, Shape: BoxShapeCircle}

	assert.Same(t, a, LerpBoxDecoration(a, b, 0))
	assert.Same(t, b, LerpBoxDecoration(a, b, 1))
	assert.Nil(t, LerpBoxDecoration(nil, nil, 0.5))

	early := LerpBoxDecoration(a, b, 0.25)
	assert.Equal(t, BoxShapeRectangle, early.Shape)
	require.NotNil(t, early.BorderRadius)
	assert.Equal(t, borders.BorderRadiusCircular(2.5), *early.BorderRadius)
	assert.Nil(t, early.Border)

	late := LerpBoxDecoration(a, b, 0.75)
	assert.Equal(t, BoxShapeCircle, late.Shape)
	assert.Equal(t, graphics.LerpColor(red, blue, 0.75), late.Color)

	faded := LerpBoxDecoration(nil, b, 0.5)
	assert.Equal(t, uint8(128), faded.Color.Alpha())
}

func TestBoxDecoration_Properties(t *testing.T) {
	r := borders.BorderRadiusCircular(4)
	box := &BoxDecoration{Color: red, BorderRadius: &r, Shape: BoxShapeCircle}
	var names []string
	for _, p := range box.Properties() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"color", "borderRadius", "shape"}, names)
	assert.Contains(t, box.String(), "shape: circle")
}
