package borders

import (
	"fmt"
	"math"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// BorderStyle selects how a border side is drawn.
type BorderStyle int

const (
	// BorderStyleSolid draws a solid line. It is the zero value.
	BorderStyleSolid BorderStyle = iota
	// BorderStyleNone draws nothing and takes no space.
	BorderStyleNone
)

// String returns a human-readable representation of the border style.
func (s BorderStyle) String() string {
	switch s {
	case BorderStyleSolid:
		return "solid"
	case BorderStyleNone:
		return "none"
	default:
		return fmt.Sprintf("BorderStyle(%d)", int(s))
	}
}

// BorderSide is one edge of a border. Strokes are drawn inside the edge.
//
// The zero value has no width and paints nothing.
type BorderSide struct {
	Color graphics.Color
	Width float64
	Style BorderStyle
}

// BorderSideNone paints nothing.
var BorderSideNone = BorderSide{Style: BorderStyleNone}

// EffectiveWidth is the space the side occupies: its width, or zero when
// the style is none.
func (s BorderSide) EffectiveWidth() float64 {
	if s.Style == BorderStyleNone {
		return 0
	}
	return math.Max(s.Width, 0)
}

// IsVisible reports whether painting the side would change any pixels.
func (s BorderSide) IsVisible() bool {
	return s.EffectiveWidth() > 0 && s.Color.Alpha() > 0
}

// Scale multiplies the width by t. A non-positive t yields no border.
func (s BorderSide) Scale(t float64) BorderSide {
	if t <= 0 {
		return BorderSideNone
	}
	return BorderSide{Color: s.Color, Width: math.Max(0, s.Width*t), Style: s.Style}
}

// ToPaint returns a stroke paint for the side.
func (s BorderSide) ToPaint() graphics.Paint {
	paint := graphics.DefaultPaint()
	paint.Style = graphics.PaintStyleStroke
	if s.Style == BorderStyleNone {
		paint.Color = graphics.ColorTransparent
		paint.StrokeWidth = 0
		return paint
	}
	paint.Color = s.Color
	paint.StrokeWidth = s.Width
	return paint
}

func (s BorderSide) String() string {
	if s.Style == BorderStyleNone {
		return "BorderSide.none"
	}
	return fmt.Sprintf("BorderSide(%s, %.1f)", s.Color, s.Width)
}

func (s BorderSide) hash(h *hashing.Hasher) {
	h.Uint32(uint32(s.Color)).Float(s.Width).Int(int(s.Style))
}

// canMerge reports whether two sides can be drawn as one thicker side.
func canMerge(a, b BorderSide) bool {
	if a.EffectiveWidth() == 0 || b.EffectiveWidth() == 0 {
		return true
	}
	return a.Style == b.Style && a.Color == b.Color
}

// mergeSides combines two sides accepted by canMerge.
func mergeSides(a, b BorderSide) BorderSide {
	if a.EffectiveWidth() == 0 {
		return b
	}
	if b.EffectiveWidth() == 0 {
		return a
	}
	return BorderSide{Color: a.Color, Width: a.Width + b.Width, Style: a.Style}
}

// LerpBorderSide interpolates two sides. When only one side is solid, the
// other is treated as a transparent side of the same color.
func LerpBorderSide(a, b BorderSide, t float64) BorderSide {
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}
	width := graphics.LerpFloat(a.Width, b.Width, t)
	if width < 0 {
		return BorderSideNone
	}
	if a.Style == b.Style {
		return BorderSide{Color: graphics.LerpColor(a.Color, b.Color, t), Width: width, Style: a.Style}
	}
	colorA, colorB := a.Color, b.Color
	if a.Style == BorderStyleNone {
		colorA = colorA.WithAlpha(0)
	}
	if b.Style == BorderStyleNone {
		colorB = colorB.WithAlpha(0)
	}
	return BorderSide{
		Color: graphics.LerpColor(colorA, colorB, t),
		Width: width,
		Style: BorderStyleSolid,
	}
}
