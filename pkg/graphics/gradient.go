package graphics

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// GradientType describes the gradient variant.
type GradientType int

const (
	// GradientTypeNone indicates no gradient is applied.
	GradientTypeNone GradientType = iota
	// GradientTypeLinear indicates a linear gradient.
	GradientTypeLinear
	// GradientTypeRadial indicates a radial gradient.
	GradientTypeRadial
	// GradientTypeSweep indicates a sweep (conic) gradient.
	GradientTypeSweep
)

// String returns a human-readable representation of the gradient type.
func (t GradientType) String() string {
	switch t {
	case GradientTypeNone:
		return "none"
	case GradientTypeLinear:
		return "linear"
	case GradientTypeRadial:
		return "radial"
	case GradientTypeSweep:
		return "sweep"
	default:
		return fmt.Sprintf("GradientType(%d)", int(t))
	}
}

// TileMode controls how a gradient extends past its end points.
type TileMode int

const (
	TileModeClamp    TileMode = iota // Extend the edge colors
	TileModeRepeated                 // Restart the gradient
	TileModeMirror                   // Reflect the gradient
)

// String returns a human-readable representation of the tile mode.
func (m TileMode) String() string {
	switch m {
	case TileModeClamp:
		return "clamp"
	case TileModeRepeated:
		return "repeated"
	case TileModeMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Position float64
	Color    Color
}

// EvenStops spreads colors evenly over [0, 1].
func EvenStops(colors ...Color) []GradientStop {
	stops := make([]GradientStop, len(colors))
	for i, c := range colors {
		pos := 0.0
		if len(colors) > 1 {
			pos = float64(i) / float64(len(colors)-1)
		}
		stops[i] = GradientStop{Position: pos, Color: c}
	}
	return stops
}

// LinearGradient runs between two alignments of the painted rect.
type LinearGradient struct {
	Begin Alignment
	End   Alignment
	Stops []GradientStop
}

// RadialGradient radiates from an alignment of the painted rect. Radius is
// a fraction of the rect's shortest side.
type RadialGradient struct {
	Center Alignment
	Radius float64
	Stops  []GradientStop
}

// SweepGradient sweeps around an alignment of the painted rect, between
// two angles in radians.
type SweepGradient struct {
	Center     Alignment
	StartAngle float64
	EndAngle   float64
	Stops      []GradientStop
}

// Gradient describes a linear, radial or sweep gradient in coordinates
// relative to the rect it is painted into. CreateShader resolves it
// against a concrete rect.
type Gradient struct {
	Type     GradientType
	Linear   LinearGradient
	Radial   RadialGradient
	Sweep    SweepGradient
	TileMode TileMode
}

// NewLinearGradient constructs a linear gradient definition.
func NewLinearGradient(begin, end Alignment, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:   GradientTypeLinear,
		Linear: LinearGradient{Begin: begin, End: end, Stops: cloneGradientStops(stops)},
	}
}

// NewRadialGradient constructs a radial gradient definition.
func NewRadialGradient(center Alignment, radius float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type:   GradientTypeRadial,
		Radial: RadialGradient{Center: center, Radius: radius, Stops: cloneGradientStops(stops)},
	}
}

// NewSweepGradient constructs a sweep gradient definition.
func NewSweepGradient(center Alignment, startAngle, endAngle float64, stops []GradientStop) *Gradient {
	return &Gradient{
		Type: GradientTypeSweep,
		Sweep: SweepGradient{
			Center:     center,
			StartAngle: startAngle,
			EndAngle:   endAngle,
			Stops:      cloneGradientStops(stops),
		},
	}
}

// Stops returns the gradient stops for the configured type.
func (g *Gradient) Stops() []GradientStop {
	if g == nil {
		return nil
	}
	switch g.Type {
	case GradientTypeLinear:
		return g.Linear.Stops
	case GradientTypeRadial:
		return g.Radial.Stops
	case GradientTypeSweep:
		return g.Sweep.Stops
	default:
		return nil
	}
}

// IsValid reports whether the gradient has usable stops.
func (g *Gradient) IsValid() bool {
	if g == nil {
		return false
	}
	stops := g.Stops()
	if len(stops) < 2 {
		return false
	}
	if g.Type == GradientTypeRadial && g.Radial.Radius <= 0 {
		return false
	}
	for _, stop := range stops {
		if stop.Position < 0 || stop.Position > 1 {
			return false
		}
	}
	return true
}

// withStops returns a copy of g carrying stops instead of its own.
func (g *Gradient) withStops(stops []GradientStop) *Gradient {
	out := *g
	switch g.Type {
	case GradientTypeLinear:
		out.Linear.Stops = stops
	case GradientTypeRadial:
		out.Radial.Stops = stops
	case GradientTypeSweep:
		out.Sweep.Stops = stops
	}
	return &out
}

// Scale returns a copy with every stop's alpha multiplied by factor.
func (g *Gradient) Scale(factor float64) *Gradient {
	if g == nil {
		return nil
	}
	src := g.Stops()
	stops := make([]GradientStop, len(src))
	for i, s := range src {
		stops[i] = GradientStop{Position: s.Position, Color: s.Color.ScaleAlpha(factor)}
	}
	return g.withStops(stops)
}

// Flat returns a gradient with g's geometry whose every stop is c.
func (g *Gradient) Flat(c Color) *Gradient {
	src := g.Stops()
	stops := make([]GradientStop, len(src))
	for i, s := range src {
		stops[i] = GradientStop{Position: s.Position, Color: c}
	}
	return g.withStops(stops)
}

// Equal reports whether two gradients describe the same fill.
func (g *Gradient) Equal(other *Gradient) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Type != other.Type || g.TileMode != other.TileMode {
		return false
	}
	switch g.Type {
	case GradientTypeLinear:
		if g.Linear.Begin != other.Linear.Begin || g.Linear.End != other.Linear.End {
			return false
		}
	case GradientTypeRadial:
		if g.Radial.Center != other.Radial.Center || g.Radial.Radius != other.Radial.Radius {
			return false
		}
	case GradientTypeSweep:
		if g.Sweep.Center != other.Sweep.Center ||
			g.Sweep.StartAngle != other.Sweep.StartAngle ||
			g.Sweep.EndAngle != other.Sweep.EndAngle {
			return false
		}
	}
	return slices.Equal(g.Stops(), other.Stops())
}

func (g *Gradient) String() string {
	if g == nil {
		return "null"
	}
	parts := make([]string, 0, len(g.Stops()))
	for _, s := range g.Stops() {
		parts = append(parts, fmt.Sprintf("%s@%.2f", s.Color, s.Position))
	}
	return fmt.Sprintf("%sGradient(%s)", g.Type, strings.Join(parts, ", "))
}

// Shader is a gradient resolved to absolute canvas coordinates.
type Shader struct {
	Type       GradientType
	Start      Offset // linear
	End        Offset // linear
	Center     Offset // radial and sweep
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Stops      []GradientStop
	TileMode   TileMode
}

// CreateShader resolves the gradient against rect.
func (g *Gradient) CreateShader(rect Rect) *Shader {
	if g == nil {
		return nil
	}
	s := &Shader{Type: g.Type, Stops: cloneGradientStops(g.Stops()), TileMode: g.TileMode}
	switch g.Type {
	case GradientTypeLinear:
		s.Start = g.Linear.Begin.Resolve(rect)
		s.End = g.Linear.End.Resolve(rect)
	case GradientTypeRadial:
		s.Center = g.Radial.Center.Resolve(rect)
		s.Radius = g.Radial.Radius * rect.ShortestSide()
	case GradientTypeSweep:
		s.Center = g.Sweep.Center.Resolve(rect)
		s.StartAngle = g.Sweep.StartAngle
		s.EndAngle = g.Sweep.EndAngle
	}
	return s
}

// LerpGradient interpolates between two gradients.
//
// A nil side fades the other in or out by alpha. Gradients of the same type
// interpolate geometry and stops; the stop lists are merged so both sides
// are sampled at every position. Gradients of different types cannot be
// blended, so the first half fades a out and the second half fades b in.
func LerpGradient(a, b *Gradient, t float64) *Gradient {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b.Scale(t)
	case b == nil:
		return a.Scale(1 - t)
	}
	if a.Type != b.Type {
		if t < 0.5 {
			return a.Scale(1 - t*2)
		}
		return b.Scale((t - 0.5) * 2)
	}
	out := &Gradient{Type: a.Type, TileMode: a.TileMode}
	if t >= 0.5 {
		out.TileMode = b.TileMode
	}
	stops := lerpStops(a.Stops(), b.Stops(), t)
	switch a.Type {
	case GradientTypeLinear:
		out.Linear = LinearGradient{
			Begin: LerpAlignment(a.Linear.Begin, b.Linear.Begin, t),
			End:   LerpAlignment(a.Linear.End, b.Linear.End, t),
			Stops: stops,
		}
	case GradientTypeRadial:
		out.Radial = RadialGradient{
			Center: LerpAlignment(a.Radial.Center, b.Radial.Center, t),
			Radius: math.Max(0, LerpFloat(a.Radial.Radius, b.Radial.Radius, t)),
			Stops:  stops,
		}
	case GradientTypeSweep:
		out.Sweep = SweepGradient{
			Center:     LerpAlignment(a.Sweep.Center, b.Sweep.Center, t),
			StartAngle: LerpFloat(a.Sweep.StartAngle, b.Sweep.StartAngle, t),
			EndAngle:   LerpFloat(a.Sweep.EndAngle, b.Sweep.EndAngle, t),
			Stops:      stops,
		}
	}
	return out
}

func lerpStops(a, b []GradientStop, t float64) []GradientStop {
	positions := make([]float64, 0, len(a)+len(b))
	for _, s := range a {
		positions = append(positions, s.Position)
	}
	for _, s := range b {
		positions = append(positions, s.Position)
	}
	slices.Sort(positions)
	positions = slices.Compact(positions)

	out := make([]GradientStop, len(positions))
	for i, pos := range positions {
		out[i] = GradientStop{
			Position: pos,
			Color:    mixColor(SampleStops(a, pos), SampleStops(b, pos), t),
		}
	}
	return out
}

// SampleStops returns the color of a stop list at position, interpolating
// between neighbouring stops and clamping past the ends.
func SampleStops(stops []GradientStop, position float64) Color {
	if len(stops) == 0 {
		return ColorTransparent
	}
	if position <= stops[0].Position {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if position >= last.Position {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if position > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Color
		}
		return mixColor(lo.Color, hi.Color, (position-lo.Position)/span)
	}
	return last.Color
}

// mixColor blends two colors channel by channel, including alpha.
func mixColor(a, b Color, t float64) Color {
	lerp := func(shift uint) uint32 {
		return uint32(clampByte(LerpFloat(float64(uint8(a>>shift)), float64(uint8(b>>shift)), t))) << shift
	}
	return Color(lerp(24) | lerp(16) | lerp(8) | lerp(0))
}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	clone := make([]GradientStop, len(stops))
	copy(clone, stops)
	return clone
}
