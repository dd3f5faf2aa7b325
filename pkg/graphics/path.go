package graphics

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// kappa is the cubic control-point distance that approximates a quarter circle.
const kappa = 0.5522847498307936

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Outline borders use it to punch the inner edge out of the outer one.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close, or the
// AddRect/AddRRect/AddOval helpers. Use with Canvas.DrawPath to stroke or
// fill, or Canvas.ClipPath to clip.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpMoveTo, Args: []float64{x, y}})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpLineTo, Args: []float64{x, y}})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpQuadTo, Args: []float64{x1, y1, x2, y2}})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpCubicTo, Args: []float64{x1, y1, x2, y2, x3, y3}})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{Op: PathOpClose})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// AddRect appends a closed clockwise rectangle subpath.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// AddOval appends a closed ellipse inscribed in r.
func (p *Path) AddOval(r Rect) {
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+ky, c.X+kx, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-kx, c.Y+ry, c.X-rx, c.Y+ky, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-ky, c.X-kx, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+kx, c.Y-ry, c.X+rx, c.Y-ky, c.X+rx, c.Y)
	p.Close()
}

// AddRRect appends a closed rounded rectangle. Radii that would overlap are
// scaled down proportionally.
func (p *Path) AddRRect(rr RRect) {
	rr = rr.normalized()
	r := rr.Rect
	tl, tr := rr.TopLeft.clampNonNegative(), rr.TopRight.clampNonNegative()
	br, bl := rr.BottomRight.clampNonNegative(), rr.BottomLeft.clampNonNegative()

	p.MoveTo(r.Left+tl.X, r.Top)
	p.LineTo(r.Right-tr.X, r.Top)
	if tr.X > 0 || tr.Y > 0 {
		p.CubicTo(r.Right-tr.X*(1-kappa), r.Top, r.Right, r.Top+tr.Y*(1-kappa), r.Right, r.Top+tr.Y)
	}
	p.LineTo(r.Right, r.Bottom-br.Y)
	if br.X > 0 || br.Y > 0 {
		p.CubicTo(r.Right, r.Bottom-br.Y*(1-kappa), r.Right-br.X*(1-kappa), r.Bottom, r.Right-br.X, r.Bottom)
	}
	p.LineTo(r.Left+bl.X, r.Bottom)
	if bl.X > 0 || bl.Y > 0 {
		p.CubicTo(r.Left+bl.X*(1-kappa), r.Bottom, r.Left, r.Bottom-bl.Y*(1-kappa), r.Left, r.Bottom-bl.Y)
	}
	p.LineTo(r.Left, r.Top+tl.Y)
	if tl.X > 0 || tl.Y > 0 {
		p.CubicTo(r.Left, r.Top+tl.Y*(1-kappa), r.Left+tl.X*(1-kappa), r.Top, r.Left+tl.X, r.Top)
	}
	p.Close()
}

// AddPath appends all commands of other.
func (p *Path) AddPath(other *Path) {
	if other.IsEmpty() {
		return
	}
	for _, cmd := range other.Commands {
		p.Commands = append(p.Commands, PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)})
	}
}

// Shift returns a copy of the path translated by offset.
func (p *Path) Shift(offset Offset) *Path {
	out := &Path{FillRule: p.FillRule, Commands: make([]PathCommand, len(p.Commands))}
	for i, cmd := range p.Commands {
		args := make([]float64, len(cmd.Args))
		for j, v := range cmd.Args {
			if j%2 == 0 {
				args[j] = v + offset.X
			} else {
				args[j] = v + offset.Y
			}
		}
		out.Commands[i] = PathCommand{Op: cmd.Op, Args: args}
	}
	return out
}

// Bounds returns the bounding box of all points, including control points.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	b := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for _, cmd := range p.Commands {
		for j := 0; j+1 < len(cmd.Args); j += 2 {
			x, y := cmd.Args[j], cmd.Args[j+1]
			b.Left = math.Min(b.Left, x)
			b.Top = math.Min(b.Top, y)
			b.Right = math.Max(b.Right, x)
			b.Bottom = math.Max(b.Bottom, y)
		}
	}
	if math.IsInf(b.Left, 1) {
		return Rect{}
	}
	return b
}

// Contains reports whether point lies inside the path under its fill rule.
func (p *Path) Contains(point Offset) bool {
	if p.IsEmpty() {
		return false
	}
	w := p.toGG().Winding(gg.Pt(point.X, point.Y))
	if p.FillRule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

func (p *Path) toGG() *gg.Path {
	out := gg.NewPath()
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			out.MoveTo(a[0], a[1])
		case PathOpLineTo:
			out.LineTo(a[0], a[1])
		case PathOpQuadTo:
			out.QuadraticTo(a[0], a[1], a[2], a[3])
		case PathOpCubicTo:
			out.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case PathOpClose:
			out.Close()
		}
	}
	return out
}
