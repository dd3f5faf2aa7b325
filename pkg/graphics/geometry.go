package graphics

import "math"

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Scale returns the offset with both components multiplied by factor.
func (o Offset) Scale(factor float64) Offset {
	return Offset{X: o.X * factor, Y: o.Y * factor}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ShortestSide returns the smaller of width and height.
func (s Size) ShortestSide() float64 {
	return math.Min(math.Abs(s.Width), math.Abs(s.Height))
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOffsetSize constructs the rect whose top-left corner is offset.
func RectFromOffsetSize(offset Offset, size Size) Rect {
	return RectFromLTWH(offset.X, offset.Y, size.Width, size.Height)
}

// RectFromCircle constructs the square bounding a circle.
func RectFromCircle(center Offset, radius float64) Rect {
	return Rect{
		Left:   center.X - radius,
		Top:    center.Y - radius,
		Right:  center.X + radius,
		Bottom: center.Y + radius,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// ShortestSide returns the smaller of the rect's width and height.
func (r Rect) ShortestSide() float64 {
	return r.Size().ShortestSide()
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Contains reports whether point lies inside the rect. The left and top
// edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(point Offset) bool {
	return point.X >= r.Left && point.X < r.Right && point.Y >= r.Top && point.Y < r.Bottom
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Shift returns a new rect offset by the given vector.
func (r Rect) Shift(offset Offset) Rect {
	return r.Translate(offset.X, offset.Y)
}

// Inflate grows the rect by delta on every side. Negative values shrink it.
func (r Rect) Inflate(delta float64) Rect {
	return Rect{
		Left:   r.Left - delta,
		Top:    r.Top - delta,
		Right:  r.Right + delta,
		Bottom: r.Bottom + delta,
	}
}

// Deflate shrinks the rect by delta on every side.
func (r Rect) Deflate(delta float64) Rect {
	return r.Inflate(-delta)
}

// Radius represents corner radii for rounded rectangles.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius creates a circular radius with equal X/Y values.
func CircularRadius(value float64) Radius {
	return Radius{X: value, Y: value}
}

// Scale returns the radius multiplied by factor.
func (r Radius) Scale(factor float64) Radius {
	return Radius{X: r.X * factor, Y: r.Y * factor}
}

// clampNonNegative drops negative components to zero.
func (r Radius) clampNonNegative() Radius {
	return Radius{X: math.Max(r.X, 0), Y: math.Max(r.Y, 0)}
}

// RRect represents a rounded rectangle with per-corner radii.
type RRect struct {
	Rect        Rect
	TopLeft     Radius
	TopRight    Radius
	BottomRight Radius
	BottomLeft  Radius
}

// Deflate shrinks the rounded rect by delta, reducing each radius by the
// same amount. Radii never go negative.
func (r RRect) Deflate(delta float64) RRect {
	shrink := func(rad Radius) Radius {
		return Radius{X: rad.X - delta, Y: rad.Y - delta}.clampNonNegative()
	}
	rect := r.Rect.Deflate(delta)
	if rect.Right < rect.Left {
		mid := (rect.Left + rect.Right) / 2
		rect.Left, rect.Right = mid, mid
	}
	if rect.Bottom < rect.Top {
		mid := (rect.Top + rect.Bottom) / 2
		rect.Top, rect.Bottom = mid, mid
	}
	return RRect{
		Rect:        rect,
		TopLeft:     shrink(r.TopLeft),
		TopRight:    shrink(r.TopRight),
		BottomRight: shrink(r.BottomRight),
		BottomLeft:  shrink(r.BottomLeft),
	}
}

// normalized scales the radii down so adjacent corners never overlap.
func (r RRect) normalized() RRect {
	w, h := r.Rect.Width(), r.Rect.Height()
	scale := 1.0
	fit := func(length, a, b float64) {
		if sum := a + b; sum > length && sum > 0 {
			scale = math.Min(scale, length/sum)
		}
	}
	fit(w, r.TopLeft.X, r.TopRight.X)
	fit(w, r.BottomLeft.X, r.BottomRight.X)
	fit(h, r.TopLeft.Y, r.BottomLeft.Y)
	fit(h, r.TopRight.Y, r.BottomRight.Y)
	if scale >= 1 {
		return r
	}
	return RRect{
		Rect:        r.Rect,
		TopLeft:     r.TopLeft.Scale(scale),
		TopRight:    r.TopRight.Scale(scale),
		BottomRight: r.BottomRight.Scale(scale),
		BottomLeft:  r.BottomLeft.Scale(scale),
	}
}

// LerpFloat linearly interpolates between two values.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{X: LerpFloat(a.X, b.X, t), Y: LerpFloat(a.Y, b.Y, t)}
}

// LerpRadius linearly interpolates between two radii.
func LerpRadius(a, b Radius, t float64) Radius {
	return Radius{X: LerpFloat(a.X, b.X, t), Y: LerpFloat(a.Y, b.Y, t)}
}
