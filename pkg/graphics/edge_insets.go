package graphics

import "fmt"

// EdgeInsets describes offsets from each edge of a rect.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every edge.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// Horizontal returns the sum of left and right insets.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of top and bottom insets.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the edge-wise sum of two insets.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + other.Left,
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
	}
}

// Scale multiplies every edge by factor.
func (e EdgeInsets) Scale(factor float64) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left * factor,
		Top:    e.Top * factor,
		Right:  e.Right * factor,
		Bottom: e.Bottom * factor,
	}
}

// DeflateRect shrinks rect by the insets.
func (e EdgeInsets) DeflateRect(rect Rect) Rect {
	return Rect{
		Left:   rect.Left + e.Left,
		Top:    rect.Top + e.Top,
		Right:  rect.Right - e.Right,
		Bottom: rect.Bottom - e.Bottom,
	}
}

// InflateRect grows rect by the insets.
func (e EdgeInsets) InflateRect(rect Rect) Rect {
	return Rect{
		Left:   rect.Left - e.Left,
		Top:    rect.Top - e.Top,
		Right:  rect.Right + e.Right,
		Bottom: rect.Bottom + e.Bottom,
	}
}

func (e EdgeInsets) String() string {
	if e.Left == e.Top && e.Top == e.Right && e.Right == e.Bottom {
		return fmt.Sprintf("EdgeInsets.all(%.1f)", e.Left)
	}
	return fmt.Sprintf("EdgeInsets(%.1f, %.1f, %.1f, %.1f)", e.Left, e.Top, e.Right, e.Bottom)
}
