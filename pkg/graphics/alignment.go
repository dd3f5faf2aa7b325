package graphics

import "fmt"

// Alignment positions a box inside a rect. X and Y run from -1 (left/top)
// to 1 (right/bottom); (0, 0) is the center.
type Alignment struct {
	X float64
	Y float64
}

// Common alignments.
var (
	AlignmentTopLeft      = Alignment{X: -1, Y: -1}
	AlignmentTopCenter    = Alignment{X: 0, Y: -1}
	AlignmentTopRight     = Alignment{X: 1, Y: -1}
	AlignmentCenterLeft   = Alignment{X: -1, Y: 0}
	AlignmentCenter       = Alignment{X: 0, Y: 0}
	AlignmentCenterRight  = Alignment{X: 1, Y: 0}
	AlignmentBottomLeft   = Alignment{X: -1, Y: 1}
	AlignmentBottomCenter = Alignment{X: 0, Y: 1}
	AlignmentBottomRight  = Alignment{X: 1, Y: 1}
)

// WithinRect returns the top-left offset of a child of the given size
// aligned inside rect.
func (a Alignment) WithinRect(rect Rect, child Size) Offset {
	halfW := (rect.Width() - child.Width) / 2
	halfH := (rect.Height() - child.Height) / 2
	return Offset{
		X: rect.Left + halfW + a.X*halfW,
		Y: rect.Top + halfH + a.Y*halfH,
	}
}

// Resolve maps the alignment to a point inside rect.
func (a Alignment) Resolve(rect Rect) Offset {
	c := rect.Center()
	return Offset{
		X: c.X + a.X*rect.Width()/2,
		Y: c.Y + a.Y*rect.Height()/2,
	}
}

// Directional mirrors X when dir is right-to-left.
func (a Alignment) Directional(dir TextDirection) Alignment {
	if dir == TextDirectionRTL {
		return Alignment{X: -a.X, Y: a.Y}
	}
	return a
}

func (a Alignment) String() string {
	return fmt.Sprintf("Alignment(%.1f, %.1f)", a.X, a.Y)
}

// LerpAlignment linearly interpolates between two alignments.
func LerpAlignment(a, b Alignment, t float64) Alignment {
	return Alignment{X: LerpFloat(a.X, b.X, t), Y: LerpFloat(a.Y, b.Y, t)}
}

// TextDirection is the reading direction used to resolve direction-dependent
// geometry. The zero value means the direction is unknown; direction-
// independent shapes must accept it.
type TextDirection int

const (
	// TextDirectionUnspecified means no direction was supplied.
	TextDirectionUnspecified TextDirection = iota
	// TextDirectionLTR is left-to-right.
	TextDirectionLTR
	// TextDirectionRTL is right-to-left.
	TextDirectionRTL
)

// String returns a human-readable representation of the text direction.
func (d TextDirection) String() string {
	switch d {
	case TextDirectionUnspecified:
		return "unspecified"
	case TextDirectionLTR:
		return "ltr"
	case TextDirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("TextDirection(%d)", int(d))
	}
}
