package borders

import (
	"fmt"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// BorderRadius holds the radius of each corner of a rounded rectangle.
type BorderRadius struct {
	TopLeft     graphics.Radius
	TopRight    graphics.Radius
	BottomRight graphics.Radius
	BottomLeft  graphics.Radius
}

// BorderRadiusAll uses radius for every corner.
func BorderRadiusAll(radius graphics.Radius) BorderRadius {
	return BorderRadius{TopLeft: radius, TopRight: radius, BottomRight: radius, BottomLeft: radius}
}

// BorderRadiusCircular uses a circular radius of r for every corner.
func BorderRadiusCircular(r float64) BorderRadius {
	return BorderRadiusAll(graphics.CircularRadius(r))
}

// IsZero reports whether every corner is square.
func (r BorderRadius) IsZero() bool {
	return r == BorderRadius{}
}

// ToRRect applies the radii to rect.
func (r BorderRadius) ToRRect(rect graphics.Rect) graphics.RRect {
	return graphics.RRect{
		Rect:        rect,
		TopLeft:     r.TopLeft,
		TopRight:    r.TopRight,
		BottomRight: r.BottomRight,
		BottomLeft:  r.BottomLeft,
	}
}

// Scale multiplies every radius by t.
func (r BorderRadius) Scale(t float64) BorderRadius {
	return BorderRadius{
		TopLeft:     r.TopLeft.Scale(t),
		TopRight:    r.TopRight.Scale(t),
		BottomRight: r.BottomRight.Scale(t),
		BottomLeft:  r.BottomLeft.Scale(t),
	}
}

func (r BorderRadius) String() string {
	if r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft {
		if r.TopLeft.X == r.TopLeft.Y {
			return fmt.Sprintf("BorderRadius.circular(%.1f)", r.TopLeft.X)
		}
		return fmt.Sprintf("BorderRadius.all(%.1f, %.1f)", r.TopLeft.X, r.TopLeft.Y)
	}
	return fmt.Sprintf("BorderRadius(%v, %v, %v, %v)", r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

func (r BorderRadius) hash(h *hashing.Hasher) {
	for _, c := range [...]graphics.Radius{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft} {
		h.Float(c.X).Float(c.Y)
	}
}

// LerpBorderRadius interpolates every corner.
func LerpBorderRadius(a, b BorderRadius, t float64) BorderRadius {
	return BorderRadius{
		TopLeft:     graphics.LerpRadius(a.TopLeft, b.TopLeft, t),
		TopRight:    graphics.LerpRadius(a.TopRight, b.TopRight, t),
		BottomRight: graphics.LerpRadius(a.BottomRight, b.BottomRight, t),
		BottomLeft:  graphics.LerpRadius(a.BottomLeft, b.BottomLeft, t),
	}
}
