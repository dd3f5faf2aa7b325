package borders

import (
	"strings"

	"github.com/go-drift/shapefill/internal/hashing"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// compoundBorder nests borders that could not be merged. Borders are
// ordered outermost first; each one is painted inside the previous one's
// dimensions.
type compoundBorder struct {
	borders []ShapeBorder
}

// newCompoundBorder flattens nested compounds and drops nil entries.
// A single remaining border is returned as is.
func newCompoundBorder(borders ...ShapeBorder) ShapeBorder {
	var flat []ShapeBorder
	for _, b := range borders {
		switch b := b.(type) {
		case nil:
		case compoundBorder:
			flat = append(flat, b.borders...)
		default:
			flat = append(flat, b)
		}
	}
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	}
	return compoundBorder{borders: flat}
}

// Dimensions implements ShapeBorder.
func (c compoundBorder) Dimensions() graphics.EdgeInsets {
	var total graphics.EdgeInsets
	for _, b := range c.borders {
		total = total.Add(b.Dimensions())
	}
	return total
}

// OuterPath implements ShapeBorder.
func (c compoundBorder) OuterPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	return c.borders[0].OuterPath(rect, dir)
}

// InnerPath implements ShapeBorder.
func (c compoundBorder) InnerPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path {
	last := len(c.borders) - 1
	for _, b := range c.borders[:last] {
		rect = b.Dimensions().DeflateRect(rect)
	}
	return c.borders[last].InnerPath(rect, dir)
}

// Paint implements ShapeBorder.
func (c compoundBorder) Paint(canvas graphics.Canvas, rect graphics.Rect, dir graphics.TextDirection) {
	for _, b := range c.borders {
		b.Paint(canvas, rect, dir)
		rect = b.Dimensions().DeflateRect(rect)
	}
}

// Scale implements ShapeBorder.
func (c compoundBorder) Scale(t float64) ShapeBorder {
	scaled := make([]ShapeBorder, len(c.borders))
	for i, b := range c.borders {
		scaled[i] = b.Scale(t)
	}
	return compoundBorder{borders: scaled}
}

// LerpFrom implements ShapeBorder.
func (c compoundBorder) LerpFrom(a ShapeBorder, t float64) ShapeBorder {
	return lerpCompound(a, c, t)
}

// LerpTo implements ShapeBorder.
func (c compoundBorder) LerpTo(b ShapeBorder, t float64) ShapeBorder {
	return lerpCompound(c, b, t)
}

// lerpCompound pairs borders by position, outermost first. The shorter
// list is padded with nil so extra borders grow in or shrink out.
func lerpCompound(a, b ShapeBorder, t float64) ShapeBorder {
	as, bs := compoundParts(a), compoundParts(b)
	n := max(len(as), len(bs))
	results := make([]ShapeBorder, 0, n)
	for i := range n {
		var x, y ShapeBorder
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		if r := Lerp(x, y, t); r != nil {
			results = append(results, r)
		}
	}
	return newCompoundBorder(results...)
}

func compoundParts(b ShapeBorder) []ShapeBorder {
	switch b := b.(type) {
	case nil:
		return nil
	case compoundBorder:
		return b.borders
	default:
		return []ShapeBorder{b}
	}
}

// Add implements ShapeBorder. An outer border that merges with the
// outermost child replaces it.
func (c compoundBorder) Add(other ShapeBorder) ShapeBorder {
	merged := c.borders[0].Add(other)
	if merged == nil {
		return nil
	}
	borders := append([]ShapeBorder{merged}, c.borders[1:]...)
	return compoundBorder{borders: borders}
}

// Equal implements ShapeBorder.
func (c compoundBorder) Equal(other ShapeBorder) bool {
	o, ok := other.(compoundBorder)
	if !ok || len(o.borders) != len(c.borders) {
		return false
	}
	for i := range c.borders {
		if !c.borders[i].Equal(o.borders[i]) {
			return false
		}
	}
	return true
}

// Hash implements ShapeBorder.
func (c compoundBorder) Hash() uint64 {
	h := hashing.New().String("CompoundBorder").Int(len(c.borders))
	for _, b := range c.borders {
		h.Uint64(b.Hash())
	}
	return h.Sum64()
}

// String lists the borders innermost first, matching how they are added.
func (c compoundBorder) String() string {
	parts := make([]string, len(c.borders))
	for i, b := range c.borders {
		parts[len(c.borders)-1-i] = b.String()
	}
	return strings.Join(parts, " + ")
}
