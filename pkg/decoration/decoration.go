package decoration

import "github.com/go-drift/shapefill/pkg/graphics"

// ImageConfiguration describes the area a painter is asked to fill.
type ImageConfiguration struct {
	Size          graphics.Size
	TextDirection graphics.TextDirection
}

// Decoration is a paintable description of a box background.
//
// Implementations are immutable and safe to share between goroutines.
type Decoration interface {
	// Padding is the space the decoration's border occupies on each edge.
	Padding() graphics.EdgeInsets

	// IsComplex hints that painting is expensive enough for the host to
	// cache the result.
	IsComplex() bool

	// HitTest reports whether position, relative to a box of the given
	// size at the origin, is inside the decoration.
	HitTest(size graphics.Size, position graphics.Offset, dir graphics.TextDirection) bool

	// ClipPath is the outline of the decoration painted into rect.
	ClipPath(rect graphics.Rect, dir graphics.TextDirection) *graphics.Path

	// CreateBoxPainter returns a painter bound to this decoration.
	// onChanged is called, possibly from another goroutine, when an
	// asynchronous resource such as an image becomes available.
	CreateBoxPainter(onChanged func()) (BoxPainter, error)

	// LerpFrom interpolates from a (which may be nil) to this decoration.
	// It returns nil when it cannot blend with a.
	LerpFrom(a Decoration, t float64) Decoration

	// LerpTo interpolates from this decoration to b (which may be nil).
	// It returns nil when it cannot blend with b.
	LerpTo(b Decoration, t float64) Decoration

	// Equal reports structural equality.
	Equal(other Decoration) bool

	// Hash is consistent with Equal.
	Hash() uint64

	// Properties lists the decoration's set fields for diagnostics.
	Properties() []Property
}

// BoxPainter paints one Decoration. It is owned by a single host and is
// not safe for concurrent use.
type BoxPainter interface {
	// Paint draws the decoration into the rect at offset with cfg.Size.
	Paint(canvas graphics.Canvas, offset graphics.Offset, cfg ImageConfiguration)

	// Dispose releases resources. Paint must not be called afterwards.
	Dispose()
}

// boxPainterBase stores the host's repaint callback.
type boxPainterBase struct {
	onChanged func()
}

func (b *boxPainterBase) dispose() {
	b.onChanged = nil
}

// Lerp interpolates between two decorations, either of which may be nil.
//
// b.LerpFrom is consulted first, then a.LerpTo. When neither knows the
// other, a fades out over the first half and b fades in over the second.
func Lerp(a, b Decoration, t float64) Decoration {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return orElse(b.LerpFrom(nil, t), b)
	case b == nil:
		return orElse(a.LerpTo(nil, t), a)
	case t == 0:
		return a
	case t == 1:
		return b
	}
	if r := b.LerpFrom(a, t); r != nil {
		return r
	}
	if r := a.LerpTo(b, t); r != nil {
		return r
	}
	if t < 0.5 {
		return orElse(a.LerpTo(nil, t*2), a)
	}
	return orElse(b.LerpFrom(nil, (t-0.5)*2), b)
}

func orElse(d, fallback Decoration) Decoration {
	if d == nil {
		return fallback
	}
	return d
}

// Equal compares two possibly-nil decorations.
func Equal(a, b Decoration) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
