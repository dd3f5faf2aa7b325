package layout

import "github.com/go-drift/shapefill/pkg/graphics"

// RenderObject paints itself and answers hit tests.
type RenderObject interface {
	Size() graphics.Size
	Paint(ctx *PaintContext, offset graphics.Offset) error
	HitTest(position graphics.Offset, result *HitTestResult) bool
	MarkNeedsPaint()
	NeedsPaint() bool
	Dispose()
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}
