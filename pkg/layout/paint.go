package layout

import "github.com/go-drift/shapefill/pkg/graphics"

// HitTestResult collects hit test entries in paint order.
type HitTestResult struct {
	Entries []RenderObject
}

// Add inserts a render object into the hit test result list.
func (h *HitTestResult) Add(target RenderObject) {
	h.Entries = append(h.Entries, target)
}

// PaintContext provides the canvas for painting render objects.
type PaintContext struct {
	Canvas graphics.Canvas
}

// PaintChild paints a render object with its origin moved to offset.
func (p *PaintContext) PaintChild(child RenderObject, offset graphics.Offset) error {
	if child == nil {
		return nil
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	err := child.Paint(p, graphics.Offset{})
	p.Canvas.Restore()
	return err
}

// PaintLayer replays layer at offset.
func (p *PaintContext) PaintLayer(layer *graphics.DisplayList, offset graphics.Offset) {
	if layer == nil {
		return
	}
	p.Canvas.Save()
	p.Canvas.Translate(offset.X, offset.Y)
	layer.Paint(p.Canvas)
	p.Canvas.Restore()
}
