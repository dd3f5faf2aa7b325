package layout

import (
	"sync/atomic"

	"github.com/go-drift/shapefill/pkg/decoration"
	"github.com/go-drift/shapefill/pkg/errors"
	"github.com/go-drift/shapefill/pkg/graphics"
)

// RenderDecoratedBox paints a Decoration into a box of a given size.
//
// The box owns one BoxPainter for its current decoration, created on the
// first paint. The painter's change callback marks the box as needing
// paint. Complex decorations are recorded once into a display list and
// replayed until something marks the box dirty again.
//
// All methods except MarkNeedsPaint and NeedsPaint must be called from the
// goroutine that paints.
type RenderDecoratedBox struct {
	decoration    decoration.Decoration
	textDirection graphics.TextDirection
	size          graphics.Size
	owner         atomic.Pointer[PipelineOwner]

	painter decoration.BoxPainter
	layer   *graphics.DisplayList

	needsPaint atomic.Bool
	disposed   bool
}

// NewRenderDecoratedBox returns a box painting d. The box starts out
// needing paint.
func NewRenderDecoratedBox(d decoration.Decoration, dir graphics.TextDirection) *RenderDecoratedBox {
	r := &RenderDecoratedBox{decoration: d, textDirection: dir}
	r.needsPaint.Store(true)
	return r
}

// Decoration returns the decoration being painted.
func (r *RenderDecoratedBox) Decoration() decoration.Decoration {
	return r.decoration
}

// SetDecoration replaces the decoration. An equal decoration keeps the
// current painter; a different one disposes it.
func (r *RenderDecoratedBox) SetDecoration(d decoration.Decoration) {
	if decoration.Equal(r.decoration, d) {
		r.decoration = d
		return
	}
	r.disposePainter()
	r.decoration = d
	r.MarkNeedsPaint()
}

// TextDirection returns the direction passed to the painter.
func (r *RenderDecoratedBox) TextDirection() graphics.TextDirection {
	return r.textDirection
}

// SetTextDirection updates the direction used for painting and hit tests.
func (r *RenderDecoratedBox) SetTextDirection(dir graphics.TextDirection) {
	if r.textDirection == dir {
		return
	}
	r.textDirection = dir
	r.MarkNeedsPaint()
}

// Size returns the current size of the box.
func (r *RenderDecoratedBox) Size() graphics.Size {
	return r.size
}

// SetSize updates the size of the box.
func (r *RenderDecoratedBox) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.MarkNeedsPaint()
}

// Attach schedules future repaints with owner.
func (r *RenderDecoratedBox) Attach(owner *PipelineOwner) {
	r.owner.Store(owner)
	if owner != nil && r.NeedsPaint() {
		owner.SchedulePaint(r)
	}
}

// MarkNeedsPaint flags the box for repaint. It is safe to call from any
// goroutine.
func (r *RenderDecoratedBox) MarkNeedsPaint() {
	r.needsPaint.Store(true)
	if owner := r.owner.Load(); owner != nil {
		owner.SchedulePaint(r)
	}
}

// NeedsPaint reports whether the box has changed since it was last
// painted.
func (r *RenderDecoratedBox) NeedsPaint() bool {
	return r.needsPaint.Load()
}

// Padding is the space the decoration's border takes up.
func (r *RenderDecoratedBox) Padding() graphics.EdgeInsets {
	if r.decoration == nil {
		return graphics.EdgeInsets{}
	}
	return r.decoration.Padding()
}

// Paint draws the decoration at offset.
func (r *RenderDecoratedBox) Paint(ctx *PaintContext, offset graphics.Offset) error {
	if r.disposed || r.decoration == nil {
		return nil
	}
	dirty := r.needsPaint.Swap(false)

	if r.painter == nil {
		painter, err := r.decoration.CreateBoxPainter(r.MarkNeedsPaint)
		if err != nil {
			r.needsPaint.Store(true)
			return errors.Wrap("layout.RenderDecoratedBox.Paint", errors.KindRender, err)
		}
		r.painter = painter
	}

	cfg := decoration.ImageConfiguration{Size: r.size, TextDirection: r.textDirection}
	if !r.decoration.IsComplex() {
		r.layer = nil
		r.painter.Paint(ctx.Canvas, offset, cfg)
		return nil
	}

	if r.layer == nil || dirty {
		recorder := &graphics.PictureRecorder{}
		canvas := recorder.BeginRecording(r.size)
		r.painter.Paint(canvas, graphics.Offset{}, cfg)
		r.layer = recorder.EndRecording()
	}
	ctx.PaintLayer(r.layer, offset)
	return nil
}

// Layer returns the cached display list of a complex decoration, or nil.
func (r *RenderDecoratedBox) Layer() *graphics.DisplayList {
	return r.layer
}

// HitTest adds the box to result when position lies inside the
// decoration's outline.
func (r *RenderDecoratedBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	if r.decoration == nil || !WithinBounds(position, r.size) {
		return false
	}
	if !r.decoration.HitTest(r.size, position, r.textDirection) {
		return false
	}
	if result != nil {
		result.Add(r)
	}
	return true
}

// Dispose releases the painter. Calls after the first are no-ops.
func (r *RenderDecoratedBox) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	r.disposePainter()
	r.owner.Store(nil)
}

func (r *RenderDecoratedBox) disposePainter() {
	if r.painter != nil {
		r.painter.Dispose()
		r.painter = nil
	}
	r.layer = nil
}
