package decoration

import "github.com/go-drift/shapefill/pkg/graphics"

// paintState holds the geometry derived from one (rect, text direction)
// pair. The zero value is the uninitialized state.
type paintState struct {
	valid         bool
	rect          graphics.Rect
	textDirection graphics.TextDirection
	outerPath     *graphics.Path
	innerPath     *graphics.Path
	shadowPaths   []*graphics.Path
}

// matches reports whether the state was built for rect and dir.
func (s *paintState) matches(rect graphics.Rect, dir graphics.TextDirection) bool {
	return s.valid && s.rect == rect && s.textDirection == dir
}

// shapeDecorationPainter paints a ShapeDecoration, caching geometry for
// the last rect and direction it was asked to paint.
type shapeDecorationPainter struct {
	boxPainterBase
	decoration *ShapeDecoration

	state paintState

	// Built once per painter lifetime.
	interiorPaint *graphics.Paint
	shadowPaints  []graphics.Paint
	imagePainter  *DecorationImagePainter

	disposed bool
}

func newShapeDecorationPainter(d *ShapeDecoration, onChanged func()) *shapeDecorationPainter {
	return &shapeDecorationPainter{
		boxPainterBase: boxPainterBase{onChanged: onChanged},
		decoration:     d,
	}
}

// refresh moves the painter to the cached state for rect and dir. It does
// nothing when the state already matches.
//
// The interior paint and the shadow paints do not depend on the rect and
// are built on first use. A gradient shader, the outer and inner paths and
// the shadow paths are rebuilt on every transition.
func (p *shapeDecorationPainter) refresh(rect graphics.Rect, dir graphics.TextDirection) {
	if p.state.matches(rect, dir) {
		return
	}
	d := p.decoration
	next := paintState{valid: true, rect: rect, textDirection: dir}

	if d.color != graphics.ColorTransparent || d.gradient != nil {
		if p.interiorPaint == nil {
			paint := graphics.DefaultPaint()
			if d.color != graphics.ColorTransparent {
				paint.Color = d.color
			}
			p.interiorPaint = &paint
		}
		if d.gradient != nil {
			p.interiorPaint.Shader = d.gradient.CreateShader(rect)
		}
	}

	if len(d.shadows) > 0 {
		if p.shadowPaints == nil {
			p.shadowPaints = make([]graphics.Paint, len(d.shadows))
			for i, s := range d.shadows {
				p.shadowPaints[i] = s.ToPaint()
			}
		}
		next.shadowPaths = make([]*graphics.Path, len(d.shadows))
		for i, s := range d.shadows {
			next.shadowPaths[i] = d.shape.OuterPath(rect.Shift(s.Offset).Inflate(s.Spread), dir)
		}
	}

	if p.interiorPaint != nil || len(d.shadows) > 0 {
		next.outerPath = d.shape.OuterPath(rect, dir)
	}
	if d.image != nil {
		next.innerPath = d.shape.InnerPath(rect, dir)
	}

	p.state = next
}

// Paint implements BoxPainter. A disposed painter draws nothing.
func (p *shapeDecorationPainter) Paint(canvas graphics.Canvas, offset graphics.Offset, cfg ImageConfiguration) {
	if p.disposed {
		return
	}
	rect := graphics.RectFromOffsetSize(offset, cfg.Size)
	dir := cfg.TextDirection
	p.refresh(rect, dir)
	p.paintShadows(canvas)
	p.paintInterior(canvas)
	p.paintImage(canvas, cfg)
	p.decoration.shape.Paint(canvas, rect, dir)
}

func (p *shapeDecorationPainter) paintShadows(canvas graphics.Canvas) {
	for i, path := range p.state.shadowPaths {
		canvas.DrawPath(path, p.shadowPaints[i])
	}
}

func (p *shapeDecorationPainter) paintInterior(canvas graphics.Canvas) {
	if p.interiorPaint != nil {
		canvas.DrawPath(p.state.outerPath, *p.interiorPaint)
	}
}

func (p *shapeDecorationPainter) paintImage(canvas graphics.Canvas, cfg ImageConfiguration) {
	img := p.decoration.image
	if img == nil {
		return
	}
	if p.imagePainter == nil {
		p.imagePainter = img.CreatePainter(p.onChanged)
	}
	p.imagePainter.Paint(canvas, p.state.rect, p.state.innerPath, cfg)
}

// Dispose implements BoxPainter. Calls after the first are no-ops.
func (p *shapeDecorationPainter) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	if p.imagePainter != nil {
		p.imagePainter.Dispose()
		p.imagePainter = nil
	}
	p.boxPainterBase.dispose()
}
