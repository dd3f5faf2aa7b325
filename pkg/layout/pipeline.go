package layout

import "sync"

// PipelineOwner collects render objects that asked to be repainted.
//
// Repaint requests may come from any goroutine (an image finishing its
// decode, for instance). Flushing happens on the goroutine that paints.
type PipelineOwner struct {
	mu         sync.Mutex
	dirtyPaint []RenderObject
	dirtySet   map[RenderObject]struct{}
	notify     chan struct{}
}

// NewPipelineOwner returns an owner with nothing scheduled.
func NewPipelineOwner() *PipelineOwner {
	return &PipelineOwner{notify: make(chan struct{}, 1)}
}

// SchedulePaint marks a render object as needing paint. Scheduling an
// object twice before a flush records it once.
func (p *PipelineOwner) SchedulePaint(object RenderObject) {
	p.mu.Lock()
	if p.dirtySet == nil {
		p.dirtySet = make(map[RenderObject]struct{})
	}
	if _, exists := p.dirtySet[object]; exists {
		p.mu.Unlock()
		return
	}
	p.dirtySet[object] = struct{}{}
	p.dirtyPaint = append(p.dirtyPaint, object)
	select {
	case p.notify <- struct{}{}:
	default:
	}
	p.mu.Unlock()
}

// NeedsPaint reports if any render objects need paint.
func (p *PipelineOwner) NeedsPaint() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.dirtyPaint) > 0
}

// PaintRequested receives a value after SchedulePaint adds a new object.
// Several requests between receives collapse into one.
func (p *PipelineOwner) PaintRequested() <-chan struct{} {
	return p.notify
}

// FlushPaint returns the scheduled objects that still need paint, in the
// order they were scheduled, and clears the schedule. A pending
// PaintRequested signal is consumed with it; a request scheduled after the
// flush signals again.
func (p *PipelineOwner) FlushPaint() []RenderObject {
	p.mu.Lock()
	select {
	case <-p.notify:
	default:
	}
	dirty := p.dirtyPaint
	p.dirtyPaint = nil
	p.dirtySet = nil
	p.mu.Unlock()

	result := make([]RenderObject, 0, len(dirty))
	for _, node := range dirty {
		if node.NeedsPaint() {
			result = append(result, node)
		}
	}
	return result
}
