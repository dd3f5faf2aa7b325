package testing

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/go-drift/shapefill/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records every call as a
// DisplayOp. The zero value is ready to use with an empty size.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas returns a canvas reporting the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the operations recorded so far.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// OpNames returns just the operation names, in order.
func (c *RecordingCanvas) OpNames() []string {
	names := make([]string, len(c.ops))
	for i, op := range c.ops {
		names[i] = op.Op
	}
	return names
}

// Count returns how many times op was recorded.
func (c *RecordingCanvas) Count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

// Reset discards recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = nil
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "saveLayerAlpha",
		Params: sortedMap("bounds", serializeRect(bounds), "alpha", round2(alpha)),
	})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *RecordingCanvas) ClipRect(rect graphics.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *RecordingCanvas) ClipPath(path *graphics.Path) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clipPath",
		Params: serializePath(path),
	})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRect", Params: params})
}

func (c *RecordingCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	params := serializePaint(paint)
	params["rect"] = serializeRect(rrect.Rect)
	params["radius"] = serializeRadius(rrect)
	c.ops = append(c.ops, DisplayOp{Op: "drawRRect", Params: params})
}

func (c *RecordingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := serializePaint(paint)
	for k, v := range serializePath(path) {
		params[k] = v
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawPath", Params: params})
}

func (c *RecordingCanvas) DrawImageRect(img image.Image, srcRect, dstRect graphics.Rect, quality graphics.FilterQuality) {
	params := sortedMap("dst", serializeRect(dstRect), "quality", quality.String())
	if srcRect != (graphics.Rect{}) {
		params["src"] = serializeRect(srcRect)
	}
	if img != nil {
		b := img.Bounds()
		params["image"] = [2]int{b.Dx(), b.Dy()}
	}
	c.ops = append(c.ops, DisplayOp{Op: "drawImageRect", Params: params})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a RecordingCanvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := NewRecordingCanvas(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializePaint(p graphics.Paint) map[string]any {
	m := sortedMap("color", serializeColor(p.Color), "style", p.Style.String())
	if p.Style == graphics.PaintStyleStroke {
		m["strokeWidth"] = round2(p.StrokeWidth)
	}
	if p.Shader != nil {
		m["shader"] = p.Shader.Type.String()
	}
	if p.MaskBlurSigma > 0 {
		m["blurSigma"] = round2(p.MaskBlurSigma)
	}
	return m
}

func serializePath(p *graphics.Path) map[string]any {
	if p.IsEmpty() {
		return sortedMap("empty", true)
	}
	return sortedMap(
		"bounds", serializeRect(p.Bounds()),
		"commands", len(p.Commands),
		"fillRule", p.FillRule.String(),
	)
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeRadius(rr graphics.RRect) map[string]any {
	// If all corners are the same, use a single value
	if rr.TopLeft == rr.TopRight && rr.TopRight == rr.BottomRight && rr.BottomRight == rr.BottomLeft {
		return sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y))
	}
	return sortedMap(
		"topLeft", sortedMap("x", round2(rr.TopLeft.X), "y", round2(rr.TopLeft.Y)),
		"topRight", sortedMap("x", round2(rr.TopRight.X), "y", round2(rr.TopRight.Y)),
		"bottomRight", sortedMap("x", round2(rr.BottomRight.X), "y", round2(rr.BottomRight.Y)),
		"bottomLeft", sortedMap("x", round2(rr.BottomLeft.X), "y", round2(rr.BottomLeft.Y)),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
// JSON marshaling sorts the keys.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

// sortedKeys returns the keys of a map in sorted order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
