package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shapefill/pkg/borders"
	"github.com/go-drift/shapefill/pkg/decoration"
	"github.com/go-drift/shapefill/pkg/graphics"
	shapetest "github.com/go-drift/shapefill/pkg/testing"
)

func TestPaintChild_TranslatesToOffset(t *testing.T) {
	box := NewRenderDecoratedBox(
		decoration.MustShapeDecoration(decoration.ShapeDecorationConfig{Color: red, Shape: borders.RoundedRectangleBorder{}}),
		graphics.TextDirectionLTR,
	)
	box.SetSize(graphics.Size{Width: 10, Height: 10})
	canvas := shapetest.NewRecordingCanvas(size)
	ctx := &PaintContext{Canvas: canvas}

	require.NoError(t, ctx.PaintChild(box, graphics.Offset{X: 15, Y: 5}))
	assert.Equal(t, []string{"save", "translate", "drawPath", "restore"}, canvas.OpNames())
	assert.Equal(t, 15.0, canvas.Ops()[1].Params["dx"])

	assert.NoError(t, ctx.PaintChild(nil, graphics.Offset{}))
}

func TestPaintLayer_NilIsNoop(t *testing.T) {
	canvas := shapetest.NewRecordingCanvas(size)
	(&PaintContext{Canvas: canvas}).PaintLayer(nil, graphics.Offset{})
	assert.Empty(t, canvas.Ops())
}

func TestPipelineOwner_DeduplicatesSchedule(t *testing.T) {
	owner := NewPipelineOwner()
	a := NewRenderDecoratedBox(nil, graphics.TextDirectionLTR)
	b := NewRenderDecoratedBox(nil, graphics.TextDirectionLTR)

	owner.SchedulePaint(a)
	owner.SchedulePaint(b)
	owner.SchedulePaint(a)
	assert.True(t, owner.NeedsPaint())

	assert.Equal(t, []RenderObject{a, b}, owner.FlushPaint())
	assert.False(t, owner.NeedsPaint())
}

func TestPipelineOwner_FlushConsumesSignal(t *testing.T) {
	owner := NewPipelineOwner()
	a := NewRenderDecoratedBox(nil, graphics.TextDirectionLTR)
	a.SetSize(size)
	owner.SchedulePaint(a)

	owner.FlushPaint()
	select {
	case <-owner.PaintRequested():
		t.Fatal("flushed request still signalled")
	default:
	}

	owner.SchedulePaint(a)
	select {
	case <-owner.PaintRequested():
	default:
		t.Fatal("request after flush was not signalled")
	}
	assert.True(t, owner.NeedsPaint())
}

func TestPipelineOwner_FlushSkipsCleanObjects(t *testing.T) {
	owner := NewPipelineOwner()
	box := NewRenderDecoratedBox(
		decoration.MustShapeDecoration(decoration.ShapeDecorationConfig{Color: red, Shape: borders.CircleBorder{}}),
		graphics.TextDirectionLTR,
	)
	box.Attach(owner)
	require.NoError(t, box.Paint(&PaintContext{Canvas: shapetest.NewRecordingCanvas(size)}, graphics.Offset{}))

	assert.Empty(t, owner.FlushPaint())
}
