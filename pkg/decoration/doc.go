// Package decoration paints shape-filled backgrounds.
//
// A [ShapeDecoration] is an immutable description of what to paint inside a
// [borders.ShapeBorder]: drop shadows, a solid color or gradient, an
// optional image clipped to the border's inner outline, and the border
// stroke itself, always in that order.
//
// Hosts obtain a [BoxPainter] with CreateBoxPainter and call Paint once per
// frame. The painter caches outlines and paints for the last rect and text
// direction it saw, so repeated paints with unchanged geometry only issue
// draw calls.
//
//	deco := decoration.MustShapeDecoration(decoration.ShapeDecorationConfig{
//	    Color: graphics.RGB(0x33, 0x66, 0x99),
//	    Shape: borders.RoundedRectangleBorder{BorderRadius: borders.BorderRadiusCircular(12)},
//	})
//	painter, err := deco.CreateBoxPainter(markNeedsPaint)
//	...
//	painter.Paint(canvas, offset, decoration.ImageConfiguration{Size: size})
package decoration
