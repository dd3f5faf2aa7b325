// Package testing provides canvas doubles and golden snapshots for paint
// tests.
//
// # Recording
//
// RecordingCanvas implements graphics.Canvas and keeps every call:
//
//	canvas := shapetest.NewRecordingCanvas(graphics.Size{Width: 100, Height: 50})
//	painter.Paint(canvas, offset, cfg)
//	if got := canvas.OpNames(); !slices.Equal(got, want) {
//	    t.Errorf("ops = %v, want %v", got, want)
//	}
//
// # Snapshot Testing
//
// Capture a paint pass and compare it to a golden file:
//
//	snap := shapetest.CaptureSnapshot(size, func(c graphics.Canvas) {
//	    painter.Paint(c, graphics.Offset{}, cfg)
//	})
//	snap.MatchesFile(t, "testdata/rounded.snapshot.json")
//
// Update snapshots with:
//
//	SHAPEFILL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import shapetest "github.com/go-drift/shapefill/pkg/testing"
package testing
