package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/shapefill/pkg/graphics"
)

type fakeT struct {
	name   string
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, fmt.Sprintf(format, args...))
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func paintSample(c graphics.Canvas) {
	c.Save()
	c.ClipRect(graphics.RectFromLTWH(0, 0, 50, 50))
	c.DrawRect(graphics.RectFromLTWH(0, 0, 50, 50), graphics.Paint{Color: graphics.RGB(255, 0, 0)})
	c.Restore()
}

func TestCaptureSnapshot_RecordsOps(t *testing.T) {
	snap := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintSample)

	var names []string
	for _, op := range snap.DisplayOps {
		names = append(names, op.Op)
	}
	want := []string{"save", "clipRect", "drawRect", "restore"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ops = %v, want %v", names, want)
	}
	if snap.Size != [2]float64{50, 50} {
		t.Errorf("size = %v", snap.Size)
	}
}

func TestSnapshot_Diff_Equal(t *testing.T) {
	a := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintSample)
	b := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintSample)

	if diff := a.Diff(b); diff != "" {
		t.Errorf("expected no diff for identical snapshots, got:\n%s", diff)
	}
}

func TestSnapshot_Diff_Different(t *testing.T) {
	a := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintSample)
	b := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, func(c graphics.Canvas) {})

	if diff := a.Diff(b); diff == "" {
		t.Error("expected diff for different snapshots")
	}
}

func TestSnapshot_MatchesFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.snapshot.json")
	snap := CaptureSnapshot(graphics.Size{Width: 50, Height: 50}, paintSample)
	if err := snap.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	ft := &fakeT{name: "TestSample"}
	snap.MatchesFile(ft, path)
	if len(ft.fatals) != 0 || len(ft.errors) != 0 {
		t.Errorf("unexpected failures: %v %v", ft.fatals, ft.errors)
	}
}

func TestSnapshot_MatchesFile_Missing(t *testing.T) {
	t.Setenv(updateEnv, "")
	ft := &fakeT{name: "TestMissing"}
	snap := CaptureSnapshot(graphics.Size{Width: 10, Height: 10}, paintSample)
	snap.MatchesFile(ft, filepath.Join(t.TempDir(), "missing.json"))

	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "snapshot file missing") {
		t.Errorf("fatals = %v", ft.fatals)
	}
}

func TestSnapshot_MatchesFile_Update(t *testing.T) {
	t.Setenv(updateEnv, "1")
	path := filepath.Join(t.TempDir(), "updated.json")
	ft := &fakeT{name: "TestUpdate"}
	CaptureSnapshot(graphics.Size{Width: 10, Height: 10}, paintSample).MatchesFile(ft, path)

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected snapshot to be written: %v", err)
	}
}

func TestFormatOp(t *testing.T) {
	op := DisplayOp{Op: "translate", Params: sortedMap("dy", 2.0, "dx", 1.0)}
	if got := FormatOp(op); got != "translate(dx=1, dy=2)" {
		t.Errorf("FormatOp = %q", got)
	}
	if got := FormatOp(DisplayOp{Op: "save"}); got != "save" {
		t.Errorf("FormatOp = %q", got)
	}
}

func TestRecordingCanvas_DrawPath(t *testing.T) {
	c := NewRecordingCanvas(graphics.Size{Width: 10, Height: 10})
	p := graphics.NewPathWithFillRule(graphics.FillRuleEvenOdd)
	p.AddRect(graphics.RectFromLTWH(1, 2, 3, 4))
	c.DrawPath(p, graphics.DefaultPaint())

	ops := c.Ops()
	if len(ops) != 1 || ops[0].Op != "drawPath" {
		t.Fatalf("ops = %v", ops)
	}
	if ops[0].Params["fillRule"] != graphics.FillRuleEvenOdd.String() {
		t.Errorf("fillRule = %v", ops[0].Params["fillRule"])
	}
	if c.Count("drawPath") != 1 {
		t.Errorf("Count = %d", c.Count("drawPath"))
	}
	c.Reset()
	if len(c.Ops()) != 0 {
		t.Error("Reset left ops behind")
	}
}
