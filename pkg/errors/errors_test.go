package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "decoration.NewShapeDecoration",
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("shape is required"),
	}
	want := "decoration.NewShapeDecoration [invalid-argument]: shape is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("test.op", "color and gradient are both set (%d)", 2)

	if !Is(err, ErrInvalidArgument) {
		t.Error("expected chain to contain ErrInvalidArgument")
	}
	if err.Kind != KindInvalidArgument {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidArgument)
	}
	if !strings.Contains(err.Error(), "color and gradient are both set (2)") {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestWrapAndKindOf(t *testing.T) {
	if Wrap("op", KindImage, nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
	base := fmt.Errorf("unexpected EOF")
	err := fmt.Errorf("loading: %w", Wrap("decoration.FileImage", KindImage, base))

	if got := KindOf(err); got != KindImage {
		t.Errorf("KindOf = %v, want %v", got, KindImage)
	}
	if !Is(err, base) {
		t.Error("expected chain to contain the wrapped error")
	}
	var e *Error
	if !As(err, &e) || e.Op != "decoration.FileImage" {
		t.Errorf("As = %v", e)
	}
	if KindOf(base) != KindUnknown {
		t.Error("plain errors should be KindUnknown")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidArgument, "invalid-argument"},
		{KindImage, "image"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "decoration.FileImage.load",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in decoration.FileImage.load: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var capturedErr *Error
	handler := &testHandler{
		onError: func(err *Error) {
			capturedErr = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{
		Op:   "test.op",
		Kind: KindImage,
		Err:  fmt.Errorf("decode failed"),
	})

	if capturedErr == nil {
		t.Fatal("expected error to be captured")
	}
	if capturedErr.Op != "test.op" {
		t.Errorf("Op = %q, want %q", capturedErr.Op, "test.op")
	}
	if capturedErr.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(*Error) { called = true }})
	defer SetHandler(oldHandler)

	Report(nil)
	ReportPanic(nil)
	if called {
		t.Error("nil errors should not reach the handler")
	}
}

func TestRecoverWithCallback_NilCallback(t *testing.T) {
	var capturedPanic *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			capturedPanic = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer RecoverWithCallback("test.recover", nil)
		panic("intentional test panic")
	}()

	if capturedPanic == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if capturedPanic.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", capturedPanic.Value, "intentional test panic")
	}
	if capturedPanic.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", capturedPanic.Op, "test.recover")
	}
}

func TestRecoverWithCallback(t *testing.T) {
	oldHandler := DefaultHandler
	SetHandler(&testHandler{})
	defer SetHandler(oldHandler)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	if got != 42 {
		t.Errorf("callback value = %v, want 42", got)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler_WritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(zerolog.New(&buf))
	h.Verbose = true

	h.HandleError(&Error{Op: "test.op", Kind: KindImage, Err: fmt.Errorf("boom"), StackTrace: "frame"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	for key, want := range map[string]any{
		"level": "error",
		"op":    "test.op",
		"kind":  "image",
		"error": "boom",
		"stack": "frame",
	} {
		if entry[key] != want {
			t.Errorf("%s = %v, want %v", key, entry[key], want)
		}
	}
}

func TestLogHandler_Panic(t *testing.T) {
	var buf bytes.Buffer
	NewLogHandler(zerolog.New(&buf)).HandlePanic(&PanicError{Op: "x", Value: "bad"})

	if !strings.Contains(buf.String(), `"value":"bad"`) {
		t.Errorf("record = %s", buf.String())
	}
}

func TestLogHandler_ZeroLoggerDiscards(t *testing.T) {
	var h LogHandler
	h.HandleError(&Error{Op: "test.op"})
	h.HandlePanic(&PanicError{Value: 1})
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
