// Package errors provides structured error handling for shapefill.
//
// Invalid descriptor configurations are returned as *Error values wrapping
// ErrInvalidArgument. Failures that happen away from the caller, such as
// an image that fails to decode on a background goroutine, are sent to
// the global handler with Report.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrInvalidArgument marks a descriptor or factory call that violates a
// construction-time invariant.
var ErrInvalidArgument = stderrors.New("invalid argument")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a rejected configuration.
	KindInvalidArgument
	// KindImage indicates an image load or decode failure.
	KindImage
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration file error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid-argument"
	case KindImage:
		return "image"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error.
type Error struct {
	// Op is the operation that failed (e.g., "decoration.NewShapeDecoration").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidArgument returns an *Error of KindInvalidArgument whose chain
// includes ErrInvalidArgument.
func InvalidArgument(op, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      KindInvalidArgument,
		Err:       fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
		Timestamp: time.Now(),
	}
}

// Wrap returns err as an *Error of the given kind. It returns nil when err
// is nil.
func Wrap(op string, kind ErrorKind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown.
func KindOf(err error) ErrorKind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "decoration.FileImage.load").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
