package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log records.
type LogHandler struct {
	// Logger receives the records. A zero Logger discards them.
	Logger zerolog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger.
func NewLogHandler(logger zerolog.Logger) *LogHandler {
	return &LogHandler{Logger: logger}
}

func defaultLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// HandleError logs an Error at error level.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	event := h.Logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Time("at", err.Timestamp)
	if err.Err != nil {
		event = event.Err(err.Err)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("shapefill error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	event := h.Logger.Error().
		Str("kind", KindPanic.String()).
		Interface("value", err.Value)
	if err.Op != "" {
		event = event.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		event = event.Str("stack", err.StackTrace)
	}
	event.Msg("shapefill panic")
}
