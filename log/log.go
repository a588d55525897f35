// Package log is a small leveled logger. Records are formatted printf style
// and written through a tint slog handler. Nothing is written until an output
// is set, since a full screen application owns the terminal.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace

	// skips runtime.Callers, output and the exported level function
	calldepth = 3

	timeFormat = "15:04:05.000"
)

// slogTrace is below slog.LevelDebug, which has no trace level
const slogTrace = slog.LevelDebug - 4

var (
	level  = LevelError
	logger = slog.New(newHandler(io.Discard, false))
)

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level = l
}

// Level returns the current level
func Level() int {
	return level
}

// ParseLevel converts a level name ("error", "warn", "info", "debug",
// "trace") to a level
func ParseLevel(s string) (int, error) {
	switch s {
	case "error", "":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelError, fmt.Errorf("unknown log level %q", s)
}

// SetOutput sends logs to w. Colors are enabled when w is a terminal
func SetOutput(w io.Writer) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	logger = slog.New(newHandler(w, color))
}

// Logger returns the slog.Logger records are written to
func Logger() *slog.Logger {
	return logger
}

func newHandler(w io.Writer, color bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      slogTrace,
		TimeFormat: timeFormat,
		NoColor:    !color,
	})
}

func fmtMessage(message string, args ...any) string {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return message
}

func output(l slog.Level, format string, args ...any) {
	ctx := context.Background()
	h := logger.Handler()
	if !h.Enabled(ctx, l) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(calldepth, pcs[:])
	r := slog.NewRecord(time.Now(), l, fmtMessage(format, args...), pcs[0])
	_ = h.Handle(ctx, r)
}

func Trace(format string, args ...any) {
	if level < LevelTrace {
		return
	}
	output(slogTrace, format, args...)
}

func Debug(format string, args ...any) {
	if level < LevelDebug {
		return
	}
	output(slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	if level < LevelInfo {
		return
	}
	output(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	if level < LevelWarn {
		return
	}
	output(slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	if level < LevelError {
		return
	}
	output(slog.LevelError, format, args...)
}
