package logging

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	// Logger is the global structured logger
	Logger *slog.Logger

	// Verbose reports whether debug records are written
	Verbose bool

	// level is shared by every handler, so component loggers bound before
	// Setup still follow the verbosity chosen later.
	level = new(slog.LevelVar)

	// out is the writer behind every handler. Swapping its target moves
	// all loggers at once, including component loggers bound earlier.
	out = &sink{w: os.Stderr}
)

type sink struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *sink) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.w
	s.w = w
	return prev
}

func init() {
	// Library users of the prompt packages only see warnings until the
	// CLI calls Setup.
	level.Set(slog.LevelWarn)
	Logger = slog.New(newHandler(out, false))
}

func newHandler(w io.Writer, jsonOutput bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if jsonOutput {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// Setup installs the CLI logger. Records at info and above go to w
// (stderr when nil); verbose adds debug records.
func Setup(verbose bool, jsonOutput bool, w io.Writer) {
	Verbose = verbose
	if verbose {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}

	if w == nil {
		w = os.Stderr
	}
	out.swap(w)
	Logger = slog.New(newHandler(out, jsonOutput))
}

// Hold buffers every record until release is called, which writes them to
// the previous destination in order. A full-screen program holds the log
// while it owns the terminal.
func Hold() (release func()) {
	buf := new(bytes.Buffer)
	prev := out.swap(buf)

	var once sync.Once
	return func() {
		once.Do(func() {
			out.swap(prev)
			if buf.Len() > 0 {
				_, _ = prev.Write(buf.Bytes())
			}
		})
	}
}

func Debug(msg string, args ...any) { Logger.Debug(msg, args...) }
func Info(msg string, args ...any) { Logger.Info(msg, args...) }
func Warn(msg string, args ...any) { Logger.Warn(msg, args...) }
func Error(msg string, args ...any) { Logger.Error(msg, args...) }

// With returns a logger with additional attributes
func With(args ...any) *slog.Logger {
	return Logger.With(args...)
}

// Component returns a logger tagged with component=name. Its format is
// fixed at call time; its destination follows Setup and Hold.
func Component(name string) *slog.Logger {
	return With("component", name)
}
