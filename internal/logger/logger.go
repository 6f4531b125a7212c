// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// application skeleton.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Loggers created with NewBuffered write through an in-memory ring buffer;
// the lifecycle coordinator calls Close during shutdown so that every
// buffered record is durably written before the process exits.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// gate filters records below the current minimum level. Keeping the
	// level on the writer instead of the zerolog.Logger struct lets
	// SetLevel run concurrently with writers without mutating shared state.
	gate *levelGate

	// sink is non-nil for buffered loggers and owns the flush on Close.
	sink io.Closer
}

// levelGate is a zerolog.LevelWriter that drops records below an
// atomically adjustable minimum level. All loggers derived from the same
// constructor (children included) share one gate, so a level change
// applies to every writer at once.
type levelGate struct {
	w   io.Writer
	min atomic.Int32
}

func newLevelGate(w io.Writer) *levelGate {
	g := &levelGate{w: w}
	g.min.Store(int32(zerolog.TraceLevel))
	return g
}

func (g *levelGate) Write(p []byte) (int, error) {
	return g.w.Write(p)
}

// WriteLevel forwards the record unless it sits below the gate's minimum.
// Level-less records always pass, matching zerolog's own semantics, except
// when the gate is disabled entirely.
func (g *levelGate) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	min := zerolog.Level(g.min.Load())
	if min == zerolog.Disabled {
		return len(p), nil
	}
	if level < min && level != zerolog.NoLevel {
		return len(p), nil
	}
	return g.w.Write(p)
}

// bufferSize is the capacity of the buffered sink's ring buffer, in records.
const bufferSize = 1000

// New constructs a production-ready *Logger for the given role label
// (e.g. "server", "worker").
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// Output is written to os.Stdout in JSON format, unbuffered.
func New(role string) *Logger {
	gate := newLevelGate(os.Stdout)
	return &Logger{Logger: configure(gate, role), gate: gate}
}

// NewBuffered constructs a *Logger whose output passes through a
// non-blocking in-memory buffer before reaching os.Stdout. Writers never
// block on a slow sink; records are drained by a background goroutine.
//
// The returned logger must be closed via Close once the application has
// finished shutting down, otherwise buffered records may be lost. Records
// that overflow the buffer are dropped and accounted for on stderr.
func NewBuffered(role string) *Logger {
	w := diode.NewWriter(os.Stdout, bufferSize, 10*time.Millisecond, func(missed int) {
		// The alerter must not log through the buffered sink itself.
		os.Stderr.WriteString("logger: dropped " + strconv.Itoa(missed) + " records\n")
	})

	gate := newLevelGate(w)
	return &Logger{Logger: configure(gate, role), gate: gate, sink: w}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Close synchronously flushes any buffered records and releases the sink.
// It is a no-op for unbuffered and nop loggers, and is safe to call even
// while other goroutines may still be issuing best-effort writes: ordering
// between those writes and the flush follows the sink's own contract.
func (l *Logger) Close() error {
	if l.sink == nil {
		return nil
	}
	return l.sink.Close()
}

// SetLevel adjusts the minimum emitted level. For gated loggers (New,
// NewBuffered) the change is a single atomic store on the shared writer
// gate, safe to call while other goroutines are logging; the config
// watcher relies on this for runtime log-level reloads. Loggers built
// around a bare zerolog.Logger fall back to an in-place swap and must not
// be re-levelled concurrently.
func (l *Logger) SetLevel(level zerolog.Level) {
	if l.gate != nil {
		l.gate.min.Store(int32(level))
		return
	}
	l.Logger = l.Logger.Level(level)
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger. The child shares the parent's level
// gate but does not own the sink: closing it never flushes the parent's
// buffer.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger(), gate: l.gate}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{Logger: *log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}

func configure(w io.Writer, role string) zerolog.Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	return zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()
}
