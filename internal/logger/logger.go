/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the process-wide logger that diagnostics are
// written to. It can be silenced when svginline is embedded as a library.
package logger

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

var (
	// mu guards output and level. Loggers are swapped whole in current.
	mu sync.Mutex

	// Default logs to stderr. Set to io.Discard for silent mode.
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel

	current atomic.Pointer[zerolog.Logger]
)

func init() {
	l := newLogger(output, level)
	current.Store(&l)
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	if w == io.Discard {
		return zerolog.Nop()
	}
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	// Extractions run on worker goroutines and share this sink.
	return zerolog.New(zerolog.SyncWriter(console)).Level(lvl)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging. It is safe to call while other
// goroutines are logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	l := newLogger(output, level)
	current.Store(&l)
}

// SetLevel sets the minimum level that is written.
func SetLevel(lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	l := newLogger(output, level)
	current.Store(&l)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	current.Load().Warn().Msgf(format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	current.Load().Info().Msgf(format, args...)
}

// Debug logs a debug message.
func Debug(format string, args ...any) {
	current.Load().Debug().Msgf(format, args...)
}
