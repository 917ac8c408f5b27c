// Package logger provides leveled logging for the fbimport CLI.
//
// Debug, Info and Section lines are written only when verbose mode is on
// (the --verbose flag). Warnings and errors are always written. Output
// goes to stderr so plan output on stdout stays clean.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity of a log line.
type Level int

// Log levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelPrefixes = map[Level]string{
	LevelDebug: "[DEBUG] ",
	LevelInfo:  "[INFO] ",
	LevelWarn:  "[WARN] ",
	LevelError: "[ERROR] ",
}

// String returns the bracketed prefix without trailing space.
func (l Level) String() string {
	p, ok := levelPrefixes[l]
	if !ok {
		return fmt.Sprintf("[LEVEL %d]", int(l))
	}
	return p[:len(p)-1]
}

type state struct {
	mu      sync.Mutex
	verbose bool
	out     io.Writer
}

var std = &state{out: os.Stderr}

// SetVerbose turns verbose output on or off.
func SetVerbose(v bool) {
	std.mu.Lock()
	std.verbose = v
	std.mu.Unlock()
}

// IsVerbose reports whether verbose output is on.
func IsVerbose() bool {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.verbose
}

// SetOutput redirects all log output. Tests pass a buffer.
func SetOutput(w io.Writer) {
	std.mu.Lock()
	std.out = w
	std.mu.Unlock()
}

// enabled reports whether lines at level l are written. Caller holds mu.
func (s *state) enabled(l Level) bool {
	return l >= LevelWarn || s.verbose
}

func (s *state) logf(l Level, format string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled(l) {
		return
	}
	fmt.Fprintf(s.out, levelPrefixes[l]+format+"\n", args...)
}

// Debug writes a verbose-only diagnostic line.
func Debug(format string, args ...any) { std.logf(LevelDebug, format, args) }

// Info writes a verbose-only progress line.
func Info(format string, args ...any) { std.logf(LevelInfo, format, args) }

// Warn writes a warning line.
func Warn(format string, args ...any) { std.logf(LevelWarn, format, args) }

// Error writes an error line.
func Error(format string, args ...any) { std.logf(LevelError, format, args) }

// Section writes a "=== name ===" header in verbose mode.
func Section(name string) {
	std.mu.Lock()
	defer std.mu.Unlock()
	if !std.verbose {
		return
	}
	fmt.Fprintf(std.out, "\n=== %s ===\n", name)
}
