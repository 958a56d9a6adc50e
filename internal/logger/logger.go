// Package logger writes the htmltext CLI's diagnostics to stderr.
//
// Debug and Info lines, and Section headers, are only written in verbose
// mode. Warn and Error lines are always written. Messages about one input
// go through a Scope so that every line names the file it concerns:
//
//	log := logger.For("page.html")
//	log.Warn("%s", w) // [WARN] page.html: 12: Missing semicolon ...
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the tag written before a line of this level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "LOG"
	}
}

// quiet reports whether the level is hidden outside of verbose mode.
func (l Level) quiet() bool {
	return l < LevelWarn
}

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput redirects log output, which defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// write emits one line. The lock is held for the write so that lines from
// concurrent workers never interleave.
func write(level Level, scope, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if level.quiet() && !verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if scope != "" {
		fmt.Fprintf(output, "[%s] %s: %s\n", level, scope, msg)
		return
	}
	fmt.Fprintf(output, "[%s] %s\n", level, msg)
}

func Debug(format string, args ...any) { write(LevelDebug, "", format, args...) }
func Info(format string, args ...any)  { write(LevelInfo, "", format, args...) }
func Warn(format string, args ...any)  { write(LevelWarn, "", format, args...) }
func Error(format string, args ...any) { write(LevelError, "", format, args...) }

// Section prints a section header in verbose mode.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Scope logs on behalf of one named input.
type Scope struct {
	name string
}

// For returns a Scope whose lines are prefixed with name.
func For(name string) Scope {
	return Scope{name: name}
}

// Name returns the input name of the scope.
func (s Scope) Name() string { return s.name }

func (s Scope) Debug(format string, args ...any) { write(LevelDebug, s.name, format, args...) }
func (s Scope) Info(format string, args ...any)  { write(LevelInfo, s.name, format, args...) }
func (s Scope) Warn(format string, args ...any)  { write(LevelWarn, s.name, format, args...) }
func (s Scope) Error(format string, args ...any) { write(LevelError, s.name, format, args...) }
