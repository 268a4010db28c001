// Package logger provides opt-in diagnostic logging for relsync.
// Debug, Info and Warn lines are only written when verbose mode is
// enabled via --verbose; Error lines are always written.
//
// Components log through a Named logger so a trace of one resolution
// can be followed across the resolver and the REST client:
//
//	[DEBUG] resolver: field "related" is a post relationship
//	[DEBUG] wordpress: GET https://shop.example/wp-json/wp/v2/tags?...
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
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
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// write holds the write lock so lines from concurrent callers never interleave.
func write(always bool, level, component, format string, args []any) {
	mu.Lock()
	defer mu.Unlock()
	if !always && !verbose {
		return
	}
	prefix := "[" + level + "] "
	if component != "" {
		prefix += component + ": "
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write(false, "DEBUG", "", format, args)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write(false, "INFO", "", format, args)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write(false, "WARN", "", format, args)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	write(true, "ERROR", "", format, args)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Logger writes lines tagged with a component name.
type Logger struct {
	component string
}

// Named returns a logger that tags every line with component.
func Named(component string) Logger {
	return Logger{component: component}
}

// Debug prints a message if verbose mode is enabled.
func (l Logger) Debug(format string, args ...any) {
	write(false, "DEBUG", l.component, format, args)
}

// Info prints an informational message if verbose mode is enabled.
func (l Logger) Info(format string, args ...any) {
	write(false, "INFO", l.component, format, args)
}

// Warn prints a warning message if verbose mode is enabled.
func (l Logger) Warn(format string, args ...any) {
	write(false, "WARN", l.component, format, args)
}

// Error prints an error message regardless of verbose mode.
func (l Logger) Error(format string, args ...any) {
	write(true, "ERROR", l.component, format, args)
}
