// Package logger provides the process-wide log for ocrr.
// Debug, Info and Section are printed only with --verbose. Warnings are
// printed unless the log is quieted. The TUI redirects output to a file while
// it owns the terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	quiet   bool
	output  io.Writer = os.Stderr
	now               = time.Now
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

// SetQuiet suppresses all output, warnings included.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Redirect sends all output to w until the returned func restores the
// previous writer.
func Redirect(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		output = prev
	}
}

func printf(verboseOnly bool, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if quiet || (verboseOnly && !verbose) {
		return
	}
	fmt.Fprintf(output, format, args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	printf(true, "[DEBUG] "+format+"\n", args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	printf(true, "\n=== %s ===\n", name)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	printf(true, "[INFO] "+format+"\n", args...)
}

// Warn prints a warning. Skipped documents are reported this way.
func Warn(format string, args ...any) {
	printf(false, "[WARN] "+format+"\n", args...)
}

// Timed starts a timer and returns a func that logs the elapsed time at debug level.
//
//	defer logger.Timed("ocr " + path)()
func Timed(label string) func() {
	start := now()
	return func() {
		Debug("%s took %s", label, now().Sub(start).Round(time.Millisecond))
	}
}
