// Package monitoring holds the viewer's diagnostic logger. Service code logs
// through Logf so the daemon can mirror diagnostics onto the on-screen console.
package monitoring

import (
	"fmt"
	"log"
	"strings"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger or extended by Tee.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Tee keeps the current logger and additionally hands each formatted line,
// without its trailing newline, to sink. The returned function restores the
// logger that was active before the call.
//
// Like SetLogger, Tee is meant to be called during start-up before logging
// goroutines run.
func Tee(sink func(line string)) (restore func()) {
	prev := Logf
	if sink == nil {
		return func() { Logf = prev }
	}
	Logf = func(format string, v ...interface{}) {
		prev(format, v...)
		sink(strings.TrimRight(fmt.Sprintf(format, v...), "\n"))
	}
	return func() { Logf = prev }
}
