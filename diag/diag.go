/*
File    : ari/diag/diag.go

Package diag implements the interpreter's diagnostic facility: every fatal
lex, parse, or evaluation error flows through here. A diagnostic renders a
red "Error:" prefix, the message, the offending line number, the recorded
source line, and a caret under the offending column, then terminates the
process — Ari has no user-level try/catch, so every error is fatal.
*/
package diag

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	sourceColor = color.New(color.FgYellow)
)

// NoColor disables the red/yellow palette, e.g. when ARI_NO_COLOR is set
// or output is not a terminal. It mirrors the package-level *color.Color
// switches the teacher keeps in main/repl.
func NoColor(disable bool) {
	color.NoColor = disable
}

// Exit is the process-exit hook used after rendering a diagnostic. Tests
// override it to capture the "would have exited" signal instead of killing
// the test binary.
var Exit = os.Exit

// Location is the minimal position information a diagnostic needs: the
// token's line, column, and the full text of that source line.
type Location struct {
	Line    int
	Column  int
	LineSrc string
}

// Fatalf renders a fatal diagnostic at loc and terminates the process with
// exit status 1. format/args follow fmt.Sprintf conventions.
func Fatalf(loc Location, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	render(os.Stderr, loc, msg)
	Exit(1)
}

// render writes the diagnostic body (without exiting), shared by Fatalf
// and Render.
func render(w *os.File, loc Location, msg string) {
	errorColor.Fprintf(w, "Error: %s at line %d\n", msg, loc.Line)
	lineNoWidth := len(fmt.Sprintf("%d", loc.Line))
	gutter := strings.Repeat(" ", lineNoWidth)
	sourceColor.Fprintf(w, "    %d | %s\n", loc.Line, loc.LineSrc)
	caretPad := loc.Column - 1
	if caretPad < 0 {
		caretPad = 0
	}
	fmt.Fprintf(w, "    %s | %s^\n", gutter, strings.Repeat(" ", caretPad))
}

// Render writes a diagnostic to w without exiting. Nothing in this
// repository calls it; the REPL instead swaps Exit and recovers.
func Render(w *os.File, loc Location, format string, args ...interface{}) {
	render(w, loc, fmt.Sprintf(format, args...))
}
