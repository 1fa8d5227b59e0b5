/*
File    : ari/repl/repl.go

Package repl implements Ari's interactive Read-Eval-Print Loop: a
readline-backed shell that lexes, parses, and evaluates one line at a
time against a single long-lived evaluator, so `let` bindings and
function declarations persist across inputs for the rest of the
session.
*/
package repl

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"ari-lang/diag"
	"ari-lang/eval"
	"ari-lang/lexer"
	"ari-lang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive Ari session: banner/version text plus the
// prompt readline shows between inputs.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with the given banner, version, separator line, and
// prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "Ari %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type Ari statements and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or input ends. A fatal
// diagnostic raised while evaluating one line is caught and reported
// without killing the session, unlike script mode.
func (r *Repl) Start(writer io.Writer, seed int64) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(writer, seed)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt
			yellowColor.Fprintln(writer, "Bye friend")
			return
		}

		if line == "" {
			continue
		}
		if line == ".exit" {
			yellowColor.Fprintln(writer, "Bye friend")
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, evaluator, line)
	}
}

// evalLine lexes, parses, and runs one line of input, recovering from
// the fatal-diagnostic panic that diag.Exit raises while it is swapped
// below for the duration of the line, so the session survives a bad line.
func (r *Repl) evalLine(writer io.Writer, evaluator *eval.Evaluator, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if _, ok := recovered.(replExit); !ok {
				panic(recovered)
			}
		}
	}()

	original := diag.Exit
	diag.Exit = func(code int) { panic(replExit{code: code}) }
	defer func() { diag.Exit = original }()

	stmts := parser.New(lexer.New(line).ScanTokens()).Parse()
	evaluator.Run(stmts)
}

// replExit is the sentinel diag.Exit panics with inside the REPL, so
// evalLine's recover can distinguish "a fatal diagnostic fired" (the
// expected, recoverable case) from a genuine programming-error panic,
// which it re-raises.
type replExit struct{ code int }
