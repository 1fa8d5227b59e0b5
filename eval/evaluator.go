/*
File    : ari/eval/evaluator.go

Package eval implements the tree-walking evaluator: the methods that
reduce parsed statements and expressions to Values against the current
environment stack. It owns the EnvManager and calls back into itself for
every sub-expression, nested statement, and function body, exactly as the
evaluator the language was modeled on does.
*/
package eval

import (
	"bufio"
	"io"
	"math/rand"
	"os"

	"ari-lang/ast"
	"ari-lang/builtin"
	"ari-lang/diag"
	"ari-lang/environ"
	"ari-lang/lexer"
)

// Exit is the process-exit hook used by a clean `bai` (exit code 0).
// Fatal diagnostics exit through diag.Exit instead, at code 1. Tests
// override both to capture "would have exited" instead of killing the
// test binary.
var Exit = os.Exit

// Evaluator holds all process-wide mutable interpreter state: the
// environment stack, the writer print/println/bai send output to, and the
// random source native functions draw from. Per §5 it is single-threaded
// and synchronous at the language-surface level; the only concurrency it
// introduces internally is the bounded worker pool behind elementwise
// array arithmetic (eval_operators.go), which is required to be
// observationally indistinguishable from a sequential pass.
type Evaluator struct {
	env *environ.Manager
	out *bufio.Writer
	rng *rand.Rand
}

// New builds an Evaluator with a fresh environment stack seeded with the
// native builtin registry, writing program output to out.
func New(out io.Writer, seed int64) *Evaluator {
	e := &Evaluator{
		env: environ.NewManager(),
		out: bufio.NewWriter(out),
		rng: rand.New(rand.NewSource(seed)),
	}
	globals := builtin.Register(e, e.rng)
	for name, v := range globals {
		e.env.Define(name, v)
	}
	return e
}

// Run evaluates a parsed program's top-level statements in the global
// frame. It returns normally on straight-line completion; `bai` and fatal
// diagnostics terminate the process directly (via Exit / diag.Exit)
// rather than unwinding back here, matching §6's "the process exits on
// every path" contract.
func (e *Evaluator) Run(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		e.execStmt(stmt)
	}
	e.out.Flush()
}

func (e *Evaluator) fatal(loc diag.Location, format string, args ...interface{}) {
	e.out.Flush()
	diag.Fatalf(loc, format, args...)
}

func (e *Evaluator) fatalAt(tok lexer.Token, format string, args ...interface{}) {
	e.fatal(diag.Location{Line: tok.Line, Column: tok.Column, LineSrc: tok.LineSrc}, format, args...)
}
