package builtin

import (
	"time"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// clockFn returns the current wall-clock time as a String, §4.8's
// "placeholder/current time" contract — Ari programs use it for rough
// timing and banter, never for anything format-sensitive.
func clockFn(_ lexer.Token, _ []ast.Value) ast.Value {
	return ast.String(time.Now().Format(time.RFC3339))
}
