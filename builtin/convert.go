package builtin

import (
	"strconv"
	"strings"

	"ari-lang/ast"
	"ari-lang/lexer"
)

func toStringFn(call lexer.Token, args []ast.Value) ast.Value {
	expectNumber(call, args[0], "to_string")
	return ast.String(args[0].String())
}

func toNumberFn(call lexer.Token, args []ast.Value) ast.Value {
	s := expectString(call, args[0], "to_number")
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		fatal(call, "to_number: cannot parse %q as a number", s)
	}
	return ast.Number(n)
}
