package builtin

import (
	"strings"

	"ari-lang/ast"
	"ari-lang/lexer"
)

func splitFn(call lexer.Token, args []ast.Value) ast.Value {
	src := expectString(call, args[0], "split")
	delim := expectString(call, args[1], "split")
	parts := strings.Split(src, delim)
	items := make([]ast.Value, len(parts))
	for i, p := range parts {
		items[i] = ast.String(p)
	}
	return ast.Array(items)
}

func toLowercaseFn(call lexer.Token, args []ast.Value) ast.Value {
	return ast.String(strings.ToLower(expectString(call, args[0], "to_lowercase")))
}

func toUppercaseFn(call lexer.Token, args []ast.Value) ast.Value {
	return ast.String(strings.ToUpper(expectString(call, args[0], "to_uppercase")))
}
