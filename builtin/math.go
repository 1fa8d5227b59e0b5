package builtin

import (
	"math"

	"ari-lang/ast"
	"ari-lang/lexer"
)

func powerFn(call lexer.Token, args []ast.Value) ast.Value {
	base := expectNumber(call, args[0], "power")
	exp := expectNumber(call, args[1], "power")
	return ast.Number(math.Pow(base, exp))
}

// logFn computes log base `base` of `value`; both must be strictly
// positive, per §4.8.
func logFn(call lexer.Token, args []ast.Value) ast.Value {
	base := expectNumber(call, args[0], "log")
	value := expectNumber(call, args[1], "log")
	if base <= 0 {
		fatal(call, "log: base must be positive, got %v", base)
	}
	if value <= 0 {
		fatal(call, "log: value must be positive, got %v", value)
	}
	return ast.Number(math.Log(value) / math.Log(base))
}

func moduloFn(call lexer.Token, args []ast.Value) ast.Value {
	a := expectInt(call, args[0], "modulo")
	b := expectInt(call, args[1], "modulo")
	if b == 0 {
		fatal(call, "modulo: division by zero")
	}
	return ast.Number(float64(a % b))
}

func absoluteFn(call lexer.Token, args []ast.Value) ast.Value {
	return ast.Number(math.Abs(expectNumber(call, args[0], "absolute")))
}

func floorFn(call lexer.Token, args []ast.Value) ast.Value {
	return ast.Number(math.Floor(expectNumber(call, args[0], "floor")))
}

func ceilingFn(call lexer.Token, args []ast.Value) ast.Value {
	return ast.Number(math.Ceil(expectNumber(call, args[0], "ceiling")))
}

func maxFn(call lexer.Token, args []ast.Value) ast.Value {
	a := expectNumber(call, args[0], "max")
	b := expectNumber(call, args[1], "max")
	return ast.Number(math.Max(a, b))
}

func minFn(call lexer.Token, args []ast.Value) ast.Value {
	a := expectNumber(call, args[0], "min")
	b := expectNumber(call, args[1], "min")
	return ast.Number(math.Min(a, b))
}
