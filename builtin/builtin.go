/*
File    : ari/builtin/builtin.go

Package builtin implements Ari's native function library (§4.8): a fixed,
named set of host-provided callables registered in the global frame at
startup. The package never imports eval — map/filter/reduce need to
invoke a user-defined Ari function, so they take a Runtime, an interface
the evaluator implements, instead of a concrete *eval.Evaluator. This
mirrors the std.Runtime seam the teacher uses to keep its own std package
independent of eval.
*/
package builtin

import (
	"math/rand"

	"ari-lang/ast"
	"ari-lang/diag"
	"ari-lang/lexer"
)

// Runtime is the evaluator capability builtins need: invoking a callable
// Ari value (user-defined or itself native) with already-evaluated
// arguments.
type Runtime interface {
	Call(call lexer.Token, fn ast.Value, args []ast.Value) ast.Value
}

// entry bundles a NativeFunc with the metadata the registry needs to build
// its Function descriptor.
type entry struct {
	arity int // -1 marks variadic-by-contract natives (none currently; kept for parity with ast.Function.Arity)
	fn    ast.NativeFunc
}

// Register builds the full set of native bindings for a fresh interpreter,
// keyed by name exactly as they appear in Ari source.
func Register(rt Runtime, rng *rand.Rand) ast.Frame {
	entries := map[string]entry{
		"clock":               {0, clockFn},
		"power":               {2, powerFn},
		"log":                 {2, logFn},
		"modulo":              {2, moduloFn},
		"absolute":            {1, absoluteFn},
		"floor":               {1, floorFn},
		"ceiling":             {1, ceilingFn},
		"max":                 {2, maxFn},
		"min":                 {2, minFn},
		"to_string":           {1, toStringFn},
		"to_number":           {1, toNumberFn},
		"split":               {2, splitFn},
		"to_lowercase":        {1, toLowercaseFn},
		"to_uppercase":        {1, toUppercaseFn},
		"length":              {1, lengthFn},
		"insert":              {3, insertFn},
		"remove":              {2, removeFn},
		"map":                 {2, mapFn(rt)},
		"filter":              {2, filterFn(rt)},
		"reduce":              {3, reduceFn(rt)},
		"range":               {3, rangeFn},
		"linspace":            {3, linspaceFn},
		"repeat":              {2, repeatFn},
		"random_choose":       {2, randomChooseFn(rng)},
		"random_normal":       {3, randomNormalFn(rng)},
		"read_file":           {1, readFileFn},
		"write_file":          {2, writeFileFn},
		"serve_static_folder": {3, serveStaticFolderFn},
		"web_get":             {1, webGetFn},
		"web_post":            {2, webPostFn},
	}

	frame := make(ast.Frame, len(entries))
	for name, e := range entries {
		name, e := name, e
		frame[name] = ast.FunctionValue(&ast.Function{
			Kind:   ast.FuncNative,
			Name:   name,
			Arity:  e.arity,
			Native: e.fn,
		})
	}
	return frame
}

// --- shared argument helpers ------------------------------------------

func fatal(call lexer.Token, format string, args ...interface{}) {
	diag.Fatalf(diag.Location{Line: call.Line, Column: call.Column, LineSrc: call.LineSrc}, format, args...)
}

func expectNumber(call lexer.Token, v ast.Value, who string) float64 {
	if v.Kind != ast.KindNumber {
		fatal(call, "%s expects a number, got %s", who, v.TypeName())
	}
	return v.Num
}

func expectString(call lexer.Token, v ast.Value, who string) string {
	if v.Kind != ast.KindString {
		fatal(call, "%s expects a string, got %s", who, v.TypeName())
	}
	return v.Str
}

func expectArray(call lexer.Token, v ast.Value, who string) []ast.Value {
	if v.Kind != ast.KindArray {
		fatal(call, "%s expects an array, got %s", who, v.TypeName())
	}
	return v.Arr
}

func expectFunction(call lexer.Token, v ast.Value, who string) ast.Value {
	if v.Kind != ast.KindFunction {
		fatal(call, "%s expects a function, got %s", who, v.TypeName())
	}
	return v
}

func expectInt(call lexer.Token, v ast.Value, who string) int {
	n := expectNumber(call, v, who)
	if n != float64(int(n)) {
		fatal(call, "%s expects an integer-valued number, got %v", who, n)
	}
	return int(n)
}
