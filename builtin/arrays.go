package builtin

import (
	"ari-lang/ast"
	"ari-lang/lexer"
)

// lengthFn accepts Array or String and returns an element/byte count;
// anything else is a type error.
func lengthFn(call lexer.Token, args []ast.Value) ast.Value {
	switch args[0].Kind {
	case ast.KindArray:
		return ast.Number(float64(len(args[0].Arr)))
	case ast.KindString:
		return ast.Number(float64(len(args[0].Str)))
	default:
		fatal(call, "length expects an array or string, got %s", args[0].TypeName())
		return ast.Null()
	}
}

// insertFn inserts value at index into an Array or String, index in
// [0, length] (index==length is an append/push).
func insertFn(call lexer.Token, args []ast.Value) ast.Value {
	source, index, value := args[0], args[1], args[2]
	idx := expectInt(call, index, "insert")

	switch source.Kind {
	case ast.KindArray:
		arr := source.Arr
		if idx < 0 || idx > len(arr) {
			fatal(call, "insert: index %d out of range for array of length %d", idx, len(arr))
		}
		if len(arr) > 0 && value.Kind != arr[0].Kind {
			fatal(call, "insert: value tag %s does not match array element tag %s", value.TypeName(), arr[0].TypeName())
		}
		out := make([]ast.Value, 0, len(arr)+1)
		out = append(out, arr[:idx]...)
		out = append(out, value)
		out = append(out, arr[idx:]...)
		return ast.Array(out)
	case ast.KindString:
		str := source.Str
		if idx < 0 || idx > len(str) {
			fatal(call, "insert: index %d out of range for string of length %d", idx, len(str))
		}
		piece := expectString(call, value, "insert")
		return ast.String(str[:idx] + piece + str[idx:])
	default:
		fatal(call, "insert expects an array or string, got %s", source.TypeName())
		return ast.Null()
	}
}

// removeFn removes the element/byte at index from an Array or String.
func removeFn(call lexer.Token, args []ast.Value) ast.Value {
	source, index := args[0], args[1]
	idx := expectInt(call, index, "remove")

	switch source.Kind {
	case ast.KindArray:
		arr := source.Arr
		if idx < 0 || idx >= len(arr) {
			fatal(call, "remove: index %d out of range for array of length %d", idx, len(arr))
		}
		out := make([]ast.Value, 0, len(arr)-1)
		out = append(out, arr[:idx]...)
		out = append(out, arr[idx+1:]...)
		return ast.Array(out)
	case ast.KindString:
		str := source.Str
		if idx < 0 || idx >= len(str) {
			fatal(call, "remove: index %d out of range for string of length %d", idx, len(str))
		}
		return ast.String(str[:idx] + str[idx+1:])
	default:
		fatal(call, "remove expects an array or string, got %s", source.TypeName())
		return ast.Null()
	}
}

func mapFn(rt Runtime) ast.NativeFunc {
	return func(call lexer.Token, args []ast.Value) ast.Value {
		arr := expectArray(call, args[0], "map")
		fn := expectFunction(call, args[1], "map")
		out := make([]ast.Value, len(arr))
		for i, item := range arr {
			out[i] = rt.Call(call, fn, []ast.Value{item})
		}
		return ast.Array(out)
	}
}

func filterFn(rt Runtime) ast.NativeFunc {
	return func(call lexer.Token, args []ast.Value) ast.Value {
		arr := expectArray(call, args[0], "filter")
		fn := expectFunction(call, args[1], "filter")
		var out []ast.Value
		for _, item := range arr {
			result := rt.Call(call, fn, []ast.Value{item})
			if !result.IsTruthyTyped() {
				fatal(call, "filter: predicate must return bool or null, got %s", result.TypeName())
			}
			if result.Truthy() {
				out = append(out, item)
			}
		}
		return ast.Array(out)
	}
}

func reduceFn(rt Runtime) ast.NativeFunc {
	return func(call lexer.Token, args []ast.Value) ast.Value {
		arr := expectArray(call, args[0], "reduce")
		acc := args[1]
		fn := expectFunction(call, args[2], "reduce")
		for _, item := range arr {
			result := rt.Call(call, fn, []ast.Value{acc, item})
			if result.Kind != acc.Kind {
				fatal(call, "reduce: accumulator changed tag from %s to %s", acc.TypeName(), result.TypeName())
			}
			acc = result
		}
		return acc
	}
}

// rangeFn builds [start, start+step, ...] up to and including end when
// it lands exactly on a step boundary, in either direction depending on
// step's sign.
func rangeFn(call lexer.Token, args []ast.Value) ast.Value {
	start := expectNumber(call, args[0], "range")
	end := expectNumber(call, args[1], "range")
	step := expectNumber(call, args[2], "range")
	if step == 0 {
		fatal(call, "range: step must not be zero")
	}

	var out []ast.Value
	if step > 0 {
		for v := start; v <= end; v += step {
			out = append(out, ast.Number(v))
		}
	} else {
		for v := start; v >= end; v += step {
			out = append(out, ast.Number(v))
		}
	}
	return ast.Array(out)
}

// linspaceFn returns count evenly spaced samples from start to end
// inclusive (count==1 yields just start).
func linspaceFn(call lexer.Token, args []ast.Value) ast.Value {
	start := expectNumber(call, args[0], "linspace")
	end := expectNumber(call, args[1], "linspace")
	count := expectInt(call, args[2], "linspace")
	if count <= 0 {
		fatal(call, "linspace: count must be positive, got %d", count)
	}

	out := make([]ast.Value, count)
	if count == 1 {
		out[0] = ast.Number(start)
		return ast.Array(out)
	}
	step := (end - start) / float64(count-1)
	for i := 0; i < count; i++ {
		out[i] = ast.Number(start + step*float64(i))
	}
	return ast.Array(out)
}

func repeatFn(call lexer.Token, args []ast.Value) ast.Value {
	value := args[0]
	count := expectInt(call, args[1], "repeat")
	if count < 0 {
		fatal(call, "repeat: count must be non-negative, got %d", count)
	}
	out := make([]ast.Value, count)
	for i := range out {
		out[i] = value
	}
	return ast.Array(out)
}
