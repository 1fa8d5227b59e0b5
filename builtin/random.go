package builtin

import (
	"math/rand"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// randomChooseFn samples count elements from the array uniformly, with
// replacement.
func randomChooseFn(rng *rand.Rand) ast.NativeFunc {
	return func(call lexer.Token, args []ast.Value) ast.Value {
		arr := expectArray(call, args[0], "random_choose")
		count := expectInt(call, args[1], "random_choose")
		if count < 0 {
			fatal(call, "random_choose: count must be non-negative, got %d", count)
		}
		if len(arr) == 0 && count > 0 {
			fatal(call, "random_choose: cannot sample from an empty array")
		}
		out := make([]ast.Value, count)
		for i := range out {
			out[i] = arr[rng.Intn(len(arr))]
		}
		return ast.Array(out)
	}
}

// randomNormalFn draws count samples from a Gaussian distribution with
// the given mean and standard deviation.
func randomNormalFn(rng *rand.Rand) ast.NativeFunc {
	return func(call lexer.Token, args []ast.Value) ast.Value {
		mean := expectNumber(call, args[0], "random_normal")
		stddev := expectNumber(call, args[1], "random_normal")
		count := expectInt(call, args[2], "random_normal")
		if count < 0 {
			fatal(call, "random_normal: count must be non-negative, got %d", count)
		}
		out := make([]ast.Value, count)
		for i := range out {
			out[i] = ast.Number(mean + stddev*rng.NormFloat64())
		}
		return ast.Array(out)
	}
}
