package eval

import (
	"runtime"
	"sync"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// evalBinary applies §4.3's operand-tag table. Arithmetic on arrays is
// dispatched to evalArrayArith, which may run the elementwise pass across
// a bounded worker pool (§5) — a performance choice required to be
// observationally identical to a sequential traversal, since element
// operations here are always pure.
func (e *Evaluator) evalBinary(x *ast.BinaryExpr) ast.Value {
	left := e.evalExpr(x.Left)
	right := e.evalExpr(x.Right)
	op := x.Op

	switch op.Type {
	case lexer.PLUS:
		return e.evalAdd(op, left, right)
	case lexer.MINUS:
		return e.evalArith(op, left, right, "-", subtract)
	case lexer.STAR:
		return e.evalArith(op, left, right, "*", multiply)
	case lexer.SLASH:
		return e.evalDivide(op, left, right)
	case lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		return e.evalComparison(op, left, right)
	case lexer.EQUAL_EQUAL:
		return ast.Bool(e.valuesEqual(op, left, right))
	case lexer.BANG_EQUAL:
		return ast.Bool(!e.valuesEqual(op, left, right))
	default:
		panic("eval: unhandled binary operator " + string(op.Type))
	}
}

func (e *Evaluator) evalAdd(op lexer.Token, left, right ast.Value) ast.Value {
	switch {
	case left.Kind == ast.KindNumber && right.Kind == ast.KindNumber:
		return ast.Number(left.Num + right.Num)
	case left.Kind == ast.KindString && right.Kind == ast.KindString:
		return ast.String(left.Str + right.Str)
	case left.Kind == ast.KindString && right.Kind == ast.KindNumber:
		return ast.String(left.Str + right.String())
	case left.Kind == ast.KindNumber && right.Kind == ast.KindString:
		return ast.String(left.String() + right.Str)
	case left.Kind == ast.KindArray && right.Kind == ast.KindArray:
		return e.evalArrayArith(op, left, right, "+", add)
	default:
		e.fatalAt(op, "operator '+' does not support %s and %s", left.TypeName(), right.TypeName())
		return ast.Null()
	}
}

type numFn func(a, b float64) float64

func add(a, b float64) float64      { return a + b }
func subtract(a, b float64) float64 { return a - b }
func multiply(a, b float64) float64 { return a * b }

// evalArith handles '-' and '*': Number op Number, or Array op Array
// elementwise over Number arrays only.
func (e *Evaluator) evalArith(op lexer.Token, left, right ast.Value, symbol string, fn numFn) ast.Value {
	switch {
	case left.Kind == ast.KindNumber && right.Kind == ast.KindNumber:
		return ast.Number(fn(left.Num, right.Num))
	case left.Kind == ast.KindArray && right.Kind == ast.KindArray:
		return e.evalArrayArith(op, left, right, symbol, fn)
	default:
		e.fatalAt(op, "operator '%s' does not support %s and %s", symbol, left.TypeName(), right.TypeName())
		return ast.Null()
	}
}

func (e *Evaluator) evalDivide(op lexer.Token, left, right ast.Value) ast.Value {
	switch {
	case left.Kind == ast.KindNumber && right.Kind == ast.KindNumber:
		if right.Num == 0 {
			e.fatalAt(op, "division by zero")
		}
		return ast.Number(left.Num / right.Num)
	case left.Kind == ast.KindArray && right.Kind == ast.KindArray:
		return e.evalArrayArith(op, left, right, "/", func(a, b float64) float64 {
			if b == 0 {
				e.fatalAt(op, "division by zero")
			}
			return a / b
		})
	default:
		e.fatalAt(op, "operator '/' does not support %s and %s", left.TypeName(), right.TypeName())
		return ast.Null()
	}
}

// evalArrayArith implements elementwise array arithmetic: both operands
// must be arrays of equal length and matching element tag. '+' on String
// arrays concatenates elementwise; every other arithmetic operator
// requires Number arrays.
func (e *Evaluator) evalArrayArith(op lexer.Token, left, right ast.Value, symbol string, fn numFn) ast.Value {
	if len(left.Arr) != len(right.Arr) {
		e.fatalAt(op, "array operator '%s' requires equal-length arrays, got %d and %d", symbol, len(left.Arr), len(right.Arr))
	}
	if len(left.Arr) == 0 {
		return ast.Array(nil)
	}
	elemKind := left.Arr[0].Kind
	if right.Arr[0].Kind != elemKind {
		e.fatalAt(op, "array operator '%s' requires matching element types, got %s and %s", symbol, left.Arr[0].TypeName(), right.Arr[0].TypeName())
	}

	if symbol == "+" && elemKind == ast.KindString {
		out := make([]ast.Value, len(left.Arr))
		e.parallelEach(len(out), func(i int) {
			out[i] = ast.String(left.Arr[i].Str + right.Arr[i].Str)
		})
		return ast.Array(out)
	}
	if elemKind != ast.KindNumber {
		e.fatalAt(op, "array operator '%s' requires number or (for '+') string arrays, got %s", symbol, left.Arr[0].TypeName())
	}

	out := make([]ast.Value, len(left.Arr))
	e.parallelEach(len(out), func(i int) {
		out[i] = ast.Number(fn(left.Arr[i].Num, right.Arr[i].Num))
	})
	return ast.Array(out)
}

// parallelEach runs fn(i) for i in [0,n) across a bounded worker pool,
// grounded on the original interpreter's use of rayon's parallel
// iterators for the same elementwise array operators (§5). Small arrays
// run inline — the pool only pays for itself once there is real work to
// split.
func (e *Evaluator) parallelEach(n int, fn func(i int)) {
	const parallelThreshold = 64
	if n < parallelThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}

func (e *Evaluator) evalComparison(op lexer.Token, left, right ast.Value) ast.Value {
	if left.Kind != ast.KindNumber || right.Kind != ast.KindNumber {
		e.fatalAt(op, "operator '%s' requires numbers, got %s and %s", op.Lexeme, left.TypeName(), right.TypeName())
	}
	switch op.Type {
	case lexer.LESS:
		return ast.Bool(left.Num < right.Num)
	case lexer.LESS_EQUAL:
		return ast.Bool(left.Num <= right.Num)
	case lexer.GREATER:
		return ast.Bool(left.Num > right.Num)
	case lexer.GREATER_EQUAL:
		return ast.Bool(left.Num >= right.Num)
	}
	panic("unreachable")
}

// valuesEqual implements §4.3's equality table: Number numeric compare,
// String lexical compare, Bool/Null by tag and text; any other pairing
// (arrays, functions, mismatched tags) is a fatal type error.
func (e *Evaluator) valuesEqual(op lexer.Token, left, right ast.Value) bool {
	switch {
	case left.Kind == ast.KindNumber && right.Kind == ast.KindNumber:
		return left.Num == right.Num
	case left.Kind == ast.KindString && right.Kind == ast.KindString:
		return left.Str == right.Str
	case (left.Kind == ast.KindBool || left.Kind == ast.KindNull) &&
		(right.Kind == ast.KindBool || right.Kind == ast.KindNull):
		return left.Kind == right.Kind && left.String() == right.String()
	default:
		e.fatalAt(op, "cannot compare %s and %s for equality", left.TypeName(), right.TypeName())
		return false
	}
}

// evalLogical implements and/or: both operands must be Bool or Null;
// evaluation short-circuits on the left, and the result is whichever
// operand the rule settles on (not necessarily coerced to Bool) —
// Python/Lua-style truthy-value return (§4.3).
func (e *Evaluator) evalLogical(x *ast.LogicalExpr) ast.Value {
	left := e.evalExpr(x.Left)
	e.requireTruthyTyped(x.Op, left)

	if x.Op.Type == lexer.OR {
		if left.Truthy() {
			return left
		}
		right := e.evalExpr(x.Right)
		e.requireTruthyTyped(x.Op, right)
		return right
	}

	// AND
	if !left.Truthy() {
		return left
	}
	right := e.evalExpr(x.Right)
	e.requireTruthyTyped(x.Op, right)
	return right
}

// evalUnary implements '!' (Bool/Null operand only) and '-' (Number only).
func (e *Evaluator) evalUnary(x *ast.UnaryExpr) ast.Value {
	operand := e.evalExpr(x.Operand)
	switch x.Op.Type {
	case lexer.BANG:
		if !operand.IsTruthyTyped() {
			e.fatalAt(x.Op, "operator '!' requires bool or null, got %s", operand.TypeName())
		}
		return ast.Bool(!operand.Truthy())
	case lexer.MINUS:
		if operand.Kind != ast.KindNumber {
			e.fatalAt(x.Op, "unary '-' requires a number, got %s", operand.TypeName())
		}
		return ast.Number(-operand.Num)
	default:
		panic("eval: unhandled unary operator " + string(x.Op.Type))
	}
}
