package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ari-lang/diag"
	"ari-lang/lexer"
	"ari-lang/parser"
)

func run(t *testing.T, src string) string {
	t.Helper()
	stmts := parser.New(lexer.New(src).ScanTokens()).Parse()
	var buf bytes.Buffer
	New(&buf, 1).Run(stmts)
	return buf.String()
}

func TestEval_Arithmetic(t *testing.T) {
	assert.Equal(t, "3\n", run(t, "println 1 + 2;"))
}

func TestEval_ArrayElementwiseMultiply(t *testing.T) {
	out := run(t, "let a = [1,2,3]; println a * [2,2,2];")
	assert.Equal(t, "Number(3) => [2,4,6]\n", out)
}

func TestEval_RecursiveFibonacci(t *testing.T) {
	out := run(t, `fn f(n){ if (n<2) return n; return f(n-1)+f(n-2); } println f(10);`)
	assert.Equal(t, "55\n", out)
}

func TestEval_WhileLoopPrintsWithoutNewline(t *testing.T) {
	out := run(t, `let i=0; while (i<3){ print i; i = i+1; } println "";`)
	assert.Equal(t, "012\n", out)
}

func TestEval_SplitAndLength(t *testing.T) {
	out := run(t, `let s = split("a,b,c", ","); println length(s);`)
	assert.Equal(t, "3\n", out)
}

func TestEval_ClosurePersistsAcrossCalls(t *testing.T) {
	out := run(t, `fn mk(){ let c = 0; fn inc(){ c = c+1; return c; } return inc; } let g = mk(); println g(); println g();`)
	assert.Equal(t, "1\n2\n", out)
}

func TestEval_ScopeIsolation(t *testing.T) {
	out := run(t, `let x = 1; { let x = 2; } println x;`)
	assert.Equal(t, "1\n", out)
}

func TestEval_AssignWithoutOuterLetIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		withFakeExit(t, func() {
			run(t, `{ y = 1; }`)
		})
	})
}

func TestEval_DivisionByZeroIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		withFakeExit(t, func() {
			run(t, `println 1/0;`)
		})
	})
}

func TestEval_BreakStopsOnlyNearestLoop(t *testing.T) {
	out := run(t, `
		let total = 0;
		let i = 0;
		while (i < 3) {
			let j = 0;
			while (j < 3) {
				if (j == 1) { break; }
				total = total + 1;
				j = j + 1;
			}
			i = i + 1;
		}
		println total;
	`)
	assert.Equal(t, "3\n", out)
}

func TestEval_ForDesugaring(t *testing.T) {
	out := run(t, `for (let i = 0; i < 3; i = i + 1) { print i; } println "";`)
	assert.Equal(t, "012\n", out)
}

func TestEval_MapFilterReduceBuiltins(t *testing.T) {
	out := run(t, `
		fn double(x) { return x * 2; }
		fn isEven(x) { return modulo(x, 2) == 0; }
		fn sum(a, b) { return a + b; }
		let xs = [1,2,3,4];
		println map(xs, double);
		println filter(xs, isEven);
		println reduce(xs, 0, sum);
	`)
	assert.Equal(t, "Number(4) => [2,4,6,8]\nNumber(2) => [2,4]\n10\n", out)
}

func TestEval_BaiExitsWithBanter(t *testing.T) {
	var exitCode int
	withFakeExitCapture(t, &exitCode, func() {
		out := run(t, `bai "1";`)
		assert.Equal(t, "\nPoof\n", out)
	})
	assert.Equal(t, 0, exitCode)
}

// withFakeExit swaps diag.Exit (the hook every fatal diagnostic calls
// through) for a function that panics instead of calling os.Exit, so a
// fatal-path test can assert.Panics without killing the test binary.
func withFakeExit(t *testing.T, fn func()) {
	t.Helper()
	original := diag.Exit
	defer func() { diag.Exit = original }()
	diag.Exit = func(code int) { panic("exit") }
	fn()
}

func withFakeExitCapture(t *testing.T, code *int, fn func()) {
	t.Helper()
	original := Exit
	defer func() { Exit = original }()
	Exit = func(c int) { *code = c }
	fn()
}
