package builtin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"ari-lang/ast"
	"ari-lang/lexer"
)

type fakeRuntime struct {
	call func(fn ast.Value, args []ast.Value) ast.Value
}

func (f fakeRuntime) Call(_ lexer.Token, fn ast.Value, args []ast.Value) ast.Value {
	return f.call(fn, args)
}

func tok() lexer.Token { return lexer.Token{Line: 1, Column: 1} }

func TestMath_PowerLogModulo(t *testing.T) {
	assert.Equal(t, 8.0, powerFn(tok(), []ast.Value{ast.Number(2), ast.Number(3)}).Num)
	assert.InDelta(t, 2.0, logFn(tok(), []ast.Value{ast.Number(2), ast.Number(4)}).Num, 1e-9)
	assert.Equal(t, 1.0, moduloFn(tok(), []ast.Value{ast.Number(7), ast.Number(3)}).Num)
}

func TestConvert_ToStringToNumber(t *testing.T) {
	assert.Equal(t, "5", toStringFn(tok(), []ast.Value{ast.Number(5)}).Str)
	assert.Equal(t, 5.0, toNumberFn(tok(), []ast.Value{ast.String("5")}).Num)
}

func TestStrings_SplitCase(t *testing.T) {
	result := splitFn(tok(), []ast.Value{ast.String("a,b,c"), ast.String(",")})
	assert.Len(t, result.Arr, 3)
	assert.Equal(t, "b", result.Arr[1].Str)

	assert.Equal(t, "ABC", toUppercaseFn(tok(), []ast.Value{ast.String("abc")}).Str)
	assert.Equal(t, "abc", toLowercaseFn(tok(), []ast.Value{ast.String("ABC")}).Str)
}

func TestArrays_LengthInsertRemove(t *testing.T) {
	arr := ast.Array([]ast.Value{ast.Number(1), ast.Number(2)})
	assert.Equal(t, 2.0, lengthFn(tok(), []ast.Value{arr}).Num)

	inserted := insertFn(tok(), []ast.Value{arr, ast.Number(1), ast.Number(99)})
	assert.Equal(t, []float64{1, 99, 2}, nums(inserted.Arr))

	removed := removeFn(tok(), []ast.Value{inserted, ast.Number(0)})
	assert.Equal(t, []float64{99, 2}, nums(removed.Arr))
}

func nums(vs []ast.Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Num
	}
	return out
}

func TestArrays_MapFilterReduce(t *testing.T) {
	rt := fakeRuntime{call: func(fn ast.Value, args []ast.Value) ast.Value {
		switch fn.Fn.Name {
		case "double":
			return ast.Number(args[0].Num * 2)
		case "isEven":
			n := int(args[0].Num)
			return ast.Bool(n%2 == 0)
		case "sum":
			return ast.Number(args[0].Num + args[1].Num)
		}
		t.Fatalf("unexpected callback %q", fn.Fn.Name)
		return ast.Null()
	}}
	arr := ast.Array([]ast.Value{ast.Number(1), ast.Number(2), ast.Number(3), ast.Number(4)})

	doubled := mapFn(rt)(tok(), []ast.Value{arr, fnValue("double")})
	assert.Equal(t, []float64{2, 4, 6, 8}, nums(doubled.Arr))

	evens := filterFn(rt)(tok(), []ast.Value{arr, fnValue("isEven")})
	assert.Equal(t, []float64{2, 4}, nums(evens.Arr))

	total := reduceFn(rt)(tok(), []ast.Value{arr, ast.Number(0), fnValue("sum")})
	assert.Equal(t, 10.0, total.Num)
}

func fnValue(name string) ast.Value {
	return ast.FunctionValue(&ast.Function{Kind: ast.FuncUser, Name: name})
}

func TestArrays_RangeLinspaceRepeat(t *testing.T) {
	r := rangeFn(tok(), []ast.Value{ast.Number(0), ast.Number(4), ast.Number(2)})
	assert.Equal(t, []float64{0, 2, 4}, nums(r.Arr))

	ls := linspaceFn(tok(), []ast.Value{ast.Number(0), ast.Number(10), ast.Number(3)})
	assert.Equal(t, []float64{0, 5, 10}, nums(ls.Arr))

	rep := repeatFn(tok(), []ast.Value{ast.String("x"), ast.Number(3)})
	assert.Len(t, rep.Arr, 3)
	assert.Equal(t, "x", rep.Arr[0].Str)
}

func TestRandom_ChooseAndNormalRespectCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	arr := ast.Array([]ast.Value{ast.Number(1), ast.Number(2), ast.Number(3)})
	chosen := randomChooseFn(rng)(tok(), []ast.Value{arr, ast.Number(5)})
	assert.Len(t, chosen.Arr, 5)

	normal := randomNormalFn(rng)(tok(), []ast.Value{ast.Number(0), ast.Number(1), ast.Number(4)})
	assert.Len(t, normal.Arr, 4)
}
