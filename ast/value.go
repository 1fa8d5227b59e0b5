/*
File    : ari/ast/value.go

Package ast holds the data shared by the parser and the evaluator: the
runtime Value representation, the Function descriptor, and the expression
and statement node types. Keeping all three in one package avoids an
import cycle between the environment (which stores Values, some of which
are closures referencing Frames of Values) and the evaluator (which
produces Values from AST nodes).
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant a Value currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindBool
	KindArray
	KindFunction
	KindBreak
	KindContinue
)

// Frame is one lexical scope's variable bindings. It is also the shape of
// a closure snapshot: when a user function value is created, Frame is
// copied by value, so later mutation of the original scope never reaches
// back into an already-captured closure.
type Frame map[string]Value

// Value is the single runtime representation for every Ari value,
// including the two non-data control signals (break/continue) that flow
// through statement evaluation exactly like ordinary values. IsReturn
// flags a Value as carrying a function's `return` payload rather than
// being the straight-line result of the statement that produced it, so
// the evaluator can tell "the block finished with 4" from "the block hit
// `return 4`" without taking a second, distinct Go value type.
type Value struct {
	Kind     Kind
	Num      float64
	Str      string
	Bool     bool
	Arr      []Value
	Fn       *Function
	IsReturn bool
}

func Null() Value                 { return Value{Kind: KindNull} }
func Number(n float64) Value      { return Value{Kind: KindNumber, Num: n} }
func String(s string) Value       { return Value{Kind: KindString, Str: s} }
func Bool(b bool) Value           { return Value{Kind: KindBool, Bool: b} }
func Array(items []Value) Value   { return Value{Kind: KindArray, Arr: items} }
func FunctionValue(f *Function) Value { return Value{Kind: KindFunction, Fn: f} }
func Break() Value                { return Value{Kind: KindBreak} }
func Continue() Value             { return Value{Kind: KindContinue} }

// AsReturn wraps v as the payload of a `return` statement, leaving its
// Kind and data untouched.
func (v Value) AsReturn() Value {
	v.IsReturn = true
	return v
}

// TypeName is the name reported by runtime type errors and by any builtin
// that inspects a value's type.
func (v Value) TypeName() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// IsTruthyTyped reports whether v is one of the only two tags Ari accepts
// in a conditional position (if/while/and/or): Bool or Null. Numbers and
// strings deliberately have no truthiness of their own — using one where a
// condition is expected is a fatal type error (§4.3), not a coercion.
func (v Value) IsTruthyTyped() bool {
	return v.Kind == KindBool || v.Kind == KindNull
}

// Truthy reads the boolean meaning of a Bool/Null value: null is falsy,
// Bool carries its own value. Callers must check IsTruthyTyped first.
func (v Value) Truthy() bool {
	return v.Kind == KindBool && v.Bool
}

// String renders v the way print/println and string concatenation do.
// Numbers print without a trailing ".0" when they are integral, and
// arrays use the "Kind(N) => [...]" format, truncated after 5 elements.
func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindNumber:
		return formatNumber(v.Num)
	case KindString:
		return v.Str
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindArray:
		return formatArray(v.Arr)
	case KindFunction:
		if v.Fn != nil && v.Fn.Name != "" {
			return fmt.Sprintf("<fn %s>", v.Fn.Name)
		}
		return "<fn>"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	default:
		return "<unknown>"
	}
}

func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

const maxArrayPrintElems = 5

// formatArray is the generic (non-print-statement) rendering of an array,
// used by Value.String() wherever an array ends up stringified outside
// the print/println path (e.g. debug formatting). It tags the array with
// its first element's type, matching the print/println contract for a
// non-empty array; eval's print/println handle the empty-array case as a
// fatal diagnostic themselves rather than through this generic path.
func formatArray(items []Value) string {
	tag := "Array"
	if len(items) > 0 {
		name := items[0].TypeName()
		tag = strings.ToUpper(name[:1]) + name[1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s(%d) => [", tag, len(items))
	shown := len(items)
	if shown > maxArrayPrintElems {
		shown = maxArrayPrintElems
	}
	for i := 0; i < shown; i++ {
		b.WriteString(items[i].String())
		if i != len(items)-1 {
			b.WriteByte(',')
		}
	}
	if len(items) > maxArrayPrintElems {
		b.WriteString(" ...")
	}
	b.WriteByte(']')
	return b.String()
}
