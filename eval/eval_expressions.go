package eval

import (
	"ari-lang/ast"
	"ari-lang/lexer"
)

// evalExpr dispatches a single expression node to its Value.
func (e *Evaluator) evalExpr(expr ast.Expr) ast.Value {
	switch x := expr.(type) {
	case *ast.LiteralExpr:
		return x.Value
	case *ast.GroupingExpr:
		return e.evalExpr(x.Inner)
	case *ast.VariableExpr:
		return e.evalVariable(x)
	case *ast.AssignExpr:
		return e.evalAssign(x)
	case *ast.IndexAssignExpr:
		return e.evalIndexAssign(x)
	case *ast.ArrayExpr:
		return e.evalArrayCreation(x)
	case *ast.IndexExpr:
		return e.evalIndexAccess(x)
	case *ast.BinaryExpr:
		return e.evalBinary(x)
	case *ast.LogicalExpr:
		return e.evalLogical(x)
	case *ast.UnaryExpr:
		return e.evalUnary(x)
	case *ast.CallExpr:
		return e.evalCall(x)
	default:
		panic("eval: unhandled expression node")
	}
}

func (e *Evaluator) evalVariable(x *ast.VariableExpr) ast.Value {
	v, ok := e.env.Get(x.Name.Lexeme)
	if !ok {
		e.fatalAt(x.Name, "'%s' is an undefined variable", x.Name.Lexeme)
	}
	return v
}

// evalAssign assigns to the nearest enclosing frame that already defines
// Name; there is no implicit declaration on assignment (§4.5).
func (e *Evaluator) evalAssign(x *ast.AssignExpr) ast.Value {
	value := e.evalExpr(x.Value)
	if !e.env.Assign(x.Name.Lexeme, value) {
		e.fatalAt(x.Name, "'%s' variable cannot be found in this scope", x.Name.Lexeme)
	}
	return ast.Null()
}

// evalIndexAssign implements §4.5's ArrayAssign rule: the index must be a
// non-negative integer-valued Number, at most the array's current length
// (== length is a push); the new element's tag must match the array's
// existing element tag.
func (e *Evaluator) evalIndexAssign(x *ast.IndexAssignExpr) ast.Value {
	container, ok := e.env.Get(x.Target.Lexeme)
	if !ok {
		e.fatalAt(x.Target, "'%s' is an undefined variable", x.Target.Lexeme)
	}
	if container.Kind != ast.KindArray {
		e.fatalAt(x.Target, "'%s' is not an array", x.Target.Lexeme)
	}

	idx := e.evalExpr(x.Index)
	i := e.requireArrayIndex(x.Target, idx, len(container.Arr), true)
	value := e.evalExpr(x.Value)

	arr := container.Arr
	if i == len(arr) {
		if len(arr) > 0 && value.Kind != arr[0].Kind {
			e.fatalAt(x.Target, "cannot push a %s onto an array of %s", value.TypeName(), arr[0].TypeName())
		}
		arr = append(arr, value)
	} else {
		if len(arr) > 0 && value.Kind != arr[0].Kind {
			e.fatalAt(x.Target, "cannot assign a %s into an array of %s", value.TypeName(), arr[0].TypeName())
		}
		arr = append([]ast.Value(nil), arr...)
		arr[i] = value
	}
	e.env.Assign(x.Target.Lexeme, ast.Array(arr))
	return ast.Null()
}

// evalArrayCreation evaluates each element left-to-right and rejects
// heterogeneous tags, pointing the diagnostic at the offending element's
// enclosing bracket.
func (e *Evaluator) evalArrayCreation(x *ast.ArrayExpr) ast.Value {
	items := make([]ast.Value, len(x.Elements))
	for i, elemExpr := range x.Elements {
		items[i] = e.evalExpr(elemExpr)
		if i > 0 && items[i].Kind != items[0].Kind {
			e.fatalAt(x.Bracket, "array elements must share the same type: got %s and %s",
				items[0].TypeName(), items[i].TypeName())
		}
	}
	return ast.Array(items)
}

func (e *Evaluator) evalIndexAccess(x *ast.IndexExpr) ast.Value {
	target := e.evalExpr(x.Target)
	if target.Kind != ast.KindArray {
		e.fatalAt(x.Bracket, "cannot index into a %s", target.TypeName())
	}
	idx := e.evalExpr(x.Index)
	i := e.requireArrayIndex(x.Bracket, idx, len(target.Arr), false)
	return target.Arr[i]
}

// requireArrayIndex validates idx is an integer-valued, non-negative
// Number within [0,length] (allowPush, the ArrayAssign "push" case) or
// [0,length) otherwise (plain reads and in-range writes).
func (e *Evaluator) requireArrayIndex(tok lexer.Token, idx ast.Value, length int, allowPush bool) int {
	if idx.Kind != ast.KindNumber {
		e.fatalAt(tok, "array index must be a number, got %s", idx.TypeName())
	}
	if idx.Num != float64(int(idx.Num)) {
		e.fatalAt(tok, "array index must be an integer, got %v", idx.Num)
	}
	i := int(idx.Num)
	if i < 0 {
		e.fatalAt(tok, "array index must be non-negative, got %d", i)
	}
	limit := length
	if allowPush {
		limit = length + 1
	}
	if i >= limit {
		e.fatalAt(tok, "array index %d out of range for length %d", i, length)
	}
	return i
}
