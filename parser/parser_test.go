package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ari-lang/ast"
	"ari-lang/lexer"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	return New(lexer.New(src).ScanTokens()).Parse()
}

func TestParse_LetAndExpressionStatement(t *testing.T) {
	stmts := parse(t, `let x = 1 + 2; println x;`)
	if assert.Len(t, stmts, 2) {
		letStmt, ok := stmts[0].(*ast.LetStmt)
		assert.True(t, ok)
		assert.Equal(t, "x", letStmt.Name.Lexeme)
		bin, ok := letStmt.Initializer.(*ast.BinaryExpr)
		assert.True(t, ok)
		assert.Equal(t, lexer.PLUS, bin.Op.Type)

		_, ok = stmts[1].(*ast.PrintlnStmt)
		assert.True(t, ok)
	}
}

func TestParse_OperatorPrecedence(t *testing.T) {
	stmts := parse(t, `let r = 1 + 2 * 3;`)
	letStmt := stmts[0].(*ast.LetStmt)
	top, ok := letStmt.Initializer.(*ast.BinaryExpr)
	if assert.True(t, ok) {
		assert.Equal(t, lexer.PLUS, top.Op.Type)
		_, rightIsMul := top.Right.(*ast.BinaryExpr)
		assert.True(t, rightIsMul)
	}
}

func TestParse_ArrayLiteralAndIndex(t *testing.T) {
	stmts := parse(t, `let a = [1, 2, 3]; let b = a[0];`)
	letA := stmts[0].(*ast.LetStmt)
	arr, ok := letA.Initializer.(*ast.ArrayExpr)
	if assert.True(t, ok) {
		assert.Len(t, arr.Elements, 3)
	}

	letB := stmts[1].(*ast.LetStmt)
	idx, ok := letB.Initializer.(*ast.IndexExpr)
	assert.True(t, ok)
	variable, ok := idx.Target.(*ast.VariableExpr)
	assert.True(t, ok)
	assert.Equal(t, "a", variable.Name.Lexeme)
}

func TestParse_IndexAssignment(t *testing.T) {
	stmts := parse(t, `a[0] = 5;`)
	exprStmt := stmts[0].(*ast.ExprStmt)
	assign, ok := exprStmt.Expression.(*ast.IndexAssignExpr)
	if assert.True(t, ok) {
		assert.Equal(t, "a", assign.Target.Lexeme)
	}
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	stmts := parse(t, `fn add(a, b) { return a + b; } println add(1, 2);`)
	fn, ok := stmts[0].(*ast.FunctionStmt)
	if assert.True(t, ok) {
		assert.Equal(t, "add", fn.Name.Lexeme)
		assert.Len(t, fn.Params, 2)
		assert.Len(t, fn.Body.Stmts, 1)
	}

	printlnStmt := stmts[1].(*ast.PrintlnStmt)
	call, ok := printlnStmt.Value.(*ast.CallExpr)
	if assert.True(t, ok) {
		assert.Len(t, call.Args, 2)
		callee, ok := call.Callee.(*ast.VariableExpr)
		assert.True(t, ok)
		assert.Equal(t, "add", callee.Name.Lexeme)
	}
}

func TestParse_IfElseIfElse(t *testing.T) {
	stmts := parse(t, `if (true) { println 1; } else if (false) { println 2; } else { println 3; }`)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	if assert.True(t, ok) {
		elseIf, ok := ifStmt.Else.(*ast.IfStmt)
		if assert.True(t, ok) {
			_, ok := elseIf.Else.(*ast.BlockStmt)
			assert.True(t, ok)
		}
	}
}

func TestParse_WhileLoop(t *testing.T) {
	stmts := parse(t, `while (i < 3) { print i; i = i + 1; }`)
	while, ok := stmts[0].(*ast.WhileStmt)
	if assert.True(t, ok) {
		assert.Len(t, while.Body.Stmts, 2)
	}
}

// for (init; cond; incr) body desugars to { init; while (cond) { body...; incr; } }.
func TestParse_ForDesugars(t *testing.T) {
	stmts := parse(t, `for (let i = 0; i < 3; i = i + 1) { print i; }`)
	block, ok := stmts[0].(*ast.BlockStmt)
	if assert.True(t, ok) && assert.Len(t, block.Stmts, 2) {
		_, ok := block.Stmts[0].(*ast.LetStmt)
		assert.True(t, ok)
		while, ok := block.Stmts[1].(*ast.WhileStmt)
		if assert.True(t, ok) {
			assert.Len(t, while.Body.Stmts, 2) // original body + appended incr
		}
	}
}

func TestParse_ForMissingClausesDefaultsTrueCondition(t *testing.T) {
	stmts := parse(t, `for (;;) { break; }`)
	while, ok := stmts[0].(*ast.WhileStmt)
	if assert.True(t, ok) {
		lit, ok := while.Condition.(*ast.LiteralExpr)
		if assert.True(t, ok) {
			assert.Equal(t, ast.KindBool, lit.Value.Kind)
			assert.True(t, lit.Value.Bool)
		}
	}
}

func TestParse_LogicalShortCircuitGrouping(t *testing.T) {
	stmts := parse(t, `let r = a and b or c;`)
	letStmt := stmts[0].(*ast.LetStmt)
	top, ok := letStmt.Initializer.(*ast.LogicalExpr)
	if assert.True(t, ok) {
		assert.Equal(t, lexer.OR, top.Op.Type)
		_, leftIsAnd := top.Left.(*ast.LogicalExpr)
		assert.True(t, leftIsAnd)
	}
}

func TestParse_BaiStatement(t *testing.T) {
	stmts := parse(t, `bai "see ya";`)
	bai, ok := stmts[0].(*ast.BaiStmt)
	assert.True(t, ok)
	lit, ok := bai.Value.(*ast.LiteralExpr)
	if assert.True(t, ok) {
		assert.Equal(t, "see ya", lit.Value.Str)
	}
}
