package ast

import "ari-lang/lexer"

// Expr is the marker interface implemented by every expression node. The
// evaluator dispatches on concrete type via a type switch rather than a
// Visitor/Accept pair: Ari's grammar is small and fixed, and a switch
// keeps the evaluation logic for each node next to the others instead of
// scattered across one Accept method per type.
type Expr interface {
	exprNode()
}

// LiteralExpr wraps a constant value already known at parse time: a
// number, string, bool, or null.
type LiteralExpr struct {
	Value Value
}

// VariableExpr looks up an identifier in the environment stack.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr is `name = value`, which the parser (like IndexAssignExpr)
// builds only after parsing what first looked like an ordinary expression.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// IndexAssignExpr is `target[index] = value`.
type IndexAssignExpr struct {
	Target lexer.Token
	Index  Expr
	Value  Expr
}

// BinaryExpr covers the arithmetic, comparison, and equality operators.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// LogicalExpr covers `and`/`or`, kept distinct from BinaryExpr because
// these short-circuit and never evaluate Right unless needed.
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

// UnaryExpr covers prefix `-` and `!`.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expr
}

// GroupingExpr is a parenthesized expression; it carries no token of its
// own and evaluates to its Inner.
type GroupingExpr struct {
	Inner Expr
}

// ArrayExpr is an array literal, `[e0, e1, ...]`.
type ArrayExpr struct {
	Bracket  lexer.Token
	Elements []Expr
}

// IndexExpr is `target[index]`, array element access.
type IndexExpr struct {
	Target  Expr
	Bracket lexer.Token
	Index   Expr
}

// CallExpr is `callee(arg0, arg1, ...)`. Callee is itself an expression
// (not just an identifier) because call suffixes chain on a primary, e.g.
// `make()(x)`. Call binds tighter than `[index]`, so `f(x)[0]` parses but
// `table[i](x)` does not.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token
	Args   []Expr
}

func (LiteralExpr) exprNode()     {}
func (VariableExpr) exprNode()    {}
func (AssignExpr) exprNode()      {}
func (IndexAssignExpr) exprNode() {}
func (BinaryExpr) exprNode()      {}
func (LogicalExpr) exprNode()     {}
func (UnaryExpr) exprNode()       {}
func (GroupingExpr) exprNode()    {}
func (ArrayExpr) exprNode()       {}
func (IndexExpr) exprNode()       {}
func (CallExpr) exprNode()        {}
