/*
File    : ari/parser/parser.go

Package parser implements Ari's grammar as classical recursive descent,
one method per precedence level. Every fatal error (missing token,
unrecognized primary, too many call arguments) renders through the
diagnostic facility and terminates the process, matching the lexer's
fail-fast discipline: there is no error-node/recovery path, since Ari has
no user-level try/catch to report multiple errors to.
*/
package parser

import (
	"strconv"

	"ari-lang/ast"
	"ari-lang/diag"
	"ari-lang/lexer"
)

const maxArgs = 255

// Parser consumes a flat token slice (as produced by lexer.ScanTokens) and
// produces the top-level statement sequence.
type Parser struct {
	tokens  []lexer.Token
	current int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the parser to completion, returning every top-level
// declaration in source order.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts
}

// --- declarations ---------------------------------------------------------

func (p *Parser) declaration() ast.Stmt {
	if p.match(lexer.FN) {
		return p.functionDecl()
	}
	if p.match(lexer.LET) {
		return p.letDecl()
	}
	return p.statement()
}

func (p *Parser) functionDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "expected function name")
	p.consume(lexer.LEFT_PAREN, "expected '(' after function name")
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.fatalAtCurrent("a function cannot take more than %d parameters", maxArgs)
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "expected parameter name"))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "expected ')' after parameters")
	p.consume(lexer.LEFT_BRACE, "expected '{' before function body")
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) letDecl() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "expected variable name")
	var init ast.Expr
	if p.match(lexer.EQUAL) {
		init = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expected ';' after let declaration")
	return &ast.LetStmt{Name: name, Initializer: init}
}

// --- statements ------------------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.PRINTLN):
		return p.printlnStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.BAI):
		return p.baiStatement()
	case p.match(lexer.BREAK):
		return p.breakStatement()
	case p.match(lexer.CONTINUE):
		return p.continueStatement()
	case p.check(lexer.LEFT_BRACE):
		p.advance()
		return p.block()
	default:
		return p.exprStatement()
	}
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`, per §4.2: a missing cond
// becomes literal true, and missing init/incr are simply omitted.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		// no initializer
	case p.match(lexer.LET):
		init = p.letDecl()
	default:
		init = p.exprStatement()
	}

	var cond ast.Expr
	if !p.check(lexer.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expected ';' after loop condition")
	if cond == nil {
		cond = &ast.LiteralExpr{Value: ast.Bool(true)}
	}

	var incr ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		incr = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "expected ')' after for clauses")

	p.consume(lexer.LEFT_BRACE, "expected '{' before for body")
	body := p.block()

	bodyStmts := append([]ast.Stmt{}, body.Stmts...)
	if incr != nil {
		bodyStmts = append(bodyStmts, &ast.ExprStmt{Expression: incr})
	}
	loop := &ast.WhileStmt{Keyword: keyword, Condition: cond, Body: &ast.BlockStmt{Brace: body.Brace, Stmts: bodyStmts}}

	if init == nil {
		return loop
	}
	return &ast.BlockStmt{Stmts: []ast.Stmt{init, loop}}
}

func (p *Parser) ifStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'if'")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after if condition")
	var then *ast.BlockStmt
	if p.match(lexer.LEFT_BRACE) {
		then = p.block()
	} else {
		then = &ast.BlockStmt{Brace: keyword, Stmts: []ast.Stmt{p.statement()}}
	}

	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		if p.match(lexer.IF) {
			elseBranch = p.ifStatement()
		} else {
			p.consume(lexer.LEFT_BRACE, "expected '{' before else body")
			elseBranch = p.block()
		}
	}
	return &ast.IfStmt{Keyword: keyword, Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.LEFT_PAREN, "expected '(' after 'while'")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after while condition")
	p.consume(lexer.LEFT_BRACE, "expected '{' before while body")
	body := p.block()
	return &ast.WhileStmt{Keyword: keyword, Condition: cond, Body: body}
}

func (p *Parser) printStatement() ast.Stmt {
	keyword := p.previous()
	v := p.expression()
	p.consume(lexer.SEMICOLON, "expected ';' after print statement")
	return &ast.PrintStmt{Keyword: keyword, Value: v}
}

func (p *Parser) printlnStatement() ast.Stmt {
	keyword := p.previous()
	v := p.expression()
	p.consume(lexer.SEMICOLON, "expected ';' after println statement")
	return &ast.PrintlnStmt{Keyword: keyword, Value: v}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "expected ';' after return statement")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) baiStatement() ast.Stmt {
	keyword := p.previous()
	v := p.expression()
	p.consume(lexer.SEMICOLON, "expected ';' after bai statement")
	return &ast.BaiStmt{Keyword: keyword, Value: v}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMICOLON, "expected ';' after break statement")
	return &ast.BreakStmt{Keyword: keyword}
}

func (p *Parser) continueStatement() ast.Stmt {
	keyword := p.previous()
	p.consume(lexer.SEMICOLON, "expected ';' after continue statement")
	return &ast.ContinueStmt{Keyword: keyword}
}

func (p *Parser) exprStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "expected ';' after expression")
	return &ast.ExprStmt{Expression: expr}
}

// block assumes the opening '{' has already been consumed by the caller,
// mirroring each statement() branch that matches LEFT_BRACE before
// dispatching here.
func (p *Parser) block() *ast.BlockStmt {
	brace := p.previous()
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(lexer.RIGHT_BRACE, "expected '}' after block")
	return &ast.BlockStmt{Brace: brace, Stmts: stmts}
}

// --- expressions -------------------------------------------------------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.or()
	if p.match(lexer.EQUAL) {
		value := p.assignment() // right-associative
		switch target := expr.(type) {
		case *ast.VariableExpr:
			return &ast.AssignExpr{Name: target.Name, Value: value}
		case *ast.IndexExpr:
			variable, ok := target.Target.(*ast.VariableExpr)
			if !ok {
				p.fatalAtCurrent("invalid assignment target")
			}
			return &ast.IndexAssignExpr{Target: variable.Name, Index: target.Index, Value: value}
		default:
			p.fatalAtCurrent("invalid assignment target")
		}
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.arrayCreation()
	for p.match(lexer.STAR, lexer.SLASH) {
		op := p.previous()
		right := p.arrayCreation()
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) arrayCreation() ast.Expr {
	if !p.match(lexer.LEFT_BRACKET) {
		return p.unary()
	}
	bracket := p.previous()
	var elements []ast.Expr
	if !p.check(lexer.RIGHT_BRACKET) {
		elements = append(elements, p.expression())
		for p.match(lexer.COMMA) {
			elements = append(elements, p.expression())
		}
	}
	p.consume(lexer.RIGHT_BRACKET, "expected ']' after array elements")
	return &ast.ArrayExpr{Bracket: bracket, Elements: elements}
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		operand := p.unary()
		return &ast.UnaryExpr{Op: op, Operand: operand}
	}
	return p.arrayAccess()
}

// arrayAccess parses a single optional `[index]` suffix, per §4.2's "single
// index; trailing comma is an error" — unlike call suffixes this does not
// loop, so `a[0][1]` is not Ari syntax.
func (p *Parser) arrayAccess() ast.Expr {
	expr := p.call()
	if p.match(lexer.LEFT_BRACKET) {
		bracket := p.previous()
		index := p.expression()
		p.consume(lexer.RIGHT_BRACKET, "expected ']' after array index")
		expr = &ast.IndexExpr{Target: expr, Bracket: bracket, Index: index}
	}
	return expr
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		args = append(args, p.expression())
		for p.match(lexer.COMMA) {
			if len(args) >= maxArgs {
				p.fatalAtCurrent("a call cannot take more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.LiteralExpr{Value: ast.Bool(false)}
	case p.match(lexer.TRUE):
		return &ast.LiteralExpr{Value: ast.Bool(true)}
	case p.match(lexer.NULL):
		return &ast.LiteralExpr{Value: ast.Null()}
	case p.match(lexer.NUMBER):
		n, err := strconv.ParseFloat(p.previous().Literal, 64)
		if err != nil {
			p.fatalAt(p.previous(), "invalid number literal %q", p.previous().Literal)
		}
		return &ast.LiteralExpr{Value: ast.Number(n)}
	case p.match(lexer.STRING):
		return &ast.LiteralExpr{Value: ast.String(p.previous().Literal)}
	case p.match(lexer.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		inner := p.expression()
		p.consume(lexer.RIGHT_PAREN, "expected ')' after expression")
		return &ast.GroupingExpr{Inner: inner}
	}
	p.fatalAtCurrent("expected expression")
	panic("unreachable") // fatalAtCurrent always terminates the process
}

// --- token-stream primitives -----------------------------------------------

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.fatalAtCurrent("%s", msg)
	panic("unreachable")
}

func (p *Parser) fatalAtCurrent(format string, args ...interface{}) {
	p.fatalAt(p.peek(), format, args...)
}

func (p *Parser) fatalAt(tok lexer.Token, format string, args ...interface{}) {
	diag.Fatalf(diag.Location{Line: tok.Line, Column: tok.Column, LineSrc: tok.LineSrc}, format, args...)
}
