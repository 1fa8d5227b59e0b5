package eval

import (
	"fmt"
	"strings"

	"ari-lang/ast"
	"ari-lang/lexer"
)

// execStmt dispatches a single statement and returns whatever control
// signal it produced: Break, Continue, a return-tagged Value, or plain
// Null for a statement that runs to completion with nothing to propagate.
func (e *Evaluator) execStmt(stmt ast.Stmt) ast.Value {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return e.execBlock(s)
	case *ast.ExprStmt:
		e.evalExpr(s.Expression)
		return ast.Null()
	case *ast.LetStmt:
		return e.execLet(s)
	case *ast.FunctionStmt:
		return e.execFunctionDecl(s)
	case *ast.ReturnStmt:
		return e.execReturn(s)
	case *ast.IfStmt:
		return e.execIf(s)
	case *ast.WhileStmt:
		return e.execWhile(s)
	case *ast.PrintStmt:
		e.execPrint(s.Keyword, s.Value, false)
		return ast.Null()
	case *ast.PrintlnStmt:
		e.execPrint(s.Keyword, s.Value, true)
		return ast.Null()
	case *ast.BaiStmt:
		e.execBai(s)
		return ast.Null() // unreachable: execBai always exits
	case *ast.BreakStmt:
		return ast.Break()
	case *ast.ContinueStmt:
		return ast.Continue()
	default:
		panic("eval: unhandled statement node")
	}
}

// execBlock pushes a fresh frame, runs its statements in order, and stops
// at the first one that yields a control signal (Break, Continue, or a
// return-tagged Value), propagating it upward unchanged. It is While —
// not Block — that decides what a Break or Continue actually does; Block
// itself never swallows anything (§4.4, §4.7).
func (e *Evaluator) execBlock(block *ast.BlockStmt) ast.Value {
	e.env.Create()
	defer e.env.Destroy()

	for _, stmt := range block.Stmts {
		result := e.execStmt(stmt)
		if isControlSignal(result) {
			return result
		}
	}
	return ast.Null()
}

func isControlSignal(v ast.Value) bool {
	return v.Kind == ast.KindBreak || v.Kind == ast.KindContinue || v.IsReturn
}

// execLet evaluates the initializer and defines Name in the current
// frame. A missing initializer is a fatal "uninitialized let" (§4.4); a
// Function initializer is recorded as bound to Name so the call protocol
// (§4.6) knows which binding to refresh after each call.
func (e *Evaluator) execLet(s *ast.LetStmt) ast.Value {
	if s.Initializer == nil {
		e.fatalAt(s.Name, "uninitialized let: '%s' has no initializer", s.Name.Lexeme)
	}
	value := e.evalExpr(s.Initializer)
	if value.Kind == ast.KindFunction {
		value.Fn = value.Fn.BindVariableToken(s.Name)
	}
	e.env.Define(s.Name.Lexeme, value)
	return ast.Null()
}

// execFunctionDecl snapshots the current frame as the new function's
// closure and defines it under its own name, which also becomes its
// variable_token.
func (e *Evaluator) execFunctionDecl(s *ast.FunctionStmt) ast.Value {
	fn := &ast.Function{
		Kind:          ast.FuncUser,
		Name:          s.Name.Lexeme,
		Params:        s.Params,
		Body:          s.Body,
		Closure:       e.env.Snapshot(),
		VariableToken: s.Name,
	}
	e.env.Define(s.Name.Lexeme, ast.FunctionValue(fn))
	return ast.Null()
}

func (e *Evaluator) execReturn(s *ast.ReturnStmt) ast.Value {
	if s.Value == nil {
		return ast.Null().AsReturn()
	}
	return e.evalExpr(s.Value).AsReturn()
}

func (e *Evaluator) execIf(s *ast.IfStmt) ast.Value {
	cond := e.evalExpr(s.Condition)
	e.requireTruthyTyped(s.Keyword, cond)
	if cond.Truthy() {
		return e.execBlock(s.Then)
	}
	if s.Else != nil {
		return e.execStmt(s.Else)
	}
	return ast.Null()
}

// execWhile is where Break/Continue actually get their meaning: Break
// ends the loop, Continue re-tests the condition, anything else (plain
// Null, or a return-tagged Value) falls through — a return propagates
// straight up to the enclosing call.
func (e *Evaluator) execWhile(s *ast.WhileStmt) ast.Value {
	for {
		cond := e.evalExpr(s.Condition)
		e.requireTruthyTyped(s.Keyword, cond)
		if !cond.Truthy() {
			return ast.Null()
		}

		result := e.execBlock(s.Body)
		switch {
		case result.Kind == ast.KindBreak:
			return ast.Null()
		case result.Kind == ast.KindContinue:
			continue
		case result.IsReturn:
			return result
		}
	}
}

// requireTruthyTyped enforces §4.3's truthiness restriction: only Bool and
// Null are valid in a conditional position. tok anchors the diagnostic at
// the if/while keyword when v fails the check.
func (e *Evaluator) requireTruthyTyped(tok lexer.Token, v ast.Value) {
	if !v.IsTruthyTyped() {
		e.fatalAt(tok, "condition must be bool or null, got %s", v.TypeName())
	}
}

// execPrint renders v the way §4.4 specifies: a non-Array value prints
// its plain text; an Array prints "Tag(N) => [e0,e1,...]" using its first
// element's type tag and at most 5 elements, with " ..." appended when
// truncated. Printing an empty array has no element to take a tag from —
// per §9's guidance to make such "fell through to returning nothing"
// branches in the original a hard error instead, that is fatal here.
func (e *Evaluator) execPrint(keyword lexer.Token, expr ast.Expr, newline bool) {
	v := e.evalExpr(expr)
	var text string
	if v.Kind == ast.KindArray {
		if len(v.Arr) == 0 {
			e.fatalAt(keyword, "cannot print an empty array")
		}
		text = formatArrayForPrint(v.Arr)
	} else {
		text = v.String()
	}
	e.out.WriteString(text)
	if newline {
		e.out.WriteByte('\n')
	}
}

const maxArrayPrintElems = 5

// formatArrayForPrint mirrors the original interpreter's comma placement
// exactly: a comma follows every shown element except the very last
// element of the array itself, so a truncated array prints a trailing
// comma right before " ...".
func formatArrayForPrint(items []ast.Value) string {
	tag := items[0].TypeName()
	tag = strings.ToUpper(tag[:1]) + tag[1:]

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

// baiBanter maps Ari's five joke exit codes to the banter text printed
// instead of the literal value. Code "3" uses a substitute line rather
// than the original interpreter's (see DESIGN.md).
var baiBanter = map[string]string{
	"0": "",
	"1": "\nPoof",
	"2": "\nI lub Ariana",
	"3": "\nBye friend",
	"4": "\nStop messing around with this function",
}

func (e *Evaluator) execBai(s *ast.BaiStmt) {
	v := e.evalExpr(s.Value)
	text := v.String()
	if banter, ok := baiBanter[text]; ok {
		text = banter
	}
	e.out.WriteString(text)
	e.out.WriteByte('\n')
	e.out.Flush()
	Exit(0)
}
