package eval

import (
	"ari-lang/ast"
	"ari-lang/lexer"
)

// evalCall evaluates the callee and arguments, then dispatches through
// Call — the same entry point builtins reach through the Runtime
// interface when they invoke an Ari function value themselves (map,
// filter, reduce).
func (e *Evaluator) evalCall(x *ast.CallExpr) ast.Value {
	callee := e.evalExpr(x.Callee)
	args := make([]ast.Value, len(x.Args))
	for i, a := range x.Args {
		args[i] = e.evalExpr(a)
	}
	return e.Call(x.Paren, callee, args)
}

// Call implements builtin.Runtime: dispatch a callable Value (user or
// native) with already-evaluated arguments, enforcing arity first.
func (e *Evaluator) Call(call lexer.Token, fn ast.Value, args []ast.Value) ast.Value {
	if fn.Kind != ast.KindFunction {
		e.fatalAt(call, "call target is not a function, got %s", fn.TypeName())
	}
	f := fn.Fn

	switch f.Kind {
	case ast.FuncNative:
		if f.Arity >= 0 && len(args) != f.Arity {
			e.fatalAt(call, "%s expects %d argument(s), got %d", f.Name, f.Arity, len(args))
		}
		return f.Native(call, args)
	case ast.FuncUser:
		if len(args) != len(f.Params) {
			e.fatalAt(call, "%s expects %d argument(s), got %d", describeFunc(f), len(f.Params), len(args))
		}
		return e.callUser(call, f, args)
	default:
		panic("eval: unhandled function kind")
	}
}

func describeFunc(f *ast.Function) string {
	if f.Name != "" {
		return f.Name
	}
	return "<anonymous function>"
}

// callUser implements §4.6's call protocol exactly: push a *copy* of the
// closure (never the live map — mutations inside the call must not bleed
// into other bindings still holding the pre-call Function value), push an
// argument frame, run the body, snapshot the post-call closure frame, and
// rebind the function's own binding (if any) to a Function carrying that
// fresh snapshot. Recursion works because the declaration already defined
// the name before the body can reach a call to it.
func (e *Evaluator) callUser(call lexer.Token, f *ast.Function, args []ast.Value) ast.Value {
	e.env.PushFrame(cloneFrame(f.Closure))
	e.env.Create()
	for i, param := range f.Params {
		e.env.Define(param.Lexeme, args[i])
	}

	result := e.execBlock(f.Body)

	e.env.Destroy() // pop the argument frame
	newClosure := e.env.Snapshot()
	e.env.Destroy() // pop the closure frame

	if f.HasVariableToken() {
		rebound := f.WithClosure(newClosure, f.VariableToken)
		e.env.Assign(f.VariableToken.Lexeme, ast.FunctionValue(rebound))
	}

	result.IsReturn = false
	return result
}

func cloneFrame(f ast.Frame) ast.Frame {
	clone := make(ast.Frame, len(f))
	for k, v := range f {
		clone[k] = v
	}
	return clone
}
