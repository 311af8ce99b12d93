package eval

import (
	"strings"

	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/value"
)

// runStatements executes stmts in the current top frame, stopping at the
// first non-None escape (the Block evaluation rule, §4.5).
func (ev *Evaluator) runStatements(stmts []ast.Statement) (Escape, error) {
	for _, s := range stmts {
		esc, err := ev.evalStmt(s)
		if err != nil {
			return noEscape, err
		}
		if esc.Kind != EscapeNone {
			return esc, nil
		}
	}
	return noEscape, nil
}

// evalBlock pushes a fresh frame, runs the block's statements, and pops it.
func (ev *Evaluator) evalBlock(b *ast.Block) (Escape, error) {
	ev.Stack.Push()
	defer ev.Stack.Pop()
	return ev.runStatements(b.Statements)
}

// callFunc implements the Call(params, body) rule of §4.4: one frame holds
// both the declared parameters and the body's own statements (no closure
// capture — free names resolve against whatever is on the stack at call
// time, i.e. the caller's dynamic scope chain).
func (ev *Evaluator) callFunc(fn *value.Func, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, akerr.Arity("function expects %d argument(s), got %d", len(fn.Params), len(args))
	}
	ev.Stack.Push()
	defer ev.Stack.Pop()
	for i, p := range fn.Params {
		declType, err := ev.resolveAstType(p.Type)
		if err != nil {
			return nil, err
		}
		if err := ev.Stack.Declare(p.Name, args[i], declType, true, ev.TypeOf); err != nil {
			return nil, err
		}
	}
	esc, err := ev.runStatements(fn.Body.Statements)
	if err != nil {
		return nil, err
	}
	if esc.Kind == EscapeReturn {
		return esc.Value, nil
	}
	return value.Null{}, nil
}

func (ev *Evaluator) evalStmt(s ast.Statement) (Escape, error) {
	switch st := s.(type) {
	case *ast.LetStatement:
		return noEscape, ev.evalLetConst(st.Name, st.Type, st.Expr, true)
	case *ast.ConstStatement:
		return noEscape, ev.evalLetConst(st.Name, st.Type, st.Expr, false)
	case *ast.ExpressionStatement:
		_, err := ev.evalExpr(st.Expr)
		return noEscape, err
	case *ast.AssignStatement:
		v, err := ev.evalExpr(st.Expr)
		if err != nil {
			return noEscape, err
		}
		return noEscape, ev.Stack.Assign(st.Name, v, ev.TypeOf)
	case *ast.ImportStatement:
		return noEscape, ev.evalImport(st)
	case *ast.IfStatement:
		return ev.evalIfBranches(st.Branches, st.Else)
	case *ast.ReturnStatement:
		v, err := ev.evalExpr(st.Expr)
		if err != nil {
			return noEscape, err
		}
		return Escape{Kind: EscapeReturn, Value: v}, nil
	case *ast.FnStatement:
		fn := &value.Func{Params: st.Params, Ret: st.Ret, Body: st.Body}
		return noEscape, ev.Stack.Declare(st.Name, fn, nil, false, ev.TypeOf)
	case *ast.ModuleStatement:
		mod, err := ev.EvalModuleBody(st.Body)
		if err != nil {
			return noEscape, err
		}
		return noEscape, ev.Stack.Declare(st.Name, mod, nil, false, ev.TypeOf)
	case *ast.ForStatement:
		return ev.evalFor(st)
	case *ast.WhileStatement:
		return ev.evalWhile(st)
	case *ast.TypeStatement:
		return noEscape, ev.Stack.DeclareAlias(st.Name, astTypeToType(st.Type))
	case *ast.BreakStatement:
		return Escape{Kind: EscapeBreak}, nil
	case *ast.ContinueStatement:
		return Escape{Kind: EscapeContinue}, nil
	}
	return noEscape, akerr.Type("unhandled statement %T", s)
}

func (ev *Evaluator) evalLetConst(name string, declared ast.Type, expr ast.Expression, mutable bool) error {
	v, err := ev.evalExpr(expr)
	if err != nil {
		return err
	}
	declType, err := ev.resolveAstType(declared)
	if err != nil {
		return err
	}
	return ev.Stack.Declare(name, v, declType, mutable, ev.TypeOf)
}

func (ev *Evaluator) evalImport(st *ast.ImportStatement) error {
	if ev.Resolve == nil {
		return akerr.Import("module resolution is not configured")
	}
	mod, err := ev.Resolve(ev, st.Path)
	if err != nil {
		return err
	}
	if st.Items == nil {
		last := st.Path[len(st.Path)-1]
		return ev.Stack.Declare(last, mod, nil, false, ev.TypeOf)
	}
	for _, item := range st.Items {
		v, ok := mod.Vals[item]
		if !ok {
			return akerr.Name("%q not in module %s", item, strings.Join(st.Path, "."))
		}
		if err := ev.Stack.Declare(item, v, nil, false, ev.TypeOf); err != nil {
			return err
		}
	}
	return nil
}

// evalIfBranches implements the shared If/ElseIf/Else control flow used by
// both the statement and expression forms (§4.4/§4.5): the first Bool-true
// branch's body is evaluated and its escape propagated; if none match, the
// else block (if any) runs.
func (ev *Evaluator) evalIfBranches(branches []ast.Branch, elseBlock *ast.Block) (Escape, error) {
	for _, br := range branches {
		cond, err := ev.evalExpr(br.Cond)
		if err != nil {
			return noEscape, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return noEscape, akerr.Type("if condition must be bool, got %s", cond.Kind())
		}
		if b.Val {
			return ev.evalBlock(br.Body)
		}
	}
	if elseBlock != nil {
		return ev.evalBlock(elseBlock)
	}
	return noEscape, nil
}

func (ev *Evaluator) evalFor(st *ast.ForStatement) (Escape, error) {
	iter, err := ev.evalExpr(st.Iter)
	if err != nil {
		return noEscape, err
	}
	var elems []value.Value
	switch it := iter.(type) {
	case value.List:
		elems = it.Elems
	case value.Tuple:
		elems = it.Elems
	default:
		return noEscape, akerr.Type("for-loop source must be list or tuple, got %s", iter.Kind())
	}
	for i, elem := range elems {
		ev.Stack.Push()
		declErr := ev.Stack.Declare(st.Name, elem, nil, false, ev.TypeOf)
		if declErr == nil {
			declErr = ev.Stack.Declare("index", value.Int{Val: int32(i)}, nil, false, ev.TypeOf)
		}
		if declErr != nil {
			ev.Stack.Pop()
			return noEscape, declErr
		}
		esc, err := ev.evalBlock(st.Body)
		ev.Stack.Pop()
		if err != nil {
			return noEscape, err
		}
		switch esc.Kind {
		case EscapeBreak:
			return noEscape, nil
		case EscapeReturn:
			return esc, nil
		}
	}
	return noEscape, nil
}

func (ev *Evaluator) evalWhile(st *ast.WhileStatement) (Escape, error) {
	for {
		cond, err := ev.evalExpr(st.Cond)
		if err != nil {
			return noEscape, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return noEscape, akerr.Type("while condition must be bool, got %s", cond.Kind())
		}
		if !b.Val {
			return noEscape, nil
		}
		esc, err := ev.evalBlock(st.Body)
		if err != nil {
			return noEscape, err
		}
		switch esc.Kind {
		case EscapeBreak:
			return noEscape, nil
		case EscapeReturn:
			return esc, nil
		}
	}
}

// EvalModuleBody implements §4.6: only Const/Let/Fn/nested Module
// statements are accepted, evaluated inside one frame so recursive
// self-references resolve, then the frame's bindings become the Module's
// sorted name->value map.
func (ev *Evaluator) EvalModuleBody(body *ast.Block) (*value.Module, error) {
	ev.Stack.Push()
	defer ev.Stack.Pop()
	for _, s := range body.Statements {
		switch s.(type) {
		case *ast.ConstStatement, *ast.LetStatement, *ast.FnStatement, *ast.ModuleStatement:
			if _, err := ev.evalStmt(s); err != nil {
				return nil, err
			}
		default:
			return nil, akerr.Domain("module bodies may only contain const, let, fn, and nested module declarations")
		}
	}
	return value.NewModule(ev.Stack.TopFrameValues()), nil
}
