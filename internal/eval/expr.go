package eval

import (
	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/types"
	"github.com/ak-lang/ak/internal/value"
)

func (ev *Evaluator) evalExpr(e ast.Expression) (value.Value, error) {
	switch ex := e.(type) {
	case *ast.NullLit:
		return value.Null{}, nil
	case *ast.IntLit:
		return value.Int{Val: ex.Value}, nil
	case *ast.FloatLit:
		return value.Float{Val: ex.Value}, nil
	case *ast.StringLit:
		return value.Str{Val: ex.Value}, nil
	case *ast.BoolLit:
		return value.Bool{Val: ex.Value}, nil
	case *ast.ListLit:
		elems := make([]value.Value, len(ex.Elems))
		for i, el := range ex.Elems {
			v, err := ev.evalExpr(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.List{Elems: elems}, nil
	case *ast.TupleLit:
		elems := make([]value.Value, len(ex.Elems))
		for i, el := range ex.Elems {
			v, err := ev.evalExpr(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.Tuple{Elems: elems}, nil
	case *ast.ObjectLit:
		obj := value.NewObject()
		for _, f := range ex.Fields {
			v, err := ev.evalExpr(f.Value)
			if err != nil {
				return nil, err
			}
			obj = obj.With(f.Name, v)
		}
		return obj, nil
	case *ast.Identifier:
		v, ok := ev.Stack.Get(ex.Name)
		if !ok {
			return nil, akerr.Name("%q is not defined", ex.Name)
		}
		return v, nil
	case *ast.Call:
		return ev.evalCall(ex)
	case *ast.MethodCall:
		return ev.evalMethodCall(ex)
	case *ast.ModuleCall:
		return ev.evalModuleCall(ex)
	case *ast.Index:
		obj, err := ev.evalExpr(ex.Expr)
		if err != nil {
			return nil, err
		}
		loc, err := ev.evalExpr(ex.Loc)
		if err != nil {
			return nil, err
		}
		return value.Index(obj, loc)
	case *ast.BinaryOp:
		return ev.evalBinaryOp(ex)
	case *ast.UnaryOp:
		return ev.evalUnaryOp(ex)
	case *ast.FnExpr:
		return &value.Func{Params: ex.Params, Ret: ex.Ret, Body: ex.Body}, nil
	case *ast.ModuleExpr:
		return ev.EvalModuleBody(ex.Body)
	case *ast.IfExpr:
		esc, err := ev.evalIfBranches(ex.Branches, ex.Else)
		if err != nil {
			return nil, err
		}
		if esc.Kind == EscapeReturn {
			return esc.Value, nil
		}
		return value.Null{}, nil
	case *ast.RangeExpr:
		from, err := ev.evalExpr(ex.From)
		if err != nil {
			return nil, err
		}
		to, err := ev.evalExpr(ex.To)
		if err != nil {
			return nil, err
		}
		return value.Range(from, to)
	}
	return nil, akerr.Type("unhandled expression %T", e)
}

func (ev *Evaluator) evalCall(ex *ast.Call) (value.Value, error) {
	callee, err := ev.evalExpr(ex.Callee)
	if err != nil {
		return nil, err
	}
	args, err := ev.evalArgs(ex.Args)
	if err != nil {
		return nil, err
	}
	switch fn := callee.(type) {
	case *value.Func:
		return ev.callFunc(fn, args)
	case *value.BuiltInFn:
		return fn.Fn(args)
	case *value.BuiltInMethod:
		return fn.Fn(fn.Receiver, args)
	}
	return nil, akerr.Type("%s is not callable", callee.Kind())
}

func (ev *Evaluator) evalArgs(exprs []ast.Expression) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, a := range exprs {
		v, err := ev.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalMethodCall implements §4.4's MethodCall(obj, callee) rule: a bare
// identifier callee is property/zero-arg-method access; a Call callee
// invokes a looked-up method (or a callable Object field) with its
// evaluated arguments.
func (ev *Evaluator) evalMethodCall(ex *ast.MethodCall) (value.Value, error) {
	recv, err := ev.evalExpr(ex.Obj)
	if err != nil {
		return nil, err
	}
	switch callee := ex.Callee.(type) {
	case *ast.Identifier:
		looked, err := ev.Protos.Lookup(recv, callee.Name)
		if err != nil {
			return nil, err
		}
		if m, ok := looked.(*value.BuiltInMethod); ok {
			return m.Fn(m.Receiver, nil)
		}
		return looked, nil
	case *ast.Call:
		name, ok := callee.Callee.(*ast.Identifier)
		if !ok {
			return nil, akerr.Type("method call target must be a name")
		}
		looked, err := ev.Protos.Lookup(recv, name.Name)
		if err != nil {
			return nil, err
		}
		args, err := ev.evalArgs(callee.Args)
		if err != nil {
			return nil, err
		}
		if m, ok := looked.(*value.BuiltInMethod); ok {
			return m.Fn(m.Receiver, args)
		}
		return ev.Apply(looked, args)
	}
	return nil, akerr.Type("unsupported method-call callee %T", ex.Callee)
}

func (ev *Evaluator) evalModuleCall(ex *ast.ModuleCall) (value.Value, error) {
	if ev.Resolve == nil {
		return nil, akerr.Import("module resolution is not configured")
	}
	mod, err := ev.Resolve(ev, ex.Path)
	if err != nil {
		return nil, err
	}
	ev.Stack.Push()
	defer ev.Stack.Pop()
	for _, name := range mod.Names {
		if err := ev.Stack.Declare(name, mod.Vals[name], nil, false, ev.TypeOf); err != nil {
			return nil, err
		}
	}
	return ev.evalExpr(ex.Expr)
}

func (ev *Evaluator) evalUnaryOp(ex *ast.UnaryOp) (value.Value, error) {
	v, err := ev.evalExpr(ex.Expr)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case ast.UOpNot:
		return value.Not(v)
	case ast.UOpTypeof:
		t, err := ev.TypeOf(v)
		if err != nil {
			return nil, err
		}
		return value.Str{Val: types.SimpleName(t)}, nil
	}
	return nil, akerr.Type("unknown unary operator %s", ex.Op)
}

// evalBinaryOp implements §4.2's operator rules. Per §9's resolved open
// question, && and || short-circuit: the right operand is not evaluated
// (and so cannot fail, even on an undefined name) once the left operand
// already determines the result.
func (ev *Evaluator) evalBinaryOp(ex *ast.BinaryOp) (value.Value, error) {
	if ex.Op == ast.OpAnd || ex.Op == ast.OpOr {
		return ev.evalLogical(ex)
	}
	left, err := ev.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case ast.OpAdd:
		return value.Add(left, right)
	case ast.OpSub:
		return value.Sub(left, right)
	case ast.OpMul:
		return value.Mul(left, right)
	case ast.OpDiv:
		return value.Div(left, right)
	case ast.OpEq:
		return value.Bool{Val: value.Equals(left, right)}, nil
	case ast.OpNeq:
		return value.Bool{Val: !value.Equals(left, right)}, nil
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		ord, err := value.Compare(left, right)
		if err != nil {
			return nil, err
		}
		return value.Bool{Val: compareMatches(ex.Op, ord)}, nil
	}
	return nil, akerr.Type("unknown binary operator %s", ex.Op)
}

func compareMatches(op ast.Op, ord value.Ordering) bool {
	switch op {
	case ast.OpLt:
		return ord == value.Less
	case ast.OpLe:
		return ord != value.Greater
	case ast.OpGt:
		return ord == value.Greater
	case ast.OpGe:
		return ord != value.Less
	}
	return false
}

func (ev *Evaluator) evalLogical(ex *ast.BinaryOp) (value.Value, error) {
	left, err := ev.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, akerr.Type("operand of %s must be bool, got %s", ex.Op, left.Kind())
	}
	if ex.Op == ast.OpAnd && !lb.Val {
		return value.Bool{Val: false}, nil
	}
	if ex.Op == ast.OpOr && lb.Val {
		return value.Bool{Val: true}, nil
	}
	right, err := ev.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, akerr.Type("operand of %s must be bool, got %s", ex.Op, right.Kind())
	}
	return value.Bool{Val: rb.Val}, nil
}
