// Package eval implements the expression and statement evaluators of §4.4
// and §4.5: a tree-walking interpreter over the ast package, operating on
// one shared scope.Stack per run (§5's "scope stack is owned by the
// evaluator and passed by mutable reference"). It supplies the two
// dependency-injection seams the lower packages declare:
// scope.TypeOfFunc (Evaluator.TypeOf) and prototype.ApplyFunc
// (Evaluator.Apply).
package eval

import (
	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/prototype"
	"github.com/ak-lang/ak/internal/scope"
	"github.com/ak-lang/ak/internal/types"
	"github.com/ak-lang/ak/internal/value"
)

// ModuleResolver resolves a dotted module path (§4.7) into a Module value.
// Supplied by internal/modloader, which depends on Evaluator to run a
// loaded file's top-level statements as a module body — injected here to
// avoid a package cycle.
type ModuleResolver func(ev *Evaluator, path []string) (*value.Module, error)

// Evaluator holds the one scope stack and prototype registry for a single
// program run.
type Evaluator struct {
	Stack   *scope.Stack
	Protos  *prototype.Registry
	Resolve ModuleResolver
}

// New builds an Evaluator over a fresh scope stack.
func New(protos *prototype.Registry, resolve ModuleResolver) *Evaluator {
	return &Evaluator{Stack: scope.New(), Protos: protos, Resolve: resolve}
}

// Run executes prog's statements in the evaluator's outermost frame.
func (ev *Evaluator) Run(prog *ast.Program) error {
	_, err := ev.runStatements(prog.Statements)
	return err
}

// TypeOf implements scope.TypeOfFunc: type_of for every Value variant,
// falling back to speculative evaluation only for *value.Func (§4.2).
func (ev *Evaluator) TypeOf(v value.Value) (types.Type, error) {
	if base, ok := value.BaseTypeOf(v); ok {
		return base, nil
	}
	fn, ok := v.(*value.Func)
	if !ok {
		return nil, akerr.Type("cannot determine the type of %s", v.Kind())
	}
	return ev.typeOfFunc(fn)
}

// Apply implements prototype.ApplyFunc: invoke any callable Value.
func (ev *Evaluator) Apply(fn value.Value, args []value.Value) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Func:
		return ev.callFunc(f, args)
	case *value.BuiltInFn:
		return f.Fn(args)
	case *value.BuiltInMethod:
		return f.Fn(f.Receiver, args)
	}
	return nil, akerr.Type("%s is not callable", fn.Kind())
}

// typeOfFunc computes Fn(params, ret) for a Func value. Per §9's
// recommendation, this is a pure structural check when a return type is
// annotated (no body evaluation at all); only an unannotated return type
// falls back to speculative evaluation with zero-valued parameters, which
// may run real body statements (documented in DESIGN.md).
func (ev *Evaluator) typeOfFunc(fn *value.Func) (types.Type, error) {
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		t, err := ev.resolveAstType(p.Type)
		if err != nil {
			return nil, err
		}
		params[i] = t
	}
	if fn.Ret != nil {
		ret, err := ev.resolveAstType(fn.Ret)
		if err != nil {
			return nil, err
		}
		return types.Fn{Params: params, Ret: ret}, nil
	}
	ret, err := ev.inferReturnType(fn, params)
	if err != nil {
		return nil, err
	}
	return types.Fn{Params: params, Ret: ret}, nil
}

// inferReturnType speculatively runs fn's body with zero-valued parameters
// to discover its Return escape's type, per §9's open question on
// speculative function-body evaluation.
func (ev *Evaluator) inferReturnType(fn *value.Func, paramTypes []types.Type) (types.Type, error) {
	ev.Stack.Push()
	defer ev.Stack.Pop()
	for i, p := range fn.Params {
		zero := zeroValue(paramTypes[i])
		if err := ev.Stack.Declare(p.Name, zero, nil, true, ev.TypeOf); err != nil {
			return nil, err
		}
	}
	esc, err := ev.runStatements(fn.Body.Statements)
	if err != nil {
		return nil, err
	}
	if esc.Kind == EscapeReturn {
		return ev.TypeOf(esc.Value)
	}
	return types.Null{}, nil
}

func zeroValue(t types.Type) value.Value {
	switch tt := t.(type) {
	case types.Int:
		return value.Int{}
	case types.Float:
		return value.Float{}
	case types.Bool:
		return value.Bool{}
	case types.String:
		return value.Str{}
	case types.List:
		return value.List{ElemHint: tt.Elem}
	case types.Tuple:
		elems := make([]value.Value, len(tt.Elems))
		for i, e := range tt.Elems {
			elems[i] = zeroValue(e)
		}
		return value.Tuple{Elems: elems}
	case types.Object:
		return value.NewObject()
	case types.Module:
		return value.NewModule(map[string]value.Value{})
	case types.Fn:
		return &value.BuiltInFn{Name: "<speculative>", Fn: func([]value.Value) (value.Value, error) {
			return value.Null{}, nil
		}}
	default:
		return value.Null{}
	}
}

// resolveAstType converts a parsed type expression to the closed type
// algebra and resolves any aliases against the current scope.
func (ev *Evaluator) resolveAstType(t ast.Type) (types.Type, error) {
	if t == nil {
		return nil, nil
	}
	return ev.Stack.ResolveType(astTypeToType(t))
}

func astTypeToType(t ast.Type) types.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		switch tt.Name {
		case "null":
			return types.Null{}
		case "int":
			return types.Int{}
		case "float":
			return types.Float{}
		case "bool":
			return types.Bool{}
		case "string":
			return types.String{}
		case "object":
			return types.Object{}
		case "module":
			return types.Module{}
		default:
			return types.Alias{Name: tt.Name}
		}
	case *ast.ListType:
		return types.List{Elem: astTypeToType(tt.Elem)}
	case *ast.TupleType:
		elems := make([]types.Type, len(tt.Elems))
		for i, e := range tt.Elems {
			elems[i] = astTypeToType(e)
		}
		return types.Tuple{Elems: elems}
	case *ast.FnType:
		params := make([]types.Type, len(tt.Params))
		for i, p := range tt.Params {
			params[i] = astTypeToType(p)
		}
		var ret types.Type
		if tt.Ret != nil {
			ret = astTypeToType(tt.Ret)
		}
		return types.Fn{Params: params, Ret: ret}
	}
	return types.Null{}
}
