// Package prototype implements the prototype registry of §4.3: a mapping
// from simple type name to a table of method name -> unbound BuiltInMethod,
// consumed by method-call evaluation. Method lookup additionally falls back
// to Object field access, so object property access and method calls share
// syntax.
package prototype

import (
	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/value"
)

// ApplyFunc invokes a callable Value (Func/BuiltInFn/BuiltInMethod) with
// args, used by higher-order methods like list.find that must call back
// into user code. Supplied by the eval package, which owns call semantics.
type ApplyFunc func(fn value.Value, args []value.Value) (value.Value, error)

// Registry is the prototype table: simple type name -> method name ->
// unbound method.
type Registry struct {
	tables map[string]map[string]*value.BuiltInMethod
}

func newRegistry() *Registry {
	return &Registry{tables: make(map[string]map[string]*value.BuiltInMethod)}
}

func (r *Registry) register(typeName, methodName string, fn func(recv value.Value, args []value.Value) (value.Value, error)) {
	table, ok := r.tables[typeName]
	if !ok {
		table = make(map[string]*value.BuiltInMethod)
		r.tables[typeName] = table
	}
	table[methodName] = &value.BuiltInMethod{Name: methodName, Fn: fn}
}

// Lookup implements §4.3's method-call algorithm:
//  1. compute the receiver's simple type name
//  2. look up the method table; if it contains name, return a bound method
//  3. if the receiver is an Object or a Module, fall back to field/entry
//     access
//  4. otherwise fail with NameError
func (r *Registry) Lookup(recv value.Value, name string) (value.Value, error) {
	simple := recv.Kind()
	if table, ok := r.tables[simple]; ok {
		if m, ok := table[name]; ok {
			return m.Bind(recv), nil
		}
	}
	if obj, ok := recv.(*value.Object); ok {
		if v, ok := obj.Vals[name]; ok {
			return v, nil
		}
	}
	if mod, ok := recv.(*value.Module); ok {
		if v, ok := mod.Vals[name]; ok {
			return v, nil
		}
	}
	return nil, akerr.Name("%q not in prototype", name)
}
