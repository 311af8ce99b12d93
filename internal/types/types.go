// Package types implements the closed type algebra of §3: a Builtin type
// (Null, Int, Float, Bool, String, List, Tuple, Fn) or an Alias that
// resolves, through the scope stack, to another Type.
//
// §3 does not name a Builtin constructor for Object or Module values, yet
// §3's invariants require type_of to be total ("every value has a
// canonical type_of"). We extend the Builtin set with two nominal,
// unparameterized constructors — Object and Module — to make type_of total
// without disturbing any of the List/Tuple/Fn structural-equality rules the
// specification does define. See DESIGN.md.
package types

import "strings"

// Type is any member of the closed type algebra.
type Type interface {
	String() string
	kindTag() string
}

// Simple nominal (unparameterized) builtin types.
type (
	Null   struct{}
	Int    struct{}
	Float  struct{}
	Bool   struct{}
	String struct{}
	Object struct{}
	Module struct{}
)

func (Null) String() string   { return "null" }
func (Int) String() string    { return "int" }
func (Float) String() string  { return "float" }
func (Bool) String() string   { return "bool" }
func (String) String() string { return "string" }
func (Object) String() string { return "object" }
func (Module) String() string { return "module" }

func (Null) kindTag() string   { return "null" }
func (Int) kindTag() string    { return "int" }
func (Float) kindTag() string  { return "float" }
func (Bool) kindTag() string   { return "bool" }
func (String) kindTag() string { return "string" }
func (Object) kindTag() string { return "object" }
func (Module) kindTag() string { return "module" }

// List is `List(Type)`.
type List struct{ Elem Type }

func (l List) String() string { return "[" + l.Elem.String() + "]" }
func (List) kindTag() string  { return "list" }

// Tuple is `Tuple([Type])`.
type Tuple struct{ Elems []Type }

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (Tuple) kindTag() string { return "tuple" }

// Fn is `Fn([Type], Type)`.
type Fn struct {
	Params []Type
	Ret    Type
}

func (f Fn) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "null"
	if f.Ret != nil {
		ret = f.Ret.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
func (Fn) kindTag() string { return "function" }

// Alias is a user-declared name that must be resolved through the scope
// stack before structural comparison.
type Alias struct{ Name string }

func (a Alias) String() string { return a.Name }
func (Alias) kindTag() string  { return "alias" }

// Equal performs structural equality; both sides must already be alias-free
// (resolved via scope.Stack.ResolveType) before calling this.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case List:
		bv, ok := b.(List)
		return ok && Equal(av.Elem, bv.Elem)
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Fn:
		bv, ok := b.(Fn)
		if !ok || len(av.Params) != len(bv.Params) {
			return false
		}
		for i := range av.Params {
			if !Equal(av.Params[i], bv.Params[i]) {
				return false
			}
		}
		return Equal(av.Ret, bv.Ret)
	default:
		return a.kindTag() == b.kindTag()
	}
}

// SimpleName returns the one-word prototype-dispatch tag for a resolved
// (alias-free) type, per the GLOSSARY's "Simple name".
func SimpleName(t Type) string {
	return t.kindTag()
}
