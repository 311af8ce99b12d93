// Package value implements the closed set of runtime values (§3) and the
// deterministic arithmetic/comparison/display operations over them (§4.2):
// one small Go type per variant, each implementing a shared Value
// interface.
package value

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/types"
)

// Value is implemented by every runtime value variant.
type Value interface {
	// Kind is the prototype-dispatch "simple name" (GLOSSARY).
	Kind() string
	// Display is the canonical textual form (§4.2).
	Display() string
}

// Null is the unit value.
type Null struct{}

func (Null) Kind() string    { return "null" }
func (Null) Display() string { return "null" }

// Int is a 32-bit signed integer value.
type Int struct{ Val int32 }

func (Int) Kind() string      { return "int" }
func (i Int) Display() string { return strconv.FormatInt(int64(i.Val), 10) }

// Float is a 32-bit IEEE-754 value.
type Float struct{ Val float32 }

func (Float) Kind() string { return "float" }
func (f Float) Display() string {
	if math.IsInf(float64(f.Val), 1) {
		return "inf"
	}
	if math.IsInf(float64(f.Val), -1) {
		return "-inf"
	}
	return strconv.FormatFloat(float64(f.Val), 'g', -1, 32)
}

// Bool is a boolean value.
type Bool struct{ Val bool }

func (Bool) Kind() string { return "bool" }
func (b Bool) Display() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Str is a UTF-8 string value, indexed by Unicode scalar.
type Str struct{ Val string }

func (Str) Kind() string      { return "string" }
func (s Str) Display() string { return s.Val }

// List is an ordered, homogeneously-typed sequence of values. ElemHint
// carries the declared element type when Elems is empty (type_of an empty
// list cannot be inferred from its contents).
type List struct {
	Elems    []Value
	ElemHint types.Type
}

func (List) Kind() string { return "list" }
func (l List) Display() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.Display()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tuple is a fixed-arity, heterogeneous sequence of values.
type Tuple struct{ Elems []Value }

func (Tuple) Kind() string { return "tuple" }
func (t Tuple) Display() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.Display()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Object is an insertion-ordered sequence of unique key/value pairs.
type Object struct {
	Keys []string
	Vals map[string]Value
}

func NewObject() *Object {
	return &Object{Vals: make(map[string]Value)}
}

func (o *Object) Kind() string { return "object" }
func (o *Object) Display() string {
	if len(o.Keys) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, k := range o.Keys {
		sb.WriteString("\t")
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(o.Vals[k].Display())
		sb.WriteString(",\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// Has reports whether key is already present.
func (o *Object) Has(key string) bool {
	_, ok := o.Vals[key]
	return ok
}

// With returns a shallow copy of o with key set to v (append-or-replace).
// Matches §4.3/§9: object methods return new values, never mutate.
func (o *Object) With(key string, v Value) *Object {
	next := &Object{Vals: make(map[string]Value, len(o.Vals)+1)}
	next.Keys = append(next.Keys, o.Keys...)
	for k, vv := range o.Vals {
		next.Vals[k] = vv
	}
	if !next.Has(key) {
		next.Keys = append(next.Keys, key)
	}
	next.Vals[key] = v
	return next
}

// Without returns a shallow copy of o with key removed.
func (o *Object) Without(key string) *Object {
	next := &Object{Vals: make(map[string]Value, len(o.Vals))}
	for _, k := range o.Keys {
		if k == key {
			continue
		}
		next.Keys = append(next.Keys, k)
		next.Vals[k] = o.Vals[k]
	}
	return next
}

// Module is a read-only, sorted name->value namespace.
type Module struct {
	Names []string
	Vals  map[string]Value
}

func NewModule(vals map[string]Value) *Module {
	names := make([]string, 0, len(vals))
	for k := range vals {
		names = append(names, k)
	}
	sort.Strings(names)
	return &Module{Names: names, Vals: vals}
}

func (*Module) Kind() string    { return "module" }
func (*Module) Display() string { return "module" }

// Func is a user-defined function value: parameters, optional declared
// return type, and a body. Per §9, functions carry their definition, not a
// captured environment — they resolve free names against the caller's
// dynamic scope chain at call time.
type Func struct {
	Params []ast.Arg
	Ret    ast.Type
	Body   *ast.Block
}

func (*Func) Kind() string    { return "function" }
func (*Func) Display() string { return "function" }

// BuiltInFn is a native free function.
type BuiltInFn struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (*BuiltInFn) Kind() string    { return "function" }
func (*BuiltInFn) Display() string { return "function" }

// BuiltInMethod is a native prototype method. Receiver is nil for the
// unbound form stored in the prototype registry; method lookup produces a
// bound copy pairing Fn with a concrete Receiver.
type BuiltInMethod struct {
	Name     string
	Receiver Value
	Fn       func(recv Value, args []Value) (Value, error)
}

func (*BuiltInMethod) Kind() string    { return "function" }
func (*BuiltInMethod) Display() string { return "function" }

// Bind returns a copy of m bound to recv.
func (m *BuiltInMethod) Bind(recv Value) *BuiltInMethod {
	return &BuiltInMethod{Name: m.Name, Receiver: recv, Fn: m.Fn}
}

// Type is a first-class type-alias binding: a name plus the structural type
// it resolves to.
type Type struct {
	Name string
	Of   types.Type
}

func (*Type) Kind() string    { return "type" }
func (t *Type) Display() string { return t.Name }
