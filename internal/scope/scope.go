// Package scope implements the scope stack of §4.1: a sequence of lexical
// frames, each a string-keyed map to (value, mutability, declared type),
// pushed on block/function/for/module entry and popped on exit, restructured
// as an explicit slice-of-frames stack rather than a parent-linked chain.
package scope

import (
	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/types"
	"github.com/ak-lang/ak/internal/value"
)

// TypeOfFunc computes type_of(v). Every variant except *value.Func can be
// answered without evaluation (value.BaseTypeOf); the eval package supplies
// the full implementation, including the speculative check for *value.Func.
type TypeOfFunc func(value.Value) (types.Type, error)

type binding struct {
	val          value.Value
	mutable      bool
	declaredType types.Type
}

// Frame is one lexical layer: a map from name to binding.
type Frame struct {
	store map[string]*binding
}

func newFrame() *Frame {
	return &Frame{store: make(map[string]*binding)}
}

// Stack is the scope stack: frames ordered outermost-first.
type Stack struct {
	frames []*Frame
}

// New creates a Stack with a single outermost frame.
func New() *Stack {
	return &Stack{frames: []*Frame{newFrame()}}
}

// Push starts a new frame (block/function/for/module entry).
func (s *Stack) Push() {
	s.frames = append(s.frames, newFrame())
}

// Pop discards the top frame; its bindings drop (§3 Lifecycle).
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of frames currently on the stack.
func (s *Stack) Depth() int { return len(s.frames) }

func (s *Stack) top() *Frame { return s.frames[len(s.frames)-1] }

var reservedObjectNames = map[string]bool{
	"get": true, "set": true, "keys": true, "values": true,
	"remove": true, "contains": true, "clear": true,
}

// Declare inserts name into the top frame. declaredType may be nil, in
// which case the binding's type defaults to type_of(v).
func (s *Stack) Declare(name string, v value.Value, declaredType types.Type, mutable bool, typeOf TypeOfFunc) error {
	top := s.top()
	if _, exists := top.store[name]; exists {
		return akerr.Name("%q is already declared in this scope", name)
	}

	actual, err := typeOf(v)
	if err != nil {
		return err
	}

	want := actual
	if declaredType != nil {
		resolved, err := s.ResolveType(declaredType)
		if err != nil {
			return err
		}
		if !types.Equal(actual, resolved) {
			return akerr.Type("cannot declare %q: expected %s, got %s", name, resolved, actual)
		}
		want = resolved
	}

	if obj, ok := v.(*value.Object); ok {
		for _, k := range obj.Keys {
			if reservedObjectNames[k] {
				return akerr.Type("object key %q collides with a reserved prototype method", k)
			}
		}
	}
	if lst, ok := v.(value.List); ok {
		if err := checkHomogeneous(lst, typeOf); err != nil {
			return err
		}
	}

	top.store[name] = &binding{val: v, mutable: mutable, declaredType: want}
	return nil
}

func checkHomogeneous(lst value.List, typeOf TypeOfFunc) error {
	if len(lst.Elems) == 0 {
		return nil
	}
	first, err := typeOf(lst.Elems[0])
	if err != nil {
		return err
	}
	for _, e := range lst.Elems[1:] {
		t, err := typeOf(e)
		if err != nil {
			return err
		}
		if !types.Equal(first, t) {
			return akerr.Type("list elements must share one type: %s vs %s", first, t)
		}
	}
	return nil
}

// Assign reassigns an already-declared name in the nearest frame that
// contains it.
func (s *Stack) Assign(name string, v value.Value, typeOf TypeOfFunc) error {
	for i := len(s.frames) - 1; i >= 0; i-- {
		b, ok := s.frames[i].store[name]
		if !ok {
			continue
		}
		if !b.mutable {
			return akerr.Immutable("cannot assign to immutable binding %q", name)
		}
		actual, err := typeOf(v)
		if err != nil {
			return err
		}
		if !types.Equal(actual, b.declaredType) {
			return akerr.Type("cannot assign %s to %q (declared %s)", actual, name, b.declaredType)
		}
		b.val = v
		return nil
	}
	return akerr.Name("%q is not declared", name)
}

// Get looks up name from the top frame down.
func (s *Stack) Get(name string) (value.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i].store[name]; ok {
			return b.val, true
		}
	}
	return nil, false
}

// TopFrameValues returns a snapshot of the current top frame's bindings,
// used to build a Module value out of a just-evaluated module body (§4.6).
func (s *Stack) TopFrameValues() map[string]value.Value {
	top := s.top()
	out := make(map[string]value.Value, len(top.store))
	for k, b := range top.store {
		out[k] = b.val
	}
	return out
}

// DeclareAlias registers a type alias as an immutable Value::Type binding
// (§4.1).
func (s *Stack) DeclareAlias(name string, of types.Type) error {
	return s.Declare(name, &value.Type{Name: name, Of: of}, nil, false, func(v value.Value) (types.Type, error) {
		t, _ := value.BaseTypeOf(v)
		return t, nil
	})
}

func (s *Stack) lookupAlias(name string) (types.Type, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i].store[name]; ok {
			if tv, ok := b.val.(*value.Type); ok {
				return tv.Of, true
			}
		}
	}
	return nil, false
}

// ResolveType replaces every Alias(n) reachable from t with the structural
// type bound to n in the scope stack.
func (s *Stack) ResolveType(t types.Type) (types.Type, error) {
	switch tt := t.(type) {
	case types.Alias:
		of, ok := s.lookupAlias(tt.Name)
		if !ok {
			return nil, akerr.Name("type %q is not defined", tt.Name)
		}
		return s.ResolveType(of)
	case types.List:
		elem, err := s.ResolveType(tt.Elem)
		if err != nil {
			return nil, err
		}
		return types.List{Elem: elem}, nil
	case types.Tuple:
		elems := make([]types.Type, len(tt.Elems))
		for i, e := range tt.Elems {
			r, err := s.ResolveType(e)
			if err != nil {
				return nil, err
			}
			elems[i] = r
		}
		return types.Tuple{Elems: elems}, nil
	case types.Fn:
		params := make([]types.Type, len(tt.Params))
		for i, p := range tt.Params {
			r, err := s.ResolveType(p)
			if err != nil {
				return nil, err
			}
			params[i] = r
		}
		var ret types.Type
		if tt.Ret != nil {
			r, err := s.ResolveType(tt.Ret)
			if err != nil {
				return nil, err
			}
			ret = r
		}
		return types.Fn{Params: params, Ret: ret}, nil
	default:
		return t, nil
	}
}
