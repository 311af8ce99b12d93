package scope

import (
	"testing"

	"github.com/ak-lang/ak/internal/types"
	"github.com/ak-lang/ak/internal/value"
)

func typeOf(v value.Value) (types.Type, error) {
	t, _ := value.BaseTypeOf(v)
	return t, nil
}

func TestDeclareAndGet(t *testing.T) {
	s := New()
	if err := s.Declare("x", value.Int{Val: 5}, nil, true, typeOf); err != nil {
		t.Fatal(err)
	}
	v, ok := s.Get("x")
	if !ok || v.(value.Int).Val != 5 {
		t.Errorf("Get(x) = %v, %v", v, ok)
	}
}

func TestRedeclareInSameFrameFails(t *testing.T) {
	s := New()
	if err := s.Declare("x", value.Int{Val: 1}, nil, true, typeOf); err != nil {
		t.Fatal(err)
	}
	if err := s.Declare("x", value.Int{Val: 2}, nil, true, typeOf); err == nil {
		t.Fatal("expected redeclaration error")
	}
}

func TestAssignToImmutableFails(t *testing.T) {
	s := New()
	if err := s.Declare("k", value.Int{Val: 1}, nil, false, typeOf); err != nil {
		t.Fatal(err)
	}
	if err := s.Assign("k", value.Int{Val: 2}, typeOf); err == nil {
		t.Fatal("expected ImmutableError")
	}
	v, _ := s.Get("k")
	if v.(value.Int).Val != 1 {
		t.Error("immutable binding should not have changed")
	}
}

func TestDeclareWithMismatchedAnnotationFails(t *testing.T) {
	s := New()
	err := s.Declare("x", value.Str{Val: "hi"}, types.Int{}, true, typeOf)
	if err == nil {
		t.Fatal("expected TypeError for string value declared as int")
	}
}

func TestPushPopScanning(t *testing.T) {
	s := New()
	_ = s.Declare("outer", value.Int{Val: 1}, nil, true, typeOf)
	s.Push()
	if _, ok := s.Get("outer"); !ok {
		t.Error("inner frame should see outer binding")
	}
	_ = s.Declare("inner", value.Int{Val: 2}, nil, true, typeOf)
	s.Pop()
	if _, ok := s.Get("inner"); ok {
		t.Error("inner binding should not survive frame pop")
	}
}

func TestAliasResolution(t *testing.T) {
	s := New()
	if err := s.DeclareAlias("Age", types.Int{}); err != nil {
		t.Fatal(err)
	}
	resolved, err := s.ResolveType(types.Alias{Name: "Age"})
	if err != nil {
		t.Fatal(err)
	}
	if !types.Equal(resolved, types.Int{}) {
		t.Errorf("ResolveType(Age) = %v, want int", resolved)
	}
}

func TestListHomogeneityEnforced(t *testing.T) {
	s := New()
	mixed := value.List{Elems: []value.Value{value.Int{Val: 1}, value.Str{Val: "x"}}}
	if err := s.Declare("xs", mixed, nil, true, typeOf); err == nil {
		t.Fatal("expected homogeneity error")
	}
}
