package prototype

import (
	"testing"

	"github.com/ak-lang/ak/internal/value"
)

func identityApply(fn value.Value, args []value.Value) (value.Value, error) {
	bf := fn.(*value.BuiltInFn)
	return bf.Fn(args)
}

func TestStringLen(t *testing.T) {
	r := Default(identityApply)
	m, err := r.Lookup(value.Str{Val: "hello"}, "len")
	if err != nil {
		t.Fatal(err)
	}
	bm := m.(*value.BuiltInMethod)
	got, err := bm.Fn(bm.Receiver, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.(value.Int).Val != 5 {
		t.Errorf("len(\"hello\") = %v, want 5", got)
	}
}

func TestListPushReturnsNewList(t *testing.T) {
	r := Default(identityApply)
	orig := value.List{Elems: []value.Value{value.Int{Val: 1}}}
	m, err := r.Lookup(orig, "push")
	if err != nil {
		t.Fatal(err)
	}
	bm := m.(*value.BuiltInMethod)
	got, err := bm.Fn(bm.Receiver, []value.Value{value.Int{Val: 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(orig.Elems) != 1 {
		t.Error("push must not mutate the receiver")
	}
	if len(got.(value.List).Elems) != 2 {
		t.Error("push must return a list with the new element appended")
	}
}

func TestObjectFieldFallback(t *testing.T) {
	r := Default(identityApply)
	obj := value.NewObject().With("a", value.Int{Val: 1})
	got, err := r.Lookup(obj, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.(value.Int).Val != 1 {
		t.Errorf("field fallback returned %v, want 1", got)
	}
}

func TestUnknownMethodFails(t *testing.T) {
	r := Default(identityApply)
	if _, err := r.Lookup(value.Int{Val: 1}, "nope"); err == nil {
		t.Fatal("expected NameError for unknown prototype method")
	}
}

func TestListFindUsesApply(t *testing.T) {
	applyCalls := 0
	apply := func(fn value.Value, args []value.Value) (value.Value, error) {
		applyCalls++
		n := args[0].(value.Int).Val
		return value.Bool{Val: n == 2}, nil
	}
	r := Default(apply)
	lst := value.List{Elems: []value.Value{value.Int{Val: 1}, value.Int{Val: 2}, value.Int{Val: 3}}}
	m, err := r.Lookup(lst, "find")
	if err != nil {
		t.Fatal(err)
	}
	bm := m.(*value.BuiltInMethod)
	pred := &value.BuiltInFn{Name: "pred"}
	got, err := bm.Fn(bm.Receiver, []value.Value{pred})
	if err != nil {
		t.Fatal(err)
	}
	if got.(value.Int).Val != 2 {
		t.Errorf("find returned %v, want 2", got)
	}
	if applyCalls == 0 {
		t.Error("expected find to call apply")
	}
}
