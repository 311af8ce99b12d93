package types

import "testing"

func TestEqualStructural(t *testing.T) {
	a := List{Elem: Int{}}
	b := List{Elem: Int{}}
	c := List{Elem: String{}}
	if !Equal(a, b) {
		t.Error("List(int) should equal List(int)")
	}
	if Equal(a, c) {
		t.Error("List(int) should not equal List(string)")
	}
}

func TestEqualFn(t *testing.T) {
	a := Fn{Params: []Type{Int{}, Int{}}, Ret: Int{}}
	b := Fn{Params: []Type{Int{}, Int{}}, Ret: Int{}}
	c := Fn{Params: []Type{Int{}}, Ret: Int{}}
	if !Equal(a, b) {
		t.Error("identical Fn types should be equal")
	}
	if Equal(a, c) {
		t.Error("Fn types with different arity should not be equal")
	}
}

func TestSimpleName(t *testing.T) {
	if SimpleName(List{Elem: Int{}}) != "list" {
		t.Error("SimpleName(List) should be \"list\"")
	}
	if SimpleName(Object{}) != "object" {
		t.Error("SimpleName(Object) should be \"object\"")
	}
}
