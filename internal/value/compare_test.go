package value

import "testing"

func TestCompare(t *testing.T) {
	ord, err := Compare(Int{Val: 1}, Float{Val: 2})
	if err != nil {
		t.Fatal(err)
	}
	if ord != Less {
		t.Errorf("Compare(1, 2.0) = %v, want Less", ord)
	}
}

func TestEqualsCrossNumeric(t *testing.T) {
	if !Equals(Int{Val: 2}, Float{Val: 2}) {
		t.Error("2 should equal 2.0")
	}
}

func TestEqualsLists(t *testing.T) {
	a := List{Elems: []Value{Int{Val: 1}, Int{Val: 2}}}
	b := List{Elems: []Value{Int{Val: 1}, Int{Val: 2}}}
	c := List{Elems: []Value{Int{Val: 2}, Int{Val: 1}}}
	if !Equals(a, b) {
		t.Error("identical lists should be equal")
	}
	if Equals(a, c) {
		t.Error("differently-ordered lists should not be equal")
	}
}

func TestRevTwiceIsIdentity(t *testing.T) {
	xs := List{Elems: []Value{Int{Val: 1}, Int{Val: 2}, Int{Val: 3}}}
	rev := func(l List) List {
		out := make([]Value, len(l.Elems))
		for i, e := range l.Elems {
			out[len(l.Elems)-1-i] = e
		}
		return List{Elems: out}
	}
	if !Equals(rev(rev(xs)), xs) {
		t.Error("xs.rev().rev() should equal xs")
	}
}
