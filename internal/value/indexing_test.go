package value

import "testing"

func TestIndexString(t *testing.T) {
	got, err := Index(Str{Val: "hello"}, Int{Val: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got.Display() != "e" {
		t.Errorf("Index(\"hello\", 1) = %s, want e", got.Display())
	}
}

func TestIndexOutOfRange(t *testing.T) {
	if _, err := Index(Str{Val: "hi"}, Int{Val: 5}); err == nil {
		t.Fatal("expected index out of range error")
	}
}

func TestRangeInclusive(t *testing.T) {
	got, err := Range(Int{Val: 2}, Int{Val: 5})
	if err != nil {
		t.Fatal(err)
	}
	lst := got.(List)
	if len(lst.Elems) != 4 {
		t.Fatalf("len(2..5) = %d, want 4", len(lst.Elems))
	}
	if lst.Elems[0].Display() != "2" || lst.Elems[len(lst.Elems)-1].Display() != "5" {
		t.Errorf("range bounds wrong: %v", lst.Display())
	}
}

func TestRangeEmptyWhenDescending(t *testing.T) {
	got, err := Range(Int{Val: 5}, Int{Val: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got.(List).Elems) != 0 {
		t.Error("descending range should be empty")
	}
}
