package value

import (
	"unicode/utf8"

	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/types"
)

// Index implements indexing (§4.2): strings by Int produce a one-character
// string; lists/tuples by Int produce their element. Any other combination
// fails; out-of-range indices fail.
func Index(recv, loc Value) (Value, error) {
	idx, ok := loc.(Int)
	if !ok {
		return nil, akerr.Type("index must be int, got %s", loc.Kind())
	}
	switch r := recv.(type) {
	case Str:
		runes := []rune(r.Val)
		i := int(idx.Val)
		if i < 0 || i >= len(runes) {
			return nil, akerr.Index("string index %d out of range (len %d)", i, len(runes))
		}
		return Str{Val: string(runes[i])}, nil
	case List:
		i := int(idx.Val)
		if i < 0 || i >= len(r.Elems) {
			return nil, akerr.Index("list index %d out of range (len %d)", i, len(r.Elems))
		}
		return r.Elems[i], nil
	case Tuple:
		i := int(idx.Val)
		if i < 0 || i >= len(r.Elems) {
			return nil, akerr.Index("tuple index %d out of range (len %d)", i, len(r.Elems))
		}
		return r.Elems[i], nil
	}
	return nil, akerr.Type("cannot index into %s", recv.Kind())
}

// RuneLen returns the number of Unicode scalars in s.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// Range implements `a..b` (§4.2): an inclusive List of Int from a to b.
func Range(a, b Value) (Value, error) {
	ai, ok := a.(Int)
	if !ok {
		return nil, akerr.Type("range bounds must be int, got %s", a.Kind())
	}
	bi, ok := b.(Int)
	if !ok {
		return nil, akerr.Type("range bounds must be int, got %s", b.Kind())
	}
	var elems []Value
	if ai.Val <= bi.Val {
		for i := ai.Val; i <= bi.Val; i++ {
			elems = append(elems, Int{Val: i})
		}
	}
	return List{Elems: elems, ElemHint: types.Int{}}, nil
}
