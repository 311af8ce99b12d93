package value

import "github.com/ak-lang/ak/internal/akerr"

// Ordering is the result of Compare: -1, 0, or 1.
type Ordering int

const (
	Less    Ordering = -1
	EqualOrd  Ordering = 0
	Greater Ordering = 1
)

// Compare implements `<`, `<=`, `>`, `>=` (§4.2): like-typed numerics (with
// int/float promotion), strings (lexicographic), and bools (false < true).
func Compare(l, r Value) (Ordering, error) {
	if isNumeric(l) && isNumeric(r) {
		lf, rf := asFloat(l), asFloat(r)
		switch {
		case lf < rf:
			return Less, nil
		case lf > rf:
			return Greater, nil
		default:
			return EqualOrd, nil
		}
	}
	if ls, ok := l.(Str); ok {
		if rs, ok := r.(Str); ok {
			switch {
			case ls.Val < rs.Val:
				return Less, nil
			case ls.Val > rs.Val:
				return Greater, nil
			default:
				return EqualOrd, nil
			}
		}
	}
	if lb, ok := l.(Bool); ok {
		if rb, ok := r.(Bool); ok {
			lv, rv := boolRank(lb.Val), boolRank(rb.Val)
			switch {
			case lv < rv:
				return Less, nil
			case lv > rv:
				return Greater, nil
			default:
				return EqualOrd, nil
			}
		}
	}
	return 0, akerr.Type("cannot compare %s and %s", l.Kind(), r.Kind())
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Equals implements `==`/`!=`: structural equality across all variants.
// Values of different types compare unequal (except numeric cross
// int/float, per §4.2's promotion rule).
func Equals(l, r Value) bool {
	if isNumeric(l) && isNumeric(r) {
		return asFloat(l) == asFloat(r)
	}
	if l.Kind() != r.Kind() {
		return false
	}
	switch lv := l.(type) {
	case Null:
		return true
	case Bool:
		return lv.Val == r.(Bool).Val
	case Str:
		return lv.Val == r.(Str).Val
	case List:
		rv := r.(List)
		if len(lv.Elems) != len(rv.Elems) {
			return false
		}
		for i := range lv.Elems {
			if !Equals(lv.Elems[i], rv.Elems[i]) {
				return false
			}
		}
		return true
	case Tuple:
		rv := r.(Tuple)
		if len(lv.Elems) != len(rv.Elems) {
			return false
		}
		for i := range lv.Elems {
			if !Equals(lv.Elems[i], rv.Elems[i]) {
				return false
			}
		}
		return true
	case *Object:
		rv := r.(*Object)
		if len(lv.Keys) != len(rv.Keys) {
			return false
		}
		for _, k := range lv.Keys {
			rval, ok := rv.Vals[k]
			if !ok || !Equals(lv.Vals[k], rval) {
				return false
			}
		}
		return true
	default:
		return l == r
	}
}
