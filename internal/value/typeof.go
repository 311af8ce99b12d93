package value

import "github.com/ak-lang/ak/internal/types"

// BaseTypeOf computes type_of(v) for every Value variant except *Func,
// whose return type may need speculative body evaluation (§4.2) — that
// case is handled by the eval package, which calls here for everything
// else and falls back to its own inference only for *Func.
func BaseTypeOf(v Value) (types.Type, bool) {
	switch vv := v.(type) {
	case Null:
		return types.Null{}, true
	case Int:
		return types.Int{}, true
	case Float:
		return types.Float{}, true
	case Bool:
		return types.Bool{}, true
	case Str:
		return types.String{}, true
	case List:
		if len(vv.Elems) == 0 {
			if vv.ElemHint != nil {
				return types.List{Elem: vv.ElemHint}, true
			}
			return types.List{Elem: types.Null{}}, true
		}
		elemT, ok := BaseTypeOf(vv.Elems[0])
		if !ok {
			return nil, false
		}
		return types.List{Elem: elemT}, true
	case Tuple:
		elems := make([]types.Type, len(vv.Elems))
		for i, e := range vv.Elems {
			t, ok := BaseTypeOf(e)
			if !ok {
				return nil, false
			}
			elems[i] = t
		}
		return types.Tuple{Elems: elems}, true
	case *Object:
		return types.Object{}, true
	case *Module:
		return types.Module{}, true
	case *Func:
		return nil, false
	case *BuiltInFn, *BuiltInMethod:
		return types.Fn{}, true
	case *Type:
		return types.Alias{Name: vv.Name}, true
	}
	return nil, false
}
