package value

import "github.com/ak-lang/ak/internal/akerr"

func isNumeric(v Value) bool {
	switch v.(type) {
	case Int, Float:
		return true
	}
	return false
}

func asFloat(v Value) float32 {
	switch vv := v.(type) {
	case Int:
		return float32(vv.Val)
	case Float:
		return vv.Val
	}
	return 0
}

// Add implements `+` (§4.2): numeric addition with int/float promotion, or
// string concatenation when one side is a String and the other is a String
// or numeric (stringifying the numeric side), or string+list concatenation
// via the list's display form. Any other pair fails.
func Add(l, r Value) (Value, error) {
	if li, ok := l.(Int); ok {
		if ri, ok := r.(Int); ok {
			return Int{Val: li.Val + ri.Val}, nil
		}
	}
	if isNumeric(l) && isNumeric(r) {
		return Float{Val: asFloat(l) + asFloat(r)}, nil
	}
	_, lIsStr := l.(Str)
	_, rIsStr := r.(Str)
	if lIsStr && rIsStr {
		return Str{Val: l.(Str).Val + r.(Str).Val}, nil
	}
	if lIsStr && isNumeric(r) {
		return Str{Val: l.(Str).Val + r.Display()}, nil
	}
	if rIsStr && isNumeric(l) {
		return Str{Val: l.Display() + r.(Str).Val}, nil
	}
	if lIsStr {
		if _, ok := r.(List); ok {
			return Str{Val: l.(Str).Val + r.Display()}, nil
		}
	}
	return nil, akerr.Type("cannot add %s and %s", l.Kind(), r.Kind())
}

func numericBinOp(name string, l, r Value, intOp func(a, b int32) int32, floatOp func(a, b float32) float32) (Value, error) {
	if !isNumeric(l) || !isNumeric(r) {
		return nil, akerr.Type("cannot %s %s and %s", name, l.Kind(), r.Kind())
	}
	li, lIsInt := l.(Int)
	ri, rIsInt := r.(Int)
	if lIsInt && rIsInt {
		return Int{Val: intOp(li.Val, ri.Val)}, nil
	}
	return Float{Val: floatOp(asFloat(l), asFloat(r))}, nil
}

// Sub implements `-`.
func Sub(l, r Value) (Value, error) {
	return numericBinOp("subtract", l, r,
		func(a, b int32) int32 { return a - b },
		func(a, b float32) float32 { return a - b })
}

// Mul implements `*`.
func Mul(l, r Value) (Value, error) {
	return numericBinOp("multiply", l, r,
		func(a, b int32) int32 { return a * b },
		func(a, b float32) float32 { return a * b })
}

// Div implements `/`: truncating integer division when both operands are
// Int, IEEE-754 division as soon as either operand is Float.
func Div(l, r Value) (Value, error) {
	if !isNumeric(l) || !isNumeric(r) {
		return nil, akerr.Type("cannot divide %s and %s", l.Kind(), r.Kind())
	}
	li, lIsInt := l.(Int)
	ri, rIsInt := r.(Int)
	if lIsInt && rIsInt {
		if ri.Val == 0 {
			return nil, akerr.Type("division by zero")
		}
		return Int{Val: li.Val / ri.Val}, nil
	}
	return Float{Val: asFloat(l) / asFloat(r)}, nil
}

// Not implements unary `!`, defined only on Bool.
func Not(v Value) (Value, error) {
	b, ok := v.(Bool)
	if !ok {
		return nil, akerr.Type("operator ! not supported for %s", v.Kind())
	}
	return Bool{Val: !b.Val}, nil
}
