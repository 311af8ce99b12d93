package prototype

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/value"
)

// Default builds the registry required by §4.3's prototype table.
func Default(apply ApplyFunc) *Registry {
	r := newRegistry()
	registerNumeric(r)
	registerString(r)
	registerList(r, apply)
	registerTuple(r)
	registerObject(r)
	registerNull(r)
	return r
}

func arity(name string, args []value.Value, want int) error {
	if len(args) != want {
		return akerr.Arity("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func asFloat64(v value.Value) (float64, bool) {
	switch vv := v.(type) {
	case value.Int:
		return float64(vv.Val), true
	case value.Float:
		return float64(vv.Val), true
	}
	return 0, false
}

func registerNumeric(r *Registry) {
	pow := func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("pow", args, 1); err != nil {
			return nil, err
		}
		base, _ := asFloat64(recv)
		exp, ok := asFloat64(args[0])
		if !ok {
			return nil, akerr.Type("pow argument must be numeric, got %s", args[0].Kind())
		}
		result := math.Pow(base, exp)
		_, recvIsInt := recv.(value.Int)
		_, expIsInt := args[0].(value.Int)
		if recvIsInt && expIsInt && exp >= 0 {
			return value.Int{Val: int32(result)}, nil
		}
		return value.Float{Val: float32(result)}, nil
	}
	toString := func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("to_string", args, 0); err != nil {
			return nil, err
		}
		return value.Str{Val: recv.Display()}, nil
	}
	for _, t := range []string{"int", "float"} {
		r.register(t, "pow", pow)
		r.register(t, "to_string", toString)
	}
}

func registerString(r *Registry) {
	str := func(v value.Value) string { return v.(value.Str).Val }

	r.register("string", "len", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("len", args, 0); err != nil {
			return nil, err
		}
		return value.Int{Val: int32(value.RuneLen(str(recv)))}, nil
	})
	r.register("string", "to_string", func(recv value.Value, args []value.Value) (value.Value, error) {
		return recv, nil
	})
	r.register("string", "at", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("at", args, 1); err != nil {
			return nil, err
		}
		return value.Index(recv, args[0])
	})
	r.register("string", "chars", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("chars", args, 0); err != nil {
			return nil, err
		}
		runes := []rune(str(recv))
		elems := make([]value.Value, len(runes))
		for i, c := range runes {
			elems[i] = value.Str{Val: string(c)}
		}
		return value.List{Elems: elems}, nil
	})
	r.register("string", "split", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("split", args, 1); err != nil {
			return nil, err
		}
		sep, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("split argument must be string, got %s", args[0].Kind())
		}
		parts := strings.Split(str(recv), sep.Val)
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.Str{Val: p}
		}
		return value.List{Elems: elems}, nil
	})
	r.register("string", "to_upper", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.Str{Val: strings.ToUpper(str(recv))}, nil
	})
	r.register("string", "to_lower", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.Str{Val: strings.ToLower(str(recv))}, nil
	})
	r.register("string", "trim", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.Str{Val: strings.TrimSpace(str(recv))}, nil
	})
	r.register("string", "is_ascii", func(recv value.Value, args []value.Value) (value.Value, error) {
		for _, c := range str(recv) {
			if c > unicode.MaxASCII {
				return value.Bool{Val: false}, nil
			}
		}
		return value.Bool{Val: true}, nil
	})
	r.register("string", "contains", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("contains", args, 1); err != nil {
			return nil, err
		}
		sub, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("contains argument must be string, got %s", args[0].Kind())
		}
		return value.Bool{Val: strings.Contains(str(recv), sub.Val)}, nil
	})
	r.register("string", "repeat", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("repeat", args, 1); err != nil {
			return nil, err
		}
		n, ok := args[0].(value.Int)
		if !ok || n.Val < 0 {
			return nil, akerr.Type("repeat argument must be a non-negative int")
		}
		return value.Str{Val: strings.Repeat(str(recv), int(n.Val))}, nil
	})
	r.register("string", "replace", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("replace", args, 2); err != nil {
			return nil, err
		}
		from, ok1 := args[0].(value.Str)
		to, ok2 := args[1].(value.Str)
		if !ok1 || !ok2 {
			return nil, akerr.Type("replace arguments must be strings")
		}
		return value.Str{Val: strings.ReplaceAll(str(recv), from.Val, to.Val)}, nil
	})
	r.register("string", "push", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("push", args, 1); err != nil {
			return nil, err
		}
		suffix, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("push argument must be string, got %s", args[0].Kind())
		}
		return value.Str{Val: str(recv) + suffix.Val}, nil
	})
}

func registerList(r *Registry, apply ApplyFunc) {
	list := func(v value.Value) value.List { return v.(value.List) }

	r.register("list", "push", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("push", args, 1); err != nil {
			return nil, err
		}
		l := list(recv)
		next := make([]value.Value, len(l.Elems)+1)
		copy(next, l.Elems)
		next[len(l.Elems)] = args[0]
		return value.List{Elems: next, ElemHint: l.ElemHint}, nil
	})
	r.register("list", "pop", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("pop", args, 0); err != nil {
			return nil, err
		}
		l := list(recv)
		if len(l.Elems) == 0 {
			return nil, akerr.Index("pop on empty list")
		}
		next := make([]value.Value, len(l.Elems)-1)
		copy(next, l.Elems[:len(l.Elems)-1])
		return value.List{Elems: next, ElemHint: l.ElemHint}, nil
	})
	r.register("list", "at", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("at", args, 1); err != nil {
			return nil, err
		}
		return value.Index(recv, args[0])
	})
	r.register("list", "len", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("len", args, 0); err != nil {
			return nil, err
		}
		return value.Int{Val: int32(len(list(recv).Elems))}, nil
	})
	r.register("list", "rev", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("rev", args, 0); err != nil {
			return nil, err
		}
		l := list(recv)
		next := make([]value.Value, len(l.Elems))
		for i, e := range l.Elems {
			next[len(l.Elems)-1-i] = e
		}
		return value.List{Elems: next, ElemHint: l.ElemHint}, nil
	})
	r.register("list", "join", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("join", args, 1); err != nil {
			return nil, err
		}
		sep, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("join argument must be string, got %s", args[0].Kind())
		}
		parts := make([]string, len(list(recv).Elems))
		for i, e := range list(recv).Elems {
			parts[i] = e.Display()
		}
		return value.Str{Val: strings.Join(parts, sep.Val)}, nil
	})
	r.register("list", "clear", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.List{ElemHint: list(recv).ElemHint}, nil
	})
	r.register("list", "contains", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("contains", args, 1); err != nil {
			return nil, err
		}
		for _, e := range list(recv).Elems {
			if value.Equals(e, args[0]) {
				return value.Bool{Val: true}, nil
			}
		}
		return value.Bool{Val: false}, nil
	})
	r.register("list", "find", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("find", args, 1); err != nil {
			return nil, err
		}
		for _, e := range list(recv).Elems {
			result, err := apply(args[0], []value.Value{e})
			if err != nil {
				return nil, err
			}
			if b, ok := result.(value.Bool); ok && b.Val {
				return e, nil
			}
		}
		return value.Null{}, nil
	})
	r.register("list", "to_string", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.Str{Val: recv.Display()}, nil
	})
}

func registerTuple(r *Registry) {
	r.register("tuple", "at", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("at", args, 1); err != nil {
			return nil, err
		}
		return value.Index(recv, args[0])
	})
}

func registerObject(r *Registry) {
	obj := func(v value.Value) *value.Object { return v.(*value.Object) }

	r.register("object", "get", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("get", args, 1); err != nil {
			return nil, err
		}
		key, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("get argument must be string, got %s", args[0].Kind())
		}
		v, ok := obj(recv).Vals[key.Val]
		if !ok {
			return nil, akerr.Name("%q not in object", key.Val)
		}
		return v, nil
	})
	r.register("object", "set", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("set", args, 2); err != nil {
			return nil, err
		}
		key, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("set key must be string, got %s", args[0].Kind())
		}
		return obj(recv).With(key.Val, args[1]), nil
	})
	r.register("object", "keys", func(recv value.Value, args []value.Value) (value.Value, error) {
		keys := append([]string(nil), obj(recv).Keys...)
		sort.Strings(keys)
		elems := make([]value.Value, len(keys))
		for i, k := range keys {
			elems[i] = value.Str{Val: k}
		}
		return value.List{Elems: elems}, nil
	})
	r.register("object", "values", func(recv value.Value, args []value.Value) (value.Value, error) {
		elems := make([]value.Value, 0, len(obj(recv).Keys))
		for _, k := range obj(recv).Keys {
			elems = append(elems, obj(recv).Vals[k])
		}
		return value.List{Elems: elems}, nil
	})
	r.register("object", "remove", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("remove", args, 1); err != nil {
			return nil, err
		}
		key, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("remove argument must be string, got %s", args[0].Kind())
		}
		return obj(recv).Without(key.Val), nil
	})
	r.register("object", "contains", func(recv value.Value, args []value.Value) (value.Value, error) {
		if err := arity("contains", args, 1); err != nil {
			return nil, err
		}
		key, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("contains argument must be string, got %s", args[0].Kind())
		}
		return value.Bool{Val: obj(recv).Has(key.Val)}, nil
	})
	r.register("object", "clear", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.NewObject(), nil
	})
}

func registerNull(r *Registry) {
	r.register("null", "to_string", func(recv value.Value, args []value.Value) (value.Value, error) {
		return value.Str{Val: "null"}, nil
	})
}
