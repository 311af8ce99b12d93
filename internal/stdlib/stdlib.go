// Package stdlib builds the initial scope (top-level free functions) and
// the virtual standard-library packages (std.math, std.fs, std.env,
// std.system, std.collections) consumed by internal/modloader.
package stdlib

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/scope"
	"github.com/ak-lang/ak/internal/types"
	"github.com/ak-lang/ak/internal/value"
)

// Install declares the top-level free functions (print, println, panic)
// into stack and returns the virtual package tree keyed by its top
// segment ("std"), ready to hand to modloader.New.
func Install(stack *scope.Stack) (map[string]*value.Module, error) {
	typeOf := func(v value.Value) (types.Type, error) {
		t, ok := value.BaseTypeOf(v)
		if !ok {
			return nil, akerr.Type("cannot determine the type of %s", v.Kind())
		}
		return t, nil
	}

	fns := map[string]*value.BuiltInFn{
		"print": {
			Name: "print",
			Fn: func(args []value.Value) (value.Value, error) {
				if err := arity("print", args, 1); err != nil {
					return nil, err
				}
				fmt.Print(args[0].Display())
				return value.Null{}, nil
			},
		},
		"println": {
			Name: "println",
			Fn: func(args []value.Value) (value.Value, error) {
				if err := arity("println", args, 1); err != nil {
					return nil, err
				}
				fmt.Println(args[0].Display())
				return value.Null{}, nil
			},
		},
		"panic": {
			Name: "panic",
			Fn: func(args []value.Value) (value.Value, error) {
				if err := arity("panic", args, 1); err != nil {
					return nil, err
				}
				return nil, akerr.Panic("%s", args[0].Display())
			},
		},
	}
	for name, fn := range fns {
		if err := stack.Declare(name, fn, nil, false, typeOf); err != nil {
			return nil, err
		}
	}

	return map[string]*value.Module{"std": stdModule()}, nil
}

func arity(name string, args []value.Value, want int) error {
	if len(args) != want {
		return akerr.Arity("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func stdModule() *value.Module {
	return value.NewModule(map[string]value.Value{
		"math":        mathModule(),
		"fs":          fsModule(),
		"env":         envModule(),
		"system":      systemModule(),
		"collections": collectionsModule(),
	})
}

func numArg(args []value.Value, i int) (float64, error) {
	switch v := args[i].(type) {
	case value.Int:
		return float64(v.Val), nil
	case value.Float:
		return float64(v.Val), nil
	}
	return 0, akerr.Type("argument %d must be numeric, got %s", i, args[i].Kind())
}

func mathModule() *value.Module {
	binOp := func(name string, op func(a, b value.Value) (value.Value, error)) *value.BuiltInFn {
		return &value.BuiltInFn{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if err := arity(name, args, 2); err != nil {
				return nil, err
			}
			return op(args[0], args[1])
		}}
	}
	unaryFloat := func(name string, op func(float64) float64) *value.BuiltInFn {
		return &value.BuiltInFn{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if err := arity(name, args, 1); err != nil {
				return nil, err
			}
			x, err := numArg(args, 0)
			if err != nil {
				return nil, err
			}
			return value.Float{Val: float32(op(x))}, nil
		}}
	}

	pow := &value.BuiltInFn{Name: "pow", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("pow", args, 2); err != nil {
			return nil, err
		}
		base, err := numArg(args, 0)
		if err != nil {
			return nil, err
		}
		exp, err := numArg(args, 1)
		if err != nil {
			return nil, err
		}
		result := math.Pow(base, exp)
		_, baseIsInt := args[0].(value.Int)
		_, expIsInt := args[1].(value.Int)
		if baseIsInt && expIsInt && exp >= 0 {
			return value.Int{Val: int32(result)}, nil
		}
		return value.Float{Val: float32(result)}, nil
	}}

	consts := value.NewModule(map[string]value.Value{
		"PI": value.Float{Val: float32(math.Pi)},
	})

	return value.NewModule(map[string]value.Value{
		"add":    binOp("add", value.Add),
		"sub":    binOp("sub", value.Sub),
		"mul":    binOp("mul", value.Mul),
		"div":    binOp("div", value.Div),
		"cos":    unaryFloat("cos", math.Cos),
		"sin":    unaryFloat("sin", math.Sin),
		"tan":    unaryFloat("tan", math.Tan),
		"abs":    unaryFloat("abs", math.Abs),
		"pow":    pow,
		"consts": consts,
	})
}

func fsModule() *value.Module {
	readFile := &value.BuiltInFn{Name: "read_file", Fn: func(args []value.Value) (value.Value, error) {
		path, err := strArg("read_file", args, 0)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, akerr.Domain("read_file: %s", err)
		}
		return value.Str{Val: string(data)}, nil
	}}
	writeFile := &value.BuiltInFn{Name: "write_file", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("write_file", args, 2); err != nil {
			return nil, err
		}
		path, ok := args[0].(value.Str)
		if !ok {
			return nil, akerr.Type("write_file path must be string, got %s", args[0].Kind())
		}
		data, ok := args[1].(value.Str)
		if !ok {
			return nil, akerr.Type("write_file data must be string, got %s", args[1].Kind())
		}
		if err := os.WriteFile(path.Val, []byte(data.Val), 0o644); err != nil {
			return nil, akerr.Domain("write_file: %s", err)
		}
		return value.Null{}, nil
	}}
	renameFile := &value.BuiltInFn{Name: "rename_file", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("rename_file", args, 2); err != nil {
			return nil, err
		}
		from, ok1 := args[0].(value.Str)
		to, ok2 := args[1].(value.Str)
		if !ok1 || !ok2 {
			return nil, akerr.Type("rename_file arguments must be strings")
		}
		if err := os.Rename(from.Val, to.Val); err != nil {
			return nil, akerr.Domain("rename_file: %s", err)
		}
		return value.Null{}, nil
	}}
	removeFile := &value.BuiltInFn{Name: "remove_file", Fn: func(args []value.Value) (value.Value, error) {
		path, err := strArg("remove_file", args, 0)
		if err != nil {
			return nil, err
		}
		if err := os.Remove(path); err != nil {
			return nil, akerr.Domain("remove_file: %s", err)
		}
		return value.Null{}, nil
	}}
	readDir := &value.BuiltInFn{Name: "read_dir", Fn: func(args []value.Value) (value.Value, error) {
		path, err := strArg("read_dir", args, 0)
		if err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, akerr.Domain("read_dir: %s", err)
		}
		elems := make([]value.Value, len(entries))
		for i, e := range entries {
			elems[i] = value.Str{Val: e.Name()}
		}
		return value.List{Elems: elems, ElemHint: types.String{}}, nil
	}}
	removeDir := &value.BuiltInFn{Name: "remove_dir", Fn: func(args []value.Value) (value.Value, error) {
		path, err := strArg("remove_dir", args, 0)
		if err != nil {
			return nil, err
		}
		if err := os.RemoveAll(path); err != nil {
			return nil, akerr.Domain("remove_dir: %s", err)
		}
		return value.Null{}, nil
	}}

	return value.NewModule(map[string]value.Value{
		"read_file":   readFile,
		"write_file":  writeFile,
		"rename_file": renameFile,
		"remove_file": removeFile,
		"read_dir":    readDir,
		"remove_dir":  removeDir,
	})
}

func strArg(name string, args []value.Value, i int) (string, error) {
	if len(args) <= i {
		return "", akerr.Arity("%s expects at least %d argument(s)", name, i+1)
	}
	s, ok := args[i].(value.Str)
	if !ok {
		return "", akerr.Type("%s argument must be string, got %s", name, args[i].Kind())
	}
	return s.Val, nil
}

func envModule() *value.Module {
	argsFn := &value.BuiltInFn{Name: "args", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("args", args, 0); err != nil {
			return nil, err
		}
		var rest []string
		if len(os.Args) > 1 {
			rest = os.Args[1:]
		}
		elems := make([]value.Value, len(rest))
		for i, a := range rest {
			elems[i] = value.Str{Val: a}
		}
		return value.List{Elems: elems, ElemHint: types.String{}}, nil
	}}
	varFn := &value.BuiltInFn{Name: "var", Fn: func(args []value.Value) (value.Value, error) {
		name, err := strArg("var", args, 0)
		if err != nil {
			return nil, err
		}
		v, ok := os.LookupEnv(name)
		if !ok {
			return value.Null{}, nil
		}
		return value.Str{Val: v}, nil
	}}
	varsFn := &value.BuiltInFn{Name: "vars", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("vars", args, 0); err != nil {
			return nil, err
		}
		obj := value.NewObject()
		for _, kv := range os.Environ() {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) == 2 {
				obj = obj.With(parts[0], value.Str{Val: parts[1]})
			}
		}
		return obj, nil
	}}
	setVar := &value.BuiltInFn{Name: "set_var", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("set_var", args, 2); err != nil {
			return nil, err
		}
		name, ok1 := args[0].(value.Str)
		val, ok2 := args[1].(value.Str)
		if !ok1 || !ok2 {
			return nil, akerr.Type("set_var arguments must be strings")
		}
		if err := os.Setenv(name.Val, val.Val); err != nil {
			return nil, akerr.Domain("set_var: %s", err)
		}
		return value.Null{}, nil
	}}
	removeVar := &value.BuiltInFn{Name: "remove_var", Fn: func(args []value.Value) (value.Value, error) {
		name, err := strArg("remove_var", args, 0)
		if err != nil {
			return nil, err
		}
		if err := os.Unsetenv(name); err != nil {
			return nil, akerr.Domain("remove_var: %s", err)
		}
		return value.Null{}, nil
	}}

	return value.NewModule(map[string]value.Value{
		"args":       argsFn,
		"var":        varFn,
		"vars":       varsFn,
		"set_var":    setVar,
		"remove_var": removeVar,
	})
}

// systemModule reports what the Go runtime/stdlib can answer without a
// platform-stats dependency (none of the example repos carry one). Memory
// figures describe this process via runtime.MemStats, not the host;
// cpu_speed/free_disk/total_disk/processes have no portable stdlib source
// and are stubbed (zero, or an empty list for processes) — see DESIGN.md.
func systemModule() *value.Module {
	zero := func(name string) *value.BuiltInFn {
		return &value.BuiltInFn{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if err := arity(name, args, 0); err != nil {
				return nil, err
			}
			return value.Int{}, nil
		}}
	}
	str := func(name string, val string) *value.BuiltInFn {
		return &value.BuiltInFn{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if err := arity(name, args, 0); err != nil {
				return nil, err
			}
			return value.Str{Val: val}, nil
		}}
	}

	family := "unix"
	if runtime.GOOS == "windows" {
		family = "windows"
	}

	memStat := func(name string, pick func(runtime.MemStats) uint64) *value.BuiltInFn {
		return &value.BuiltInFn{Name: name, Fn: func(args []value.Value) (value.Value, error) {
			if err := arity(name, args, 0); err != nil {
				return nil, err
			}
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			return value.Int{Val: int32(pick(m))}, nil
		}}
	}

	return value.NewModule(map[string]value.Value{
		"platform":   str("platform", runtime.GOOS),
		"arch":       str("arch", runtime.GOARCH),
		"version":    str("version", runtime.Version()),
		"family":     str("family", family),
		"free_mem":   memStat("free_mem", func(m runtime.MemStats) uint64 { return m.HeapIdle }),
		"total_mem":  memStat("total_mem", func(m runtime.MemStats) uint64 { return m.Sys }),
		"free_disk":  zero("free_disk"),
		"total_disk": zero("total_disk"),
		"cpu_speed":  zero("cpu_speed"),
		"cpus": &value.BuiltInFn{Name: "cpus", Fn: func(args []value.Value) (value.Value, error) {
			if err := arity("cpus", args, 0); err != nil {
				return nil, err
			}
			return value.Int{Val: int32(runtime.NumCPU())}, nil
		}},
		"processes": &value.BuiltInFn{Name: "processes", Fn: func(args []value.Value) (value.Value, error) {
			if err := arity("processes", args, 0); err != nil {
				return nil, err
			}
			return value.List{ElemHint: types.String{}}, nil
		}},
	})
}

func collectionsModule() *value.Module {
	set := &value.BuiltInFn{Name: "set", Fn: func(args []value.Value) (value.Value, error) {
		if err := arity("set", args, 1); err != nil {
			return nil, err
		}
		lst, ok := args[0].(value.List)
		if !ok {
			return nil, akerr.Type("set argument must be list, got %s", args[0].Kind())
		}
		var out []value.Value
		for _, e := range lst.Elems {
			dup := false
			for _, seen := range out {
				if value.Equals(seen, e) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, e)
			}
		}
		return value.List{Elems: out, ElemHint: lst.ElemHint}, nil
	}}
	return value.NewModule(map[string]value.Value{"set": set})
}
