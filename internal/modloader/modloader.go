// Package modloader implements the module loader of §4.7: dotted-path
// resolution that first checks for virtual (built-in) packages, then an
// already-bound Module in scope, then falls back to one level of
// filesystem lookup under a configurable root.
package modloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ak-lang/ak/internal/akerr"
	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/eval"
	"github.com/ak-lang/ak/internal/lexer"
	"github.com/ak-lang/ak/internal/parser"
	"github.com/ak-lang/ak/internal/value"
)

// Resolver is constructed once per run and supplies eval.ModuleResolver.
type Resolver struct {
	// Root is the directory "examples/<path>.ak" is resolved under.
	Root string
	// Virtual holds the built-in packages (std and its submodules),
	// checked ahead of scope and filesystem resolution since they are
	// always available regardless of prior imports.
	Virtual map[string]*value.Module
}

// New builds a Resolver. virtual maps a path's first segment (e.g. "std")
// to its pre-built Module.
func New(root string, virtual map[string]*value.Module) *Resolver {
	return &Resolver{Root: root, Virtual: virtual}
}

// Resolve implements eval.ModuleResolver.
func (r *Resolver) Resolve(ev *eval.Evaluator, path []string) (*value.Module, error) {
	if len(path) == 0 {
		return nil, akerr.Import("empty module path")
	}
	if root, ok := r.Virtual[path[0]]; ok {
		return descend(root, path[1:])
	}
	if v, ok := ev.Stack.Get(path[0]); ok {
		if m, ok := v.(*value.Module); ok {
			return descend(m, path[1:])
		}
		return nil, akerr.Import("module %s not found", strings.Join(path, "."))
	}
	return r.loadFromFile(ev, path)
}

// loadFromFile implements §4.7 step 2: one filesystem read of
// <root>/<path joined by '/'>.ak, parsed and evaluated as a module body.
// The whole dotted path names the file: no shorter prefix of the path is
// tried as a file, and no segment is looked up inside the loaded module.
func (r *Resolver) loadFromFile(ev *eval.Evaluator, path []string) (*value.Module, error) {
	rel := filepath.Join(path...) + ".ak"
	full := filepath.Join(r.Root, rel)
	src, err := os.ReadFile(full)
	if err != nil {
		return nil, akerr.Import("module %s not found", strings.Join(path, "."))
	}
	l := lexer.New(string(src))
	p := parser.New(l)
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, akerr.Import("module %s: %s", strings.Join(path, "."), strings.Join(errs, "; "))
	}
	return ev.EvalModuleBody(&ast.Block{Statements: prog.Statements})
}

func descend(m *value.Module, segs []string) (*value.Module, error) {
	cur := m
	for _, s := range segs {
		v, ok := cur.Vals[s]
		if !ok {
			return nil, akerr.Import("module %s not found", s)
		}
		next, ok := v.(*value.Module)
		if !ok {
			return nil, akerr.Import("%s is not a module", s)
		}
		cur = next
	}
	return cur, nil
}
