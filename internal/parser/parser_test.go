package parser

import (
	"testing"

	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	return prog
}

func TestParseLetWithAnnotation(t *testing.T) {
	prog := parse(t, "let x: int = 5")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	ls, ok := prog.Statements[0].(*ast.LetStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.LetStatement", prog.Statements[0])
	}
	if ls.Name != "x" {
		t.Errorf("Name = %q, want x", ls.Name)
	}
	if _, ok := ls.Type.(*ast.NamedType); !ok {
		t.Errorf("Type = %T, want *ast.NamedType", ls.Type)
	}
	if _, ok := ls.Expr.(*ast.IntLit); !ok {
		t.Errorf("Expr = %T, want *ast.IntLit", ls.Expr)
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := parse(t, "1 + 2 * 3")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	top, ok := es.Expr.(*ast.BinaryOp)
	if !ok {
		t.Fatalf("got %T, want *ast.BinaryOp", es.Expr)
	}
	if top.Op != ast.OpAdd {
		t.Fatalf("top op = %v, want +", top.Op)
	}
	right, ok := top.Right.(*ast.BinaryOp)
	if !ok || right.Op != ast.OpMul {
		t.Fatalf("right = %#v, want a * BinaryOp", top.Right)
	}
}

func TestParseGroupedExpr(t *testing.T) {
	prog := parse(t, "(1 + 2) * 3")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	top := es.Expr.(*ast.BinaryOp)
	if top.Op != ast.OpMul {
		t.Fatalf("top op = %v, want *", top.Op)
	}
	if _, ok := top.Left.(*ast.BinaryOp); !ok {
		t.Errorf("left = %T, want grouped *ast.BinaryOp", top.Left)
	}
}

func TestParseTupleLit(t *testing.T) {
	prog := parse(t, "(1, 2, 3)")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	tup, ok := es.Expr.(*ast.TupleLit)
	if !ok {
		t.Fatalf("got %T, want *ast.TupleLit", es.Expr)
	}
	if len(tup.Elems) != 3 {
		t.Errorf("len(Elems) = %d, want 3", len(tup.Elems))
	}
}

func TestParseSingleParenIsGrouping(t *testing.T) {
	// a lone parenthesized expression (no comma) is grouping, not a
	// one-element tuple — disambiguated on the presence of a comma.
	prog := parse(t, "(1)")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	if _, ok := es.Expr.(*ast.TupleLit); ok {
		t.Fatal("(1) should parse as a grouped IntLit, not a TupleLit")
	}
	if _, ok := es.Expr.(*ast.IntLit); !ok {
		t.Errorf("got %T, want *ast.IntLit", es.Expr)
	}
}

func TestParseFnStatement(t *testing.T) {
	prog := parse(t, "fn add(a: int, b: int) -> int { return a + b }")
	fs, ok := prog.Statements[0].(*ast.FnStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.FnStatement", prog.Statements[0])
	}
	if fs.Name != "add" || len(fs.Params) != 2 {
		t.Errorf("Name=%q len(Params)=%d", fs.Name, len(fs.Params))
	}
	if len(fs.Body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fs.Body.Statements))
	}
	if _, ok := fs.Body.Statements[0].(*ast.ReturnStatement); !ok {
		t.Errorf("body[0] = %T, want *ast.ReturnStatement", fs.Body.Statements[0])
	}
}

func TestParseMethodCallVsInvokedCall(t *testing.T) {
	prog := parse(t, "xs.len")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	mc, ok := es.Expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("got %T, want *ast.MethodCall", es.Expr)
	}
	if _, ok := mc.Callee.(*ast.Identifier); !ok {
		t.Errorf("property access Callee = %T, want *ast.Identifier", mc.Callee)
	}

	prog2 := parse(t, "xs.push(1)")
	es2 := prog2.Statements[0].(*ast.ExpressionStatement)
	mc2 := es2.Expr.(*ast.MethodCall)
	if _, ok := mc2.Callee.(*ast.Call); !ok {
		t.Errorf("invoked method Callee = %T, want *ast.Call", mc2.Callee)
	}
}

func TestParseModuleCallPathFlattening(t *testing.T) {
	prog := parse(t, "a.b.c::x + 1")
	es := prog.Statements[0].(*ast.ExpressionStatement)
	mcall, ok := es.Expr.(*ast.ModuleCall)
	if !ok {
		t.Fatalf("got %T, want *ast.ModuleCall", es.Expr)
	}
	wantPath := []string{"a", "b", "c"}
	if len(mcall.Path) != len(wantPath) {
		t.Fatalf("Path = %v, want %v", mcall.Path, wantPath)
	}
	for i, seg := range wantPath {
		if mcall.Path[i] != seg {
			t.Errorf("Path[%d] = %q, want %q", i, mcall.Path[i], seg)
		}
	}
	if _, ok := mcall.Expr.(*ast.BinaryOp); !ok {
		t.Errorf("Expr = %T, want *ast.BinaryOp (x + 1)", mcall.Expr)
	}
}

func TestParseImportWithAndWithoutItems(t *testing.T) {
	prog := parse(t, "import std.math")
	is := prog.Statements[0].(*ast.ImportStatement)
	if is.Items != nil {
		t.Errorf("Items = %v, want nil for whole-module import", is.Items)
	}
	if len(is.Path) != 2 || is.Path[1] != "math" {
		t.Errorf("Path = %v", is.Path)
	}

	prog2 := parse(t, "import std.math { cos, sin }")
	is2 := prog2.Statements[0].(*ast.ImportStatement)
	if len(is2.Items) != 2 || is2.Items[0] != "cos" || is2.Items[1] != "sin" {
		t.Errorf("Items = %v, want [cos sin]", is2.Items)
	}
	if len(is2.Path) != 2 || is2.Path[1] != "math" {
		t.Errorf("Path = %v", is2.Path)
	}
}

func TestParseIfElseifElse(t *testing.T) {
	src := `
if a { 1 } elseif b { 2 } else { 3 }
`
	prog := parse(t, src)
	ifs, ok := prog.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.IfStatement", prog.Statements[0])
	}
	if len(ifs.Branches) != 2 {
		t.Fatalf("len(Branches) = %d, want 2", len(ifs.Branches))
	}
	if ifs.Else == nil {
		t.Fatal("Else should not be nil")
	}
}

func TestParseForAndWhile(t *testing.T) {
	prog := parse(t, "for x in 1..3 { } while true { }")
	if _, ok := prog.Statements[0].(*ast.ForStatement); !ok {
		t.Errorf("got %T, want *ast.ForStatement", prog.Statements[0])
	}
	fs := prog.Statements[0].(*ast.ForStatement)
	if _, ok := fs.Iter.(*ast.RangeExpr); !ok {
		t.Errorf("Iter = %T, want *ast.RangeExpr", fs.Iter)
	}
	if _, ok := prog.Statements[1].(*ast.WhileStatement); !ok {
		t.Errorf("got %T, want *ast.WhileStatement", prog.Statements[1])
	}
}

func TestParseListAndObjectLits(t *testing.T) {
	prog := parse(t, `[1, 2, 3]; { a: 1, b: "x" }`)
	ll, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("got %T", prog.Statements[0])
	}
	if lst, ok := ll.Expr.(*ast.ListLit); !ok || len(lst.Elems) != 3 {
		t.Errorf("ListLit = %#v", ll.Expr)
	}
	ol := prog.Statements[1].(*ast.ExpressionStatement)
	obj, ok := ol.Expr.(*ast.ObjectLit)
	if !ok || len(obj.Fields) != 2 {
		t.Errorf("ObjectLit = %#v", ol.Expr)
	}
}

func TestParseTypeAliasStatement(t *testing.T) {
	prog := parse(t, "type Age = int")
	ts, ok := prog.Statements[0].(*ast.TypeStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.TypeStatement", prog.Statements[0])
	}
	if ts.Name != "Age" {
		t.Errorf("Name = %q, want Age", ts.Name)
	}
}

func TestParseModuleStatement(t *testing.T) {
	prog := parse(t, "module M { const k = 1 }")
	ms, ok := prog.Statements[0].(*ast.ModuleStatement)
	if !ok {
		t.Fatalf("got %T, want *ast.ModuleStatement", prog.Statements[0])
	}
	if ms.Name != "M" || len(ms.Body.Statements) != 1 {
		t.Errorf("ModuleStatement = %#v", ms)
	}
}

func TestParseErrorOnMissingRParen(t *testing.T) {
	p := New(lexer.New("(1 + 2"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected a parse error for unclosed paren")
	}
}
