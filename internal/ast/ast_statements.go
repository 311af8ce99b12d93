package ast

import "github.com/ak-lang/ak/internal/token"

type baseStmt struct{ Token token.Token }

func (b baseStmt) TokenLiteral() string { return b.Token.Literal }
func (baseStmt) statementNode()         {}

// LetStatement declares a mutable binding.
type LetStatement struct {
	baseStmt
	Name string
	Type Type // optional, nil if omitted
	Expr Expression
}

// ConstStatement declares an immutable binding.
type ConstStatement struct {
	baseStmt
	Name string
	Type Type
	Expr Expression
}

// ExpressionStatement evaluates an expression and discards the result.
type ExpressionStatement struct {
	baseStmt
	Expr Expression
}

// AssignStatement reassigns an already-declared name.
type AssignStatement struct {
	baseStmt
	Name string
	Expr Expression
}

// ImportStatement resolves a dotted module path; if Items is non-nil, each
// named item is declared individually, otherwise the path's last segment is
// bound to the whole Module value.
type ImportStatement struct {
	baseStmt
	Path  []string
	Items []string // nil means "import the whole module"
}

// IfStatement is `if`/`elseif`/`else` used in statement position.
type IfStatement struct {
	baseStmt
	Branches []Branch
	Else     *Block
}

// ReturnStatement is `return expr`.
type ReturnStatement struct {
	baseStmt
	Expr Expression
}

// FnStatement is a named function declaration.
type FnStatement struct {
	baseStmt
	Name   string
	Params []Arg
	Ret    Type
	Body   *Block
}

// ModuleStatement is a named module declaration: `module Name { … }`.
type ModuleStatement struct {
	baseStmt
	Name string
	Body *Block
}

// ForStatement is `for name in iter { … }`.
type ForStatement struct {
	baseStmt
	Name string
	Iter Expression
	Body *Block
}

// WhileStatement is `while cond { … }`.
type WhileStatement struct {
	baseStmt
	Cond Expression
	Body *Block
}

// TypeStatement registers a type alias: `type Name = T`.
type TypeStatement struct {
	baseStmt
	Name string
	Type Type
}

// BreakStatement is `break`.
type BreakStatement struct{ baseStmt }

// ContinueStatement is `continue`.
type ContinueStatement struct{ baseStmt }
