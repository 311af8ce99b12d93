package ast

// Type is the AST-level representation of a type expression as written in
// source (a declared parameter type, return type, `let x: T`, or the right
// side of a `type Name = T` alias declaration).
type Type interface {
	Node
	typeNode()
}

// NamedType is a bare name: a builtin ("int", "string", …) or a
// previously-declared alias.
type NamedType struct {
	Name string
}

func (t *NamedType) TokenLiteral() string { return t.Name }
func (*NamedType) typeNode()              {}

// ListType is `[T]`.
type ListType struct {
	Elem Type
}

func (t *ListType) TokenLiteral() string { return "[" + t.Elem.TokenLiteral() + "]" }
func (*ListType) typeNode()              {}

// TupleType is `(T1, T2, …)`.
type TupleType struct {
	Elems []Type
}

func (t *TupleType) TokenLiteral() string { return "tuple" }
func (*TupleType) typeNode()              {}

// FnType is `fn(T1, T2) -> R`.
type FnType struct {
	Params []Type
	Ret    Type
}

func (t *FnType) TokenLiteral() string { return "fn" }
func (*FnType) typeNode()              {}
