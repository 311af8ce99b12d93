package eval

import "github.com/ak-lang/ak/internal/value"

// EscapeKind is one of the four statement-evaluation outcomes of the
// GLOSSARY's "Escape": None, Return, Break, Continue.
type EscapeKind int

const (
	EscapeNone EscapeKind = iota
	EscapeReturn
	EscapeBreak
	EscapeContinue
)

// Escape is the result of evaluating a statement or block (§4.5).
type Escape struct {
	Kind  EscapeKind
	Value value.Value
}

var noEscape = Escape{Kind: EscapeNone}
