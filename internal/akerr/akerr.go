// Package akerr defines the eight error kinds of §7. Every failing
// operation in the evaluator returns one of these; none are ever recovered
// internally — they propagate unchanged to the CLI driver.
package akerr

import "fmt"

// Kind is one of the eight distinct error-message prefixes named in §7.
type Kind string

const (
	TypeError      Kind = "TypeError"
	NameError      Kind = "NameError"
	ArityError     Kind = "ArityError"
	ImmutableError Kind = "ImmutableError"
	IndexError     Kind = "IndexError"
	ImportError    Kind = "ImportError"
	PanicError     Kind = "Panic"
	DomainError    Kind = "DomainError"
)

// Error is a single typed runtime error carrying one of the eight kinds.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.Msg }

func newf(k Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

func Type(format string, args ...interface{}) *Error {
	return newf(TypeError, format, args...)
}

func Name(format string, args ...interface{}) *Error {
	return newf(NameError, format, args...)
}

func Arity(format string, args ...interface{}) *Error {
	return newf(ArityError, format, args...)
}

func Immutable(format string, args ...interface{}) *Error {
	return newf(ImmutableError, format, args...)
}

func Index(format string, args ...interface{}) *Error {
	return newf(IndexError, format, args...)
}

func Import(format string, args ...interface{}) *Error {
	return newf(ImportError, format, args...)
}

func Panic(format string, args ...interface{}) *Error {
	return newf(PanicError, format, args...)
}

func Domain(format string, args ...interface{}) *Error {
	return newf(DomainError, format, args...)
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, k Kind) bool {
	ae, ok := err.(*Error)
	return ok && ae.Kind == k
}
