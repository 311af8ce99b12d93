// Package parser implements a Pratt (operator-precedence) parser that
// turns a token stream into the ast.Program shape. The concrete surface
// grammar is not fixed by anything outside this package — only the AST it
// must yield is — so this grammar is a deliberately small, unambiguous
// surface sufficient to express every construct the language needs.
package parser

import (
	"fmt"

	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/lexer"
	"github.com/ak-lang/ak/internal/token"
)

// precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	MODCALL
	OR
	AND
	EQUALS
	LESSGREATER
	RANGE
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Kind]int{
	token.DCOLON:   MODCALL,
	token.OR:       OR,
	token.AND:      AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LE:       LESSGREATER,
	token.GE:       LESSGREATER,
	token.DOTDOT:   RANGE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser consumes tokens from a Lexer and builds an ast.Program.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errors []string

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntLit,
		token.FLOAT:    p.parseFloatLit,
		token.STRING:   p.parseStringLit,
		token.TRUE:     p.parseBoolLit,
		token.FALSE:    p.parseBoolLit,
		token.NULL:     p.parseNullLit,
		token.BANG:     p.parsePrefixExpr,
		token.MINUS:    p.parsePrefixExpr,
		token.TYPEOF:   p.parsePrefixExpr,
		token.LPAREN:   p.parseGroupedOrTuple,
		token.LBRACKET: p.parseListLit,
		token.LBRACE:   p.parseObjectLit,
		token.FN:       p.parseFnExpr,
		token.MODULE:   p.parseModuleExpr,
		token.IF:       p.parseIfExpr,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseBinaryExpr,
		token.MINUS:    p.parseBinaryExpr,
		token.ASTERISK: p.parseBinaryExpr,
		token.SLASH:    p.parseBinaryExpr,
		token.EQ:       p.parseBinaryExpr,
		token.NOT_EQ:   p.parseBinaryExpr,
		token.LT:       p.parseBinaryExpr,
		token.LE:       p.parseBinaryExpr,
		token.GT:       p.parseBinaryExpr,
		token.GE:       p.parseBinaryExpr,
		token.AND:      p.parseBinaryExpr,
		token.OR:       p.parseBinaryExpr,
		token.DOTDOT:   p.parseRangeExpr,
		token.LPAREN:   p.parseCallExpr,
		token.LBRACKET: p.parseIndexExpr,
		token.DOT:      p.parseMethodCallExpr,
		token.DCOLON:   p.parseModuleCallExpr,
	}
	p.next()
	p.next()
	return p
}

// Errors returns accumulated parse errors.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf("line %d: %s", p.cur.Line, fmt.Sprintf(format, args...)))
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) expect(k token.Kind) bool {
	if p.peekIs(k) {
		p.next()
		return true
	}
	p.errorf("expected next token %v, got %v (%q)", k, p.peek.Kind, p.peek.Literal)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.cur.Kind]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the whole token stream into an ast.Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMICOLON) {
			p.next()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.next()
	}
	return prog
}
