package parser

import "github.com/ak-lang/ak/internal/ast"
import "github.com/ak-lang/ak/internal/token"

// parseType parses a type expression. Assumes p.cur is the first token of
// the type.
func (p *Parser) parseType() ast.Type {
	switch p.cur.Kind {
	case token.LBRACKET:
		p.next()
		elem := p.parseType()
		if !p.expect(token.RBRACKET) {
			return nil
		}
		return &ast.ListType{Elem: elem}
	case token.LPAREN:
		var elems []ast.Type
		p.next()
		if !p.curIs(token.RPAREN) {
			elems = append(elems, p.parseType())
			for p.peekIs(token.COMMA) {
				p.next()
				p.next()
				elems = append(elems, p.parseType())
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
		}
		return &ast.TupleType{Elems: elems}
	case token.FN:
		p.next()
		if !p.expect(token.LPAREN) {
			return nil
		}
		var params []ast.Type
		if !p.peekIs(token.RPAREN) {
			p.next()
			params = append(params, p.parseType())
			for p.peekIs(token.COMMA) {
				p.next()
				p.next()
				params = append(params, p.parseType())
			}
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		var ret ast.Type
		if p.peekIs(token.ARROW) {
			p.next()
			p.next()
			ret = p.parseType()
		}
		return &ast.FnType{Params: params, Ret: ret}
	default:
		name := p.cur.Literal
		return &ast.NamedType{Name: name}
	}
}

// parseOptionalAnnotation parses `: T` if present, positioned with p.cur on
// the token just before a possible ':'. Returns nil if absent. Leaves
// p.cur on the last token of the type (or unchanged if absent).
func (p *Parser) parseOptionalAnnotation() ast.Type {
	if !p.peekIs(token.COLON) {
		return nil
	}
	p.next() // ':'
	p.next() // first token of type
	return p.parseType()
}
