package parser

import (
	"strconv"

	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		p.errorf("no prefix parse function for %v (%q)", p.cur.Kind, p.cur.Literal)
		return nil
	}
	left := prefix()

	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left
		}
		p.next()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Name: p.cur.Literal}
}

func (p *Parser) parseIntLit() ast.Expression {
	v, err := strconv.ParseInt(p.cur.Literal, 10, 32)
	if err != nil {
		p.errorf("invalid int literal %q: %v", p.cur.Literal, err)
		return nil
	}
	return &ast.IntLit{Value: int32(v)}
}

func (p *Parser) parseFloatLit() ast.Expression {
	v, err := strconv.ParseFloat(p.cur.Literal, 32)
	if err != nil {
		p.errorf("invalid float literal %q: %v", p.cur.Literal, err)
		return nil
	}
	return &ast.FloatLit{Value: float32(v)}
}

func (p *Parser) parseStringLit() ast.Expression {
	return &ast.StringLit{Value: p.cur.Literal}
}

func (p *Parser) parseBoolLit() ast.Expression {
	return &ast.BoolLit{Value: p.cur.Kind == token.TRUE}
}

func (p *Parser) parseNullLit() ast.Expression {
	return &ast.NullLit{}
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	switch p.cur.Kind {
	case token.BANG:
		p.next()
		return &ast.UnaryOp{Op: ast.UOpNot, Expr: p.parseExpression(PREFIX)}
	case token.TYPEOF:
		p.next()
		return &ast.UnaryOp{Op: ast.UOpTypeof, Expr: p.parseExpression(PREFIX)}
	case token.MINUS:
		p.next()
		// desugar unary minus into `0 - expr` so §4.2's binary arithmetic
		// rules are the only place numeric promotion lives.
		return &ast.BinaryOp{Left: &ast.IntLit{Value: 0}, Op: ast.OpSub, Right: p.parseExpression(PREFIX)}
	}
	return nil
}

func (p *Parser) parseBinaryExpr(left ast.Expression) ast.Expression {
	op := ast.Op(p.cur.Literal)
	prec := p.curPrecedence()
	p.next()
	right := p.parseExpression(prec)
	return &ast.BinaryOp{Left: left, Op: op, Right: right}
}

func (p *Parser) parseRangeExpr(left ast.Expression) ast.Expression {
	p.next()
	right := p.parseExpression(RANGE)
	return &ast.RangeExpr{From: left, To: right}
}

// parseGroupedOrTuple handles `(expr)` and `(e1, e2, …)`.
func (p *Parser) parseGroupedOrTuple() ast.Expression {
	p.next() // consume '('
	if p.curIs(token.RPAREN) {
		return &ast.TupleLit{}
	}
	first := p.parseExpression(LOWEST)
	if p.peekIs(token.COMMA) {
		elems := []ast.Expression{first}
		for p.peekIs(token.COMMA) {
			p.next() // ,
			p.next()
			elems = append(elems, p.parseExpression(LOWEST))
		}
		if !p.expect(token.RPAREN) {
			return nil
		}
		return &ast.TupleLit{Elems: elems}
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return first
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	var list []ast.Expression
	if p.peekIs(end) {
		p.next()
		return list
	}
	p.next()
	list = append(list, p.parseExpression(LOWEST))
	for p.peekIs(token.COMMA) {
		p.next()
		p.next()
		list = append(list, p.parseExpression(LOWEST))
	}
	if !p.expect(end) {
		return nil
	}
	return list
}

func (p *Parser) parseListLit() ast.Expression {
	return &ast.ListLit{Elems: p.parseExpressionList(token.RBRACKET)}
}

func (p *Parser) parseObjectLit() ast.Expression {
	lit := &ast.ObjectLit{}
	if p.peekIs(token.RBRACE) {
		p.next()
		return lit
	}
	for {
		p.next()
		name := p.cur.Literal
		if !p.expect(token.COLON) {
			return nil
		}
		p.next()
		val := p.parseExpression(LOWEST)
		lit.Fields = append(lit.Fields, ast.ObjectField{Name: name, Value: val})
		if !p.peekIs(token.COMMA) {
			break
		}
		p.next()
	}
	if !p.expect(token.RBRACE) {
		return nil
	}
	return lit
}

func (p *Parser) parseCallExpr(callee ast.Expression) ast.Expression {
	return &ast.Call{Callee: callee, Args: p.parseExpressionList(token.RPAREN)}
}

func (p *Parser) parseIndexExpr(left ast.Expression) ast.Expression {
	p.next()
	loc := p.parseExpression(LOWEST)
	if !p.expect(token.RBRACKET) {
		return nil
	}
	return &ast.Index{Expr: left, Loc: loc}
}

// parseMethodCallExpr handles `obj.name` and `obj.name(args)`.
func (p *Parser) parseMethodCallExpr(obj ast.Expression) ast.Expression {
	p.next() // consume '.'
	name := &ast.Identifier{Name: p.cur.Literal}
	var callee ast.Expression = name
	if p.peekIs(token.LPAREN) {
		p.next()
		callee = &ast.Call{Callee: name, Args: p.parseExpressionList(token.RPAREN)}
	}
	return &ast.MethodCall{Obj: obj, Callee: callee}
}

// parseModuleCallExpr handles `a.b.c::expr`. The left operand must be a
// dotted chain of identifiers (built by parseMethodCallExpr as nested
// MethodCall nodes); it is flattened back into a path here.
func (p *Parser) parseModuleCallExpr(left ast.Expression) ast.Expression {
	path, ok := flattenPath(left)
	if !ok {
		p.errorf("left of '::' must be a dotted module path")
		return nil
	}
	p.next()
	expr := p.parseExpression(LOWEST)
	return &ast.ModuleCall{Path: path, Expr: expr}
}

func flattenPath(e ast.Expression) ([]string, bool) {
	switch n := e.(type) {
	case *ast.Identifier:
		return []string{n.Name}, true
	case *ast.MethodCall:
		base, ok := flattenPath(n.Obj)
		if !ok {
			return nil, false
		}
		ident, ok := n.Callee.(*ast.Identifier)
		if !ok {
			return nil, false
		}
		return append(base, ident.Name), true
	}
	return nil, false
}

func (p *Parser) parseFnExpr() ast.Expression {
	params, ret := p.parseParamsAndReturn()
	body := p.parseBlock()
	return &ast.FnExpr{Params: params, Ret: ret, Body: body}
}

func (p *Parser) parseModuleExpr() ast.Expression {
	body := p.parseBlock()
	return &ast.ModuleExpr{Body: body}
}

func (p *Parser) parseIfExpr() ast.Expression {
	branches, elseBlock := p.parseIfBranches()
	return &ast.IfExpr{Branches: branches, Else: elseBlock}
}
