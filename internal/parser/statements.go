package parser

import (
	"github.com/ak-lang/ak/internal/ast"
	"github.com/ak-lang/ak/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.CONST:
		return p.parseConstStatement()
	case token.FN:
		return p.parseFnStatement()
	case token.IF:
		branches, elseBlock := p.parseIfBranches()
		return &ast.IfStatement{Branches: branches, Else: elseBlock}
	case token.RETURN:
		return p.parseReturnStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.MODULE:
		return p.parseModuleStatement()
	case token.TYPE:
		return p.parseTypeStatement()
	case token.BREAK:
		return &ast.BreakStatement{}
	case token.CONTINUE:
		return &ast.ContinueStatement{}
	default:
		return p.parseExpressionOrAssignStatement()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	if !p.expect(token.LBRACE) {
		return nil
	}
	blk := &ast.Block{Token: p.cur}
	p.next()
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		if p.curIs(token.SEMICOLON) {
			p.next()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			blk.Statements = append(blk.Statements, stmt)
		}
		p.next()
	}
	return blk
}

func (p *Parser) parseIfBranches() ([]ast.Branch, *ast.Block) {
	var branches []ast.Branch
	p.next() // consume 'if'
	cond := p.parseExpression(LOWEST)
	body := p.parseBlock()
	branches = append(branches, ast.Branch{Cond: cond, Body: body})

	for p.peekIs(token.ELSEIF) {
		p.next() // ELSEIF
		p.next()
		c := p.parseExpression(LOWEST)
		b := p.parseBlock()
		branches = append(branches, ast.Branch{Cond: c, Body: b})
	}

	var elseBlock *ast.Block
	if p.peekIs(token.ELSE) {
		p.next() // ELSE
		elseBlock = p.parseBlock()
	}
	return branches, elseBlock
}

func (p *Parser) parseArg() ast.Arg {
	name := p.cur.Literal
	if !p.expect(token.COLON) {
		return ast.Arg{Name: name}
	}
	p.next()
	return ast.Arg{Name: name, Type: p.parseType()}
}

func (p *Parser) parseParamsAndReturn() ([]ast.Arg, ast.Type) {
	var params []ast.Arg
	if !p.expect(token.LPAREN) {
		return nil, nil
	}
	if p.peekIs(token.RPAREN) {
		p.next()
	} else {
		p.next()
		params = append(params, p.parseArg())
		for p.peekIs(token.COMMA) {
			p.next()
			p.next()
			params = append(params, p.parseArg())
		}
		if !p.expect(token.RPAREN) {
			return params, nil
		}
	}
	var ret ast.Type
	if p.peekIs(token.ARROW) {
		p.next()
		p.next()
		ret = p.parseType()
	}
	return params, ret
}

func (p *Parser) parseLetStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	typ := p.parseOptionalAnnotation()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	p.next()
	expr := p.parseExpression(LOWEST)
	return &ast.LetStatement{Name: name, Type: typ, Expr: expr}
}

func (p *Parser) parseConstStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	typ := p.parseOptionalAnnotation()
	if !p.expect(token.ASSIGN) {
		return nil
	}
	p.next()
	expr := p.parseExpression(LOWEST)
	return &ast.ConstStatement{Name: name, Type: typ, Expr: expr}
}

func (p *Parser) parseFnStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	params, ret := p.parseParamsAndReturn()
	body := p.parseBlock()
	return &ast.FnStatement{Name: name, Params: params, Ret: ret, Body: body}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	if p.peekIs(token.RBRACE) || p.peekIs(token.SEMICOLON) {
		return &ast.ReturnStatement{Expr: &ast.NullLit{}}
	}
	p.next()
	return &ast.ReturnStatement{Expr: p.parseExpression(LOWEST)}
}

func (p *Parser) parseForStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	if !p.expect(token.IN) {
		return nil
	}
	p.next()
	iter := p.parseExpression(LOWEST)
	body := p.parseBlock()
	return &ast.ForStatement{Name: name, Iter: iter, Body: body}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	p.next()
	cond := p.parseExpression(LOWEST)
	body := p.parseBlock()
	return &ast.WhileStatement{Cond: cond, Body: body}
}

// parseImportStatement parses `import a.b.c` (binds `c` to the whole
// resolved module) or `import a.b.c { x, y }` (binds x and y individually).
func (p *Parser) parseImportStatement() ast.Statement {
	p.next()
	path := []string{p.cur.Literal}
	for p.peekIs(token.DOT) {
		p.next()
		p.next()
		path = append(path, p.cur.Literal)
	}
	var items []string
	if p.peekIs(token.LBRACE) {
		p.next()
		p.next()
		for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
			items = append(items, p.cur.Literal)
			p.next()
			if p.curIs(token.COMMA) {
				p.next()
			}
		}
	}
	return &ast.ImportStatement{Path: path, Items: items}
}

func (p *Parser) parseModuleStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	body := p.parseBlock()
	return &ast.ModuleStatement{Name: name, Body: body}
}

func (p *Parser) parseTypeStatement() ast.Statement {
	if !p.expect(token.IDENT) {
		return nil
	}
	name := p.cur.Literal
	if !p.expect(token.ASSIGN) {
		return nil
	}
	p.next()
	typ := p.parseType()
	return &ast.TypeStatement{Name: name, Type: typ}
}

func (p *Parser) parseExpressionOrAssignStatement() ast.Statement {
	expr := p.parseExpression(LOWEST)
	if ident, ok := expr.(*ast.Identifier); ok && p.peekIs(token.ASSIGN) {
		p.next()
		p.next()
		rhs := p.parseExpression(LOWEST)
		return &ast.AssignStatement{Name: ident.Name, Expr: rhs}
	}
	return &ast.ExpressionStatement{Expr: expr}
}
