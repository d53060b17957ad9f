package parser

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

func (p *Parser) parseBlock() *syntax.Node {
	open := p.expect(syntax.OpenBraceToken, diag.SynUnclosedBrace, "expected '{'")
	var stmts []*syntax.Node
	for !p.at_or(syntax.CloseBraceToken, syntax.EndOfFileToken) {
		start := p.pos
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == start {
			p.err(diag.SynExpectStatement, "unexpected '"+p.peek().Text+"', expected a statement")
			p.advance()
		}
	}
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynUnclosedBrace, "expected '}' to close block")
	return syntax.Build(syntax.Block, syntax.TokenSlot(open), syntax.ListSlot(stmts...), syntax.TokenSlot(closeTok))
}

// parseStatement выбирает разбор по первому токену; nil, если оператор
// отсюда не начинается.
func (p *Parser) parseStatement() *syntax.Node {
	ok := p.deeper()
	defer p.shallower()
	if !ok {
		return nil
	}
	switch p.peek().Kind {
	case syntax.OpenBraceToken:
		return p.parseBlock()
	case syntax.SemicolonToken:
		return syntax.Build(syntax.EmptyStatement, syntax.TokenSlot(p.advance()))
	case syntax.ReturnKeyword:
		return p.parseReturn()
	case syntax.IfKeyword:
		return p.parseIf()
	case syntax.WhileKeyword:
		return p.parseWhile()
	case syntax.CloseBraceToken, syntax.EndOfFileToken:
		return nil
	}
	if p.looksLikeLocalDeclaration() {
		return p.parseLocalDeclaration()
	}
	if !p.startsExpression() {
		return nil
	}
	expr := p.parseExpression()
	semi := p.expectSemicolon("expected ';' after expression")
	return syntax.Build(syntax.ExpressionStatement, syntax.NodeSlot(expr), syntax.TokenSlot(semi))
}

// expectSemicolon при ошибке проматывает остаток оператора.
func (p *Parser) expectSemicolon(msg string) *syntax.Token {
	if p.at(syntax.SemicolonToken) {
		return p.advance()
	}
	p.err(diag.SynExpectSemicolon, msg)
	p.resyncStatement()
	return missing(syntax.SemicolonToken)
}

func (p *Parser) parseLocalDeclaration() *syntax.Node {
	var mods []*syntax.Token
	for p.at(syntax.ConstKeyword) {
		mods = append(mods, p.advance())
	}
	typ := p.parseType()
	id := p.expectIdent("expected variable name")
	decl := p.parseVariableDeclarationRest(typ, id)
	semi := p.expectSemicolon("expected ';' after local declaration")
	return syntax.Build(syntax.LocalDeclarationStatement,
		syntax.TokenListSlot(mods...), syntax.NodeSlot(decl), syntax.TokenSlot(semi))
}

func (p *Parser) parseReturn() *syntax.Node {
	kw := p.advance()
	var expr *syntax.Node
	if !p.at(syntax.SemicolonToken) {
		expr = p.parseExpression()
	}
	semi := p.expectSemicolon("expected ';' after return")
	return syntax.Build(syntax.ReturnStatement, syntax.TokenSlot(kw), syntax.NodeSlot(expr), syntax.TokenSlot(semi))
}

// parseEmbedded — тело if/while/else; отсутствие оператора заменяем
// пустым оператором с пропущенной ';'.
func (p *Parser) parseEmbedded() *syntax.Node {
	if s := p.parseStatement(); s != nil {
		return s
	}
	p.err(diag.SynExpectStatement, "expected statement")
	return syntax.Build(syntax.EmptyStatement, syntax.TokenSlot(missing(syntax.SemicolonToken)))
}

func (p *Parser) parseCondition() (open *syntax.Token, cond *syntax.Node, closeTok *syntax.Token) {
	open = p.expect(syntax.OpenParenToken, diag.SynUnclosedParen, "expected '('")
	cond = p.parseExpression()
	closeTok = p.expect(syntax.CloseParenToken, diag.SynUnclosedParen, "expected ')'")
	return open, cond, closeTok
}

func (p *Parser) parseIf() *syntax.Node {
	kw := p.advance()
	open, cond, closeTok := p.parseCondition()
	body := p.parseEmbedded()
	var elseClause *syntax.Node
	if p.at(syntax.ElseKeyword) {
		elseKw := p.advance()
		elseClause = syntax.Build(syntax.ElseClause, syntax.TokenSlot(elseKw), syntax.NodeSlot(p.parseEmbedded()))
	}
	return syntax.Build(syntax.IfStatement,
		syntax.TokenSlot(kw), syntax.TokenSlot(open), syntax.NodeSlot(cond), syntax.TokenSlot(closeTok),
		syntax.NodeSlot(body), syntax.NodeSlot(elseClause))
}

func (p *Parser) parseWhile() *syntax.Node {
	kw := p.advance()
	open, cond, closeTok := p.parseCondition()
	body := p.parseEmbedded()
	return syntax.Build(syntax.WhileStatement,
		syntax.TokenSlot(kw), syntax.TokenSlot(open), syntax.NodeSlot(cond), syntax.TokenSlot(closeTok),
		syntax.NodeSlot(body))
}
