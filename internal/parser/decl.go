package parser

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// parseMember разбирает одно объявление. Вне типа допустимы только
// namespace и объявления типов; поля, методы и свойства — только внутри.
func (p *Parser) parseMember(inType bool) *syntax.Node {
	ok := p.deeper()
	defer p.shallower()
	if !ok {
		return nil
	}
	if p.at(syntax.UsingKeyword) {
		p.resyncMember(diag.SynUnexpectedTopLevel, "using directive must precede declarations")
		return nil
	}
	attrs := p.parseAttributeLists()
	mods := p.parseModifiers()

	switch p.peek().Kind {
	case syntax.NamespaceKeyword:
		if inType {
			p.resyncMember(diag.SynExpectMember, "namespace cannot be declared inside a type")
			return nil
		}
		if len(attrs) > 0 || len(mods) > 0 {
			p.err(diag.SynModifierNotAllowed, "namespace declaration cannot have attributes or modifiers")
		}
		return p.parseNamespace()
	case syntax.ClassKeyword, syntax.StructKeyword, syntax.InterfaceKeyword:
		return p.parseTypeDecl(attrs, mods)
	case syntax.EnumKeyword:
		return p.parseEnumDecl(attrs, mods)
	}

	if !inType {
		p.resyncMember(diag.SynUnexpectedTopLevel, "expected namespace or type declaration, got '"+p.peek().Text+"'")
		return nil
	}
	if !p.startsType(p.pos) {
		p.resyncMember(diag.SynExpectMember, "unexpected '"+p.peek().Text+"', expected a member declaration")
		return nil
	}

	typ := p.parseType()
	id := p.expectIdent("expected member name")
	switch {
	case p.at_or(syntax.OpenParenToken, syntax.LessThanToken):
		return p.parseMethodRest(attrs, mods, typ, id)
	case p.at_or(syntax.OpenBraceToken, syntax.EqualsGreaterThanToken):
		return p.parsePropertyRest(attrs, mods, typ, id)
	}
	decl := p.parseVariableDeclarationRest(typ, id)
	semi := p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected ';' after field declaration")
	return syntax.Build(syntax.FieldDeclaration,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.NodeSlot(decl), syntax.TokenSlot(semi))
}

func (p *Parser) parseModifiers() []*syntax.Token {
	var mods []*syntax.Token
	for p.peek().Kind.IsModifier() {
		mods = append(mods, p.advance())
	}
	return mods
}

// parseTypeDecl — class / struct / interface.
func (p *Parser) parseTypeDecl(attrs []*syntax.Node, mods []*syntax.Token) *syntax.Node {
	kw := p.advance()
	kind := syntax.ClassDeclaration
	switch kw.Kind {
	case syntax.StructKeyword:
		kind = syntax.StructDeclaration
	case syntax.InterfaceKeyword:
		kind = syntax.InterfaceDeclaration
	}
	id := p.expectIdent("expected type name")
	var typeParams *syntax.Node
	if p.at(syntax.LessThanToken) {
		typeParams = p.parseTypeParameterList()
	}
	var bases *syntax.Node
	if p.at(syntax.ColonToken) {
		bases = p.parseBaseList()
	}
	open := p.expect(syntax.OpenBraceToken, diag.SynUnclosedBrace, "expected '{' to open type body")
	members := p.parseMembers(true, syntax.CloseBraceToken)
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynUnclosedBrace, "expected '}' to close type body")
	semi := p.optional(syntax.SemicolonToken)
	return syntax.Build(kind,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.TokenSlot(kw), syntax.TokenSlot(id),
		syntax.NodeSlot(typeParams), syntax.NodeSlot(bases),
		syntax.TokenSlot(open), syntax.ListSlot(members...), syntax.TokenSlot(closeTok),
		syntax.TokenSlot(semi))
}

func (p *Parser) parseEnumDecl(attrs []*syntax.Node, mods []*syntax.Token) *syntax.Node {
	kw := p.advance()
	id := p.expectIdent("expected enum name")
	var bases *syntax.Node
	if p.at(syntax.ColonToken) {
		bases = p.parseBaseList()
	}
	open := p.expect(syntax.OpenBraceToken, diag.SynUnclosedBrace, "expected '{' to open enum body")
	var members sepList
	for !p.at_or(syntax.CloseBraceToken, syntax.EndOfFileToken) {
		memberAttrs := p.parseAttributeLists()
		name := p.expectIdent("expected enum member name")
		var value *syntax.Node
		if p.at(syntax.EqualsToken) {
			value = p.parseEqualsValue()
		}
		members.add(syntax.Build(syntax.EnumMemberDeclaration,
			syntax.ListSlot(memberAttrs...), syntax.TokenSlot(name), syntax.NodeSlot(value)))
		comma := p.optional(syntax.CommaToken)
		if comma == nil {
			break
		}
		members.sep(comma)
	}
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynUnclosedBrace, "expected '}' to close enum body")
	semi := p.optional(syntax.SemicolonToken)
	return syntax.Build(syntax.EnumDeclaration,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.TokenSlot(kw), syntax.TokenSlot(id), syntax.NodeSlot(bases),
		syntax.TokenSlot(open), members.slot(), syntax.TokenSlot(closeTok),
		syntax.TokenSlot(semi))
}

func (p *Parser) parseMethodRest(attrs []*syntax.Node, mods []*syntax.Token, ret *syntax.Node, id *syntax.Token) *syntax.Node {
	var typeParams *syntax.Node
	if p.at(syntax.LessThanToken) {
		typeParams = p.parseTypeParameterList()
	}
	params := p.parseParameterList()
	body, arrow, semi := p.parseBody("method")
	return syntax.Build(syntax.MethodDeclaration,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.NodeSlot(ret), syntax.TokenSlot(id), syntax.NodeSlot(typeParams),
		syntax.NodeSlot(params), syntax.NodeSlot(body), syntax.NodeSlot(arrow),
		syntax.TokenSlot(semi))
}

// parseBody — тело метода или аксессора: блок, `=> expr;` или `;`.
func (p *Parser) parseBody(what string) (body, arrow *syntax.Node, semi *syntax.Token) {
	switch {
	case p.at(syntax.OpenBraceToken):
		body = p.parseBlock()
	case p.at(syntax.EqualsGreaterThanToken):
		arrow = p.parseArrowClause()
		semi = p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected ';' after expression body")
	default:
		semi = p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected "+what+" body or ';'")
	}
	return body, arrow, semi
}

func (p *Parser) parseArrowClause() *syntax.Node {
	arrow := p.advance()
	expr := p.parseExpression()
	return syntax.Build(syntax.ArrowExpressionClause, syntax.TokenSlot(arrow), syntax.NodeSlot(expr))
}

func (p *Parser) parsePropertyRest(attrs []*syntax.Node, mods []*syntax.Token, typ *syntax.Node, id *syntax.Token) *syntax.Node {
	var accessors, arrow, init *syntax.Node
	var semi *syntax.Token
	if p.at(syntax.EqualsGreaterThanToken) {
		arrow = p.parseArrowClause()
		semi = p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected ';' after property expression body")
	} else {
		accessors = p.parseAccessorList()
		if p.at(syntax.EqualsToken) {
			init = p.parseEqualsValue()
			semi = p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected ';' after property initializer")
		}
	}
	return syntax.Build(syntax.PropertyDeclaration,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.NodeSlot(typ), syntax.TokenSlot(id),
		syntax.NodeSlot(accessors), syntax.NodeSlot(arrow), syntax.NodeSlot(init),
		syntax.TokenSlot(semi))
}

func (p *Parser) parseAccessorList() *syntax.Node {
	open := p.advance()
	var accessors []*syntax.Node
	for !p.at_or(syntax.CloseBraceToken, syntax.EndOfFileToken) {
		start := p.pos
		attrs := p.parseAttributeLists()
		mods := p.parseModifiers()
		kw := p.peek()
		kind, ok := syntax.LookupContextualKeyword(kw.Text)
		if kw.Kind != syntax.IdentifierToken || !ok {
			p.err(diag.SynExpectAccessor, "expected 'get' or 'set' accessor")
			if p.pos == start {
				p.advance()
			}
			continue
		}
		// get/set приходят из лексера идентификаторами
		kw.Kind = kind
		p.advance()
		body, arrow, semi := p.parseBody("accessor")
		nodeKind := syntax.GetAccessorDeclaration
		if kind == syntax.SetKeyword {
			nodeKind = syntax.SetAccessorDeclaration
		}
		accessors = append(accessors, syntax.Build(nodeKind,
			syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...), syntax.TokenSlot(kw),
			syntax.NodeSlot(body), syntax.NodeSlot(arrow), syntax.TokenSlot(semi)))
	}
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynUnclosedBrace, "expected '}' to close accessor list")
	return syntax.Build(syntax.AccessorList,
		syntax.TokenSlot(open), syntax.ListSlot(accessors...), syntax.TokenSlot(closeTok))
}

// parseVariableDeclarationRest продолжает объявление переменных после
// уже прочитанных типа и первого имени.
func (p *Parser) parseVariableDeclarationRest(typ *syntax.Node, id *syntax.Token) *syntax.Node {
	var vars sepList
	for {
		var init *syntax.Node
		if p.at(syntax.EqualsToken) {
			init = p.parseEqualsValue()
		}
		vars.add(syntax.Build(syntax.VariableDeclarator, syntax.TokenSlot(id), syntax.NodeSlot(init)))
		if !p.at(syntax.CommaToken) {
			break
		}
		vars.sep(p.advance())
		id = p.expectIdent("expected variable name")
	}
	return syntax.Build(syntax.VariableDeclaration, syntax.NodeSlot(typ), vars.slot())
}

func (p *Parser) parseEqualsValue() *syntax.Node {
	eq := p.advance()
	value := p.parseExpression()
	return syntax.Build(syntax.EqualsValueClause, syntax.TokenSlot(eq), syntax.NodeSlot(value))
}

func (p *Parser) parseParameterList() *syntax.Node {
	open := p.expect(syntax.OpenParenToken, diag.SynUnclosedParen, "expected '(' to open parameter list")
	var params sepList
	if !p.at(syntax.CloseParenToken) {
		for {
			params.add(p.parseParameter())
			if !p.at(syntax.CommaToken) {
				break
			}
			params.sep(p.advance())
		}
	}
	closeTok := p.expect(syntax.CloseParenToken, diag.SynUnclosedParen, "expected ')' to close parameter list")
	return syntax.Build(syntax.ParameterList, syntax.TokenSlot(open), params.slot(), syntax.TokenSlot(closeTok))
}

func (p *Parser) parseParameter() *syntax.Node {
	attrs := p.parseAttributeLists()
	var mods []*syntax.Token
	for p.at_or(syntax.RefKeyword, syntax.OutKeyword, syntax.InKeyword, syntax.ParamsKeyword) {
		mods = append(mods, p.advance())
	}
	typ := p.parseType()
	id := p.expectIdent("expected parameter name")
	var def *syntax.Node
	if p.at(syntax.EqualsToken) {
		def = p.parseEqualsValue()
	}
	return syntax.Build(syntax.Parameter,
		syntax.ListSlot(attrs...), syntax.TokenListSlot(mods...),
		syntax.NodeSlot(typ), syntax.TokenSlot(id), syntax.NodeSlot(def))
}

func (p *Parser) parseTypeParameterList() *syntax.Node {
	lt := p.advance()
	var params sepList
	for {
		attrs := p.parseAttributeLists()
		var variance *syntax.Token
		if p.at_or(syntax.InKeyword, syntax.OutKeyword) {
			variance = p.advance()
		}
		id := p.expectIdent("expected type parameter name")
		params.add(syntax.Build(syntax.TypeParameter,
			syntax.ListSlot(attrs...), syntax.TokenSlot(variance), syntax.TokenSlot(id)))
		if !p.at(syntax.CommaToken) {
			break
		}
		params.sep(p.advance())
	}
	gt := p.expect(syntax.GreaterThanToken, diag.SynUnexpectedToken, "expected '>' to close type parameter list")
	return syntax.Build(syntax.TypeParameterList, syntax.TokenSlot(lt), params.slot(), syntax.TokenSlot(gt))
}

func (p *Parser) parseBaseList() *syntax.Node {
	colon := p.advance()
	var types sepList
	for {
		types.add(syntax.Build(syntax.SimpleBaseType, syntax.NodeSlot(p.parseType())))
		if !p.at(syntax.CommaToken) {
			break
		}
		types.sep(p.advance())
	}
	return syntax.Build(syntax.BaseList, syntax.TokenSlot(colon), types.slot())
}

// parseAttributeLists — ноль или больше `[A, B(x)]`.
func (p *Parser) parseAttributeLists() []*syntax.Node {
	var lists []*syntax.Node
	for p.at(syntax.OpenBracketToken) {
		open := p.advance()
		var attrs sepList
		for {
			name := p.parseName()
			var args *syntax.Node
			if p.at(syntax.OpenParenToken) {
				args = p.parseAttributeArgumentList()
			}
			attrs.add(syntax.Build(syntax.Attribute, syntax.NodeSlot(name), syntax.NodeSlot(args)))
			if !p.at(syntax.CommaToken) {
				break
			}
			attrs.sep(p.advance())
		}
		closeTok := p.expect(syntax.CloseBracketToken, diag.SynUnclosedBracket, "expected ']' to close attribute list")
		lists = append(lists, syntax.Build(syntax.AttributeList,
			syntax.TokenSlot(open), attrs.slot(), syntax.TokenSlot(closeTok)))
	}
	return lists
}

func (p *Parser) parseAttributeArgumentList() *syntax.Node {
	open := p.advance()
	var args sepList
	if !p.at(syntax.CloseParenToken) {
		for {
			nameColon := p.parseNameColon()
			expr := p.parseExpression()
			args.add(syntax.Build(syntax.AttributeArgument, syntax.NodeSlot(nameColon), syntax.NodeSlot(expr)))
			if !p.at(syntax.CommaToken) {
				break
			}
			args.sep(p.advance())
		}
	}
	closeTok := p.expect(syntax.CloseParenToken, diag.SynUnclosedParen, "expected ')' to close attribute arguments")
	return syntax.Build(syntax.AttributeArgumentList, syntax.TokenSlot(open), args.slot(), syntax.TokenSlot(closeTok))
}

// parseNameColon читает `name:` перед аргументом, если он есть.
func (p *Parser) parseNameColon() *syntax.Node {
	if !p.at(syntax.IdentifierToken) || p.peekAt(1).Kind != syntax.ColonToken {
		return nil
	}
	name := syntax.Build(syntax.IdentifierName, syntax.TokenSlot(p.advance()))
	colon := p.advance()
	return syntax.Build(syntax.NameColon, syntax.NodeSlot(name), syntax.TokenSlot(colon))
}
