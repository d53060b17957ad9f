package parser

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// parseExpression — вход в разбор выражения: присваивание правоассоциативно.
func (p *Parser) parseExpression() *syntax.Node {
	ok := p.deeper()
	defer p.shallower()
	if !ok {
		return missingName()
	}
	left := p.parseConditional()
	if kind, ok := syntax.AssignmentExpressionKind(p.peek().Kind); ok {
		op := p.advance()
		right := p.parseExpression()
		return syntax.Build(kind, syntax.NodeSlot(left), syntax.TokenSlot(op), syntax.NodeSlot(right))
	}
	return left
}

func (p *Parser) parseConditional() *syntax.Node {
	cond := p.parseBinary(precCoalesce)
	if !p.at(syntax.QuestionToken) {
		return cond
	}
	q := p.advance()
	whenTrue := p.parseExpression()
	colon := p.expect(syntax.ColonToken, diag.SynUnexpectedToken, "expected ':' in conditional expression")
	whenFalse := p.parseExpression()
	return syntax.Build(syntax.ConditionalExpression,
		syntax.NodeSlot(cond), syntax.TokenSlot(q), syntax.NodeSlot(whenTrue),
		syntax.TokenSlot(colon), syntax.NodeSlot(whenFalse))
}

// parseBinary — precedence climbing по op_table.
func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parseUnary()
	for {
		opKind := p.peek().Kind
		prec, rightAssoc := getBinaryOperatorPrec(opKind)
		if prec < minPrec {
			return left
		}
		op := p.advance()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		var right *syntax.Node
		if p.deeper() {
			right = p.parseBinary(next)
		} else {
			right = missingName()
		}
		p.shallower()
		kind, _ := syntax.BinaryExpressionKind(opKind)
		left = syntax.Build(kind, syntax.NodeSlot(left), syntax.TokenSlot(op), syntax.NodeSlot(right))
	}
}

func (p *Parser) parseUnary() *syntax.Node {
	if kind, ok := syntax.UnaryExpressionKind(p.peek().Kind); ok {
		op := p.advance()
		deep := p.deeper()
		defer p.shallower()
		operand := missingName()
		if deep {
			operand = p.parseUnary()
		}
		return syntax.Build(kind, syntax.TokenSlot(op), syntax.NodeSlot(operand))
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix наращивает цепочку `.name`, `(args)`, `[args]` циклом.
func (p *Parser) parsePostfix(expr *syntax.Node) *syntax.Node {
	for {
		switch p.peek().Kind {
		case syntax.DotToken:
			dot := p.advance()
			name := p.parseSimpleName(false)
			expr = syntax.Build(syntax.SimpleMemberAccessExpression,
				syntax.NodeSlot(expr), syntax.TokenSlot(dot), syntax.NodeSlot(name))
		case syntax.OpenParenToken:
			args := p.parseArgumentList(syntax.ArgumentList, syntax.CloseParenToken)
			expr = syntax.Build(syntax.InvocationExpression, syntax.NodeSlot(expr), syntax.NodeSlot(args))
		case syntax.OpenBracketToken:
			args := p.parseArgumentList(syntax.BracketedArgumentList, syntax.CloseBracketToken)
			expr = syntax.Build(syntax.ElementAccessExpression, syntax.NodeSlot(expr), syntax.NodeSlot(args))
		default:
			return expr
		}
	}
}

func (p *Parser) startsExpression() bool {
	switch k := p.peek().Kind; {
	case k == syntax.IdentifierToken, k == syntax.NumericLiteralToken,
		k == syntax.StringLiteralToken, k == syntax.CharacterLiteralToken,
		k == syntax.TrueKeyword, k == syntax.FalseKeyword, k == syntax.NullKeyword,
		k == syntax.ThisKeyword, k == syntax.NewKeyword, k == syntax.OpenParenToken,
		k.IsInterpolatedStringStart(), k.IsPredefinedTypeKeyword():
		return true
	default:
		_, ok := syntax.UnaryExpressionKind(k)
		return ok
	}
}

func (p *Parser) parsePrimary() *syntax.Node {
	tok := p.peek()
	if kind, ok := syntax.LiteralExpressionKind(tok.Kind); ok {
		return syntax.Build(kind, syntax.TokenSlot(p.advance()))
	}
	switch {
	case tok.Kind == syntax.IdentifierToken:
		return p.parseSimpleName(false)
	case tok.Kind == syntax.ThisKeyword:
		return syntax.Build(syntax.ThisExpression, syntax.TokenSlot(p.advance()))
	case tok.Kind.IsPredefinedTypeKeyword():
		// int.Parse(...), string.Empty
		return syntax.Build(syntax.PredefinedType, syntax.TokenSlot(p.advance()))
	case tok.Kind == syntax.OpenParenToken:
		open := p.advance()
		inner := p.parseExpression()
		closeTok := p.expect(syntax.CloseParenToken, diag.SynUnclosedParen, "expected ')'")
		return syntax.Build(syntax.ParenthesizedExpression,
			syntax.TokenSlot(open), syntax.NodeSlot(inner), syntax.TokenSlot(closeTok))
	case tok.Kind == syntax.NewKeyword:
		kw := p.advance()
		typ := p.parseType()
		var args *syntax.Node
		if p.at(syntax.OpenParenToken) {
			args = p.parseArgumentList(syntax.ArgumentList, syntax.CloseParenToken)
		}
		return syntax.Build(syntax.ObjectCreationExpression,
			syntax.TokenSlot(kw), syntax.NodeSlot(typ), syntax.NodeSlot(args))
	case tok.Kind.IsInterpolatedStringStart():
		return p.parseInterpolatedString()
	}
	p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
	return missingName()
}

// parseArgumentList — `(...)` или `[...]` с именованными и ref/out/in аргументами.
func (p *Parser) parseArgumentList(kind, closeKind syntax.Kind) *syntax.Node {
	open := p.advance()
	var args sepList
	if !p.at(closeKind) {
		for {
			nameColon := p.parseNameColon()
			var refKind *syntax.Token
			if p.at_or(syntax.RefKeyword, syntax.OutKeyword, syntax.InKeyword) {
				refKind = p.advance()
			}
			expr := p.parseExpression()
			args.add(syntax.Build(syntax.Argument,
				syntax.NodeSlot(nameColon), syntax.TokenSlot(refKind), syntax.NodeSlot(expr)))
			if !p.at(syntax.CommaToken) {
				break
			}
			args.sep(p.advance())
		}
	}
	code, msg := diag.SynUnclosedParen, "expected ')' to close argument list"
	if closeKind == syntax.CloseBracketToken {
		code, msg = diag.SynUnclosedBracket, "expected ']' to close index arguments"
	}
	closeTok := p.expect(closeKind, code, msg)
	return syntax.Build(kind, syntax.TokenSlot(open), args.slot(), syntax.TokenSlot(closeTok))
}

// parseInterpolatedString собирает текстовые части и {интерполяции}
// между $" и ".
func (p *Parser) parseInterpolatedString() *syntax.Node {
	start := p.advance()
	var contents []*syntax.Node
loop:
	for {
		switch p.peek().Kind {
		case syntax.InterpolatedStringTextToken:
			contents = append(contents, syntax.Build(syntax.InterpolatedStringText, syntax.TokenSlot(p.advance())))
		case syntax.OpenBraceToken:
			contents = append(contents, p.parseInterpolation())
		default:
			break loop
		}
	}
	end := p.expect(syntax.InterpolatedStringEndToken, diag.SynBadInterpolation, "expected '\"' to close interpolated string")
	return syntax.Build(syntax.InterpolatedStringExpression,
		syntax.TokenSlot(start), syntax.ListSlot(contents...), syntax.TokenSlot(end))
}

func (p *Parser) parseInterpolation() *syntax.Node {
	open := p.advance()
	expr := p.parseExpression()
	var format *syntax.Node
	if p.at(syntax.ColonToken) {
		colon := p.advance()
		text := p.optional(syntax.InterpolatedStringTextToken)
		if text == nil {
			text = &syntax.Token{Kind: syntax.InterpolatedStringTextToken}
		}
		format = syntax.Build(syntax.InterpolationFormatClause, syntax.TokenSlot(colon), syntax.TokenSlot(text))
	}
	if !p.at(syntax.CloseBraceToken) {
		p.err(diag.SynBadInterpolation, "unexpected '"+p.peek().Text+"' in interpolation")
		for !p.at_or(syntax.CloseBraceToken, syntax.InterpolatedStringEndToken, syntax.EndOfFileToken) {
			p.advance()
		}
	}
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynBadInterpolation, "expected '}' to close interpolation")
	return syntax.Build(syntax.Interpolation,
		syntax.TokenSlot(open), syntax.NodeSlot(expr), syntax.NodeSlot(format), syntax.TokenSlot(closeTok))
}
