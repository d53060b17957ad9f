package parser

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// parseType разбирает тип: встроенный или имя, затем суффиксы `?` и `[,]`.
func (p *Parser) parseType() *syntax.Node {
	ok := p.deeper()
	defer p.shallower()
	if !ok {
		return missingName()
	}
	var t *syntax.Node
	switch k := p.peek().Kind; {
	case k.IsPredefinedTypeKeyword():
		t = syntax.Build(syntax.PredefinedType, syntax.TokenSlot(p.advance()))
	case k == syntax.IdentifierToken:
		t = p.parseName()
	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.peek().Text+"'")
		return missingName()
	}
	return p.parseTypeSuffixes(t)
}

func (p *Parser) parseTypeSuffixes(t *syntax.Node) *syntax.Node {
	if p.at(syntax.QuestionToken) {
		t = syntax.Build(syntax.NullableType, syntax.NodeSlot(t), syntax.TokenSlot(p.advance()))
	}
	var ranks []*syntax.Node
	for p.at(syntax.OpenBracketToken) && p.isRankSpecifier(p.pos) {
		open := p.advance()
		var sizes sepList
		sizes.add(omittedSize())
		for p.at(syntax.CommaToken) {
			sizes.sep(p.advance())
			sizes.add(omittedSize())
		}
		closeTok := p.advance()
		ranks = append(ranks, syntax.Build(syntax.ArrayRankSpecifier,
			syntax.TokenSlot(open), sizes.slot(), syntax.TokenSlot(closeTok)))
	}
	if len(ranks) > 0 {
		t = syntax.Build(syntax.ArrayType, syntax.NodeSlot(t), syntax.ListSlot(ranks...))
	}
	return t
}

func omittedSize() *syntax.Node {
	return syntax.Build(syntax.OmittedArraySizeExpression,
		syntax.TokenSlot(syntax.NewToken(syntax.OmittedArraySizeExpressionToken)))
}

// isRankSpecifier: '[' ','* ']' начиная с i.
func (p *Parser) isRankSpecifier(i int) bool {
	if p.kindAt(i) != syntax.OpenBracketToken {
		return false
	}
	i++
	for p.kindAt(i) == syntax.CommaToken {
		i++
	}
	return p.kindAt(i) == syntax.CloseBracketToken
}

// parseName — IdentifierName, GenericName или их QualifiedName через точку.
func (p *Parser) parseName() *syntax.Node {
	name := p.parseSimpleName(true)
	for p.at(syntax.DotToken) {
		dot := p.advance()
		right := p.parseSimpleName(true)
		name = syntax.Build(syntax.QualifiedName, syntax.NodeSlot(name), syntax.TokenSlot(dot), syntax.NodeSlot(right))
	}
	return name
}

// parseSimpleName читает идентификатор и, если typeContext или просмотр
// вперёд это подтверждает, список аргументов типа.
func (p *Parser) parseSimpleName(typeContext bool) *syntax.Node {
	id := p.expectIdent("expected name, got '" + p.peek().Text + "'")
	if !p.at(syntax.LessThanToken) {
		return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(id))
	}
	if !typeContext && !p.isGenericArgumentsInExpression(p.pos) {
		return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(id))
	}
	return syntax.Build(syntax.GenericName, syntax.TokenSlot(id), syntax.NodeSlot(p.parseTypeArgumentList()))
}

func (p *Parser) parseTypeArgumentList() *syntax.Node {
	lt := p.advance()
	var args sepList
	for {
		args.add(p.parseType())
		if !p.at(syntax.CommaToken) {
			break
		}
		args.sep(p.advance())
	}
	gt := p.expect(syntax.GreaterThanToken, diag.SynUnexpectedToken, "expected '>' to close type arguments")
	return syntax.Build(syntax.TypeArgumentList, syntax.TokenSlot(lt), args.slot(), syntax.TokenSlot(gt))
}

// Просмотр вперёд без построения узлов: возвращают индекс за концом
// распознанного фрагмента или -1.

func (p *Parser) startsType(i int) bool {
	return p.scanType(i) >= 0
}

func (p *Parser) scanType(i int) int {
	switch k := p.kindAt(i); {
	case k.IsPredefinedTypeKeyword():
		i++
	case k == syntax.IdentifierToken:
		if i = p.scanName(i); i < 0 {
			return -1
		}
	default:
		return -1
	}
	if p.kindAt(i) == syntax.QuestionToken {
		i++
	}
	for p.isRankSpecifier(i) {
		i++
		for p.kindAt(i) == syntax.CommaToken {
			i++
		}
		i++
	}
	return i
}

func (p *Parser) scanName(i int) int {
	for {
		if p.kindAt(i) != syntax.IdentifierToken {
			return -1
		}
		i++
		if p.kindAt(i) == syntax.LessThanToken {
			if i = p.scanTypeArgs(i); i < 0 {
				return -1
			}
		}
		if p.kindAt(i) != syntax.DotToken {
			return i
		}
		i++
	}
}

func (p *Parser) scanTypeArgs(i int) int {
	p.scanDepth++
	defer func() { p.scanDepth-- }()
	if p.scanDepth > p.maxDepth() {
		p.reportTooDeep()
		return -1
	}
	i++ // <
	for {
		if i = p.scanType(i); i < 0 {
			return -1
		}
		if p.kindAt(i) != syntax.CommaToken {
			break
		}
		i++
	}
	if p.kindAt(i) != syntax.GreaterThanToken {
		return -1
	}
	return i + 1
}

// isGenericArgumentsInExpression решает неоднозначность `a < b` против
// `F<T>(x)`: список должен закрыться, и за ним должен идти токен, который
// не может продолжать сравнение.
func (p *Parser) isGenericArgumentsInExpression(i int) bool {
	end := p.scanTypeArgs(i)
	if end < 0 {
		return false
	}
	switch p.kindAt(end) {
	case syntax.OpenParenToken, syntax.CloseParenToken, syntax.CloseBracketToken,
		syntax.CloseBraceToken, syntax.ColonToken, syntax.SemicolonToken,
		syntax.CommaToken, syntax.DotToken, syntax.QuestionToken,
		syntax.EqualsEqualsToken, syntax.ExclamationEqualsToken,
		syntax.BarToken, syntax.CaretToken, syntax.BarBarToken,
		syntax.AmpersandAmpersandToken, syntax.EndOfFileToken:
		return true
	}
	return false
}

// looksLikeLocalDeclaration: `Type name` с последующими '=', ';' или ','.
func (p *Parser) looksLikeLocalDeclaration() bool {
	i := p.pos
	for p.kindAt(i) == syntax.ConstKeyword {
		i++
	}
	end := p.scanType(i)
	if end < 0 || p.kindAt(end) != syntax.IdentifierToken {
		return false
	}
	switch p.kindAt(end + 1) {
	case syntax.EqualsToken, syntax.SemicolonToken, syntax.CommaToken:
		return true
	}
	return false
}
