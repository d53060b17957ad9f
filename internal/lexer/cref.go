package lexer

import (
	"quoter/internal/syntax"
)

// parseCref разбирает значение атрибута cref: имя типа с точками и
// аргументами в фигурных скобках (`List{T}`), либо встроенный тип.
// '{' и '}' становятся LessThanToken/GreaterThanToken с исходным текстом.
// Возвращает nil, если значение не укладывается в эту грамматику.
func parseCref(v string) *syntax.Node {
	c := &crefParser{s: v}
	t := c.parseType()
	if t == nil || c.pos != len(c.s) {
		return nil
	}
	if t.Kind == syntax.PredefinedType {
		return syntax.Build(syntax.TypeCref, syntax.NodeSlot(t))
	}
	return syntax.Build(syntax.NameMemberCref, syntax.NodeSlot(t))
}

type crefParser struct {
	s   string
	pos int
}

func (c *crefParser) peek() byte {
	if c.pos >= len(c.s) {
		return 0
	}
	return c.s[c.pos]
}

func (c *crefParser) token(k syntax.Kind, n int) *syntax.Token {
	text := c.s[c.pos : c.pos+n]
	c.pos += n
	t := newToken(k, text, text)
	start := c.pos
	for c.peek() == ' ' {
		c.pos++
	}
	if c.pos > start {
		t.Trailing = []syntax.Trivia{{Kind: syntax.WhitespaceTrivia, Text: c.s[start:c.pos]}}
	}
	return t
}

func (c *crefParser) word() int {
	if !isIdentStartByte(c.peek()) {
		return 0
	}
	n := 1
	for c.pos+n < len(c.s) && isIdentContinueByte(c.s[c.pos+n]) {
		n++
	}
	return n
}

func (c *crefParser) parseType() *syntax.Node {
	n := c.word()
	if n == 0 {
		return nil
	}
	if k, ok := syntax.LookupKeyword(c.s[c.pos : c.pos+n]); ok {
		if !k.IsPredefinedTypeKeyword() {
			return nil
		}
		return syntax.Build(syntax.PredefinedType, syntax.TokenSlot(c.token(k, n)))
	}
	var name *syntax.Node
	name = c.parseSimpleName()
	for name != nil && c.peek() == '.' {
		dot := c.token(syntax.DotToken, 1)
		right := c.parseSimpleName()
		if right == nil {
			return nil
		}
		name = syntax.Build(syntax.QualifiedName, syntax.NodeSlot(name), syntax.TokenSlot(dot), syntax.NodeSlot(right))
	}
	return name
}

func (c *crefParser) parseSimpleName() *syntax.Node {
	n := c.word()
	if n == 0 {
		return nil
	}
	if _, ok := syntax.LookupKeyword(c.s[c.pos : c.pos+n]); ok {
		return nil
	}
	id := c.token(syntax.IdentifierToken, n)
	if c.peek() != '{' {
		return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(id))
	}
	open := c.token(syntax.LessThanToken, 1)
	var args []*syntax.Node
	var seps []*syntax.Token
	for {
		arg := c.parseType()
		if arg == nil {
			return nil
		}
		args = append(args, arg)
		if c.peek() != ',' {
			break
		}
		seps = append(seps, c.token(syntax.CommaToken, 1))
	}
	if c.peek() != '}' {
		return nil
	}
	closeTok := c.token(syntax.GreaterThanToken, 1)
	list := syntax.Build(syntax.TypeArgumentList,
		syntax.TokenSlot(open), syntax.SeparatedSlot(args, seps), syntax.TokenSlot(closeTok))
	return syntax.Build(syntax.GenericName, syntax.TokenSlot(id), syntax.NodeSlot(list))
}
