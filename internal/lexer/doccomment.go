package lexer

import (
	"errors"

	"quoter/internal/syntax"
)

// docLine — одна строка /// комментария: [ext) отступ плюс "///",
// [body) содержимое, [eol) перевод строки (может быть пустым у последней).
type docLine struct {
	extStart, extEnd uint32
	bodyEnd          uint32
	eolEnd           uint32
}

var errMalformedDoc = errors.New("malformed documentation XML")

// scanDocComment собирает подряд идущие строки /// в одну
// SingleLineDocumentationCommentTrivia. Отступ перед первым /// остаётся
// обычным WhitespaceTrivia; отступы следующих строк входят в exterior.
// Последний перевод строки принадлежит комментарию.
func (lx *Lexer) scanDocComment() syntax.Trivia {
	var lines []docLine
	extStart := lx.cursor.Off
	for {
		lx.cursor.BumpN(3)
		ln := docLine{extStart: extStart, extEnd: lx.cursor.Off}
		lx.cursor.Off = lx.cursor.LineEnd()
		ln.bodyEnd = lx.cursor.Off
		lx.scanNewlineInto(nil)
		ln.eolEnd = lx.cursor.Off
		lines = append(lines, ln)
		if ln.eolEnd == ln.bodyEnd {
			break
		}
		var i uint32
		for isWhitespace(lx.cursor.PeekAt(i)) {
			i++
		}
		if lx.cursor.PeekAt(i) != '/' || lx.cursor.PeekAt(i+1) != '/' ||
			lx.cursor.PeekAt(i+2) != '/' || lx.cursor.PeekAt(i+3) == '/' {
			break
		}
		extStart = lx.cursor.Off
		lx.cursor.BumpN(int(i))
	}

	p := &docParser{src: lx.file.Content, lines: lines}
	p.enterLine(0)
	content, err := p.parseContent(false)
	if err != nil {
		p = &docParser{src: lx.file.Content, lines: lines}
		content = p.flat()
	}
	eoc := syntax.NewToken(syntax.EndOfDocumentationCommentToken)
	eoc.Leading = p.takePending()
	n := syntax.Build(syntax.SingleLineDocumentationCommentTrivia,
		syntax.ListSlot(content...), syntax.TokenSlot(eoc))
	return syntax.Trivia{Kind: n.Kind, Structure: n}
}

// docParser разбирает XML документации поверх строк комментария.
// Теги не переносятся через строки: иначе весь комментарий становится
// плоским XmlText.
type docParser struct {
	src     []byte
	lines   []docLine
	li      int
	pos     uint32
	pending []syntax.Trivia
	done    bool
}

func (p *docParser) enterLine(i int) {
	ln := p.lines[i]
	p.li = i
	p.pos = ln.extEnd
	p.pending = append(p.pending, syntax.Trivia{
		Kind: syntax.DocumentationCommentExteriorTrivia,
		Text: string(p.src[ln.extStart:ln.extEnd]),
	})
}

func (p *docParser) takePending() []syntax.Trivia {
	out := p.pending
	p.pending = nil
	return out
}

func (p *docParser) tok(k syntax.Kind, text string) *syntax.Token {
	t := newToken(k, text, text)
	t.Leading = p.takePending()
	p.pos += uint32(len(text))
	return t
}

func (p *docParser) bodyEnd() uint32 { return p.lines[p.li].bodyEnd }
func (p *docParser) atLineEnd() bool { return p.pos >= p.bodyEnd() }

func (p *docParser) peek(n uint32) byte {
	if p.pos+n >= p.bodyEnd() {
		return 0
	}
	return p.src[p.pos+n]
}

// newline выдаёт перевод строки текущей строки и переходит к следующей.
// Возвращает nil, если строка последняя и без перевода.
func (p *docParser) newline() *syntax.Token {
	ln := p.lines[p.li]
	last := p.li == len(p.lines)-1
	var t *syntax.Token
	if ln.eolEnd > ln.bodyEnd {
		t = p.tok(syntax.XmlTextLiteralNewLineToken, string(p.src[ln.bodyEnd:ln.eolEnd]))
	}
	if last {
		p.done = true
	} else {
		p.enterLine(p.li + 1)
	}
	return t
}

func (p *docParser) parseContent(inElement bool) ([]*syntax.Node, error) {
	var nodes []*syntax.Node
	var text []*syntax.Token
	flush := func() {
		if len(text) > 0 {
			nodes = append(nodes, syntax.Build(syntax.XmlText, syntax.TokenListSlot(text...)))
			text = nil
		}
	}
	for !p.done {
		if p.atLineEnd() {
			if t := p.newline(); t != nil {
				text = append(text, t)
			}
			continue
		}
		if p.src[p.pos] == '<' {
			switch next := p.peek(1); {
			case next == '/':
				if !inElement {
					return nil, errMalformedDoc
				}
				flush()
				return nodes, nil
			case isXMLNameStart(next):
				flush()
				el, err := p.parseElement()
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, el)
				continue
			default:
				return nil, errMalformedDoc
			}
		}
		start := p.pos
		end := start
		for end < p.bodyEnd() && p.src[end] != '<' {
			end++
		}
		text = append(text, p.tok(syntax.XmlTextLiteralToken, string(p.src[start:end])))
	}
	if inElement {
		return nil, errMalformedDoc
	}
	flush()
	return nodes, nil
}

func (p *docParser) parseElement() (*syntax.Node, error) {
	lt := p.tok(syntax.LessThanToken, "<")
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var attrs []*syntax.Node
	for {
		switch {
		case p.atLineEnd():
			return nil, errMalformedDoc
		case p.src[p.pos] == '>':
			gt := p.tok(syntax.GreaterThanToken, ">")
			start := syntax.Build(syntax.XmlElementStartTag,
				syntax.TokenSlot(lt), syntax.NodeSlot(name), syntax.ListSlot(attrs...), syntax.TokenSlot(gt))
			content, err := p.parseContent(true)
			if err != nil {
				return nil, err
			}
			end, err := p.parseEndTag(name)
			if err != nil {
				return nil, err
			}
			return syntax.Build(syntax.XmlElement,
				syntax.NodeSlot(start), syntax.ListSlot(content...), syntax.NodeSlot(end)), nil
		case p.src[p.pos] == '/' && p.peek(1) == '>':
			sgt := p.tok(syntax.SlashGreaterThanToken, "/>")
			return syntax.Build(syntax.XmlEmptyElement,
				syntax.TokenSlot(lt), syntax.NodeSlot(name), syntax.ListSlot(attrs...), syntax.TokenSlot(sgt)), nil
		case isXMLNameStart(p.src[p.pos]):
			attr, err := p.parseAttribute()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		default:
			return nil, errMalformedDoc
		}
	}
}

func (p *docParser) parseEndTag(open *syntax.Node) (*syntax.Node, error) {
	lts := p.tok(syntax.LessThanSlashToken, "</")
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if name.Slots[0].Token.Text != open.Slots[0].Token.Text {
		return nil, errMalformedDoc
	}
	if p.atLineEnd() || p.src[p.pos] != '>' {
		return nil, errMalformedDoc
	}
	gt := p.tok(syntax.GreaterThanToken, ">")
	return syntax.Build(syntax.XmlElementEndTag,
		syntax.TokenSlot(lts), syntax.NodeSlot(name), syntax.TokenSlot(gt)), nil
}

func (p *docParser) parseName() (*syntax.Node, error) {
	if p.atLineEnd() || !isXMLNameStart(p.src[p.pos]) {
		return nil, errMalformedDoc
	}
	end := p.pos + 1
	for end < p.bodyEnd() && isXMLNameContinue(p.src[end]) {
		end++
	}
	id := p.tok(syntax.IdentifierToken, string(p.src[p.pos:end]))
	p.trailingSpace(id)
	return syntax.Build(syntax.XmlName, syntax.TokenSlot(id)), nil
}

func (p *docParser) parseAttribute() (*syntax.Node, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if p.atLineEnd() || p.src[p.pos] != '=' {
		return nil, errMalformedDoc
	}
	eq := p.tok(syntax.EqualsToken, "=")
	p.trailingSpace(eq)
	if p.atLineEnd() {
		return nil, errMalformedDoc
	}
	q := p.src[p.pos]
	qk := syntax.DoubleQuoteToken
	switch q {
	case '"':
	case '\'':
		qk = syntax.SingleQuoteToken
	default:
		return nil, errMalformedDoc
	}
	open := p.tok(qk, string(q))
	start := p.pos
	end := start
	for end < p.bodyEnd() && p.src[end] != q {
		if p.src[end] == '<' {
			return nil, errMalformedDoc
		}
		end++
	}
	if end >= p.bodyEnd() {
		return nil, errMalformedDoc
	}
	value := string(p.src[start:end])

	if name.Slots[0].Token.Text == "cref" {
		if cref := parseCref(value); cref != nil {
			p.pos = end
			closeQ := p.tok(qk, string(q))
			p.trailingSpace(closeQ)
			return syntax.Build(syntax.XmlCrefAttribute,
				syntax.NodeSlot(name), syntax.TokenSlot(eq), syntax.TokenSlot(open),
				syntax.NodeSlot(cref), syntax.TokenSlot(closeQ)), nil
		}
	}
	var text []*syntax.Token
	if value != "" {
		text = append(text, p.tok(syntax.XmlTextLiteralToken, value))
	}
	closeQ := p.tok(qk, string(q))
	p.trailingSpace(closeQ)
	return syntax.Build(syntax.XmlTextAttribute,
		syntax.NodeSlot(name), syntax.TokenSlot(eq), syntax.TokenSlot(open),
		syntax.TokenListSlot(text...), syntax.TokenSlot(closeQ)), nil
}

func (p *docParser) trailingSpace(t *syntax.Token) {
	start := p.pos
	for p.pos < p.bodyEnd() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	if p.pos > start {
		t.Trailing = []syntax.Trivia{{Kind: syntax.WhitespaceTrivia, Text: string(p.src[start:p.pos])}}
	}
}

// flat строит запасной вариант: каждая строка — текст и перевод строки.
func (p *docParser) flat() []*syntax.Node {
	p.enterLine(0)
	var text []*syntax.Token
	for !p.done {
		if !p.atLineEnd() {
			text = append(text, p.tok(syntax.XmlTextLiteralToken, string(p.src[p.pos:p.bodyEnd()])))
		}
		if t := p.newline(); t != nil {
			text = append(text, t)
		}
	}
	if len(text) == 0 {
		return nil
	}
	return []*syntax.Node{syntax.Build(syntax.XmlText, syntax.TokenListSlot(text...))}
}

func isXMLNameStart(b byte) bool {
	return b == '_' || b == ':' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isXMLNameContinue(b byte) bool {
	return isXMLNameStart(b) || isDec(b) || b == '-' || b == '.'
}
