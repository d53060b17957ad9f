package parser

import (
	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// advance — съедает следующий токен и обновляет lastSpan. EOF не съедается.
func (p *Parser) advance() *syntax.Token {
	it := p.toks[p.pos]
	if it.Tok.Kind != syntax.EndOfFileToken {
		p.pos++
		p.lastSpan = it.Span
	}
	return it.Tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// На EOF указываем сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	it := p.toks[p.pos]
	if it.Tok.Kind == syntax.EndOfFileToken && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return it.Span
}

// expect — ожидаем конкретный токен. Если его нет — репортим и возвращаем
// отсутствующий токен нулевой ширины, ничего не съедая.
func (p *Parser) expect(k syntax.Kind, code diag.Code, msg string) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	p.err(code, msg)
	return missing(k)
}

// optional съедает токен k, если он следующий; иначе nil.
func (p *Parser) optional(k syntax.Kind) *syntax.Token {
	if p.at(k) {
		return p.advance()
	}
	return nil
}

// expectIdent — как expect для идентификатора.
func (p *Parser) expectIdent(msg string) *syntax.Token {
	return p.expect(syntax.IdentifierToken, diag.SynExpectIdentifier, msg)
}

func missing(k syntax.Kind) *syntax.Token {
	return &syntax.Token{Kind: k}
}

func missingName() *syntax.Node {
	return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(missing(syntax.IdentifierToken)))
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.tooDeep {
		return false
	}
	if sev.Blocking() {
		if p.opts.Enough() {
			return false // достигли максимального количества ошибок
		}
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// resyncMember пропускает токены до начала следующего объявления.
// Пропущенные токены в дерево не попадают: такое дерево всё равно ошибочное.
func (p *Parser) resyncMember(code diag.Code, msg string) {
	p.err(code, msg)
	p.advance()
	for !p.at(syntax.EndOfFileToken) {
		switch k := p.peek().Kind; {
		case k == syntax.CloseBraceToken, k == syntax.OpenBracketToken,
			k == syntax.NamespaceKeyword, k == syntax.ClassKeyword, k == syntax.StructKeyword,
			k == syntax.InterfaceKeyword, k == syntax.EnumKeyword, k.IsModifier():
			return
		case k == syntax.SemicolonToken:
			p.advance()
			return
		}
		p.advance()
	}
}

// resyncStatement пропускает токены до ';' включительно или до '}'.
func (p *Parser) resyncStatement() {
	for !p.at_or(syntax.EndOfFileToken, syntax.CloseBraceToken) {
		if p.advance().Kind == syntax.SemicolonToken {
			return
		}
	}
}

// sepList накапливает элементы и разделители списка через запятую.
type sepList struct {
	nodes []*syntax.Node
	seps  []*syntax.Token
}

func (l *sepList) add(n *syntax.Node) { l.nodes = append(l.nodes, n) }

func (l *sepList) sep(t *syntax.Token) { l.seps = append(l.seps, t) }

func (l *sepList) slot() syntax.Slot { return syntax.SeparatedSlot(l.nodes, l.seps) }
