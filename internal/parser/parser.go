package parser

import (
	"slices"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// DefaultMaxDepth — предел вложенности выражений, операторов, типов и
// объявлений, если Options.MaxDepth не задан.
const DefaultMaxDepth = 1000

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	// MaxDepth ограничивает рекурсию разбора; 0 — DefaultMaxDepth.
	MaxDepth uint
	Reporter diag.Reporter
	Lexer    lexer.Options
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Root *syntax.Node
	File *source.File
}

// Parser — состояние парсера на один файл
type Parser struct {
	toks      []lexer.Item // весь поток токенов, последний всегда EOF
	pos       int
	file      *source.File
	opts      Options
	lastSpan  source.Span // span последнего съеденного токена для лучшей диагностики
	depth     uint
	scanDepth uint // вложенность <...> при просмотре вперёд
	tooDeep   bool // предел уже превышен; остальные ошибки файла не репортим
}

// ParseFile — входная точка для разбора одного файла. Лексер создаётся
// здесь же: парсеру нужен произвольный просмотр вперёд.
func ParseFile(file *source.File, opts Options) Result {
	if opts.Lexer.Reporter == nil {
		opts.Lexer.Reporter = opts.Reporter
	}
	lx := lexer.New(file, opts.Lexer)
	p := Parser{
		toks:     lx.All(),
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
	return Result{Root: p.parseCompilationUnit(), File: file}
}

// deeper входит на уровень вложенности. false значит, что предел превышен:
// вызывающий возвращает пустой узел, не съедая токенов. Парный shallower
// вызывается всегда.
func (p *Parser) deeper() bool {
	p.depth++
	if p.depth <= p.maxDepth() {
		return true
	}
	p.reportTooDeep()
	return false
}

func (p *Parser) shallower() { p.depth-- }

func (p *Parser) maxDepth() uint {
	if p.opts.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return p.opts.MaxDepth
}

func (p *Parser) reportTooDeep() {
	if !p.tooDeep {
		p.err(diag.SynTooDeep, "nesting is too deep")
		p.tooDeep = true
	}
}

// ParseText parses an in-memory source and collects lexer and parser
// diagnostics into a fresh bag.
func ParseText(path, text string, opts lexer.Options) (*syntax.Node, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(text)))
	bag := diag.NewBag(0)
	var rep diag.Reporter = diag.BagReporter{Bag: bag}
	if opts.Reporter != nil {
		rep = teeReporter{rep, opts.Reporter}
	}
	opts.Reporter = rep
	res := ParseFile(file, Options{Reporter: rep, Lexer: opts})
	return res.Root, bag
}

type teeReporter []diag.Reporter

func (t teeReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	for _, r := range t {
		r.Report(code, sev, primary, msg, notes)
	}
}

func (p *Parser) peek() *syntax.Token { return p.toks[p.pos].Tok }

// peekAt смотрит на n токенов вперёд; за концом потока всегда EOF.
func (p *Parser) peekAt(n int) *syntax.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i].Tok
	}
	return p.toks[len(p.toks)-1].Tok
}

func (p *Parser) kindAt(i int) syntax.Kind {
	if i < len(p.toks) {
		return p.toks[i].Tok.Kind
	}
	return syntax.EndOfFileToken
}

func (p *Parser) at(k syntax.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) at_or(kinds ...syntax.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseCompilationUnit — основной цикл верхнего уровня: using-директивы,
// затем объявления до EOF.
func (p *Parser) parseCompilationUnit() *syntax.Node {
	usings := p.parseUsings()
	members := p.parseMembers(false, syntax.EndOfFileToken)
	eof := p.peek()
	return syntax.Build(syntax.CompilationUnit,
		syntax.ListSlot(usings...),
		syntax.ListSlot(members...),
		syntax.TokenSlot(eof))
}

func (p *Parser) parseUsings() []*syntax.Node {
	var usings []*syntax.Node
	for p.at(syntax.UsingKeyword) {
		kw := p.advance()
		name := p.parseName()
		semi := p.expect(syntax.SemicolonToken, diag.SynExpectSemicolon, "expected ';' after using directive")
		usings = append(usings, syntax.Build(syntax.UsingDirective,
			syntax.TokenSlot(kw), syntax.NodeSlot(name), syntax.TokenSlot(semi)))
	}
	return usings
}

// parseMembers читает объявления до закрывающего токена. Токены, с которых
// не начинается ни одно объявление, пропускаются с диагностикой.
func (p *Parser) parseMembers(inType bool, until syntax.Kind) []*syntax.Node {
	var members []*syntax.Node
	for !p.at_or(until, syntax.EndOfFileToken) {
		start := p.pos
		if m := p.parseMember(inType); m != nil {
			members = append(members, m)
		}
		if p.pos == start {
			p.advance()
		}
	}
	return members
}

func (p *Parser) parseNamespace() *syntax.Node {
	kw := p.advance()
	name := p.parseName()
	open := p.expect(syntax.OpenBraceToken, diag.SynUnclosedBrace, "expected '{' after namespace name")
	usings := p.parseUsings()
	members := p.parseMembers(false, syntax.CloseBraceToken)
	closeTok := p.expect(syntax.CloseBraceToken, diag.SynUnclosedBrace, "expected '}' to close namespace")
	semi := p.optional(syntax.SemicolonToken)
	return syntax.Build(syntax.NamespaceDeclaration,
		syntax.TokenSlot(kw), syntax.NodeSlot(name), syntax.TokenSlot(open),
		syntax.ListSlot(usings...), syntax.ListSlot(members...),
		syntax.TokenSlot(closeTok), syntax.TokenSlot(semi))
}
