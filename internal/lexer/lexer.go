package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// Item is a token together with the span of its text (trivia excluded).
type Item struct {
	Tok  *syntax.Token
	Span source.Span
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *Item           // 1 элементный буфер для токена
	hold   []syntax.Trivia // накопленные leading trivia

	defines   map[string]bool
	conds     []condFrame   // открытые #if
	interps   []interpFrame // вложенные $"..."
	lineStart bool          // перед курсором в строке только пробелы
	quiet     int           // >0: подсматривание, ошибки не репортим
	dirDepth  int           // вложенность условия директивы
	done      bool
}

func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:      file,
		cursor:    NewCursor(file),
		opts:      opts,
		defines:   make(map[string]bool, len(opts.Defines)),
		lineStart: true,
	}
	for _, d := range opts.Defines {
		lx.defines[d] = true
	}
	return lx
}

// Next возвращает следующий значимый токен с уже собранными Leading и Trailing.
// После EOF всегда возвращает EOF без trivia.
func (lx *Lexer) Next() Item {
	if lx.look != nil {
		it := *lx.look
		lx.look = nil
		return it
	}
	if lx.done {
		return Item{Tok: syntax.NewToken(syntax.EndOfFileToken), Span: lx.emptySpan()}
	}

	// внутри текста интерполированной строки trivia нет
	if lx.inStringText() {
		if !lx.cursor.EOF() {
			it := lx.scanInterpolatedPart()
			lx.lineStart = false
			if !lx.inStringText() {
				it.Tok.Trailing = lx.collectTrailingTrivia()
			}
			return it
		}
		lx.report(diag.LexUnterminatedString, lx.interps[0].start, "unterminated interpolated string")
		lx.interps = lx.interps[:0]
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		if len(lx.interps) > 0 {
			lx.report(diag.LexUnterminatedString, lx.interps[0].start, "unterminated interpolated string")
			lx.interps = lx.interps[:0]
		}
		lx.finish()
		tok := syntax.NewToken(syntax.EndOfFileToken)
		tok.Leading = lx.takeHold()
		return Item{Tok: tok, Span: lx.emptySpan()}
	}

	start := lx.cursor.Mark()
	top := len(lx.interps)
	tok := lx.scanToken()
	sp := lx.cursor.SpanFrom(start)
	if top > 0 && len(lx.interps) == top {
		lx.trackInterpolation(tok)
	}
	tok.Leading = lx.takeHold()
	lx.lineStart = false
	if !lx.inStringText() {
		tok.Trailing = lx.collectTrailingTrivia()
	}
	return Item{Tok: tok, Span: sp}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() Item {
	it := lx.Next()
	lx.look = &it
	return it
}

// All lexes the rest of the file, EndOfFileToken included.
func (lx *Lexer) All() []Item {
	items := make([]Item, 0, len(lx.file.Content)/4+1)
	for {
		it := lx.Next()
		items = append(items, it)
		if it.Tok.Kind == syntax.EndOfFileToken {
			return items
		}
	}
}

// Defined reports whether a preprocessor symbol is currently defined.
func (lx *Lexer) Defined(name string) bool {
	return lx.defines[name]
}

func (lx *Lexer) scanToken() *syntax.Token {
	ch := lx.cursor.Peek()
	next := lx.cursor.PeekAt(1)
	switch {
	case (ch == '$' && next == '@' || ch == '@' && next == '$') && lx.cursor.PeekAt(2) == '"':
		return lx.scanInterpolatedStart(true)
	case ch == '@' && next == '"':
		return lx.scanVerbatimString()
	case ch == '$' && next == '"':
		return lx.scanInterpolatedStart(false)
	case ch == '@':
		return lx.scanIdentOrKeyword()
	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch), ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) finish() {
	if lx.done {
		return
	}
	lx.done = true
	for i := len(lx.conds) - 1; i >= 0; i-- {
		lx.report(diag.LexMissingEndIf, lx.conds[i].span, "#if without matching #endif")
	}
	lx.conds = nil
}

func (lx *Lexer) takeHold() []syntax.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func newToken(k syntax.Kind, text, value string) *syntax.Token {
	return &syntax.Token{Kind: k, Text: text, ValueText: value}
}

// missing builds a zero-width token standing in for an expected one.
func missing(k syntax.Kind) *syntax.Token {
	return &syntax.Token{Kind: k}
}
