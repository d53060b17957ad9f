package format

import (
	"strings"

	"quoter/internal/syntax"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

type separator uint8

const (
	sepNone separator = iota
	sepSpace
	sepNewline
)

// Writer places canonical whitespace between consecutive tokens. Space and
// Newline only record a request; it is turned into trivia when the next
// token is written: a space or line break becomes trailing trivia of the
// previous token, indentation becomes leading trivia of the next one.
//
// Only whitespace and line breaks are replaced. Comments stay next to the
// token they were attached to, directives and disabled text start at
// column 0, doc comments and leading comments get a line of their own.
type Writer struct {
	opt         Options
	prev        *syntax.Token
	prevKept    []syntax.Trivia // комментарии, стоявшие после prev в исходнике
	pending     separator
	indentLevel int
	raw         bool // внутри $"...": канонические пробелы не ставятся
}

// NewWriter creates a new trivia writer.
func NewWriter(opt Options) *Writer {
	return &Writer{opt: opt.withDefaults()}
}

var (
	space = syntax.Trivia{Kind: syntax.WhitespaceTrivia, Text: " "}
	eol   = syntax.Trivia{Kind: syntax.EndOfLineTrivia, Text: "\n"}
)

func (w *Writer) indent() []syntax.Trivia {
	if w.indentLevel == 0 {
		return nil
	}
	text := strings.Repeat(" ", w.indentLevel*w.opt.IndentWidth)
	if w.opt.UseTabs {
		text = strings.Repeat("\t", w.indentLevel)
	}
	return []syntax.Trivia{{Kind: syntax.WhitespaceTrivia, Text: text}}
}

// Space requests a single space unless a line break is already pending.
func (w *Writer) Space() {
	if w.pending == sepNone {
		w.pending = sepSpace
	}
}

// Newline requests a line break before the next token.
func (w *Writer) Newline() {
	w.pending = sepNewline
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// SetRaw switches canonical whitespace off between the tokens written next.
func (w *Writer) SetRaw(raw bool) {
	w.raw = raw
}

// kept returns the trivia that survive formatting, in source order.
func kept(list []syntax.Trivia) []syntax.Trivia {
	var out []syntax.Trivia
	for _, tr := range list {
		if tr.Kind != syntax.WhitespaceTrivia && tr.Kind != syntax.EndOfLineTrivia {
			out = append(out, tr)
		}
	}
	return out
}

// WriteToken replaces the token's whitespace with the pending separator.
func (w *Writer) WriteToken(t *syntax.Token) {
	lead, trail := kept(t.Leading), kept(t.Trailing)
	t.Leading, t.Trailing = nil, nil
	switch {
	case w.prev == nil:
		t.Leading = w.leadingLines(lead, t)
	case w.raw:
		w.prev.Trailing = appendRaw(w.prev.Trailing, w.prevKept)
		t.Leading = appendRaw(nil, lead)
	default:
		w.join(t, lead)
	}
	w.pending = sepNone
	w.prev, w.prevKept = t, trail
}

// Close flushes comments that trailed the last written token.
func (w *Writer) Close() {
	if w.prev == nil {
		return
	}
	for _, c := range w.prevKept {
		w.prev.Trailing = append(w.prev.Trailing, space, c)
	}
	w.prev, w.prevKept = nil, nil
}

func (w *Writer) join(t *syntax.Token, lead []syntax.Trivia) {
	p := w.prev
	brk := w.pending == sepNewline || len(lead) > 0
	for _, c := range w.prevKept {
		p.Trailing = append(p.Trailing, space, c)
		if c.Kind == syntax.SingleLineCommentTrivia {
			brk = true
		}
	}
	switch {
	case brk:
		p.Trailing = append(p.Trailing, eol)
		t.Leading = w.leadingLines(lead, t)
	case w.pending == sepSpace:
		p.Trailing = append(p.Trailing, space)
	}
}

// leadingLines lays out the kept leading trivia of a token that starts a
// line, followed by the token's own indentation.
func (w *Writer) leadingLines(lead []syntax.Trivia, t *syntax.Token) []syntax.Trivia {
	var out []syntax.Trivia
	for _, tr := range lead {
		switch {
		case tr.Kind.IsDirective(), tr.Kind == syntax.DisabledTextTrivia:
			// свой перевод строки уже внутри
			out = append(out, tr)
		case tr.Kind == syntax.SingleLineDocumentationCommentTrivia:
			out = append(append(out, w.indent()...), tr)
		default:
			out = append(append(out, w.indent()...), tr, eol)
		}
	}
	if t.Kind != syntax.EndOfFileToken {
		out = append(out, w.indent()...)
	}
	return out
}

// appendRaw keeps comments as they are; a // comment still needs its line
// break.
func appendRaw(dst, list []syntax.Trivia) []syntax.Trivia {
	for _, tr := range list {
		dst = append(dst, tr)
		if tr.Kind == syntax.SingleLineCommentTrivia {
			dst = append(dst, eol)
		}
	}
	return dst
}
