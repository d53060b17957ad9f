package lexer

import (
	"strings"

	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

type interpStage uint8

const (
	stageText   interpStage = iota // между кавычками, вне {}
	stageExpr                      // выражение внутри {}
	stageFormat                    // после ':' до '}'
)

// interpFrame — состояние одной открытой $"..." строки.
type interpFrame struct {
	stage    interpStage
	braces   int  // вложенные { } внутри выражения
	parens   int  // ( ) и [ ]: ':' внутри них не начинает формат
	verbatim bool // $@"...": "" вместо \", перевод строки допустим
	start    source.Span
}

func (lx *Lexer) inStringText() bool {
	n := len(lx.interps)
	return n > 0 && lx.interps[n-1].stage != stageExpr
}

// scanInterpolatedStart съедает $" или, для verbatim, $@" / @$".
func (lx *Lexer) scanInterpolatedStart(verbatim bool) *syntax.Token {
	start := lx.cursor.Mark()
	kind, n := syntax.InterpolatedStringStartToken, 2
	if verbatim {
		kind, n = syntax.InterpolatedVerbatimStringStartToken, 3
	}
	lx.cursor.BumpN(n)
	lx.interps = append(lx.interps, interpFrame{stage: stageText, verbatim: verbatim, start: lx.cursor.SpanFrom(start)})
	text := lx.cursor.TextFrom(start)
	return newToken(kind, text, text)
}

// trackInterpolation ведёт учёт скобок внутри {выражения} и
// переключает стадию на '}' и ':' верхнего уровня.
func (lx *Lexer) trackInterpolation(tok *syntax.Token) {
	fr := &lx.interps[len(lx.interps)-1]
	if fr.stage != stageExpr {
		return
	}
	switch tok.Kind {
	case syntax.OpenBraceToken:
		fr.braces++
	case syntax.CloseBraceToken:
		if fr.braces == 0 {
			fr.stage = stageText
			return
		}
		fr.braces--
	case syntax.OpenParenToken, syntax.OpenBracketToken:
		fr.parens++
	case syntax.CloseParenToken, syntax.CloseBracketToken:
		if fr.parens > 0 {
			fr.parens--
		}
	case syntax.ColonToken:
		if fr.braces == 0 && fr.parens == 0 {
			fr.stage = stageFormat
		}
	}
}

// scanInterpolatedPart сканирует токен в стадии текста или формата.
func (lx *Lexer) scanInterpolatedPart() Item {
	fr := &lx.interps[len(lx.interps)-1]
	start := lx.cursor.Mark()
	item := func(tok *syntax.Token) Item {
		return Item{Tok: tok, Span: lx.cursor.SpanFrom(start)}
	}

	if fr.stage == stageFormat {
		switch lx.cursor.Peek() {
		case '}':
			lx.cursor.Bump()
			fr.stage = stageText
			return item(syntax.NewToken(syntax.CloseBraceToken))
		case '"':
			lx.report(diag.LexUnterminatedString, lx.emptySpan(), "interpolation format is not closed with '}'")
			fr.stage = stageText
			return lx.scanInterpolatedPart()
		}
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == '}' || b == '"' || isNewline(b) {
				break
			}
			lx.bumpRune()
		}
		if isNewline(lx.cursor.Peek()) {
			lx.report(diag.LexNewlineInString, lx.cursor.SpanFrom(start), "newline in interpolation format")
			lx.scanNewlineInto(nil)
		}
		text := lx.cursor.TextFrom(start)
		return item(newToken(syntax.InterpolatedStringTextToken, text, text))
	}

	switch b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1); {
	case b0 == '"' && !(fr.verbatim && b1 == '"'):
		lx.cursor.Bump()
		lx.interps = lx.interps[:len(lx.interps)-1]
		return item(syntax.NewToken(syntax.InterpolatedStringEndToken))
	case b0 == '{' && b1 != '{':
		lx.cursor.Bump()
		fr.stage = stageExpr
		fr.braces, fr.parens = 0, 0
		return item(syntax.NewToken(syntax.OpenBraceToken))
	}

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1)
		switch {
		case fr.verbatim && b0 == '"' && b1 == '"':
			lx.cursor.BumpN(2)
			sb.WriteByte('"')
		case b0 == '"', b0 == '{' && b1 != '{':
			text := lx.cursor.TextFrom(start)
			return item(newToken(syntax.InterpolatedStringTextToken, text, sb.String()))
		case b0 == '{' || (b0 == '}' && b1 == '}'):
			lx.cursor.BumpN(2)
			sb.WriteByte(b0)
		case b0 == '}':
			lx.report(diag.LexBadEscape, lx.emptySpan(), "'}' in interpolated string must be doubled")
			lx.cursor.Bump()
			sb.WriteByte('}')
		case b0 == '\\' && !fr.verbatim:
			sb.WriteString(lx.scanEscape())
		case isNewline(b0) && fr.verbatim:
			lx.scanNewlineInto(&sb)
		case isNewline(b0):
			lx.report(diag.LexNewlineInString, lx.emptySpan(), "newline in interpolated string")
			lx.scanNewlineInto(&sb)
		default:
			lx.appendRune(&sb)
		}
	}
	text := lx.cursor.TextFrom(start)
	return item(newToken(syntax.InterpolatedStringTextToken, text, sb.String()))
}

// scanNewlineInto съедает один перевод строки (\r\n, \r или \n).
func (lx *Lexer) scanNewlineInto(sb *strings.Builder) {
	start := lx.cursor.Mark()
	if lx.cursor.Eat('\r') {
		lx.cursor.Eat('\n')
	} else {
		lx.cursor.Eat('\n')
	}
	if sb != nil {
		sb.WriteString(lx.cursor.TextFrom(start))
	}
}
