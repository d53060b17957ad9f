package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// Жадность: сначала 2-символьные, затем 1-символьные.
// '++', '--', '<<' и '>>' не входят в грамматику и лексятся по одному символу,
// чтобы `List<List<int>>` разбирался без расщепления токенов.
func (lx *Lexer) scanOperatorOrPunct() *syntax.Token {
	start := lx.cursor.Mark()
	emit := func(k syntax.Kind) *syntax.Token {
		text := lx.cursor.TextFrom(start)
		return newToken(k, text, text)
	}

	switch {
	case lx.try2('|', '|'):
		return emit(syntax.BarBarToken)
	case lx.try2('&', '&'):
		return emit(syntax.AmpersandAmpersandToken)
	case lx.try2('!', '='):
		return emit(syntax.ExclamationEqualsToken)
	case lx.try2('=', '='):
		return emit(syntax.EqualsEqualsToken)
	case lx.try2('=', '>'):
		return emit(syntax.EqualsGreaterThanToken)
	case lx.try2('<', '='):
		return emit(syntax.LessThanEqualsToken)
	case lx.try2('>', '='):
		return emit(syntax.GreaterThanEqualsToken)
	case lx.try2('?', '?'):
		return emit(syntax.QuestionQuestionToken)
	case lx.try2('+', '='):
		return emit(syntax.PlusEqualsToken)
	case lx.try2('-', '='):
		return emit(syntax.MinusEqualsToken)
	case lx.try2('*', '='):
		return emit(syntax.AsteriskEqualsToken)
	case lx.try2('/', '='):
		return emit(syntax.SlashEqualsToken)
	}

	switch lx.cursor.Bump() {
	case '~':
		return emit(syntax.TildeToken)
	case '!':
		return emit(syntax.ExclamationToken)
	case '%':
		return emit(syntax.PercentToken)
	case '^':
		return emit(syntax.CaretToken)
	case '&':
		return emit(syntax.AmpersandToken)
	case '*':
		return emit(syntax.AsteriskToken)
	case '(':
		return emit(syntax.OpenParenToken)
	case ')':
		return emit(syntax.CloseParenToken)
	case '-':
		return emit(syntax.MinusToken)
	case '+':
		return emit(syntax.PlusToken)
	case '=':
		return emit(syntax.EqualsToken)
	case '{':
		return emit(syntax.OpenBraceToken)
	case '}':
		return emit(syntax.CloseBraceToken)
	case '[':
		return emit(syntax.OpenBracketToken)
	case ']':
		return emit(syntax.CloseBracketToken)
	case '|':
		return emit(syntax.BarToken)
	case ':':
		return emit(syntax.ColonToken)
	case ';':
		return emit(syntax.SemicolonToken)
	case '<':
		return emit(syntax.LessThanToken)
	case ',':
		return emit(syntax.CommaToken)
	case '>':
		return emit(syntax.GreaterThanToken)
	case '.':
		return emit(syntax.DotToken)
	case '?':
		return emit(syntax.QuestionToken)
	case '/':
		return emit(syntax.SlashToken)
	}

	// неизвестный символ: добираем руну целиком, чтобы не резать UTF-8
	lx.cursor.Reset(start)
	lx.bumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnknownChar, sp, "unknown character")
	return emit(syntax.BadToken)
}
