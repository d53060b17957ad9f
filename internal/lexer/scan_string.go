package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// scanString: "..." с escape-последовательностями \' \" \\ \0 \a \b \f \n \r \t \v \xH..H \uHHHH \UHHHHHHHH.
// Перевод строки внутри — ошибка; токен обрывается перед ним.
func (lx *Lexer) scanString() *syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	var sb strings.Builder
	for {
		b := lx.cursor.Peek()
		switch {
		case lx.cursor.EOF():
			lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
			return newToken(syntax.StringLiteralToken, lx.cursor.TextFrom(start), sb.String())
		case isNewline(b):
			lx.report(diag.LexNewlineInString, lx.cursor.SpanFrom(start), "newline in string literal")
			return newToken(syntax.StringLiteralToken, lx.cursor.TextFrom(start), sb.String())
		case b == '"':
			lx.cursor.Bump()
			return newToken(syntax.StringLiteralToken, lx.cursor.TextFrom(start), sb.String())
		case b == '\\':
			sb.WriteString(lx.scanEscape())
		default:
			lx.appendRune(&sb)
		}
	}
}

// scanVerbatimString: @"..." — без escape, кроме удвоенной кавычки; может занимать несколько строк.
func (lx *Lexer) scanVerbatimString() *syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2) // @"
	var sb strings.Builder
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '"' {
			if lx.cursor.PeekAt(1) == '"' {
				lx.cursor.BumpN(2)
				sb.WriteByte('"')
				continue
			}
			lx.cursor.Bump()
			return newToken(syntax.StringLiteralToken, lx.cursor.TextFrom(start), sb.String())
		}
		lx.appendRune(&sb)
	}
	lx.report(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated verbatim string literal")
	return newToken(syntax.StringLiteralToken, lx.cursor.TextFrom(start), sb.String())
}

// scanChar: 'x' или '\n'. Значение — ровно один символ.
func (lx *Lexer) scanChar() *syntax.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	var sb strings.Builder
	for {
		b := lx.cursor.Peek()
		if lx.cursor.EOF() || isNewline(b) {
			lx.report(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
			return newToken(syntax.CharacterLiteralToken, lx.cursor.TextFrom(start), sb.String())
		}
		if b == '\'' {
			lx.cursor.Bump()
			break
		}
		if b == '\\' {
			sb.WriteString(lx.scanEscape())
		} else {
			lx.appendRune(&sb)
		}
	}
	value := sb.String()
	if utf8.RuneCountInString(value) != 1 {
		lx.report(diag.LexBadEscape, lx.cursor.SpanFrom(start), "character literal must contain exactly one character")
	}
	return newToken(syntax.CharacterLiteralToken, lx.cursor.TextFrom(start), value)
}

func (lx *Lexer) appendRune(sb *strings.Builder) {
	from := lx.cursor.Off
	lx.bumpRune()
	if lx.cursor.Off == from {
		lx.cursor.Bump()
	}
	sb.Write(lx.file.Content[from:lx.cursor.Off])
}

// scanEscape декодирует escape-последовательность; курсор стоит на '\'.
// Неверная последовательность репортится и возвращается как есть.
func (lx *Lexer) scanEscape() string {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	c := lx.cursor.Bump()
	switch c {
	case '\'', '"', '\\':
		return string(c)
	case '0':
		return "\x00"
	case 'a':
		return "\a"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'n':
		return "\n"
	case 'r':
		return "\r"
	case 't':
		return "\t"
	case 'v':
		return "\v"
	case 'x':
		n := 0
		for n < 4 && isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		if n > 0 {
			return lx.hexRune(start, 2)
		}
	case 'u':
		if lx.bumpHex(4) {
			return lx.hexRune(start, 2)
		}
	case 'U':
		if lx.bumpHex(8) {
			return lx.hexRune(start, 2)
		}
	}
	if c == 0 || isNewline(c) {
		lx.cursor.Reset(start + 1)
	}
	lx.report(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid escape sequence")
	return lx.cursor.TextFrom(start)
}

func (lx *Lexer) bumpHex(n int) bool {
	for i := 0; i < n; i++ {
		if !isHex(lx.cursor.PeekAt(uint32(i))) {
			return false
		}
	}
	lx.cursor.BumpN(n)
	return true
}

func (lx *Lexer) hexRune(start Mark, prefix int) string {
	digits := lx.cursor.TextFrom(start)[prefix:]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > utf8.MaxRune {
		lx.report(diag.LexBadEscape, lx.cursor.SpanFrom(start), "escape sequence out of range")
		return lx.cursor.TextFrom(start)
	}
	return string(rune(v))
}
