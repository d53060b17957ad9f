package lexer

import (
	"quoter/internal/syntax"

	"golang.org/x/text/unicode/norm"
)

// scanIdentOrKeyword сканирует идентификатор, @-идентификатор или ключевое слово.
// Text — ровно исходный срез; ValueText — без '@' и в NFC.
// get/set остаются IdentifierToken: парсер перетегирует их по контексту.
func (lx *Lexer) scanIdentOrKeyword() *syntax.Token {
	start := lx.cursor.Mark()
	verbatim := lx.cursor.Eat('@')

	r, sz := lx.peekRune()
	if sz == 0 || !(isIdentStartRune(r)) {
		lx.cursor.Reset(start)
		return lx.scanOperatorOrPunct()
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		lx.bumpRune()
	}
	ascii := r < utf8RuneSelf
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	text := lx.cursor.TextFrom(start)
	value := text
	if verbatim {
		value = text[1:]
	}
	if !ascii {
		value = norm.NFC.String(value)
	}
	if !verbatim {
		if k, ok := syntax.LookupKeyword(text); ok {
			return newToken(k, text, text)
		}
	}
	return newToken(syntax.IdentifierToken, text, value)
}
