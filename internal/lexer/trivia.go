package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// collectLeadingTrivia собирает trivia перед значимым токеном в lx.hold:
//   - пробелы и табы одним WhitespaceTrivia
//   - каждый перевод строки отдельным EndOfLineTrivia
//   - //..., /*...*/ и /// (документация, структурированная)
//   - директивы # в начале строки и следующий за ними DisabledText
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isWhitespace(b):
			lx.hold = append(lx.hold, lx.scanWhitespace())
		case isNewline(b):
			lx.hold = append(lx.hold, lx.scanEndOfLine())
			lx.lineStart = true
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			if lx.cursor.PeekAt(2) == '/' && lx.cursor.PeekAt(3) != '/' {
				lx.hold = append(lx.hold, lx.scanDocComment())
				lx.lineStart = true
				continue
			}
			lx.hold = append(lx.hold, lx.scanLineComment())
			lx.lineStart = false
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.hold = append(lx.hold, lx.scanBlockComment())
			lx.lineStart = false
		case b == '#' && lx.lineStart:
			lx.hold = append(lx.hold, lx.scanDirective())
			lx.lineStart = true
			if !lx.active() {
				if tr, ok := lx.scanDisabledText(); ok {
					lx.hold = append(lx.hold, tr)
				}
			}
		default:
			return
		}
	}
}

// collectTrailingTrivia: пробелы и комментарии той же строки,
// включая первый перевод строки.
func (lx *Lexer) collectTrailingTrivia() []syntax.Trivia {
	var out []syntax.Trivia
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isWhitespace(b):
			out = append(out, lx.scanWhitespace())
		case isNewline(b):
			out = append(out, lx.scanEndOfLine())
			lx.lineStart = true
			return out
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			out = append(out, lx.scanLineComment())
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			out = append(out, lx.scanBlockComment())
		default:
			return out
		}
	}
	return out
}

func (lx *Lexer) scanWhitespace() syntax.Trivia {
	start := lx.cursor.Mark()
	for isWhitespace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return syntax.Trivia{Kind: syntax.WhitespaceTrivia, Text: lx.cursor.TextFrom(start)}
}

func (lx *Lexer) scanEndOfLine() syntax.Trivia {
	start := lx.cursor.Mark()
	lx.scanNewlineInto(nil)
	return syntax.Trivia{Kind: syntax.EndOfLineTrivia, Text: lx.cursor.TextFrom(start)}
}

// //... до перевода строки (не включая)
func (lx *Lexer) scanLineComment() syntax.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.Off = lx.cursor.LineEnd()
	return syntax.Trivia{Kind: syntax.SingleLineCommentTrivia, Text: lx.cursor.TextFrom(start)}
}

// /* ... */ без вложенности; незакрытый — репорт и обрезаем на EOF.
// /** ... */ тоже считается обычным многострочным комментарием.
func (lx *Lexer) scanBlockComment() syntax.Trivia {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	closed := false
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	if !closed {
		lx.report(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
	return syntax.Trivia{Kind: syntax.MultiLineCommentTrivia, Text: lx.cursor.TextFrom(start)}
}
