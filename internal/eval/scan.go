package eval

import (
	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/syntax"
)

type tokKind uint8

const (
	tEOF tokKind = iota
	tIdent
	tString
	tChar
	tNumber
	tPunct
)

func (k tokKind) String() string {
	switch k {
	case tEOF:
		return "end of text"
	case tIdent:
		return "identifier"
	case tString:
		return "string literal"
	case tChar:
		return "character literal"
	case tNumber:
		return "number"
	case tPunct:
		return "punctuation"
	}
	return "?"
}

// token of the builder language. For literals text is the decoded value,
// for identifiers the name without a leading `@`.
type token struct {
	kind tokKind
	off  int
	text string
}

type scanner struct {
	src string
	pos int
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (s *scanner) peekByte(i int) byte {
	if s.pos+i < len(s.src) {
		return s.src[s.pos+i]
	}
	return 0
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) next() (token, error) {
	s.skipSpace()
	start := s.pos
	if s.pos >= len(s.src) {
		return token{kind: tEOF, off: start}, nil
	}
	c := s.src[s.pos]
	switch {
	case c == '@' && s.peekByte(1) == '"':
		return s.verbatim()
	case c == '@' && isIdentStart(s.peekByte(1)):
		s.pos++
		return s.ident(start), nil
	case isIdentStart(c):
		return s.ident(start), nil
	case isDigit(c):
		return s.number()
	case c == '"':
		return s.quoted('"', tString)
	case c == '\'':
		return s.quoted('\'', tChar)
	}
	switch c {
	case '(', ')', '<', '>', ',', '.', ':':
		s.pos++
		return token{kind: tPunct, off: start, text: string(c)}, nil
	}
	return token{}, errorf(diag.EvlSyntax, start, "unexpected character %q", c)
}

func (s *scanner) ident(start int) token {
	from := s.pos
	for s.pos < len(s.src) && (isIdentStart(s.src[s.pos]) || isDigit(s.src[s.pos])) {
		s.pos++
	}
	return token{kind: tIdent, off: start, text: s.src[from:s.pos]}
}

// number accepts the decimal spelling of numeric values:
// digits, an optional fraction and an optional exponent.
func (s *scanner) number() (token, error) {
	start := s.pos
	digits := func() int {
		n := 0
		for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
			s.pos++
			n++
		}
		return n
	}
	digits()
	if s.peekByte(0) == '.' && isDigit(s.peekByte(1)) {
		s.pos++
		digits()
	}
	if c := s.peekByte(0); c == 'e' || c == 'E' {
		s.pos++
		if c := s.peekByte(0); c == '+' || c == '-' {
			s.pos++
		}
		if digits() == 0 {
			return token{}, errorf(diag.EvlSyntax, start, "malformed exponent in %q", s.src[start:s.pos])
		}
	}
	return token{kind: tNumber, off: start, text: s.src[start:s.pos]}, nil
}

func (s *scanner) quoted(q byte, kind tokKind) (token, error) {
	start := s.pos
	s.pos++
	for {
		if s.pos >= len(s.src) || s.src[s.pos] == '\n' {
			return token{}, errorf(diag.EvlSyntax, start, "unterminated %s", kind)
		}
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case q:
			s.pos++
			return s.decode(start, kind)
		}
		s.pos++
	}
}

func (s *scanner) verbatim() (token, error) {
	start := s.pos
	s.pos += 2
	for {
		if s.pos >= len(s.src) {
			return token{}, errorf(diag.EvlSyntax, start, "unterminated %s", tString)
		}
		if s.src[s.pos] == '"' {
			if s.peekByte(1) == '"' {
				s.pos += 2
				continue
			}
			s.pos++
			return s.decode(start, tString)
		}
		s.pos++
	}
}

// decode hands the literal to the language lexer: builder strings use the
// escapes of the language itself.
func (s *scanner) decode(start int, kind tokKind) (token, error) {
	raw := s.src[start:s.pos]
	want := syntax.StringLiteralToken
	if kind == tChar {
		want = syntax.CharacterLiteralToken
	}
	tok, ok := lexer.DecodeToken(raw)
	if !ok || tok.Kind != want {
		return token{}, errorf(diag.EvlSyntax, start, "invalid %s %s", kind, raw)
	}
	return token{kind: kind, off: start, text: tok.ValueText}, nil
}
