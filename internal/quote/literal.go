package quote

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"quoter/internal/catalog"
	"quoter/internal/lexer"
	"quoter/internal/syntax"
)

// token renders one token with its trivia.
//
//	Token(SyntaxKind.K)                            fixed text, no trivia
//	Token(lead, SyntaxKind.K, trail)               fixed text
//	Token(lead, SyntaxKind.K, "text", "value", trail)
//	MissingToken(SyntaxKind.K)
//	Identifier("x") / Identifier(lead, "x", trail)
//	Identifier(lead, SyntaxKind.IdentifierToken, "@x", "x", trail)
//	Literal(...)                                   see literal
//	XmlTextLiteral(lead, "text", "value", trail)
//	XmlTextNewLine(lead, "\n", "\n", trail)
func (s *serializer) token(t *syntax.Token) (value, error) {
	short := !s.verbose() && !t.HasTrivia()
	k := t.Kind
	if !k.IsToken() {
		return value{}, unsupported(k, "not a token kind")
	}

	sides := func() (lead, trail value, err error) {
		if lead, err = s.triviaList(t.Leading); err != nil {
			return
		}
		trail, err = s.triviaList(t.Trailing)
		return
	}
	full := func(callee string, mid ...value) (value, error) {
		lead, trail, err := sides()
		if err != nil {
			return value{}, err
		}
		args := append([]value{lead}, mid...)
		args = append(args, trail)
		return s.call(callee, positional(args...)...), nil
	}
	text := func(v string) (value, error) { return s.str(k, v, false) }

	switch {
	case t.IsMissing():
		if short {
			return s.call("MissingToken", argument{val: kindRef(k)}), nil
		}
		return full("MissingToken", kindRef(k))

	case k == syntax.IdentifierToken:
		raw, err := text(t.Text)
		if err != nil {
			return value{}, err
		}
		if t.Text != t.ValueText {
			val, err := text(t.ValueText)
			if err != nil {
				return value{}, err
			}
			return full(catalog.FactoryIdentifier, kindRef(k), raw, val)
		}
		if short {
			return s.call(catalog.FactoryIdentifier, argument{val: raw}), nil
		}
		return full(catalog.FactoryIdentifier, raw)

	case k.IsLiteralToken():
		return s.literal(t, short, full)

	case k == syntax.XmlTextLiteralToken, k == syntax.XmlTextLiteralNewLineToken:
		raw, err := text(t.Text)
		if err != nil {
			return value{}, err
		}
		val, err := text(t.ValueText)
		if err != nil {
			return value{}, err
		}
		return full(catalog.TokenFactory(k), raw, val)

	case k == syntax.InterpolatedStringTextToken:
		if t.Text != t.ValueText {
			if !decodesTo(t.Text, t.ValueText) {
				return value{}, malformed(k, "text %q does not decode to %q", t.Text, t.ValueText)
			}
		}
		return s.textToken(t, full)

	case k.HasFixedText() && t.Text == k.Text() && t.ValueText == t.Text:
		if short {
			return s.call(catalog.FactoryToken, argument{val: kindRef(k)}), nil
		}
		return full(catalog.FactoryToken, kindRef(k))
	}
	return s.textToken(t, full)
}

// decodesTo reports whether interpolated text decodes to want under the
// regular or the verbatim rules; the token does not know its string.
func decodesTo(text, want string) bool {
	for _, verbatim := range []bool{false, true} {
		if v, ok := lexer.DecodeInterpolatedText(text, verbatim); ok && v == want {
			return true
		}
	}
	return false
}

func (s *serializer) textToken(t *syntax.Token, full func(string, ...value) (value, error)) (value, error) {
	raw, err := s.str(t.Kind, t.Text, false)
	if err != nil {
		return value{}, err
	}
	val, err := s.str(t.Kind, t.ValueText, false)
	if err != nil {
		return value{}, err
	}
	return full(catalog.FactoryToken, kindRef(t.Kind), raw, val)
}

var numericValue = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// literal renders numeric, string and character literal tokens:
//
//	Literal(v)                     raw text is the canonical spelling of v
//	Literal(lead, "raw", v, trail) otherwise
//
// v is written as a literal of the token's own category. The raw text must
// lex back to exactly this token, otherwise the tree is inconsistent and the
// literal is rejected.
func (s *serializer) literal(t *syntax.Token, short bool, full func(string, ...value) (value, error)) (value, error) {
	k := t.Kind
	dec, ok := lexer.DecodeToken(t.Text)
	if !ok || dec.Kind != k || dec.ValueText != t.ValueText {
		return value{}, malformed(k, "text %q does not decode to %q", t.Text, t.ValueText)
	}
	preserve := s.settings.Quotes == QuotePreserve && strings.HasPrefix(t.Text, "@")

	var v value
	var canonical string
	switch k {
	case syntax.NumericLiteralToken:
		if !numericValue.MatchString(t.ValueText) {
			return value{}, malformed(k, "value %q is not a decimal number", t.ValueText)
		}
		v, canonical = atom(t.ValueText), t.ValueText
	case syntax.StringLiteralToken:
		var err error
		if v, err = s.str(k, t.ValueText, preserve); err != nil {
			return value{}, err
		}
		canonical = syntax.QuoteString(t.ValueText)
	case syntax.CharacterLiteralToken:
		if syntax.CharCount(t.ValueText) != 1 {
			return value{}, malformed(k, "value %q is not a single character", t.ValueText)
		}
		canonical = syntax.QuoteChar(t.ValueText)
		v = atom(canonical)
	}

	if short && t.Text == canonical {
		return s.call(catalog.FactoryLiteral, argument{val: v}), nil
	}
	raw, err := s.str(k, t.Text, preserve)
	if err != nil {
		return value{}, err
	}
	return full(catalog.FactoryLiteral, raw, v)
}

// str renders a string argument. Verbatim form is used on request when the
// text has no line breaks.
func (s *serializer) str(k syntax.Kind, v string, verbatim bool) (value, error) {
	if !utf8.ValidString(v) {
		return value{}, malformed(k, "text is not valid UTF-8")
	}
	if verbatim && !strings.ContainsAny(v, "\r\n") {
		return atom(syntax.QuoteVerbatim(v)), nil
	}
	return atom(syntax.QuoteString(v)), nil
}
