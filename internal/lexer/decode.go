package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// DecodeToken lexes text as exactly one token. ok is false when the lexer
// reported an error, when text is not a single token or when it carries
// trivia.
func DecodeToken(text string) (tok *syntax.Token, ok bool) {
	items, ok := lexFragment(text)
	if !ok || len(items) != 2 {
		return nil, false
	}
	tok = items[0].Tok
	return tok, !tok.HasTrivia() && tok.Text == text
}

// DecodeInterpolatedText lexes the text part of an interpolated string and
// returns its value text. verbatim selects the $@"..." rules.
func DecodeInterpolatedText(text string, verbatim bool) (string, bool) {
	open := `$"`
	if verbatim {
		open = `$@"`
	}
	items, ok := lexFragment(open + text + `"`)
	if !ok {
		return "", false
	}
	// $" [text] " EOF
	switch len(items) {
	case 3:
		return "", text == ""
	case 4:
		tok := items[1].Tok
		if tok.Kind != syntax.InterpolatedStringTextToken || tok.Text != text {
			return "", false
		}
		return tok.ValueText, true
	}
	return "", false
}

func lexFragment(text string) ([]Item, bool) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("fragment", []byte(text)))
	bag := diag.NewBag(1)
	items := New(f, Options{Reporter: diag.BagReporter{Bag: bag}}).All()
	return items, !bag.HasErrors()
}
