package syntax

// Trivia is non-semantic text attached to one side of a token.
// Structure is set exactly for documentation comment and directive kinds;
// their Text is empty and the text is Structure's full text.
type Trivia struct {
	Kind      Kind
	Text      string
	Structure *Node
}

// Token is an atomic lexical unit.
// ValueText differs from Text for literals and escaped identifiers.
type Token struct {
	Kind      Kind
	Text      string
	ValueText string
	Leading   []Trivia
	Trailing  []Trivia
}

// NewToken builds a fixed-text token of kind k without trivia.
func NewToken(k Kind) *Token {
	return &Token{Kind: k, Text: k.Text(), ValueText: k.Text()}
}

// HasTrivia reports whether the token carries leading or trailing trivia.
func (t *Token) HasTrivia() bool {
	return len(t.Leading) > 0 || len(t.Trailing) > 0
}

// IsMissing reports whether a fixed-text token was synthesized by error
// recovery and has no source text.
func (t *Token) IsMissing() bool {
	return t.Text == "" && t.Kind.Text() != ""
}

// FullText returns the token text with its trivia.
func (t *Token) FullText() string {
	var w textWriter
	w.token(t)
	return w.String()
}

// FullText returns the text of a trivia piece, expanding structured trivia.
func (tr Trivia) FullText() string {
	if tr.Structure != nil {
		return tr.Structure.FullString()
	}
	return tr.Text
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	c := *t
	c.Leading = cloneTrivia(t.Leading)
	c.Trailing = cloneTrivia(t.Trailing)
	return &c
}

func cloneTrivia(list []Trivia) []Trivia {
	if list == nil {
		return nil
	}
	out := make([]Trivia, len(list))
	for i, tr := range list {
		out[i] = Trivia{Kind: tr.Kind, Text: tr.Text, Structure: tr.Structure.Clone()}
	}
	return out
}
