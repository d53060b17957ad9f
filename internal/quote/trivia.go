package quote

import (
	"quoter/internal/catalog"
	"quoter/internal/syntax"
)

// triviaList renders one side of a token. An empty side is always
// `default`, never an empty TriviaList().
func (s *serializer) triviaList(list []syntax.Trivia) (value, error) {
	if len(list) == 0 {
		return valueDefault, nil
	}
	vals := make([]value, len(list))
	for i, tr := range list {
		v, err := s.trivia(tr)
		if err != nil {
			return value{}, err
		}
		vals[i] = v
	}
	return s.call(catalog.FactoryTriviaList, positional(vals...)...), nil
}

func (s *serializer) trivia(tr syntax.Trivia) (value, error) {
	name, ok := catalog.TriviaFactory(tr.Kind)
	if !ok {
		return value{}, unsupported(tr.Kind, "not a trivia kind")
	}
	if tr.Kind.IsStructuredTrivia() {
		if tr.Structure == nil || tr.Structure.Kind != tr.Kind {
			return value{}, unsupported(tr.Kind, "structured trivia without a matching structure")
		}
		v, err := s.node(tr.Structure)
		if err != nil {
			return value{}, err
		}
		return s.call(name, argument{val: v}), nil
	}

	if !s.verbose() {
		switch {
		case tr.Kind == syntax.WhitespaceTrivia && tr.Text == " ":
			return atom(catalog.FactorySpace), nil
		case tr.Kind == syntax.EndOfLineTrivia && tr.Text == "\n":
			return atom(catalog.FactoryLineFeed), nil
		case tr.Kind == syntax.EndOfLineTrivia && tr.Text == "\r\n":
			return atom(catalog.FactoryCarriageReturn), nil
		}
	}
	switch tr.Kind {
	case syntax.SingleLineCommentTrivia, syntax.MultiLineCommentTrivia:
		// Comment() выводит вид из текста
		if catalog.CommentKind(tr.Text) != tr.Kind {
			return value{}, malformed(tr.Kind, "comment text %q does not match its kind", tr.Text)
		}
	}
	text, err := s.str(tr.Kind, tr.Text, false)
	if err != nil {
		return value{}, err
	}
	return s.call(name, argument{val: text}), nil
}
