package eval

import (
	"quoter/internal/catalog"
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

type builtin struct {
	generic bool  // требует <T>
	arity   []int // допустимые числа аргументов; nil — любое
	fn      func(x *expr, args []value) (value, error)
}

var builtins map[string]builtin

func init() {
	text := func(kind syntax.Kind) builtin {
		return builtin{arity: []int{1}, fn: func(x *expr, a []value) (value, error) {
			return plainTrivia(x, kind, a[0])
		}}
	}
	builtins = map[string]builtin{
		catalog.FactoryToken:          {arity: []int{1, 3, 5}, fn: buildToken},
		"MissingToken":                {arity: []int{1, 3}, fn: buildMissingToken},
		catalog.FactoryIdentifier:     {arity: []int{1, 3, 5}, fn: buildIdentifier},
		catalog.FactoryLiteral:        {arity: []int{1, 4}, fn: buildLiteral},
		catalog.FactoryXmlTextLiteral: {arity: []int{4}, fn: xmlText(syntax.XmlTextLiteralToken)},
		catalog.FactoryXmlTextNewLine: {arity: []int{4}, fn: xmlText(syntax.XmlTextLiteralNewLineToken)},

		catalog.FactoryTriviaList:    {fn: buildTriviaList},
		catalog.FactoryTrivia:        {arity: []int{1}, fn: buildStructuredTrivia},
		catalog.FactoryWhitespace:    text(syntax.WhitespaceTrivia),
		catalog.FactoryEndOfLine:     text(syntax.EndOfLineTrivia),
		catalog.FactoryComment:       text(syntax.None),
		catalog.FactoryDisabledText:  text(syntax.DisabledTextTrivia),
		catalog.FactoryPreprocessing: text(syntax.PreprocessingMessageTrivia),
		catalog.FactoryDocExterior:   text(syntax.DocumentationCommentExteriorTrivia),

		"List":                   {generic: true, fn: buildList},
		"SingletonList":          {generic: true, arity: []int{1}, fn: buildList},
		"SeparatedList":          {generic: true, arity: []int{0, 1}, fn: buildSeparatedList},
		"SingletonSeparatedList": {generic: true, arity: []int{1}, fn: buildSingletonSeparatedList},
		"NodeOrTokenList":        {fn: buildItems},
		"TokenList":              {fn: buildTokenList},
	}
}

func callBuiltin(b builtin, x *expr) (value, error) {
	if b.generic != (x.typeArg != "") {
		if b.generic {
			return value{}, errorf(diag.EvlSyntax, x.off, "%s needs a type argument", x.name)
		}
		return value{}, errorf(diag.EvlSyntax, x.off, "%s is not generic", x.name)
	}
	if b.arity != nil {
		ok := false
		for _, n := range b.arity {
			ok = ok || n == len(x.args)
		}
		if !ok {
			return value{}, errorf(diag.EvlArgumentCount, x.off, "%s does not take %d arguments", x.name, len(x.args))
		}
	}
	args := make([]value, len(x.args))
	for i, a := range x.args {
		if a.name != "" {
			return value{}, errorf(diag.EvlSyntax, a.off, "%s takes positional arguments only", x.name)
		}
		v, err := eval(a.x)
		if err != nil {
			return value{}, err
		}
		args[i] = v
	}
	return b.fn(x, args)
}

func want(v value, kinds ...valKind) error {
	for _, k := range kinds {
		if v.kind == k {
			return nil
		}
	}
	return errorf(diag.EvlArgumentType, v.off, "expected %s, got %s", kinds[0], v.kind)
}

func tokenValue(x *expr, t *syntax.Token) value {
	return value{kind: vToken, off: x.off, tok: t}
}

// sides converts the trivia arguments around a token.
func sides(lead, trail value) (l, t []syntax.Trivia, err error) {
	if l, err = triviaArg(lead); err != nil {
		return nil, nil, err
	}
	t, err = triviaArg(trail)
	return l, t, err
}

func triviaArg(v value) ([]syntax.Trivia, error) {
	if err := want(v, vTriviaList, vTrivia, vDefault); err != nil {
		return nil, err
	}
	return v.trivia, nil
}

func tokenKind(v value) (syntax.Kind, error) {
	if err := want(v, vKind); err != nil {
		return syntax.None, err
	}
	if !v.k.IsToken() {
		return syntax.None, errorf(diag.EvlArgumentType, v.off, "%s is not a token kind", v.k)
	}
	return v.k, nil
}

// Token(K) | Token(lead, K, trail) | Token(lead, K, "text", "value", trail)
func buildToken(x *expr, a []value) (value, error) {
	if len(a) == 1 {
		k, err := tokenKind(a[0])
		if err != nil {
			return value{}, err
		}
		return tokenValue(x, syntax.NewToken(k)), nil
	}
	k, err := tokenKind(a[1])
	if err != nil {
		return value{}, err
	}
	t := syntax.NewToken(k)
	if len(a) == 5 {
		if err := want(a[2], vString); err != nil {
			return value{}, err
		}
		if err := want(a[3], vString); err != nil {
			return value{}, err
		}
		t.Text, t.ValueText = a[2].text, a[3].text
	}
	if t.Leading, t.Trailing, err = sides(a[0], a[len(a)-1]); err != nil {
		return value{}, err
	}
	return tokenValue(x, t), nil
}

// MissingToken(K) | MissingToken(lead, K, trail)
func buildMissingToken(x *expr, a []value) (value, error) {
	ki := 0
	if len(a) == 3 {
		ki = 1
	}
	k, err := tokenKind(a[ki])
	if err != nil {
		return value{}, err
	}
	t := &syntax.Token{Kind: k}
	if len(a) == 3 {
		if t.Leading, t.Trailing, err = sides(a[0], a[2]); err != nil {
			return value{}, err
		}
	}
	return tokenValue(x, t), nil
}

// Identifier("x") | Identifier(lead, "x", trail)
// | Identifier(lead, SyntaxKind.IdentifierToken, "@x", "x", trail)
func buildIdentifier(x *expr, a []value) (value, error) {
	t := &syntax.Token{Kind: syntax.IdentifierToken}
	var err error
	switch len(a) {
	case 1, 3:
		name := a[len(a)/2]
		if err := want(name, vString); err != nil {
			return value{}, err
		}
		t.Text, t.ValueText = name.text, name.text
	case 5:
		k, err := tokenKind(a[1])
		if err != nil {
			return value{}, err
		}
		if k != syntax.IdentifierToken {
			return value{}, errorf(diag.EvlArgumentType, a[1].off, "Identifier builds IdentifierToken, not %s", k)
		}
		if err := want(a[2], vString); err != nil {
			return value{}, err
		}
		if err := want(a[3], vString); err != nil {
			return value{}, err
		}
		t.Text, t.ValueText = a[2].text, a[3].text
	}
	if len(a) > 1 {
		if t.Leading, t.Trailing, err = sides(a[0], a[len(a)-1]); err != nil {
			return value{}, err
		}
	}
	return tokenValue(x, t), nil
}

// Literal(v) | Literal(lead, "raw", v, trail). The token kind follows the
// type of v; without raw text the canonical spelling of v is used.
func buildLiteral(x *expr, a []value) (value, error) {
	v := a[0]
	if len(a) == 4 {
		v = a[2]
	}
	t := &syntax.Token{ValueText: v.text}
	switch v.kind {
	case vNumber:
		t.Kind, t.Text = syntax.NumericLiteralToken, v.text
	case vString:
		t.Kind, t.Text = syntax.StringLiteralToken, syntax.QuoteString(v.text)
	case vChar:
		t.Kind, t.Text = syntax.CharacterLiteralToken, syntax.QuoteChar(v.text)
	default:
		return value{}, errorf(diag.EvlArgumentType, v.off, "Literal value must be a number, string or char, got %s", v.kind)
	}
	if len(a) == 4 {
		if err := want(a[1], vString); err != nil {
			return value{}, err
		}
		t.Text = a[1].text
		var err error
		if t.Leading, t.Trailing, err = sides(a[0], a[3]); err != nil {
			return value{}, err
		}
	}
	return tokenValue(x, t), nil
}

func xmlText(k syntax.Kind) func(*expr, []value) (value, error) {
	return func(x *expr, a []value) (value, error) {
		if err := want(a[1], vString); err != nil {
			return value{}, err
		}
		if err := want(a[2], vString); err != nil {
			return value{}, err
		}
		t := &syntax.Token{Kind: k, Text: a[1].text, ValueText: a[2].text}
		var err error
		if t.Leading, t.Trailing, err = sides(a[0], a[3]); err != nil {
			return value{}, err
		}
		return tokenValue(x, t), nil
	}
}

func buildTriviaList(x *expr, a []value) (value, error) {
	out := value{kind: vTriviaList, off: x.off}
	for _, v := range a {
		if err := want(v, vTrivia); err != nil {
			return value{}, err
		}
		out.trivia = append(out.trivia, v.trivia...)
	}
	return out, nil
}

// plainTrivia builds trivia from text. Comment passes None and takes the
// kind from the text.
func plainTrivia(x *expr, k syntax.Kind, v value) (value, error) {
	if err := want(v, vString); err != nil {
		return value{}, err
	}
	if k == syntax.None {
		k = catalog.CommentKind(v.text)
	}
	return value{kind: vTrivia, off: x.off, trivia: []syntax.Trivia{{Kind: k, Text: v.text}}}, nil
}

// Trivia(node) wraps a documentation comment or a directive.
func buildStructuredTrivia(x *expr, a []value) (value, error) {
	if err := want(a[0], vNode); err != nil {
		return value{}, err
	}
	n := a[0].node
	if !n.Kind.IsStructuredTrivia() {
		return value{}, errorf(diag.EvlArgumentType, a[0].off, "%s is not structured trivia", n.Kind)
	}
	return value{kind: vTrivia, off: x.off, trivia: []syntax.Trivia{{Kind: n.Kind, Structure: n}}}, nil
}

// List<T>(a, b, ...) and SingletonList<T>(a).
func buildList(x *expr, a []value) (value, error) {
	out := value{kind: vList, off: x.off, elem: x.typeArg, nodes: []*syntax.Node{}}
	for _, v := range a {
		if err := want(v, vNode); err != nil {
			return value{}, err
		}
		out.nodes = append(out.nodes, v.node)
	}
	return out, nil
}

// SeparatedList<T>() | SeparatedList<T>(NodeOrTokenList(n, sep, n, ...))
func buildSeparatedList(x *expr, a []value) (value, error) {
	out := value{kind: vSepList, off: x.off, elem: x.typeArg}
	if len(a) == 0 {
		return out, nil
	}
	if err := want(a[0], vItems); err != nil {
		return value{}, err
	}
	for i, it := range a[0].items {
		if i%2 == 0 {
			if it.kind != vNode {
				return value{}, errorf(diag.EvlArgumentType, it.off, "separated list item %d must be a node, got %s", i, it.kind)
			}
			out.nodes = append(out.nodes, it.node)
			continue
		}
		if it.kind != vToken {
			return value{}, errorf(diag.EvlArgumentType, it.off, "separated list item %d must be a separator token, got %s", i, it.kind)
		}
		out.seps = append(out.seps, it.tok)
	}
	return out, nil
}

func buildSingletonSeparatedList(x *expr, a []value) (value, error) {
	if err := want(a[0], vNode); err != nil {
		return value{}, err
	}
	return value{kind: vSepList, off: x.off, elem: x.typeArg, nodes: []*syntax.Node{a[0].node}}, nil
}

func buildItems(x *expr, a []value) (value, error) {
	for _, v := range a {
		if err := want(v, vNode, vToken); err != nil {
			return value{}, err
		}
	}
	return value{kind: vItems, off: x.off, items: a}, nil
}

func buildTokenList(x *expr, a []value) (value, error) {
	out := value{kind: vTokenList, off: x.off}
	for _, v := range a {
		if err := want(v, vToken); err != nil {
			return value{}, err
		}
		out.toks = append(out.toks, v.tok)
	}
	return out, nil
}
