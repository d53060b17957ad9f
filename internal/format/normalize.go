package format

import "quoter/internal/syntax"

// tokInfo is a token with the node that holds it and that node's parent.
type tokInfo struct {
	tok    *syntax.Token
	parent syntax.Kind
	owner  syntax.Kind
	slot   string
}

// Normalize returns a formatted copy of root: whitespace and line breaks are
// canonical, comments, doc comments, directives and disabled text are kept.
// Applying it to its own output changes nothing.
func Normalize(root *syntax.Node, opt Options) *syntax.Node {
	if root == nil {
		return nil
	}
	n := root.Clone()
	var toks []tokInfo
	collect(n, syntax.None, &toks)

	w := NewWriter(opt)
	interp := 0 // вложенность $"..."
	for i, cur := range toks {
		if interp == 0 && cur.tok.Kind == syntax.CloseBraceToken {
			w.IndentPop()
		}
		w.SetRaw(interp > 0)
		if i > 0 && interp == 0 {
			switch separatorBetween(toks[i-1], cur) {
			case sepSpace:
				w.Space()
			case sepNewline:
				w.Newline()
			}
		}
		w.WriteToken(cur.tok)
		switch cur.tok.Kind {
		case syntax.InterpolatedStringStartToken, syntax.InterpolatedVerbatimStringStartToken:
			interp++
		case syntax.InterpolatedStringEndToken:
			if interp > 0 {
				interp--
			}
		case syntax.OpenBraceToken:
			if interp == 0 {
				w.IndentPush()
			}
		}
	}
	w.Close()
	return n
}

func collect(n *syntax.Node, parent syntax.Kind, out *[]tokInfo) {
	schema := syntax.Schema(n.Kind)
	for i := range n.Slots {
		s := &n.Slots[i]
		name := ""
		if i < len(schema) {
			name = schema[i].Name
		}
		add := func(t *syntax.Token) {
			*out = append(*out, tokInfo{tok: t, parent: n.Kind, owner: parent, slot: name})
		}
		switch {
		case s.Node != nil:
			collect(s.Node, n.Kind, out)
		case s.Token != nil:
			add(s.Token)
		case len(s.Tokens) > 0:
			for _, t := range s.Tokens {
				add(t)
			}
		default:
			for j, e := range s.Nodes {
				collect(e, n.Kind, out)
				if j < len(s.Separators) {
					add(s.Separators[j])
				}
			}
		}
	}
}

// separatorBetween decides what goes between two adjacent tokens outside
// interpolated strings.
func separatorBetween(a, b tokInfo) separator {
	at, bt := a.tok.Kind, b.tok.Kind
	switch {
	case bt == syntax.EndOfFileToken:
		return sepNewline
	case a.tok.Text == "" || b.tok.Text == "":
		return sepNone
	case at == syntax.SemicolonToken, at == syntax.OpenBraceToken:
		return sepNewline
	case at == syntax.CloseBraceToken:
		switch bt {
		case syntax.SemicolonToken, syntax.CommaToken, syntax.CloseParenToken:
			return sepNone
		case syntax.EqualsToken:
			return sepSpace
		}
		return sepNewline
	case bt == syntax.OpenBraceToken, bt == syntax.CloseBraceToken:
		return sepNewline
	case at == syntax.CloseBracketToken && a.parent == syntax.AttributeList:
		if a.owner == syntax.Parameter || a.owner == syntax.TypeParameter {
			return sepSpace
		}
		return sepNewline
	case bt == syntax.CommaToken, bt == syntax.SemicolonToken:
		return sepNone
	case at == syntax.CommaToken:
		return sepSpace
	case spacedOperator(a), spacedOperator(b):
		return sepSpace
	case at == syntax.ColonToken && a.parent == syntax.NameColon:
		return sepSpace
	case at == syntax.IfKeyword, at == syntax.WhileKeyword, at == syntax.ReturnKeyword:
		return sepSpace
	case wordLike(bt) || bt.IsInterpolatedStringStart():
		switch {
		case wordLike(at):
			return sepSpace
		case at == syntax.GreaterThanToken, at == syntax.CloseBracketToken,
			at == syntax.QuestionToken, at == syntax.CloseParenToken:
			return sepSpace
		}
	}
	return sepNone
}

func wordLike(k syntax.Kind) bool {
	return k.IsKeyword() || k == syntax.IdentifierToken || k.IsLiteralToken()
}

// spacedOperator reports tokens written with a space on both sides.
func spacedOperator(t tokInfo) bool {
	p := t.parent
	switch {
	case p.IsBinaryExpression(), p.IsAssignmentExpression():
		return t.slot == "operatorToken"
	case p == syntax.EqualsValueClause, p == syntax.ArrowExpressionClause:
		return true
	case p == syntax.ConditionalExpression:
		return t.slot == "questionToken" || t.slot == "colonToken"
	case p == syntax.BaseList:
		return t.slot == "colonToken"
	}
	return false
}
