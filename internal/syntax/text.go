package syntax

import "strings"

type textWriter struct {
	strings.Builder
}

func (w *textWriter) trivia(list []Trivia) {
	for _, tr := range list {
		if tr.Structure != nil {
			w.node(tr.Structure)
			continue
		}
		w.WriteString(tr.Text)
	}
}

func (w *textWriter) token(t *Token) {
	w.trivia(t.Leading)
	w.WriteString(t.Text)
	w.trivia(t.Trailing)
}

func (w *textWriter) node(n *Node) {
	n.EachToken(w.token)
}

// FullString renders the exact source text of the subtree, trivia included.
func (n *Node) FullString() string {
	if n == nil {
		return ""
	}
	var w textWriter
	w.node(n)
	return w.String()
}

// String renders the subtree without the outermost leading and trailing trivia.
func (n *Node) String() string {
	full := n.FullString()
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return full
	}
	var lead, trail textWriter
	lead.trivia(first.Leading)
	trail.trivia(last.Trailing)
	return full[lead.Len() : len(full)-trail.Len()]
}
