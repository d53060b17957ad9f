package syntax

// Equal reports deep structural equality of two subtrees: kinds, slot
// contents, token text and value text, trivia (structured trivia recursively)
// and directive flags.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || len(a.Slots) != len(b.Slots) {
		return false
	}
	for i := range a.Slots {
		if !slotEqual(&a.Slots[i], &b.Slots[i]) {
			return false
		}
	}
	return true
}

func slotEqual(a, b *Slot) bool {
	if a.Flag != b.Flag || !Equal(a.Node, b.Node) || !TokenEqual(a.Token, b.Token) {
		return false
	}
	if len(a.Nodes) != len(b.Nodes) || len(a.Separators) != len(b.Separators) || len(a.Tokens) != len(b.Tokens) {
		return false
	}
	for i := range a.Nodes {
		if !Equal(a.Nodes[i], b.Nodes[i]) {
			return false
		}
	}
	for i := range a.Separators {
		if !TokenEqual(a.Separators[i], b.Separators[i]) {
			return false
		}
	}
	for i := range a.Tokens {
		if !TokenEqual(a.Tokens[i], b.Tokens[i]) {
			return false
		}
	}
	return true
}

// TokenEqual compares two tokens including trivia.
func TokenEqual(a, b *Token) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind == b.Kind &&
		a.Text == b.Text &&
		a.ValueText == b.ValueText &&
		triviaEqual(a.Leading, b.Leading) &&
		triviaEqual(a.Trailing, b.Trailing)
}

func triviaEqual(a, b []Trivia) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text || !Equal(a[i].Structure, b[i].Structure) {
			return false
		}
	}
	return true
}

// Diff returns a short description of the first difference between two
// subtrees, or "" when they are equal. Used in test failures and by the
// round-trip checker.
func Diff(a, b *Node) string {
	if Equal(a, b) {
		return ""
	}
	if a == nil || b == nil {
		return "one side is nil"
	}
	if a.Kind != b.Kind {
		return "kind " + a.Kind.String() + " != " + b.Kind.String()
	}
	schema := Schema(a.Kind)
	for i := range a.Slots {
		if i >= len(b.Slots) {
			break
		}
		if slotEqual(&a.Slots[i], &b.Slots[i]) {
			continue
		}
		name := "?"
		if i < len(schema) {
			name = schema[i].Name
		}
		sa, sb := &a.Slots[i], &b.Slots[i]
		if sa.Node != nil && sb.Node != nil {
			return a.Kind.String() + "." + name + ": " + Diff(sa.Node, sb.Node)
		}
		for j := range sa.Nodes {
			if j < len(sb.Nodes) && !Equal(sa.Nodes[j], sb.Nodes[j]) {
				return a.Kind.String() + "." + name + ": " + Diff(sa.Nodes[j], sb.Nodes[j])
			}
		}
		return a.Kind.String() + "." + name + " differs"
	}
	return a.Kind.String() + ": slot count differs"
}
