package testkit

import (
	"fmt"
	"slices"

	"quoter/internal/source"
	"quoter/internal/syntax"
)

// CheckTreeInvariants runs a minimal set of structural invariants on a parsed
// file:
// 1) the tree text reproduces the file content byte for byte
// 2) every node has exactly the slots of its schema
// 3) present tokens have a kind the slot accepts
// 4) lists hold no nil entries and separated lists have n-1 or n separators
func CheckTreeInvariants(root *syntax.Node, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if got := root.FullString(); got != string(sf.Content) {
		return fmt.Errorf("tree text differs from %s at byte %d", sf.Path, firstDiff(got, string(sf.Content)))
	}
	return walk(root, root.Kind.String())
}

func walk(n *syntax.Node, path string) error {
	schema := syntax.Schema(n.Kind)
	if len(n.Slots) != len(schema) {
		return fmt.Errorf("%s: %d slots, schema has %d", path, len(n.Slots), len(schema))
	}
	for i, d := range schema {
		sl := &n.Slots[i]
		at := path + "." + d.Name
		switch d.Kind {
		case syntax.SlotNode:
			if sl.Node != nil {
				if err := walk(sl.Node, at); err != nil {
					return err
				}
			}
		case syntax.SlotToken:
			if err := checkToken(sl.Token, d, at); err != nil {
				return err
			}
		case syntax.SlotList, syntax.SlotSeparatedList:
			if d.Kind == syntax.SlotSeparatedList {
				ns, ss := len(sl.Nodes), len(sl.Separators)
				if ns == 0 && ss != 0 || ns > 0 && ss != ns-1 && ss != ns {
					return fmt.Errorf("%s: %d nodes with %d separators", at, ns, ss)
				}
			}
			for j, c := range sl.Nodes {
				if c == nil {
					return fmt.Errorf("%s[%d]: nil node", at, j)
				}
				if err := walk(c, fmt.Sprintf("%s[%d]", at, j)); err != nil {
					return err
				}
			}
		case syntax.SlotTokenList:
			for j, t := range sl.Tokens {
				if t == nil {
					return fmt.Errorf("%s[%d]: nil token", at, j)
				}
			}
		}
	}
	return nil
}

func checkToken(t *syntax.Token, d syntax.SlotDesc, at string) error {
	if t == nil || len(d.Tokens) == 0 {
		return nil
	}
	if !slices.Contains(d.Tokens, t.Kind) {
		return fmt.Errorf("%s: token %s not accepted (want one of %v)", at, t.Kind, d.Tokens)
	}
	for _, tr := range append(slices.Clip(t.Leading), t.Trailing...) {
		if tr.Structure != nil {
			if err := walk(tr.Structure, at+"/"+tr.Kind.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

func firstDiff(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
