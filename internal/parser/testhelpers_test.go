package parser

import (
	"fmt"
	"strings"
	"testing"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseOK разбирает src и требует отсутствия ошибок и точного восстановления текста.
func parseOK(t *testing.T, src string) *syntax.Node {
	t.Helper()
	root, bag := ParseText("test.cs", src, lexer.Options{})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	if got := root.FullString(); got != src {
		t.Fatalf("full text mismatch:\nwant %q\ngot  %q", src, got)
	}
	return root
}

// firstOfKind возвращает первый узел вида k в порядке обхода.
func firstOfKind(t *testing.T, root *syntax.Node, k syntax.Kind) *syntax.Node {
	t.Helper()
	var found *syntax.Node
	syntax.Inspect(root, func(n *syntax.Node) bool {
		if found == nil && n.Kind == k {
			found = n
		}
		return found == nil
	})
	if found == nil {
		t.Fatalf("no %s node in tree", k)
	}
	return found
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// exprOf разбирает выражение внутри тела метода.
func exprOf(t *testing.T, expr string) *syntax.Node {
	t.Helper()
	root := parseOK(t, "class C { void M() { x = "+expr+"; } }")
	assign := firstOfKind(t, root, syntax.SimpleAssignmentExpression)
	return assign.ChildNode("right")
}

func newTestFile(src string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("test.cs", []byte(src)))
}
