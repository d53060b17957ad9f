package parser

import (
	"strings"
	"testing"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/syntax"
)

func TestFullTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"using System;\nusing System.Collections.Generic;\n",
		"namespace N { class C { } }",
		"namespace A.B\n{\n    public sealed class C<T> : Base, IFoo<T>\n    {\n    }\n}\n",
		"struct S { public int X; public int Y = 1, Z; }",
		"interface I { int Count { get; } void Run(); }",
		"enum Color : byte { Red = 1, Green, Blue, }",
		"class C { int P { get; set; } = 42; }",
		"class C { int P => 1; string Q { get => q; set { q = value; } } }",
		"class C { static T Max<T>(T a, T b) => a > b ? a : b; }",
		"class C { void M(ref int a, out int b, params int[] rest, int c = 3) { } }",
		"[Serializable]\n[Obsolete(\"x\", error: true)] class C { }",
		"class C { int[,] grid; int?[] maybe; List<Dictionary<string, int>> map; }",
		"class C { void M() { var x = new List<int>(); x.Add(1); x[0] = x[0] + 1; } }",
		"class C { void M() { if (a) b(); else if (c) { d(); } else ; while (i < 10) i += 1; } }",
		"class C { void M() { return; } int N() { return -a * (b + c) % ~d; } }",
		"class C { string S() => $\"a {b} c {d:X2} {{e}}\"; }",
		"class C { void M() { F<int>(a); G(a < b, c > d); h = i ?? j ?? k; } }",
		"class C { void M() { Call(name: 1, ref x, out y, in z); this.x = null; } }",
		"class C { void M() { const int k = 1, l = 2; } }",
		"// leading comment\nclass C /* inline */ { } // trailing\n",
		"#if DEBUG\nclass D { }\n#else\nclass R { }\n#endif\n",
		"/// <summary>Doc</summary>\nclass C { }",
		"class C { bool B() => !a && b || c | d ^ e & f == g != h <= i >= j; }",
		"class C { void M() { int.Parse(s); string.Join(\",\", xs); } }",
	}
	for _, src := range inputs {
		parseOK(t, src)
	}
}

func TestCompilationUnitShape(t *testing.T) {
	root := parseOK(t, "using System;\nnamespace N { class C { void M() { } } }")
	if root.Kind != syntax.CompilationUnit {
		t.Fatalf("root kind = %s", root.Kind)
	}
	if n := len(root.Slots[0].Nodes); n != 1 {
		t.Fatalf("usings = %d, want 1", n)
	}
	ns := root.Slots[1].Nodes[0]
	if ns.Kind != syntax.NamespaceDeclaration {
		t.Fatalf("member kind = %s", ns.Kind)
	}
	class := ns.Get("members").Nodes[0]
	if class.Kind != syntax.ClassDeclaration || class.ChildToken("identifier").Text != "C" {
		t.Fatalf("unexpected class node %s", class.Kind)
	}
	method := class.Get("members").Nodes[0]
	if method.Kind != syntax.MethodDeclaration {
		t.Fatalf("method kind = %s", method.Kind)
	}
	if method.ChildNode("body") == nil || method.ChildToken("semicolonToken") != nil {
		t.Fatalf("method should have a block body and no semicolon")
	}
	if len(root.Slots) != len(syntax.Schema(syntax.CompilationUnit)) {
		t.Fatalf("slot count mismatch")
	}
}

func TestSlotsMatchSchema(t *testing.T) {
	root := parseOK(t, "[A(1)] public class C<in T> : B { int f; int P { get; } void M(int a) { if (a > 0) return; else while (b) ; } }")
	syntax.Inspect(root, func(n *syntax.Node) bool {
		if got, want := len(n.Slots), len(syntax.Schema(n.Kind)); got != want {
			t.Errorf("%s: %d slots, schema has %d", n.Kind, got, want)
		}
		return true
	})
}

func TestBinaryPrecedence(t *testing.T) {
	e := exprOf(t, "a + b * c")
	if e.Kind != syntax.AddExpression {
		t.Fatalf("top = %s, want AddExpression", e.Kind)
	}
	if r := e.ChildNode("right"); r.Kind != syntax.MultiplyExpression {
		t.Fatalf("right = %s, want MultiplyExpression", r.Kind)
	}

	e = exprOf(t, "a - b - c")
	if l := e.ChildNode("left"); l.Kind != syntax.SubtractExpression {
		t.Fatalf("subtraction must be left-associative, left = %s", l.Kind)
	}

	e = exprOf(t, "a || b && c")
	if e.Kind != syntax.LogicalOrExpression || e.ChildNode("right").Kind != syntax.LogicalAndExpression {
		t.Fatalf("|| / && precedence broken: %s", e.Kind)
	}

	e = exprOf(t, "a == b | c")
	if e.Kind != syntax.BitwiseOrExpression {
		t.Fatalf("== must bind tighter than |, got %s", e.Kind)
	}
}

func TestRightAssociative(t *testing.T) {
	e := exprOf(t, "a ?? b ?? c")
	if e.Kind != syntax.CoalesceExpression {
		t.Fatalf("top = %s", e.Kind)
	}
	if e.ChildNode("left").Kind != syntax.IdentifierName || e.ChildNode("right").Kind != syntax.CoalesceExpression {
		t.Fatalf("?? must be right-associative")
	}

	e = exprOf(t, "b = c += 1")
	if e.Kind != syntax.SimpleAssignmentExpression || e.ChildNode("right").Kind != syntax.AddAssignmentExpression {
		t.Fatalf("assignment must be right-associative, got %s", e.Kind)
	}

	e = exprOf(t, "a ? b : c ? d : e")
	if e.Kind != syntax.ConditionalExpression || e.ChildNode("whenFalse").Kind != syntax.ConditionalExpression {
		t.Fatalf("conditional must nest in whenFalse")
	}
}

func TestUnaryAndPostfix(t *testing.T) {
	e := exprOf(t, "-a.b(c)[d]")
	if e.Kind != syntax.UnaryMinusExpression {
		t.Fatalf("top = %s", e.Kind)
	}
	access := e.ChildNode("operand")
	if access.Kind != syntax.ElementAccessExpression {
		t.Fatalf("operand = %s", access.Kind)
	}
	call := access.ChildNode("expression")
	if call.Kind != syntax.InvocationExpression {
		t.Fatalf("call = %s", call.Kind)
	}
	if m := call.ChildNode("expression"); m.Kind != syntax.SimpleMemberAccessExpression {
		t.Fatalf("member = %s", m.Kind)
	}
}

func TestGenericVersusLessThan(t *testing.T) {
	e := exprOf(t, "F<int>(a)")
	if e.Kind != syntax.InvocationExpression || e.ChildNode("expression").Kind != syntax.GenericName {
		t.Fatalf("F<int>(a) should be a generic invocation, got %s", e.Kind)
	}

	e = exprOf(t, "a < b")
	if e.Kind != syntax.LessThanExpression {
		t.Fatalf("a < b should be a comparison, got %s", e.Kind)
	}

	e = exprOf(t, "G(a < b, c > d)")
	args := e.ChildNode("argumentList").Get("arguments")
	if len(args.Nodes) != 2 {
		t.Fatalf("G(a < b, c > d) should have 2 arguments, got %d", len(args.Nodes))
	}
}

func TestLocalDeclarationVersusExpression(t *testing.T) {
	root := parseOK(t, "class C { void M() { List<int> xs = null; x = 1; a < b; T? y; int[] z; } }")
	body := firstOfKind(t, root, syntax.Block)
	want := []syntax.Kind{
		syntax.LocalDeclarationStatement,
		syntax.ExpressionStatement,
		syntax.ExpressionStatement,
		syntax.LocalDeclarationStatement,
		syntax.LocalDeclarationStatement,
	}
	stmts := body.Get("statements").Nodes
	if len(stmts) != len(want) {
		t.Fatalf("got %d statements, want %d", len(stmts), len(want))
	}
	for i, k := range want {
		if stmts[i].Kind != k {
			t.Errorf("statement %d: got %s, want %s", i, stmts[i].Kind, k)
		}
	}
	typ := stmts[3].ChildNode("declaration").ChildNode("type")
	if typ.Kind != syntax.NullableType {
		t.Fatalf("T? should be NullableType, got %s", typ.Kind)
	}
	arr := stmts[4].ChildNode("declaration").ChildNode("type")
	if arr.Kind != syntax.ArrayType {
		t.Fatalf("int[] should be ArrayType, got %s", arr.Kind)
	}
	size := arr.Get("rankSpecifiers").Nodes[0].Get("sizes").Nodes[0]
	if size.Kind != syntax.OmittedArraySizeExpression {
		t.Fatalf("rank size = %s", size.Kind)
	}
}

func TestAccessorKeywords(t *testing.T) {
	root := parseOK(t, "class C { int P { get; set; } int get; }")
	list := firstOfKind(t, root, syntax.AccessorList)
	acc := list.Get("accessors").Nodes
	if len(acc) != 2 {
		t.Fatalf("accessors = %d", len(acc))
	}
	if acc[0].Kind != syntax.GetAccessorDeclaration || acc[0].ChildToken("keyword").Kind != syntax.GetKeyword {
		t.Fatalf("first accessor = %s", acc[0].Kind)
	}
	if acc[1].Kind != syntax.SetAccessorDeclaration || acc[1].ChildToken("keyword").Kind != syntax.SetKeyword {
		t.Fatalf("second accessor = %s", acc[1].Kind)
	}
	field := firstOfKind(t, root, syntax.VariableDeclarator)
	if k := field.ChildToken("identifier").Kind; k != syntax.IdentifierToken {
		t.Fatalf("field named get must stay an identifier, got %s", k)
	}
}

func TestInterpolationAlignmentRejected(t *testing.T) {
	_, bag := ParseText("test.cs", "class C { string S() => $\"{x,5}\"; }", lexer.Options{})
	if !hasCode(bag, diag.SynBadInterpolation) {
		t.Fatalf("expected SynBadInterpolation, got %s", diagnosticsSummary(bag))
	}
}

func TestInterpolationFormat(t *testing.T) {
	e := exprOf(t, `$"v={x:F2}!"`)
	if e.Kind != syntax.InterpolatedStringExpression {
		t.Fatalf("kind = %s", e.Kind)
	}
	contents := e.Get("contents").Nodes
	if len(contents) != 3 {
		t.Fatalf("contents = %d, want 3", len(contents))
	}
	interp := contents[1]
	format := interp.ChildNode("formatClause")
	if format == nil || format.ChildToken("formatStringToken").Text != "F2" {
		t.Fatalf("format clause not parsed")
	}
}

func TestNamedAndRefArguments(t *testing.T) {
	e := exprOf(t, "F(count: 1, ref y)")
	args := e.ChildNode("argumentList").Get("arguments").Nodes
	if args[0].ChildNode("nameColon") == nil {
		t.Fatalf("first argument should be named")
	}
	if tok := args[1].ChildToken("refKindKeyword"); tok == nil || tok.Kind != syntax.RefKeyword {
		t.Fatalf("second argument should carry ref")
	}
}

func TestMissingSemicolon(t *testing.T) {
	root, bag := ParseText("test.cs", "class C { int x }", lexer.Options{})
	if !hasCode(bag, diag.SynExpectSemicolon) {
		t.Fatalf("expected SynExpectSemicolon, got %s", diagnosticsSummary(bag))
	}
	field := firstOfKind(t, root, syntax.FieldDeclaration)
	if semi := field.ChildToken("semicolonToken"); !semi.IsMissing() {
		t.Fatalf("semicolon should be a missing token, got %q", semi.Text)
	}
}

func TestTopLevelStatementRejected(t *testing.T) {
	_, bag := ParseText("test.cs", "x = 1;\nclass C { }", lexer.Options{})
	if !hasCode(bag, diag.SynUnexpectedTopLevel) {
		t.Fatalf("expected SynUnexpectedTopLevel, got %s", diagnosticsSummary(bag))
	}
}

func TestExpectExpression(t *testing.T) {
	_, bag := ParseText("test.cs", "class C { void M() { x = ; } }", lexer.Options{})
	if !hasCode(bag, diag.SynExpectExpression) {
		t.Fatalf("expected SynExpectExpression, got %s", diagnosticsSummary(bag))
	}
}

func TestUnclosedBrace(t *testing.T) {
	_, bag := ParseText("test.cs", "class C { void M() { ", lexer.Options{})
	if !hasCode(bag, diag.SynUnclosedBrace) {
		t.Fatalf("expected SynUnclosedBrace, got %s", diagnosticsSummary(bag))
	}
}

func TestLexerDiagnosticsReachBag(t *testing.T) {
	_, bag := ParseText("test.cs", "class C { string s = \"abc; }", lexer.Options{})
	if !hasCode(bag, diag.LexUnterminatedString) {
		t.Fatalf("expected LexUnterminatedString, got %s", diagnosticsSummary(bag))
	}
}

func TestMaxErrors(t *testing.T) {
	bag := diag.NewBag(0)
	fs := newTestFile("class C { void M() { x = ; y = ; z = ; } }")
	res := ParseFile(fs, Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 1})
	if res.Root == nil {
		t.Fatal("root must be produced even with errors")
	}
	if got := bag.Len(); got != 1 {
		t.Fatalf("MaxErrors=1 reported %d diagnostics: %s", got, diagnosticsSummary(bag))
	}
}

func TestDefinesSelectBranch(t *testing.T) {
	src := "#if DEBUG\nclass D { }\n#else\nclass R { }\n#endif\n"
	root, bag := ParseText("test.cs", src, lexer.Options{Defines: []string{"DEBUG"}})
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	class := firstOfKind(t, root, syntax.ClassDeclaration)
	if id := class.ChildToken("identifier").Text; id != "D" {
		t.Fatalf("active class = %s, want D", id)
	}
	if root.FullString() != src {
		t.Fatalf("full text mismatch")
	}
}

func TestNestingLimit(t *testing.T) {
	const n = 100000
	rep := strings.Repeat
	tests := []struct {
		name string
		src  string
	}{
		{"parentheses", "class C { void M() { x = " + rep("(", n) + "a" + rep(")", n) + "; } }"},
		{"unary", "class C { void M() { x = " + rep("- ", n) + "a; } }"},
		{"assignment", "class C { void M() { " + rep("a = ", n) + "b; } }"},
		{"coalesce", "class C { object M() => " + rep("a ?? ", n) + "b; }"},
		{"conditional", "class C { int M() => " + rep("a ? b : ", n) + "c; }"},
		{"blocks", "class C { void M() " + rep("{ ", n) + rep("} ", n) + "}"},
		{"type arguments", "class C { " + rep("List<", n) + "int" + rep("> ", n) + "x; }"},
		{"types", "class C { " + rep("class D { ", n) + rep("} ", n) + "}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := ParseText("deep.cs", tt.src, lexer.Options{})
			got := 0
			for _, d := range bag.Items() {
				if d.Code == diag.SynTooDeep {
					got++
				}
			}
			if got != 1 {
				t.Fatalf("SynTooDeep reported %d times: %s", got, diagnosticsSummary(bag))
			}
			if !bag.HasErrors() {
				t.Fatal("nesting overflow must be an error")
			}
		})
	}
}

func TestNestingLimitOption(t *testing.T) {
	tests := []struct {
		levels  int
		tooDeep bool
	}{
		{2, false},
		{20, true},
	}
	for _, tt := range tests {
		src := "class C { int M() => " + strings.Repeat("(", tt.levels) + "a" + strings.Repeat(")", tt.levels) + "; }"
		bag := diag.NewBag(0)
		ParseFile(newTestFile(src), Options{Reporter: diag.BagReporter{Bag: bag}, MaxDepth: 10})
		if got := hasCode(bag, diag.SynTooDeep); got != tt.tooDeep {
			t.Fatalf("%d levels with MaxDepth=10: too deep = %v, want %v (%s)",
				tt.levels, got, tt.tooDeep, diagnosticsSummary(bag))
		}
	}
}
