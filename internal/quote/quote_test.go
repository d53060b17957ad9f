package quote_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"quoter/internal/diag"
	"quoter/internal/eval"
	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/quote"
	"quoter/internal/syntax"
)

var roundTripInputs = []string{
	"",
	"using System;\nusing System.Collections.Generic;\n",
	"namespace A.B { public class C {} }",
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
	"class C\r\n{\r\n\tint @class;\r\n}\r\n",
	"#region Fields\nclass C { }\n#endregion\n#line 10 \"gen.cs\"\n#pragma warning disable CS0168\n",
	"#nullable enable\nclass C { }\n#nullable restore warnings\n",
}

var literalInputs = []string{
	"class C { long a = 1L; ulong b = 0x1FUL; double d = 1.5e3; float f = 2.5f; decimal m = 10m; }",
	"class C { string s = \"tab\\there \\u0041\\\\ \\\"q\\\"\"; string e = \"\"; }",
	"class C { string v = @\"c:\\dir\"\"quoted\"\"\"; string ml = @\"line1\nline2\"; }",
	"class C { char c = '\\n'; char q = '\\''; char u = '\\u00e9'; char x = 'x'; }",
	"class C { string w = \"héllo wörld ✓\"; char z = 'я'; }",
	"class C { string i = $\"x{y:N2}z\\n{{}}\"; }",
	"class C { string a = $@\"x{y}\"\"z\"; }",
	"class C { string b = @$\"a\\b{c}\nline\"; }",
	"class C { bool t = true, f = false; object n = null; }",
}

func mustSerialize(t *testing.T, src string, s quote.Settings) string {
	t.Helper()
	out, err := quote.Serialize(src, s)
	if err != nil {
		t.Fatalf("serialize %q: %v", src, err)
	}
	return out
}

// roundTrip serializes src, evaluates the result and compares the rebuilt
// tree with a fresh parse of src.
func roundTrip(t *testing.T, src string, s quote.Settings) string {
	t.Helper()
	out := mustSerialize(t, src, s)
	got, err := eval.Evaluate(out)
	if err != nil {
		t.Fatalf("evaluate output of %q: %v\n%s", src, err, out)
	}
	if text := got.FullString(); text != src {
		t.Fatalf("round trip text mismatch:\nwant %q\ngot  %q\noutput:\n%s", src, text, out)
	}
	want, bag := parser.ParseText("input.cs", src, lexer.Options{})
	if bag.HasErrors() {
		t.Fatalf("parse %q: %v", src, bag.Err())
	}
	if d := syntax.Diff(want, got); d != "" {
		t.Fatalf("round trip tree mismatch for %q: %s", src, d)
	}
	return out
}

func TestRoundTripMinimal(t *testing.T) {
	for _, src := range append(roundTripInputs, literalInputs...) {
		roundTrip(t, src, quote.DefaultSettings())
	}
}

var spaceAtom = regexp.MustCompile(`\b(Space|LineFeed|CarriageReturnLineFeed)\b`)

func TestRoundTripVerbose(t *testing.T) {
	s := quote.DefaultSettings()
	s.Mode = quote.Verbose
	for _, src := range append(roundTripInputs, literalInputs...) {
		out := roundTrip(t, src, s)
		if spaceAtom.MatchString(out) {
			t.Fatalf("verbose output uses the trivia shorthands:\n%s", out)
		}
	}
}

func TestRoundTripPreserveQuotes(t *testing.T) {
	s := quote.DefaultSettings()
	s.Quotes = quote.QuotePreserve
	src := "class C { string v = @\"c:\\dir\"\"x\"\"\"; }"
	out := roundTrip(t, src, s)
	if !strings.Contains(out, `@"@""c:\dir""""x"""""""`) {
		t.Fatalf("expected verbatim raw text in output:\n%s", out)
	}
	for _, src := range literalInputs {
		roundTrip(t, src, s)
	}
}

func TestDefaultFormattingIdempotent(t *testing.T) {
	s := quote.DefaultSettings()
	s.Mode = quote.DefaultFormatting
	for _, src := range roundTripInputs {
		out := mustSerialize(t, src, s)
		tree, err := eval.Evaluate(out)
		if err != nil {
			t.Fatalf("evaluate %q: %v\n%s", src, err, out)
		}
		again, err := quote.SerializeNode(tree, s)
		if err != nil {
			t.Fatalf("reserialize %q: %v", src, err)
		}
		if again != out {
			t.Fatalf("defaultFormatting is not idempotent for %q:\nfirst:\n%s\nsecond:\n%s", src, out, again)
		}
		if _, bag := parser.ParseText("fmt.cs", tree.FullString(), lexer.Options{}); bag.HasErrors() {
			t.Fatalf("formatted text of %q does not parse: %v\n%s", src, bag.Err(), tree.FullString())
		}
	}
}

func TestDefaultFormattingKeepsComments(t *testing.T) {
	s := quote.DefaultSettings()
	s.Mode = quote.DefaultFormatting
	src := "// keep me\nclass C { int x; /* and me */ }\n#if false\nclass Dead { }\n#endif\n"
	out := mustSerialize(t, src, s)
	tree, err := eval.Evaluate(out)
	if err != nil {
		t.Fatalf("evaluate: %v\n%s", err, out)
	}
	want := "// keep me\nclass C\n{\n    int x; /* and me */\n}\n#if false\nclass Dead { }\n#endif\n"
	if got := tree.FullString(); got != want {
		t.Fatalf("formatted text:\ngot  %q\nwant %q", got, want)
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	src := roundTripInputs[3]
	a := mustSerialize(t, src, quote.DefaultSettings())
	b := mustSerialize(t, src, quote.DefaultSettings())
	if a != b {
		t.Fatalf("two serializations differ")
	}
}

func TestScenarioNamespaceClass(t *testing.T) {
	roundTrip(t, "namespace A.B { public class C {} }", quote.DefaultSettings())
}

func TestScenarioInactiveBranch(t *testing.T) {
	src := "class C\n{\n    int M()\n    {\n#if true\n        return 1;\n#else\n        return 2;\n#endif\n    }\n}\n"
	out := roundTrip(t, src, quote.DefaultSettings())
	if !strings.Contains(out, "DisabledText(") || !strings.Contains(out, "return 2;") {
		t.Fatalf("inactive branch is not disabled text:\n%s", out)
	}
	if !strings.Contains(out, "ReturnStatement(") || !strings.Contains(out, "Literal(1)") {
		t.Fatalf("active branch is not serialized as statements:\n%s", out)
	}
	for _, flag := range []string{"IfDirectiveTrivia(", "ElseDirectiveTrivia(", "EndIfDirectiveTrivia("} {
		if !strings.Contains(out, flag) {
			t.Fatalf("missing %s in output", flag)
		}
	}
}

func TestScenarioInterpolatedString(t *testing.T) {
	out := roundTrip(t, "class C { string s = $\"abc{1}\"; }", quote.DefaultSettings())
	text := strings.Index(out, "InterpolatedStringText(")
	interp := strings.Index(out, "Interpolation(")
	if text < 0 || interp < text {
		t.Fatalf("expected text followed by interpolation:\n%s", out)
	}
}

func TestScenarioVerbatimInterpolatedString(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{
			"class C { string s = $@\"x{y}\"\"z\"; }",
			[]string{"SyntaxKind.InterpolatedVerbatimStringStartToken", `"\"\"z"`, `"\"z"`},
		},
		{
			"class C { string s = @$\"a\\b{c}\"; }",
			[]string{`"@$\""`, `"a\\b"`},
		},
	}
	for _, tt := range tests {
		out := roundTrip(t, tt.src, quote.DefaultSettings())
		for _, w := range tt.want {
			if !strings.Contains(out, w) {
				t.Errorf("%q: output lacks %s:\n%s", tt.src, w, out)
			}
		}
	}
}

func TestScenarioNullableDirective(t *testing.T) {
	out := roundTrip(t, "#nullable disable annotations\nclass C { }\n", quote.DefaultSettings())
	for _, w := range []string{"NullableDirectiveTrivia(", "SyntaxKind.DisableKeyword", "SyntaxKind.AnnotationsKeyword"} {
		if !strings.Contains(out, w) {
			t.Fatalf("output lacks %s:\n%s", w, out)
		}
	}
}

func TestScenarioLongMemberChain(t *testing.T) {
	src := "class C { void M() { var x = a" + strings.Repeat(".b", 50) + "; } }"
	out := roundTrip(t, src, quote.DefaultSettings())
	if n := strings.Count(out, "MemberAccessExpression("); n != 50 {
		t.Fatalf("member accesses = %d, want 50", n)
	}
}

func TestLongChainSerializesInOnePass(t *testing.T) {
	src := "class C { void M() { var x = a" + strings.Repeat(".b", 1000) + "; } }"
	start := time.Now()
	out := roundTrip(t, src, quote.DefaultSettings())
	if n := strings.Count(out, "MemberAccessExpression("); n != 1000 {
		t.Fatalf("member accesses = %d, want 1000", n)
	}
	if d := time.Since(start); d > 20*time.Second {
		t.Fatalf("round trip of a 1000-link chain took %v", d)
	}
}

func TestScenarioDocCommentCref(t *testing.T) {
	src := "/// <summary>See <see cref=\"List{T}\"/>.</summary>\nclass C { }"
	out := roundTrip(t, src, quote.DefaultSettings())
	for _, want := range []string{"DocumentationCommentTrivia(", "XmlCrefAttribute(", "GenericName("} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in output:\n%s", want, out)
		}
	}
}

func TestExactOutputUsing(t *testing.T) {
	want := `CompilationUnit()
.WithUsings(
    SingletonList<UsingDirectiveSyntax>(
        UsingDirective(IdentifierName(Identifier("System")))
        .WithUsingKeyword(
            Token(
                default,
                SyntaxKind.UsingKeyword,
                TriviaList(Space)))))`
	if got := mustSerialize(t, "using System;", quote.DefaultSettings()); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func ident(name string) *syntax.Node {
	return syntax.Build(syntax.IdentifierName, syntax.TokenSlot(&syntax.Token{Kind: syntax.IdentifierToken, Text: name, ValueText: name}))
}

func number(text, value string) *syntax.Node {
	return syntax.Build(syntax.NumericLiteralExpression,
		syntax.TokenSlot(&syntax.Token{Kind: syntax.NumericLiteralToken, Text: text, ValueText: value}))
}

func TestExactOutputBinary(t *testing.T) {
	n := syntax.Build(syntax.AddExpression,
		syntax.NodeSlot(ident("a")),
		syntax.TokenSlot(syntax.NewToken(syntax.PlusToken)),
		syntax.NodeSlot(number("1", "1")))
	want := `BinaryExpression(
    SyntaxKind.AddExpression,
    IdentifierName(Identifier("a")),
    Token(SyntaxKind.PlusToken),
    LiteralExpression(
        SyntaxKind.NumericLiteralExpression,
        Literal(1)))`
	got, err := quote.SerializeNode(n, quote.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestExactOutputVerboseIdentifier(t *testing.T) {
	s := quote.DefaultSettings()
	s.Mode = quote.Verbose
	got, err := quote.SerializeNode(ident("x"), s)
	if err != nil {
		t.Fatal(err)
	}
	if want := `IdentifierName(identifier: Identifier(default, "x", default))`; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestOmissionOfDefaults(t *testing.T) {
	out := mustSerialize(t, "class C{}", quote.DefaultSettings())
	if strings.Contains(out, "WithEndOfFileToken") {
		t.Fatalf("default end-of-file token must be omitted:\n%s", out)
	}
	out = mustSerialize(t, "class C{}\n", quote.DefaultSettings())
	if !strings.Contains(out, "TriviaList(LineFeed)") {
		t.Fatalf("populated trivia must be written:\n%s", out)
	}
}

func chainOf(depth int) *syntax.Node {
	n := ident("a")
	for range depth {
		n = syntax.Build(syntax.SimpleMemberAccessExpression,
			syntax.NodeSlot(n),
			syntax.TokenSlot(syntax.NewToken(syntax.DotToken)),
			syntax.NodeSlot(ident("b")))
	}
	return n
}

func TestChainIsFlattened(t *testing.T) {
	s := quote.DefaultSettings()
	s.MaxDepth = 8
	out, err := quote.SerializeNode(chainOf(200), s)
	if err != nil {
		t.Fatalf("chain of 200 with MaxDepth 8: %v", err)
	}
	got, err := eval.Evaluate(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "a" + strings.Repeat(".b", 200); got.FullString() != want {
		t.Fatalf("chain text = %q", got.FullString())
	}
}

func TestDepthExceeded(t *testing.T) {
	n := ident("x")
	for range 20 {
		n = syntax.Build(syntax.ParenthesizedExpression,
			syntax.TokenSlot(syntax.NewToken(syntax.OpenParenToken)),
			syntax.NodeSlot(n),
			syntax.TokenSlot(syntax.NewToken(syntax.CloseParenToken)))
	}
	s := quote.DefaultSettings()
	s.MaxDepth = 10
	out, err := quote.SerializeNode(n, s)
	if !errors.Is(err, quote.ErrDepthExceeded) {
		t.Fatalf("err = %v, want depth exceeded", err)
	}
	if out != "" {
		t.Fatalf("partial output leaked: %q", out)
	}
	s.MaxDepth = 0 // default
	if _, err := quote.SerializeNode(n, s); err != nil {
		t.Fatalf("default depth: %v", err)
	}
}

func TestMalformedLiterals(t *testing.T) {
	tests := []struct {
		name string
		tok  *syntax.Token
	}{
		{"value mismatch", &syntax.Token{Kind: syntax.NumericLiteralToken, Text: "1", ValueText: "2"}},
		{"not a number", &syntax.Token{Kind: syntax.NumericLiteralToken, Text: "x", ValueText: "x"}},
		{"string kind mismatch", &syntax.Token{Kind: syntax.StringLiteralToken, Text: "1", ValueText: "1"}},
		{"invalid utf8", &syntax.Token{Kind: syntax.StringLiteralToken, Text: "\"\xff\"", ValueText: "\xff"}},
		{"two chars", &syntax.Token{Kind: syntax.CharacterLiteralToken, Text: "'ab'", ValueText: "ab"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := syntax.Build(syntax.NumericLiteralExpression, syntax.TokenSlot(tt.tok))
			if _, err := quote.SerializeNode(n, quote.DefaultSettings()); !errors.Is(err, quote.ErrMalformedLiteral) {
				t.Fatalf("err = %v, want malformed literal", err)
			}
		})
	}
}

func TestUnsupportedConstructs(t *testing.T) {
	badTrivia := &syntax.Token{
		Kind: syntax.IdentifierToken, Text: "x", ValueText: "x",
		Leading: []syntax.Trivia{{Kind: syntax.IfDirectiveTrivia}},
	}
	tests := []struct {
		name string
		node *syntax.Node
	}{
		{"nil tree", nil},
		{"wrong slot count", syntax.Build(syntax.IdentifierName)},
		{"token kind as node", syntax.Build(syntax.PlusToken)},
		{"structured trivia without structure", syntax.Build(syntax.IdentifierName, syntax.TokenSlot(badTrivia))},
		{"node kind as token", syntax.Build(syntax.IdentifierName, syntax.TokenSlot(&syntax.Token{Kind: syntax.Block}))},
		{"separator count", syntax.Build(syntax.ArgumentList,
			syntax.TokenSlot(syntax.NewToken(syntax.OpenParenToken)),
			syntax.SeparatedSlot(nil, []*syntax.Token{syntax.NewToken(syntax.CommaToken)}),
			syntax.TokenSlot(syntax.NewToken(syntax.CloseParenToken)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quote.SerializeNode(tt.node, quote.DefaultSettings())
			if !errors.Is(err, quote.ErrUnsupportedConstruct) {
				t.Fatalf("err = %v, want unsupported construct", err)
			}
			var qe *quote.Error
			if !errors.As(err, &qe) || !strings.HasPrefix(qe.Error(), "QUO4001") {
				t.Fatalf("error does not carry its code: %v", err)
			}
		})
	}
}

func TestSerializeRejectsSyntaxErrors(t *testing.T) {
	if _, err := quote.Serialize("class {", quote.DefaultSettings()); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestSerializeRejectsRunawayNesting(t *testing.T) {
	const n = 200000
	src := "class C { int M() => " + strings.Repeat("(", n) + "1" + strings.Repeat(")", n) + "; }"
	_, err := quote.Serialize(src, quote.DefaultSettings())
	if err == nil || !strings.Contains(err.Error(), diag.SynTooDeep.ID()) {
		t.Fatalf("err = %v, want %s", err, diag.SynTooDeep.ID())
	}
}

func TestDefinesSelectBranch(t *testing.T) {
	src := "#if DEBUG\nclass D { }\n#endif\n"
	out, err := quote.Serialize(src, quote.DefaultSettings(), quote.WithDefines("DEBUG"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "DisabledText") {
		t.Fatalf("DEBUG branch should be active:\n%s", out)
	}
	out = mustSerialize(t, src, quote.DefaultSettings())
	if !strings.Contains(out, "DisabledText") {
		t.Fatalf("DEBUG branch should be disabled:\n%s", out)
	}
}

func TestSettings(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want quote.TriviaMode
	}{
		{"", quote.Minimal},
		{"minimal", quote.Minimal},
		{"default", quote.DefaultFormatting},
		{"defaultFormatting", quote.DefaultFormatting},
		{"verbose", quote.Verbose},
	} {
		got, err := quote.ParseTriviaMode(tt.in)
		if err != nil || got != tt.want {
			t.Fatalf("ParseTriviaMode(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := quote.ParseTriviaMode("loud"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	a, b := quote.DefaultSettings(), quote.DefaultSettings()
	b.Mode = quote.Verbose
	if a.Fingerprint() == b.Fingerprint() {
		t.Fatalf("fingerprint ignores the mode")
	}
}
