package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) HasCode(code diag.Code) bool {
	for _, d := range r.diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, defines ...string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cs", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter, Defines: defines})
	return lx, reporter
}

func tokensOf(t *testing.T, input string, defines ...string) []*syntax.Token {
	t.Helper()
	lx, rep := makeTestLexer(input, defines...)
	items := lx.All()
	if rep.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %v", input, rep.ErrorMessages())
	}
	toks := make([]*syntax.Token, len(items))
	for i, it := range items {
		toks[i] = it.Tok
	}
	return toks
}

func kindsOf(toks []*syntax.Token) []syntax.Kind {
	out := make([]syntax.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func fullText(toks []*syntax.Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.FullText())
	}
	return sb.String()
}

func expectKinds(t *testing.T, got []syntax.Kind, want ...syntax.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kind[%d] = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSimpleTokensAndTrailingTrivia(t *testing.T) {
	toks := tokensOf(t, "class C { }")
	expectKinds(t, kindsOf(toks),
		syntax.ClassKeyword, syntax.IdentifierToken, syntax.OpenBraceToken,
		syntax.CloseBraceToken, syntax.EndOfFileToken)
	if len(toks[0].Trailing) != 1 || toks[0].Trailing[0].Text != " " {
		t.Fatalf("class keyword trailing = %+v", toks[0].Trailing)
	}
	if len(toks[3].Trailing) != 0 {
		t.Fatalf("close brace must have no trailing trivia: %+v", toks[3].Trailing)
	}
}

func TestTrailingTriviaStopsAfterFirstNewline(t *testing.T) {
	toks := tokensOf(t, "a; // c\n\n  b")
	semi := toks[1]
	kinds := []syntax.Kind{}
	for _, tr := range semi.Trailing {
		kinds = append(kinds, tr.Kind)
	}
	expectKinds(t, kinds, syntax.WhitespaceTrivia, syntax.SingleLineCommentTrivia, syntax.EndOfLineTrivia)
	b := toks[2]
	kinds = kinds[:0]
	for _, tr := range b.Leading {
		kinds = append(kinds, tr.Kind)
	}
	expectKinds(t, kinds, syntax.EndOfLineTrivia, syntax.WhitespaceTrivia)
}

func TestRoundTripFullText(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"using System;\r\nnamespace A.B { class C<T> : IFoo { } }\r\n",
		"/* block\n comment */ int x = 0x1F + 1_000; // tail\n",
		"/** not doc */ class C {}",
		"var s = @\"multi\nline \"\"quoted\"\"\";",
		"char c = '\\n'; string s = \"a\\tb\\u0041\";",
		"var s = $\"a{b,3:X2}c{{ {(x ? 1 : 2)} }}\";",
		"#region Fields\nint x;\n#endregion Fields\n",
		"#if A && !(B || C)\nint a;\n#elif B\nint b;\n#else\nint c;\n#endif\n",
		"/// <summary>Does <see cref=\"List{T}\"/> work.</summary>\n/// <param name=\"x\">X</param>\nvoid M(int x) {}",
		"    /// <summary>\n    /// Multi\n    /// </summary>\n    int x;",
		"/// broken <b>\nint x;",
		"#pragma warning disable CS0168, 219\n#line 200 \"f.cs\"\n#line default\nclass C {}",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in)
		items := lx.All()
		toks := make([]*syntax.Token, len(items))
		for i, it := range items {
			toks[i] = it.Tok
		}
		if got := fullText(toks); got != in {
			t.Errorf("round trip mismatch\n in: %q\nout: %q", in, got)
		}
	}
}

func TestNumericValueText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"42", "42"},
		{"0x1F", "31"},
		{"0b1010", "10"},
		{"1_000", "1000"},
		{"10UL", "10"},
		{"1.5", "1.5"},
		{"1.50", "1.5"},
		{".5", "0.5"},
		{"1e3", "1000"},
		{"2.5f", "2.5"},
		{"100.0", "100"},
		{"1e-7", "1e-07"},
		{"18446744073709551616", "18446744073709551616"},
	}
	for _, c := range cases {
		toks := tokensOf(t, c.in)
		if toks[0].Kind != syntax.NumericLiteralToken {
			t.Fatalf("%q: kind %v", c.in, toks[0].Kind)
		}
		if toks[0].Text != c.in || toks[0].ValueText != c.want {
			t.Errorf("%q: text %q value %q, want value %q", c.in, toks[0].Text, toks[0].ValueText, c.want)
		}
	}
}

func TestBadNumber(t *testing.T) {
	lx, rep := makeTestLexer("0x")
	lx.All()
	if !rep.HasCode(diag.LexBadNumber) {
		t.Fatalf("expected LexBadNumber, got %v", rep.ErrorMessages())
	}
}

func TestStringAndCharValues(t *testing.T) {
	cases := []struct {
		in   string
		kind syntax.Kind
		want string
	}{
		{`"a\tb"`, syntax.StringLiteralToken, "a\tb"},
		{`"\u0041\x42"`, syntax.StringLiteralToken, "AB"},
		{`@"c:\x"""`, syntax.StringLiteralToken, `c:\x"`},
		{`'\n'`, syntax.CharacterLiteralToken, "\n"},
		{`'\''`, syntax.CharacterLiteralToken, "'"},
		{`'я'`, syntax.CharacterLiteralToken, "я"},
	}
	for _, c := range cases {
		toks := tokensOf(t, c.in)
		if toks[0].Kind != c.kind || toks[0].Text != c.in || toks[0].ValueText != c.want {
			t.Errorf("%s: got kind %v text %q value %q", c.in, toks[0].Kind, toks[0].Text, toks[0].ValueText)
		}
	}
}

func TestStringErrors(t *testing.T) {
	cases := []struct {
		in   string
		code diag.Code
	}{
		{`"abc`, diag.LexUnterminatedString},
		{"\"ab\ncd\"", diag.LexNewlineInString},
		{`'ab'`, diag.LexBadEscape},
		{`"\q"`, diag.LexBadEscape},
		{`'a`, diag.LexUnterminatedChar},
		{"$", diag.LexUnknownChar},
		{"/* open", diag.LexUnterminatedBlockComment},
	}
	for _, c := range cases {
		lx, rep := makeTestLexer(c.in)
		items := lx.All()
		if !rep.HasCode(c.code) {
			t.Errorf("%q: expected %s, got %v", c.in, c.code.ID(), rep.ErrorMessages())
		}
		toks := make([]*syntax.Token, len(items))
		for i, it := range items {
			toks[i] = it.Tok
		}
		if got := fullText(toks); got != c.in {
			t.Errorf("%q: text lost on error: %q", c.in, got)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	toks := tokensOf(t, "@class get café")
	if toks[0].Kind != syntax.IdentifierToken || toks[0].Text != "@class" || toks[0].ValueText != "class" {
		t.Fatalf("verbatim identifier: %+v", toks[0])
	}
	if toks[1].Kind != syntax.IdentifierToken {
		t.Fatalf("contextual keyword must stay an identifier, got %v", toks[1].Kind)
	}
	// "cafe" + U+0301 нормализуется в NFC
	toks = tokensOf(t, "cafe\u0301")
	if toks[0].Text != "cafe\u0301" || toks[0].ValueText != "caf\u00e9" {
		t.Fatalf("NFC value: text %q value %q", toks[0].Text, toks[0].ValueText)
	}
}

func TestGenericCloseIsNotShift(t *testing.T) {
	toks := tokensOf(t, "List<List<int>>")
	expectKinds(t, kindsOf(toks),
		syntax.IdentifierToken, syntax.LessThanToken, syntax.IdentifierToken, syntax.LessThanToken,
		syntax.IntKeyword, syntax.GreaterThanToken, syntax.GreaterThanToken, syntax.EndOfFileToken)
}

func TestInterpolatedString(t *testing.T) {
	toks := tokensOf(t, `$"a{b:X2}c{{" ;`)
	expectKinds(t, kindsOf(toks),
		syntax.InterpolatedStringStartToken, syntax.InterpolatedStringTextToken,
		syntax.OpenBraceToken, syntax.IdentifierToken, syntax.ColonToken,
		syntax.InterpolatedStringTextToken, syntax.CloseBraceToken,
		syntax.InterpolatedStringTextToken, syntax.InterpolatedStringEndToken,
		syntax.SemicolonToken, syntax.EndOfFileToken)
	if toks[5].Text != "X2" {
		t.Fatalf("format text = %q", toks[5].Text)
	}
	if toks[7].Text != "c{{" || toks[7].ValueText != "c{" {
		t.Fatalf("escaped brace: text %q value %q", toks[7].Text, toks[7].ValueText)
	}
	if len(toks[8].Trailing) != 1 {
		t.Fatalf("string end token should carry trailing space, got %+v", toks[8].Trailing)
	}
	for _, i := range []int{0, 1, 5, 6, 7} {
		if toks[i].HasTrivia() {
			t.Fatalf("token %d (%v) inside string must not carry trivia", i, toks[i].Kind)
		}
	}
}

func TestInterpolationNestedBracesAndParens(t *testing.T) {
	toks := tokensOf(t, `$"{f(a ? b : c)}{ $"{x}" }"`)
	var colons int
	for _, tk := range toks {
		if tk.Kind == syntax.ColonToken {
			colons++
		}
		if tk.Kind == syntax.InterpolatedStringTextToken {
			t.Fatalf("':' inside parens must not start a format clause: %q", tk.Text)
		}
	}
	if colons != 1 {
		t.Fatalf("colons = %d", colons)
	}
	if toks[len(toks)-2].Kind != syntax.InterpolatedStringEndToken {
		t.Fatalf("last token before EOF = %v", toks[len(toks)-2].Kind)
	}
}

func TestVerbatimInterpolatedString(t *testing.T) {
	tests := []struct {
		in, start  string
		text, want string
	}{
		{`$@"x{y}""z"`, `$@"`, `""z`, `"z`},
		{`@$"a\b{y}c"`, `@$"`, `c`, `c`},
		{"$@\"l1\n{y}l2\"", `$@"`, "l2", "l2"},
		{`$@"p{y}{{\}}"`, `$@"`, `{{\}}`, `{\}`},
	}
	for _, tt := range tests {
		toks := tokensOf(t, tt.in)
		expectKinds(t, kindsOf(toks),
			syntax.InterpolatedVerbatimStringStartToken, syntax.InterpolatedStringTextToken,
			syntax.OpenBraceToken, syntax.IdentifierToken, syntax.CloseBraceToken,
			syntax.InterpolatedStringTextToken, syntax.InterpolatedStringEndToken,
			syntax.EndOfFileToken)
		if toks[0].Text != tt.start {
			t.Errorf("%q: start text %q", tt.in, toks[0].Text)
		}
		if toks[5].Text != tt.text || toks[5].ValueText != tt.want {
			t.Errorf("%q: text %q value %q", tt.in, toks[5].Text, toks[5].ValueText)
		}
		if got := fullText(toks); got != tt.in {
			t.Errorf("round trip %q -> %q", tt.in, got)
		}
	}
}

func TestVerbatimInterpolatedStringKeepsBackslash(t *testing.T) {
	toks := tokensOf(t, `$@"a\b{c}"`)
	if toks[1].Text != `a\b` || toks[1].ValueText != `a\b` {
		t.Fatalf("text %q value %q", toks[1].Text, toks[1].ValueText)
	}
}

func structureKinds(trivia []syntax.Trivia) []syntax.Kind {
	out := make([]syntax.Kind, len(trivia))
	for i, tr := range trivia {
		out[i] = tr.Kind
	}
	return out
}

func TestConditionalDirectivesActiveBranch(t *testing.T) {
	src := "#if DEBUG\nint x;\n#else\nint y;\n#endif\n"
	toks := tokensOf(t, src, "DEBUG")
	expectKinds(t, structureKinds(toks[0].Leading), syntax.IfDirectiveTrivia)
	ifDir := toks[0].Leading[0].Structure
	if !ifDir.Get("isActive").Flag || !ifDir.Get("branchTaken").Flag || !ifDir.Get("conditionValue").Flag {
		t.Fatalf("#if flags wrong: %+v", ifDir.Slots[4:])
	}
	eof := toks[len(toks)-1]
	expectKinds(t, structureKinds(eof.Leading),
		syntax.ElseDirectiveTrivia, syntax.DisabledTextTrivia, syntax.EndIfDirectiveTrivia)
	if eof.Leading[1].Text != "int y;\n" {
		t.Fatalf("disabled text = %q", eof.Leading[1].Text)
	}
	elseDir := eof.Leading[0].Structure
	if !elseDir.Get("isActive").Flag || elseDir.Get("branchTaken").Flag {
		t.Fatalf("#else flags wrong")
	}
	if got := fullText(toks); got != src {
		t.Fatalf("round trip: %q", got)
	}
}

func TestConditionalDirectivesInactiveBranch(t *testing.T) {
	toks := tokensOf(t, "#if DEBUG\nint x;\n#else\nint y;\n#endif\n")
	expectKinds(t, structureKinds(toks[0].Leading),
		syntax.IfDirectiveTrivia, syntax.DisabledTextTrivia, syntax.ElseDirectiveTrivia)
	if toks[0].Leading[1].Text != "int x;\n" {
		t.Fatalf("disabled text = %q", toks[0].Leading[1].Text)
	}
	if toks[1].Kind != syntax.IdentifierToken || toks[1].Text != "y" {
		t.Fatalf("active branch should produce y, got %q", toks[1].Text)
	}
}

func TestNestedInactiveDirectives(t *testing.T) {
	src := "#if false\n#if true\nA\n#region skipped\n#endif\n#elif X\nB\n#endif\nC"
	toks := tokensOf(t, src, "X")
	if toks[0].Text != "B" {
		t.Fatalf("first token = %q", toks[0].Text)
	}
	lead := toks[0].Leading
	expectKinds(t, structureKinds(lead),
		syntax.IfDirectiveTrivia, syntax.IfDirectiveTrivia, syntax.DisabledTextTrivia,
		syntax.EndIfDirectiveTrivia, syntax.ElifDirectiveTrivia)
	inner := lead[1].Structure
	if inner.Get("isActive").Flag || inner.Get("branchTaken").Flag || !inner.Get("conditionValue").Flag {
		t.Fatalf("nested #if inside inactive region must be inactive")
	}
	if lead[2].Text != "A\n#region skipped\n" {
		t.Fatalf("disabled text = %q", lead[2].Text)
	}
	elif := lead[4].Structure
	if !elif.Get("isActive").Flag || !elif.Get("branchTaken").Flag {
		t.Fatalf("#elif X should be taken")
	}
	if got := fullText(toks); got != src {
		t.Fatalf("round trip: %q", got)
	}
}

func TestDefineAffectsLaterConditions(t *testing.T) {
	toks := tokensOf(t, "#define FOO\n#undef BAR\n#if FOO && !BAR\nyes\n#endif\n")
	if toks[0].Text != "yes" {
		t.Fatalf("first token = %q", toks[0].Text)
	}
}

func TestRegionMessage(t *testing.T) {
	toks := tokensOf(t, "#region Public API\nint x;")
	region := toks[0].Leading[0].Structure
	if region.Kind != syntax.RegionDirectiveTrivia {
		t.Fatalf("kind = %v", region.Kind)
	}
	eod := region.ChildToken("endOfDirectiveToken")
	if len(eod.Leading) != 1 || eod.Leading[0].Kind != syntax.PreprocessingMessageTrivia || eod.Leading[0].Text != "Public API" {
		t.Fatalf("message trivia = %+v", eod.Leading)
	}
	if len(eod.Trailing) != 1 || eod.Trailing[0].Kind != syntax.EndOfLineTrivia {
		t.Fatalf("directive must own its line break: %+v", eod.Trailing)
	}
}

func TestPragmaAndLineDirectives(t *testing.T) {
	toks := tokensOf(t, "#pragma warning disable CS0168, 219\n#line hidden\nx")
	lead := toks[0].Leading
	expectKinds(t, structureKinds(lead), syntax.PragmaWarningDirectiveTrivia, syntax.LineDirectiveTrivia)
	codes := lead[0].Structure.Get("errorCodes")
	if len(codes.Nodes) != 2 || len(codes.Separators) != 1 {
		t.Fatalf("error codes = %d nodes, %d separators", len(codes.Nodes), len(codes.Separators))
	}
	if codes.Nodes[0].Kind != syntax.IdentifierName || codes.Nodes[1].Kind != syntax.NumericLiteralExpression {
		t.Fatalf("error code kinds: %v %v", codes.Nodes[0].Kind, codes.Nodes[1].Kind)
	}
	if lead[1].Structure.ChildToken("line").Kind != syntax.HiddenKeyword {
		t.Fatalf("#line hidden keyword")
	}
}

func TestNullableDirective(t *testing.T) {
	tests := []struct {
		in      string
		setting syntax.Kind
		target  syntax.Kind
	}{
		{"#nullable enable\nx", syntax.EnableKeyword, syntax.None},
		{"#nullable disable warnings\nx", syntax.DisableKeyword, syntax.WarningsKeyword},
		{"#nullable restore annotations // c\nx", syntax.RestoreKeyword, syntax.AnnotationsKeyword},
	}
	for _, tt := range tests {
		toks := tokensOf(t, tt.in)
		lead := toks[0].Leading
		expectKinds(t, structureKinds(lead), syntax.NullableDirectiveTrivia)
		n := lead[0].Structure
		if got := n.ChildToken("settingToken").Kind; got != tt.setting {
			t.Errorf("%q: setting %v, want %v", tt.in, got, tt.setting)
		}
		target := n.ChildToken("targetToken")
		switch {
		case tt.target == syntax.None && target != nil:
			t.Errorf("%q: unexpected target %v", tt.in, target.Kind)
		case tt.target != syntax.None && (target == nil || target.Kind != tt.target):
			t.Errorf("%q: target %+v, want %v", tt.in, target, tt.target)
		}
		if got := fullText(toks); got != tt.in {
			t.Errorf("round trip %q -> %q", tt.in, got)
		}
	}
}

func TestDirectiveErrors(t *testing.T) {
	cases := []struct {
		in   string
		code diag.Code
	}{
		{"#if X\nint x;", diag.LexMissingEndIf},
		{"#endif\n", diag.LexUnbalancedDirective},
		{"#bogus\n", diag.LexBadDirective},
		{"#nullable\n", diag.LexBadDirective},
		{"#nullable enable everything\n", diag.LexBadDirective},
		{"#if\n#endif\n", diag.LexBadDirective},
		{"#define\n", diag.LexBadDirective},
	}
	for _, c := range cases {
		lx, rep := makeTestLexer(c.in)
		items := lx.All()
		if !rep.HasCode(c.code) {
			t.Errorf("%q: expected %s, got %v", c.in, c.code.ID(), rep.ErrorMessages())
		}
		toks := make([]*syntax.Token, len(items))
		for i, it := range items {
			toks[i] = it.Tok
		}
		if got := fullText(toks); got != c.in {
			t.Errorf("%q: round trip %q", c.in, got)
		}
	}
}

func TestDirectiveNestingLimit(t *testing.T) {
	tests := []struct {
		name string
		cond string
	}{
		{"parentheses", strings.Repeat("(", 5000) + "A" + strings.Repeat(")", 5000)},
		{"negations", strings.Repeat("!", 5000) + "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := "#if " + tt.cond + "\nint x;\n#endif\n"
			lx, rep := makeTestLexer(in)
			items := lx.All()
			deep := 0
			for _, d := range rep.diagnostics {
				if strings.Contains(d.Message, "nested too deeply") {
					deep++
				}
			}
			if deep != 1 {
				t.Fatalf("nesting reported %d times: %v", deep, rep.ErrorMessages())
			}
			if len(rep.diagnostics) > 2 {
				t.Fatalf("too many diagnostics after overflow: %v", rep.ErrorMessages())
			}
			toks := make([]*syntax.Token, len(items))
			for i, it := range items {
				toks[i] = it.Tok
			}
			if got := fullText(toks); got != in {
				t.Fatalf("round trip lost text (len %d, want %d)", len(got), len(in))
			}
		})
	}
}

func TestHashAfterTokenIsNotDirective(t *testing.T) {
	lx, rep := makeTestLexer("x #if")
	items := lx.All()
	if !rep.HasCode(diag.LexUnknownChar) {
		t.Fatalf("expected '#' mid-line to be an unknown character")
	}
	if items[1].Tok.Kind != syntax.BadToken {
		t.Fatalf("kind = %v", items[1].Tok.Kind)
	}
}

func TestDocumentationComment(t *testing.T) {
	toks := tokensOf(t, "/// <summary>Hi <see cref=\"List{T}\"/></summary>\nclass C {}")
	lead := toks[0].Leading
	expectKinds(t, structureKinds(lead), syntax.SingleLineDocumentationCommentTrivia)
	content := lead[0].Structure.Get("content").Nodes
	if len(content) != 3 || content[0].Kind != syntax.XmlText ||
		content[1].Kind != syntax.XmlElement || content[2].Kind != syntax.XmlText {
		t.Fatalf("content kinds: %v", content)
	}
	first := content[0].Get("textTokens").Tokens[0]
	if len(first.Leading) != 1 || first.Leading[0].Kind != syntax.DocumentationCommentExteriorTrivia {
		t.Fatalf("exterior must lead the first token: %+v", first.Leading)
	}
	nl := content[2].Get("textTokens").Tokens[0]
	if nl.Kind != syntax.XmlTextLiteralNewLineToken || nl.Text != "\n" {
		t.Fatalf("final newline token = %+v", nl)
	}

	el := content[1]
	inner := el.Get("content").Nodes
	if len(inner) != 2 || inner[1].Kind != syntax.XmlEmptyElement {
		t.Fatalf("summary content: %v", inner)
	}
	attr := inner[1].Get("attributes").Nodes[0]
	if attr.Kind != syntax.XmlCrefAttribute {
		t.Fatalf("attribute kind = %v", attr.Kind)
	}
	cref := attr.ChildNode("cref")
	generic := cref.ChildNode("name")
	if cref.Kind != syntax.NameMemberCref || generic.Kind != syntax.GenericName {
		t.Fatalf("cref = %v / %v", cref.Kind, generic.Kind)
	}
	lt := generic.ChildNode("typeArgumentList").ChildToken("lessThanToken")
	if lt.Kind != syntax.LessThanToken || lt.Text != "{" {
		t.Fatalf("cref brace token = %+v", lt)
	}
}

func TestDocumentationCommentMultiLineExterior(t *testing.T) {
	src := "    /// <summary>\n    /// Text\n    /// </summary>\n    int x;"
	toks := tokensOf(t, src)
	lead := toks[0].Leading
	expectKinds(t, structureKinds(lead),
		syntax.WhitespaceTrivia, syntax.SingleLineDocumentationCommentTrivia, syntax.WhitespaceTrivia)
	var exteriors []string
	lead[1].Structure.EachToken(func(tk *syntax.Token) {
		for _, tr := range tk.Leading {
			if tr.Kind == syntax.DocumentationCommentExteriorTrivia {
				exteriors = append(exteriors, tr.Text)
			}
		}
	})
	want := []string{"///", "    ///", "    ///"}
	if strings.Join(exteriors, "|") != strings.Join(want, "|") {
		t.Fatalf("exteriors = %q", exteriors)
	}
	if got := fullText(toks); got != src {
		t.Fatalf("round trip: %q", got)
	}
}

func TestDocumentationCommentFallsBackToText(t *testing.T) {
	toks := tokensOf(t, "/// <summary>\n/// open\nint x;")
	content := toks[0].Leading[0].Structure.Get("content").Nodes
	if len(content) != 1 || content[0].Kind != syntax.XmlText {
		t.Fatalf("unclosed tag should fall back to flat text, got %v", content)
	}
}

func TestNextAfterEOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.All()
	for i := 0; i < 3; i++ {
		if it := lx.Next(); it.Tok.Kind != syntax.EndOfFileToken {
			t.Fatalf("Next after EOF = %v", it.Tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p.Tok != n.Tok {
		t.Fatal("Peek and Next must return the same token")
	}
	if lx.Next().Tok.Text != "b" {
		t.Fatal("second token")
	}
}

func TestItemSpans(t *testing.T) {
	lx, _ := makeTestLexer("  foo  bar")
	items := lx.All()
	if items[0].Span.Start != 2 || items[0].Span.End != 5 {
		t.Fatalf("foo span = %v", items[0].Span)
	}
	if items[1].Span.Start != 7 || items[1].Span.End != 10 {
		t.Fatalf("bar span = %v", items[1].Span)
	}
}
