package eval

import (
	"errors"
	"strings"
	"testing"

	"quoter/internal/syntax"
)

func TestEvaluateSimpleNodes(t *testing.T) {
	tests := []struct {
		src  string
		text string
		kind syntax.Kind
	}{
		{`IdentifierName(Identifier("x"))`, "x", syntax.IdentifierName},
		{`IdentifierName(identifier: Identifier(default, "x", default))`, "x", syntax.IdentifierName},
		{`IdentifierName(Identifier(TriviaList(Space), SyntaxKind.IdentifierToken, "@class", "class", TriviaList(LineFeed)))`,
			" @class\n", syntax.IdentifierName},
		{"BinaryExpression(\n    SyntaxKind.AddExpression,\n    IdentifierName(Identifier(\"a\")),\n    Token(SyntaxKind.PlusToken),\n    LiteralExpression(SyntaxKind.NumericLiteralExpression, Literal(1)))",
			"a+1", syntax.AddExpression},
		{`LiteralExpression(SyntaxKind.StringLiteralExpression, Literal("a\tb"))`, "\"a\\tb\"", syntax.StringLiteralExpression},
		{`LiteralExpression(SyntaxKind.StringLiteralExpression, Literal(default, @"@""x""", "x", default))`, "@\"x\"", syntax.StringLiteralExpression},
		{`LiteralExpression(SyntaxKind.CharacterLiteralExpression, Literal('\n'))`, "'\\n'", syntax.CharacterLiteralExpression},
		{`LiteralExpression(SyntaxKind.NumericLiteralExpression, Literal(default, "0x1F", 31, default))`, "0x1F", syntax.NumericLiteralExpression},
		{`LiteralExpression(SyntaxKind.NumericLiteralExpression, Literal(1.5e3))`, "1.5e3", syntax.NumericLiteralExpression},
		{"CompilationUnit()", "", syntax.CompilationUnit},
	}
	for _, tt := range tests {
		n, err := Evaluate(tt.src)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", tt.src, err)
		}
		if n.Kind != tt.kind {
			t.Fatalf("kind = %s, want %s", n.Kind, tt.kind)
		}
		if got := n.FullString(); got != tt.text {
			t.Fatalf("text of %q = %q, want %q", tt.src, got, tt.text)
		}
	}
}

func TestFactoryDefaults(t *testing.T) {
	n, err := Evaluate(`UsingDirective(IdentifierName(Identifier("System")))`)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.FullString(); got != "usingSystem;" {
		t.Fatalf("text = %q", got)
	}
	n, err = Evaluate("UsingDirective(IdentifierName(Identifier(\"S\")))\n.WithSemicolonToken(default)")
	if err != nil {
		t.Fatal(err)
	}
	if n.ChildToken("semicolonToken") != nil {
		t.Fatalf("WithSemicolonToken(default) should clear the slot")
	}
}

func TestWithChainsAndLists(t *testing.T) {
	src := `CompilationUnit()
.WithUsings(
    List<UsingDirectiveSyntax>(
        UsingDirective(IdentifierName(Identifier("A")))
        .WithUsingKeyword(Token(default, SyntaxKind.UsingKeyword, TriviaList(Space))),
        UsingDirective(QualifiedName(IdentifierName(Identifier("B")), Token(SyntaxKind.DotToken), IdentifierName(Identifier("C"))))
        .WithUsingKeyword(Token(TriviaList(LineFeed), SyntaxKind.UsingKeyword, TriviaList(Whitespace("  "))))))`
	n, err := Evaluate(src)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := n.FullString(), "using A;\nusing  B.C;"; got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
}

func TestSeparatedLists(t *testing.T) {
	src := `ArgumentList(
    Token(SyntaxKind.OpenParenToken),
    SeparatedList<ArgumentSyntax>(
        NodeOrTokenList(
            Argument(default, default, IdentifierName(Identifier("a"))),
            Token(default, SyntaxKind.CommaToken, TriviaList(Space)),
            Argument(default, default, IdentifierName(Identifier("b"))))),
    Token(SyntaxKind.CloseParenToken))`
	n, err := Evaluate(src)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.FullString(); got != "(a, b)" {
		t.Fatalf("text = %q", got)
	}
	args := n.Get("arguments")
	if len(args.Nodes) != 2 || len(args.Separators) != 1 {
		t.Fatalf("nodes=%d separators=%d", len(args.Nodes), len(args.Separators))
	}
}

func TestStructuredTrivia(t *testing.T) {
	src := `Token(
    TriviaList(
        Trivia(
            RegionDirectiveTrivia(
                Token(SyntaxKind.HashToken),
                Token(default, SyntaxKind.RegionKeyword, TriviaList(Space)),
                Token(TriviaList(PreprocessingMessage("Api")), SyntaxKind.EndOfDirectiveToken, TriviaList(LineFeed)),
                true))),
    SyntaxKind.SemicolonToken,
    default)`
	x, err := parse(src)
	if err != nil {
		t.Fatal(err)
	}
	v, err := eval(x)
	if err != nil {
		t.Fatal(err)
	}
	if got := v.tok.FullText(); got != "#region Api\n;" {
		t.Fatalf("text = %q", got)
	}
	tr := v.tok.Leading[0]
	if tr.Kind != syntax.RegionDirectiveTrivia || tr.Structure == nil || !tr.Structure.Get("isActive").Flag {
		t.Fatalf("structured trivia not rebuilt: %+v", tr)
	}
}

func TestCommentKindFromText(t *testing.T) {
	for text, want := range map[string]syntax.Kind{
		"// a":    syntax.SingleLineCommentTrivia,
		"/* b */": syntax.MultiLineCommentTrivia,
	} {
		x, err := parse(`Comment("` + text + `")`)
		if err != nil {
			t.Fatal(err)
		}
		v, err := eval(x)
		if err != nil {
			t.Fatal(err)
		}
		if v.trivia[0].Kind != want {
			t.Fatalf("Comment(%q) kind = %s", text, v.trivia[0].Kind)
		}
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		src  string
		want error
		off  int
	}{
		{`IdentifierName(`, ErrSyntax, 15},
		{`IdentifierName(Identifier("x")) extra`, ErrSyntax, 32},
		{`"unterminated`, ErrSyntax, 0},
		{`Nope(1)`, ErrUnknownFactory, 0},
		{`Bogus`, ErrUnknownFactory, 0},
		{`Token(SyntaxKind.NoSuchKind)`, ErrUnknownKind, 6},
		{`BinaryExpression(SyntaxKind.SimpleMemberAccessExpression, default, Token(SyntaxKind.PlusToken), default)`, ErrUnknownKind, 17},
		{`IdentifierName()`, ErrArgumentCount, 0},
		{`IdentifierName(Identifier("a"), Identifier("b"))`, ErrArgumentCount, 0},
		{`IdentifierName(IdentifierName(Identifier("a")))`, ErrArgumentType, 15},
		{`IdentifierName(Identifier("a")).WithNothing(default)`, ErrUnknownWith, 32},
		{`LiteralExpression(token: Literal(1))`, ErrRequiredMissing, 0},
		{`Literal(true)`, ErrArgumentType, 8},
		{`Identifier("x")`, ErrArgumentType, 0},
		{`List<ArgumentSyntax>(Token(SyntaxKind.CommaToken))`, ErrArgumentType, 21},
	}
	for _, tt := range tests {
		_, err := Evaluate(tt.src)
		if !errors.Is(err, tt.want) {
			t.Fatalf("Evaluate(%q) = %v, want %v", tt.src, err, tt.want)
		}
		var ee *Error
		if !errors.As(err, &ee) {
			t.Fatalf("not an *Error: %v", err)
		}
		if ee.Offset != tt.off {
			t.Fatalf("Evaluate(%q) offset = %d, want %d (%v)", tt.src, ee.Offset, tt.off, err)
		}
	}
}

func TestNestingLimit(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  error
	}{
		{"within limit", 2000, nil},
		{"runaway", 300000, ErrTooDeep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := strings.Repeat("ParenthesizedExpression(", tt.depth) +
				`IdentifierName("x")` + strings.Repeat(")", tt.depth)
			_, err := Evaluate(src)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestListElementTypeChecked(t *testing.T) {
	src := `CompilationUnit().WithUsings(List<MemberDeclarationSyntax>())`
	if _, err := Evaluate(src); !errors.Is(err, ErrArgumentType) {
		t.Fatalf("err = %v, want argument type", err)
	}
}
