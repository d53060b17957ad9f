package format

import (
	"testing"

	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/syntax"
)

func normalizeText(t *testing.T, src string, opt Options) string {
	t.Helper()
	root, bag := parser.ParseText("fmt.cs", src, lexer.Options{})
	if bag.HasErrors() {
		t.Fatalf("parse %q: %v", src, bag.Err())
	}
	return Normalize(root, opt).FullString()
}

func TestNormalizeLayout(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"", ""},
		{"using System;", "using System;\n"},
		{"namespace A.B{class C{}}", "namespace A.B\n{\n    class C\n    {\n    }\n}\n"},
		{"class C{int x=1,y;}", "class C\n{\n    int x = 1, y;\n}\n"},
		{"class C{void M(){a.b(c,d);}}", "class C\n{\n    void M()\n    {\n        a.b(c, d);\n    }\n}\n"},
		{"// note\nclass   C  /* x */ { }", "// note\nclass C /* x */\n{\n}\n"},
		{"[Obsolete]class C{}", "[Obsolete]\nclass C\n{\n}\n"},
		{"class C{int M(int a)=>a+1;}", "class C\n{\n    int M(int a) => a + 1;\n}\n"},
		{"class C{string s=$\"a {b}\";}", "class C\n{\n    string s = $\"a {b}\";\n}\n"},
		{"class C{string s=@$\"a{ b }\"\"\";}", "class C\n{\n    string s = @$\"a{b}\"\"\";\n}\n"},
	}
	for _, tt := range tests {
		if got := normalizeText(t, tt.src, Options{}); got != tt.want {
			t.Fatalf("Normalize(%q):\ngot  %q\nwant %q", tt.src, got, tt.want)
		}
	}
}

func TestNormalizeTabs(t *testing.T) {
	got := normalizeText(t, "class C{int x;}", Options{UseTabs: true})
	if want := "class C\n{\n\tint x;\n}\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	src := "class C { int x; } // tail\n"
	root, _ := parser.ParseText("fmt.cs", src, lexer.Options{})
	before := root.Clone()
	_ = Normalize(root, Options{})
	if !syntax.Equal(before, root) {
		t.Fatalf("input tree was modified")
	}
}

func TestNormalizeIdempotentAndReparses(t *testing.T) {
	inputs := []string{
		"namespace N { public sealed class C<T> : Base, IFoo<T> { } }",
		"class C { int P { get; set; } = 42; static T Max<T>(T a, T b) => a > b ? a : b; }",
		"class C { void M() { if (a) b(); else { c(); } while (i < 10) i += 1; return; } }",
		"#if DEBUG\nclass D { }\n#else\nclass R { }\n#endif\n",
		"class C { int[,] g; int?[] m; void M(ref int a, params int[] r) { x = -a * ~b; } }",
		"/// <summary>S</summary>\n// x\nclass C { /* a */ int x; // b\n}\n// end",
	}
	for _, src := range inputs {
		once := normalizeText(t, src, Options{})
		if twice := normalizeText(t, once, Options{}); twice != once {
			t.Fatalf("not idempotent for %q:\n%q\n%q", src, once, twice)
		}
	}
}

func TestNormalizeKeepsComments(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{
			"line and block comments",
			"// keep me\nclass C { int x; /* and me */ }\n",
			"// keep me\nclass C\n{\n    int x; /* and me */\n}\n",
		},
		{
			"trailing line comment forces a break",
			"class C { int x = a // why\n + b; }",
			"class C\n{\n    int x = a // why\n    + b;\n}\n",
		},
		{
			"leading comment gets its own line",
			"class C {\n  /* first */ int x;\n    // second\n  int y; }",
			"class C\n{\n    /* first */\n    int x;\n    // second\n    int y;\n}\n",
		},
		{
			"inactive branch stays verbatim",
			"class C { }\n#if false\nclass   Dead { }\n#endif\n",
			"class C\n{\n}\n#if false\nclass   Dead { }\n#endif\n",
		},
		{
			"directives at column zero",
			"class C {\n    #region R\n    int x;\n    #endregion\n}",
			"class C\n{\n#region R\n    int x;\n#endregion\n}\n",
		},
		{
			"doc comment indented with its member",
			"class C {\n/// <summary>x</summary>\nint x; }",
			"class C\n{\n    /// <summary>x</summary>\n    int x;\n}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeText(t, tt.src, Options{})
			if got != tt.want {
				t.Fatalf("Normalize(%q):\ngot  %q\nwant %q", tt.src, got, tt.want)
			}
			if again := normalizeText(t, got, Options{}); again != got {
				t.Fatalf("not idempotent:\n%q\n%q", got, again)
			}
		})
	}
}
