package testkit_test

import (
	"context"
	"path/filepath"
	"testing"

	"quoter/internal/driver"
	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/quote"
	"quoter/internal/source"
	"quoter/internal/syntax"
	"quoter/internal/testkit"
)

func TestSamplesHoldInvariants(t *testing.T) {
	paths := testkit.Samples()
	if len(paths) == 0 {
		t.Fatalf("no samples in %s", testkit.SamplesDir())
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			fs := source.NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatal(err)
			}
			file := fs.Get(id)
			res := parser.ParseFile(file, parser.Options{})
			if err := testkit.CheckTreeInvariants(res.Root, file); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestSamplesRoundTrip(t *testing.T) {
	for _, path := range testkit.Samples() {
		src, err := testkit.ReadSample(path)
		if err != nil {
			t.Fatal(err)
		}
		for _, mode := range []quote.TriviaMode{quote.Minimal, quote.DefaultFormatting, quote.Verbose} {
			t.Run(filepath.Base(path)+"/"+mode.String(), func(t *testing.T) {
				s := quote.DefaultSettings()
				s.Mode = mode
				if _, err := driver.CheckRoundTrip(context.Background(), string(src), s); err != nil {
					t.Fatal(err)
				}
			})
		}
	}
}

func TestCheckTreeInvariantsReportsViolations(t *testing.T) {
	src := "class C { int x; }"
	root, bag := parser.ParseText("c.cs", src, lexer.Options{})
	if bag.HasErrors() {
		t.Fatal(bag.Err())
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("c.cs", []byte(src)))

	if err := testkit.CheckTreeInvariants(root, file); err != nil {
		t.Fatalf("valid tree rejected: %v", err)
	}

	other := fs.Get(fs.AddVirtual("d.cs", []byte(src+" ")))
	if err := testkit.CheckTreeInvariants(root, other); err == nil {
		t.Fatalf("text mismatch not reported")
	}

	bad := root.Clone()
	bad.Slots = bad.Slots[:len(bad.Slots)-1]
	if err := testkit.CheckTreeInvariants(bad, file); err == nil {
		t.Fatalf("slot count mismatch not reported")
	}

	wrong := syntax.Build(syntax.IdentifierName, syntax.TokenSlot(syntax.NewToken(syntax.SemicolonToken)))
	one := fs.Get(fs.AddVirtual("e.cs", []byte(";")))
	if err := testkit.CheckTreeInvariants(wrong, one); err == nil {
		t.Fatalf("wrong token kind not reported")
	}
}
