package fuzztests

import (
	"testing"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.cs", input))

		bag := diag.NewBag(64)
		items := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}}).All()
		if len(items) == 0 || items[len(items)-1].Tok.Kind != syntax.EndOfFileToken {
			t.Fatalf("token stream does not end with EOF")
		}
	})
}
