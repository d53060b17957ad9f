package driver

import (
	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/source"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Items   []lexer.Item // последний всегда EndOfFileToken
	Bag     *diag.Bag
}

// Tokenize lexes one file with the given preprocessor symbols defined.
func Tokenize(path string, defines []string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Defines:  defines,
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Items:   lx.All(),
		Bag:     bag,
	}, nil
}
