package driver

import (
	"fortio.org/safecast"

	"quoter/internal/diag"
	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Root    *syntax.Node
	Bag     *diag.Bag
}

func Parse(filePath string, defines []string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	root, err := parseLoaded(file, defines, maxDiagnostics, bag)
	if err != nil {
		return nil, err
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Root:    root,
		Bag:     bag,
	}, nil
}

// parseLoaded разбирает уже загруженный файл, складывая ошибки лексера и
// парсера в bag.
func parseLoaded(file *source.File, defines []string, maxDiagnostics int, bag *diag.Bag) (*syntax.Node, error) {
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	res := parser.ParseFile(file, parser.Options{
		Reporter:  rep,
		MaxErrors: maxErrors,
		Lexer:     lexer.Options{Reporter: rep, Defines: defines},
	})
	return res.Root, nil
}
