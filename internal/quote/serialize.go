package quote

import (
	"fmt"

	"quoter/internal/diag"
	"quoter/internal/format"
	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/syntax"
)

type parseConfig struct {
	path    string
	defines []string
	rep     diag.Reporter
}

// ParseOption configures the parse step of Serialize.
type ParseOption func(*parseConfig)

// WithPath names the source in diagnostics.
func WithPath(path string) ParseOption {
	return func(c *parseConfig) { c.path = path }
}

// WithDefines predefines preprocessor symbols.
func WithDefines(symbols ...string) ParseOption {
	return func(c *parseConfig) { c.defines = append(c.defines, symbols...) }
}

// WithReporter receives the parse diagnostics as well.
func WithReporter(r diag.Reporter) ParseOption {
	return func(c *parseConfig) { c.rep = r }
}

// Serialize parses source and serializes the tree. Sources with syntax
// errors are rejected: the builder text would not describe a valid program.
func Serialize(source string, settings Settings, opts ...ParseOption) (string, error) {
	cfg := parseConfig{path: "input.cs"}
	for _, o := range opts {
		o(&cfg)
	}
	root, bag := parser.ParseText(cfg.path, source, lexer.Options{Defines: cfg.defines, Reporter: cfg.rep})
	if err := bag.Err(); err != nil {
		return "", fmt.Errorf("parse %s: %w", cfg.path, err)
	}
	return SerializeNode(root, settings)
}

// SerializeNode serializes a tree. On failure the partial output is dropped
// and the error is an *Error.
func SerializeNode(n *syntax.Node, settings Settings) (string, error) {
	if n == nil {
		return "", unsupported(syntax.None, "nil tree")
	}
	settings = settings.withDefaults()
	if settings.Mode == DefaultFormatting {
		n = format.Normalize(n, format.Options{IndentWidth: settings.Indent})
	}
	s := newSerializer(settings)
	return guardIndent(n.Kind, func() (string, error) {
		v, err := s.node(n)
		if err != nil {
			return "", err
		}
		return s.render(v), nil
	})
}

// guardIndent runs fn and turns a PopIndent without PushIndent into
// ErrIndentationImbalance.
func guardIndent(kind syntax.Kind, fn func() (string, error)) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(indentImbalance); !ok {
				panic(r)
			}
			out, err = "", &Error{Code: ErrIndentationImbalance.Code, Kind: kind, Detail: "PopIndent without PushIndent"}
		}
	}()
	return fn()
}
