package lexer

import (
	"quoter/internal/diag"
	"quoter/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter может быть nil: ошибки тогда игнорируются, но лексинг продолжается.
	Reporter diag.Reporter
	// Defines — символы препроцессора, определённые до начала файла.
	Defines []string
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil && lx.quiet == 0 {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

func (lx *Lexer) warn(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil && lx.quiet == 0 {
		lx.opts.Reporter.Report(code, diag.SevWarning, sp, msg, nil)
	}
}
