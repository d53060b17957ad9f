package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quoter/internal/diag"
	"quoter/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	code, loc       *color.Color
	gutter, caret   *color.Color
	note            *color.Color
}

// newPalette не трогает глобальный color.NoColor: вывод в файл и в терминал
// может идти из одного процесса.
func newPalette(on bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		code:   mk(color.Bold),
		loc:    mk(color.Faint),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed),
		note:   mk(color.FgCyan, color.Bold),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts, p)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) {
	f := lookupFile(fs, d.Primary.File)
	loc := location(f, d.Primary, opts)
	if loc != "" {
		loc += ": "
	}
	fmt.Fprintf(w, "%s%s %s: %s\n",
		p.loc.Sprint(loc),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		p.code.Sprint(d.Code.ID()),
		d.Message)

	if f != nil && !fileLevel(d) {
		writeSnippet(w, f, d.Primary, opts, p)
	}

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nl := location(lookupFile(fs, n.Span.File), n.Span, opts)
		if nl != "" {
			nl += ": "
		}
		fmt.Fprintf(w, "  %s %s%s\n", p.note.Sprint("note:"), nl, n.Msg)
	}
}

func location(f *source.File, sp source.Span, opts PrettyOpts) string {
	if f == nil {
		return ""
	}
	lc := f.LineCol(sp.Start)
	return fmt.Sprintf("%s:%d:%d", formatPath(f, opts.PathMode, opts.BaseDir), lc.Line, lc.Col)
}

// fileLevel: ошибки сериализации, вычисления и ввода-вывода относятся ко
// всему файлу и приходят с пустым span в начале.
func fileLevel(d diag.Diagnostic) bool {
	return d.Code >= diag.QuoInfo && d.Primary.Empty() && d.Primary.Start == 0
}

func writeSnippet(w io.Writer, f *source.File, sp source.Span, opts PrettyOpts, p palette) {
	start, end := f.LineCol(sp.Start), f.LineCol(sp.End)
	first := start.Line
	if opts.Context > 0 && uint32(opts.Context) < first {
		first -= uint32(opts.Context)
	} else if opts.Context > 0 {
		first = 1
	}
	gw := len(strconv.FormatUint(uint64(start.Line), 10))
	limit := 0
	if opts.Width > 0 {
		limit = max(int(opts.Width)-gw-3, 8)
	}

	for ln := first; ln <= start.Line; ln++ {
		text := expandTabs(f.GetLine(ln))
		if limit > 0 && runewidth.StringWidth(text) > limit {
			text = runewidth.Truncate(text, limit, "…")
		}
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", gw, ln), text)
	}

	line := f.GetLine(start.Line)
	from := min(int(start.Col-1), len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(max(int(end.Col-1), from), len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:from]))
	n := max(runewidth.StringWidth(expandTabs(line[from:to])), 1)
	if limit > 0 {
		if pad >= limit {
			return
		}
		n = min(n, limit-pad)
	}
	underline := "^" + strings.Repeat("~", n-1)
	fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", gw, ""), strings.Repeat(" ", pad), p.caret.Sprint(underline))
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Summary returns e.g. "2 errors, 1 warning"; empty for an empty bag.
func Summary(bag *diag.Bag) string {
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	var parts []string
	if errs > 0 {
		parts = append(parts, plural(errs, "error"))
	}
	if warns > 0 {
		parts = append(parts, plural(warns, "warning"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return strconv.Itoa(n) + " " + word + "s"
}
