package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"quoter/internal/diag"
	"quoter/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class C { string s = \"unterminated\n}\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.cs", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 21, End: 34},
		"Unterminated string literal",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.cs"},
		{"Relative path", PathModeRelative, "src/test.cs:1:22"},
		{"Basename only", PathModeBasename, "test.cs:1:22"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode, BaseDir: "/home/user/project"})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "Unterminated string"} {
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output:\n%s", want, output)
				}
			}
		})
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Short path - as is", "test.cs", "test.cs:1:9"},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.cs", "file.cs:1:9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileID := fs.AddVirtual(tt.path, []byte("int x = 42\n"))
			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 10}, "Test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()

			if !strings.HasPrefix(output, tt.expected) {
				t.Errorf("Expected output to start with %q, got:\n%s", tt.expected, output)
			}
			if strings.Contains(output, "/very/long") {
				t.Errorf("long path was not shortened:\n%s", output)
			}
		})
	}
}

func TestPrettySnippetAndCaret(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.cs", []byte("class C\n{\n\tint x = @;\n}\n"))

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, Start: 19, End: 20}, "unexpected character '@'"))
	bag.Add(diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 11, End: 14}, "odd type"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename})

	want := "a.cs:3:10: ERROR LEX1001: unexpected character '@'\n" +
		"2 | {\n" +
		"3 |     int x = @;\n" +
		"  | " + strings.Repeat(" ", 12) + "^\n" +
		"a.cs:3:2: WARNING SYN2001: odd type\n" +
		"2 | {\n" +
		"3 |     int x = @;\n" +
		"  |     ^~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNotesAndFileLevel(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cs", []byte("using core.util\n"))

	bag := diag.NewBag(4)
	d := diag.New(diag.SevError, diag.SynExpectSemicolon, source.Span{File: fileID, Start: 6, End: 10}, "expected ';'")
	d = d.WithNote(source.Span{File: fileID, Start: 11, End: 15}, "after this name")
	bag.Add(d)
	bag.Add(diag.New(diag.SevError, diag.QuoDepthExceeded, source.Span{File: fileID}, "too deep"))
	bag.Add(diag.New(diag.SevError, diag.IOLoadFileError, source.Span{File: source.NoFile}, "failed to load x.cs"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true})
	output := buf.String()

	if !strings.Contains(output, "note: test.cs:1:12: after this name") {
		t.Fatalf("expected note with location, got:\n%s", output)
	}
	if !strings.Contains(output, "test.cs:1:1: ERROR QUO4003: too deep\n") {
		t.Fatalf("expected file level diagnostic, got:\n%s", output)
	}
	if strings.Count(output, "|") != 2 {
		t.Fatalf("only the first diagnostic has a snippet, got:\n%s", output)
	}
	if !strings.HasSuffix(output, "ERROR IO6001: failed to load x.cs\n") {
		t.Fatalf("expected diagnostic without location, got:\n%s", output)
	}
}

func TestPrettyWidthTruncates(t *testing.T) {
	fs := source.NewFileSet()
	line := "class C { string s = \"" + strings.Repeat("я", 60) + "\"; }"
	fileID := fs.AddVirtual("w.cs", []byte(line))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.LexBadEscape, source.Span{File: fileID, Start: 0, End: 5}, "x"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Width: 40})
	lines := strings.Split(buf.String(), "\n")
	if !strings.HasSuffix(lines[1], "…") {
		t.Fatalf("expected truncated source line, got %q", lines[1])
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.cs", []byte("x"))
	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "bad"))

	var plain, colored bytes.Buffer
	Pretty(&plain, bag, fs, PrettyOpts{})
	Pretty(&colored, bag, fs, PrettyOpts{Color: true})
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored.String())
	}
}

func TestSummary(t *testing.T) {
	bag := diag.NewBag(0)
	if Summary(bag) != "" {
		t.Fatalf("empty bag summary = %q", Summary(bag))
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	bag.Add(diag.Diagnostic{Severity: diag.SevError})
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning})
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo})
	if got := Summary(bag); got != "2 errors, 1 warning" {
		t.Fatalf("summary = %q", got)
	}
}
