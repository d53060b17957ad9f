package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quoter/internal/driver"
	"quoter/internal/quote"
	"quoter/internal/syntax"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestCacheKey(t *testing.T) {
	var content [32]byte
	content[0] = 1
	s := quote.DefaultSettings()

	a := driver.CacheKey(content, s, []string{"DEBUG", "TRACE"})
	b := driver.CacheKey(content, s, []string{"TRACE", "DEBUG"})
	if a != b {
		t.Fatalf("define order must not change the key")
	}
	if a.IsZero() {
		t.Fatalf("key must not be zero")
	}

	v := s
	v.Mode = quote.Verbose
	if driver.CacheKey(content, v, []string{"DEBUG", "TRACE"}) == a {
		t.Fatalf("settings must change the key")
	}
	if driver.CacheKey(content, s, nil) == a {
		t.Fatalf("defines must change the key")
	}
	content[0] = 2
	if driver.CacheKey(content, s, []string{"DEBUG", "TRACE"}) == a {
		t.Fatalf("content must change the key")
	}
}

func TestDiskCachePutGet(t *testing.T) {
	c, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "quoter"))
	if err != nil {
		t.Fatal(err)
	}
	var key driver.Digest
	key[0] = 0xAB

	var got driver.CachedQuote
	if ok, err := c.Get(key, &got); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}
	if err := c.Put(key, &driver.CachedQuote{Path: "a.cs", Output: "CompilationUnit()", Checked: true}); err != nil {
		t.Fatal(err)
	}
	ok, err := c.Get(key, &got)
	if !ok || err != nil {
		t.Fatalf("after put: ok=%v err=%v", ok, err)
	}
	if got.Output != "CompilationUnit()" || !got.Checked || got.Path != "a.cs" {
		t.Fatalf("payload = %+v", got)
	}

	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if ok, _ := c.Get(key, &got); ok {
		t.Fatalf("entry survived DropAll")
	}
	// после DropAll кэш снова пригоден для записи
	if err := c.Put(key, &driver.CachedQuote{Output: "x"}); err != nil {
		t.Fatal(err)
	}
}

func TestNilDiskCacheIsSafe(t *testing.T) {
	var c *driver.DiskCache
	var got driver.CachedQuote
	if ok, err := c.Get(driver.Digest{}, &got); ok || err != nil {
		t.Fatalf("nil cache Get: ok=%v err=%v", ok, err)
	}
	if err := c.Put(driver.Digest{}, &got); err != nil {
		t.Fatal(err)
	}
}

func TestQuoteDirOrderAndCache(t *testing.T) {
	files := map[string]string{
		"b.cs":          "class B { }",
		"a.cs":          "using System;\n",
		"sub/c.cs":      "namespace N { class C { int x = 1; } }",
		".hidden/d.cs":  "class D { }",
		"notes.txt":     "not source",
		"sub/broken.cs": "class {",
	}
	dir := writeFiles(t, files)
	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := driver.Options{Settings: quote.DefaultSettings(), Cache: cache}

	_, results, err := driver.QuoteDir(context.Background(), dir, opts, 3)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, r := range results {
		names = append(names, filepath.ToSlash(strings.TrimPrefix(r.Path, filepath.ToSlash(dir)+"/")))
	}
	if got, want := strings.Join(names, " "), "a.cs b.cs sub/broken.cs sub/c.cs"; got != want {
		t.Fatalf("order = %q, want %q", got, want)
	}

	for _, r := range results {
		name := filepath.Base(r.Path)
		if name == "broken.cs" {
			if r.Err == nil || !r.Bag.HasErrors() || r.Output != "" {
				t.Fatalf("broken.cs: err=%v output=%q", r.Err, r.Output)
			}
			continue
		}
		if r.Err != nil {
			t.Fatalf("%s: %v", r.Path, r.Err)
		}
		if r.Cached {
			t.Fatalf("%s: cold run reported a cache hit", r.Path)
		}
		want, err := quote.Serialize(files[relName(r.Path, dir)], quote.DefaultSettings())
		if err != nil {
			t.Fatal(err)
		}
		if r.Output != want {
			t.Fatalf("%s: output differs from direct serialization", r.Path)
		}
	}

	_, again, err := driver.QuoteDir(context.Background(), dir, opts, 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range again {
		if filepath.Base(r.Path) == "broken.cs" {
			continue
		}
		if !r.Cached || r.Output != results[i].Output {
			t.Fatalf("%s: cached=%v, output equal=%v", r.Path, r.Cached, r.Output == results[i].Output)
		}
	}
}

func relName(path, dir string) string {
	rel, err := filepath.Rel(dir, filepath.FromSlash(path))
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

func TestQuoteDirEmpty(t *testing.T) {
	_, results, err := driver.QuoteDir(context.Background(), t.TempDir(), driver.Options{}, 0)
	if err != nil || len(results) != 0 {
		t.Fatalf("results=%d err=%v", len(results), err)
	}
}

func TestQuoteDirCancelled(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.cs": "class A { }", "b.cs": "class B { }"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.QuoteDir(ctx, dir, driver.Options{}, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestQuoteFileCheckAndTimings(t *testing.T) {
	dir := writeFiles(t, map[string]string{"m.cs": "class M { void F() { return; } }\n"})
	for _, mode := range []quote.TriviaMode{quote.Minimal, quote.DefaultFormatting, quote.Verbose} {
		s := quote.DefaultSettings()
		s.Mode = mode
		_, res, err := driver.QuoteFile(context.Background(), filepath.Join(dir, "m.cs"),
			driver.Options{Settings: s, Check: true, Timings: true})
		if err != nil {
			t.Fatal(err)
		}
		if res.Err != nil {
			t.Fatalf("%s: %v", mode, res.Err)
		}
		if res.Timing == nil || len(res.Timing.Phases) != 3 {
			t.Fatalf("%s: timing = %+v", mode, res.Timing)
		}
	}
}

func TestQuoteFileMissing(t *testing.T) {
	_, _, err := driver.QuoteFile(context.Background(), filepath.Join(t.TempDir(), "nope.cs"), driver.Options{})
	if err == nil || !strings.HasPrefix(err.Error(), "IO6001") {
		t.Fatalf("err = %v", err)
	}
}

func TestQuoteSourceReportsQuoteErrors(t *testing.T) {
	s := quote.DefaultSettings()
	s.MaxDepth = 4
	_, res := driver.QuoteSource(context.Background(), "<stdin>", []byte("class C { int x = ((((((1)))))); }"), driver.Options{Settings: s})
	if !errors.Is(res.Err, quote.ErrDepthExceeded) {
		t.Fatalf("err = %v", res.Err)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code.ID() != "QUO4003" {
		t.Fatalf("diagnostics = %+v", items)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	srcs := []string{
		"",
		"using System;\r\nnamespace A.B { class C<T> : Base<T> { } }\r\n",
		"class C { string s = $\"x{a:N2}y\"; char c = '\\n'; double d = 1.5e3; }",
		"#if DEBUG\nclass D { }\n#else\nclass R { }\n#endif\n",
		"/// <summary>See <see cref=\"C\"/></summary>\nclass C { }\n",
	}
	for _, src := range srcs {
		for _, mode := range []quote.TriviaMode{quote.Minimal, quote.DefaultFormatting, quote.Verbose} {
			s := quote.DefaultSettings()
			s.Mode = mode
			out, err := driver.CheckRoundTrip(context.Background(), src, s)
			if err != nil {
				t.Fatalf("%s %q: %v\n%s", mode, src, err, out)
			}
		}
	}
}

func TestRoundTripErrorMatches(t *testing.T) {
	err := error(&driver.RoundTripError{Detail: "x"})
	if !errors.Is(err, driver.ErrRoundTrip) || !strings.HasPrefix(err.Error(), "IO6004") {
		t.Fatalf("err = %v", err)
	}
}

func TestTokenizeAndParse(t *testing.T) {
	dir := writeFiles(t, map[string]string{"t.cs": "#if X\nclass A { }\n#endif\nclass B { }"})
	path := filepath.Join(dir, "t.cs")

	tr, err := driver.Tokenize(path, []string{"X"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	last := tr.Items[len(tr.Items)-1].Tok
	if last.Kind != syntax.EndOfFileToken {
		t.Fatalf("last token = %s", last.Kind)
	}
	if len(tr.Items) != 9 { // class A { } class B { } EOF
		t.Fatalf("items = %d", len(tr.Items))
	}

	pr, err := driver.Parse(path, nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if pr.Bag.HasErrors() {
		t.Fatalf("parse: %v", pr.Bag.Err())
	}
	if pr.Root.FullString() != string(pr.File.Content) {
		t.Fatalf("tree does not reproduce the file")
	}
}
