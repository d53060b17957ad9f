package driver

import (
	"context"
	"fmt"

	"quoter/internal/diag"
	"quoter/internal/observ"
	"quoter/internal/quote"
	"quoter/internal/source"
	"quoter/internal/syntax"
	"quoter/internal/trace"
)

// Options управляет одним прогоном quote/check.
type Options struct {
	Settings       quote.Settings
	Defines        []string
	MaxDiagnostics int
	Cache          *DiskCache // nil — без кэша
	Check          bool       // после сериализации проверить round trip
	Timings        bool       // заполнять FileResult.Timing
}

// FileResult is the outcome for one source file.
type FileResult struct {
	Path   string
	FileID source.FileID
	Output string // пусто, если Err != nil
	Cached bool
	Bag    *diag.Bag
	Err    error
	Timing *observ.Report
}

// QuoteFile loads, parses and serializes one file.
func QuoteFile(ctx context.Context, path string, opts Options) (*source.FileSet, *FileResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fs, nil, fmt.Errorf("%s load %s: %w", diag.IOLoadFileError.ID(), path, err)
	}
	res := quoteLoaded(ctx, fs.Get(id), opts)
	return fs, &res, nil
}

// QuoteSource serializes an in-memory source, e.g. stdin.
func QuoteSource(ctx context.Context, name string, content []byte, opts Options) (*source.FileSet, *FileResult) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, content)
	res := quoteLoaded(ctx, fs.Get(id), opts)
	return fs, &res
}

func quoteLoaded(ctx context.Context, file *source.File, opts Options) (res FileResult) {
	ctx, span := trace.Start(ctx, trace.ScopeFile, file.Path)
	res = FileResult{Path: file.Path, FileID: file.ID, Bag: diag.NewBag(opts.MaxDiagnostics)}
	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	defer func() {
		if timer != nil {
			rep := timer.Report()
			res.Timing = &rep
		}
		detail := "ok"
		switch {
		case res.Err != nil:
			detail = "failed"
		case res.Cached:
			detail = "cached"
		}
		span.End(detail)
	}()

	key := CacheKey(file.Hash, opts.Settings, opts.Defines)
	if opts.Cache != nil {
		var hit CachedQuote
		ok, err := opts.Cache.Get(key, &hit)
		if err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  "cache read failed: " + err.Error(),
				Primary:  source.Span{File: file.ID},
			})
		}
		if ok && (hit.Checked || !opts.Check) {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-hit", key.String(), span.ID())
			res.Output, res.Cached = hit.Output, true
			return res
		}
	}

	var root *syntax.Node
	err := timer.Measure("parse", func() error {
		_, ps := trace.Start(ctx, trace.ScopePass, "parse")
		defer ps.End("")
		n, err := parseLoaded(file, opts.Defines, opts.MaxDiagnostics, res.Bag)
		if err != nil {
			return err
		}
		root = n
		return res.Bag.Err()
	})
	if err != nil {
		res.Err = fmt.Errorf("parse %s: %w", file.Path, err)
		return res
	}

	err = timer.Measure("quote", func() error {
		_, qs := trace.Start(ctx, trace.ScopePass, "quote")
		defer qs.End("")
		out, err := quote.SerializeNode(root, opts.Settings)
		res.Output = out
		return err
	})
	if err == nil && opts.Check {
		err = timer.Measure("check", func() error {
			return checkRoundTrip(ctx, root, res.Output, opts.Settings)
		})
	}
	if err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "failed", err.Error(), span.ID())
		res.Output, res.Err = "", err
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     errorCode(err),
			Message:  err.Error(),
			Primary:  source.Span{File: file.ID},
		})
		return res
	}

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, &CachedQuote{Path: file.Path, Output: res.Output, Checked: opts.Check}); err != nil {
			res.Bag.Add(diag.Diagnostic{
				Severity: diag.SevWarning,
				Code:     diag.IOCacheError,
				Message:  "cache write failed: " + err.Error(),
				Primary:  source.Span{File: file.ID},
			})
		}
	}
	return res
}
