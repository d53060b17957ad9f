package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quoter/internal/diag"
	"quoter/internal/diagfmt"
	"quoter/internal/driver"
	"quoter/internal/source"
)

// runInput quotes a file, a directory or stdin ("-").
func runInput(cmd *cobra.Command, input string, opts driver.Options, jobs int) (*source.FileSet, []driver.FileResult, bool, error) {
	ctx := cmd.Context()
	if input == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to read stdin: %w", err)
		}
		fs, res := driver.QuoteSource(ctx, "<stdin>", content, opts)
		return fs, []driver.FileResult{*res}, false, nil
	}

	st, err := os.Stat(input)
	if err != nil {
		return nil, nil, false, fmt.Errorf("cannot access %q: %w", input, err)
	}
	if st.IsDir() {
		fs, results, err := driver.QuoteDir(ctx, input, opts, jobs)
		return fs, results, true, err
	}
	fs, res, err := driver.QuoteFile(ctx, input, opts)
	if err != nil {
		return nil, nil, false, err
	}
	return fs, []driver.FileResult{*res}, false, nil
}

// reportDiagnostics печатает диагностики всех файлов в stderr и возвращает
// число файлов с ошибками.
func reportDiagnostics(cmd *cobra.Command, fs *source.FileSet, results []driver.FileResult) (int, error) {
	stderr := cmd.ErrOrStderr()
	flags := cmd.Root().PersistentFlags()
	timings, _ := flags.GetBool("timings")
	format, _ := flags.GetString("diag-format")
	maxDiagnostics, _ := flags.GetInt("max-diagnostics")

	failed := 0
	total := diag.NewBag(0)
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			failed++
		}
		if timings {
			printTimings(stderr, r.Path, r.Timing)
		}
		total.Merge(r.Bag)
	}
	total.Sort()

	switch format {
	case "json":
		return failed, diagfmt.JSON(stderr, total, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			Max:              maxDiagnostics,
		})
	case "short":
		items := total.Items()
		if maxDiagnostics > 0 && len(items) > maxDiagnostics {
			items = items[:maxDiagnostics]
		}
		if out := diag.FormatShortDiagnostics(items, fs, true); out != "" {
			fmt.Fprintln(stderr, out)
		}
		return failed, nil
	case "pretty", "":
		diagfmt.Pretty(stderr, total, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   1,
			ShowNotes: true,
		})
		if summary := diagfmt.Summary(total); summary != "" && len(results) > 1 {
			fmt.Fprintln(stderr, summary)
		}
		return failed, nil
	}
	return failed, fmt.Errorf("unknown diagnostics format: %s", format)
}
