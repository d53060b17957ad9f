package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quoter/internal/driver"
)

var quoteCmd = &cobra.Command{
	Use:   "quote [flags] file.cs|dir|-",
	Short: "Print the builder expression for a C# source",
	Long: `Quote parses a file, every *.cs file under a directory, or stdin ("-")
and prints the factory-call expression that reconstructs its syntax tree`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	addQuoteFlags(quoteCmd)
	quoteCmd.Flags().String("out", "", "write one <file>.quote per input into this directory instead of stdout")
	quoteCmd.Flags().Bool("check", false, "verify each output rebuilds the source before printing it")
}

func runQuote(cmd *cobra.Command, args []string) error {
	input := args[0]
	opts, jobs, err := resolveOptions(cmd, input)
	if err != nil {
		return err
	}
	opts.Check, _ = cmd.Flags().GetBool("check")
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	fs, results, isDir, err := runInput(cmd, input, opts, jobs)
	if err != nil {
		return err
	}
	failed, err := reportDiagnostics(cmd, fs, results)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		switch {
		case outDir != "":
			if err := writeQuoteFile(outDir, input, r, isDir); err != nil {
				return err
			}
		case isDir:
			fmt.Fprintf(stdout, "// %s\n%s\n\n", r.Path, r.Output)
		default:
			fmt.Fprintln(stdout, r.Output)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	return nil
}

// writeQuoteFile кладёт результат рядом с относительным путём входа.
func writeQuoteFile(outDir, input string, r driver.FileResult, isDir bool) error {
	rel := filepath.Base(r.Path)
	if isDir {
		if p, err := filepath.Rel(input, r.Path); err == nil && !strings.HasPrefix(p, "..") {
			rel = p
		}
	}
	if rel == "<stdin>" {
		rel = "stdin"
	}
	target := filepath.Join(outDir, rel+".quote")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, []byte(r.Output+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}
