package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quoter/internal/driver"
)

// errMismatch: итог уже выведен, main только выставляет код выхода.
var errMismatch = errors.New("round trip failed")

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.cs|dir|-",
	Short: "Verify that quoted output evaluates back to the same tree",
	Long: `Check quotes each input, evaluates the produced expression and compares
the rebuilt tree with the parsed one. Exits with status 1 on any mismatch`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	addQuoteFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := args[0]
	opts, jobs, err := resolveOptions(cmd, input)
	if err != nil {
		return err
	}
	opts.Check = true

	fs, results, _, err := runInput(cmd, input, opts, jobs)
	if err != nil {
		return err
	}
	failed, err := reportDiagnostics(cmd, fs, results)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	mismatches := 0
	for _, r := range results {
		status := "ok"
		switch {
		case errors.Is(r.Err, driver.ErrRoundTrip):
			status = "MISMATCH"
			mismatches++
		case r.Err != nil:
			status = "FAILED"
		case r.Cached:
			status = "ok (cached)"
		}
		fmt.Fprintf(stdout, "%-12s %s\n", status, r.Path)
	}
	fmt.Fprintf(stdout, "%d checked, %d mismatched, %d failed\n", len(results), mismatches, failed-mismatches)

	if failed > 0 {
		return errMismatch
	}
	return nil
}
