package main

import (
	"fmt"
	"io"

	"quoter/internal/observ"
)

func printTimings(out io.Writer, path string, report *observ.Report) {
	if out == nil || report == nil || len(report.Phases) == 0 {
		return
	}
	fmt.Fprintf(out, "%s: %.1f ms", path, report.TotalMS)
	for _, p := range report.Phases {
		fmt.Fprintf(out, " %s=%.1f", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(out, "(%s)", p.Note)
		}
	}
	fmt.Fprintln(out)
}
