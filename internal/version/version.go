package version

import (
	"fmt"

	"github.com/fatih/color"
)

// Version information for the quoter CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	nameColor    = color.New(color.FgCyan, color.Bold)
	versionColor = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
)

// Banner renders the one-line version string shown by `quoter version`.
func Banner() string {
	s := nameColor.Sprint("quoter") + " " + versionColor.Sprint(Version)
	if GitCommit != "" {
		s += dimColor.Sprintf(" (%s)", short(GitCommit))
	}
	if BuildDate != "" {
		s += dimColor.Sprintf(" built %s", BuildDate)
	}
	return s
}

// Plain returns the uncolored version string.
func Plain() string {
	s := fmt.Sprintf("quoter %s", Version)
	if GitCommit != "" {
		s += fmt.Sprintf(" (%s)", short(GitCommit))
	}
	return s
}

func short(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
