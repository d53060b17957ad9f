package quote

import (
	"fmt"
	"strings"
)

// TriviaMode controls how trivia and default arguments are written.
type TriviaMode uint8

const (
	// Minimal omits defaults and uses short forms wherever they are exact.
	Minimal TriviaMode = iota
	// DefaultFormatting replaces stored trivia by canonical spacing first.
	DefaultFormatting
	// Verbose writes every slot and never uses short forms.
	Verbose
)

func (m TriviaMode) String() string {
	switch m {
	case Minimal:
		return "minimal"
	case DefaultFormatting:
		return "default"
	case Verbose:
		return "verbose"
	}
	return fmt.Sprintf("TriviaMode(%d)", m)
}

// ParseTriviaMode accepts minimal, default (or defaultFormatting) and verbose.
func ParseTriviaMode(s string) (TriviaMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "minimal":
		return Minimal, nil
	case "default", "defaultformatting":
		return DefaultFormatting, nil
	case "verbose":
		return Verbose, nil
	}
	return Minimal, fmt.Errorf("unknown trivia mode %q (want minimal, default or verbose)", s)
}

// QuoteStyle selects how string arguments of verbatim literals are written.
type QuoteStyle uint8

const (
	QuoteNormalize QuoteStyle = iota
	QuotePreserve
)

func (q QuoteStyle) String() string {
	if q == QuotePreserve {
		return "preserve"
	}
	return "normalize"
}

// ParseQuoteStyle accepts normalize and preserve.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normalize":
		return QuoteNormalize, nil
	case "preserve":
		return QuotePreserve, nil
	}
	return QuoteNormalize, fmt.Errorf("unknown quote style %q (want normalize or preserve)", s)
}

const (
	DefaultMaxDepth = 512
	DefaultIndent   = 4
)

// Settings is passed by value to one Serialize call.
type Settings struct {
	Mode     TriviaMode
	Quotes   QuoteStyle
	MaxDepth int // предел нативной рекурсии
	Indent   int // пробелов на уровень
}

// DefaultSettings returns minimal mode with normalized quoting.
func DefaultSettings() Settings {
	return Settings{MaxDepth: DefaultMaxDepth, Indent: DefaultIndent}
}

func (s Settings) withDefaults() Settings {
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultMaxDepth
	}
	if s.Indent <= 0 {
		s.Indent = DefaultIndent
	}
	return s
}

// Fingerprint identifies the settings in cache keys.
func (s Settings) Fingerprint() string {
	s = s.withDefaults()
	return fmt.Sprintf("mode=%s;quotes=%s;depth=%d;indent=%d", s.Mode, s.Quotes, s.MaxDepth, s.Indent)
}
