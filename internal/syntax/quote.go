package syntax

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// QuoteString returns the canonical regular string literal for v.
func QuoteString(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for _, r := range v {
		writeEscaped(&sb, r, '"')
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteChar returns the canonical character literal for v, which must hold
// exactly one rune.
func QuoteChar(v string) string {
	var sb strings.Builder
	sb.WriteByte('\'')
	for _, r := range v {
		writeEscaped(&sb, r, '\'')
	}
	sb.WriteByte('\'')
	return sb.String()
}

// QuoteVerbatim returns v as a verbatim string literal (@"..."). Only
// doubled quotes are escaped, so v should not contain line breaks.
func QuoteVerbatim(v string) string {
	return `@"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func writeEscaped(sb *strings.Builder, r rune, quote rune) {
	switch r {
	case quote:
		sb.WriteByte('\\')
		sb.WriteRune(r)
	case '\\':
		sb.WriteString(`\\`)
	case 0:
		sb.WriteString(`\0`)
	case '\a':
		sb.WriteString(`\a`)
	case '\b':
		sb.WriteString(`\b`)
	case '\f':
		sb.WriteString(`\f`)
	case '\n':
		sb.WriteString(`\n`)
	case '\r':
		sb.WriteString(`\r`)
	case '\t':
		sb.WriteString(`\t`)
	case '\v':
		sb.WriteString(`\v`)
	default:
		switch {
		case unicode.IsPrint(r):
			sb.WriteRune(r)
		case r > 0xFFFF:
			fmt.Fprintf(sb, `\U%08X`, r)
		default:
			fmt.Fprintf(sb, `\u%04X`, r)
		}
	}
}

// CharCount reports the number of runes in v; -1 for invalid UTF-8.
func CharCount(v string) int {
	if !utf8.ValidString(v) {
		return -1
	}
	return utf8.RuneCountInString(v)
}
