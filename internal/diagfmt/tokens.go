package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"quoter/internal/lexer"
	"quoter/internal/source"
	"quoter/internal/syntax"
)

type TokenOutput struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Value    string      `json:"value,omitempty"`
	Span     source.Span `json:"span"`
	Missing  bool        `json:"missing,omitempty"`
	Leading  []string    `json:"leading,omitempty"`
	Trailing []string    `json:"trailing,omitempty"`
}

func triviaKinds(list []syntax.Trivia) []string {
	if len(list) == 0 {
		return nil // Убираем пустые массивы из JSON
	}
	out := make([]string, len(list))
	for i, tr := range list {
		out[i] = tr.Kind.String()
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, items []lexer.Item, fs *source.FileSet) error {
	for i, it := range items {
		tok := it.Tok
		startPos, endPos := fs.Resolve(it.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-28s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.IsMissing() {
			fmt.Fprint(w, " <missing>")
		} else if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
			if tok.ValueText != tok.Text && tok.ValueText != "" {
				fmt.Fprintf(w, " = %q", tok.ValueText)
			}
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if lead := triviaKinds(tok.Leading); len(lead) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(lead, ", "))
		}
		if trail := triviaKinds(tok.Trailing); len(trail) > 0 {
			fmt.Fprintf(w, " (trailing: %s)", strings.Join(trail, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == syntax.EndOfFileToken {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, items []lexer.Item) error {
	output := make([]TokenOutput, 0, len(items))
	for _, it := range items {
		tok := it.Tok
		out := TokenOutput{
			Kind:     tok.Kind.String(),
			Text:     tok.Text,
			Span:     it.Span,
			Missing:  tok.IsMissing(),
			Leading:  triviaKinds(tok.Leading),
			Trailing: triviaKinds(tok.Trailing),
		}
		if tok.ValueText != tok.Text {
			out.Value = tok.ValueText
		}
		output = append(output, out)
		if tok.Kind == syntax.EndOfFileToken {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
