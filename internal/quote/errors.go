package quote

import (
	"fmt"
	"strings"

	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// Error is a serialization failure. Output produced before the failure is
// discarded.
type Error struct {
	Code   diag.Code
	Kind   syntax.Kind // узел, токен или trivia, на котором остановились
	Detail string
}

var (
	ErrUnsupportedConstruct = &Error{Code: diag.QuoUnsupportedConstruct}
	ErrMalformedLiteral     = &Error{Code: diag.QuoMalformedLiteral}
	ErrDepthExceeded        = &Error{Code: diag.QuoDepthExceeded}
	ErrIndentationImbalance = &Error{Code: diag.QuoIndentationImbalance}
)

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code.ID())
	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(e.Code.Title()))
	if e.Kind != syntax.None {
		fmt.Fprintf(&sb, " (%s)", e.Kind)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Is matches errors by code, so errors.Is(err, ErrDepthExceeded) works for
// any kind and detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func unsupported(k syntax.Kind, format string, args ...any) *Error {
	return &Error{Code: diag.QuoUnsupportedConstruct, Kind: k, Detail: fmt.Sprintf(format, args...)}
}

func malformed(k syntax.Kind, format string, args ...any) *Error {
	return &Error{Code: diag.QuoMalformedLiteral, Kind: k, Detail: fmt.Sprintf(format, args...)}
}
