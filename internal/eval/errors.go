package eval

import (
	"fmt"
	"strings"

	"quoter/internal/diag"
)

// Error is an evaluation failure at a byte offset of the builder text.
type Error struct {
	Code   diag.Code
	Offset int
	Detail string
}

var (
	ErrSyntax          = &Error{Code: diag.EvlSyntax}
	ErrUnknownFactory  = &Error{Code: diag.EvlUnknownFactory}
	ErrUnknownKind     = &Error{Code: diag.EvlUnknownKind}
	ErrArgumentCount   = &Error{Code: diag.EvlArgumentCount}
	ErrArgumentType    = &Error{Code: diag.EvlArgumentType}
	ErrUnknownWith     = &Error{Code: diag.EvlUnknownWith}
	ErrRequiredMissing = &Error{Code: diag.EvlRequiredMissing}
	ErrTooDeep         = &Error{Code: diag.EvlTooDeep}
)

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Code.ID())
	sb.WriteByte(' ')
	sb.WriteString(strings.ToLower(e.Code.Title()))
	fmt.Fprintf(&sb, " at offset %d", e.Offset)
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Is matches errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func errorf(code diag.Code, off int, format string, args ...any) *Error {
	return &Error{Code: code, Offset: off, Detail: fmt.Sprintf(format, args...)}
}
