package driver

import (
	"context"
	"errors"
	"fmt"

	"quoter/internal/diag"
	"quoter/internal/eval"
	"quoter/internal/format"
	"quoter/internal/lexer"
	"quoter/internal/parser"
	"quoter/internal/quote"
	"quoter/internal/syntax"
	"quoter/internal/trace"
)

// ErrRoundTrip matches every *RoundTripError.
var ErrRoundTrip = &RoundTripError{}

// RoundTripError reports builder text that does not rebuild the tree it was
// produced from.
type RoundTripError struct {
	Detail string
}

func (e *RoundTripError) Error() string {
	return diag.IORoundTripError.ID() + " round trip mismatch: " + e.Detail
}

func (e *RoundTripError) Is(target error) bool {
	_, ok := target.(*RoundTripError)
	return ok
}

// CheckRoundTrip parses src, serializes it, evaluates the builder text and
// compares the rebuilt tree with the parsed one. It returns the builder text.
func CheckRoundTrip(ctx context.Context, src string, settings quote.Settings, defines ...string) (string, error) {
	root, bag := parser.ParseText("input.cs", src, lexer.Options{Defines: defines})
	if err := bag.Err(); err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	out, err := quote.SerializeNode(root, settings)
	if err != nil {
		return "", err
	}
	return out, checkRoundTrip(ctx, root, out, settings)
}

func checkRoundTrip(ctx context.Context, root *syntax.Node, out string, settings quote.Settings) error {
	_, span := trace.Start(ctx, trace.ScopePass, "evaluate")
	defer span.End("")

	tree, err := eval.Evaluate(out)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	want := root
	if settings.Mode == quote.DefaultFormatting {
		want = format.Normalize(root, format.Options{IndentWidth: settings.Indent})
	}
	if got, exp := tree.FullString(), want.FullString(); got != exp {
		return &RoundTripError{Detail: fmt.Sprintf("text differs at byte %d", firstDifference(got, exp))}
	}
	if d := syntax.Diff(want, tree); d != "" {
		return &RoundTripError{Detail: d}
	}
	return nil
}

func firstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// errorCode maps a pipeline error to the diagnostic code it is reported with.
func errorCode(err error) diag.Code {
	var qe *quote.Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	var ee *eval.Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	if errors.Is(err, ErrRoundTrip) {
		return diag.IORoundTripError
	}
	return diag.UnknownCode
}
