package lexer

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"quoter/internal/diag"
	"quoter/internal/syntax"
)

// Поддержка: 123, 1_000, 0x1F, 0b1010, 1.5, .5, 1e-3, суффиксы u l ul lu f d m.
// ValueText — десятичная запись значения без суффиксов и разделителей.
// Неверные формы — репорт в Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() *syntax.Token {
	start := lx.cursor.Mark()

	switch b0, b1 := lx.cursor.Peek(), lx.cursor.PeekAt(1); {
	case b0 == '0' && (b1 == 'x' || b1 == 'X'):
		lx.cursor.BumpN(2)
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	case b0 == '0' && (b1 == 'b' || b1 == 'B'):
		lx.cursor.BumpN(2)
		for b := lx.cursor.Peek(); b == '0' || b == '1' || b == '_'; b = lx.cursor.Peek() {
			lx.cursor.Bump()
		}
	default:
		lx.scanDecDigits()
		if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
			lx.cursor.Bump()
			lx.scanDecDigits()
		}
		if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
			n := uint32(1)
			if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
				n = 2
			}
			if isDec(lx.cursor.PeekAt(n)) {
				lx.cursor.BumpN(int(n))
				lx.scanDecDigits()
			}
		}
	}

	// суффиксы
	switch lx.cursor.Peek() {
	case 'f', 'F', 'd', 'D', 'm', 'M':
		lx.cursor.Bump()
	case 'u', 'U':
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == 'l' || b == 'L' {
			lx.cursor.Bump()
		}
	case 'l', 'L':
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == 'u' || b == 'U' {
			lx.cursor.Bump()
		}
	}

	bad := false
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		bad = true
	}

	text := lx.cursor.TextFrom(start)
	value, err := NumericValueText(text)
	if bad || err != nil {
		lx.report(diag.LexBadNumber, lx.cursor.SpanFrom(start), "invalid numeric literal "+strconv.Quote(text))
		if value == "" {
			value = "0"
		}
	}
	return newToken(syntax.NumericLiteralToken, text, value)
}

func (lx *Lexer) scanDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

var errBadNumber = errors.New("malformed numeric literal")

// NumericValueText converts the source spelling of a numeric literal to
// the decimal text of its value: hex and binary become decimal, digit
// separators and type suffixes are dropped, reals use the shortest form
// that round-trips.
func NumericValueText(text string) (string, error) {
	s := strings.ReplaceAll(text, "_", "")
	base := 10
	switch {
	case len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		base, s = 16, s[2:]
	case len(s) > 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B'):
		base, s = 2, s[2:]
	}

	real := false
	s = strings.TrimRight(s, "uUlL")
	if base == 10 && s != "" {
		switch s[len(s)-1] {
		case 'f', 'F', 'd', 'D', 'm', 'M':
			real = true
			s = s[:len(s)-1]
		}
		if strings.ContainsAny(s, ".eE") {
			real = true
		}
	}
	if s == "" {
		return "", errBadNumber
	}

	if !real {
		n, ok := new(big.Int).SetString(s, base)
		if !ok {
			return "", errBadNumber
		}
		return n.String(), nil
	}

	if s[0] == '.' {
		s = "0" + s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// вне диапазона float64: оставляем нормализованную запись
			return s, nil
		}
		return "", errBadNumber
	}
	return formatReal(f), nil
}

func formatReal(f float64) string {
	a := math.Abs(f)
	if a == 0 || (a >= 1e-4 && a < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
