package eval

import "quoter/internal/diag"

type exprKind uint8

const (
	eCall    exprKind = iota + 1 // Name(args) или Name<T>(args)
	eName                        // Space, LineFeed, ...
	eWith                        // recv.WithX(arg)
	eKind                        // SyntaxKind.K
	eString
	eChar
	eNumber
	eDefault
	eBool
)

type expr struct {
	kind    exprKind
	off     int
	name    string
	typeArg string
	args    []arg
	text    string
	recv    *expr
}

type arg struct {
	name string
	off  int
	x    *expr
}

// maxNesting bounds call nesting in builder text. Member chains nest one
// level per link, so the bound is far above the serializer's MaxDepth.
const maxNesting = 10000

type parser struct {
	sc    scanner
	tok   token
	depth int
}

func parse(src string) (*expr, error) {
	p := &parser{sc: scanner{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	x, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tEOF {
		return nil, errorf(diag.EvlSyntax, p.tok.off, "unexpected %s after the expression", p.tok.kind)
	}
	return x, nil
}

func (p *parser) advance() error {
	t, err := p.sc.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// peek returns the token after the current one without consuming it.
func (p *parser) peek() (token, error) {
	sc := p.sc
	return sc.next()
}

func (p *parser) at(punct string) bool {
	return p.tok.kind == tPunct && p.tok.text == punct
}

func (p *parser) expect(punct string) error {
	if !p.at(punct) {
		return errorf(diag.EvlSyntax, p.tok.off, "expected %q, found %s", punct, p.describe())
	}
	return p.advance()
}

func (p *parser) ident() (token, error) {
	t := p.tok
	if t.kind != tIdent {
		return t, errorf(diag.EvlSyntax, t.off, "expected identifier, found %s", p.describe())
	}
	return t, p.advance()
}

func (p *parser) describe() string {
	if p.tok.kind == tPunct || p.tok.kind == tIdent {
		return "'" + p.tok.text + "'"
	}
	return p.tok.kind.String()
}

// expr := primary { "." Ident "(" args ")" }
func (p *parser) expr() (*expr, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxNesting {
		return nil, errorf(diag.EvlTooDeep, p.tok.off, "nesting is deeper than %d", maxNesting)
	}
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.at(".") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		x = &expr{kind: eWith, off: name.off, name: name.text, args: args, recv: x}
	}
	return x, nil
}

func (p *parser) primary() (*expr, error) {
	t := p.tok
	switch t.kind {
	case tString:
		return &expr{kind: eString, off: t.off, text: t.text}, p.advance()
	case tChar:
		return &expr{kind: eChar, off: t.off, text: t.text}, p.advance()
	case tNumber:
		return &expr{kind: eNumber, off: t.off, text: t.text}, p.advance()
	case tIdent:
	default:
		return nil, errorf(diag.EvlSyntax, t.off, "expected expression, found %s", p.describe())
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	switch t.text {
	case "default":
		return &expr{kind: eDefault, off: t.off}, nil
	case "true", "false":
		return &expr{kind: eBool, off: t.off, text: t.text}, nil
	case "SyntaxKind":
		if err := p.expect("."); err != nil {
			return nil, err
		}
		name, err := p.ident()
		if err != nil {
			return nil, err
		}
		return &expr{kind: eKind, off: t.off, name: name.text}, nil
	}

	x := &expr{kind: eName, off: t.off, name: t.text}
	if p.at("<") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		typ, err := p.ident()
		if err != nil {
			return nil, err
		}
		if err := p.expect(">"); err != nil {
			return nil, err
		}
		x.typeArg = typ.text
		if !p.at("(") {
			return nil, errorf(diag.EvlSyntax, p.tok.off, "expected '(' after %s<%s>", t.text, typ.text)
		}
	}
	if p.at("(") {
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		x.kind, x.args = eCall, args
	}
	return x, nil
}

// arguments := "(" [ arg { "," arg } ] ")" ; arg := [ Ident ":" ] expr
func (p *parser) arguments() ([]arg, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var args []arg
	if p.at(")") {
		return args, p.advance()
	}
	for {
		a := arg{off: p.tok.off}
		if p.tok.kind == tIdent {
			next, err := p.peek()
			if err != nil {
				return nil, err
			}
			if next.kind == tPunct && next.text == ":" {
				a.name = p.tok.text
				if err := p.advance(); err != nil {
					return nil, err
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
			}
		}
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		a.x = x
		args = append(args, a)
		if p.at(")") {
			return args, p.advance()
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
}
