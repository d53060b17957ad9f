package eval

import (
	"strings"

	"quoter/internal/catalog"
	"quoter/internal/diag"
	"quoter/internal/syntax"
)

type valKind uint8

const (
	vDefault valKind = iota + 1
	vBool
	vString
	vChar
	vNumber
	vKind
	vNode
	vToken
	vTrivia
	vTriviaList
	vList
	vSepList
	vTokenList
	vItems // NodeOrTokenList(...)
)

var valKindNames = [...]string{
	vDefault:    "default",
	vBool:       "bool",
	vString:     "string",
	vChar:       "char",
	vNumber:     "number",
	vKind:       "SyntaxKind",
	vNode:       "node",
	vToken:      "token",
	vTrivia:     "trivia",
	vTriviaList: "trivia list",
	vList:       "node list",
	vSepList:    "separated list",
	vTokenList:  "token list",
	vItems:      "node-or-token list",
}

func (k valKind) String() string {
	if int(k) < len(valKindNames) && valKindNames[k] != "" {
		return valKindNames[k]
	}
	return "?"
}

// value is the result of one builder expression.
type value struct {
	kind   valKind
	off    int
	b      bool
	text   string
	k      syntax.Kind
	node   *syntax.Node
	tok    *syntax.Token
	trivia []syntax.Trivia
	nodes  []*syntax.Node
	seps   []*syntax.Token
	toks   []*syntax.Token
	items  []value
	elem   string // T of List<T>, SeparatedList<T>
}

// Evaluate parses builder text and builds the node it describes.
func Evaluate(text string) (*syntax.Node, error) {
	x, err := parse(text)
	if err != nil {
		return nil, err
	}
	v, err := eval(x)
	if err != nil {
		return nil, err
	}
	if v.kind != vNode {
		return nil, errorf(diag.EvlArgumentType, x.off, "expression builds a %s, not a node", v.kind)
	}
	return v.node, nil
}

func eval(x *expr) (value, error) {
	v := value{off: x.off}
	switch x.kind {
	case eDefault:
		v.kind = vDefault
	case eBool:
		v.kind, v.b = vBool, x.text == "true"
	case eString:
		v.kind, v.text = vString, x.text
	case eChar:
		v.kind, v.text = vChar, x.text
	case eNumber:
		v.kind, v.text = vNumber, x.text
	case eKind:
		k, ok := syntax.LookupKind(x.name)
		if !ok {
			return value{}, errorf(diag.EvlUnknownKind, x.off, "SyntaxKind.%s", x.name)
		}
		v.kind, v.k = vKind, k
	case eName:
		return atomTrivia(x)
	case eWith:
		return evalWith(x)
	case eCall:
		if b, ok := builtins[x.name]; ok {
			return callBuiltin(b, x)
		}
		return callFactory(x)
	}
	return v, nil
}

func atomTrivia(x *expr) (value, error) {
	var tr syntax.Trivia
	switch x.name {
	case catalog.FactorySpace:
		tr = syntax.Trivia{Kind: syntax.WhitespaceTrivia, Text: " "}
	case catalog.FactoryLineFeed:
		tr = syntax.Trivia{Kind: syntax.EndOfLineTrivia, Text: "\n"}
	case catalog.FactoryCarriageReturn:
		tr = syntax.Trivia{Kind: syntax.EndOfLineTrivia, Text: "\r\n"}
	default:
		return value{}, errorf(diag.EvlUnknownFactory, x.off, "%s", x.name)
	}
	return value{kind: vTrivia, off: x.off, trivia: []syntax.Trivia{tr}}, nil
}

// evalWith applies recv.WithX(v). Any slot may be replaced this way, not only
// the ones the factory leaves out.
func evalWith(x *expr) (value, error) {
	recv, err := eval(x.recv)
	if err != nil {
		return value{}, err
	}
	if recv.kind != vNode {
		return value{}, errorf(diag.EvlArgumentType, x.off, "%s called on a %s", x.name, recv.kind)
	}
	slotName, ok := strings.CutPrefix(x.name, "With")
	i := syntax.SlotIndex(recv.node.Kind, slotName)
	if !ok || slotName == "" || i < 0 {
		return value{}, errorf(diag.EvlUnknownWith, x.off, "%s has no %s", recv.node.Kind, x.name)
	}
	if len(x.args) != 1 {
		return value{}, errorf(diag.EvlArgumentCount, x.off, "%s takes 1 argument, got %d", x.name, len(x.args))
	}
	if x.args[0].name != "" {
		return value{}, errorf(diag.EvlSyntax, x.args[0].off, "%s takes a positional argument", x.name)
	}
	v, err := eval(x.args[0].x)
	if err != nil {
		return value{}, err
	}
	if err := assign(recv.node, i, v); err != nil {
		return value{}, err
	}
	return recv, nil
}

// callFactory builds a node through its catalog entry. Multi-kind factories
// pick the entry by their SyntaxKind argument.
func callFactory(x *expr) (value, error) {
	entries := catalog.ByFactory(x.name)
	if len(entries) == 0 {
		return value{}, errorf(diag.EvlUnknownFactory, x.off, "%s", x.name)
	}
	if x.typeArg != "" {
		return value{}, errorf(diag.EvlSyntax, x.off, "%s is not generic", x.name)
	}
	vals := make([]value, len(x.args))
	for i, a := range x.args {
		v, err := eval(a.x)
		if err != nil {
			return value{}, err
		}
		vals[i] = v
	}

	e := entries[0]
	bound, err := bindArgs(x, e, vals)
	if err != nil {
		return value{}, err
	}
	if e.HasKindParam() {
		var k *value
		for i, p := range e.Params {
			if p.Slot < 0 {
				k = bound[i]
			}
		}
		if k == nil || k.kind != vKind {
			return value{}, errorf(diag.EvlArgumentType, x.off, "%s expects a SyntaxKind argument", x.name)
		}
		e = nil
		for _, cand := range entries {
			if cand.Kind == k.k {
				e = cand
				break
			}
		}
		if e == nil {
			return value{}, errorf(diag.EvlUnknownKind, k.off, "%s does not build %s", x.name, k.k)
		}
		if bound, err = bindArgs(x, e, vals); err != nil {
			return value{}, err
		}
	} else if len(entries) > 1 {
		return value{}, errorf(diag.EvlArgumentType, x.off, "%s is ambiguous without a SyntaxKind argument", x.name)
	}

	n := newDefaultNode(e.Kind)
	for i, p := range e.Params {
		if p.Slot < 0 || bound[i] == nil {
			continue
		}
		if err := assign(n, p.Slot, *bound[i]); err != nil {
			return value{}, err
		}
	}
	return value{kind: vNode, off: x.off, node: n}, nil
}

// bindArgs matches arguments to parameters: positional ones in order, named
// ones by name. With named arguments an optional parameter may be left out;
// its slot keeps the factory default.
func bindArgs(x *expr, e *catalog.Entry, vals []value) ([]*value, error) {
	bound := make([]*value, len(e.Params))
	named := false
	pos := 0
	for i, a := range x.args {
		if a.name == "" {
			if named {
				return nil, errorf(diag.EvlSyntax, a.off, "positional argument after a named one")
			}
			if pos >= len(bound) {
				return nil, errorf(diag.EvlArgumentCount, x.off, "%s takes %d arguments, got %d", x.name, len(e.Params), len(x.args))
			}
			bound[pos] = &vals[i]
			pos++
			continue
		}
		named = true
		idx := -1
		for j, p := range e.Params {
			if p.Name == a.name {
				idx = j
				break
			}
		}
		switch {
		case idx < 0:
			return nil, errorf(diag.EvlArgumentType, a.off, "%s has no parameter %s", x.name, a.name)
		case bound[idx] != nil:
			return nil, errorf(diag.EvlArgumentType, a.off, "parameter %s given twice", a.name)
		}
		bound[idx] = &vals[i]
	}

	if !named && pos != len(e.Params) {
		return nil, errorf(diag.EvlArgumentCount, x.off, "%s takes %d arguments, got %d", x.name, len(e.Params), len(x.args))
	}
	for i, p := range e.Params {
		if bound[i] == nil && (p.Slot < 0 || !p.Optional) {
			return nil, errorf(diag.EvlRequiredMissing, x.off, "%s: argument %s is required", x.name, p.Name)
		}
	}
	return bound, nil
}

// newDefaultNode creates a node the way a factory does before it looks at
// its arguments: required token slots get their default token, the rest is
// empty.
func newDefaultNode(k syntax.Kind) *syntax.Node {
	n := syntax.NewNode(k)
	for i, d := range syntax.Schema(k) {
		if d.Kind == syntax.SlotToken && !d.Optional && len(d.Tokens) > 0 {
			n.Slots[i].Token = syntax.NewToken(d.Tokens[0])
		}
	}
	return n
}

// assign stores v into slot i of n, checking that v fits the slot.
func assign(n *syntax.Node, i int, v value) error {
	d := syntax.Schema(n.Kind)[i]
	sl := &n.Slots[i]
	mismatch := func() error {
		return errorf(diag.EvlArgumentType, v.off, "%s.%s is a %s slot, got %s", n.Kind, d.Name, d.Kind, v.kind)
	}
	elemMismatch := func() error {
		return errorf(diag.EvlArgumentType, v.off, "%s.%s holds %s, got a list of %s", n.Kind, d.Name, d.Type, v.elem)
	}
	if v.kind == vDefault && d.Kind != syntax.SlotFlag {
		*sl = syntax.Slot{}
		return nil
	}
	switch d.Kind {
	case syntax.SlotNode:
		if v.kind != vNode {
			return mismatch()
		}
		*sl = syntax.NodeSlot(v.node)
	case syntax.SlotToken:
		if v.kind != vToken {
			return mismatch()
		}
		*sl = syntax.TokenSlot(v.tok)
	case syntax.SlotList:
		if v.kind != vList {
			return mismatch()
		}
		if v.elem != d.Type {
			return elemMismatch()
		}
		*sl = syntax.ListSlot(v.nodes...)
	case syntax.SlotSeparatedList:
		if v.kind != vSepList {
			return mismatch()
		}
		if v.elem != d.Type {
			return elemMismatch()
		}
		*sl = syntax.SeparatedSlot(v.nodes, v.seps)
	case syntax.SlotTokenList:
		if v.kind != vTokenList {
			return mismatch()
		}
		*sl = syntax.TokenListSlot(v.toks...)
	case syntax.SlotFlag:
		if v.kind != vBool {
			return mismatch()
		}
		*sl = syntax.FlagSlot(v.b)
	default:
		return mismatch()
	}
	return nil
}
