package quote

import (
	"strings"

	"quoter/internal/catalog"
	"quoter/internal/syntax"
)

type serializer struct {
	settings Settings
	unit     string
	depth    int
}

func newSerializer(settings Settings) *serializer {
	return &serializer{settings: settings, unit: strings.Repeat(" ", settings.Indent)}
}

func (s *serializer) verbose() bool { return s.settings.Mode == Verbose }

// node serializes one node. Chain-shaped kinds are handed to chain, which
// walks their spine without recursion.
func (s *serializer) node(n *syntax.Node) (value, error) {
	s.depth++
	defer func() { s.depth-- }()
	if err := s.checkDepth(n.Kind); err != nil {
		return value{}, err
	}
	if _, ok := spineSlot(n.Kind); ok {
		return s.chain(n)
	}
	return s.build(n, -1, value{})
}

func (s *serializer) checkDepth(k syntax.Kind) error {
	if s.depth > s.settings.MaxDepth {
		return &Error{Code: ErrDepthExceeded.Code, Kind: k, Detail: "nesting is deeper than the configured maximum"}
	}
	return nil
}

// build renders the factory call of n. When spine >= 0 the slot with that
// index is not visited and spineVal is used instead.
func (s *serializer) build(n *syntax.Node, spine int, spineVal value) (value, error) {
	e, err := catalog.Lookup(n.Kind)
	if err != nil {
		return value{}, unsupported(n.Kind, "%v", err)
	}
	schema := syntax.Schema(n.Kind)
	if len(n.Slots) != len(schema) {
		return value{}, unsupported(n.Kind, "node has %d slots, schema has %d", len(n.Slots), len(schema))
	}
	slot := func(i int) (value, error) {
		if i == spine {
			return spineVal, nil
		}
		return s.slot(n, i, schema[i])
	}

	args := make([]argument, 0, len(e.Params))
	for _, p := range e.Params {
		name := ""
		if s.verbose() {
			name = paramName(p.Name)
		}
		if p.Slot < 0 {
			args = append(args, argument{name: name, val: kindRef(n.Kind)})
			continue
		}
		v, err := slot(p.Slot)
		if err != nil {
			return value{}, err
		}
		args = append(args, argument{name: name, val: v})
	}
	out := s.call(e.Factory, args...)

	for _, w := range e.Withs {
		if !s.verbose() && w.Slot != spine && isFactoryDefault(&n.Slots[w.Slot], schema[w.Slot]) {
			continue
		}
		v, err := slot(w.Slot)
		if err != nil {
			return value{}, err
		}
		out = s.chainWith(out, w.Method, v)
	}
	return out, nil
}

// slot renders the content of one slot as an argument value.
func (s *serializer) slot(n *syntax.Node, i int, d syntax.SlotDesc) (value, error) {
	sl := &n.Slots[i]
	switch d.Kind {
	case syntax.SlotNode:
		if sl.Node == nil {
			return valueDefault, nil
		}
		return s.node(sl.Node)
	case syntax.SlotToken:
		if sl.Token == nil {
			return valueDefault, nil
		}
		return s.token(sl.Token)
	case syntax.SlotList:
		return s.list(d.Type, sl.Nodes)
	case syntax.SlotSeparatedList:
		return s.separatedList(n.Kind, d.Type, sl.Nodes, sl.Separators)
	case syntax.SlotTokenList:
		return s.tokenList(sl.Tokens)
	case syntax.SlotFlag:
		if sl.Flag {
			return atom("true"), nil
		}
		return atom("false"), nil
	}
	return value{}, unsupported(n.Kind, "slot %s has unknown type", d.Name)
}

// isFactoryDefault reports whether a slot the factory does not take as a
// parameter already holds what the factory puts there: a trivia-free
// default token for required token slots, nothing for everything else.
func isFactoryDefault(sl *syntax.Slot, d syntax.SlotDesc) bool {
	if d.Kind == syntax.SlotToken && !d.Optional {
		return sl.Token != nil && syntax.TokenEqual(sl.Token, syntax.NewToken(d.Tokens[0]))
	}
	return sl.IsEmpty(d.Kind)
}

func (s *serializer) list(elem string, nodes []*syntax.Node) (value, error) {
	switch len(nodes) {
	case 0:
		if s.verbose() {
			return s.call("List<" + elem + ">"), nil
		}
		return valueDefault, nil
	case 1:
		v, err := s.node(nodes[0])
		if err != nil {
			return value{}, err
		}
		return s.call("SingletonList<"+elem+">", argument{val: v}), nil
	}
	vals := make([]value, len(nodes))
	for i, e := range nodes {
		v, err := s.node(e)
		if err != nil {
			return value{}, err
		}
		vals[i] = v
	}
	return s.call("List<"+elem+">", positional(vals...)...), nil
}

func (s *serializer) separatedList(owner syntax.Kind, elem string, nodes []*syntax.Node, seps []*syntax.Token) (value, error) {
	switch {
	case len(nodes) == 0 && len(seps) == 0:
		if s.verbose() {
			return s.call("SeparatedList<" + elem + ">"), nil
		}
		return valueDefault, nil
	case len(seps) != len(nodes) && len(seps) != len(nodes)-1:
		return value{}, unsupported(owner, "%d separators for %d elements", len(seps), len(nodes))
	case len(nodes) == 1 && len(seps) == 0:
		v, err := s.node(nodes[0])
		if err != nil {
			return value{}, err
		}
		return s.call("SingletonSeparatedList<"+elem+">", argument{val: v}), nil
	}
	vals := make([]value, 0, len(nodes)+len(seps))
	for i, e := range nodes {
		v, err := s.node(e)
		if err != nil {
			return value{}, err
		}
		vals = append(vals, v)
		if i < len(seps) {
			sv, err := s.token(seps[i])
			if err != nil {
				return value{}, err
			}
			vals = append(vals, sv)
		}
	}
	items := s.call("NodeOrTokenList", positional(vals...)...)
	return s.call("SeparatedList<"+elem+">", argument{val: items}), nil
}

func (s *serializer) tokenList(tokens []*syntax.Token) (value, error) {
	if len(tokens) == 0 {
		if s.verbose() {
			return s.call("TokenList"), nil
		}
		return valueDefault, nil
	}
	vals := make([]value, len(tokens))
	for i, t := range tokens {
		v, err := s.token(t)
		if err != nil {
			return value{}, err
		}
		vals[i] = v
	}
	return s.call("TokenList", positional(vals...)...), nil
}

func kindRef(k syntax.Kind) value { return atom("SyntaxKind." + k.String()) }

// paramName escapes parameter names that are keywords (`@default:`).
func paramName(name string) string {
	if _, ok := syntax.LookupKeyword(name); ok {
		return "@" + name
	}
	return name
}
