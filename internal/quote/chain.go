package quote

import "quoter/internal/syntax"

// spineSlot returns the slot through which a chain-shaped kind nests into
// itself: `a.b.c` is MemberAccess(MemberAccess(a, b), c), so the spine of a
// member access is its expression. Right-associative operators nest to the
// right.
func spineSlot(k syntax.Kind) (int, bool) {
	var name string
	switch {
	case k == syntax.SimpleMemberAccessExpression,
		k == syntax.InvocationExpression,
		k == syntax.ElementAccessExpression:
		name = "expression"
	case k == syntax.CoalesceExpression:
		name = "right"
	case k.IsBinaryExpression():
		name = "left"
	case k.IsAssignmentExpression():
		name = "right"
	case k == syntax.ConditionalExpression:
		name = "whenFalse"
	case k == syntax.QualifiedName:
		name = "left"
	default:
		return -1, false
	}
	return syntax.SlotIndex(k, name), true
}

// chain serializes a chain without recursing along its spine: the spine is
// collected on an explicit stack, the innermost node is serialized first and
// each outer node is then built around the value of the one below it. Only
// the side slots (arguments, names, right operands) recurse.
func (s *serializer) chain(n *syntax.Node) (value, error) {
	var stack []*syntax.Node
	cur := n
	for {
		i, ok := spineSlot(cur.Kind)
		if !ok || i < 0 || i >= len(cur.Slots) || cur.Slots[i].Node == nil {
			break
		}
		stack = append(stack, cur)
		cur = cur.Slots[i].Node
	}

	if len(stack) == 0 {
		return s.build(n, -1, value{})
	}
	v, err := s.baseOf(cur)
	if err != nil {
		return value{}, err
	}
	for i := len(stack) - 1; i >= 0; i-- {
		spine, _ := spineSlot(stack[i].Kind)
		if v, err = s.build(stack[i], spine, v); err != nil {
			return value{}, err
		}
	}
	return v, nil
}

// baseOf serializes the innermost node of a chain. A chain kind whose spine
// is empty is built directly.
func (s *serializer) baseOf(n *syntax.Node) (value, error) {
	if _, ok := spineSlot(n.Kind); ok {
		s.depth++
		defer func() { s.depth-- }()
		if err := s.checkDepth(n.Kind); err != nil {
			return value{}, err
		}
		return s.build(n, -1, value{})
	}
	return s.node(n)
}
