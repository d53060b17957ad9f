package syntax

// SlotKind classifies the content of a node slot.
type SlotKind uint8

const (
	SlotNode SlotKind = iota + 1
	SlotToken
	SlotList          // последовательность узлов
	SlotSeparatedList // узлы, перемежаемые разделителями
	SlotTokenList
	SlotFlag
)

func (k SlotKind) String() string {
	switch k {
	case SlotNode:
		return "node"
	case SlotToken:
		return "token"
	case SlotList:
		return "list"
	case SlotSeparatedList:
		return "separated list"
	case SlotTokenList:
		return "token list"
	case SlotFlag:
		return "flag"
	}
	return "invalid"
}

// Slot holds one child position of a node. Which field is meaningful is
// decided by the node's schema; a nil Node or Token is the absent marker.
//
// For separated lists Separators has len(Nodes)-1 entries, or len(Nodes)
// when a trailing separator is present.
type Slot struct {
	Node       *Node
	Token      *Token
	Nodes      []*Node
	Separators []*Token
	Tokens     []*Token
	Flag       bool
}

// Node is a grammar production instance with slots laid out per Schema(Kind).
type Node struct {
	Kind  Kind
	Slots []Slot
}

// NewNode creates a node with slots sized for its schema.
func NewNode(k Kind) *Node {
	return &Node{Kind: k, Slots: make([]Slot, len(Schema(k)))}
}

func NodeSlot(n *Node) Slot   { return Slot{Node: n} }
func TokenSlot(t *Token) Slot { return Slot{Token: t} }
func ListSlot(nodes ...*Node) Slot {
	return Slot{Nodes: nodes}
}
func SeparatedSlot(nodes []*Node, seps []*Token) Slot {
	return Slot{Nodes: nodes, Separators: seps}
}
func TokenListSlot(tokens ...*Token) Slot { return Slot{Tokens: tokens} }
func FlagSlot(v bool) Slot                { return Slot{Flag: v} }

// Build creates a node from slots given in schema order.
func Build(k Kind, slots ...Slot) *Node {
	return &Node{Kind: k, Slots: slots}
}

// Get returns the slot with the given schema name, or nil.
func (n *Node) Get(name string) *Slot {
	i := SlotIndex(n.Kind, name)
	if i < 0 || i >= len(n.Slots) {
		return nil
	}
	return &n.Slots[i]
}

// ChildNode returns the node held by slot name (nil when absent).
func (n *Node) ChildNode(name string) *Node {
	if s := n.Get(name); s != nil {
		return s.Node
	}
	return nil
}

// ChildToken returns the token held by slot name (nil when absent).
func (n *Node) ChildToken(name string) *Token {
	if s := n.Get(name); s != nil {
		return s.Token
	}
	return nil
}

// IsEmpty reports whether the slot holds nothing under the given slot kind.
func (s *Slot) IsEmpty(k SlotKind) bool {
	switch k {
	case SlotNode:
		return s.Node == nil
	case SlotToken:
		return s.Token == nil
	case SlotList:
		return len(s.Nodes) == 0
	case SlotSeparatedList:
		return len(s.Nodes) == 0 && len(s.Separators) == 0
	case SlotTokenList:
		return len(s.Tokens) == 0
	case SlotFlag:
		return !s.Flag
	}
	return true
}

// Clone returns a deep copy of the subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Slots: make([]Slot, len(n.Slots))}
	for i, s := range n.Slots {
		cs := Slot{Flag: s.Flag, Node: s.Node.Clone(), Token: s.Token.Clone()}
		if s.Nodes != nil {
			cs.Nodes = make([]*Node, len(s.Nodes))
			for j, e := range s.Nodes {
				cs.Nodes[j] = e.Clone()
			}
		}
		if s.Separators != nil {
			cs.Separators = make([]*Token, len(s.Separators))
			for j, e := range s.Separators {
				cs.Separators[j] = e.Clone()
			}
		}
		if s.Tokens != nil {
			cs.Tokens = make([]*Token, len(s.Tokens))
			for j, e := range s.Tokens {
				cs.Tokens[j] = e.Clone()
			}
		}
		c.Slots[i] = cs
	}
	return c
}

// EachToken visits the tokens of the subtree in text order. Tokens inside
// structured trivia are not visited.
func (n *Node) EachToken(fn func(*Token)) {
	if n == nil {
		return
	}
	for i := range n.Slots {
		s := &n.Slots[i]
		switch {
		case s.Node != nil:
			s.Node.EachToken(fn)
		case s.Token != nil:
			fn(s.Token)
		case len(s.Tokens) > 0:
			for _, t := range s.Tokens {
				fn(t)
			}
		case len(s.Nodes) > 0 || len(s.Separators) > 0:
			for j, e := range s.Nodes {
				e.EachToken(fn)
				if j < len(s.Separators) {
					fn(s.Separators[j])
				}
			}
		}
	}
}

// FirstToken returns the first token of the subtree, or nil.
func (n *Node) FirstToken() *Token {
	var first *Token
	n.EachToken(func(t *Token) {
		if first == nil {
			first = t
		}
	})
	return first
}

// LastToken returns the last token of the subtree, or nil.
func (n *Node) LastToken() *Token {
	var last *Token
	n.EachToken(func(t *Token) { last = t })
	return last
}

// Inspect visits the subtree in depth-first order, calling fn for each node;
// children are skipped when fn returns false. Structured trivia is not entered.
func Inspect(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := range n.Slots {
		s := &n.Slots[i]
		if s.Node != nil {
			Inspect(s.Node, fn)
		}
		for _, e := range s.Nodes {
			Inspect(e, fn)
		}
	}
}
