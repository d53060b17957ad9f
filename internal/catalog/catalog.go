// Package catalog maps every node kind to the builder call that reconstructs
// it. The table is resolved once from the embedded overloads.toml and is
// read-only afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"quoter/internal/syntax"
)

//go:embed overloads.toml
var overloadsTOML string

// KindParam is the reserved parameter name of multi-kind factories.
const KindParam = "kind"

// ErrNoOverload reports a kind without a qualifying builder overload.
var ErrNoOverload = errors.New("no builder overload")

// Param is one positional argument of the selected overload.
type Param struct {
	Name     string // как в перегрузке: "default", "else", "kind"
	Slot     int    // индекс слота; -1 для kind
	Optional bool   // слот может быть пустым
}

// With is a follow-up `.WithX(...)` call for a slot the overload does not cover.
type With struct {
	Method string
	Slot   int
}

// Entry is the resolved call shape of one node kind.
type Entry struct {
	Kind       syntax.Kind
	Factory    string
	ReturnType string
	Params     []Param
	Withs      []With
}

// HasKindParam reports whether the factory takes a SyntaxKind argument.
func (e *Entry) HasKindParam() bool {
	for _, p := range e.Params {
		if p.Slot < 0 {
			return true
		}
	}
	return false
}

// WithFor returns the follow-up method name for a slot, or "" when the slot
// is a positional parameter.
func (e *Entry) WithFor(slot int) string {
	for _, w := range e.Withs {
		if w.Slot == slot {
			return w.Method
		}
	}
	return ""
}

type factoryDoc struct {
	Name      string     `toml:"name"`
	Returns   string     `toml:"returns"`
	Kinds     []string   `toml:"kinds"`
	Overloads [][]string `toml:"overloads"`
}

type catalogDoc struct {
	Factory []factoryDoc `toml:"factory"`
}

// Table is a resolved catalog.
type Table struct {
	byKind      map[syntax.Kind]*Entry
	byFactory   map[string][]*Entry
	unsupported []syntax.Kind
}

var defaultTable = mustLoad(overloadsTOML)

func mustLoad(src string) *Table {
	t, err := Load(src)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return t
}

// Load decodes and resolves a catalog document.
func Load(src string) (*Table, error) {
	var doc catalogDoc
	if _, err := toml.Decode(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse overloads: %w", err)
	}
	return resolve(doc)
}

type candidate struct {
	f      *factoryDoc
	params []Param
	key    string
}

// resolve выбирает для каждого вида перегрузку с наибольшим числом
// параметров; при равенстве берётся меньшее имя фабрики, затем меньший список имён.
func resolve(doc catalogDoc) (*Table, error) {
	best := make(map[syntax.Kind]candidate)
	for i := range doc.Factory {
		f := &doc.Factory[i]
		if f.Name == "" || len(f.Kinds) == 0 {
			return nil, fmt.Errorf("factory #%d: name and kinds are required", i+1)
		}
		multi := len(f.Kinds) > 1
		for _, kindName := range f.Kinds {
			k, ok := syntax.LookupKind(kindName)
			if !ok || !k.IsNode() {
				return nil, fmt.Errorf("factory %s: unknown node kind %q", f.Name, kindName)
			}
			for _, ov := range f.Overloads {
				params, ok := bind(k, ov)
				if !ok {
					continue
				}
				if multi && !hasKind(params) {
					continue
				}
				c := candidate{f: f, params: params, key: strings.Join(ov, ",")}
				prev, seen := best[k]
				if !seen || better(c, prev) {
					best[k] = c
				}
			}
		}
	}

	t := &Table{
		byKind:    make(map[syntax.Kind]*Entry, len(best)),
		byFactory: make(map[string][]*Entry),
	}
	for _, k := range syntax.Kinds() {
		if !k.IsNode() {
			continue
		}
		c, ok := best[k]
		if !ok {
			t.unsupported = append(t.unsupported, k)
			continue
		}
		e := &Entry{Kind: k, Factory: c.f.Name, ReturnType: c.f.Returns, Params: c.params}
		covered := make(map[int]bool, len(c.params))
		for _, p := range c.params {
			covered[p.Slot] = true
		}
		for i, d := range syntax.Schema(k) {
			if !covered[i] {
				e.Withs = append(e.Withs, With{Method: "With" + upperFirst(d.Name), Slot: i})
			}
		}
		t.byKind[k] = e
		t.byFactory[e.Factory] = append(t.byFactory[e.Factory], e)
	}
	return t, nil
}

func better(c, prev candidate) bool {
	if len(c.params) != len(prev.params) {
		return len(c.params) > len(prev.params)
	}
	if c.f.Name != prev.f.Name {
		return c.f.Name < prev.f.Name
	}
	return c.key < prev.key
}

// bind сопоставляет имена параметров слотам схемы без учёта регистра.
func bind(k syntax.Kind, names []string) ([]Param, bool) {
	schema := syntax.Schema(k)
	params := make([]Param, 0, len(names))
	used := make(map[int]bool, len(names))
	for _, name := range names {
		if name == KindParam {
			params = append(params, Param{Name: name, Slot: -1})
			continue
		}
		i := syntax.SlotIndex(k, name)
		if i < 0 || used[i] {
			return nil, false
		}
		used[i] = true
		d := schema[i]
		params = append(params, Param{Name: name, Slot: i, Optional: d.Optional})
	}
	return params, true
}

func hasKind(params []Param) bool {
	for _, p := range params {
		if p.Slot < 0 {
			return true
		}
	}
	return false
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Lookup returns the entry of a node kind from the table.
func (t *Table) Lookup(k syntax.Kind) (*Entry, error) {
	if e, ok := t.byKind[k]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%s: %w", k, ErrNoOverload)
}

// ByFactory returns the entries built by a factory, in kind order.
func (t *Table) ByFactory(name string) []*Entry {
	return t.byFactory[name]
}

// Entries returns all resolved entries in kind order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.byKind))
	for _, e := range t.byKind {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// Unsupported lists node kinds for which no overload qualified.
func (t *Table) Unsupported() []syntax.Kind {
	return t.unsupported
}

// Lookup returns the entry of a node kind from the embedded catalog.
func Lookup(k syntax.Kind) (*Entry, error) { return defaultTable.Lookup(k) }

// ByFactory returns the entries of the embedded catalog built by a factory.
func ByFactory(name string) []*Entry { return defaultTable.ByFactory(name) }

// Entries returns all entries of the embedded catalog in kind order.
func Entries() []*Entry { return defaultTable.Entries() }

// Unsupported lists node kinds the embedded catalog cannot build.
func Unsupported() []syntax.Kind { return defaultTable.Unsupported() }
