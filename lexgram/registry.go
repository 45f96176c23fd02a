package lexgram

import (
	"github.com/ava12/jargon/source"
)

// Entry is a registered nonterminal. An entry is created by the first reference or definition
// and gets at most one definition.
type Entry struct {
	Name string

	// Expr is nil until the nonterminal is defined.
	Expr *Expr

	// DefinedAt is the position of the definition.
	DefinedAt source.Pos

	// ReferencedAt is the position of the first reference.
	ReferencedAt source.Pos
}

func (e *Entry) IsDefined() bool {
	return e.Expr != nil
}

// Registry maps nonterminal names to entries, keeps entries in creation order.
// A registry is scoped to a single compilation run.
type Registry struct {
	entries []*Entry
	index   map[string]*Entry
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Entry)}
}

// Entry returns entry for name, creating it if needed.
func (r *Registry) Entry(name string) *Entry {
	e, has := r.index[name]
	if !has {
		e = &Entry{Name: name}
		r.index[name] = e
		r.entries = append(r.entries, e)
	}
	return e
}

// Lookup returns existing entry.
func (r *Registry) Lookup(name string) (*Entry, bool) {
	e, has := r.index[name]
	return e, has
}

// Define sets the definition of a nonterminal.
// Returns DuplicateDefinitionError and keeps the first definition if the nonterminal is already defined.
func (r *Registry) Define(name string, x *Expr, pos source.Pos) (*Entry, error) {
	e := r.Entry(name)
	if e.IsDefined() {
		return e, duplicateDefinitionError(pos, e)
	}

	e.Expr = x
	e.DefinedAt = pos
	return e, nil
}

// Entries returns all entries in creation order. The returned slice must not be modified.
func (r *Registry) Entries() []*Entry {
	return r.entries
}

// Undefined returns entries with no definition in creation order.
func (r *Registry) Undefined() []*Entry {
	var result []*Entry
	for _, e := range r.entries {
		if !e.IsDefined() {
			result = append(result, e)
		}
	}
	return result
}

func (r *Registry) Len() int {
	return len(r.entries)
}
