package node

import (
	"strings"
)

// Kind is a node type tag. Kinds form a tree: every kind except NodeKind has a parent kind,
// the chain of parents is used for handler dispatch, class inheritance and flag lookup.
type Kind int

// Flags are capabilities shared by a kind and all its descendants.
type Flags uint

const (
	// IsLeaf marks text-bearing kinds that own no children.
	IsLeaf Flags = 1 << iota
	// IsInline marks phrasing content, rendered without trailing newline.
	IsInline
	// IsHeading marks headings, their level is kept in Node.Level.
	IsHeading
	// IsCallout marks callout blocks, concrete callout kinds have a title.
	IsCallout
	// IsGrammarCallout marks callouts whose code blocks contain grammar rules.
	IsGrammarCallout
	// IsSpecialSpan marks spans that are merged by span coalescing.
	IsSpecialSpan
	// IsTransparent marks kinds rendered as their content only.
	IsTransparent
	// IsVoid marks kinds rendered as a single tag with no content.
	IsVoid
)

// Info describes a kind being registered.
// Empty Tag, Separator, Pre and Post are inherited from the parent kind.
type Info struct {
	Name      string
	Parent    Kind
	Tag       string
	Class     string
	Separator string
	Pre, Post string
	Flags     Flags
	Title     string
}

type kindInfo struct {
	Info
	classes []string
	chain   []Kind
}

var kinds []kindInfo

var kindsByName = map[string]Kind{}

// Register adds a new kind and returns its tag.
// Panics if the name is already taken or if the parent is not registered.
// The first registered kind is the root of the lattice and has no parent.
func Register(info Info) Kind {
	if info.Name == "" {
		panic("node: empty kind name")
	}
	if _, has := kindsByName[info.Name]; has {
		panic("node: duplicate kind " + info.Name)
	}

	k := Kind(len(kinds))
	ki := kindInfo{Info: info}
	ki.classes = strings.Fields(info.Class)
	if k == 0 {
		ki.Parent = -1
		ki.chain = []Kind{k}
	} else {
		if !info.Parent.valid() {
			panic("node: unknown parent kind for " + info.Name)
		}

		p := &kinds[info.Parent]
		if ki.Tag == "" {
			ki.Tag = p.Tag
		}
		if ki.Separator == "" {
			ki.Separator = p.Separator
		}
		if ki.Pre == "" {
			ki.Pre = p.Pre
		}
		if ki.Post == "" {
			ki.Post = p.Post
		}
		ki.Flags |= p.Flags
		ki.classes = append(append([]string{}, p.classes...), ki.classes...)
		ki.chain = append([]Kind{k}, p.chain...)
	}

	kinds = append(kinds, ki)
	kindsByName[info.Name] = k
	return k
}

func (k Kind) valid() bool {
	return k >= 0 && int(k) < len(kinds)
}

func (k Kind) info() *kindInfo {
	if !k.valid() {
		panic("node: unknown kind")
	}
	return &kinds[k]
}

// Lookup finds a kind by its name.
func Lookup(name string) (Kind, bool) {
	k, has := kindsByName[name]
	return k, has
}

func (k Kind) String() string {
	if !k.valid() {
		return "Kind(?)"
	}
	return kinds[k].Name
}

// Parent returns parent kind, -1 for NodeKind.
func (k Kind) Parent() Kind {
	return k.info().Parent
}

// Info returns kind description with inherited fields resolved; Class contains the kind's own class only.
func (k Kind) Info() Info {
	return k.info().Info
}

func (k Kind) Tag() string {
	return k.info().Tag
}

func (k Kind) Separator() string {
	return k.info().Separator
}

func (k Kind) Title() string {
	return k.info().Title
}

// Has reports whether all flags f are set for the kind or any of its ancestors.
func (k Kind) Has(f Flags) bool {
	return k.info().Flags&f == f
}

// Chain returns k followed by its ancestors, most specific first.
// The returned slice must not be modified.
func Chain(k Kind) []Kind {
	return k.info().chain
}

// Is reports whether k is ancestor or k itself.
func Is(k, ancestor Kind) bool {
	for _, c := range Chain(k) {
		if c == ancestor {
			return true
		}
	}
	return false
}

// Classes returns class tags of k and all its ancestors, most general first.
// The returned slice must not be modified.
func Classes(k Kind) []string {
	return k.info().classes
}
