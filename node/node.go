// Package node defines the typed document tree shared by all passes.
package node

import (
	"strconv"
	"strings"

	"github.com/ava12/jargon/source"
)

// Node is a document tree element. Leaf nodes (Text kind) carry Text and have no children,
// all other nodes own their Children exclusively. Node identity is pointer identity.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node

	// ID is a stable identifier used for anchors and cross-references, see SetID.
	ID string

	// Level is the heading level, 0 for title heading.
	Level int

	// Language is the info string of a fenced code block.
	Language string

	// Target is the link destination.
	Target string

	// Delimiter is the markdown delimiter character of Strong and Emphasis nodes.
	Delimiter string

	Pos source.Pos
}

func NewText(text string) *Node {
	return &Node{Kind: Text, Text: text}
}

func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

func NewHeading(level int, children ...*Node) *Node {
	return &Node{Kind: Heading, Level: level, Children: children}
}

// Is reports whether node kind is k or a descendant of k.
func (n *Node) Is(k Kind) bool {
	return Is(n.Kind, k)
}

func (n *Node) IsLeaf() bool {
	return n.Kind.Has(IsLeaf)
}

// GetText returns leaf text or children texts joined by kind separator.
func (n *Node) GetText() string {
	if n == nil {
		return ""
	}
	if n.IsLeaf() {
		return n.Text
	}

	switch len(n.Children) {
	case 0:
		return ""
	case 1:
		return n.Children[0].GetText()
	}

	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.GetText()
	}
	return strings.Join(parts, n.Kind.Separator())
}

// TextOf returns concatenated texts of nodes.
func TextOf(nodes ...*Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.GetText())
	}
	return sb.String()
}

// SetID assigns stable identifier if none is assigned yet, returns false otherwise.
func (n *Node) SetID(id string) bool {
	if n.ID != "" {
		return false
	}
	n.ID = id
	return true
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	result := *n
	if n.Children != nil {
		result.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			result.Children[i] = c.Clone()
		}
	}
	return &result
}

// FindChildren returns direct children matching the filter.
func (n *Node) FindChildren(filter func(*Node) bool) []*Node {
	var result []*Node
	for _, c := range n.Children {
		if filter(c) {
			result = append(result, c)
		}
	}
	return result
}

// FindChild returns the first direct child matching the filter or nil.
func (n *Node) FindChild(filter func(*Node) bool) *Node {
	for _, c := range n.Children {
		if filter(c) {
			return c
		}
	}
	return nil
}

// OfKind returns a filter accepting nodes of kind k and its descendants.
func OfKind(k Kind) func(*Node) bool {
	return func(n *Node) bool {
		return n.Is(k)
	}
}

// Dump returns a single line S-expression describing the tree, e.g.
//
//	Section(Heading{level=1,id="sec.x"}("Intro"), Paragraph("text"))
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("nil")
		return
	}
	if n.IsLeaf() {
		sb.WriteString(strconv.Quote(n.Text))
		return
	}

	writeHead(sb, n)
	sb.WriteByte('(')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(", ")
		}
		dump(sb, c)
	}
	sb.WriteByte(')')
}

func writeHead(sb *strings.Builder, n *Node) {
	sb.WriteString(n.Kind.String())
	var attrs []string
	if n.Kind.Has(IsHeading) {
		attrs = append(attrs, "level="+strconv.Itoa(n.Level))
	}
	if n.ID != "" {
		attrs = append(attrs, "id="+strconv.Quote(n.ID))
	}
	if n.Language != "" {
		attrs = append(attrs, "lang="+strconv.Quote(n.Language))
	}
	if n.Target != "" {
		attrs = append(attrs, "target="+strconv.Quote(n.Target))
	}
	if n.Delimiter != "" {
		attrs = append(attrs, "delim="+strconv.Quote(n.Delimiter))
	}
	if len(attrs) > 0 {
		sb.WriteByte('{')
		sb.WriteString(strings.Join(attrs, ","))
		sb.WriteByte('}')
	}
}

// DumpTree returns multiline tree description, one node per line indented by depth,
// element lines end with the node position when it is known.
func DumpTree(n *Node) string {
	var sb strings.Builder
	dumpTree(&sb, n, 0)
	return sb.String()
}

func dumpTree(sb *strings.Builder, n *Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if n == nil {
		sb.WriteString("nil\n")
		return
	}
	if n.IsLeaf() {
		sb.WriteString(strconv.Quote(n.Text))
		sb.WriteByte('\n')
		return
	}

	writeHead(sb, n)
	if n.Pos.IsKnown() {
		sb.WriteString(" @ ")
		sb.WriteString(n.Pos.String())
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		dumpTree(sb, c, depth+1)
	}
}
