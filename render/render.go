// Package render writes document trees as HTML.
//
// The renderer knows nothing about grammars or callouts: every element is written
// using its kind tag, class tags inherited along the kind chain, identifier,
// content separator and pre/post text.
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/ava12/jargon/node"
)

// Renderer converts nodes to HTML.
type Renderer struct {
	// NoAnchors disables self links inside elements having identifiers.
	NoAnchors bool
}

// String returns HTML for n.
func (r *Renderer) String(n *node.Node) string {
	var sb strings.Builder
	r.write(&sb, n)
	return sb.String()
}

// Nodes returns HTML for a node list written without separators.
func (r *Renderer) Nodes(nodes []*node.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		r.write(&sb, n)
	}
	return sb.String()
}

func (r *Renderer) write(sb *strings.Builder, n *node.Node) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		sb.WriteString(html.EscapeString(n.Text))
		return
	}

	info := n.Kind.Info()
	sb.WriteString(html.EscapeString(info.Pre))
	defer sb.WriteString(html.EscapeString(info.Post))

	switch {
	case n.Kind.Has(node.IsTransparent):
		r.content(sb, n)
		return

	case n.Is(node.CodeBlock):
		sb.WriteString("<pre><code")
		if n.Language != "" {
			writeAttr(sb, "class", "language-"+n.Language)
		}
		sb.WriteByte('>')
		r.content(sb, n)
		sb.WriteString("</code></pre>\n")
		return
	}

	tag := tagName(n)
	sb.WriteByte('<')
	sb.WriteString(tag)
	if n.ID != "" {
		writeAttr(sb, "id", n.ID)
	}
	if classes := node.Classes(n.Kind); len(classes) > 0 {
		writeAttr(sb, "class", strings.Join(classes, " "))
	}
	if n.Is(node.Link) {
		writeAttr(sb, "href", n.Target)
	}
	sb.WriteByte('>')

	if !n.Kind.Has(node.IsVoid) {
		if n.ID != "" && !r.NoAnchors {
			sb.WriteString(`<a href="#`)
			sb.WriteString(html.EscapeString(n.ID))
			sb.WriteString(`" class="anchor">`)
			r.content(sb, n)
			sb.WriteString("</a>")
		} else {
			r.content(sb, n)
		}
		sb.WriteString("</")
		sb.WriteString(tag)
		sb.WriteByte('>')
	}

	if !n.Kind.Has(node.IsInline) {
		sb.WriteByte('\n')
	}
}

func (r *Renderer) content(sb *strings.Builder, n *node.Node) {
	sep := html.EscapeString(n.Kind.Separator())
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteString(sep)
		}
		r.write(sb, c)
	}
}

// tagName returns element tag, heading levels are clamped to 1..6.
func tagName(n *node.Node) string {
	tag := n.Kind.Tag()
	if !n.Kind.Has(node.IsHeading) {
		return tag
	}

	level := n.Level
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return tag + strconv.Itoa(level)
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteByte('"')
}
