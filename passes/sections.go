// Package passes implements structural and semantic passes over document trees.
//
// Every pass is a transform.Pass run over the whole tree, so each of them
// visits the tree exactly once. Passes report problems through diag.Reporter
// and keep the offending subtree unchanged.
package passes

import (
	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/transform"
)

type sectionCollector struct {
	r *diag.Reporter
}

// collect groups nodes starting at index i into sections. expected is the source level of
// headings that open sections at this depth, out is the level assigned to them.
// Returns collected nodes and the index of the first heading above expected level.
func (sc *sectionCollector) collect(nodes []*node.Node, i, expected, out int) ([]*node.Node, int) {
	var result []*node.Node
	actual := expected
	for i < len(nodes) {
		n := nodes[i]
		if !n.Is(node.Heading) {
			result = append(result, n)
			i++
			continue
		}

		if n.Level < expected {
			return result, i
		}
		if n.Level > actual {
			sc.r.Report(diag.HeadingLevelSkip, n.Pos, "heading level jumped from %d to %d", actual, n.Level)
		}
		actual = n.Level

		n.Level = out
		var children []*node.Node
		children, i = sc.collect(nodes, i+1, actual+1, out+1)
		section := node.New(node.Section, append([]*node.Node{n}, children...)...)
		section.Pos = n.Pos
		result = append(result, section)
	}
	return result, i
}

func startsWithTopHeading(doc *node.Node) bool {
	return len(doc.Children) > 0 && doc.Children[0].Is(node.Heading) && doc.Children[0].Level == 1
}

// CollectRootSections nests the root document into sections. A leading level 1 heading
// becomes the document title, other headings open sections starting from level 1.
func CollectRootSections(doc *node.Node, r *diag.Reporter) *node.Node {
	sc := &sectionCollector{r}
	p := transform.NewPass("collect root sections").On(node.Document, func(n *node.Node) transform.Result {
		if !startsWithTopHeading(n) {
			n.Children, _ = sc.collect(n.Children, 0, 1, 1)
			return transform.Unchanged
		}

		head := n.Children[0]
		title := node.New(node.TitleHeading, head.Children...)
		title.Pos = head.Pos
		title.ID = head.ID

		body, i := sc.collect(n.Children, 1, 2, 1)
		if i < len(n.Children) {
			tail, _ := sc.collect(n.Children, i, 1, 1)
			body = append(body, tail...)
		}
		n.Children = append([]*node.Node{title}, body...)
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}

// CollectSections nests a chapter document into sections with top level headings at base level.
// Returns the nodes that take the place of the document: one section per level 1 heading,
// or the collected children if the document has no leading level 1 heading.
func CollectSections(doc *node.Node, base int, r *diag.Reporter) []*node.Node {
	sc := &sectionCollector{r}
	p := transform.NewPass("collect sections").On(node.Document, func(n *node.Node) transform.Result {
		if !startsWithTopHeading(n) {
			children, _ := sc.collect(n.Children, 0, 1, base)
			return transform.Splice(children...)
		}

		head := n.Children[0]
		head.Level = base
		body, i := sc.collect(n.Children, 1, 2, base+1)
		section := node.New(node.Section, append([]*node.Node{head}, body...)...)
		section.Pos = head.Pos
		result := []*node.Node{section}
		if i < len(n.Children) {
			tail, _ := sc.collect(n.Children, i, 1, base)
			result = append(result, tail...)
		}
		return transform.Splice(result...)
	})
	return transform.Tree(doc, p)
}
