package passes

import (
	"strings"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/transform"
)

// ChapterLoader returns section structured nodes of a chapter named by a link target.
type ChapterLoader func(target string) ([]*node.Node, error)

func isContentsSection(n *node.Node) bool {
	return n.Is(node.Section) && strings.Contains(strings.ToLower(n.Children[0].GetText()), "contents")
}

// FindTableOfContents finds the top level section with "contents" in its heading,
// turns it into navigation and wraps its first list into TableOfContents node.
// Returns the TableOfContents node or nil.
func FindTableOfContents(doc *node.Node, r *diag.Reporter) *node.Node {
	sections := doc.FindChildren(isContentsSection)
	if len(sections) == 0 {
		r.Report(diag.MissingTableOfContents, doc.Pos, "no table of contents section found")
		return nil
	}
	if len(sections) > 1 {
		r.Report(diag.MultipleTableOfContents, sections[1].Pos, "found multiple table of contents sections")
	}

	section := sections[0]
	r.Report(diag.Progress, section.Pos, "found table of contents section")
	section.Kind = node.Navigation

	lists := section.FindChildren(node.OfKind(node.List))
	if len(lists) == 0 {
		r.Report(diag.MissingTableOfContents, section.Pos, "no table of contents list found in table of contents section")
		return nil
	}
	if len(lists) > 1 {
		r.Report(diag.MultipleMatches, lists[1].Pos, "found multiple table of contents lists in table of contents section")
	}

	toc := node.New(node.TableOfContents, lists[0])
	toc.Pos = lists[0].Pos
	for i, c := range section.Children {
		if c == lists[0] {
			section.Children[i] = toc
		}
	}
	return toc
}

// ChapterLinks returns links of the table of contents that refer to chapter files.
// Anchors and absolute URLs are skipped.
func ChapterLinks(toc *node.Node) []*node.Node {
	var result []*node.Node
	p := transform.NewPass("collect chapter links").On(node.Link, func(n *node.Node) transform.Result {
		if n.Target != "" && !strings.HasPrefix(n.Target, "#") && !strings.Contains(n.Target, "://") {
			result = append(result, n)
		}
		return transform.Unchanged
	})
	transform.Tree(toc, p)
	return result
}

// IncludeChapters loads chapters listed in the table of contents and appends them to the document.
// Chapters that fail to load are reported and skipped.
func IncludeChapters(doc *node.Node, load ChapterLoader, r *diag.Reporter) *node.Node {
	toc := FindTableOfContents(doc, r)
	if toc == nil {
		return doc
	}

	for _, link := range ChapterLinks(toc) {
		chapter, e := load(link.Target)
		if e != nil {
			r.Report(diag.ChapterLoadFailure, link.Pos, "cannot load chapter %s: %s", link.Target, e)
			continue
		}

		r.Report(diag.Progress, link.Pos, "included chapter %s", link.Target)
		doc.Children = append(doc.Children, chapter...)
	}
	return doc
}

func tocItems(s *node.Node) []*node.Node {
	var result []*node.Node
	for _, c := range s.Children {
		if c.Is(node.Section) {
			result = append(result, tocEntry(c))
		}
	}
	return result
}

func tocEntry(s *node.Node) *node.Node {
	h := s.Children[0]
	label := make([]*node.Node, len(h.Children))
	for i, c := range h.Children {
		label[i] = c.Clone()
	}

	link := node.New(node.Link, label...)
	link.Target = "#" + h.ID
	link.Pos = h.Pos
	children := []*node.Node{link}

	items := tocItems(s)
	if len(items) > 0 {
		children = append(children, node.New(node.UnorderedList, items...))
	}
	return node.New(node.ListItem, children...)
}

// BuildTableOfContents replaces the content of TableOfContents nodes with a nested list
// of links to document sections.
func BuildTableOfContents(doc *node.Node) *node.Node {
	p := transform.NewPass("build table of contents").On(node.TableOfContents, func(n *node.Node) transform.Result {
		n.Children = []*node.Node{node.New(node.UnorderedList, tocItems(doc)...)}
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}
