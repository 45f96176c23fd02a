package passes

import (
	"regexp"
	"strings"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/transform"
)

var calloutLabelRe = regexp.MustCompile(`^([a-zA-Z ]*):`)

var calloutKinds = map[string]node.Kind{}

var oldStyleCalloutKinds = map[string]node.Kind{
	".lexical":   node.LexicalCallout,
	".syntax":    node.SyntaxCallout,
	".semantics": node.SemanticsCallout,
	".issue":     node.IssueCallout,
}

func init() {
	for _, k := range []node.Kind{node.NoteCallout, node.LexicalCallout, node.IssueCallout, node.ToDoCallout} {
		calloutKinds[strings.ToLower(k.Title())] = k
	}
}

// DetectCallout returns callout kind labelled by leading "Title:" text of a paragraph or heading
// and the length of the label including the colon.
func DetectCallout(n *node.Node) (node.Kind, int, bool) {
	if !n.Is(node.Paragraph) && !n.Is(node.Heading) {
		return 0, 0, false
	}

	m := calloutLabelRe.FindStringSubmatch(node.TextOf(n.Children...))
	if m == nil {
		return 0, 0, false
	}

	k, has := calloutKinds[strings.ToLower(m[1])]
	return k, len(m[0]), has
}

// IdentifyCallouts turns labelled paragraphs and block quotes into callouts.
// A paragraph callout wraps the paragraph. In a block quote callout the labelled first child
// is replaced with a level 6 heading bearing the callout title.
func IdentifyCallouts(doc *node.Node, r *diag.Reporter) *node.Node {
	visited := make(map[*node.Node]bool)
	p := transform.NewPass("identify callouts")

	p.On(node.Paragraph, func(n *node.Node) transform.Result {
		if visited[n] {
			return transform.Unchanged
		}
		visited[n] = true

		k, _, found := DetectCallout(n)
		if !found {
			return transform.Unchanged
		}

		r.Report(diag.Progress, n.Pos, "found callout: %s", k.Title())
		callout := node.New(k, n)
		callout.Pos = n.Pos
		return transform.Replace(callout)
	})

	p.On(node.BlockQuote, func(n *node.Node) transform.Result {
		if len(n.Children) == 0 {
			return transform.Unchanged
		}

		first := n.Children[0]
		k, _, found := DetectCallout(first)
		if !found {
			return transform.Unchanged
		}

		r.Report(diag.Progress, n.Pos, "found callout: %s", k.Title())
		heading := node.NewHeading(6, node.NewText(k.Title()))
		heading.Pos = first.Pos
		callout := node.New(k, append([]*node.Node{heading}, n.Children[1:]...)...)
		callout.Pos = n.Pos
		return transform.Replace(callout)
	})

	return transform.Run(doc, p)
}

// IdentifyOldStyleCallouts wraps code blocks tagged .lexical, .syntax, .semantics or .issue
// into the corresponding callouts and clears their language.
func IdentifyOldStyleCallouts(doc *node.Node) *node.Node {
	p := transform.NewPass("identify old style callouts").On(node.CodeBlock, func(n *node.Node) transform.Result {
		k, has := oldStyleCalloutKinds[n.Language]
		if !has {
			return transform.Unchanged
		}

		n.Language = ""
		callout := node.New(k, n)
		callout.Pos = n.Pos
		return transform.Replace(callout)
	})
	return transform.Run(doc, p)
}
