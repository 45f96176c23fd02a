package passes

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/transform"
)

// IdentifySpecNodes turns strong spans into definitions and emphasis spans into references.
// Content delimited with "_" becomes a meta variable (a single character or a lowercase word)
// or a meta value.
func IdentifySpecNodes(doc *node.Node) *node.Node {
	wrap := func(k node.Kind) transform.Handler {
		return func(n *node.Node) transform.Result {
			result := node.New(k, metaContent(n)...)
			result.Pos = n.Pos
			return transform.Replace(result)
		}
	}

	p := transform.NewPass("identify spec nodes").
		On(node.Strong, wrap(node.Definition)).
		On(node.Emphasis, wrap(node.Reference))
	return transform.Run(doc, p)
}

func metaContent(n *node.Node) []*node.Node {
	if n.Delimiter != "_" {
		return n.Children
	}

	text := node.TextOf(n.Children...)
	kind := node.MetaValue
	r, _ := utf8.DecodeRuneInString(text)
	if utf8.RuneCountInString(text) == 1 || unicode.IsLower(r) {
		kind = node.MetaVariable
	}

	meta := node.New(kind, n.Children...)
	meta.Pos = n.Pos
	return []*node.Node{meta}
}

func isBlank(text string) bool {
	return text != "" && strings.TrimSpace(text) == ""
}

// isSpecialSpan reports whether n is a code span or a meta variable, possibly wrapped
// in a reference and then in a definition.
func isSpecialSpan(n *node.Node) bool {
	if n.Is(node.Reference) && len(n.Children) > 0 {
		n = n.Children[0]
	}
	if n.Is(node.Definition) && len(n.Children) > 0 {
		n = n.Children[0]
	}
	return n.Kind.Has(node.IsSpecialSpan)
}

// mergeSpans returns the single span merged from run, or nil if the run has no code spans.
func mergeSpans(run []*node.Node) *node.Node {
	if len(run) == 1 {
		return run[0]
	}

	var hasCode bool
	for _, n := range run {
		if n.Kind == node.CodeSpan {
			hasCode = true
			break
		}
	}
	if !hasCode {
		return nil
	}

	var children []*node.Node
	for _, n := range run {
		if n.Kind == node.CodeSpan {
			children = append(children, n.Children...)
		} else {
			children = append(children, n)
		}
	}
	result := node.New(node.CodeSpan, children...)
	result.Pos = run[0].Pos
	return result
}

type spanCoalescer struct {
	output, special, blank []*node.Node
}

func (sc *spanCoalescer) flushSpecial() {
	if len(sc.special) == 0 {
		return
	}

	merged := mergeSpans(sc.special)
	if merged == nil {
		sc.output = append(sc.output, sc.special...)
	} else {
		sc.output = append(sc.output, merged)
	}
	sc.special = nil
}

func (sc *spanCoalescer) flushBlank() {
	if len(sc.special) > 0 {
		sc.special = append(sc.special, sc.blank...)
	} else {
		sc.output = append(sc.output, sc.blank...)
	}
	sc.blank = nil
}

func (sc *spanCoalescer) coalesce(children []*node.Node) []*node.Node {
	for _, c := range children {
		switch {
		case isBlank(c.GetText()):
			sc.blank = append(sc.blank, c)

		case !isSpecialSpan(c):
			sc.flushSpecial()
			sc.flushBlank()
			sc.output = append(sc.output, c)

		default:
			sc.flushBlank()
			sc.special = append(sc.special, c)
		}
	}
	sc.flushSpecial()
	sc.flushBlank()
	return sc.output
}

// CoalesceSpans merges runs of code spans and meta variables separated by whitespace
// within paragraphs into single code spans.
func CoalesceSpans(doc *node.Node) *node.Node {
	p := transform.NewPass("coalesce spans").On(node.Paragraph, func(n *node.Node) transform.Result {
		n.Children = (&spanCoalescer{}).coalesce(n.Children)
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}
