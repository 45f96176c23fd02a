package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/util"

	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/source"
)

type converter struct {
	src  *source.Source
	text []byte
}

func (c *converter) pos(offset int) source.Pos {
	return source.NewPos(c.src, offset)
}

// children converts child nodes of n merging adjacent text leaves.
func (c *converter) children(n ast.Node) []*node.Node {
	var result []*node.Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		for _, nn := range c.convert(child) {
			last := len(result) - 1
			if last >= 0 && nn.Kind == node.Text && result[last].Kind == node.Text {
				result[last].Text += nn.Text
			} else {
				result = append(result, nn)
			}
		}
	}
	return result
}

func (c *converter) convert(n ast.Node) []*node.Node {
	var result *node.Node

	switch n := n.(type) {
	case *ast.Text:
		return c.textLeaf(n)

	case *ast.String:
		result = node.NewText(string(n.Value))

	case *ast.Heading:
		result = node.NewHeading(n.Level, c.children(n)...)

	case *ast.Paragraph, *ast.TextBlock:
		result = node.New(node.Paragraph, c.children(n)...)

	case *ast.FencedCodeBlock:
		result = node.New(node.CodeBlock, node.NewText(c.lines(n)))
		result.Language = string(n.Language(c.text))

	case *ast.CodeBlock:
		result = node.New(node.CodeBlock, node.NewText(c.lines(n)))

	case *ast.HTMLBlock:
		raw := c.lines(n)
		if n.HasClosure() {
			raw += string(n.ClosureLine.Value(c.text))
		}
		result = node.New(node.Paragraph, node.NewText(raw))

	case *ast.List:
		kind := node.UnorderedList
		if n.IsOrdered() {
			kind = node.OrderedList
		}
		result = node.New(kind, c.children(n)...)

	case *ast.ListItem:
		result = node.New(node.ListItem, c.children(n)...)

	case *ast.Blockquote:
		result = node.New(node.BlockQuote, c.children(n)...)

	case *ast.ThematicBreak:
		result = node.New(node.ThematicBreak)

	case *ast.CodeSpan:
		result = node.New(node.CodeSpan, node.NewText(c.codeText(n)))

	case *ast.Emphasis:
		kind := node.Emphasis
		if n.Level > 1 {
			kind = node.Strong
		}
		result = node.New(kind, c.children(n)...)
		result.Delimiter = c.delimiter(n)

	case *ast.Link:
		result = node.New(node.Link, c.children(n)...)
		result.Target = string(n.Destination)

	case *ast.Image:
		result = node.New(node.Link, c.children(n)...)
		result.Target = string(n.Destination)

	case *ast.AutoLink:
		result = node.New(node.Link, node.NewText(string(n.Label(c.text))))
		result.Target = string(n.URL(c.text))

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.text))
		}
		result = node.NewText(sb.String())

	default:
		return c.children(n)
	}

	result.Pos = c.nodePos(n, result)
	return []*node.Node{result}
}

func (c *converter) textLeaf(n *ast.Text) []*node.Node {
	value := n.Segment.Value(c.text)
	var result []*node.Node
	if n.IsRaw() {
		result = []*node.Node{c.textAt(string(value), n.Segment.Start)}
	} else {
		result = c.unescape(value, n.Segment.Start)
	}

	if n.HardLineBreak() {
		br := node.New(node.LineBreak)
		br.Pos = c.pos(n.Segment.Start)
		return append(result, br)
	}
	if n.SoftLineBreak() {
		last := result[len(result)-1]
		if last.Kind != node.Text {
			last = c.textAt("", n.Segment.Stop)
			result = append(result, last)
		}
		last.Text += "\n"
	}
	return result
}

func (c *converter) textAt(text string, offset int) *node.Node {
	leaf := node.NewText(text)
	leaf.Pos = c.pos(offset)
	return leaf
}

// unescape splits text at backslash escapes, each escaped punctuation character
// becomes EscapeSequence node.
func (c *converter) unescape(value []byte, start int) []*node.Node {
	var result []*node.Node
	from := 0
	for i := 0; i < len(value)-1; i++ {
		if value[i] != '\\' || !util.IsPunct(value[i+1]) {
			continue
		}

		if i > from {
			result = append(result, c.textAt(resolveReferences(value[from:i]), start+from))
		}
		esc := node.New(node.EscapeSequence, c.textAt(string(value[i+1:i+2]), start+i+1))
		esc.Pos = c.pos(start + i)
		result = append(result, esc)
		i++
		from = i + 1
	}

	if from < len(value) || len(result) == 0 {
		result = append(result, c.textAt(resolveReferences(value[from:]), start+from))
	}
	return result
}

func resolveReferences(value []byte) string {
	return string(util.ResolveEntityNames(util.ResolveNumericReferences(value)))
}

func (c *converter) nodePos(n ast.Node, result *node.Node) source.Pos {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return c.pos(n.Lines().At(0).Start)
	}
	if t, is := n.FirstChild().(*ast.Text); is {
		return c.pos(t.Segment.Start)
	}
	if len(result.Children) > 0 {
		return result.Children[0].Pos
	}
	return source.Pos{}
}

func (c *converter) lines(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(c.text))
	}
	return sb.String()
}

func (c *converter) codeText(n *ast.CodeSpan) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch t := child.(type) {
		case *ast.Text:
			value := t.Segment.Value(c.text)
			if len(value) > 0 && value[len(value)-1] == '\n' {
				sb.Write(value[:len(value)-1])
				sb.WriteByte(' ')
			} else {
				sb.Write(value)
			}
		case *ast.String:
			sb.Write(t.Value)
		}
	}
	return sb.String()
}

// delimiter returns the character that opens emphasis n in the source, "*" if unknown.
// The opening run is found by stepping back from the first text segment over the
// openers of nested inlines.
func (c *converter) delimiter(n *ast.Emphasis) string {
	var chain []ast.Node
	offset := -1
	for x := ast.Node(n); x != nil; x = x.FirstChild() {
		if t, is := x.(*ast.Text); is {
			offset = t.Segment.Start
			break
		}
		chain = append(chain, x)
	}
	if offset < 0 {
		return "*"
	}

	for i := len(chain) - 1; i >= 0; i-- {
		switch x := chain[i].(type) {
		case *ast.Emphasis:
			offset -= x.Level
		case *ast.Link:
			offset--
		case *ast.CodeSpan:
			for offset > 0 && c.text[offset-1] == ' ' {
				offset--
			}
			for offset > 0 && c.text[offset-1] == '`' {
				offset--
			}
		default:
			return "*"
		}
	}

	if offset >= 0 && offset < len(c.text) && (c.text[offset] == '_' || c.text[offset] == '*') {
		return string(c.text[offset])
	}
	return "*"
}
