package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon/node"
)

func sampleTree() *node.Node {
	return node.New(node.Document,
		node.NewHeading(1, node.NewText("Title")),
		node.New(node.Paragraph,
			node.NewText("foo "),
			node.New(node.Strong, node.NewText("bar")),
			node.New(node.CodeSpan, node.NewText("baz")),
		),
		node.New(node.BlockQuote, node.New(node.Paragraph, node.NewText("quoted"))),
	)
}

func TestNoHandlersKeepTree(t *testing.T) {
	passes := []*Pass{
		NewPass("empty"),
		NewPass("other kinds").On(node.Production, func(n *node.Node) Result { return Splice() }),
		NewPass("self replace").On(node.NodeKind, func(n *node.Node) Result { return Replace(n) }),
		NewPass("unchanged").On(node.Element, func(n *node.Node) Result { return Unchanged }),
	}
	for _, p := range passes {
		t.Run(p.Name(), func(t *testing.T) {
			tree := sampleTree()
			expected := node.Dump(tree)
			firstPara := tree.Children[1]
			result := Run(tree, p)
			assert.Same(t, tree, result)
			assert.Same(t, firstPara, result.Children[1])
			assert.Equal(t, expected, node.Dump(result))
		})
	}
}

func TestMostSpecificHandler(t *testing.T) {
	var calls []string
	p := NewPass("dispatch").
		On(node.Inline, func(n *node.Node) Result {
			calls = append(calls, "inline:"+n.Kind.String())
			return Unchanged
		}).
		On(node.CodeSpan, func(n *node.Node) Result {
			calls = append(calls, "code")
			return Unchanged
		}).
		On(node.NodeKind, func(n *node.Node) Result {
			if n.IsLeaf() {
				calls = append(calls, "text:"+n.Text)
			}
			return Unchanged
		})

	Run(node.New(node.Paragraph, node.New(node.Strong, node.NewText("a")), node.New(node.CodeSpan, node.NewText("b"))), p)
	assert.Equal(t, []string{"inline:Strong", "text:a", "code", "text:b"}, calls)
}

func TestReplaceIsProcessedAgain(t *testing.T) {
	p := NewPass("strong to definition").
		On(node.Strong, func(n *node.Node) Result {
			return Replace(node.New(node.Definition, n.Children...))
		}).
		On(node.Definition, func(n *node.Node) Result {
			if len(n.Children) == 1 && n.Children[0].IsLeaf() {
				return Replace(node.New(node.Definition, node.New(node.MetaValue, n.Children...)))
			}
			return Unchanged
		}).
		On(node.Text, func(n *node.Node) Result {
			if strings.HasSuffix(n.Text, "!") {
				return Unchanged
			}
			return Replace(node.NewText(n.Text + "!"))
		})

	result := Run(node.New(node.Paragraph, node.New(node.Strong, node.NewText("Foo"))), p)
	assert.Equal(t, `Paragraph(Definition(MetaValue("Foo!")))`, node.Dump(result))
}

func TestSplice(t *testing.T) {
	p := NewPass("unwrap").
		On(node.Emphasis, func(n *node.Node) Result {
			return Splice(n.Children...)
		}).
		On(node.LineBreak, func(n *node.Node) Result {
			return Splice()
		})

	tree := node.New(node.Paragraph,
		node.NewText("a"),
		node.New(node.Emphasis, node.NewText("b"), node.New(node.Emphasis, node.NewText("c")), node.New(node.LineBreak)),
		node.New(node.LineBreak),
		node.NewText("d"),
	)
	result := Run(tree, p)
	assert.Equal(t, `Paragraph("a", "b", "c", "d")`, node.Dump(result))
}

func TestPreOrder(t *testing.T) {
	var order []string
	p := NewPass("order").On(node.NodeKind, func(n *node.Node) Result {
		if n.IsLeaf() {
			order = append(order, n.Text)
		} else {
			order = append(order, n.Kind.String())
		}
		return Unchanged
	})
	Run(sampleTree(), p)
	assert.Equal(t, []string{
		"Document", "Heading", "Title",
		"Paragraph", "foo ", "Strong", "bar", "CodeSpan", "baz",
		"BlockQuote", "Paragraph", "quoted",
	}, order)
}

func TestApply(t *testing.T) {
	n := node.New(node.Strong)
	p := NewPass("apply").On(node.Strong, func(n *node.Node) Result { return Splice(n, n) })
	r := Apply(n, p)
	require.False(t, r.IsUnchanged())
	assert.Len(t, r.Nodes(), 2)

	r = Apply(node.New(node.Emphasis), p)
	assert.True(t, r.IsUnchanged())
	assert.Nil(t, r.Nodes())
}

func TestRunPanicsOnSplicedRoot(t *testing.T) {
	p := NewPass("drop").On(node.Document, func(n *node.Node) Result { return Splice() })
	assert.Panics(t, func() { Run(node.New(node.Document), p) })
}

func TestNilNodesPanic(t *testing.T) {
	doc := node.New(node.Document, node.New(node.Paragraph, node.NewText("a")))
	p := NewPass("nil replace").On(node.Paragraph, func(n *node.Node) Result { return Replace(nil) })
	assert.PanicsWithValue(t, `transform: pass "nil replace" produced nil node for Paragraph`, func() { Run(doc, p) })

	p = NewPass("nil splice").On(node.Paragraph, func(n *node.Node) Result { return Splice(n, nil) })
	assert.Panics(t, func() { Apply(doc.Children[0], p) })
}
