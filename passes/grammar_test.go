package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/lexgram"
	"github.com/ava12/jargon/node"
)

const grammarDoc = "```.lexical\n" +
	"Digit => [0-9]\n" +
	"Number => Digit+\n" +
	"```\n" +
	"\n" +
	"```.syntax\n" +
	"Expr => (Number\n" +
	"```\n"

func prepareGrammar(t *testing.T, r *recorder, src string) *node.Node {
	t.Helper()
	doc := parse(t, "spec.md", src)
	doc = IdentifyOldStyleCallouts(doc)
	return ProcessGrammarRules(doc, r.Reporter)
}

func TestProcessGrammarRules(t *testing.T) {
	r := newRecorder()
	doc := prepareGrammar(t, r, grammarDoc)
	require.Len(t, doc.Children, 2)

	lexical := doc.Children[0]
	require.Equal(t, node.LexicalCallout, lexical.Kind)
	require.Len(t, lexical.Children, 1)
	pre := lexical.Children[0]
	assert.Equal(t, node.PreBlock, pre.Kind)
	require.Len(t, pre.Children, 2)
	assert.Equal(t, node.Production, pre.Children[0].Kind)
	assert.Equal(t, "spec.md", pre.Children[1].Pos.SourceName())
	assert.Equal(t, 3, pre.Children[1].Pos.Line())

	syntax := doc.Children[1]
	require.Equal(t, node.SyntaxCallout, syntax.Kind)
	assert.Equal(t, node.CodeBlock, syntax.Children[0].Kind)

	assert.Equal(t, []diag.Kind{diag.GrammarParseFailure}, r.kinds())
	d := r.diags[0]
	assert.Equal(t, diag.Error, d.Severity)
	assert.Equal(t, "spec.md", d.Pos.SourceName())
	assert.GreaterOrEqual(t, d.Pos.Line(), 7)
}

func TestCollectLexicalGrammar(t *testing.T) {
	r := newRecorder()
	doc := prepareGrammar(t, r, grammarDoc+"\n```.lexical\nIdent => Letter (Letter | Digit)*\n```\n")
	c := lexgram.NewCompiler(lexgram.NewRegistry())

	require.NoError(t, CollectLexicalGrammar(doc, c, r.Reporter))
	assert.Equal(t, []diag.Kind{diag.GrammarParseFailure, diag.UndefinedNonterminal}, r.kinds())

	undefined := r.diags[len(r.diags)-1]
	assert.Equal(t, diag.Warning, undefined.Severity)
	assert.Equal(t, 11, undefined.Pos.Line())
	assert.Contains(t, undefined.Message, "Letter")

	e, has := c.Registry().Lookup("Number")
	require.True(t, has)
	assert.Equal(t, "Digit+", e.Expr.String())
}

func TestDuplicateDefinitionAcrossBlocks(t *testing.T) {
	r := newRecorder()
	src := "```.lexical\nFoo => `a`\n```\n\n```.lexical\nFoo => `b`\n```\n\n```.syntax\nFoo => Bar\n```\n"
	doc := prepareGrammar(t, r, src)
	c := lexgram.NewCompiler(lexgram.NewRegistry())

	e := CollectLexicalGrammar(doc, c, r.Reporter)
	require.Error(t, e)
	assert.True(t, jargon.HasCode(e, lexgram.DuplicateDefinitionError))
	assert.Equal(t, []diag.Kind{diag.DuplicateDefinition}, r.kinds())
	assert.Equal(t, 6, r.diags[len(r.diags)-1].Pos.Line())

	foo, _ := c.Registry().Lookup("Foo")
	assert.Equal(t, `"a"`, foo.Expr.String())
	assert.Equal(t, 1, c.Registry().Len())
}

func TestNestedLexicalCallout(t *testing.T) {
	r := newRecorder()
	doc := parse(t, "spec.md", "> Lexical: tokens\n>\n> ```.lexical\n> A => `a`\n> ```\n")
	doc = IdentifyCallouts(doc, r.Reporter)
	doc = IdentifyOldStyleCallouts(doc)
	doc = ProcessGrammarRules(doc, r.Reporter)

	outer := doc.Children[0]
	require.Equal(t, node.LexicalCallout, outer.Kind)
	require.Len(t, outer.Children, 2)
	assert.Equal(t, node.LexicalCallout, outer.Children[1].Kind)

	c := lexgram.NewCompiler(lexgram.NewRegistry())
	require.NoError(t, CollectLexicalGrammar(doc, c, r.Reporter))
	assert.Empty(t, r.kinds())
	assert.Equal(t, 1, c.Registry().Len())
}

func findKind(n *node.Node, k node.Kind) *node.Node {
	if n.Is(k) {
		return n
	}
	for _, c := range n.Children {
		if found := findKind(c, k); found != nil {
			return found
		}
	}
	return nil
}

func TestContainerGrammarBlocks(t *testing.T) {
	samples := []struct {
		name, src string
	}{
		{"quote", "> ```.lexical\n> A :\n>   B\n>   C\n> ```\n"},
		{"list item", "- item\n\n  ```.lexical\n  A => B\n      C\n  ```\n"},
	}

	for _, s := range samples {
		t.Run(s.name, func(t *testing.T) {
			r := newRecorder()
			doc := prepareGrammar(t, r, s.src)
			assert.Empty(t, r.kinds())

			callout := findKind(doc, node.LexicalCallout)
			require.NotNil(t, callout)
			pre := callout.Children[0]
			require.Equal(t, node.PreBlock, pre.Kind)
			require.Len(t, pre.Children, 1)
			assert.Equal(t, `Alternative(GrammarSequence(MetaTypeNode("B"), MetaTypeNode("C")))`, node.Dump(pre.Children[0].Children[1].Children[0]))
		})
	}
}

func TestGrammarCalloutWithSeveralBlocks(t *testing.T) {
	r := newRecorder()
	doc := parse(t, "spec.md", "> Lexical:\n>\n> ```\n> A => B\n> ```\n>\n> ```\n> C => D\n> ```\n")
	doc = IdentifyCallouts(doc, r.Reporter)
	doc = ProcessGrammarRules(doc, r.Reporter)

	callout := doc.Children[0]
	require.Equal(t, node.LexicalCallout, callout.Kind)
	require.Len(t, callout.Children, 3)
	assert.Equal(t, node.PreBlock, callout.Children[1].Kind)
	assert.Equal(t, node.CodeBlock, callout.Children[2].Kind)

	assert.Equal(t, []diag.Kind{diag.MultipleMatches}, r.kinds())
	assert.Equal(t, 8, r.diags[len(r.diags)-1].Pos.Line())
}
