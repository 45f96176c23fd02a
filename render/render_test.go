package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/compiler"
	"github.com/ava12/jargon/internal/test"
	"github.com/ava12/jargon/node"
)

func text(s string) *node.Node {
	return node.NewText(s)
}

func TestElements(t *testing.T) {
	heading := node.NewHeading(2, text("A"))
	heading.ID = "sec.a"
	deep := node.NewHeading(9, text("deep"))
	code := node.New(node.CodeBlock, text("x<y\n"))
	code.Language = "go"
	link := node.New(node.Link, text("t"))
	link.Target = "x.md"

	samples := []struct {
		n        *node.Node
		expected string
	}{
		{node.New(node.Paragraph, text("a<b "), node.New(node.Strong, text("x"))), "<p>a&lt;b <strong>x</strong></p>\n"},
		{heading, `<h2 id="sec.a"><a href="#sec.a" class="anchor">A</a></h2>` + "\n"},
		{deep, "<h6>deep</h6>\n"},
		{node.New(node.TitleHeading, text("T")), `<h1 class="title-heading">T</h1>` + "\n"},
		{node.New(node.ThematicBreak), "<hr>\n"},
		{node.New(node.Paragraph, text("a"), node.New(node.LineBreak), text("b")), "<p>a<br>b</p>\n"},
		{node.New(node.Paragraph, text("a"), node.New(node.EscapeSequence, text("<")), text("b")), "<p>a&lt;b</p>\n"},
		{code, `<pre><code class="language-go">x&lt;y` + "\n</code></pre>\n"},
		{node.New(node.CodeBlock, text("z")), "<pre><code>z</code></pre>\n"},
		{link, `<a href="x.md">t</a>`},
		{node.New(node.Section, node.New(node.Paragraph, text("a")), node.New(node.Paragraph, text("b"))), "<p>a</p>\n<p>b</p>\n"},
		{node.New(node.NoteCallout, node.New(node.Paragraph, text("n"))), `<div class="callout note"><p>n</p>` + "\n</div>\n"},
		{node.New(node.Or, text("a"), text("b")), `<span class="grammar">a | b</span>`},
		{node.New(node.OneOrMore, text("x")), `<span class="grammar">x</span>+`},
		{node.New(node.CharacterClass, text("a")), `[<span class="grammar character-class">a</span>]`},
		{node.New(node.CharacterClass, node.New(node.CharacterClassCharacter, text("a")), node.New(node.CharacterRange, text("0"), text("9"))),
			`[<span class="grammar character-class"><span class="grammar character">a</span><span class="grammar character-range">0-9</span></span>]`},
	}

	r := &Renderer{}
	for _, s := range samples {
		assert.Equal(t, s.expected, r.String(s.n), node.Dump(s.n))
	}
}

func TestNoAnchors(t *testing.T) {
	h := node.NewHeading(1, text("A"))
	h.ID = "a"
	r := &Renderer{NoAnchors: true}
	assert.Equal(t, `<h1 id="a">A</h1>`+"\n", r.String(h))
}

const indexMd = "# My Spec & Co\n\n" +
	"## Contents\n\n" +
	"- [Lexical structure](lexical.md)\n\n" +
	"## Overview [sec.overview]\n\n" +
	"> Note:\n>\n> remember this.\n"

const lexicalMd = "# Lexical structure\n\n" +
	"```.lexical\n" +
	"Digit => [0-9]\n" +
	"```\n"

func compile(t *testing.T) *node.Node {
	t.Helper()
	fs := test.MemFs(t, map[string]string{
		"/spec/index.md":   indexMd,
		"/spec/lexical.md": lexicalMd,
	})

	doc, e := compiler.NewContext(fs, nil).Compile("/spec/index.md")
	require.NoError(t, e)
	return doc
}

func TestPage(t *testing.T) {
	doc := compile(t)
	r := &Renderer{}
	buf := &bytes.Buffer{}
	require.NoError(t, r.WritePage(buf, nil, doc, "style.css"))

	page, e := goquery.NewDocumentFromReader(buf)
	require.NoError(t, e)

	assert.Equal(t, "My Spec & Co", page.Find("title").Text())
	assert.Equal(t, "style.css", page.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	assert.Equal(t, "My Spec & Co", page.Find("h1.title-heading").Text())

	tocLinks := page.Find("nav div.toc a")
	require.Equal(t, 2, tocLinks.Length())
	assert.Equal(t, "#sec.overview", tocLinks.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "#section-lexical-structure", tocLinks.Eq(1).AttrOr("href", ""))
	assert.Equal(t, "Lexical structure", tocLinks.Eq(1).Text())

	overview := page.Find(`[id="sec.overview"]`)
	require.Equal(t, 1, overview.Length())
	assert.Equal(t, "Overview", overview.Find("a.anchor").Text())

	note := page.Find("div.callout.note")
	require.Equal(t, 1, note.Length())
	assert.Equal(t, "Note", note.Find("h6").Text())
	assert.Contains(t, note.Text(), "remember this.")

	lexical := page.Find("div.callout.grammar.lexical")
	require.Equal(t, 1, lexical.Length())
	assert.Equal(t, 1, lexical.Find("pre.lexical.grammar .production").Length())
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lexical.Text()), "Digit"))
}

func TestWritePageFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := node.New(node.Document, node.New(node.Paragraph, text("body")))
	r := &Renderer{}

	size, e := r.WritePageFile(fs, "/out.html", nil, doc)
	require.NoError(t, e)
	content, e := afero.ReadFile(fs, "/out.html")
	require.NoError(t, e)
	assert.Equal(t, int64(len(content)), size)
	assert.Contains(t, string(content), "<p>body</p>")
	assert.Contains(t, string(content), "<title></title>")
}

func TestLoadTemplate(t *testing.T) {
	fs := test.MemFs(t, map[string]string{
		"/good.html": "<h1>{{.TitleHTML}}</h1>{{.Content}}",
		"/bad.html":  "{{.Content",
	})

	tmpl, e := LoadTemplate(fs, "/good.html")
	require.NoError(t, e)
	doc := node.New(node.Document, node.New(node.TitleHeading, text("T")))
	buf := &bytes.Buffer{}
	require.NoError(t, (&Renderer{}).WritePage(buf, tmpl, doc))
	assert.Equal(t, `<h1>T</h1><h1 class="title-heading">T</h1>`+"\n", buf.String())

	_, e = LoadTemplate(fs, "/bad.html")
	assert.True(t, jargon.HasCode(e, TemplateError))
	_, e = LoadTemplate(fs, "/missing.html")
	assert.True(t, jargon.HasCode(e, TemplateError))
}
