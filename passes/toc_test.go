package passes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/node"
)

const tocRoot = "# Spec\n\n" +
	"## Contents\n\n" +
	"- [Intro](intro.md)\n" +
	"- [Missing](missing.md)\n" +
	"- [Top](#top)\n\n" +
	"## Overview [sec.overview]\n\n" +
	"text\n"

func TestTableOfContents(t *testing.T) {
	r := newRecorder()
	var loaded []string
	load := func(target string) ([]*node.Node, error) {
		loaded = append(loaded, target)
		if target != "intro.md" {
			return nil, errors.New("not found")
		}
		return CollectSections(parse(t, target, "# Introduction\n\n## Goals\n"), 1, r.Reporter), nil
	}

	doc := parse(t, "index.md", tocRoot)
	doc = CollectRootSections(doc, r.Reporter)
	doc = IncludeChapters(doc, load, r.Reporter)
	doc = ExtractHeadingIDs(doc)
	doc = GenerateSectionIDs(doc)
	doc = BuildTableOfContents(doc)

	assert.Equal(t, []string{"intro.md", "missing.md"}, loaded)
	assert.Equal(t, []diag.Kind{diag.ChapterLoadFailure}, r.kinds())
	assert.Equal(t, 1, r.Count(diag.Error))

	require.Len(t, doc.Children, 4)
	nav := doc.Children[1]
	assert.Equal(t, node.Navigation, nav.Kind)
	toc := nav.FindChild(node.OfKind(node.TableOfContents))
	require.NotNil(t, toc)

	expected := `TableOfContents(UnorderedList(` +
		`ListItem(Link{target="#sec.overview"}("Overview")), ` +
		`ListItem(Link{target="#section-introduction"}("Introduction"), ` +
		`UnorderedList(ListItem(Link{target="#section-goals"}("Goals"))))))`
	assert.Equal(t, expected, node.Dump(toc))

	chapter := doc.Children[3]
	assert.Equal(t, node.Section, chapter.Kind)
	assert.Equal(t, "intro.md", chapter.Pos.SourceName())
}

func TestTocLabelsAreCopies(t *testing.T) {
	h := node.NewHeading(1, text("A"))
	h.ID = "a"
	doc := node.New(node.Document,
		node.New(node.TableOfContents),
		node.New(node.Section, h),
	)
	BuildTableOfContents(doc)

	link := doc.Children[0].Children[0].Children[0].Children[0]
	require.Equal(t, node.Link, link.Kind)
	assert.Equal(t, "#a", link.Target)
	assert.NotSame(t, h.Children[0], link.Children[0])
}

func TestMissingTableOfContents(t *testing.T) {
	r := newRecorder()
	doc := CollectRootSections(parse(t, "index.md", "# Spec\n\n## Overview\n"), r.Reporter)
	assert.Nil(t, FindTableOfContents(doc, r.Reporter))
	assert.Equal(t, []diag.Kind{diag.MissingTableOfContents}, r.kinds())
}

func TestMultipleTableOfContents(t *testing.T) {
	r := newRecorder()
	src := "## Contents\n\n- [A](a.md)\n\n- [B](b.md)\n\ntext\n\n1. [C](c.md)\n\n## Table of contents\n\n- [D](d.md)\n"
	doc := CollectRootSections(parse(t, "index.md", src), r.Reporter)
	toc := FindTableOfContents(doc, r.Reporter)

	require.NotNil(t, toc)
	assert.Equal(t, []diag.Kind{diag.HeadingLevelSkip, diag.MultipleTableOfContents, diag.MultipleMatches}, r.kinds())
	targets := []string{}
	for _, l := range ChapterLinks(toc) {
		targets = append(targets, l.Target)
	}
	assert.Equal(t, []string{"a.md", "b.md"}, targets)
}
