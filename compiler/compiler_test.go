package compiler

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/internal/test"
	"github.com/ava12/jargon/lexgram"
	"github.com/ava12/jargon/markdown"
	"github.com/ava12/jargon/node"
)

const indexMd = `# My Spec

## Contents

- [Lexical structure](chapters/lexical.md)

## Overview [sec.overview]

A **term** is ` + "`x` `y`" + `.

> Note: remember this.
`

const lexicalMd = "# Lexical structure\n\n" +
	"```.lexical\n" +
	"Digit => [0-9]\n" +
	"Number => Digit+ Suffix\n" +
	"```\n"

func TestCompile(t *testing.T) {
	fs := test.MemFs(t, map[string]string{
		"/spec/index.md":            indexMd,
		"/spec/chapters/lexical.md": lexicalMd,
	})
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c := NewContext(fs, logger)

	doc, e := c.Compile("/spec/index.md")
	require.NoError(t, e)
	require.Equal(t, node.Document, doc.Kind)
	require.Len(t, doc.Children, 4)

	assert.Equal(t, node.TitleHeading, doc.Children[0].Kind)
	assert.Equal(t, node.Navigation, doc.Children[1].Kind)

	overview := doc.Children[2]
	assert.Equal(t, "sec.overview", overview.Children[0].ID)
	p := overview.Children[1]
	assert.Equal(t, `Paragraph("A ", Definition("term"), " is ", CodeSpan("x", " ", "y"), ".")`, node.Dump(p))
	assert.Equal(t, node.NoteCallout, overview.Children[2].Kind)

	chapter := doc.Children[3]
	assert.Equal(t, "section-lexical-structure", chapter.Children[0].ID)
	callout := chapter.Children[1]
	require.Equal(t, node.LexicalCallout, callout.Kind)
	assert.Equal(t, node.PreBlock, callout.Children[0].Kind)

	_, defined := c.Grammar.Registry().Lookup("Number")
	assert.True(t, defined)
	assert.Equal(t, 1, c.Reporter.Count(diag.Warning))
	assert.Equal(t, 0, c.Reporter.CountAtLeast(diag.Error))

	var warning *logrus.Entry
	passes := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warning = entry
		}
		if entry.Message == "pass done" {
			passes++
		}
	}
	require.NotNil(t, warning)
	assert.Equal(t, string(diag.UndefinedNonterminal), warning.Data["kind"])
	assert.Equal(t, "/spec/chapters/lexical.md", warning.Data["file"])
	assert.Equal(t, 5, warning.Data["line"])
	assert.Equal(t, 11, passes)
}

func TestDuplicateDefinitionHalts(t *testing.T) {
	src := "# Spec\n\n## Contents\n\n- [A](#a)\n\n" +
		"```.lexical\nFoo => `a`\n```\n\n```.lexical\nFoo => `b`\n```\n"
	c := NewContext(test.MemFs(t, map[string]string{"/index.md": src}), nil)

	doc, e := c.Compile("/index.md")
	assert.Nil(t, doc)
	require.Error(t, e)
	assert.True(t, jargon.HasCode(e, lexgram.DuplicateDefinitionError))
	assert.Equal(t, 1, c.Reporter.Count(diag.Error))
}

func TestFatalLevel(t *testing.T) {
	c := NewContext(test.MemFs(t, map[string]string{"/index.md": "# Spec\n\ntext\n"}), nil)
	c.Reporter.FatalLevel = diag.Warning

	_, e := c.Compile("/index.md")
	require.Error(t, e)
	assert.True(t, jargon.HasCode(e, diag.FatalDiagnosticError))
}

func TestMissingChapterIsReported(t *testing.T) {
	src := "# Spec\n\n## Contents\n\n- [Gone](gone.md)\n"
	c := NewContext(test.MemFs(t, map[string]string{"/docs/index.md": src}), nil)

	doc, e := c.Compile("/docs/index.md")
	require.NoError(t, e)
	assert.Len(t, doc.Children, 2)
	assert.Equal(t, 1, c.Reporter.Count(diag.Error))
}

func TestMissingRoot(t *testing.T) {
	c := NewContext(afero.NewMemMapFs(), nil)
	_, e := c.Compile("/index.md")
	require.Error(t, e)
	assert.True(t, jargon.HasCode(e, markdown.ReadError))
}
