// Package compiler runs document passes in order for a root document and its chapters.
package compiler

import (
	"io"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/lexgram"
	"github.com/ava12/jargon/markdown"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/passes"
)

// ChapterLevel is the heading level of chapter sections.
const ChapterLevel = 1

// Context holds everything scoped to a single compilation run.
type Context struct {
	Reporter *diag.Reporter
	Grammar  *lexgram.Compiler
	Reader   *markdown.Reader
	Log      logrus.FieldLogger
}

// NewContext creates context reading files from fs. A nil log discards messages.
func NewContext(fs afero.Fs, log logrus.FieldLogger) *Context {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Context{
		Reporter: diag.NewReporter(log),
		Grammar:  lexgram.NewCompiler(lexgram.NewRegistry()),
		Reader:   markdown.NewReader(fs),
		Log:      log,
	}
}

type step struct {
	name string
	run  func(doc *node.Node) (*node.Node, error)
}

func (c *Context) steps(path string) []step {
	r := c.Reporter
	plain := func(f func(*node.Node) *node.Node) func(*node.Node) (*node.Node, error) {
		return func(doc *node.Node) (*node.Node, error) {
			return f(doc), nil
		}
	}
	reported := func(f func(*node.Node, *diag.Reporter) *node.Node) func(*node.Node) (*node.Node, error) {
		return func(doc *node.Node) (*node.Node, error) {
			return f(doc, r), nil
		}
	}

	return []step{
		{"collect sections", reported(passes.CollectRootSections)},
		{"include chapters", func(doc *node.Node) (*node.Node, error) {
			return passes.IncludeChapters(doc, c.ChapterLoader(path), r), nil
		}},
		{"identify spec nodes", plain(passes.IdentifySpecNodes)},
		{"extract heading ids", plain(passes.ExtractHeadingIDs)},
		{"identify callouts", reported(passes.IdentifyCallouts)},
		{"identify old style callouts", plain(passes.IdentifyOldStyleCallouts)},
		{"coalesce spans", plain(passes.CoalesceSpans)},
		{"process grammar rules", reported(passes.ProcessGrammarRules)},
		{"collect lexical grammar", func(doc *node.Node) (*node.Node, error) {
			return doc, passes.CollectLexicalGrammar(doc, c.Grammar, r)
		}},
		{"generate section ids", plain(passes.GenerateSectionIDs)},
		{"build table of contents", plain(passes.BuildTableOfContents)},
	}
}

// Compile reads the root document at path and runs all passes over it.
// Stops at the first pass that returns an error or reaches the fatal diagnostic level.
func (c *Context) Compile(path string) (*node.Node, error) {
	doc, e := c.Reader.ReadFile(path)
	if e != nil {
		return nil, e
	}

	return c.CompileDocument(doc, path)
}

// CompileDocument runs all passes over already parsed root document, chapter paths
// are resolved relative to path.
func (c *Context) CompileDocument(doc *node.Node, path string) (*node.Node, error) {
	for _, s := range c.steps(path) {
		started := time.Now()
		var e error
		doc, e = s.run(doc)
		c.Log.WithFields(logrus.Fields{
			"pass":     s.name,
			"duration": time.Since(started),
		}).Debug("pass done")

		if e == nil {
			e = c.Reporter.Err()
		}
		if e != nil {
			return nil, e
		}
	}

	return doc, nil
}

// ChapterLoader returns loader reading chapters relative to the directory of path.
func (c *Context) ChapterLoader(path string) passes.ChapterLoader {
	dir := filepath.Dir(path)
	return func(target string) ([]*node.Node, error) {
		name := target
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, filepath.FromSlash(target))
		}

		doc, e := c.Reader.ReadFile(name)
		if e != nil {
			return nil, e
		}
		return passes.CollectSections(doc, ChapterLevel, c.Reporter), nil
	}
}
