// Package markdown converts markdown files to document trees.
//
// Reader parses CommonMark with optional front matter and produces a Document node
// whose descendants carry positions in the original file.
package markdown

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"github.com/spf13/afero"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/source"
)

// Meta holds recognized front matter fields.
type Meta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// Reader loads markdown files from a file system.
type Reader struct {
	fs afero.Fs
	md goldmark.Markdown
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs, md: goldmark.New()}
}

// Fs returns the file system used by the reader.
func (r *Reader) Fs() afero.Fs {
	return r.fs
}

// ReadFile reads and parses named file. Returns ReadError or FrontMatterError.
func (r *Reader) ReadFile(name string) (*node.Node, error) {
	content, e := afero.ReadFile(r.fs, name)
	if e != nil {
		return nil, readError(name, e)
	}

	return r.Parse(name, content)
}

// Parse converts markdown content to a Document node.
// Front matter title becomes a level 1 heading unless the document starts with one.
func (r *Reader) Parse(name string, content []byte) (*node.Node, error) {
	var meta Meta
	body, e := frontmatter.Parse(bytes.NewReader(content), &meta)
	if e != nil {
		return nil, frontMatterError(name, e)
	}

	src := source.New(name, content)
	if len(body) < len(content) {
		src = source.NewNested(source.NewPos(src, len(content)-len(body)), body)
	}

	tree := r.md.Parser().Parse(text.NewReader(body))
	c := &converter{src: src, text: body}
	doc := node.New(node.Document, c.children(tree)...)
	doc.Pos = source.NewPos(src, 0)

	if meta.Title != "" && !startsWithTitle(doc) {
		title := node.NewHeading(1, node.NewText(meta.Title))
		title.Pos = doc.Pos
		doc.Children = append([]*node.Node{title}, doc.Children...)
	}
	return doc, nil
}

func startsWithTitle(doc *node.Node) bool {
	return len(doc.Children) > 0 && doc.Children[0].Is(node.Heading) && doc.Children[0].Level == 1
}
