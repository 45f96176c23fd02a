package render

import (
	_ "embed"
	"html/template"
	"io"

	"github.com/spf13/afero"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/node"
)

// Error codes used by render:
const (
	// TemplateError indicates that a page template cannot be read or parsed.
	TemplateError = jargon.RenderErrors + iota

	// WriteError indicates failed page output.
	WriteError
)

//go:embed templates/page.html
var defaultPage string

// PageData is passed to page templates.
type PageData struct {
	// Title is a plain text document title, empty if the document has none.
	Title string
	// TitleHTML is the rendered title heading content.
	TitleHTML template.HTML
	// Content is the rendered document.
	Content template.HTML
	Styles  []string
}

// DefaultTemplate returns built-in page template.
func DefaultTemplate() *template.Template {
	return template.Must(template.New("page").Parse(defaultPage))
}

// LoadTemplate reads page template from fs.
func LoadTemplate(fs afero.Fs, name string) (*template.Template, error) {
	src, e := afero.ReadFile(fs, name)
	if e != nil {
		return nil, jargon.FormatError(TemplateError, "cannot read template %s: %s", name, e.Error())
	}

	t, e := template.New(name).Parse(string(src))
	if e != nil {
		return nil, jargon.FormatError(TemplateError, "invalid template %s: %s", name, e.Error())
	}
	return t, nil
}

// NewPageData renders document and fills page data.
func (r *Renderer) NewPageData(doc *node.Node, styles ...string) PageData {
	data := PageData{
		Content: template.HTML(r.String(doc)),
		Styles:  styles,
	}
	if title := doc.FindChild(node.OfKind(node.TitleHeading)); title != nil {
		data.Title = node.TextOf(title.Children...)
		data.TitleHTML = template.HTML(r.Nodes(title.Children))
	}
	return data
}

// WritePage renders doc as a complete page using tmpl, nil tmpl means the built-in template.
func (r *Renderer) WritePage(w io.Writer, tmpl *template.Template, doc *node.Node, styles ...string) error {
	if tmpl == nil {
		tmpl = DefaultTemplate()
	}
	if e := tmpl.Execute(w, r.NewPageData(doc, styles...)); e != nil {
		return jargon.FormatError(WriteError, "cannot write page: %s", e.Error())
	}
	return nil
}

// WritePageFile writes page to the file name on fs and returns the number of bytes written.
func (r *Renderer) WritePageFile(fs afero.Fs, name string, tmpl *template.Template, doc *node.Node, styles ...string) (int64, error) {
	f, e := fs.Create(name)
	if e != nil {
		return 0, jargon.FormatError(WriteError, "cannot create %s: %s", name, e.Error())
	}

	cw := &countingWriter{w: f}
	e = r.WritePage(cw, tmpl, doc, styles...)
	if ce := f.Close(); e == nil && ce != nil {
		e = jargon.FormatError(WriteError, "cannot write %s: %s", name, ce.Error())
	}
	return cw.n, e
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, e := cw.w.Write(p)
	cw.n += int64(n)
	return n, e
}
