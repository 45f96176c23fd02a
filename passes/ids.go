package passes

import (
	"regexp"
	"strings"

	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/transform"
)

const sectionIDPrefix = "sec."

var headingIDRe = regexp.MustCompile(`^((.*[^ ]+)?)[ ]+\[(.*)\]$`)

// ExtractHeadingIDs strips " [id]" suffix from heading texts and assigns "sec.id" identifiers.
// A heading with nothing but the suffix loses its text child.
func ExtractHeadingIDs(doc *node.Node) *node.Node {
	p := transform.NewPass("extract heading ids").On(node.Heading, func(h *node.Node) transform.Result {
		if len(h.Children) == 0 {
			return transform.Unchanged
		}

		last := h.Children[len(h.Children)-1]
		if last.Kind != node.Text {
			return transform.Unchanged
		}

		m := headingIDRe.FindStringSubmatch(last.Text)
		if m == nil {
			return transform.Unchanged
		}

		id := m[3]
		if !strings.HasPrefix(id, sectionIDPrefix) {
			id = sectionIDPrefix + id
		}
		if !h.SetID(id) {
			return transform.Unchanged
		}

		last.Text = strings.TrimSpace(m[1])
		if last.Text == "" {
			h.Children = h.Children[:len(h.Children)-1]
		}
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}

// SectionID returns generated identifier for heading text.
func SectionID(text string) string {
	return strings.ReplaceAll(strings.ToLower("section "+text), " ", "-")
}

// GenerateSectionIDs assigns generated identifiers to section headings that have none.
func GenerateSectionIDs(doc *node.Node) *node.Node {
	p := transform.NewPass("generate section ids").On(node.Section, func(s *node.Node) transform.Result {
		h := s.Children[0]
		h.SetID(SectionID(node.TextOf(h.Children...)))
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}
