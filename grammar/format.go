package grammar

import (
	"strings"

	"github.com/ava12/jargon/node"
)

// Format returns canonical text of productions: each production head on its own line
// followed by indented "=>" alternatives. Parsing the result gives an equal tree.
func Format(productions []*node.Node) string {
	var sb strings.Builder
	for _, p := range productions {
		writeProduction(&sb, p)
	}
	return sb.String()
}

// FormatExpr returns text of a single grammar expression.
func FormatExpr(n *node.Node) string {
	var sb strings.Builder
	writeExpr(&sb, n)
	return sb.String()
}

func writeProduction(sb *strings.Builder, p *node.Node) {
	sb.WriteString(p.Children[0].GetText())
	sb.WriteByte('\n')
	for _, alt := range p.Children[1].Children {
		sb.WriteString("  => ")
		writeExpr(sb, alt)
		sb.WriteByte('\n')
	}
}

func writeList(sb *strings.Builder, nodes []*node.Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		writeExpr(sb, n)
	}
}

func writeExpr(sb *strings.Builder, n *node.Node) {
	switch n.Kind {
	case node.Alternative, node.GrammarSequence:
		writeList(sb, n.Children, " ")
	case node.Or:
		writeList(sb, n.Children, " | ")
	case node.Difference:
		writeList(sb, n.Children, " - ")
	case node.VariableIntroducer:
		writeList(sb, n.Children, ":")
	case node.ZeroOrMore, node.OneOrMore, node.Optional:
		writeList(sb, n.Children, " ")
		sb.WriteString(n.Kind.Info().Post)
	case node.ParenthesizedGroup:
		sb.WriteByte('(')
		writeList(sb, n.Children, " ")
		sb.WriteByte(')')
	case node.CharacterClass:
		sb.WriteByte('[')
		writeList(sb, n.Children, "")
		sb.WriteByte(']')
	case node.CharacterRange:
		writeList(sb, n.Children, "-")
	case node.CharacterClassCharacter:
		sb.WriteString(escapeClassChar(n.GetText()))
	case node.CodeSpan:
		sb.WriteString(quoteTerminal(n.GetText()))
	default:
		sb.WriteString(n.GetText())
	}
}

func quoteTerminal(text string) string {
	for _, q := range []string{"`", "'", `"`} {
		if text == "" && q != `"` {
			continue
		}
		if !strings.Contains(text, q) {
			return q + text + q
		}
	}
	return "`" + text + "`"
}

func escapeClassChar(c string) string {
	switch c {
	case "]", "[", "\\", "-", " ":
		return "\\" + c
	case "\n":
		return `\n`
	case "\r":
		return `\r`
	case "\t":
		return `\t`
	}
	return c
}
