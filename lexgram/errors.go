package lexgram

import (
	"github.com/ava12/jargon"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/source"
)

// Error codes used by lexgram:
const (
	// DuplicateDefinitionError indicates a second definition of a nonterminal.
	DuplicateDefinitionError = jargon.LexicalGrammarErrors + iota

	// UnsupportedNodeError indicates a grammar node that has no lexical meaning (e.g. untyped variable).
	UnsupportedNodeError

	// InvalidRangeError indicates a character range with wrong bounds.
	InvalidRangeError
)

func duplicateDefinitionError(pos source.Pos, e *Entry) *jargon.Error {
	return jargon.FormatErrorPos(pos, DuplicateDefinitionError, "nonterminal %s is already defined at %s", e.Name, e.DefinedAt)
}

func unsupportedNodeError(n *node.Node) *jargon.Error {
	return jargon.FormatErrorPos(n.Pos, UnsupportedNodeError, "%s %q cannot be used in lexical grammar", n.Kind, n.GetText())
}

func invalidRangeError(n *node.Node) *jargon.Error {
	return jargon.FormatErrorPos(n.Pos, InvalidRangeError, "invalid character range %q", n.GetText())
}
