package passes

import (
	"github.com/ava12/jargon"
	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/grammar"
	"github.com/ava12/jargon/lexgram"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/source"
	"github.com/ava12/jargon/transform"
)

// errorPos returns position of e in src, or def if e has no position.
func errorPos(src *source.Source, e error, def source.Pos) source.Pos {
	je, valid := e.(*jargon.Error)
	if !valid || je.Line <= 0 {
		return def
	}
	return source.NewPos(src, src.Offset(je.Line, je.Col))
}

// ProcessGrammarRules parses the first code block of each grammar callout and replaces it
// with PreBlock node holding productions. A block that fails to parse is reported
// and left as is. Other code blocks of the callout are reported and left as is.
func ProcessGrammarRules(doc *node.Node, r *diag.Reporter) *node.Node {
	p := transform.NewPass("process grammar rules").On(node.GrammarCallout, func(n *node.Node) transform.Result {
		found := false
		for i, c := range n.Children {
			if !c.Is(node.CodeBlock) {
				continue
			}
			if found {
				r.Report(diag.MultipleMatches, c.Pos, "found multiple code blocks in grammar callout, only the first one is used")
				continue
			}

			found = true
			src := source.NewNested(c.Pos, []byte(c.GetText()))
			productions, e := grammar.Parse(src)
			if e != nil {
				r.Report(diag.GrammarParseFailure, errorPos(src, e, c.Pos), "%s", e)
				continue
			}

			pre := node.New(node.PreBlock, productions...)
			pre.Pos = c.Pos
			n.Children[i] = pre
		}
		return transform.Unchanged
	})
	return transform.Run(doc, p)
}

// CollectLexicalGrammar defines productions of lexical grammar callouts in the registry of c.
// Productions failing to compile are reported, undefined nonterminals are reported once
// all callouts are processed. Returns the first duplicate definition error.
func CollectLexicalGrammar(doc *node.Node, c *lexgram.Compiler, r *diag.Reporter) error {
	var result error
	compiled := map[*node.Node]bool{}
	p := transform.NewPass("collect lexical grammar").On(node.Production, func(n *node.Node) transform.Result {
		if compiled[n] {
			return transform.Unchanged
		}

		compiled[n] = true
		_, e := c.Production(n)
		switch {
		case e == nil:
		case jargon.HasCode(e, lexgram.DuplicateDefinitionError):
			r.Report(diag.DuplicateDefinition, n.Pos, "%s", e)
			if result == nil {
				result = e
			}
		default:
			r.Report(diag.LexicalGrammarFailure, n.Pos, "%s", e)
		}
		return transform.Unchanged
	})

	lexical := transform.NewPass("find lexical callouts").On(node.LexicalCallout, func(n *node.Node) transform.Result {
		transform.Tree(n, p)
		return transform.Unchanged
	})
	transform.Run(doc, lexical)

	for _, e := range c.Registry().Undefined() {
		r.Report(diag.UndefinedNonterminal, e.ReferencedAt, "nonterminal %s is not defined", e.Name)
	}
	return result
}
