package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/grammar"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/passes"
	"github.com/ava12/jargon/source"
)

func (c *rootCommand) grammarCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grammar <file>",
		Short: "Check standalone lexical grammar file and print it in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.grammar(args[0])
		},
	}
}

func (c *rootCommand) grammar(name string) error {
	content, e := afero.ReadFile(c.st.fs, name)
	if e != nil {
		return jargon.FormatError(InputError, "cannot read %s: %s", name, e.Error())
	}

	productions, e := grammar.Parse(source.New(name, content))
	if e != nil {
		return e
	}
	if _, e = fmt.Fprint(c.st.stdout, grammar.Format(productions)); e != nil {
		return jargon.FormatError(OutputError, "cannot write grammar: %s", e.Error())
	}

	ctx := c.newContext()
	doc := node.New(node.Document, node.New(node.LexicalCallout, node.New(node.PreBlock, productions...)))
	if e = passes.CollectLexicalGrammar(doc, ctx.Grammar, ctx.Reporter); e != nil {
		return e
	}
	return ctx.Reporter.Err()
}
