package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/node"
)

func (c *rootCommand) dumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <index.md>",
		Short: "Print compiled document tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, e := c.newContext().Compile(args[0])
			if e != nil {
				return e
			}
			if _, e = fmt.Fprint(c.st.stdout, node.DumpTree(doc)); e != nil {
				return jargon.FormatError(OutputError, "cannot write tree: %s", e.Error())
			}
			return nil
		},
	}
}
