/*
jargon is a console utility compiling markdown specification into an HTML page.
Usage is

	jargon [build] [flags] <index.md>
	jargon grammar [flags] <file>
	jargon dump [flags] <index.md>

build (default) compiles root file with its chapters and writes HTML page,
default output name is the input name with .html suffix;

grammar parses a standalone lexical grammar file, prints it in canonical form
and reports undefined nonterminals;

dump prints compiled document tree.

Flags can also be set in a YAML file passed with --config or with JARGON_* environment
variables, e.g. JARGON_FATAL_LEVEL=warning. Run jargon --help for the list of flags.
*/
package main

import (
	"os"

	"github.com/ava12/jargon"
)

func main() {
	st := newState()
	if e := newRootCommand(st).cmd.Execute(); e != nil {
		st.logger.Error(e.Error())
		if _, valid := e.(*jargon.Error); valid {
			os.Exit(3)
		}
		os.Exit(2)
	}
}
