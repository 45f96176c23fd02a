package main

import (
	"io"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ava12/jargon/compiler"
)

// state holds process-wide dependencies, replaced in tests.
type state struct {
	fs      afero.Fs
	stdout  io.Writer
	logger  *logrus.Logger
	console func(noColor bool) (io.Writer, bool)
}

func newState() *state {
	return &state{
		fs:      afero.NewOsFs(),
		stdout:  colorable.NewColorableStdout(),
		logger:  logrus.New(),
		console: consoleOutput,
	}
}

type rootCommand struct {
	st   *state
	conf Config
	cmd  *cobra.Command
}

func newRootCommand(st *state) *rootCommand {
	c := &rootCommand{st: st}
	build := c.buildCommand()
	c.cmd = &cobra.Command{
		Use:   "jargon <index.md>",
		Short: "Compiles markdown specification into an HTML page",
		Long: "Compiles markdown specification into an HTML page.\n\n" +
			"Chapters listed in the contents section are included, grammar callouts are parsed\n" +
			"and lexical grammar is checked for undefined nonterminals.\n" +
			"Settings are read from the --config file, JARGON_* environment variables and flags.",
		Args:              build.Args,
		RunE:              build.RunE,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().AddFlagSet(configFlagSet())
	c.cmd.AddCommand(build, c.grammarCommand(), c.dumpCommand())
	return c
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	conf, e := loadConfig(c.st.fs, cmd.Flags())
	if e != nil {
		return e
	}
	c.conf = conf

	out, colored := c.st.console(conf.NoColor)
	c.st.logger.SetOutput(out)
	setupLogger(c.st.logger, conf, colored)
	c.st.logger.WithField("config", conf).Debug("configuration loaded")
	return nil
}

func (c *rootCommand) newContext() *compiler.Context {
	ctx := compiler.NewContext(c.st.fs, c.st.logger)
	ctx.Reporter.MinLevel = c.conf.DiagnosticLevel
	ctx.Reporter.FatalLevel = c.conf.FatalLevel
	return ctx
}
