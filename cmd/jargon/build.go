package main

import (
	"html/template"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/render"
)

func (c *rootCommand) buildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <index.md>",
		Short: "Build HTML page from root markdown file (default command)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.build(args[0])
		},
	}
}

func outputName(input string) string {
	ext := filepath.Ext(input)
	return input[:len(input)-len(ext)] + ".html"
}

func (c *rootCommand) build(input string) error {
	started := time.Now()
	ctx := c.newContext()
	doc, e := ctx.Compile(input)
	if e != nil {
		return e
	}

	var tmpl *template.Template
	if c.conf.Template != "" {
		tmpl, e = render.LoadTemplate(c.st.fs, c.conf.Template)
		if e != nil {
			return e
		}
	}

	output := c.conf.Output
	if output == "" {
		output = outputName(input)
	}
	r := &render.Renderer{}
	size, e := r.WritePageFile(c.st.fs, output, tmpl, doc, c.conf.Styles...)
	if e != nil {
		return e
	}

	c.st.logger.WithFields(logrus.Fields{
		"output":       output,
		"size":         humanize.Bytes(uint64(size)),
		"nonterminals": ctx.Grammar.Registry().Len(),
		"warnings":     ctx.Reporter.Count(diag.Warning),
		"errors":       ctx.Reporter.CountAtLeast(diag.Error),
		"elapsed":      time.Since(started).Round(time.Millisecond),
	}).Info("page written")
	return nil
}
