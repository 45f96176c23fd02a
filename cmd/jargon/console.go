package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/ava12/jargon/diag"
)

// consoleFormatter prints diagnostics as "severity: location: message" and other
// entries as "level: message key=value ...".
type consoleFormatter struct {
	noColor bool
}

var levelColors = map[logrus.Level]color.Attribute{
	logrus.DebugLevel: color.FgHiBlack,
	logrus.InfoLevel:  color.FgCyan,
	logrus.WarnLevel:  color.FgYellow,
	logrus.ErrorLevel: color.FgRed,
	logrus.FatalLevel: color.FgHiRed,
	logrus.PanicLevel: color.FgHiRed,
}

// fields printed as part of the diagnostic prefix
var diagnosticFields = map[string]bool{
	"severity": true,
	"location": true,
	"file":     true,
	"line":     true,
}

func (f *consoleFormatter) label(entry *logrus.Entry, text string) string {
	c := color.New(levelColors[entry.Level], color.Bold)
	if f.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprint(text)
}

func (f *consoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	sev, isDiag := entry.Data["severity"].(string)
	if isDiag {
		buf.WriteString(f.label(entry, sev))
		buf.WriteString(": ")
		if loc, has := entry.Data["location"]; has && loc != "" {
			fmt.Fprint(buf, loc)
			buf.WriteString(": ")
		}
	} else {
		buf.WriteString(f.label(entry, entry.Level.String()))
		buf.WriteString(": ")
	}
	buf.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if isDiag && (diagnosticFields[k] || k == "kind") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, " %s=%v", k, entry.Data[k])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// consoleOutput returns log destination for stderr and whether colors can be used.
func consoleOutput(noColor bool) (io.Writer, bool) {
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if noColor || !tty {
		return colorable.NewNonColorable(os.Stderr), false
	}
	return colorable.NewColorableStderr(), true
}

// setupLogger configures logger output and format according to conf.
func setupLogger(logger *logrus.Logger, conf Config, colored bool) {
	switch conf.LogFormat {
	case jsonLogFormat:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&consoleFormatter{noColor: conf.NoColor || !colored})
	}

	if conf.DiagnosticLevel == diag.Trace {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}
