package diag

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/source"
)

func TestParseSeverity(t *testing.T) {
	for i, name := range []string{"trace", "Note", " WARNING ", "error", "fatal"} {
		s, e := ParseSeverity(name)
		require.NoError(t, e)
		assert.Equal(t, Severity(i), s)
	}

	_, e := ParseSeverity("verbose")
	assert.True(t, jargon.HasCode(e, UnknownSeverityError))

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, Warning, s)
	text, _ := s.MarshalText()
	assert.Equal(t, "warning", string(text))
}

func TestFilteredDiagnosticsAreCounted(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	r := NewReporter(logger)

	src := source.New("index.md", []byte("# Title\n\n## Skipped\n"))
	r.Report(Progress, source.NewPos(src, 0), "found callout: %s", "Note")
	r.Report(HeadingLevelSkip, source.NewPos(src, 9), "heading level jumped from %d to %d", 2, 4)

	assert.Equal(t, 1, r.Count(Trace))
	assert.Equal(t, 1, r.Count(Warning))
	assert.Equal(t, 1, r.CountAtLeast(Note))
	require.Len(t, hook.AllEntries(), 1)

	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "heading level jumped from 2 to 4", entry.Message)
	assert.Equal(t, "index.md", entry.Data["file"])
	assert.Equal(t, 3, entry.Data["line"])
	assert.Equal(t, "heading-level-skip", entry.Data["kind"])
	assert.Equal(t, "index.md(3)", entry.Data["location"])
	assert.NoError(t, r.Err())
}

func TestFatalLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := NewReporter(logger)
	r.FatalLevel = Error

	var surfaced []Diagnostic
	r.OnReport(func(d Diagnostic) { surfaced = append(surfaced, d) })

	r.Report(UndefinedNonterminal, source.Pos{}, "undefined nonterminal Foo")
	require.NoError(t, r.Err())

	src := source.New("grammar.md", []byte("```.lexical\nFoo ::\n```\n"))
	r.Report(GrammarParseFailure, source.NewPos(src, 12), "unexpected token")
	r.Report(DuplicateDefinition, source.NewPos(src, 0), "second failure")

	e := r.Err()
	require.Error(t, e)
	assert.True(t, jargon.HasCode(e, FatalDiagnosticError))
	assert.Contains(t, e.Error(), "error: grammar.md(2): unexpected token")
	assert.Equal(t, 2, r.Count(Error))
	assert.Len(t, hook.AllEntries(), 3)
	require.Len(t, surfaced, 3)
	assert.Equal(t, "warning: unknown: undefined nonterminal Foo", surfaced[0].String())
	assert.NotContains(t, hook.AllEntries()[0].Data, "file")
}

func TestMinLevel(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	r := NewReporter(logger)
	r.MinLevel = Error

	r.Report(MissingTableOfContents, source.Pos{}, "no table of contents section found")
	r.ReportSeverity(Fatal, ChapterLoadFailure, source.Pos{}, "cannot read %s", "ch.md")

	assert.Equal(t, 1, r.Count(Warning))
	assert.Equal(t, 1, r.Count(Fatal))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "fatal", hook.LastEntry().Data["severity"])
	assert.Error(t, r.Err())
}

func TestNilLogger(t *testing.T) {
	r := NewReporter(nil)
	r.Report(ChapterLoadFailure, source.Pos{}, "missing")
	assert.Equal(t, 1, r.Count(Error))
	assert.Equal(t, Error, Kind("unknown-kind").Severity())
}
