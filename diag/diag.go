// Package diag implements compiler diagnostics with severity thresholds.
package diag

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/source"
)

type Severity int

const (
	Trace Severity = iota
	Note
	Warning
	Error
	Fatal
)

var severityNames = []string{"trace", "note", "warning", "error", "fatal"}

func (s Severity) String() string {
	if s < Trace || s > Fatal {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity converts case-insensitive severity name to Severity.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Trace, jargon.FormatError(UnknownSeverityError, "unknown severity %q", name)
}

// UnmarshalText allows severities in config files and environment.
func (s *Severity) UnmarshalText(text []byte) error {
	v, e := ParseSeverity(string(text))
	if e == nil {
		*s = v
	}
	return e
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// logrus level used to log diagnostics of given severity; never logrus.FatalLevel,
// the run is stopped by the caller.
func (s Severity) logLevel() logrus.Level {
	switch s {
	case Trace:
		return logrus.DebugLevel
	case Note:
		return logrus.InfoLevel
	case Warning:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}

// Kind identifies a diagnosed condition.
type Kind string

const (
	GrammarParseFailure     Kind = "grammar-parse-failure"
	LexicalGrammarFailure   Kind = "lexical-grammar-failure"
	HeadingLevelSkip        Kind = "heading-level-skip"
	DuplicateDefinition     Kind = "duplicate-definition"
	UndefinedNonterminal    Kind = "undefined-nonterminal"
	MissingTableOfContents  Kind = "missing-table-of-contents"
	MultipleTableOfContents Kind = "multiple-table-of-contents"
	ChapterLoadFailure      Kind = "chapter-load-failure"
	MultipleMatches         Kind = "multiple-matches"
	Progress                Kind = "progress"
)

var defaultSeverities = map[Kind]Severity{
	GrammarParseFailure:     Error,
	LexicalGrammarFailure:   Error,
	HeadingLevelSkip:        Warning,
	DuplicateDefinition:     Error,
	UndefinedNonterminal:    Warning,
	MissingTableOfContents:  Warning,
	MultipleTableOfContents: Warning,
	ChapterLoadFailure:      Error,
	MultipleMatches:         Warning,
	Progress:                Trace,
}

// Severity returns the severity diagnostics of this kind are reported with.
func (k Kind) Severity() Severity {
	s, has := defaultSeverities[k]
	if !has {
		return Error
	}
	return s
}

// Diagnostic is a single reported condition.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Pos      source.Pos
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Pos.String() + ": " + d.Message
}
