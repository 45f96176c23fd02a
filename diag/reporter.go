package diag

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/source"
)

// Error codes used by diag:
const (
	// FatalDiagnosticError indicates that a diagnostic reached the fatal level.
	FatalDiagnosticError = jargon.DiagnosticErrors + iota

	// UnknownSeverityError indicates wrong severity name.
	UnknownSeverityError
)

const (
	DefaultMinLevel   = Note
	DefaultFatalLevel = Fatal
)

// Reporter filters, counts and logs diagnostics of a single compilation run.
// Every diagnostic is counted, only ones at or above MinLevel are logged.
// The first diagnostic at or above FatalLevel is kept as Err, the pipeline stops once Err is set.
type Reporter struct {
	MinLevel   Severity
	FatalLevel Severity

	log    logrus.FieldLogger
	counts [Fatal + 1]int
	err    *jargon.Error
	hooks  []func(Diagnostic)
}

// NewReporter creates reporter with default levels.
// A nil logger discards surfaced diagnostics.
func NewReporter(log logrus.FieldLogger) *Reporter {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Reporter{
		MinLevel:   DefaultMinLevel,
		FatalLevel: DefaultFatalLevel,
		log:        log,
	}
}

// OnReport adds a callback receiving every surfaced diagnostic.
func (r *Reporter) OnReport(hook func(Diagnostic)) {
	r.hooks = append(r.hooks, hook)
}

// Report records a diagnostic with the default severity of its kind.
func (r *Reporter) Report(kind Kind, pos source.Pos, msg string, params ...any) {
	r.ReportSeverity(kind.Severity(), kind, pos, msg, params...)
}

// ReportSeverity records a diagnostic with explicit severity.
func (r *Reporter) ReportSeverity(sev Severity, kind Kind, pos source.Pos, msg string, params ...any) {
	if sev < Trace {
		sev = Trace
	} else if sev > Fatal {
		sev = Fatal
	}
	r.counts[sev]++

	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	d := Diagnostic{Severity: sev, Kind: kind, Pos: pos, Message: msg}

	if sev >= r.MinLevel {
		fields := logrus.Fields{
			"severity": sev.String(),
			"kind":     string(kind),
			"location": pos.String(),
		}
		if pos.IsKnown() {
			fields["file"] = pos.SourceName()
			fields["line"] = pos.Line()
		}
		r.log.WithFields(fields).Log(sev.logLevel(), msg)
		for _, h := range r.hooks {
			h(d)
		}
	}

	if sev >= r.FatalLevel && r.err == nil {
		r.err = jargon.FormatErrorPos(pos, FatalDiagnosticError, "%s: %s: %s", sev, pos, msg)
	}
}

// Count returns number of diagnostics of given severity, including filtered ones.
func (r *Reporter) Count(sev Severity) int {
	if sev < Trace || sev > Fatal {
		return 0
	}
	return r.counts[sev]
}

// CountAtLeast returns number of diagnostics with severity sev or higher.
func (r *Reporter) CountAtLeast(sev Severity) int {
	total := 0
	for s := sev; s <= Fatal; s++ {
		total += r.Count(s)
	}
	return total
}

// Err returns FatalDiagnosticError for the first diagnostic that reached fatal level or nil.
func (r *Reporter) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}
