package passes

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/ava12/jargon/diag"
	"github.com/ava12/jargon/markdown"
	"github.com/ava12/jargon/node"
)

type recorder struct {
	*diag.Reporter
	hook  *logtest.Hook
	diags []diag.Diagnostic
}

func newRecorder() *recorder {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	r := &recorder{Reporter: diag.NewReporter(logger), hook: hook}
	r.MinLevel = diag.Trace
	r.OnReport(func(d diag.Diagnostic) {
		r.diags = append(r.diags, d)
	})
	return r
}

func (r *recorder) kinds() []diag.Kind {
	var result []diag.Kind
	for _, d := range r.diags {
		if d.Kind != diag.Progress {
			result = append(result, d.Kind)
		}
	}
	return result
}

func parse(t *testing.T, name, src string) *node.Node {
	t.Helper()
	doc, e := markdown.NewReader(afero.NewMemMapFs()).Parse(name, []byte(src))
	require.NoError(t, e)
	return doc
}

func text(s string) *node.Node {
	return node.NewText(s)
}
