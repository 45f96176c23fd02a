package test

import (
	"testing"

	"github.com/spf13/afero"
)

// MemFs returns in-memory file system holding files, keys are file names.
func MemFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		if e := afero.WriteFile(fs, name, []byte(content), 0o644); e != nil {
			fatalf(t, "cannot write %s: %s", name, e)
		}
	}
	return fs
}
