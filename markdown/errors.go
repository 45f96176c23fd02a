package markdown

import (
	"github.com/ava12/jargon"
)

// Error codes used by markdown:
const (
	// ReadError indicates a file that cannot be read.
	ReadError = jargon.DocumentErrors + iota

	// FrontMatterError indicates malformed front matter.
	FrontMatterError
)

func readError(name string, e error) *jargon.Error {
	return jargon.FormatError(ReadError, "cannot read %s: %s", name, e)
}

func frontMatterError(name string, e error) *jargon.Error {
	return jargon.FormatError(FrontMatterError, "malformed front matter in %s: %s", name, e)
}
