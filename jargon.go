/*
Package jargon is a compiler for technical specification documents written in extended markdown.

Consists of subpackages:
  - cmd/jargon: console utility building an HTML page from a root markdown file;
  - source: defines source file and source position used for diagnostics;
  - lexer: lexical analyzer used by the grammar block parser;
  - node: typed document tree and the registry of node kinds;
  - transform: type-directed single-pass tree rewriting;
  - diag: diagnostics with severity thresholds;
  - grammar: parser for grammar callout blocks;
  - lexgram: nonterminal registry and expression trees for lexical grammars;
  - markdown: converts markdown files to document trees;
  - passes: structural and semantic passes over document trees;
  - compiler: runs passes in order for a root document and its chapters;
  - render: HTML renderer.

Typical usage is:

1. Create compiler.Context with a diagnostics reporter and a file system.

2. Call compiler.Compile for the root markdown file.

3. Write the resulting document with render.Renderer.WritePage.
*/
package jargon

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	LexerErrors          = 1   // used by lexer
	GrammarErrors        = 101 // used by grammar
	LexicalGrammarErrors = 201 // used by lexgram
	DocumentErrors       = 301 // used by markdown and compiler
	DiagnosticErrors     = 401 // used by diag
	RenderErrors         = 501 // used by render
	CommandErrors        = 601 // used by cmd/jargon
)

// Error is the error type used by jargon subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// HasCode reports whether e is an *Error with the given code.
func HasCode(e error, code int) bool {
	ee, valid := e.(*Error)
	return valid && ee.Code == code
}
