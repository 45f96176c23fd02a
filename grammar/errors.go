package grammar

import (
	"github.com/ava12/jargon"
	"github.com/ava12/jargon/lexer"
)

// Error codes used by grammar parser:
const (
	// UnexpectedEofError indicates that a production or an expression is incomplete.
	UnexpectedEofError = jargon.GrammarErrors + iota

	// UnexpectedTokenError indicates a token that cannot appear at this position.
	UnexpectedTokenError

	// UnterminatedClassError indicates a character class with no closing bracket.
	UnterminatedClassError

	// EmptyClassError indicates a character class with no characters.
	EmptyClassError
)

func eofError(t *lexer.Token) *jargon.Error {
	return jargon.FormatErrorPos(t, UnexpectedEofError, "unexpected end of grammar")
}

func unexpectedTokenError(t *lexer.Token) *jargon.Error {
	return jargon.FormatErrorPos(t, UnexpectedTokenError, "unexpected %s %q", t.TypeName(), t.Text())
}

func unterminatedClassError(t *lexer.Token) *jargon.Error {
	return jargon.FormatErrorPos(t, UnterminatedClassError, "unterminated character class")
}

func emptyClassError(t *lexer.Token) *jargon.Error {
	return jargon.FormatErrorPos(t, EmptyClassError, "empty character class")
}
