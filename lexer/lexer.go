// Package lexer defines lexical analyzer.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/jargon"
	"github.com/ava12/jargon/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. unterminated literals).
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = EofTokenType - 1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = jargon.LexerErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, may be any non-negative value. ErrorTokenType is treated specially.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Lexer performs lexical analysis of a Cursor's source using regexp.Regexp.
// Lexer itself is immutable and stateless, all state is kept by Cursor.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace or comment),
// in this case lexer tries to fetch a token again at new position.
// Every byte of source must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or that has token type < 0 is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

// Cursor holds current position in a source.
type Cursor struct {
	src      *source.Source
	pos      int
	lastLine int
}

func NewCursor(s *source.Source) *Cursor {
	return &Cursor{src: s}
}

func (c *Cursor) Source() *source.Source {
	return c.src
}

func (c *Cursor) Pos() int {
	return c.pos
}

// Advance skips size bytes; used by parsers that scan raw text themselves.
func (c *Cursor) Advance(size int) {
	c.pos += size
	if c.pos > c.src.Len() {
		c.pos = c.src.Len()
	}
}

// Rest returns unread content.
func (c *Cursor) Rest() []byte {
	return c.src.Content()[c.pos:]
}

func wrongCharError(s *source.Source, content []byte, pos int) *jargon.Error {
	r, _ := utf8.DecodeRune(content)
	msg := fmt.Sprintf("wrong char \"%c\" (u+%x)", r, r)
	return jargon.FormatErrorPos(source.NewPos(s, pos), WrongCharError, msg)
}

func wrongTokenError(t *Token) *jargon.Error {
	return jargon.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func (l *Lexer) matchToken(c *Cursor) (*Token, int, error) {
	content := c.Rest()
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(c.src, content, c.pos)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		tokenType := ErrorTokenType
		typeName := ErrorTokenName
		if len(l.types) >= (i >> 1) {
			tokenType = l.types[(i>>1)-1].Type
			typeName = l.types[(i>>1)-1].TypeName
		}
		token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), source.NewPos(c.src, c.pos+match[i]))
		if tokenType == ErrorTokenType {
			return nil, 0, wrongTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Next fetches token starting at current cursor position and advances the cursor.
// Returns nil token and jargon.Error and does not make any changes if there is a lexical error.
// Returns EoF token if the whole source is consumed.
func (l *Lexer) Next(c *Cursor) (*Token, error) {
	for {
		if c.pos >= c.src.Len() {
			return EofToken(c.src), nil
		}

		t, advance, e := l.matchToken(c)
		if e != nil {
			return nil, e
		}

		c.pos += advance
		if t != nil {
			t.lineStart = t.Line() != c.lastLine
			c.lastLine = t.Line()
			return t, nil
		}
	}
}
