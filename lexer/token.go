package lexer

import (
	"github.com/ava12/jargon/source"
)

// Token is a lexeme fetched by Lexer.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
	lineStart bool
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

// LocalCol returns token column inside its own source, see source.Pos.LocalCol.
func (t *Token) LocalCol() int {
	return t.pos.LocalCol()
}

// LineStart reports whether no other token precedes this one on its line.
func (t *Token) LineStart() bool {
	return t.lineStart
}

func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType: tokenType, typeName: typeName, text: text, pos: pos}
}

const (
	EofTokenType = -2
	EofTokenName = "-end-of-file-"
)

func EofToken(s *source.Source) *Token {
	var pos source.Pos
	if s != nil {
		pos = source.NewPos(s, s.Len())
	}
	return &Token{tokenType: EofTokenType, typeName: EofTokenName, pos: pos, lineStart: true}
}

func (t *Token) IsEof() bool {
	return t.tokenType == EofTokenType
}
