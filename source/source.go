// Package source defines source files and positions used by diagnostics.
package source

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// Source is a named chunk of text, usually a markdown file or a grammar block.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
	origin        Pos
}

// New creates new Source. content must not be modified afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// NewNested creates Source for a text embedded in another source at origin,
// e.g. the content of a fenced code block. Lines and columns of the nested source
// are reported as positions in the outer source.
func NewNested(origin Pos, content []byte) *Source {
	s := New(origin.SourceName(), content)
	s.origin = origin
	return s
}

// Origin returns position of nested source in the outer source, unknown position for other sources.
func (s *Source) Origin() Pos {
	return s.origin
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol returns 1-based line and column (in runes) for byte offset pos.
// Offsets outside of content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	line, col = s.LocalLineCol(pos)
	if s.origin.IsKnown() {
		p := s.origin.Nested(Pos{pos: pos, line: line, col: col})
		line, col = p.line, p.col
	}
	return
}

// LocalLineCol is like LineCol, but ignores source origin.
func (s *Source) LocalLineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Offset is the reverse of LineCol, col is counted in bytes.
func (s *Source) Offset(line, col int) int {
	if s.origin.IsKnown() {
		if line == s.origin.line {
			col -= s.origin.col - 1
		}
		line -= s.origin.line - 1
	}
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	index := 0
	if s.prevLineIndex >= 0 {
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart := s.lineStarts[index]
		if lineStart == pos {
			return index
		}

		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}

// Pos is a position in a source. Zero value means "unknown position".
type Pos struct {
	src       *Source
	pos       int
	line, col int
}

// NewPos resolves byte offset pos in s to a position.
func NewPos(s *Source, pos int) Pos {
	result := Pos{src: s, pos: pos}
	if s != nil {
		result.line, result.col = s.LineCol(pos)
	}
	return result
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

// LocalCol returns column in p's own source, i.e. the column inside a nested text.
func (p Pos) LocalCol() int {
	if p.src == nil || !p.src.origin.IsKnown() {
		return p.col
	}
	_, col := p.src.LocalLineCol(p.pos)
	return col
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

// IsKnown reports whether the position refers to any source.
func (p Pos) IsKnown() bool {
	return p.src != nil
}

// Nested maps position inner, taken inside a text embedded at p (e.g. a fenced code block
// whose first content line starts at p), to a position in p's source.
func (p Pos) Nested(inner Pos) Pos {
	if !p.IsKnown() {
		return inner
	}
	if inner.line <= 0 {
		return p
	}

	col := inner.col
	if inner.line == 1 {
		col += p.col - 1
	}
	return Pos{src: p.src, pos: p.pos + inner.pos, line: p.line + inner.line - 1, col: col}
}

// String returns position in "name(line)" form, "unknown" for unknown position.
func (p Pos) String() string {
	name := p.SourceName()
	if name == "" {
		return "unknown"
	}
	if p.line <= 0 {
		return name
	}
	return name + "(" + strconv.Itoa(p.line) + ")"
}
