// Package grammar parses the rules language of grammar callouts.
//
// A rules text is a sequence of productions. A production is a nonterminal followed
// either by "=>" alternatives (new style) or by an optional definer (":", ":=", "=")
// and "|"-separated alternatives optionally terminated with ";" (old style):
//
//	Number
//	  => Digit+ ("." Digit+)?
//	Digit : [0-9] ;
//
// Expressions consist of nonterminals (Name), variables (name), typed variables (name:Type),
// quoted terminals (`x`, 'x', "x"), groups in parentheses with "|" alternatives,
// character classes ([a-z_]), block comments (/* ... */) and postfix operators "*", "+", "?".
// "A - B" denotes a difference. Line comments start with "//".
//
// A nonterminal that is the first token on its line and is not indented past the head
// of the current production starts a new production.
package grammar

import (
	"regexp"
	"unicode/utf8"

	"github.com/ava12/jargon/lexer"
	"github.com/ava12/jargon/node"
	"github.com/ava12/jargon/source"
)

const (
	commentTok = "comment"
	nonTermTok = "nonterminal"
	varTok     = "variable"
	termTok    = "terminal"
	opTok      = "op"
	wrongTok   = ""
)

const (
	newDefOp    = "=>"
	colonOp     = ":"
	assignOp    = ":="
	equOp       = "="
	pipeOp      = "|"
	semicolonOp = ";"
	lParenOp    = "("
	rParenOp    = ")"
	starOp      = "*"
	plusOp      = "+"
	questionOp  = "?"
	minusOp     = "-"
	lSquareOp   = "["
)

var (
	atomTypes    = []string{nonTermTok, varTok, termTok, commentTok, lParenOp, lSquareOp}
	postfixOps   = []string{starOp, plusOp, questionOp}
	oldDefiners  = []string{colonOp, assignOp, equOp}
	classEscapes = map[rune]string{'n': "\n", 'r': "\r", 't': "\t"}
)

var rulesLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: 1, TypeName: commentTok},
		{Type: 2, TypeName: nonTermTok},
		{Type: 3, TypeName: varTok},
		{Type: 4, TypeName: termTok},
		{Type: 5, TypeName: opTok},
		{Type: lexer.ErrorTokenType, TypeName: wrongTok},
	}

	re := regexp.MustCompile(
		`^(?:\s+|//[^\n]*|` +
			`(/\*[\s\S]*?\*/)|` +
			`([A-Z][A-Za-z0-9_]*)|` +
			`([a-z][A-Za-z0-9_]*)|` +
			"(`[^`]+`|'[^']+'|\"[^\"]*\")|" +
			`(=>|:=|[:=|;()*+?\[-])|` +
			"(/\\*[^\\n]*|[`'\"][^\\n]*))")

	rulesLexer = lexer.New(re, tokenTypes)
}

type parseContext struct {
	cur        *lexer.Cursor
	savedToken *lexer.Token
	head       *lexer.Token
	depth      int
}

// ParseString parses rules text and returns Production nodes on success.
// Returns nil and jargon.Error on error.
func ParseString(name, content string) ([]*node.Node, error) {
	return Parse(source.New(name, []byte(content)))
}

// Parse parses rules text and returns Production nodes on success.
// Each production has exactly two children: Definition(MetaTypeNode) and AlternativeList.
// Returns nil and jargon.Error on error.
func Parse(s *source.Source) ([]*node.Node, error) {
	c := &parseContext{cur: lexer.NewCursor(s)}
	return c.parse()
}

func (c *parseContext) parse() ([]*node.Node, error) {
	var result []*node.Node
	for {
		t, e := c.fetch([]string{nonTermTok, lexer.EofTokenName}, true, nil)
		if e != nil {
			return nil, e
		}
		if t.IsEof() {
			return result, nil
		}

		p, e := c.parseProduction(t)
		if e != nil {
			return nil, e
		}
		result = append(result, p)
	}
}

func (c *parseContext) put(t *lexer.Token) {
	if c.savedToken != nil {
		panic("cannot put " + t.TypeName() + " token: already put " + c.savedToken.TypeName())
	}

	c.savedToken = t
}

func (c *parseContext) next() (*lexer.Token, error) {
	t := c.savedToken
	if t != nil {
		c.savedToken = nil
		return t, nil
	}

	return rulesLexer.Next(c.cur)
}

func matches(t *lexer.Token, types []string) bool {
	for _, typ := range types {
		if t.TypeName() == typ || (t.TypeName() == opTok && t.Text() == typ) {
			return true
		}
	}
	return false
}

func unexpected(t *lexer.Token) error {
	if t.IsEof() {
		return eofError(t)
	}
	return unexpectedTokenError(t)
}

// fetch returns next token if it matches any of types (token type names or operators).
// Otherwise returns an error if strict is set, or puts the token back and returns nil.
func (c *parseContext) fetch(types []string, strict bool, e error) (*lexer.Token, error) {
	if e != nil {
		return nil, e
	}

	t, e := c.next()
	if e != nil {
		return nil, e
	}

	if matches(t, types) {
		return t, nil
	}

	if strict {
		return nil, unexpected(t)
	}

	c.put(t)
	return nil, nil
}

func (c *parseContext) fetchOne(typ string, strict bool, e error) (*lexer.Token, error) {
	return c.fetch([]string{typ}, strict, e)
}

func (c *parseContext) skipOne(typ string, e error) error {
	_, e = c.fetchOne(typ, true, e)
	return e
}

func (c *parseContext) isBoundary(t *lexer.Token) bool {
	return c.depth == 0 && t != c.head && t.TypeName() == nonTermTok &&
		t.LineStart() && t.LocalCol() <= c.head.LocalCol()
}

func newNode(kind node.Kind, t *lexer.Token, children ...*node.Node) *node.Node {
	n := node.New(kind, children...)
	n.Pos = t.Pos()
	return n
}

func newTextNode(kind node.Kind, t *lexer.Token, text string) *node.Node {
	leaf := node.NewText(text)
	leaf.Pos = t.Pos()
	return newNode(kind, t, leaf)
}

func (c *parseContext) parseProduction(head *lexer.Token) (*node.Node, error) {
	c.head = head
	def := newNode(node.Definition, head, newTextNode(node.MetaTypeNode, head, head.Text()))
	alts := newNode(node.AlternativeList, head)

	t, e := c.fetchOne(newDefOp, false, nil)
	if t != nil {
		for t != nil && e == nil {
			var alt *node.Node
			alt, e = c.parseAlternative(t)
			if e == nil {
				alts.Children = append(alts.Children, alt)
				t, e = c.fetchOne(newDefOp, false, nil)
			}
		}
	} else {
		_, e = c.fetch(oldDefiners, false, e)
		_, e = c.fetchOne(pipeOp, false, e)
		t = head
		for t != nil && e == nil {
			var alt *node.Node
			alt, e = c.parseAlternative(t)
			if e == nil {
				alts.Children = append(alts.Children, alt)
				t, e = c.fetchOne(pipeOp, false, nil)
			}
		}
		_, e = c.fetchOne(semicolonOp, false, e)
	}
	if e != nil {
		return nil, e
	}

	return newNode(node.Production, head, def, alts), nil
}

func (c *parseContext) parseAlternative(t *lexer.Token) (*node.Node, error) {
	seq, e := c.parseSequence()
	if e != nil {
		return nil, e
	}

	return newNode(node.Alternative, t, seq), nil
}

func (c *parseContext) parseSequence() (*node.Node, error) {
	var terms []*node.Node
	for {
		t, e := c.fetch(atomTypes, false, nil)
		if e != nil {
			return nil, e
		}

		if t == nil || c.isBoundary(t) {
			if t != nil {
				c.put(t)
			}
			break
		}

		term, e := c.parseTerm(t)
		if e != nil {
			return nil, e
		}

		terms = append(terms, term)
	}

	switch len(terms) {
	case 0:
		t, e := c.next()
		if e != nil {
			return nil, e
		}
		return nil, unexpected(t)

	case 1:
		return terms[0], nil
	}

	seq := node.New(node.GrammarSequence, terms...)
	seq.Pos = terms[0].Pos
	return seq, nil
}

func (c *parseContext) parseOr() (*node.Node, error) {
	seq, e := c.parseSequence()
	if e != nil {
		return nil, e
	}

	t, e := c.fetchOne(pipeOp, false, nil)
	if t == nil {
		return seq, e
	}

	or := newNode(node.Or, t, seq)
	or.Pos = seq.Pos
	for t != nil && e == nil {
		seq, e = c.parseSequence()
		if e == nil {
			or.Children = append(or.Children, seq)
			t, e = c.fetchOne(pipeOp, false, nil)
		}
	}
	if e != nil {
		return nil, e
	}

	return or, nil
}

func (c *parseContext) parseTerm(first *lexer.Token) (*node.Node, error) {
	left, e := c.parsePostfix(first)
	t, e := c.fetchOne(minusOp, false, e)
	if e != nil || t == nil {
		return left, e
	}

	next, e := c.fetch(atomTypes, true, nil)
	if e != nil {
		return nil, e
	}

	right, e := c.parsePostfix(next)
	if e != nil {
		return nil, e
	}

	return newNode(node.Difference, t, left, right), nil
}

func (c *parseContext) parsePostfix(first *lexer.Token) (*node.Node, error) {
	n, e := c.parseAtom(first)
	for e == nil {
		var t *lexer.Token
		t, e = c.fetch(postfixOps, false, nil)
		if t == nil {
			break
		}

		kind := node.Optional
		switch t.Text() {
		case starOp:
			kind = node.ZeroOrMore
		case plusOp:
			kind = node.OneOrMore
		}
		n = newNode(kind, t, n)
	}
	if e != nil {
		return nil, e
	}

	return n, nil
}

func (c *parseContext) parseAtom(t *lexer.Token) (*node.Node, error) {
	switch t.TypeName() {
	case nonTermTok:
		return newTextNode(node.MetaTypeNode, t, t.Text()), nil

	case varTok:
		v := newTextNode(node.MetaValue, t, t.Text())
		colon, e := c.fetchOne(colonOp, false, nil)
		if e != nil || colon == nil {
			return v, e
		}

		typ, e := c.fetchOne(nonTermTok, true, nil)
		if e != nil {
			return nil, e
		}
		return newNode(node.VariableIntroducer, t, v, newTextNode(node.MetaTypeNode, typ, typ.Text())), nil

	case termTok:
		text := t.Text()
		return newTextNode(node.CodeSpan, t, text[1:len(text)-1]), nil

	case commentTok:
		return newTextNode(node.BlockComment, t, t.Text()), nil
	}

	if t.Text() == lSquareOp {
		return c.parseClass(t)
	}

	c.depth++
	inner, e := c.parseOr()
	c.depth--
	e = c.skipOne(rParenOp, e)
	if e != nil {
		return nil, e
	}

	return newNode(node.ParenthesizedGroup, t, inner), nil
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// parseClass scans raw class content following "[" token up to the closing "]".
// Blanks are ignored, a backslash escapes the next character.
func (c *parseContext) parseClass(open *lexer.Token) (*node.Node, error) {
	content := c.cur.Rest()
	i := 0
	skipBlanks := func() {
		for i < len(content) && isBlank(content[i]) {
			i++
		}
	}
	readChar := func() string {
		r, size := utf8.DecodeRune(content[i:])
		i += size
		if r != '\\' || i >= len(content) {
			return string(r)
		}

		r, size = utf8.DecodeRune(content[i:])
		i += size
		esc, has := classEscapes[r]
		if has {
			return esc
		}
		return string(r)
	}

	class := newNode(node.CharacterClass, open)
	for {
		skipBlanks()
		if i >= len(content) {
			return nil, unterminatedClassError(open)
		}

		if content[i] == ']' {
			i++
			break
		}

		item := newTextNode(node.CharacterClassCharacter, open, readChar())
		afterFirst := i
		skipBlanks()
		if i < len(content) && content[i] == '-' {
			i++
			skipBlanks()
			if i < len(content) && content[i] != ']' {
				last := newTextNode(node.CharacterClassCharacter, open, readChar())
				item = newNode(node.CharacterRange, open, item, last)
			} else {
				i = afterFirst
			}
		} else {
			i = afterFirst
		}

		class.Children = append(class.Children, item)
	}

	c.cur.Advance(i)
	if len(class.Children) == 0 {
		return nil, emptyClassError(open)
	}

	return class, nil
}
