package lexgram

import (
	"unicode/utf8"

	"github.com/ava12/jargon/node"
)

// Compiler translates Production nodes into registry definitions.
type Compiler struct {
	reg *Registry
}

func NewCompiler(reg *Registry) *Compiler {
	return &Compiler{reg: reg}
}

func (c *Compiler) Registry() *Registry {
	return c.reg
}

// Production translates alternatives of production p and defines its nonterminal.
// On duplicate definition the entry keeps its first definition and DuplicateDefinitionError is returned.
func (c *Compiler) Production(p *node.Node) (*Entry, error) {
	name := p.Children[0].GetText()
	alts := p.Children[1].Children
	items := make([]*Expr, 0, len(alts))
	for _, alt := range alts {
		x, e := c.Expr(alt)
		if e != nil {
			return nil, e
		}
		if x == nil {
			x = NewEmpty()
		}
		items = append(items, x)
	}

	if len(items) == 0 {
		return c.reg.Define(name, NewEmpty(), p.Pos)
	}
	return c.reg.Define(name, NewAlternation(items...), p.Pos)
}

// Expr translates grammar expression node n. Returns nil for comments.
func (c *Compiler) Expr(n *node.Node) (*Expr, error) {
	switch n.Kind {
	case node.BlockComment:
		return nil, nil

	case node.CodeSpan:
		return NewLiteral(n.GetText()), nil

	case node.MetaTypeNode:
		e := c.reg.Entry(n.GetText())
		if !e.ReferencedAt.IsKnown() {
			e.ReferencedAt = n.Pos
		}
		return NewRef(e), nil

	case node.VariableIntroducer:
		return c.Expr(n.Children[len(n.Children)-1])

	case node.Alternative, node.ParenthesizedGroup, node.GrammarSequence:
		items, e := c.exprs(n.Children)
		if e != nil {
			return nil, e
		}
		return NewSequence(items...), nil

	case node.Or:
		items, e := c.exprs(n.Children)
		if e != nil || len(items) == 0 {
			return nil, e
		}
		return NewAlternation(items...), nil

	case node.CharacterClass:
		items, e := c.exprs(n.Children)
		if e != nil || len(items) == 0 {
			return nil, e
		}
		return NewAlternation(items...), nil

	case node.CharacterClassCharacter:
		r, valid := singleRune(n.GetText())
		if !valid {
			return nil, invalidRangeError(n)
		}
		return NewRange(r, r), nil

	case node.CharacterRange:
		if len(n.Children) != 2 {
			return nil, invalidRangeError(n)
		}
		lo, valid := singleRune(n.Children[0].GetText())
		hi, valid2 := singleRune(n.Children[1].GetText())
		if !valid || !valid2 || lo > hi {
			return nil, invalidRangeError(n)
		}
		return NewRange(lo, hi), nil

	case node.Difference:
		items, e := c.exprs(n.Children)
		if e != nil {
			return nil, e
		}
		if len(items) != 2 {
			return nil, unsupportedNodeError(n)
		}
		return NewDifference(items[0], items[1]), nil

	case node.ZeroOrMore, node.OneOrMore, node.Optional:
		items, e := c.exprs(n.Children)
		if e != nil || len(items) == 0 {
			return nil, e
		}
		inner := NewSequence(items...)
		switch n.Kind {
		case node.ZeroOrMore:
			return NewZeroOrMore(inner), nil
		case node.OneOrMore:
			return NewOneOrMore(inner), nil
		default:
			return NewOptional(inner), nil
		}
	}

	return nil, unsupportedNodeError(n)
}

// exprs translates nodes skipping comments.
func (c *Compiler) exprs(nodes []*node.Node) ([]*Expr, error) {
	result := make([]*Expr, 0, len(nodes))
	for _, n := range nodes {
		x, e := c.Expr(n)
		if e != nil {
			return nil, e
		}
		if x != nil {
			result = append(result, x)
		}
	}
	return result, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	return r, size > 0 && size == len(s) && r != utf8.RuneError
}
