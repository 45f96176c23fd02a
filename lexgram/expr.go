// Package lexgram builds regex-like expression trees for lexical grammar productions
// and keeps the registry of nonterminals.
//
// Expressions are not compiled any further; Expr is the input for a future automaton builder.
package lexgram

import (
	"strconv"
	"strings"
)

// Op is an expression operator.
type Op int

const (
	// Empty matches empty string.
	Empty Op = iota
	// Literal matches Expr.Text.
	Literal
	// Ref matches Expr.Entry definition.
	Ref
	// Range matches a single rune between Expr.Lo and Expr.Hi inclusive.
	Range
	// Difference matches Items[0] unless Items[1] matches the same text.
	Difference
	// Alternation matches any of Items.
	Alternation
	// Sequence matches all Items in order.
	Sequence
	// OneOrMore matches Items[0] repeated.
	OneOrMore
)

var opNames = []string{"empty", "literal", "ref", "range", "difference", "alternation", "sequence", "one-or-more"}

func (op Op) String() string {
	if op < Empty || op > OneOrMore {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opNames[op]
}

// Expr is an expression tree node.
type Expr struct {
	Op     Op
	Text   string
	Entry  *Entry
	Lo, Hi rune
	Items  []*Expr
}

func NewEmpty() *Expr {
	return &Expr{Op: Empty}
}

func NewLiteral(text string) *Expr {
	return &Expr{Op: Literal, Text: text}
}

func NewRef(e *Entry) *Expr {
	return &Expr{Op: Ref, Entry: e}
}

func NewRange(lo, hi rune) *Expr {
	return &Expr{Op: Range, Lo: lo, Hi: hi}
}

func NewDifference(left, right *Expr) *Expr {
	return &Expr{Op: Difference, Items: []*Expr{left, right}}
}

// NewAlternation returns alternation of items or the item itself if there is only one.
func NewAlternation(items ...*Expr) *Expr {
	if len(items) == 1 {
		return items[0]
	}
	return &Expr{Op: Alternation, Items: items}
}

// NewSequence returns sequence of items or the item itself if there is only one.
// Empty item list gives Empty expression.
func NewSequence(items ...*Expr) *Expr {
	switch len(items) {
	case 0:
		return NewEmpty()
	case 1:
		return items[0]
	}
	return &Expr{Op: Sequence, Items: items}
}

func NewOneOrMore(x *Expr) *Expr {
	return &Expr{Op: OneOrMore, Items: []*Expr{x}}
}

func NewOptional(x *Expr) *Expr {
	return NewAlternation(x, NewEmpty())
}

func NewZeroOrMore(x *Expr) *Expr {
	return NewAlternation(NewOneOrMore(x), NewEmpty())
}

// String returns compact text form, e.g. (("a" | [0-9])+ | ε).
func (x *Expr) String() string {
	var sb strings.Builder
	x.write(&sb)
	return sb.String()
}

func writeRune(sb *strings.Builder, r rune) {
	q := strconv.QuoteRune(r)
	sb.WriteString(q[1 : len(q)-1])
}

func (x *Expr) write(sb *strings.Builder) {
	switch x.Op {
	case Empty:
		sb.WriteString("ε")
	case Literal:
		sb.WriteString(strconv.Quote(x.Text))
	case Ref:
		sb.WriteString(x.Entry.Name)
	case Range:
		sb.WriteByte('[')
		writeRune(sb, x.Lo)
		if x.Hi != x.Lo {
			sb.WriteByte('-')
			writeRune(sb, x.Hi)
		}
		sb.WriteByte(']')
	case OneOrMore:
		x.Items[0].write(sb)
		sb.WriteByte('+')
	default:
		sep := " "
		switch x.Op {
		case Alternation:
			sep = " | "
		case Difference:
			sep = " - "
		}
		sb.WriteByte('(')
		for i, item := range x.Items {
			if i > 0 {
				sb.WriteString(sep)
			}
			item.write(sb)
		}
		sb.WriteByte(')')
	}
}
