// Package transform implements type-directed single-pass tree rewriting.
//
// A Pass maps node kinds to handlers. For every node the handler registered for the most
// specific kind in the node's chain is called; its Result tells Tree whether to keep the node
// and recurse into its children, to process a replacement node instead, or to splice
// a list of nodes in place of the node.
package transform

import (
	"fmt"

	"github.com/ava12/jargon/node"
)

type resultType int

const (
	unchanged resultType = iota
	replaced
	spliced
)

// Result is returned by handlers.
type Result struct {
	t     resultType
	nodes []*node.Node
}

// Unchanged keeps the node, its children are processed.
var Unchanged = Result{}

// Replace substitutes the node with n; n is processed by the same pass.
// Replacing a node with itself is the same as Unchanged.
func Replace(n *node.Node) Result {
	return Result{t: replaced, nodes: []*node.Node{n}}
}

// Splice substitutes the node with zero or more nodes, each processed by the same pass.
func Splice(ns ...*node.Node) Result {
	return Result{t: spliced, nodes: ns}
}

func (r Result) IsUnchanged() bool {
	return r.t == unchanged
}

// Nodes returns replacement nodes, nil for Unchanged.
func (r Result) Nodes() []*node.Node {
	return r.nodes
}

// Handler is called for a matching node.
type Handler func(n *node.Node) Result

// Pass is a set of handlers keyed by node kind.
type Pass struct {
	name     string
	handlers map[node.Kind]Handler
}

func NewPass(name string) *Pass {
	return &Pass{name: name, handlers: make(map[node.Kind]Handler)}
}

func (p *Pass) Name() string {
	return p.name
}

// On sets handler for kind k and its descendants unless they have their own handlers.
// A handler for node.NodeKind is called for nodes no other handler matches.
func (p *Pass) On(k node.Kind, h Handler) *Pass {
	p.handlers[k] = h
	return p
}

// Apply calls the handler for the most specific kind in the chain of n.
// Returns Unchanged if there is no such handler. Panics if the handler returns nil nodes.
func Apply(n *node.Node, p *Pass) Result {
	for _, k := range node.Chain(n.Kind) {
		h, has := p.handlers[k]
		if !has {
			continue
		}

		r := h(n)
		for _, rn := range r.nodes {
			if rn == nil {
				panic(fmt.Sprintf("transform: pass %q produced nil node for %s", p.name, n.Kind))
			}
		}
		if r.t == replaced && r.nodes[0] == n {
			return Unchanged
		}
		return r
	}

	return Unchanged
}

// Tree rewrites the subtree rooted at n, returns nodes taking the place of n.
// Nodes are visited depth-first, parents before children, children left to right.
// Handlers are called again for replacement nodes, so a handler producing nodes matching
// its own trigger must track processed nodes itself.
func Tree(n *node.Node, p *Pass) []*node.Node {
	r := Apply(n, p)
	switch r.t {
	case replaced:
		return Tree(r.nodes[0], p)

	case spliced:
		var result []*node.Node
		for _, c := range r.nodes {
			result = append(result, Tree(c, p)...)
		}
		return result
	}

	if len(n.Children) > 0 {
		children := make([]*node.Node, 0, len(n.Children))
		for _, c := range n.Children {
			children = append(children, Tree(c, p)...)
		}
		n.Children = children
	}
	return []*node.Node{n}
}

// Run rewrites the tree rooted at root. The pass must keep root a single node.
func Run(root *node.Node, p *Pass) *node.Node {
	result := Tree(root, p)
	if len(result) != 1 {
		panic(fmt.Sprintf("transform: pass %q turned root %s into %d nodes", p.name, root.Kind, len(result)))
	}
	return result[0]
}
