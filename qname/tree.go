/*
Package qname provides lookup of qualified element names.

Names are stored in a tree where each node represents one level of
nesting, e.g. Shop/Checkout/Customer. Patterns may use + to match
exactly one level and # as the last level to match the rest,
including the parent level itself.
*/
package qname

import (
	"strings"
)

// NewTree returns a new empty name tree. Methods are not safe to call
// from multiple go routines.
func NewTree() *Tree {
	return &Tree{
		root: NewNode(""),
	}
}

type Tree struct {
	root *Node
}

// Add stores v under the qualified name. Returns the node for that
// name. Several values may share a name.
func (t *Tree) Add(name string, v any) *Node {
	parts := strings.Split(name, "/")
	n := t.addParts(t.root, parts)
	n.Values = append(n.Values, v)
	// t.root is just a virtual parent
	for _, top := range t.root.children {
		top.parent = nil
	}
	return n
}

// Find returns node with the given name. If not found, nil and false
// is returned.
func (t *Tree) Find(name string) (*Node, bool) {
	parts := strings.Split(name, "/")
	n, found := t.root.Find(parts)
	if !found || len(n.Values) == 0 {
		return nil, false
	}
	return n, true
}

// Match populates result with nodes holding values whose name matches
// pattern.
func (t *Tree) Match(result *[]*Node, pattern string) {
	if pattern == "" {
		return
	}
	parts := strings.Split(pattern, "/")
	t.root.match(result, parts, 0)
}

// Names returns all names holding values, depth first in insertion
// order.
func (t *Tree) Names() []string {
	var names []string
	for _, n := range t.root.all() {
		names = append(names, n.Name())
	}
	return names
}

func (t *Tree) addParts(n *Node, parts []string) *Node {
	if len(parts) == 0 {
		return n
	}
	c := n.FindChild(parts[0])
	if c == nil {
		c = NewNode(parts[0])
		n.AddChild(c)
	}
	return t.addParts(c, parts[1:])
}
