package umldraw

import (
	"fmt"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/qname"
	"github.com/gregoryv/umldraw/render"
)

func NewDiagram() *Diagram {
	return &Diagram{
		Log: NewLogger(),
	}
}

// Diagram owns top level nodes and the connections between any
// nodes in it. Methods are not safe for concurrent use.
type Diagram struct {
	// Log is used for structural changes, set before use.
	Log *Logger

	nodes       []Node
	connections []*Connection
}

// Add places n at the top level. A nested n is moved out of its
// container keeping its absolute position, also when the container
// belongs to another diagram.
func (d *Diagram) Add(n Node) {
	if p := n.Parent(); p != nil {
		if d.Has(n) {
			_ = d.Unnest(n) // only fails for nodes not in d
			return
		}
		abs := geom.Point{X: n.AbsoluteX1(), Y: n.AbsoluteY1()}
		p.base().removeChild(n)
		n.base().origin = abs
	}
	if d.indexOf(n) >= 0 {
		return
	}
	d.nodes = append(d.nodes, n)
	d.Log.Node("add", n)
}

// Remove detaches n from the diagram. All connections of n and its
// descendants are dropped and the nesting below n is dissolved, no
// removed node keeps a parent or children.
func (d *Diagram) Remove(n Node) error {
	if !d.Has(n) {
		return ErrNotInDiagram
	}
	if p := n.Parent(); p != nil {
		p.base().removeChild(n)
	} else {
		d.nodes = removeNode(d.nodes, n)
	}

	gone := append([]Node{n}, descendants(n)...)
	keep := d.connections[:0]
	for _, c := range d.connections {
		if touchesAny(c, gone) {
			d.Log.Connection("drop", c)
			c.detach()
			continue
		}
		keep = append(keep, c)
	}
	// clear the tail so dropped connections can be collected
	for i := len(keep); i < len(d.connections); i++ {
		d.connections[i] = nil
	}
	d.connections = keep

	// dissolve the removed subtree
	for _, g := range gone[1:] {
		g.base().parent = nil
	}
	for _, g := range gone {
		g.base().children = nil
	}
	d.Log.Node("remove", n)
	return nil
}

// Has returns true if n is in the diagram at any depth.
func (d *Diagram) Has(n Node) bool {
	if n == nil {
		return false
	}
	root := n
	for root.Parent() != nil {
		root = root.Parent()
	}
	return d.indexOf(root) >= 0
}

// Nest moves child into container keeping its absolute position.
func (d *Diagram) Nest(container, child Node) error {
	if !d.Has(container) || !d.Has(child) {
		return ErrNotInDiagram
	}
	if !container.CanNestElements() {
		return fmt.Errorf("%w: %s", ErrNotContainer, container.Kind())
	}
	if !child.IsNestable() {
		return fmt.Errorf("%w: %s", ErrNotNestable, child.Kind())
	}
	if isAncestor(child, container) {
		return ErrCycle
	}
	if child.Parent() == container {
		return nil
	}
	abs := geom.Point{X: child.AbsoluteX1(), Y: child.AbsoluteY1()}
	d.detach(child)
	child.base().origin = geom.Point{
		X: abs.X - container.AbsoluteX1(),
		Y: abs.Y - container.AbsoluteY1(),
	}
	container.base().addChild(child)
	d.Log.Node("nest", child)
	return nil
}

// Unnest moves child to the top level keeping its absolute position.
func (d *Diagram) Unnest(child Node) error {
	if !d.Has(child) {
		return ErrNotInDiagram
	}
	if child.Parent() == nil {
		return nil
	}
	abs := geom.Point{X: child.AbsoluteX1(), Y: child.AbsoluteY1()}
	d.detach(child)
	child.base().origin = abs
	d.nodes = append(d.nodes, child)
	d.Log.Node("unnest", child)
	return nil
}

// detach removes n from its parent or the top level.
func (d *Diagram) detach(n Node) {
	if p := n.Parent(); p != nil {
		p.base().removeChild(n)
		return
	}
	d.nodes = removeNode(d.nodes, n)
}

// CanConnect returns true if both ends accept a relation of type rt
// from source to target.
func (d *Diagram) CanConnect(rt model.RelationType, source, target Node) bool {
	return source.AcceptsConnection(rt, model.Source, target) &&
		target.AcceptsConnection(rt, model.Target, source)
}

// Connect adds a connection if both ends accept it. Returns false
// and adds nothing otherwise.
func (d *Diagram) Connect(rt model.RelationType, source, target Node) (*Connection, bool) {
	if !d.Has(source) || !d.Has(target) || !d.CanConnect(rt, source, target) {
		d.Log.Reject(rt, source, target)
		return nil, false
	}
	c := newConnection(rt, source, target)
	d.connections = append(d.connections, c)
	d.Log.Connection("connect", c)
	return c, true
}

// Disconnect removes c, returns false if c is not in the diagram.
func (d *Diagram) Disconnect(c *Connection) bool {
	for i, v := range d.connections {
		if v == c {
			d.connections = append(d.connections[:i], d.connections[i+1:]...)
			d.Log.Connection("drop", c)
			c.detach()
			return true
		}
	}
	return false
}

// Nodes returns the top level nodes in drawing order.
func (d *Diagram) Nodes() []Node {
	res := make([]Node, len(d.nodes))
	copy(res, d.nodes)
	return res
}

func (d *Diagram) Connections() []*Connection {
	res := make([]*Connection, len(d.connections))
	copy(res, d.connections)
	return res
}

// NodeAt returns the top most, deepest nested node containing x,y
// or nil.
func (d *Diagram) NodeAt(x, y float64) Node {
	return nodeAt(d.nodes, x, y)
}

func nodeAt(nodes []Node, x, y float64) Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if !n.Contains(x, y) {
			continue
		}
		if c := nodeAt(n.base().children, x, y); c != nil {
			return c
		}
		return n
	}
	return nil
}

// Lookup returns nodes whose qualified name matches pattern. Names
// are model element names joined with / through the nesting, e.g.
// Shop/Customer. Use + for one level and # for all below.
func (d *Diagram) Lookup(pattern string) []Node {
	t := qname.NewTree()
	var add func(prefix string, nodes []Node)
	add = func(prefix string, nodes []Node) {
		for _, n := range nodes {
			name := prefix + nameOf(n)
			t.Add(name, n)
			add(name+"/", n.base().children)
		}
	}
	add("", d.nodes)

	var found []*qname.Node
	t.Match(&found, pattern)
	var res []Node
	for _, f := range found {
		for _, v := range f.Values {
			res = append(res, v.(Node))
		}
	}
	return res
}

// Draw draws all nodes, then all connections.
func (d *Diagram) Draw(dc render.DrawingContext) {
	for _, n := range d.nodes {
		n.Draw(dc)
	}
	for _, c := range d.connections {
		c.Draw(dc)
	}
}

// Bounds returns the box covering all top level nodes.
func (d *Diagram) Bounds() geom.Rect {
	var r geom.Rect
	for i, n := range d.nodes {
		if i == 0 {
			r = n.AbsoluteBounds()
			continue
		}
		r = r.Union(n.AbsoluteBounds())
	}
	return r
}

func (d *Diagram) indexOf(n Node) int {
	for i, v := range d.nodes {
		if v == n {
			return i
		}
	}
	return -1
}

func removeNode(nodes []Node, n Node) []Node {
	for i, v := range nodes {
		if v == n {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}

func touchesAny(c *Connection, nodes []Node) bool {
	for _, n := range nodes {
		if c.Touches(n) {
			return true
		}
	}
	return false
}

var (
	ErrNotInDiagram = fmt.Errorf("node not in diagram")
	ErrNotContainer = fmt.Errorf("cannot nest elements")
	ErrNotNestable  = fmt.Errorf("not nestable")
	ErrCycle        = fmt.Errorf("cannot nest node in itself")
)
