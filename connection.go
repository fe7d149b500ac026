package umldraw

import (
	"fmt"
	"math"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

// newConnection links source to target and registers the connection
// as listener on both.
func newConnection(rt model.RelationType, source, target Node) *Connection {
	c := &Connection{
		relation: rt,
		source:   source,
		target:   target,
		dirty:    true,
	}
	source.AddNodeChangeListener(c)
	if target != source {
		target.AddNodeChangeListener(c)
	}
	return c
}

// Connection is a drawn relation between two nodes. It is re-routed
// whenever either end moves or is resized.
type Connection struct {
	relation model.RelationType
	source   Node
	target   Node

	start, end geom.Point
	dirty      bool
}

func (c *Connection) RelationType() model.RelationType { return c.relation }

// Source returns the source node, nil once detached.
func (c *Connection) Source() Node { return c.source }

// Target returns the target node, nil once detached.
func (c *Connection) Target() Node { return c.target }

// End returns the node at role as.
func (c *Connection) End(as model.RelationEndType) Node {
	if as == model.Source {
		return c.source
	}
	return c.target
}

// Touches returns true if n is either end.
func (c *Connection) Touches(n Node) bool {
	return n != nil && (c.source == n || c.target == n)
}

func (c *Connection) NodeResized(Node) { c.dirty = true }
func (c *Connection) NodeMoved(Node)   { c.dirty = true }

// NeedsReroute returns true if any end changed since the last route.
func (c *Connection) NeedsReroute() bool { return c.dirty }

// Points returns where the line meets the source and target
// outlines.
func (c *Connection) Points() (start, end geom.Point) {
	if c.dirty {
		c.reroute()
	}
	return c.start, c.end
}

// reroute draws the line between the node centers, clipped at their
// bounds.
func (c *Connection) reroute() {
	if c.source == nil || c.target == nil {
		return
	}
	a := c.source.AbsoluteBounds()
	b := c.target.AbsoluteBounds()
	c.start = clip(a, b.Center())
	c.end = clip(b, a.Center())
	c.dirty = false
}

// clip returns the point where the line from the center of r toward p
// crosses the outline of r.
func clip(r geom.Rect, p geom.Point) geom.Point {
	o := r.Center()
	dx, dy := p.X-o.X, p.Y-o.Y
	if dx == 0 && dy == 0 {
		return o
	}
	t := math.Inf(1)
	if dx != 0 {
		t = math.Min(t, r.Width/2/math.Abs(dx))
	}
	if dy != 0 {
		t = math.Min(t, r.Height/2/math.Abs(dy))
	}
	if t > 1 {
		// p is inside r
		return p
	}
	return geom.Point{X: o.X + t*dx, Y: o.Y + t*dy}
}

func (c *Connection) Draw(dc render.DrawingContext) {
	start, end := c.Points()
	dc.DrawLine(start.X, start.Y, end.X, end.Y)
}

// detach unregisters from both ends and drops the references.
func (c *Connection) detach() {
	if c.source != nil {
		c.source.RemoveNodeChangeListener(c)
	}
	if c.target != nil {
		c.target.RemoveNodeChangeListener(c)
	}
	c.source, c.target = nil, nil
}

func (c *Connection) String() string {
	return fmt.Sprintf("%s %s -> %s", c.relation, nameOf(c.source), nameOf(c.target))
}
