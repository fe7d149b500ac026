package umldraw

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

// Node is a diagram element. The set of implementations is closed,
// see ActorElement, ClassElement, ComponentElement and
// PackageElement.
type Node interface {
	ID() uuid.UUID
	Kind() Kind
	ModelElement() model.Element

	// Parent returns the containing node, nil for top level nodes.
	Parent() Node
	Children() []Node

	Origin() geom.Point
	SetOrigin(x, y float64)
	AbsoluteX1() float64
	AbsoluteY1() float64
	AbsoluteBounds() geom.Rect
	Contains(x, y float64) bool

	MinimumSize() geom.Dimension
	SetMinimumSize(width, height float64)
	Size() geom.Dimension
	// SetSize sets the current size, clamped to MinimumSize.
	SetSize(width, height float64)

	// RecalculateSize lays out all compartments and children, marks
	// the node valid and notifies listeners the node was resized.
	RecalculateSize(dc render.DrawingContext)
	// Invalidate marks the node and all its ancestors invalid.
	Invalidate()
	IsValid() bool
	// Draw recalculates the node if invalid and then renders it.
	Draw(dc render.DrawingContext)

	LabelAt(x, y float64) *Label

	// Clone returns a deep copy sharing nothing mutable with the
	// original. The clone has a new ID and no parent.
	Clone() Node

	// AcceptsConnection returns true if this node may play role as
	// in a relation of type rt with the other node. with is nil if
	// the other end is not yet known.
	AcceptsConnection(rt model.RelationType, as model.RelationEndType, with Node) bool

	// IsNestable returns true if the node may be placed inside a
	// container.
	IsNestable() bool
	// CanNestElements returns true for containers.
	CanNestElements() bool

	AddNodeChangeListener(NodeChangeListener)
	RemoveNodeChangeListener(NodeChangeListener)

	base() *compositeNode
}

// NodeChangeListener is informed about geometry changes of nodes it
// is registered with.
type NodeChangeListener interface {
	NodeResized(Node)
	NodeMoved(Node)
}

// Kind identifies an element variant.
type Kind uint8

const (
	ActorKind Kind = iota + 1
	ClassKind
	ComponentKind
	PackageKind
)

// Kinds lists all element variants.
var Kinds = []Kind{ActorKind, ClassKind, ComponentKind, PackageKind}

func (k Kind) String() string {
	switch k {
	case ActorKind:
		return "actor"
	case ClassKind:
		return "class"
	case ComponentKind:
		return "component"
	case PackageKind:
		return "package"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind returns the kind named s, e.g. actor.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ----------------------------------------

// compositeNode holds what all element variants share. The first
// compartment is the primary one.
type compositeNode struct {
	id   uuid.UUID
	self Node

	origin geom.Point
	// non owning, cleared when detached
	parent   Node
	children []Node

	compartments []*Compartment
	listeners    []NodeChangeListener
}

func (b *compositeNode) init(self Node, compartments ...*Compartment) {
	b.id = uuid.New()
	b.self = self
	b.compartments = compartments
	for _, c := range compartments {
		c.SetParent(self)
	}
}

func (b *compositeNode) base() *compositeNode { return b }

func (b *compositeNode) ID() uuid.UUID { return b.id }

func (b *compositeNode) Parent() Node { return b.parent }

// Children returns a copy of the nested nodes.
func (b *compositeNode) Children() []Node {
	if len(b.children) == 0 {
		return nil
	}
	res := make([]Node, len(b.children))
	copy(res, b.children)
	return res
}

func (b *compositeNode) Origin() geom.Point { return b.origin }

// SetOrigin moves the node relative to its parent and notifies
// listeners of the node and of all nested nodes, which move with it.
func (b *compositeNode) SetOrigin(x, y float64) {
	b.origin = geom.Point{X: x, Y: y}
	if b.parent != nil {
		b.parent.Invalidate()
	}
	b.notifyMoved()
	for _, c := range descendants(b.self) {
		c.base().notifyMoved()
	}
}

func (b *compositeNode) AbsoluteX1() float64 {
	if b.parent == nil {
		return b.origin.X
	}
	return b.parent.AbsoluteX1() + b.origin.X
}

func (b *compositeNode) AbsoluteY1() float64 {
	if b.parent == nil {
		return b.origin.Y
	}
	return b.parent.AbsoluteY1() + b.origin.Y
}

func (b *compositeNode) AbsoluteBounds() geom.Rect {
	return geom.NewRect(
		geom.Point{X: b.AbsoluteX1(), Y: b.AbsoluteY1()},
		b.self.Size(),
	)
}

func (b *compositeNode) Contains(x, y float64) bool {
	return b.AbsoluteBounds().Contains(x, y)
}

func (b *compositeNode) primary() *Compartment { return b.compartments[0] }

func (b *compositeNode) MinimumSize() geom.Dimension {
	return b.primary().MinimumSize()
}

func (b *compositeNode) SetMinimumSize(width, height float64) {
	b.primary().SetMinimumSize(width, height)
}

func (b *compositeNode) Size() geom.Dimension {
	return b.primary().Size()
}

func (b *compositeNode) SetSize(width, height float64) {
	d := geom.Dimension{Width: width, Height: height}.Max(b.MinimumSize())
	b.primary().SetSize(d.Width, d.Height)
}

// RecalculateSize covers the single compartment case, the size grows
// to fit both the minimum and the content.
func (b *compositeNode) RecalculateSize(dc render.DrawingContext) {
	b.recalculateParts(dc)
	p := b.primary()
	d := p.Size().Max(p.MinimumSize()).Max(p.ContentSize())
	p.SetSize(d.Width, d.Height)
	b.notifyResized()
}

// recalculateParts recalculates compartments and children.
func (b *compositeNode) recalculateParts(dc render.DrawingContext) {
	for _, c := range b.compartments {
		c.RecalculateSize(dc)
	}
	for _, child := range b.children {
		child.RecalculateSize(dc)
	}
}

func (b *compositeNode) Invalidate() {
	for _, c := range b.compartments {
		c.Invalidate()
	}
	if b.parent != nil {
		b.parent.Invalidate()
	}
}

func (b *compositeNode) IsValid() bool {
	for _, c := range b.compartments {
		if !c.IsValid() {
			return false
		}
	}
	for _, child := range b.children {
		if !child.IsValid() {
			return false
		}
	}
	return true
}

// validate recalculates the node if needed. All variants call it
// first thing when drawn.
func (b *compositeNode) validate(dc render.DrawingContext) {
	if !b.self.IsValid() {
		b.self.RecalculateSize(dc)
	}
}

func (b *compositeNode) LabelAt(x, y float64) *Label {
	for _, c := range b.compartments {
		if l := c.LabelAt(x, y); l != nil {
			return l
		}
	}
	for _, c := range b.children {
		if l := c.LabelAt(x, y); l != nil {
			return l
		}
	}
	return nil
}

func (b *compositeNode) IsNestable() bool      { return true }
func (b *compositeNode) CanNestElements() bool { return false }

func (b *compositeNode) AddNodeChangeListener(l NodeChangeListener) {
	b.listeners = append(b.listeners, l)
}

func (b *compositeNode) RemoveNodeChangeListener(l NodeChangeListener) {
	for i, v := range b.listeners {
		if v == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *compositeNode) notifyResized() {
	for _, l := range b.listeners {
		l.NodeResized(b.self)
	}
}

func (b *compositeNode) notifyMoved() {
	for _, l := range b.listeners {
		l.NodeMoved(b.self)
	}
}

// addChild nests c, the caller checks capabilities.
func (b *compositeNode) addChild(c Node) {
	c.base().parent = b.self
	b.children = append(b.children, c)
	b.Invalidate()
}

// removeChild detaches c and severs its back reference. Returns false
// if c is not a child.
func (b *compositeNode) removeChild(c Node) bool {
	for i, v := range b.children {
		if v == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			c.base().parent = nil
			b.Invalidate()
			return true
		}
	}
	return false
}

// cloneInto fills x with deep copies of compartments and children of
// b, all bound to self. Listeners are not copied.
func (b *compositeNode) cloneInto(x *compositeNode, self Node) {
	x.id = uuid.New()
	x.self = self
	x.origin = b.origin
	x.compartments = make([]*Compartment, len(b.compartments))
	for i, c := range b.compartments {
		cc := c.Clone()
		cc.SetParent(self)
		x.compartments[i] = cc
	}
	for _, child := range b.children {
		cc := child.Clone()
		cc.base().parent = self
		x.children = append(x.children, cc)
	}
}

// descendants returns all nodes nested below n, depth first.
func descendants(n Node) []Node {
	var res []Node
	for _, c := range n.base().children {
		res = append(res, c)
		res = append(res, descendants(c)...)
	}
	return res
}

// isAncestor returns true if a is n or contains n at any depth.
func isAncestor(a, n Node) bool {
	for x := n; x != nil; x = x.Parent() {
		if x == a {
			return true
		}
	}
	return false
}

// nameOf returns the model name of n or an empty string.
func nameOf(n Node) string {
	if n == nil {
		return ""
	}
	m := n.ModelElement()
	if m == nil {
		return ""
	}
	return m.Name()
}
