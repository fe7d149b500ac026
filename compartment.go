package umldraw

import (
	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/render"
)

// CompartmentOwner is the node a compartment is positioned within.
type CompartmentOwner interface {
	AbsoluteX1() float64
	AbsoluteY1() float64
}

func NewCompartment() *Compartment {
	return &Compartment{}
}

// Compartment lays out labels top to bottom in insertion order. The
// compartment does not clamp its size to the minimum, owning nodes
// do.
type Compartment struct {
	parent CompartmentOwner
	// vertical offset within parent
	offset float64

	labels    []*Label
	marginTop float64

	content    geom.Dimension
	minimum    geom.Dimension
	hasMinimum bool
	size       geom.Dimension

	valid bool
}

func (c *Compartment) Parent() CompartmentOwner     { return c.parent }
func (c *Compartment) SetParent(v CompartmentOwner) { c.parent = v }

// AddLabel appends l, invalidating the compartment.
func (c *Compartment) AddLabel(l *Label) {
	c.labels = append(c.labels, l)
	c.valid = false
}

// RemoveLabels drops all labels.
func (c *Compartment) RemoveLabels() {
	c.labels = nil
	c.valid = false
}

func (c *Compartment) Labels() []*Label { return c.labels }

func (c *Compartment) MarginTop() float64 { return c.marginTop }

func (c *Compartment) SetMarginTop(v float64) {
	c.marginTop = v
	c.valid = false
}

// RecalculateSize measures all labels and stacks them below the top
// margin. The content size becomes the widest label and the sum of
// label heights plus margin.
func (c *Compartment) RecalculateSize(dc render.DrawingContext) {
	y := c.marginTop
	var width float64
	for _, l := range c.labels {
		l.recalculateSize(dc)
		l.origin = geom.Point{X: 0, Y: y}
		y += l.size.Height
		width = max(width, l.size.Width)
	}
	c.content = geom.Dimension{Width: width, Height: y}
	c.valid = true
}

// ContentSize returns the size needed by labels and margin as of the
// last recalculation.
func (c *Compartment) ContentSize() geom.Dimension { return c.content }

// MinimumSize returns the explicit minimum if one is set, otherwise
// the content size.
func (c *Compartment) MinimumSize() geom.Dimension {
	if c.hasMinimum {
		return c.minimum
	}
	return c.content
}

// SetMinimumSize overrides the computed minimum. Values smaller than
// the content size are kept as is.
func (c *Compartment) SetMinimumSize(width, height float64) {
	c.minimum = geom.Dimension{Width: width, Height: height}
	c.hasMinimum = true
}

func (c *Compartment) Size() geom.Dimension { return c.size }

// SetSize sets the current size. Callers must not go below
// MinimumSize.
func (c *Compartment) SetSize(width, height float64) {
	c.size = geom.Dimension{Width: width, Height: height}
}

func (c *Compartment) Invalidate()   { c.valid = false }
func (c *Compartment) IsValid() bool { return c.valid }

// AbsoluteX1 returns the left edge of the compartment.
func (c *Compartment) AbsoluteX1() float64 {
	if c.parent == nil {
		return 0
	}
	return c.parent.AbsoluteX1()
}

// AbsoluteY1 returns the top edge of the compartment.
func (c *Compartment) AbsoluteY1() float64 {
	if c.parent == nil {
		return c.offset
	}
	return c.parent.AbsoluteY1() + c.offset
}

// Bounds returns the absolute bounding box.
func (c *Compartment) Bounds() geom.Rect {
	return geom.Rect{
		X:      c.AbsoluteX1(),
		Y:      c.AbsoluteY1(),
		Width:  c.size.Width,
		Height: c.size.Height,
	}
}

// LabelAt returns the first label containing the absolute point x,y
// or nil.
func (c *Compartment) LabelAt(x, y float64) *Label {
	x1, y1 := c.AbsoluteX1(), c.AbsoluteY1()
	for _, l := range c.labels {
		r := geom.NewRect(
			geom.Point{X: x1 + l.origin.X, Y: y1 + l.origin.Y}, l.size,
		)
		if r.Contains(x, y) {
			return l
		}
	}
	return nil
}

// Draw draws each label at its position.
func (c *Compartment) Draw(dc render.DrawingContext) {
	x1, y1 := c.AbsoluteX1(), c.AbsoluteY1()
	for _, l := range c.labels {
		dc.DrawLabel(l.Text(), x1+l.origin.X, y1+l.origin.Y, l.font)
	}
}

// Clone returns a deep copy without parent. Cloned labels keep their
// source, callers rebind sources and set the parent.
func (c *Compartment) Clone() *Compartment {
	x := *c
	x.parent = nil
	x.labels = make([]*Label, len(c.labels))
	for i, l := range c.labels {
		x.labels[i] = l.Clone()
	}
	return &x
}
