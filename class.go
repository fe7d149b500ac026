package umldraw

import (
	"image/color"
	"strings"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

const (
	classMinWidth  = 80
	classMinHeight = 40
	// space above and below labels in each compartment
	classPad = 4
)

var classFill = color.RGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff}

// NewClassElement returns a class box bound to c, which may be nil.
func NewClassElement(c *model.Class) *ClassElement {
	e := &ClassElement{class: c}
	comps := []*Compartment{NewCompartment(), NewCompartment(), NewCompartment()}
	for _, comp := range comps {
		comp.SetMarginTop(classPad)
	}
	e.init(e, comps...)
	e.SetMinimumSize(classMinWidth, classMinHeight)
	e.syncLabels()
	return e
}

// ClassElement stacks a name, an attribute and an operation
// compartment. All compartments share the width, the operation
// compartment takes any extra height.
type ClassElement struct {
	compositeNode

	class   *model.Class
	minimum geom.Dimension
}

func (e *ClassElement) Kind() Kind { return ClassKind }

func (e *ClassElement) ModelElement() model.Element {
	if e.class == nil {
		return nil
	}
	return e.class
}

func (e *ClassElement) Class() *model.Class { return e.class }

func (e *ClassElement) SetClass(v *model.Class) {
	e.class = v
	e.Sync()
}

func (e *ClassElement) NameCompartment() *Compartment      { return e.compartments[0] }
func (e *ClassElement) AttributeCompartment() *Compartment { return e.compartments[1] }
func (e *ClassElement) OperationCompartment() *Compartment { return e.compartments[2] }

func (e *ClassElement) LabelText() string {
	if e.class == nil {
		return ""
	}
	return e.class.Name()
}

func (e *ClassElement) SetLabelText(v string) {
	if e.class == nil {
		e.class = model.NewClass("")
	}
	e.class.SetName(v)
	e.Invalidate()
}

// AddAttribute adds a new attribute to the bound class.
func (e *ClassElement) AddAttribute(name string) {
	e.ensureClass().AddAttribute(name)
	e.Sync()
}

// AddOperation adds a new operation to the bound class.
func (e *ClassElement) AddOperation(name string) {
	e.ensureClass().AddOperation(name)
	e.Sync()
}

func (e *ClassElement) ensureClass() *model.Class {
	if e.class == nil {
		e.class = model.NewClass("")
	}
	return e.class
}

// Sync rebuilds labels after the bound class was changed directly,
// e.g. Abstract, Stereotype or features added on the model.
func (e *ClassElement) Sync() {
	e.syncLabels()
	e.Invalidate()
}

// syncLabels rebuilds labels from the bound class.
func (e *ClassElement) syncLabels() {
	name := e.NameCompartment()
	name.RemoveLabels()
	font := render.FontElementName
	if e.class != nil {
		if e.class.Stereotype != "" {
			name.AddLabel(NewLabel(&stereotypeRef{owner: e}, render.FontStereotype))
		}
		if e.class.Abstract {
			font = render.FontAbstractElement
		}
	}
	name.AddLabel(NewLabel(e, font))

	attrs := e.AttributeCompartment()
	attrs.RemoveLabels()
	ops := e.OperationCompartment()
	ops.RemoveLabels()
	if e.class == nil {
		return
	}
	for i := range e.class.Attributes {
		attrs.AddLabel(NewLabel(&featureRef{owner: e, index: i}, render.FontDefault))
	}
	for i := range e.class.Operations {
		ops.AddLabel(NewLabel(&featureRef{owner: e, ops: true, index: i}, render.FontDefault))
	}
}

// MinimumSize returns the element wide minimum.
func (e *ClassElement) MinimumSize() geom.Dimension { return e.minimum }

func (e *ClassElement) SetMinimumSize(width, height float64) {
	e.minimum = geom.Dimension{Width: width, Height: height}
}

// Size returns the shared width and the summed compartment heights.
func (e *ClassElement) Size() geom.Dimension {
	var d geom.Dimension
	for _, c := range e.compartments {
		d.Width = max(d.Width, c.Size().Width)
		d.Height += c.Size().Height
	}
	return d
}

func (e *ClassElement) SetSize(width, height float64) {
	e.layout(geom.Dimension{Width: width, Height: height}.Max(e.minimum))
}

// contentSize returns the size needed to show all labels.
func (e *ClassElement) contentSize() geom.Dimension {
	var d geom.Dimension
	for _, c := range e.compartments {
		d.Width = max(d.Width, c.ContentSize().Width)
		d.Height += c.ContentSize().Height + classPad
	}
	return d
}

// layout stacks the compartments within d.
func (e *ClassElement) layout(d geom.Dimension) {
	var y float64
	last := len(e.compartments) - 1
	for i, c := range e.compartments {
		h := c.ContentSize().Height + classPad
		if i == last {
			h = max(h, d.Height-y)
		}
		c.offset = y
		c.SetSize(d.Width, h)
		y += h
	}
}

func (e *ClassElement) RecalculateSize(dc render.DrawingContext) {
	e.recalculateParts(dc)
	e.layout(e.Size().Max(e.minimum).Max(e.contentSize()))
	e.notifyResized()
}

func (e *ClassElement) Draw(dc render.DrawingContext) {
	e.validate(dc)
	b := e.AbsoluteBounds()
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height, classFill)
	for i, c := range e.compartments {
		if i > 0 {
			y := c.AbsoluteY1()
			dc.DrawLine(b.X, y, b.X+b.Width, y)
		}
		c.Draw(dc)
	}
}

func (e *ClassElement) Clone() Node {
	c := &ClassElement{
		class:   e.class.Clone(),
		minimum: e.minimum,
	}
	e.cloneInto(&c.compositeNode, c)
	for _, comp := range c.compartments {
		for _, l := range comp.Labels() {
			l.SetSource(rebind(l.Source(), c))
		}
	}
	return c
}

// rebind returns the equivalent of src bound to owner.
func rebind(src LabelSource, owner *ClassElement) LabelSource {
	switch src := src.(type) {
	case *ClassElement:
		return owner
	case *featureRef:
		return &featureRef{owner: owner, ops: src.ops, index: src.index}
	case *stereotypeRef:
		return &stereotypeRef{owner: owner}
	}
	return src
}

// AcceptsConnection checks both roles. Inheritance and interface
// realization are only between classes, other relations also reach
// components.
func (e *ClassElement) AcceptsConnection(rt model.RelationType, _ model.RelationEndType, with Node) bool {
	if with == nil {
		return true
	}
	switch with.(type) {
	case *ClassElement:
		return true
	case *ComponentElement:
		return rt != model.Inheritance && rt != model.InterfaceRealization
	}
	return false
}

// ----------------------------------------

// featureRef reaches an attribute or operation of the owning class by
// index.
type featureRef struct {
	owner *ClassElement
	ops   bool
	index int
}

func (f *featureRef) feature() *model.Feature {
	c := f.owner.class
	if c == nil {
		return nil
	}
	list := c.Attributes
	if f.ops {
		list = c.Operations
	}
	if f.index >= len(list) {
		return nil
	}
	return list[f.index]
}

func (f *featureRef) LabelText() string {
	if v := f.feature(); v != nil {
		return v.Name()
	}
	return ""
}

func (f *featureRef) SetLabelText(v string) {
	if x := f.feature(); x != nil {
		x.SetName(v)
		f.owner.Invalidate()
	}
}

type stereotypeRef struct {
	owner *ClassElement
}

func (s *stereotypeRef) LabelText() string {
	if c := s.owner.class; c != nil && c.Stereotype != "" {
		return "«" + c.Stereotype + "»"
	}
	return ""
}

func (s *stereotypeRef) SetLabelText(v string) {
	if c := s.owner.class; c != nil {
		c.Stereotype = strings.Trim(v, "«»")
		s.owner.Invalidate()
	}
}
