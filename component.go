package umldraw

import (
	"image/color"

	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

const (
	componentMinWidth  = 100
	componentMinHeight = 60
	componentMarginTop = 20
	componentIconWidth = 16
)

var componentFill = color.RGBA{R: 0xe8, G: 0xf0, B: 0xff, A: 0xff}

func NewComponentElement(c *model.Component) *ComponentElement {
	e := &ComponentElement{component: c}
	main := NewCompartment()
	main.AddLabel(NewLabel(e, render.FontElementName))
	main.SetMarginTop(componentMarginTop)
	e.init(e, main)
	e.SetMinimumSize(componentMinWidth, componentMinHeight)
	return e
}

// ComponentElement is a box with the component icon in the top right
// corner.
type ComponentElement struct {
	compositeNode

	component *model.Component
}

func (e *ComponentElement) Kind() Kind { return ComponentKind }

func (e *ComponentElement) ModelElement() model.Element {
	if e.component == nil {
		return nil
	}
	return e.component
}

func (e *ComponentElement) Component() *model.Component  { return e.component }
func (e *ComponentElement) MainCompartment() *Compartment { return e.primary() }

func (e *ComponentElement) LabelText() string {
	if e.component == nil {
		return ""
	}
	return e.component.Name()
}

func (e *ComponentElement) SetLabelText(v string) {
	if e.component == nil {
		e.component = model.NewComponent("")
	}
	e.component.SetName(v)
	e.Invalidate()
}

func (e *ComponentElement) Draw(dc render.DrawingContext) {
	e.validate(dc)
	b := e.AbsoluteBounds()
	dc.DrawRectangle(b.X, b.Y, b.Width, b.Height, componentFill)

	// icon, body with two tabs on the left edge
	x := b.X + b.Width - componentIconWidth - 4
	y := b.Y + 4
	dc.DrawRectangle(x, y, componentIconWidth, 12, componentFill)
	dc.DrawRectangle(x-4, y+2, 8, 3, componentFill)
	dc.DrawRectangle(x-4, y+7, 8, 3, componentFill)

	e.primary().Draw(dc)
}

func (e *ComponentElement) Clone() Node {
	c := &ComponentElement{component: e.component.Clone()}
	e.cloneInto(&c.compositeNode, c)
	for _, l := range c.primary().Labels() {
		l.SetSource(c)
	}
	return c
}

// AcceptsConnection always accepts the source role. Components never
// inherit and connect to other components or classes.
func (e *ComponentElement) AcceptsConnection(rt model.RelationType, as model.RelationEndType, with Node) bool {
	if as == model.Source {
		return true
	}
	if rt == model.Inheritance {
		return false
	}
	switch with.(type) {
	case *ComponentElement, *ClassElement:
		return true
	}
	return false
}
