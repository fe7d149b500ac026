package umldraw

import (
	"image/color"

	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

const (
	actorMinWidth  = 40
	actorMinHeight = 80
	actorMarginTop = 20
)

// NewActorElement returns an actor bound to a. a may be nil until the
// element is named.
func NewActorElement(a *model.Actor) *ActorElement {
	e := &ActorElement{actor: a}
	main := NewCompartment()
	main.AddLabel(NewLabel(e, render.FontElementName))
	main.SetMarginTop(actorMarginTop)
	e.init(e, main)
	e.SetMinimumSize(actorMinWidth, actorMinHeight)
	return e
}

// ActorElement is drawn as a stick figure icon. Its single
// compartment only reserves space and hit tests the name label.
type ActorElement struct {
	compositeNode

	actor *model.Actor
}

func (e *ActorElement) Kind() Kind { return ActorKind }

// ModelElement returns the bound actor or nil.
func (e *ActorElement) ModelElement() model.Element {
	if e.actor == nil {
		return nil
	}
	return e.actor
}

func (e *ActorElement) Actor() *model.Actor           { return e.actor }
func (e *ActorElement) MainCompartment() *Compartment { return e.primary() }

func (e *ActorElement) SetActor(v *model.Actor) {
	e.actor = v
	e.Invalidate()
}

// LabelText returns the name of the bound actor.
func (e *ActorElement) LabelText() string {
	if e.actor == nil {
		return ""
	}
	return e.actor.Name()
}

// SetLabelText renames the bound actor, binding a new one if none is
// set.
func (e *ActorElement) SetLabelText(v string) {
	if e.actor == nil {
		e.actor = model.NewActor("")
	}
	e.actor.SetName(v)
	e.Invalidate()
}

func (e *ActorElement) Draw(dc render.DrawingContext) {
	e.validate(dc)
	e.drawIcon(dc)
}

func (e *ActorElement) drawIcon(dc render.DrawingContext) {
	var (
		x = e.AbsoluteX1()
		y = e.AbsoluteY1()
		s = e.Size()
	)
	dc.DrawRectangle(x, y+s.Height/2, s.Width, s.Height/2, color.White)
	dc.DrawEllipse(x, y, s.Width, s.Height/2)
	dc.DrawLabel(e.LabelText(), x+s.Width/3, y+s.Height+10, render.FontDefault)
}

func (e *ActorElement) Clone() Node {
	c := &ActorElement{actor: e.actor.Clone()}
	e.cloneInto(&c.compositeNode, c)
	for _, l := range c.primary().Labels() {
		l.SetSource(c)
	}
	return c
}

// AcceptsConnection always accepts the source role, the source end is
// checked before the target is known. Inheritance is only for
// classes and other relations only between actors.
func (e *ActorElement) AcceptsConnection(rt model.RelationType, as model.RelationEndType, with Node) bool {
	if as == model.Source {
		return true
	}
	if rt == model.Inheritance {
		return false
	}
	_, ok := with.(*ActorElement)
	return ok
}
