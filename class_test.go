package umldraw

import (
	"testing"

	"github.com/gregoryv/golden"
	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
	"github.com/gregoryv/umldraw/umltest"
)

func newOrderClass() *ClassElement {
	c := model.NewClass("Order")
	c.AddAttribute("id")
	c.AddOperation("total()")
	c.AddOperation("pay()")
	return NewClassElement(c)
}

func TestClassElement_RecalculateSize(t *testing.T) {
	e := newOrderClass()
	e.RecalculateSize(umltest.NewRecorder())

	// name 4+13+4, attributes 4+13+4, operations 4+26+4
	if got := e.Size(); got != (geom.Dimension{Width: 80, Height: 76}) {
		t.Error("size", got)
	}
	if y := e.OperationCompartment().AbsoluteY1(); y != 42 {
		t.Error("operations at", y)
	}

	// extra height goes to the operations
	e.SetSize(100, 200)
	if got := e.Size(); got != (geom.Dimension{Width: 100, Height: 200}) {
		t.Error("size", got)
	}
	if h := e.OperationCompartment().Size().Height; h != 158 {
		t.Error("operations height", h)
	}

	// below minimum is clamped and never cuts labels
	e.SetSize(1, 1)
	if got := e.Size(); !got.Covers(e.MinimumSize()) {
		t.Error("size below minimum", got)
	}
}

func TestClassElement_features(t *testing.T) {
	e := newOrderClass()
	e.RecalculateSize(umltest.NewRecorder())
	e.AddAttribute("created")
	if n := len(e.AttributeCompartment().Labels()); n != 2 {
		t.Fatal("attribute labels", n)
	}
	if e.IsValid() {
		t.Error("valid after adding attribute")
	}

	l := e.AttributeCompartment().Labels()[1]
	l.SetText("updated")
	if v := e.Class().Attributes[1].Name(); v != "updated" {
		t.Error("feature label did not write through", v)
	}
}

func TestClassElement_Clone(t *testing.T) {
	e := newOrderClass()
	x := e.Clone().(*ClassElement)

	if x.Class() == e.Class() {
		t.Fatal("model element shared")
	}
	for i, c := range x.compartments {
		if c == e.compartments[i] {
			t.Error("compartment shared", i)
		}
		if c.Parent() != x {
			t.Error("compartment not bound to clone", i)
		}
	}

	// labels of the clone only reach the cloned class
	x.OperationCompartment().Labels()[0].SetText("sum()")
	if v := e.Class().Operations[0].Name(); v != "total()" {
		t.Error("original operation renamed", v)
	}
	if v := x.Class().Operations[0].Name(); v != "sum()" {
		t.Error(v)
	}
	x.NameCompartment().Labels()[0].SetText("Invoice")
	if v := e.LabelText(); v != "Order" {
		t.Error("original renamed", v)
	}
}

func TestClassElement_stereotype(t *testing.T) {
	c := model.NewClass("Repo")
	c.Stereotype = "interface"
	c.Abstract = true
	e := NewClassElement(c)

	labels := e.NameCompartment().Labels()
	if len(labels) != 2 {
		t.Fatal("name labels", len(labels))
	}
	if v := labels[0].Text(); v != "«interface»" {
		t.Error(v)
	}
	labels[0].SetText("«service»")
	if c.Stereotype != "service" {
		t.Error(c.Stereotype)
	}

	x := e.Clone().(*ClassElement)
	x.NameCompartment().Labels()[0].SetText("entity")
	if c.Stereotype != "service" {
		t.Error("stereotype of original changed", c.Stereotype)
	}
}

func TestClassElement_Sync(t *testing.T) {
	e := newOrderClass()
	e.RecalculateSize(umltest.NewRecorder())
	c := e.Class()
	c.Abstract = true
	c.Stereotype = "entity"
	c.AddAttribute("created")
	e.Sync()

	if e.IsValid() {
		t.Error("valid after sync")
	}
	labels := e.NameCompartment().Labels()
	if len(labels) != 2 {
		t.Fatal("name labels", len(labels))
	}
	if f := labels[1].FontType(); f != render.FontAbstractElement {
		t.Error("font", f)
	}
	if n := len(e.AttributeCompartment().Labels()); n != 2 {
		t.Error("attribute labels", n)
	}
}

func TestClassElement_Draw(t *testing.T) {
	e := newOrderClass()
	dc := umltest.NewRecorder()
	e.Draw(dc)
	if !e.IsValid() {
		t.Error("invalid after draw")
	}
	golden.Assert(t, dc.String()+"\n")
}

func TestClassElement_AcceptsConnection(t *testing.T) {
	c1 := NewClassElement(nil)
	c2 := NewClassElement(nil)
	a := NewActorElement(nil)
	k := NewComponentElement(nil)

	if !c1.AcceptsConnection(model.Inheritance, model.Target, c2) {
		t.Error("inheritance between classes rejected")
	}
	if c1.AcceptsConnection(model.Inheritance, model.Source, a) {
		t.Error("source role is checked for classes")
	}
	if !c1.AcceptsConnection(model.Dependency, model.Target, k) {
		t.Error("dependency with component rejected")
	}
	if !c1.AcceptsConnection(model.Association, model.Source, nil) {
		t.Error("pending other end rejected")
	}
}

func BenchmarkClassElement_Clone(b *testing.B) {
	e := newOrderClass()
	for i := 0; i < b.N; i++ {
		e.Clone()
	}
}
