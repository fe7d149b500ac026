package umldraw

import (
	"testing"

	"github.com/gregoryv/golden"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/umltest"
)

func TestComponentElement_Draw(t *testing.T) {
	e := NewComponentElement(model.NewComponent("Billing"))
	dc := umltest.NewRecorder()
	e.Draw(dc)
	golden.Assert(t, dc.String()+"\n")
}

func TestComponentElement_Clone(t *testing.T) {
	e := NewComponentElement(model.NewComponent("Billing"))
	x := e.Clone().(*ComponentElement)
	x.MainCompartment().Labels()[0].SetText("Shipping")
	if v := e.LabelText(); v != "Billing" {
		t.Error("original renamed", v)
	}
	if v := x.Component().Name(); v != "Shipping" {
		t.Error(v)
	}
}

func TestComponentElement_AcceptsConnection(t *testing.T) {
	k := NewComponentElement(nil)
	if !k.AcceptsConnection(model.Inheritance, model.Source, nil) {
		t.Error("source end should always be accepted")
	}
	if k.AcceptsConnection(model.Inheritance, model.Target, NewComponentElement(nil)) {
		t.Error("inheritance accepted")
	}
	if k.AcceptsConnection(model.Dependency, model.Target, NewPackageElement(nil)) {
		t.Error("dependency on package accepted")
	}
}
