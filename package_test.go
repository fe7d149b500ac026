package umldraw

import (
	"testing"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/umltest"
)

func TestPackageElement_nesting(t *testing.T) {
	p := NewPackageElement(model.NewPackage("Shop"))
	p.SetOrigin(100, 100)
	a := NewActorElement(model.NewActor("Bob"))
	p.addChild(a)
	a.SetOrigin(10, 30)

	if a.Parent() != p {
		t.Fatal("parent not set")
	}
	if x, y := a.AbsoluteX1(), a.AbsoluteY1(); x != 110 || y != 130 {
		t.Error("absolute position", x, y)
	}

	dc := umltest.NewRecorder()
	p.RecalculateSize(dc)
	if !p.IsValid() || !a.IsValid() {
		t.Fatal("invalid after recalculation")
	}
	// covers actor at 10,30 sized 40x80 plus padding
	if got := p.Size(); got != (geom.Dimension{Width: 120, Height: 116}) {
		t.Error("size", got)
	}

	// invalidating a child propagates to the container
	a.SetLabelText("Alice")
	if p.IsValid() {
		t.Error("container valid after child renamed")
	}
	p.Draw(dc)
	if !p.IsValid() || !a.IsValid() {
		t.Error("invalid after draw")
	}

	// moving a child invalidates the container
	a.SetOrigin(200, 30)
	if p.IsValid() {
		t.Error("container valid after child moved")
	}
	p.RecalculateSize(dc)
	if w := p.Size().Width; w != 246 {
		t.Error("width", w)
	}
}

func TestPackageElement_Clone(t *testing.T) {
	p := NewPackageElement(model.NewPackage("Shop"))
	a := NewActorElement(model.NewActor("Bob"))
	p.addChild(a)

	x := p.Clone().(*PackageElement)
	children := x.Children()
	if len(children) != 1 {
		t.Fatal("children", len(children))
	}
	ca := children[0].(*ActorElement)
	if ca == a {
		t.Fatal("child shared")
	}
	if ca.Parent() != x {
		t.Error("cloned child not reparented")
	}
	if a.Parent() != p {
		t.Error("original child reparented")
	}
	ca.SetLabelText("Clone")
	if a.LabelText() != "Bob" {
		t.Error("original child renamed")
	}
	if x.Package() == p.Package() {
		t.Error("model element shared")
	}
}

func TestPackageElement_removeChild(t *testing.T) {
	p := NewPackageElement(nil)
	a := NewActorElement(nil)
	p.addChild(a)
	if !p.removeChild(a) {
		t.Fatal("not removed")
	}
	if a.Parent() != nil {
		t.Error("back reference kept")
	}
	if p.removeChild(a) {
		t.Error("removed twice")
	}
}

func TestPackageElement_Draw(t *testing.T) {
	p := NewPackageElement(model.NewPackage("Shop"))
	p.addChild(NewActorElement(model.NewActor("Bob")))
	dc := umltest.NewRecorder()
	p.Draw(dc)
	calls := dc.Calls()
	// tab, body, name and the three calls of the actor
	if len(calls) != 6 {
		t.Fatal(dc)
	}
	if calls[0] != "rect 0 0 40 19 #f4f4f4" {
		t.Error("tab", calls[0])
	}
}

func TestPackageElement_AcceptsConnection(t *testing.T) {
	p1 := NewPackageElement(nil)
	p2 := NewPackageElement(nil)
	if !p1.AcceptsConnection(model.Dependency, model.Target, p2) {
		t.Error("dependency between packages rejected")
	}
	if p1.AcceptsConnection(model.Association, model.Target, p2) {
		t.Error("association between packages accepted")
	}
	if !p1.CanNestElements() {
		t.Error("package is a container")
	}
}
