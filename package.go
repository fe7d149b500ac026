package umldraw

import (
	"image/color"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/model"
	"github.com/gregoryv/umldraw/render"
)

const (
	packageMinWidth  = 120
	packageMinHeight = 80
	// space around the tab label and around nested elements
	packagePad = 6
)

var packageFill = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}

func NewPackageElement(p *model.Package) *PackageElement {
	e := &PackageElement{pkg: p}
	main := NewCompartment()
	main.AddLabel(NewLabel(e, render.FontElementName))
	e.init(e, main)
	e.SetMinimumSize(packageMinWidth, packageMinHeight)
	return e
}

// PackageElement is a container, nested elements are positioned
// relative to its origin.
type PackageElement struct {
	compositeNode

	pkg *model.Package
}

func (e *PackageElement) Kind() Kind { return PackageKind }

func (e *PackageElement) ModelElement() model.Element {
	if e.pkg == nil {
		return nil
	}
	return e.pkg
}

func (e *PackageElement) Package() *model.Package { return e.pkg }

func (e *PackageElement) LabelText() string {
	if e.pkg == nil {
		return ""
	}
	return e.pkg.Name()
}

func (e *PackageElement) SetLabelText(v string) {
	if e.pkg == nil {
		e.pkg = model.NewPackage("")
	}
	e.pkg.SetName(v)
	e.Invalidate()
}

func (e *PackageElement) CanNestElements() bool { return true }

// RecalculateSize recalculates all nested elements first, the package
// then grows to cover them.
func (e *PackageElement) RecalculateSize(dc render.DrawingContext) {
	e.recalculateParts(dc)
	p := e.primary()
	d := p.Size().Max(p.MinimumSize()).Max(e.tab()).Max(e.childExtent())
	p.SetSize(d.Width, d.Height)
	e.notifyResized()
}

// tab returns the size of the name tab.
func (e *PackageElement) tab() geom.Dimension {
	c := e.primary().ContentSize()
	return geom.Dimension{
		Width:  c.Width + 2*packagePad,
		Height: c.Height + packagePad,
	}
}

// childExtent returns the size needed to cover all children.
func (e *PackageElement) childExtent() geom.Dimension {
	var d geom.Dimension
	for _, c := range e.children {
		o, s := c.Origin(), c.Size()
		d = d.Max(geom.Dimension{
			Width:  o.X + s.Width + packagePad,
			Height: o.Y + s.Height + packagePad,
		})
	}
	return d
}

func (e *PackageElement) Draw(dc render.DrawingContext) {
	e.validate(dc)
	b := e.AbsoluteBounds()
	tab := e.tab()
	dc.DrawRectangle(b.X, b.Y, tab.Width, tab.Height, packageFill)
	dc.DrawRectangle(b.X, b.Y+tab.Height, b.Width, b.Height-tab.Height, packageFill)
	e.primary().Draw(dc)
	for _, c := range e.children {
		c.Draw(dc)
	}
}

func (e *PackageElement) Clone() Node {
	c := &PackageElement{pkg: e.pkg.Clone()}
	e.cloneInto(&c.compositeNode, c)
	for _, l := range c.primary().Labels() {
		l.SetSource(c)
	}
	return c
}

// AcceptsConnection checks both roles, packages only depend on other
// packages.
func (e *PackageElement) AcceptsConnection(rt model.RelationType, _ model.RelationEndType, with Node) bool {
	if with == nil {
		return true
	}
	if rt != model.Dependency {
		return false
	}
	_, ok := with.(*PackageElement)
	return ok
}
