// Package model provides the named model elements bound to diagram
// elements and the relation vocabulary used between them.
package model

// Element is a model element with a name. Diagram elements read and
// write names only through this interface.
type Element interface {
	Name() string
	SetName(string)
}

// Named is embedded by all model elements.
type Named struct {
	name string
}

func (n *Named) Name() string     { return n.name }
func (n *Named) SetName(v string) { n.name = v }

// ----------------------------------------

func NewActor(name string) *Actor {
	a := &Actor{}
	a.SetName(name)
	return a
}

type Actor struct {
	Named
}

// Clone returns a copy of a, nil if a is nil.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// ----------------------------------------

func NewComponent(name string) *Component {
	c := &Component{}
	c.SetName(name)
	return c
}

type Component struct {
	Named
}

func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// ----------------------------------------

func NewPackage(name string) *Package {
	p := &Package{}
	p.SetName(name)
	return p
}

type Package struct {
	Named
}

func (p *Package) Clone() *Package {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ----------------------------------------

func NewClass(name string) *Class {
	c := &Class{}
	c.SetName(name)
	return c
}

// Class is a classifier with attributes and operations. Features are
// owned by the class.
type Class struct {
	Named

	Abstract   bool
	Stereotype string

	Attributes []*Feature
	Operations []*Feature
}

// AddAttribute appends a new attribute with the given name.
func (c *Class) AddAttribute(name string) *Feature {
	f := NewFeature(name)
	c.Attributes = append(c.Attributes, f)
	return f
}

// AddOperation appends a new operation with the given name.
func (c *Class) AddOperation(name string) *Feature {
	f := NewFeature(name)
	c.Operations = append(c.Operations, f)
	return f
}

// Clone returns a deep copy of c, no features are shared.
func (c *Class) Clone() *Class {
	if c == nil {
		return nil
	}
	v := *c
	v.Attributes = cloneFeatures(c.Attributes)
	v.Operations = cloneFeatures(c.Operations)
	return &v
}

func cloneFeatures(src []*Feature) []*Feature {
	if src == nil {
		return nil
	}
	res := make([]*Feature, len(src))
	for i, f := range src {
		res[i] = f.Clone()
	}
	return res
}

// Feature is an attribute or operation of a class.
type Feature struct {
	Named
}

func NewFeature(name string) *Feature {
	f := &Feature{}
	f.SetName(name)
	return f
}

func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
