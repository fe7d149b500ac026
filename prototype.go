package umldraw

import (
	"fmt"
	"sync"

	"github.com/gregoryv/umldraw/model"
)

// NewPrototypes returns a registry with one template per element
// kind, each bound to a model element named after the kind.
func NewPrototypes() *Prototypes {
	p := &Prototypes{
		templates: make(map[Kind]Node),
	}
	p.Register(NewActorElement(model.NewActor("Actor")))
	p.Register(NewClassElement(model.NewClass("Class")))
	p.Register(NewComponentElement(model.NewComponent("Component")))
	p.Register(NewPackageElement(model.NewPackage("Package")))
	return p
}

// Prototypes holds templates new elements are cloned from. Templates
// are never handed out, only clones of them.
type Prototypes struct {
	templates map[Kind]Node
}

// Register makes n the template for its kind, replacing any
// previous one.
func (p *Prototypes) Register(n Node) {
	p.templates[n.Kind()] = n
}

// New returns a clone of the template for k.
func (p *Prototypes) New(k Kind) (Node, error) {
	t, found := p.templates[k]
	if !found {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	return t.Clone(), nil
}

// MustNew is like New but panics on error.
func (p *Prototypes) MustNew(k Kind) Node {
	n, err := p.New(k)
	if err != nil {
		panic(err)
	}
	return n
}

// Customize calls fn with a copy of the template for k, the copy
// then replaces the template. Use it to change what new elements of
// that kind look like. fn must not keep n, later changes to it would
// leak into new elements.
func (p *Prototypes) Customize(k Kind, fn func(n Node)) error {
	t, found := p.templates[k]
	if !found {
		return fmt.Errorf("%w: %v", ErrUnknownKind, k)
	}
	x := t.Clone()
	fn(x)
	p.templates[k] = x
	return nil
}

var ErrUnknownKind = fmt.Errorf("unknown element kind")

// DefaultPrototypes returns the process wide registry, created on
// first use.
func DefaultPrototypes() *Prototypes {
	defaultOnce.Do(func() {
		defaultPrototypes = NewPrototypes()
	})
	return defaultPrototypes
}

var (
	defaultOnce       sync.Once
	defaultPrototypes *Prototypes
)
