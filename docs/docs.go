// Package docs generates diagrams describing umldraw.
package docs

import (
	"github.com/gregoryv/draw/design"
	"github.com/gregoryv/umldraw"
	"github.com/gregoryv/umldraw/model"
)

func NewDesignDiagram() *design.ClassDiagram {
	var (
		d           = design.NewClassDiagram()
		node        = d.Interface((*umldraw.Node)(nil))
		listener    = d.Interface((*umldraw.NodeChangeListener)(nil))
		labelSource = d.Interface((*umldraw.LabelSource)(nil))

		actor     = d.Struct(umldraw.ActorElement{})
		class     = d.Struct(umldraw.ClassElement{})
		component = d.Struct(umldraw.ComponentElement{})
		pkg       = d.Struct(umldraw.PackageElement{})

		compartment = d.Struct(umldraw.Compartment{})
		label       = d.Struct(umldraw.Label{})
		connection  = d.Struct(umldraw.Connection{})
		diagram     = d.Struct(umldraw.Diagram{})
		prototypes  = d.Struct(umldraw.Prototypes{})
	)

	d.Place(node).At(20, 20)
	d.Place(listener, labelSource).RightOf(node)
	d.Place(actor, component).Below(node)
	d.Place(class, pkg).RightOf(component)
	d.Place(compartment).Below(actor)
	d.Place(label).RightOf(compartment)
	d.Place(diagram, connection, prototypes).Below(compartment).Move(0, 40)
	return d
}

// NewDrawSequence shows how an invalid node is recalculated when
// drawn.
func NewDrawSequence() *design.SequenceDiagram {
	d := design.NewSequenceDiagram()
	d.ColWidth = 140
	var (
		dia  = d.AddStruct(umldraw.Diagram{})
		node = d.AddStruct(umldraw.ActorElement{})
		comp = d.AddStruct(umldraw.Compartment{})
		con  = d.AddStruct(umldraw.Connection{})
	)
	d.Link(dia, node, "Draw(dc)")
	d.Link(node, node, "IsValid")
	d.Link(node, comp, "RecalculateSize(dc)")
	d.Link(node, con, "NodeResized")
	d.Link(dia, con, "Draw(dc)")
	d.Link(con, con, "reroute")
	d.SetCaption("Figure 1. Drawing an invalid node")
	return d
}

// NewPalette returns a diagram with one element per kind, cloned
// from the default prototypes.
func NewPalette() *umldraw.Diagram {
	d := umldraw.NewDiagram()
	protos := umldraw.DefaultPrototypes()
	var x float64 = 20
	var nodes []umldraw.Node
	for _, k := range umldraw.Kinds {
		n := protos.MustNew(k)
		n.SetOrigin(x, 20)
		d.Add(n)
		nodes = append(nodes, n)
		x += 160
	}
	d.Connect(model.Association, nodes[0], nodes[0])
	d.Connect(model.Dependency, nodes[2], nodes[1])
	return d
}
