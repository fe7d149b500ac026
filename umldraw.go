/*
Package umldraw provides the structural model of UML diagram
elements.

Elements are composite nodes owning compartments which own labels.
Geometry is computed lazily, any change that may affect the size of a
node invalidates it and its containers. Drawing an invalid node
recalculates it first.

	dc := umltest.NewRecorder() // or svgdc.New(w)
	actor := umldraw.DefaultPrototypes().MustNew(umldraw.ActorKind)
	actor.SetOrigin(10, 10)
	actor.Draw(dc)

Relations between elements are validated by both ends, see
Node.AcceptsConnection and Diagram.Connect.
*/
package umldraw
