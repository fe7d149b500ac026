// Package render defines the drawing collaborator used by diagram
// elements.
package render

import (
	"fmt"
	"image/color"

	"github.com/gregoryv/umldraw/geom"
)

// DrawingContext is implemented by rendering backends. Elements
// only call these primitives; coordinates are absolute.
type DrawingContext interface {
	// DrawRectangle draws a rectangle outline filled with fill. A nil
	// fill leaves the rectangle transparent.
	DrawRectangle(x, y, w, h float64, fill color.Color)

	// DrawEllipse draws the ellipse inscribed in the given box.
	DrawEllipse(x, y, w, h float64)

	DrawLine(x1, y1, x2, y2 float64)

	// DrawLabel draws text with its top left corner at x,y.
	DrawLabel(text string, x, y float64, font FontType)

	// TextSize returns the size text occupies when drawn with font.
	TextSize(text string, font FontType) geom.Dimension
}

// FontType is the role of a font, backends choose the actual face.
type FontType uint8

const (
	FontDefault FontType = iota
	FontElementName
	FontAbstractElement
	FontStereotype
)

func (f FontType) String() string {
	switch f {
	case FontDefault:
		return "default"
	case FontElementName:
		return "element-name"
	case FontAbstractElement:
		return "abstract-element"
	case FontStereotype:
		return "stereotype"
	default:
		return fmt.Sprintf("FontType(%d)", uint8(f))
	}
}

// Hex returns c as #rrggbb, or "none" if c is nil.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
