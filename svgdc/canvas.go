// Package svgdc provides a drawing context writing SVG.
package svgdc

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/render"
)

// New returns a canvas writing to w using a fixed 7x13 font for
// measuring text.
func New(w io.Writer) *Canvas {
	return &Canvas{
		Face:       basicfont.Face7x13,
		Stroke:     "#000000",
		FontFamily: "monospace",
		svg:        svg.New(w),
	}
}

// Canvas implements render.DrawingContext. Public fields can be
// modified before calling Start.
type Canvas struct {
	// Face is used to measure text, the written SVG only refers to
	// FontFamily so the viewer should have a similar font.
	Face       font.Face
	Stroke     string
	FontFamily string

	svg *svg.SVG
}

// Start writes the SVG header for a drawing of the given size.
func (c *Canvas) Start(width, height int) {
	c.svg.Start(width, height)
}

// End closes the SVG document.
func (c *Canvas) End() {
	c.svg.End()
}

func (c *Canvas) DrawRectangle(x, y, w, h float64, fill color.Color) {
	c.svg.Rect(px(x), px(y), px(w), px(h),
		fmt.Sprintf("fill:%s;stroke:%s", render.Hex(fill), c.Stroke),
	)
}

func (c *Canvas) DrawEllipse(x, y, w, h float64) {
	c.svg.Ellipse(px(x+w/2), px(y+h/2), px(w/2), px(h/2),
		fmt.Sprintf("fill:none;stroke:%s", c.Stroke),
	)
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.svg.Line(px(x1), px(y1), px(x2), px(y2),
		fmt.Sprintf("stroke:%s", c.Stroke),
	)
}

// DrawLabel places text so its top is at y.
func (c *Canvas) DrawLabel(text string, x, y float64, f render.FontType) {
	ascent := c.Face.Metrics().Ascent.Ceil()
	c.svg.Text(px(x), px(y)+ascent, text, c.textStyle(f))
}

func (c *Canvas) textStyle(f render.FontType) string {
	s := fmt.Sprintf("font-family:%s;font-size:%dpx", c.FontFamily, c.lineHeight())
	switch f {
	case render.FontElementName:
		s += ";font-weight:bold"
	case render.FontAbstractElement:
		s += ";font-weight:bold;font-style:italic"
	case render.FontStereotype:
		s += ";font-style:italic"
	}
	return s
}

// TextSize measures text with Face. All font roles use the same
// metrics.
func (c *Canvas) TextSize(text string, _ render.FontType) geom.Dimension {
	w := font.MeasureString(c.Face, text).Ceil()
	return geom.Dimension{
		Width:  float64(w),
		Height: float64(c.lineHeight()),
	}
}

func (c *Canvas) lineHeight() int {
	return c.Face.Metrics().Height.Ceil()
}

func px(v float64) int {
	return int(math.Round(v))
}
