package umldraw

import (
	"bytes"
	"io"
	"os"

	"github.com/gregoryv/umldraw/svgdc"
)

// svgPad surrounds the drawing, actor names are drawn below the icon.
const svgPad = 30

// WriteSVG draws the diagram as SVG to w.
func (d *Diagram) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	c := svgdc.New(&buf)
	for _, n := range d.nodes {
		if !n.IsValid() {
			n.RecalculateSize(c)
		}
	}
	b := d.Bounds()
	c.Start(int(b.X+b.Width)+svgPad, int(b.Y+b.Height)+svgPad)
	d.Draw(c)
	c.End()
	_, err := w.Write(buf.Bytes())
	return err
}

// SaveAs writes the diagram as SVG to the named file.
func (d *Diagram) SaveAs(filename string) error {
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fh.Close()
	return d.WriteSVG(fh)
}
