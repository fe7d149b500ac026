// Package umltest provides test types
package umltest

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/render"
)

// NewRecorder returns a drawing context with fixed width text
// metrics, 7x13 per character like a basic terminal font.
func NewRecorder() *Recorder {
	return &Recorder{
		CharWidth:  7,
		LineHeight: 13,
	}
}

// Recorder records draw calls one per line.
type Recorder struct {
	CharWidth  float64
	LineHeight float64

	// Measured counts calls to TextSize
	Measured int

	calls []string
}

func (r *Recorder) DrawRectangle(x, y, w, h float64, fill color.Color) {
	r.record("rect %v %v %v %v %s", x, y, w, h, render.Hex(fill))
}

func (r *Recorder) DrawEllipse(x, y, w, h float64) {
	r.record("ellipse %v %v %v %v", x, y, w, h)
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.record("line %v %v %v %v", x1, y1, x2, y2)
}

func (r *Recorder) DrawLabel(text string, x, y float64, font render.FontType) {
	r.record("label %q %v %v %s", text, x, y, font)
}

func (r *Recorder) TextSize(text string, _ render.FontType) geom.Dimension {
	r.Measured++
	return geom.Dimension{
		Width:  float64(len([]rune(text))) * r.CharWidth,
		Height: r.LineHeight,
	}
}

// Calls returns recorded calls in order.
func (r *Recorder) Calls() []string { return r.calls }

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.Measured = 0
}

func (r *Recorder) String() string {
	return strings.Join(r.calls, "\n")
}

func (r *Recorder) record(format string, v ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, v...))
}
