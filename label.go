package umldraw

import (
	"github.com/gregoryv/umldraw/geom"
	"github.com/gregoryv/umldraw/render"
)

// LabelSource is implemented by anything a label can display text
// of. Labels never own their source.
type LabelSource interface {
	LabelText() string
	SetLabelText(string)
}

// NewLabel returns a label showing text of src.
func NewLabel(src LabelSource, font render.FontType) *Label {
	return &Label{
		source: src,
		font:   font,
	}
}

// Label is a view of the text of its source. Position is relative to
// the compartment holding it.
type Label struct {
	source LabelSource
	font   render.FontType
	origin geom.Point
	size   geom.Dimension
}

// Text returns the current text of the source, empty if no source is
// set.
func (l *Label) Text() string {
	if l.source == nil {
		return ""
	}
	return l.source.LabelText()
}

// SetText writes v to the source. Ignored if no source is set.
func (l *Label) SetText(v string) {
	if l.source == nil {
		return
	}
	l.source.SetLabelText(v)
}

func (l *Label) Source() LabelSource           { return l.source }
func (l *Label) SetSource(v LabelSource)       { l.source = v }
func (l *Label) FontType() render.FontType     { return l.font }
func (l *Label) SetFontType(v render.FontType) { l.font = v }

// Origin returns the position relative to the owning compartment.
func (l *Label) Origin() geom.Point { return l.origin }

// Size returns the last measured size.
func (l *Label) Size() geom.Dimension { return l.size }

// recalculateSize measures the label text.
func (l *Label) recalculateSize(dc render.DrawingContext) {
	l.size = dc.TextSize(l.Text(), l.font)
}

// Clone returns a copy still bound to the same source.
func (l *Label) Clone() *Label {
	c := *l
	return &c
}
