// Package geom provides the size and position values used by diagram
// elements.
package geom

import "fmt"

// Dimension is a width and height pair. Values are never negative
// when produced by this module.
type Dimension struct {
	Width, Height float64
}

// Max returns the component wise maximum of d and o.
func (d Dimension) Max(o Dimension) Dimension {
	if o.Width > d.Width {
		d.Width = o.Width
	}
	if o.Height > d.Height {
		d.Height = o.Height
	}
	return d
}

// Covers returns true if d is at least as wide and as high as o.
func (d Dimension) Covers(o Dimension) bool {
	return d.Width >= o.Width && d.Height >= o.Height
}

func (d Dimension) String() string {
	return fmt.Sprintf("%vx%v", d.Width, d.Height)
}

type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Rect is a bounding box with its origin in the top left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a rectangle at p with size d.
func NewRect(p Point, d Dimension) Rect {
	return Rect{X: p.X, Y: p.Y, Width: d.Width, Height: d.Height}
}

// Contains returns true if x,y is inside or on the edge of r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x1, y1 := min(r.X, o.X), min(r.Y, o.Y)
	x2 := max(r.X+r.Width, o.X+o.Width)
	y2 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Size() Dimension {
	return Dimension{Width: r.Width, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v,%v %vx%v]", r.X, r.Y, r.Width, r.Height)
}
