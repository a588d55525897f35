package indexbar

import "fmt"

// Orientation is the axis labels are stacked along
type Orientation uint8

const (
	// Vertical strips stack labels top to bottom. The primary axis is y
	Vertical Orientation = iota
	// Horizontal strips stack labels left to right. The primary axis is x
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", o)
	}
}

// orientationOf derives the orientation from the aspect ratio of r. Square
// bounds are horizontal
func orientationOf(r Rect) Orientation {
	if r.Width < r.Height {
		return Vertical
	}
	return Horizontal
}

// Point is a position in the coordinate space of the strip's host. Terminal
// cells map to the center of the cell, see [CellPoint]
type Point struct {
	X float64
	Y float64
}

// CellPoint returns the point at the center of the cell at col, row
func CellPoint(col int, row int) Point {
	return Point{
		X: float64(col) + 0.5,
		Y: float64(row) + 0.5,
	}
}

// Rect is an axis aligned rectangle. Containment is half open: the left and
// top edges are inside, the right and bottom edges are not
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return !(r.Width > 0) || !(r.Height > 0)
}

// axes splits r and p into the primary and cross axis for o. It returns the
// projected primary coordinate, the primary origin and extent, the cross
// coordinate, and the cross origin and extent
func axes(o Orientation, r Rect, p Point) (pos, origin, extent, cross, crossOrigin, crossExtent float64) {
	if o == Vertical {
		return p.Y, r.Y, r.Height, p.X, r.X, r.Width
	}
	return p.X, r.X, r.Width, p.Y, r.Y, r.Height
}
