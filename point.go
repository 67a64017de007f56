package tilegeom

import (
	"fmt"
	"iter"
)

// Point is a location on the tile grid.
type Point struct {
	X, Y int
}

// Origin is the zero point.
var Origin = Point{}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{x, y} }

// Add returns the point displaced by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the point displaced by the negation of q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// AddSize returns the point displaced by sz's width and height.
func (p Point) AddSize(sz Size) Point { return Point{p.X + sz.Width, p.Y + sz.Height} }

// SubSize returns the point displaced backwards by sz's width and
// height.
func (p Point) SubSize(sz Size) Point { return Point{p.X - sz.Width, p.Y - sz.Height} }

// Step returns the point one tile away in the given direction.
func (p Point) Step(d Direction) Point { return p.Add(d.Delta()) }

// Unstep returns the point one tile away in the opposite of the
// given direction.
func (p Point) Unstep(d Direction) Point { return p.Sub(d.Delta()) }

// Neighbors yields the eight surrounding points in direction
// enumeration order.
func (p Point) Neighbors() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range AllDirections {
			if !yield(p.Step(d)) {
				return
			}
		}
	}
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Size is the extent of a rectangular block of tiles. Both
// dimensions are expected to be non-negative; use Sz to enforce
// that.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{w, h}. It panics if either dimension is
// negative.
func Sz(w, h int) Size {
	if w < 0 || h < 0 {
		panic("tilegeom: negative size")
	}
	return Size{w, h}
}

// Area returns the number of tiles a block of this size covers.
func (s Size) Area() int { return s.Width * s.Height }

// Div scales the size down by n, flooring each dimension. It panics
// if n is not positive.
func (s Size) Div(n int) Size {
	if n <= 0 {
		panic("tilegeom: non-positive divisor")
	}
	return Size{floorDiv(s.Width, n), floorDiv(s.Height, n)}
}

// ToRect returns the rectangle of this size with its top-left corner
// at p.
func (s Size) ToRect(p Point) Rect { return Rect{TopLeft: p, Size: s} }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }
