package tilegeom

import (
	"fmt"
	"iter"
	"slices"
)

// Direction is one of the eight compass directions on a tile grid.
// Directions enumerate clockwise starting from Up; Point.Neighbors
// and Directions yield in this order.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Groupings of directions. The slices are in enumeration order and
// must not be modified.
var (
	AllDirections        = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
	OrthogonalDirections = []Direction{Up, Right, Down, Left}
	DiagonalDirections   = []Direction{UpRight, DownRight, DownLeft, UpLeft}
)

var directionDeltas = [...]Point{
	Up:        {0, -1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
	Down:      {0, 1},
	DownLeft:  {-1, 1},
	Left:      {-1, 0},
	UpLeft:    {-1, -1},
}

var directionNames = [...]string{
	Up:        "up",
	UpRight:   "up-right",
	Right:     "right",
	DownRight: "down-right",
	Down:      "down",
	DownLeft:  "down-left",
	Left:      "left",
	UpLeft:    "up-left",
}

// Directions yields all eight directions in enumeration order.
func Directions() iter.Seq[Direction] {
	return slices.Values(AllDirections)
}

// DirectionFromDelta returns the direction with the given unit
// vector, or false if delta is not one.
func DirectionFromDelta(delta Point) (Direction, bool) {
	for d, v := range directionDeltas {
		if v == delta {
			return Direction(d), true
		}
	}
	return 0, false
}

// Delta returns the direction's unit vector. Up is (0, -1): y grows
// downward.
func (d Direction) Delta() Point { return directionDeltas[d] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// AdjacentTo reports whether d and other are at most one compass
// step apart: their vectors match on one axis and differ by at most
// one on the other. A direction is adjacent to itself.
func (d Direction) AdjacentTo(other Direction) bool {
	a, b := d.Delta(), other.Delta()
	return (a.X == b.X && abs(a.Y-b.Y) <= 1) ||
		(a.Y == b.Y && abs(a.X-b.X) <= 1)
}

// Orthogonal reports whether d is axis-aligned. Orthogonal and
// diagonal directions alternate in enumeration order.
func (d Direction) Orthogonal() bool { return d%2 == 0 }

// Diagonal reports whether d is one of the four corner directions.
func (d Direction) Diagonal() bool { return d%2 != 0 }

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
