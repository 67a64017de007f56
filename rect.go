package tilegeom

import (
	"fmt"
	"iter"
)

// Rect is an axis-aligned rectangle of tiles, identified by its
// top-left corner and size. All four edges are inclusive, unlike
// image.Rectangle's half-open convention. A Rect with zero area is
// permitted, but the edge and iteration methods assume positive
// width and height.
type Rect struct {
	TopLeft Point
	Size    Size
}

// NewRect returns the rectangle of the given size whose top-left
// corner is at topleft.
func NewRect(topleft Point, size Size) Rect { return Rect{topleft, size} }

// RectFromEdges returns the rectangle bounded by the four edge
// coordinates, all inclusive. It panics if the edges are inverted.
func RectFromEdges(top, bottom, left, right int) Rect {
	return Rect{Point{left, top}, Sz(right-left+1, bottom-top+1)}
}

// RectFromSpans returns the rectangle covering the rows of vertical
// and the columns of horizontal.
func RectFromSpans(vertical, horizontal Span) Rect {
	return RectFromEdges(vertical.Start, vertical.End, horizontal.Start, horizontal.End)
}

// CenteredAt returns the rectangle of the given size centered on
// center. An even dimension cannot center exactly; it extends one
// tile further toward the top left.
func CenteredAt(size Size, center Point) Rect {
	return Rect{Point{center.X - size.Width/2, center.Y - size.Height/2}, size}
}

func (r Rect) Top() int    { return r.TopLeft.Y }
func (r Rect) Bottom() int { return r.TopLeft.Y + r.Size.Height - 1 }
func (r Rect) Left() int   { return r.TopLeft.X }
func (r Rect) Right() int  { return r.TopLeft.X + r.Size.Width - 1 }
func (r Rect) Width() int  { return r.Size.Width }
func (r Rect) Height() int { return r.Size.Height }
func (r Rect) Area() int   { return r.Size.Area() }

// VerticalSpan returns the rows the rectangle covers.
func (r Rect) VerticalSpan() Span { return Span{r.Top(), r.Bottom()} }

// HorizontalSpan returns the columns the rectangle covers.
func (r Rect) HorizontalSpan() Span { return Span{r.Left(), r.Right()} }

// EdgeLength returns the length of the edge on the given side of the
// rectangle. It panics unless edge is orthogonal.
func (r Rect) EdgeLength(edge Direction) int {
	switch edge {
	case Up, Down:
		return r.Width()
	case Left, Right:
		return r.Height()
	}
	panic("tilegeom: expected an orthogonal direction")
}

// EdgeSpan returns the span of coordinates along the edge on the
// given side of the rectangle. It panics unless edge is orthogonal.
func (r Rect) EdgeSpan(edge Direction) Span {
	switch edge {
	case Up, Down:
		return r.HorizontalSpan()
	case Left, Right:
		return r.VerticalSpan()
	}
	panic("tilegeom: expected an orthogonal direction")
}

// EdgePoint returns a point addressed relative to one edge of the
// rectangle. Parallel is the absolute coordinate along the edge; for
// the top edge it is the x coordinate. Orthogonal is the offset from
// the edge toward the rectangle's interior, so for the top edge the
// resulting y coordinate is Top()+orthogonal. It panics unless edge
// is orthogonal.
func (r Rect) EdgePoint(edge Direction, parallel, orthogonal int) Point {
	switch edge {
	case Up:
		return Point{parallel, r.Top() + orthogonal}
	case Down:
		return Point{parallel, r.Bottom() - orthogonal}
	case Left:
		return Point{r.Left() + orthogonal, parallel}
	case Right:
		return Point{r.Right() - orthogonal, parallel}
	}
	panic("tilegeom: expected an orthogonal direction")
}

// RelativePoint returns the point a given fraction of the way across
// the rectangle: RelativePoint(0, 0) is the top-left corner and
// RelativePoint(1, 1) the bottom-right. Fractions round half up.
func (r Rect) RelativePoint(rw, rh float64) Point {
	return Point{
		r.Left() + int(float64(r.Width()-1)*rw+0.5),
		r.Top() + int(float64(r.Height()-1)*rh+0.5),
	}
}

// Center returns the rectangle's central point. An even dimension
// has no central tile; the center rounds toward the bottom right.
func (r Rect) Center() Point { return r.RelativePoint(0.5, 0.5) }

// ContainsPoint reports whether p lies within the rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Left() <= p.X && p.X <= r.Right() &&
		r.Top() <= p.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely within the
// rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Top() <= other.Top() && r.Bottom() >= other.Bottom() &&
		r.Left() <= other.Left() && r.Right() >= other.Right()
}

// WithTop returns a copy of r with its top edge moved to top and the
// other three edges unchanged.
func (r Rect) WithTop(top int) Rect {
	return RectFromEdges(top, r.Bottom(), r.Left(), r.Right())
}

// WithBottom returns a copy of r with its bottom edge moved to
// bottom and the other three edges unchanged.
func (r Rect) WithBottom(bottom int) Rect {
	return RectFromEdges(r.Top(), bottom, r.Left(), r.Right())
}

// WithLeft returns a copy of r with its left edge moved to left and
// the other three edges unchanged.
func (r Rect) WithLeft(left int) Rect {
	return RectFromEdges(r.Top(), r.Bottom(), left, r.Right())
}

// WithRight returns a copy of r with its right edge moved to right
// and the other three edges unchanged.
func (r Rect) WithRight(right int) Rect {
	return RectFromEdges(r.Top(), r.Bottom(), r.Left(), right)
}

// Shift moves each edge by its own offset independently, growing or
// shrinking the rectangle. Zero offsets leave their edges in place.
func (r Rect) Shift(top, bottom, left, right int) Rect {
	return RectFromEdges(r.Top()+top, r.Bottom()+bottom, r.Left()+left, r.Right()+right)
}

// Shrink moves all four edges inward by amount. If an axis's edges
// would cross, that axis collapses to its single midpoint instead.
func (r Rect) Shrink(amount int) Rect {
	left, right := r.Left()+amount, r.Right()-amount
	if left > right {
		left = floorDiv(r.Left()+r.Right(), 2)
		right = left
	}

	top, bottom := r.Top()+amount, r.Bottom()-amount
	if top > bottom {
		top = floorDiv(r.Top()+r.Bottom(), 2)
		bottom = top
	}

	return RectFromEdges(top, bottom, left, right)
}

// Border yields every point on the rectangle's perimeter paired with
// the direction of the side it sits on: the four orthogonal
// directions along the edges, the four diagonal directions at the
// corners. Edge interiors come first, corners last.
func (r Rect) Border() iter.Seq2[Point, Direction] {
	return func(yield func(Point, Direction) bool) {
		for x := r.Left() + 1; x < r.Right(); x++ {
			if !yield(Point{x, r.Top()}, Up) {
				return
			}
			if !yield(Point{x, r.Bottom()}, Down) {
				return
			}
		}
		for y := r.Top() + 1; y < r.Bottom(); y++ {
			if !yield(Point{r.Left(), y}, Left) {
				return
			}
			if !yield(Point{r.Right(), y}, Right) {
				return
			}
		}

		corners := [...]struct {
			p Point
			d Direction
		}{
			{Point{r.Left(), r.Top()}, UpLeft},
			{Point{r.Right(), r.Top()}, UpRight},
			{Point{r.Left(), r.Bottom()}, DownLeft},
			{Point{r.Right(), r.Bottom()}, DownRight},
		}
		for _, c := range corners {
			if !yield(c.p, c.d) {
				return
			}
		}
	}
}

// Points yields every tile in the rectangle, column by column from
// the left, top to bottom within each column.
func (r Rect) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := r.Left(); x <= r.Right(); x++ {
			for y := r.Top(); y <= r.Bottom(); y++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// RangeWidth yields every x coordinate within the rectangle's width.
func (r Rect) RangeWidth() iter.Seq[int] { return r.HorizontalSpan().All() }

// RangeHeight yields every y coordinate within the rectangle's
// height.
func (r Rect) RangeHeight() iter.Seq[int] { return r.VerticalSpan().All() }

func (r Rect) String() string { return fmt.Sprintf("%v+%v", r.TopLeft, r.Size) }
