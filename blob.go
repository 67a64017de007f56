package tilegeom

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"slices"
)

// Blob is a region of arbitrary shape covering a discrete set of
// tiles. It stores, for each occupied row, the sorted,
// non-overlapping spans of columns occupied on that row; rows with
// no tiles are not stored at all. It is intended for, and performs
// best on, regions that are mostly contiguous.
//
// The zero Blob is an empty region. Blobs are immutable: Union and
// Difference build new Blobs and never modify their operands.
type Blob struct {
	rows map[int][]Span
}

// BlobFromRect returns the blob covering exactly the tiles of r.
func BlobFromRect(r Rect) Blob {
	row := []Span{r.HorizontalSpan()}
	rows := make(map[int][]Span, r.Height())
	for y := r.Top(); y <= r.Bottom(); y++ {
		rows[y] = row
	}
	return Blob{rows: rows}
}

// ContainsPoint reports whether p is one of the blob's tiles.
func (b Blob) ContainsPoint(p Point) bool {
	for _, s := range b.rows[p.Y] {
		if s.Contains(p.X) {
			return true
		}
	}
	return false
}

// Empty reports whether the blob covers no tiles.
func (b Blob) Empty() bool { return len(b.rows) == 0 }

// Area returns the number of tiles in the blob.
func (b Blob) Area() int {
	var area int
	for _, spans := range b.rows {
		for _, s := range spans {
			area += s.Len()
		}
	}
	return area
}

// Height returns the distance between the blob's highest and lowest
// occupied rows, unoccupied rows in between included, or zero for an
// empty blob.
func (b Blob) Height() int {
	if len(b.rows) == 0 {
		return 0
	}

	lo, hi := math.MaxInt, math.MinInt
	for y := range b.rows {
		lo, hi = min(lo, y), max(hi, y)
	}
	return hi - lo + 1
}

// Bounds returns the tightest rectangle covering the blob, and false
// if the blob is empty.
func (b Blob) Bounds() (Rect, bool) {
	if len(b.rows) == 0 {
		return Rect{}, false
	}

	top, bottom := math.MaxInt, math.MinInt
	left, right := math.MaxInt, math.MinInt
	for y, spans := range b.rows {
		top, bottom = min(top, y), max(bottom, y)
		left = min(left, spans[0].Start)
		right = max(right, spans[len(spans)-1].End)
	}
	return RectFromEdges(top, bottom, left, right), true
}

// Equal reports whether b and other occupy the same rows with
// identical span layouts. Two blobs covering the same tiles split
// into different spans are not Equal.
func (b Blob) Equal(other Blob) bool {
	return maps.EqualFunc(b.rows, other.rows, slices.Equal)
}

// Union returns the blob covering every tile that is in either b or
// other.
func (b Blob) Union(other Blob) Blob {
	rows := make(map[int][]Span, max(len(b.rows), len(other.rows)))

	for y, spans := range b.rows {
		if _, ok := other.rows[y]; !ok {
			rows[y] = spans
		}
	}
	for y, spans := range other.rows {
		mine, ok := b.rows[y]
		if !ok {
			rows[y] = spans
			continue
		}
		rows[y] = mergeRow(mine, spans)
	}

	return Blob{rows: rows}
}

// mergeRow combines two sorted rows of non-overlapping spans into
// one. Each span of others absorbs every span of mine it overlaps,
// growing to cover all of them; spans of mine overlapped by nothing
// pass through untouched.
func mergeRow(mine, others []Span) []Span {
	queue := mine
	merged := make([]Span, 0, len(mine)+len(others))

	for _, s := range others {
		start, end := s.Start, s.End
		for len(queue) > 0 && s.Overlaps(queue[0]) {
			start = min(start, queue[0].Start)
			end = max(end, queue[0].End)
			queue = queue[1:]
		}
		merged = append(merged, Span{start, end})
	}

	merged = append(merged, queue...)
	slices.SortFunc(merged, func(a, b Span) int { return cmp.Compare(a.Start, b.Start) })
	return merged
}

// Difference returns the blob covering every tile that is in b but
// not in other.
func (b Blob) Difference(other Blob) Blob {
	rows := make(map[int][]Span, len(b.rows))

	for y, spans := range b.rows {
		cut, ok := other.rows[y]
		if !ok {
			rows[y] = spans
			continue
		}
		if left := subtractRow(spans, cut); len(left) > 0 {
			rows[y] = left
		}
	}

	return Blob{rows: rows}
}

// subtractRow removes the tiles covered by cut from a sorted row of
// non-overlapping spans. Cutting one span out of another can leave
// zero, one, or two pieces. A left-hand piece is final and emitted
// immediately; a right-hand piece is carried forward instead, since
// a later cut span may erode it further.
func subtractRow(spans, cut []Span) []Span {
	var resolved []Span

	for _, span := range spans {
		// Cut spans that end before this span starts can never
		// matter again.
		for len(cut) > 0 && cut[0].End < span.Start {
			cut = cut[1:]
		}

		current, alive := span, true
		for _, c := range cut {
			if !current.Overlaps(c) {
				break
			}

			// The strict < on the matching endpoint matters: a cut
			// that lines up exactly with an endpoint leaves nothing
			// over on that side.
			if current.Start < c.Start && c.Start <= current.End {
				resolved = append(resolved, Span{current.Start, c.Start - 1})
			}
			if current.Start <= c.End && c.End < current.End {
				current = Span{c.End + 1, current.End}
			} else {
				alive = false
				break
			}
		}
		if alive {
			resolved = append(resolved, current)
		}
	}

	return resolved
}

// Points yields every tile in the blob, top row first, left to right
// within each row.
func (b Blob) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, y := range slices.Sorted(maps.Keys(b.rows)) {
			for _, s := range b.rows[y] {
				for x := s.Start; x <= s.End; x++ {
					if !yield(Point{x, y}) {
						return
					}
				}
			}
		}
	}
}

// Rows yields the blob's occupied row coordinates in ascending
// order.
func (b Blob) Rows() iter.Seq[int] {
	return slices.Values(slices.Sorted(maps.Keys(b.rows)))
}

// RowSpans returns the spans occupied on row y, or nil if the row is
// unoccupied. The returned slice is a copy and may be modified
// freely.
func (b Blob) RowSpans(y int) []Span {
	return slices.Clone(b.rows[y])
}
