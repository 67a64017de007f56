package tilegeom

import (
	"fmt"
	"iter"
)

// Span is a one-dimensional range of tiles with inclusive endpoints.
//
// A span whose Start exceeds its End is degenerate: it covers no
// tiles and reports a length of zero. Nothing in this package
// produces one, but nothing rejects one either.
type Span struct {
	Start, End int
}

// Sp is shorthand for Span{start, end}.
func Sp(start, end int) Span { return Span{start, end} }

// Len returns the number of tiles the span covers.
func (s Span) Len() int { return max(s.End-s.Start+1, 0) }

// Empty reports whether the span covers no tiles.
func (s Span) Empty() bool { return s.End < s.Start }

// Contains reports whether n lies within the span.
func (s Span) Contains(n int) bool { return s.Start <= n && n <= s.End }

// Overlaps reports whether s and other have any tiles in common.
func (s Span) Overlaps(other Span) bool {
	return s.Start <= other.End && s.End >= other.Start
}

// Add returns the span shifted n tiles toward positive coordinates.
func (s Span) Add(n int) Span { return Span{s.Start + n, s.End + n} }

// Sub returns the span shifted n tiles toward negative coordinates.
func (s Span) Sub(n int) Span { return s.Add(-n) }

// All yields every coordinate in the span in ascending order.
func (s Span) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := s.Start; n <= s.End; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// ShiftIntoView returns a span of the same length moved the minimum
// distance needed for point to sit at least margin tiles away from
// both endpoints. If point already does, s itself is returned
// unchanged. A span that actually needs to move requires a positive
// margin; ShiftIntoView panics otherwise.
func (s Span) ShiftIntoView(point, margin int) Span {
	if s.Start+margin <= point && point <= s.End-margin {
		return s
	}
	if margin <= 0 {
		panic("tilegeom: non-positive margin")
	}

	// Move left if the point is off the start, right if it is off
	// the end. Only one deficit can be nonzero at a time.
	d := min(0, point-(s.Start+margin)) + max(0, point-(s.End-margin))
	return s.Add(d)
}

// Scale returns a span of the given width scaled around the span's
// midpoint.
func (s Span) Scale(width int) Span {
	return s.ScaleAround(width, floorDiv(s.Start+s.End, 2))
}

// ScaleAround returns a span of the given width, keeping pivot at
// the same relative position along the span. Rounding slack goes to
// whichever edge is nearer the pivot. If width equals the span's
// current length, s itself is returned unchanged.
func (s Span) ScaleAround(width, pivot int) Span {
	oldWidth := s.Len()
	if oldWidth == width {
		return s
	}

	rel := float64(pivot-s.Start) / float64(oldWidth)
	offset := rel * float64(width)
	var startOffset int
	if rel <= 0.5 {
		startOffset = int(offset + 0.5)
	} else {
		startOffset = int(offset)
	}

	start := pivot - startOffset
	return Span{start, start + width - 1}
}

func (s Span) String() string { return fmt.Sprintf("[%d, %d]", s.Start, s.End) }
