// Package tilegeom provides primitives for discrete, tile-based 2D
// geometry: points, sizes, directions, axis-aligned rectangles,
// inclusive 1D spans, and arbitrarily shaped regions of tiles.
//
// It is patterned after image.Point and image.Rectangle, but unlike
// them every type here treats its bounds as inclusive on all sides: a
// tile grid deals in whole cells, and half the point of the package
// is to take care of the +1/-1 bookkeeping that requires. The origin
// is the top left and y grows downward.
//
// Every type is an immutable value. Operations return new values
// instead of modifying their receivers, so anything in this package
// may be shared between goroutines without coordination.
package tilegeom

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides a by b, rounding toward negative infinity rather
// than toward zero.
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
