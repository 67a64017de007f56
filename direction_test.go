package tilegeom_test

import (
	"slices"
	"testing"

	"deedles.dev/tilegeom"
	"github.com/stretchr/testify/require"
)

func TestDirectionDeltas(t *testing.T) {
	require.Equal(t, tilegeom.Pt(0, -1), tilegeom.Up.Delta())
	require.Equal(t, tilegeom.Pt(1, 1), tilegeom.DownRight.Delta())
	require.Equal(t, tilegeom.Pt(-1, 0), tilegeom.Left.Delta())

	seen := make(map[tilegeom.Point]bool)
	for d := range tilegeom.Directions() {
		delta := d.Delta()
		require.False(t, seen[delta])
		require.NotEqual(t, tilegeom.Origin, delta)
		seen[delta] = true
	}
	require.Len(t, seen, 8)
}

func TestDirectionOpposite(t *testing.T) {
	for d := range tilegeom.Directions() {
		op := d.Opposite()
		require.Equal(t, tilegeom.Origin.Sub(d.Delta()), op.Delta())
		require.Equal(t, d, op.Opposite())
	}
}

func TestDirectionFromDelta(t *testing.T) {
	for d := range tilegeom.Directions() {
		got, ok := tilegeom.DirectionFromDelta(d.Delta())
		require.True(t, ok)
		require.Equal(t, d, got)
	}

	_, ok := tilegeom.DirectionFromDelta(tilegeom.Origin)
	require.False(t, ok)
	_, ok = tilegeom.DirectionFromDelta(tilegeom.Pt(2, 0))
	require.False(t, ok)
}

func TestDirectionAdjacency(t *testing.T) {
	require.True(t, tilegeom.Up.AdjacentTo(tilegeom.Up))
	require.True(t, tilegeom.Up.AdjacentTo(tilegeom.UpLeft))
	require.True(t, tilegeom.Up.AdjacentTo(tilegeom.UpRight))
	require.False(t, tilegeom.Up.AdjacentTo(tilegeom.Right))
	require.False(t, tilegeom.Up.AdjacentTo(tilegeom.Down))
	require.False(t, tilegeom.UpLeft.AdjacentTo(tilegeom.DownRight))

	for a := range tilegeom.Directions() {
		for b := range tilegeom.Directions() {
			require.Equal(t, a.AdjacentTo(b), b.AdjacentTo(a))
		}
	}
}

func TestDirectionGroups(t *testing.T) {
	require.Len(t, tilegeom.OrthogonalDirections, 4)
	require.Len(t, tilegeom.DiagonalDirections, 4)

	for _, d := range tilegeom.OrthogonalDirections {
		require.True(t, d.Orthogonal())
		require.False(t, d.Diagonal())
	}
	for _, d := range tilegeom.DiagonalDirections {
		require.True(t, d.Diagonal())
		require.False(t, d.Orthogonal())
	}

	all := slices.Concat(tilegeom.OrthogonalDirections, tilegeom.DiagonalDirections)
	slices.Sort(all)
	require.Equal(t, slices.Collect(tilegeom.Directions()), all)
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up-left", tilegeom.UpLeft.String())
	require.Equal(t, "down", tilegeom.Down.String())
	require.Equal(t, "Direction(12)", tilegeom.Direction(12).String())
}
