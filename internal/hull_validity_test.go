package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid and canonical. The rules are:
// 1. At least three vertices, all valid indices, none repeated.
// 2. No two vertices share a position.
// 3. Every consecutive triple turns strictly left (convex, counterclockwise,
//    no collinear vertices).
// 4. Every point of the input is inside or on the hull.
// 5. The first vertex is the lexicographically first point of the input.
func AssertValidHull(t *testing.T, points []Point, hull IndexList) {
	t.Helper()
	require.GreaterOrEqual(t, len(hull), 3, "hull must have at least 3 vertices")

	seen := make(map[int]struct{})
	positions := make(map[Point]struct{})
	for _, i := range hull {
		require.True(t, i >= 0 && i < len(points), "index %d out of range", i)
		_, dup := seen[i]
		require.False(t, dup, "index %d repeated", i)
		seen[i] = struct{}{}
		_, dup = positions[points[i]]
		require.False(t, dup, "position %v repeated", points[i])
		positions[points[i]] = struct{}{}
	}

	polygon := hull.Points(points)
	require.True(t, IsConvexCCW(polygon, 0), "hull is not strictly convex and counterclockwise")
	for i, p := range points {
		require.True(t, ConvexContains(polygon, p, Epsilon), "point %d %v outside hull", i, p)
	}

	for _, p := range points {
		require.False(t, p.Before(points[hull[0]]), "hull does not start at the first point")
	}
}
