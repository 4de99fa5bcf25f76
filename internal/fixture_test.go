package internal

import (
	"math"
	"math/rand/v2"
)

// Ad hoc point sets for the algorithm tests. The expected hulls are given in
// canonical order: counterclockwise from the lexicographically first point.

func UnitSquare() []Point {
	return []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
}

func SimpleTriangle() []Point {
	return []Point{{0, 0}, {1, 0}, {0.5, 0.5}}
}

// Square corners 0, 2, 4, 6, edge midpoints between them, and the center
// last.
func SquareWithMidpoints() []Point {
	return []Point{
		{0, 0}, {0.5, 0}, {1, 0}, {1, 0.5},
		{1, 1}, {0.5, 1}, {0, 1}, {0, 0.5},
		{0.5, 0.5},
	}
}

// Regular n-gon. Every point is a hull vertex, so this is the worst case for
// gift wrapping and the deepest recursion for QuickHull.
func Circle(n int, radius float64) []Point {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

func RandomPoints(seed uint64, n int) []Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return points
}

// Integer points on a small grid. Lots of duplicates and lots of collinear
// boundary points, and exact arithmetic, so every backend must agree exactly.
func IntegerGrid(seed uint64, n, size int) []Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(rng.IntN(size)), Y: float64(rng.IntN(size))}
	}
	return points
}
