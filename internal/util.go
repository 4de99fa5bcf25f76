package internal

import (
	"math"
	"sort"
)

// Coordinates in this package are compared exactly in the hull algorithms.
// Epsilon is only used by validation code, where points read back from files
// may carry formatting error.
const Epsilon = 1e-9

// Twice the signed area of the triangle o, a, b. Positive when the turn
// o->a->b is counterclockwise, zero when the three points are collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func DistanceSquared(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Lexicographic order used everywhere a "first" point is needed: smallest X,
// ties broken by smallest Y.
func (p Point) Before(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Like the % operator, but only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

// Peek at the element n positions below the top of the stack. Peek(0) is the
// top. Returns -1 if the stack is not deep enough.
func (s *IndexStack) Peek(n int) int {
	if len(*s) <= n {
		return -1
	}
	return (*s)[len(*s)-1-n]
}

func (s *IndexStack) Len() int {
	return len(*s)
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}

func sortedByIndex(indices []int) []int {
	sorted := append([]int(nil), indices...)
	sort.Ints(sorted)
	return sorted
}

// All the indices of a point slice, in order.
func AllIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
