package internal

// Points are addressed by their index in the input slice. Every algorithm here
// works on index lists rather than copies of the points, so that a hull can be
// reported as indices into the original point set, and so that duplicate
// coordinates stay distinguishable.
type Point struct {
	X float64
	Y float64
}

// Ordered list of indices into a point slice, describing a hull in canonical
// order.
type IndexList []int

type IndexStack []int

// Resolve the indices against the points they refer to.
func (list IndexList) Points(points []Point) []Point {
	result := make([]Point, len(list))
	for i, idx := range list {
		result[i] = points[idx]
	}
	return result
}
