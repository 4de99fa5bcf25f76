package internal

import "math"

// Shoelace formula. Positive for counterclockwise polygons.
func SignedArea(polygon []Point) float64 {
	var area float64
	for i, current := range polygon {
		next := polygon[CircularIndex(i+1, len(polygon))]
		area += current.X*next.Y - next.X*current.Y
	}
	return area / 2
}

func Area(polygon []Point) float64 {
	return math.Abs(SignedArea(polygon))
}

func Perimeter(polygon []Point) float64 {
	var perimeter float64
	for i, current := range polygon {
		next := polygon[CircularIndex(i+1, len(polygon))]
		perimeter += math.Sqrt(DistanceSquared(current, next))
	}
	return perimeter
}

// Strictly convex and counterclockwise: every consecutive triple turns left by
// more than the tolerance.
func IsConvexCCW(polygon []Point, tolerance float64) bool {
	if len(polygon) < 3 {
		return false
	}
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		c := polygon[CircularIndex(i+2, len(polygon))]
		if Cross(a, b, c) <= tolerance {
			return false
		}
	}
	return true
}

// Is the point inside or on a convex counterclockwise polygon? The tolerance
// is a distance, so that points a hair outside an edge because of rounding
// still count.
func ConvexContains(polygon []Point, p Point, tolerance float64) bool {
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		length := math.Sqrt(DistanceSquared(a, b))
		if length == 0 {
			continue
		}
		if Cross(a, b, p)/length < -tolerance {
			return false
		}
	}
	return true
}

type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

func Bounds(points []Point) BoundingBox {
	box := BoundingBox{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range points {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box
}

// Length of the longer side.
func (box BoundingBox) Size() float64 {
	return math.Max(box.MaxX-box.MinX, box.MaxY-box.MinY)
}
