package internal

// Akl-Toussaint heuristic. The leftmost, lowest, rightmost and highest points
// span a quadrilateral that is contained in the hull, so anything strictly
// inside it can be dropped before running the real algorithm. On uniformly
// distributed input this discards most of the points in a single linear pass.
func AklToussaint(points []Point, indices []int) []int {
	if len(indices) < 8 {
		return indices
	}

	left, bottom, right, top := indices[0], indices[0], indices[0], indices[0]
	for _, i := range indices[1:] {
		p := points[i]
		if p.X < points[left].X {
			left = i
		}
		if p.X > points[right].X {
			right = i
		}
		if p.Y < points[bottom].Y {
			bottom = i
		}
		if p.Y > points[top].Y {
			top = i
		}
	}

	// Counterclockwise, skipping extremes that share a position
	var corners []Point
	for _, i := range []int{left, bottom, right, top} {
		if len(corners) > 0 && (corners[len(corners)-1] == points[i] || corners[0] == points[i]) {
			continue
		}
		corners = append(corners, points[i])
	}
	if len(corners) < 3 {
		return indices
	}

	kept := make([]int, 0, len(indices)/4)
	for _, i := range indices {
		if !strictlyInsideConvex(corners, points[i]) {
			kept = append(kept, i)
		}
	}
	return kept
}

// The polygon must be convex and counterclockwise. Points on the boundary are
// not inside.
func strictlyInsideConvex(polygon []Point, p Point) bool {
	for i, a := range polygon {
		b := polygon[CircularIndex(i+1, len(polygon))]
		if Cross(a, b, p) <= 0 {
			return false
		}
	}
	return true
}

// Drop repeated positions, keeping the lowest index. Integer inputs tend to
// repeat a lot, and every duplicate removed here is one less point for the
// hull algorithm to reject.
func Precondition(points []Point, indices []int) []int {
	seen := make(map[Point]struct{}, len(indices))
	kept := make([]int, 0, len(indices))
	for _, i := range sortedByIndex(indices) {
		if _, ok := seen[points[i]]; ok {
			continue
		}
		seen[points[i]] = struct{}{}
		kept = append(kept, i)
	}
	return kept
}
