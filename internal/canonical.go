package internal

// Validate the input before handing it to any of the algorithms. Non-finite
// coordinates poison every orientation test, so they are rejected outright.
func CheckFinite(points []Point) {
	for i, p := range points {
		if !p.IsFinite() {
			fatalf("point %d has a non-finite coordinate: (%v, %v)", i, p.X, p.Y)
		}
	}
}

// A point set is degenerate when it has no three distinct, non-collinear
// points, in which case it has no hull with positive area.
func IsDegenerate(points []Point) bool {
	if len(points) < 3 {
		return true
	}
	a := points[0]
	b := -1
	for i, p := range points[1:] {
		if p != a {
			b = i + 1
			break
		}
	}
	if b == -1 {
		return true
	}
	for _, p := range points[b+1:] {
		if Cross(a, points[b], p) != 0 {
			return false
		}
	}
	return true
}

// Bring a hull produced by any of the algorithms into canonical form:
// counterclockwise, starting at the lexicographically first vertex, and with
// every vertex reported by the lowest index among points sharing its position.
// The result is a new list.
func Canonicalize(points []Point, hull IndexList) IndexList {
	if len(hull) == 0 {
		return IndexList{}
	}

	lowest := make(map[Point]int, len(hull))
	for _, i := range hull {
		lowest[points[i]] = i
	}
	for i, p := range points {
		if current, ok := lowest[p]; ok && i < current {
			lowest[p] = i
		}
	}

	first := 0
	for k, i := range hull {
		if points[i].Before(points[hull[first]]) {
			first = k
		}
	}

	n := len(hull)
	result := make(IndexList, n)
	reverse := SignedArea(hull.Points(points)) < 0
	for k := 0; k < n; k++ {
		var from int
		if reverse {
			from = CircularIndex(first-k, n)
		} else {
			from = CircularIndex(first+k, n)
		}
		result[k] = lowest[points[hull[from]]]
	}
	return result
}
