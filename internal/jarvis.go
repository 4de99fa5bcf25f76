package internal

// Gift wrapping. Starting from the lexicographically first point, repeatedly
// pick the point that every other point lies to the left of. Collinear
// candidates resolve to the farthest one, which skips points in the middle of
// a hull edge. O(nh), so it only wins for very small inputs.
//
// The input must not be degenerate: with all points collinear the walk has no
// way to turn around.
func JarvisMarch(points []Point, indices []int) IndexList {
	if len(indices) < 3 {
		return IndexList(append([]int(nil), indices...))
	}

	start := indices[0]
	for _, i := range indices[1:] {
		if points[i].Before(points[start]) {
			start = i
		}
	}

	var hull IndexList
	p := start
	for {
		hull = append(hull, p)
		if len(hull) > len(indices) {
			fatalf("gift wrapping did not close after %d steps", len(hull))
		}

		q := -1
		for _, i := range indices {
			if points[i] == points[p] {
				continue
			}
			if q == -1 {
				q = i
				continue
			}
			cross := Cross(points[p], points[q], points[i])
			if cross < 0 {
				q = i
			} else if cross == 0 && isFurtherAlong(points[p], points[q], points[i]) {
				q = i
			}
		}
		if q == -1 {
			fatalf("gift wrapping found no next vertex after %d", p)
		}

		p = q
		if points[p] == points[start] {
			break
		}
	}
	return hull
}

// For collinear p, q, r: is r further from p than q, in the same direction?
func isFurtherAlong(p, q, r Point) bool {
	dot := (q.X-p.X)*(r.X-p.X) + (q.Y-p.Y)*(r.Y-p.Y)
	return dot > 0 && DistanceSquared(p, r) > DistanceSquared(p, q)
}
