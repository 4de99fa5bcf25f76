package internal

import "math"

// Recursive QuickHull over an index subset. The extreme left and right points
// split the set into the chain below the line between them and the chain
// above it. Each chain is built by finding the point farthest from its base
// line and recursing on the two new edges, keeping only points strictly
// outside. Points on an edge are discarded, so collinear boundary points never
// become vertices.
//
// Output order is counterclockwise from the lexicographically first point,
// like MonotoneChain.
func QuickHull(points []Point, indices []int) IndexList {
	if len(indices) == 0 {
		return nil
	}

	a, b := indices[0], indices[0]
	for _, i := range indices[1:] {
		if points[i].Before(points[a]) {
			a = i
		}
		if points[b].Before(points[i]) {
			b = i
		}
	}
	if points[a] == points[b] {
		return IndexList{a}
	}

	var below, above []int
	for _, i := range indices {
		cross := Cross(points[a], points[b], points[i])
		if cross < 0 {
			below = append(below, i)
		} else if cross > 0 {
			above = append(above, i)
		}
	}

	hull := IndexList{a}
	hull = findHull(points, below, a, b, hull)
	hull = append(hull, b)
	hull = findHull(points, above, b, a, hull)
	return hull
}

// Append the hull vertices strictly right of the directed edge p->q, in order
// from p to q. Every index in set must already be right of p->q.
func findHull(points []Point, set []int, p, q int, hull IndexList) IndexList {
	if len(set) == 0 {
		return hull
	}

	// Distance to the line is proportional to the cross product, so there's no
	// need to normalize
	furthest := -1
	maxDistance := math.Inf(-1)
	for _, i := range set {
		distance := -Cross(points[p], points[q], points[i])
		if distance > maxDistance {
			maxDistance = distance
			furthest = i
		}
	}
	if maxDistance <= 0 {
		fatalf("point %d is not outside edge %d-%d", furthest, p, q)
	}
	c := furthest

	var rightOfPC, rightOfCQ []int
	for _, i := range set {
		if i == c {
			continue
		}
		if Cross(points[p], points[c], points[i]) < 0 {
			rightOfPC = append(rightOfPC, i)
		} else if Cross(points[c], points[q], points[i]) < 0 {
			rightOfCQ = append(rightOfCQ, i)
		}
	}

	hull = findHull(points, rightOfPC, p, c, hull)
	hull = append(hull, c) // Only after the recursion, so the chain stays ordered
	return findHull(points, rightOfCQ, c, q, hull)
}
