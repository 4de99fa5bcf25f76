package internal

import "sort"

// Andrew's monotone chain. Points are sorted lexicographically, then the lower
// and upper chains are built with a stack, popping every point that does not
// make a strict left turn. Popping on zero turns is what drops collinear
// boundary points and duplicates.
//
// The result starts at the lexicographically first point and winds
// counterclockwise. For degenerate input the result has fewer than three
// entries; callers decide what that means.
func MonotoneChain(points []Point, indices []int) IndexList {
	order := sortedIndices(points, indices)
	n := len(order)
	if n < 3 {
		return IndexList(order)
	}

	hull := make(IndexStack, 0, 2*n)
	for _, i := range order {
		for hull.Len() >= 2 && Cross(points[hull.Peek(1)], points[hull.Peek(0)], points[i]) <= 0 {
			hull.Pop()
		}
		hull.Push(i)
	}

	// The upper chain may not pop into the lower chain
	lowerLen := hull.Len() + 1
	for k := n - 2; k >= 0; k-- {
		i := order[k]
		for hull.Len() >= lowerLen && Cross(points[hull.Peek(1)], points[hull.Peek(0)], points[i]) <= 0 {
			hull.Pop()
		}
		hull.Push(i)
	}

	// The last point is the first one again
	return IndexList(hull[:hull.Len()-1])
}

// Copy of the indices sorted by position, ties broken by index so the order is
// deterministic when coordinates repeat.
func sortedIndices(points []Point, indices []int) []int {
	order := append([]int(nil), indices...)
	sort.Slice(order, func(a, b int) bool {
		pa, pb := points[order[a]], points[order[b]]
		if pa == pb {
			return order[a] < order[b]
		}
		return pa.Before(pb)
	})
	return order
}
