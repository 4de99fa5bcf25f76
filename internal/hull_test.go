package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type algorithm struct {
	name string
	run  func(points []Point, indices []int) IndexList
}

var algorithms = []algorithm{
	{"MonotoneChain", MonotoneChain},
	{"QuickHull", QuickHull},
	{"JarvisMarch", JarvisMarch},
	{"ParallelQuickHull", func(points []Point, indices []int) IndexList {
		hull, err := ParallelQuickHull(points, indices, 4)
		if err != nil {
			panic(err)
		}
		return hull
	}},
}

func canonicalHull(alg algorithm, points []Point) IndexList {
	return Canonicalize(points, alg.run(points, AllIndices(len(points))))
}

func TestHull_UnitSquare(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			points := UnitSquare()
			hull := canonicalHull(alg, points)
			assert.Equal(t, IndexList{0, 2, 3, 1}, hull)
			AssertValidHull(t, points, hull)
		})
	}
}

func TestHull_Triangle(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			points := SimpleTriangle()
			hull := canonicalHull(alg, points)
			assert.Equal(t, IndexList{0, 1, 2}, hull)
		})
	}
}

func TestHull_CollinearBoundaryPointsAreNotVertices(t *testing.T) {
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			points := SquareWithMidpoints()
			hull := canonicalHull(alg, points)
			assert.Equal(t, IndexList{0, 2, 4, 6}, hull)
			AssertValidHull(t, points, hull)
		})
	}
}

func TestHull_DuplicatesReportLowestIndex(t *testing.T) {
	points := []Point{{1, 0}, {0, 0}, {0, 1}, {1, 0}, {0, 0}, {0.2, 0.2}}
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			hull := canonicalHull(alg, points)
			assert.Equal(t, IndexList{1, 0, 2}, hull)
		})
	}
}

func TestHull_Circle(t *testing.T) {
	points := Circle(200, 10)
	for _, alg := range algorithms {
		t.Run(alg.name, func(t *testing.T) {
			hull := canonicalHull(alg, points)
			assert.Len(t, hull, 200)
			AssertValidHull(t, points, hull)
		})
	}
}

func TestHull_BackendsAgreeOnRandomPoints(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		points := RandomPoints(seed, 2000)
		expected := canonicalHull(algorithms[0], points)
		AssertValidHull(t, points, expected)

		for _, alg := range algorithms[1:] {
			t.Run(fmt.Sprintf("%s seed %d", alg.name, seed), func(t *testing.T) {
				assert.Equal(t, expected, canonicalHull(alg, points))
			})
		}
	}
}

func TestHull_BackendsAgreeOnIntegerGrid(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		points := IntegerGrid(seed, 300, 12)
		expected := canonicalHull(algorithms[0], points)
		AssertValidHull(t, points, expected)

		for _, alg := range algorithms[1:] {
			t.Run(fmt.Sprintf("%s seed %d", alg.name, seed), func(t *testing.T) {
				assert.Equal(t, expected, canonicalHull(alg, points))
			})
		}
	}
}

func TestHull_DegenerateInputs(t *testing.T) {
	collinear := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	for _, alg := range algorithms[:2] {
		t.Run(alg.name, func(t *testing.T) {
			assert.Empty(t, alg.run(nil, nil))
			assert.Len(t, alg.run(collinear, AllIndices(len(collinear))), 2)
			same := []Point{{1, 1}, {1, 1}, {1, 1}}
			assert.Less(t, len(alg.run(same, AllIndices(len(same)))), 3)
		})
	}
}

func TestAklToussaint(t *testing.T) {
	points := RandomPoints(7, 5000)
	indices := AllIndices(len(points))
	kept := AklToussaint(points, indices)
	assert.Less(t, len(kept), len(points)*9/10, "expected the quadrilateral to discard uniform points")

	// No hull vertex may be dropped
	keptSet := make(map[int]struct{})
	for _, i := range kept {
		keptSet[i] = struct{}{}
	}
	for _, i := range MonotoneChain(points, indices) {
		_, ok := keptSet[i]
		assert.True(t, ok, "hull vertex %d was discarded", i)
	}

	t.Run("small inputs pass through", func(t *testing.T) {
		square := UnitSquare()
		assert.Equal(t, AllIndices(4), AklToussaint(square, AllIndices(4)))
	})
}

func TestPrecondition(t *testing.T) {
	points := []Point{{1, 1}, {2, 2}, {1, 1}, {3, 3}, {2, 2}}
	assert.Equal(t, []int{0, 1, 3}, Precondition(points, []int{4, 3, 2, 1, 0}))
}

func TestParallelQuickHull_FallsBackForSmallInputs(t *testing.T) {
	points := UnitSquare()
	hull, err := ParallelQuickHull(points, AllIndices(4), 8)
	require.NoError(t, err)
	assert.Equal(t, IndexList{0, 2, 3, 1}, Canonicalize(points, hull))
}

func TestIsDegenerate(t *testing.T) {
	assert.True(t, IsDegenerate(nil))
	assert.True(t, IsDegenerate([]Point{{0, 0}, {1, 1}}))
	assert.True(t, IsDegenerate([]Point{{0, 0}, {0, 0}, {0, 0}}))
	assert.True(t, IsDegenerate([]Point{{0, 0}, {0, 0}, {1, 1}, {2, 2}}))
	assert.False(t, IsDegenerate(SimpleTriangle()))
	assert.False(t, IsDegenerate([]Point{{0, 0}, {0, 0}, {1, 1}, {2, 0}}))
}

func TestCanonicalize(t *testing.T) {
	points := UnitSquare()

	t.Run("rotates to the first point", func(t *testing.T) {
		assert.Equal(t, IndexList{0, 2, 3, 1}, Canonicalize(points, IndexList{3, 1, 0, 2}))
	})

	t.Run("reverses clockwise hulls", func(t *testing.T) {
		assert.Equal(t, IndexList{0, 2, 3, 1}, Canonicalize(points, IndexList{3, 2, 0, 1}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Canonicalize(points, nil))
	})
}

func TestCheckFinite(t *testing.T) {
	check := func(points []Point) (err error) {
		defer func() {
			err = HandleHullPanicRecover(recover())
		}()
		CheckFinite(points)
		return nil
	}

	assert.NoError(t, check(UnitSquare()))
	assert.EqualError(t, check([]Point{{0, 0}, {math.NaN(), 1}}), "point 1 has a non-finite coordinate: (NaN, 1)")
	assert.Error(t, check([]Point{{math.Inf(1), 0}}))
}
