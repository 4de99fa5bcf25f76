package dataset

import (
	"testing"

	"github.com/osuushi/hullgen/hull"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A valid dataset of six points: the corners of a square, a point in the
// middle, and one on the bottom edge.
func validDataset() *Dataset {
	points := []hull.Point{
		{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.5}, {X: 0.9, Y: 0.1},
		{X: 0.9, Y: 0.9}, {X: 0.5, Y: 0.1}, {X: 0.1, Y: 0.9},
	}
	indices := []int{0, 2, 3, 5}
	return &Dataset{
		Size:       len(points),
		Points:     points,
		Indices:    indices,
		HullPoints: hull.Resolve(points, indices),
	}
}

func TestCheck_Valid(t *testing.T) {
	assert.NoError(t, validDataset().Check())
}

func TestCheck_Violations(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(ds *Dataset)
		expected string
	}{
		{
			"wrong point count",
			func(ds *Dataset) { ds.Size = 7 },
			"expected 7 points, found 6",
		},
		{
			"coordinate of one",
			func(ds *Dataset) { ds.Points[1] = hull.Point{X: 1, Y: 0.5} },
			"point 1 (1, 0.5) is outside [0, 1)",
		},
		{
			"negative coordinate",
			func(ds *Dataset) { ds.Points[1] = hull.Point{X: 0.5, Y: -0.1} },
			"point 1 (0.5, -0.1) is outside [0, 1)",
		},
		{
			"too few indices",
			func(ds *Dataset) { ds.Indices = ds.Indices[:2] },
			"expected between 3 and 6 hull indices, found 2",
		},
		{
			"index out of range",
			func(ds *Dataset) { ds.Indices[1] = 6 },
			"hull index 6 is out of range",
		},
		{
			"repeated index",
			func(ds *Dataset) { ds.Indices[1] = 0 },
			"hull index 0 is repeated",
		},
		{
			"full indices length",
			func(ds *Dataset) { ds.HullPoints = ds.HullPoints[:3] },
			"4 hull indices but 3 hull points",
		},
		{
			"full indices mismatch",
			func(ds *Dataset) { ds.HullPoints[2] = hull.Point{X: 0.9, Y: 0.8} },
			"hull point 2 is (0.9, 0.8), but index 3 resolves to (0.9, 0.9)",
		},
		{
			"clockwise",
			func(ds *Dataset) {
				ds.Indices = []int{0, 5, 3, 2}
				ds.HullPoints = hull.Resolve(ds.Points, ds.Indices)
			},
			"hull is not strictly convex and counterclockwise",
		},
		{
			"collinear vertex",
			func(ds *Dataset) {
				ds.Indices = []int{0, 4, 2, 3, 5}
				ds.HullPoints = hull.Resolve(ds.Points, ds.Indices)
			},
			"hull is not strictly convex and counterclockwise",
		},
		{
			"point outside",
			func(ds *Dataset) {
				ds.Indices = []int{0, 2, 3}
				ds.HullPoints = hull.Resolve(ds.Points, ds.Indices)
			},
			"point 5 (0.1, 0.9) lies outside the hull",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ds := validDataset()
			c.mutate(ds)
			assert.EqualError(t, ds.Check(), c.expected)
		})
	}
}

func TestCheck_ToleratesFileRounding(t *testing.T) {
	ds := validDataset()
	ds.HullPoints[0] = hull.Point{X: 0.1 + 4e-7, Y: 0.1}
	assert.NoError(t, ds.Check())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	ds := validDataset()
	require.NoError(t, ds.Write(dir))

	loaded, err := Load(dir, ds.Size)
	require.NoError(t, err)
	assert.Equal(t, ds, loaded)
	assert.NoError(t, Verify(dir, ds.Size))
}

func TestVerify_MissingFiles(t *testing.T) {
	err := Verify(t.TempDir(), 1500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1500_points.csv")
}
