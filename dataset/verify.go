package dataset

import (
	"math"

	"github.com/osuushi/hullgen/hull"
	"github.com/osuushi/hullgen/internal"
	"github.com/pkg/errors"
)

// Values read back from a file are only good to the six written decimals.
const fileTolerance = 1e-6

// Read the three files of a dataset. HullPoints holds the content of the full
// indices file, not the resolved indices, so that Check can compare the two.
func Load(dir string, size int) (*Dataset, error) {
	files := Files(dir, size)
	points, err := ReadPoints(files.Points)
	if err != nil {
		return nil, err
	}
	indices, err := ReadIndices(files.Indices)
	if err != nil {
		return nil, err
	}
	hullPoints, err := ReadPoints(files.FullIndices)
	if err != nil {
		return nil, err
	}
	return &Dataset{Size: size, Points: points, Indices: indices, HullPoints: hullPoints}, nil
}

// Load and check a dataset.
func Verify(dir string, size int) error {
	ds, err := Load(dir, size)
	if err != nil {
		return err
	}
	return ds.Check()
}

// Check the properties every generated dataset has:
//  1. exactly Size points, all coordinates in [0, 1)
//  2. between 3 and Size hull indices, all valid, none repeated
//  3. the hull points are the indexed points, in the same order
//  4. the hull is convex and no point lies outside it
func (ds *Dataset) Check() error {
	if len(ds.Points) != ds.Size {
		return errors.Errorf("expected %d points, found %d", ds.Size, len(ds.Points))
	}
	for i, p := range ds.Points {
		if !inUnitInterval(p.X) || !inUnitInterval(p.Y) {
			return errors.Errorf("point %d (%v, %v) is outside [0, 1)", i, p.X, p.Y)
		}
	}

	if len(ds.Indices) < 3 || len(ds.Indices) > ds.Size {
		return errors.Errorf("expected between 3 and %d hull indices, found %d", ds.Size, len(ds.Indices))
	}
	seen := make(map[int]struct{}, len(ds.Indices))
	for _, i := range ds.Indices {
		if i < 0 || i >= len(ds.Points) {
			return errors.Errorf("hull index %d is out of range", i)
		}
		if _, ok := seen[i]; ok {
			return errors.Errorf("hull index %d is repeated", i)
		}
		seen[i] = struct{}{}
	}

	if len(ds.HullPoints) != len(ds.Indices) {
		return errors.Errorf("%d hull indices but %d hull points", len(ds.Indices), len(ds.HullPoints))
	}
	for k, i := range ds.Indices {
		want, got := ds.Points[i], ds.HullPoints[k]
		if math.Abs(want.X-got.X) > fileTolerance || math.Abs(want.Y-got.Y) > fileTolerance {
			return errors.Errorf("hull point %d is (%v, %v), but index %d resolves to (%v, %v)", k, got.X, got.Y, i, want.X, want.Y)
		}
	}

	polygon := hull.Resolve(ds.Points, ds.Indices)
	if !internal.IsConvexCCW(polygon, 0) {
		return errors.New("hull is not strictly convex and counterclockwise")
	}
	for i, p := range ds.Points {
		if !internal.ConvexContains(polygon, p, fileTolerance) {
			return errors.Errorf("point %d (%v, %v) lies outside the hull", i, p.X, p.Y)
		}
	}
	return nil
}

func inUnitInterval(v float64) bool {
	return v >= 0 && v < 1
}
