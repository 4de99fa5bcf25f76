// Convex hulls of planar point sets, reported as indices into the input.
//
// Every backend in this package returns the same canonical answer for the
// same input: the hull vertices in counterclockwise order, starting at the
// vertex with the smallest X (smallest Y on ties). Points lying on a hull edge
// are not vertices, and a position that occurs more than once is reported by
// its lowest index. This makes the backends interchangeable, and makes their
// output directly comparable in tests.
package hull

import (
	"io"
	"sort"

	"github.com/osuushi/hullgen/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type Analysis = internal.Analysis
type Strategy = internal.Strategy
type SizeClass = internal.SizeClass

// Returned, wrapped, when the input has no three distinct non-collinear
// points. Test with errors.Is.
var ErrDegenerate = errors.New("degenerate point set: fewer than 3 non-collinear points")

// Anything that can compute the hull of a point set.
type Backend interface {
	HullIndices(points []Point) ([]int, error)
}

type MonotoneChain struct{}

type QuickHull struct{}

// Gift wrapping. Quadratic in the worst case, only sensible for small inputs.
type Jarvis struct{}

// QuickHull over blocks of the input in parallel. Workers <= 0 uses one
// worker per CPU.
type ParallelQuickHull struct {
	Workers int
}

// Picks a strategy from the analysis of the input, see Analyze.
type Auto struct {
	Workers int
}

func (MonotoneChain) HullIndices(points []Point) ([]int, error) {
	return compute(points, func(indices []int) (internal.IndexList, error) {
		return internal.MonotoneChain(points, indices), nil
	})
}

func (QuickHull) HullIndices(points []Point) ([]int, error) {
	return compute(points, func(indices []int) (internal.IndexList, error) {
		return internal.QuickHull(points, indices), nil
	})
}

func (Jarvis) HullIndices(points []Point) ([]int, error) {
	return compute(points, func(indices []int) (internal.IndexList, error) {
		return internal.JarvisMarch(points, indices), nil
	})
}

func (b ParallelQuickHull) HullIndices(points []Point) ([]int, error) {
	return compute(points, func(indices []int) (internal.IndexList, error) {
		return internal.ParallelQuickHull(points, indices, b.Workers)
	})
}

func (b Auto) HullIndices(points []Point) ([]int, error) {
	return compute(points, func([]int) (internal.IndexList, error) {
		return Analyze(points).Strategy.Run(points, b.Workers)
	})
}

// Hull indices using the Auto backend.
func Compute(points []Point) ([]int, error) {
	return Auto{}.HullIndices(points)
}

func compute(points []Point, run func(indices []int) (internal.IndexList, error)) (result []int, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	internal.CheckFinite(points)
	if internal.IsDegenerate(points) {
		return nil, errors.Wrapf(ErrDegenerate, "%d points", len(points))
	}

	hull, err := run(internal.AllIndices(len(points)))
	if err != nil {
		return nil, err
	}
	hull = internal.Canonicalize(points, hull)
	if len(hull) < 3 {
		return nil, errors.Wrapf(ErrDegenerate, "hull of %d points has %d vertices", len(points), len(hull))
	}
	return []int(hull), nil
}

var backends = map[string]Backend{
	"monotone":  MonotoneChain{},
	"quickhull": QuickHull{},
	"jarvis":    Jarvis{},
	"parallel":  ParallelQuickHull{},
	"auto":      Auto{},
}

// Names accepted by ByName, sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ByName(name string) (Backend, error) {
	backend, ok := backends[name]
	if !ok {
		return nil, errors.Errorf("unknown hull backend %q", name)
	}
	return backend, nil
}

// Coordinates of the hull vertices, in hull order.
func Resolve(points []Point, indices []int) []Point {
	return internal.IndexList(indices).Points(points)
}

func Analyze(points []Point) Analysis {
	return internal.AnalyzeInput(points)
}

func Area(polygon []Point) float64 {
	return internal.Area(polygon)
}

func Perimeter(polygon []Point) float64 {
	return internal.Perimeter(polygon)
}

// Render the points and their hull into a PNG file of the given width.
func SavePreview(path string, points []Point, indices []int, width int) error {
	return internal.SavePreview(path, points, internal.IndexList(indices), width)
}

// Print a preview saved by SavePreview inline in the terminal.
func CatPreview(path string, w io.Writer) {
	internal.CatPreview(path, w)
}
