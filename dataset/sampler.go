package dataset

import (
	"math"
	"math/rand/v2"

	"github.com/osuushi/hullgen/hull"
)

// Files carry six decimals. Sampled coordinates are snapped down onto this
// grid, so that the hull is computed on exactly the values that get written,
// and so that no coordinate rounds up to 1 when formatted.
const gridSteps = 1e6

// Source of the points for one dataset.
type Sampler interface {
	Sample(n int) []hull.Point
}

// Independent uniform coordinates in [0, 1).
type UniformSampler struct {
	rng *rand.Rand
}

func NewUniformSampler(seed uint64) *UniformSampler {
	return &UniformSampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (s *UniformSampler) Sample(n int) []hull.Point {
	points := make([]hull.Point, n)
	for i := range points {
		points[i] = hull.Point{X: snap(s.rng.Float64()), Y: snap(s.rng.Float64())}
	}
	return points
}

func snap(v float64) float64 {
	return math.Floor(v*gridSteps) / gridSteps
}

// Fixed points, for tests and hand written fixtures. Sample ignores n beyond
// the number of points available.
type FixedSampler []hull.Point

func (s FixedSampler) Sample(n int) []hull.Point {
	if n > len(s) {
		n = len(s)
	}
	return append([]hull.Point(nil), s[:n]...)
}

const demoSeed = 42

// Demo input with a recognizable shape: nine tenths of the points fill a disc
// of radius 100 around the origin, the rest are outliers scattered over a
// 400x400 square, which gives the hull something to do.
func DemoPoints(count int) []hull.Point {
	rng := rand.New(rand.NewPCG(demoSeed, demoSeed))
	points := make([]hull.Point, 0, count)
	for i := 0; i < count; i++ {
		if float64(i) < float64(count)*0.9 {
			angle := rng.Float64() * 2 * math.Pi
			radius := rng.Float64() * 100
			points = append(points, hull.Point{X: math.Cos(angle) * radius, Y: math.Sin(angle) * radius})
		} else {
			points = append(points, hull.Point{X: rng.Float64()*400 - 200, Y: rng.Float64()*400 - 200})
		}
	}
	return points
}
