package internal

import "math"

type SizeClass int

const (
	Empty SizeClass = iota
	Small
	Medium
	Large
)

const (
	smallLimit  = 100
	mediumLimit = 50000

	jarvisLimit   = 50
	parallelLimit = 1000
)

func (s SizeClass) String() string {
	switch s {
	case Empty:
		return "empty"
	case Small:
		return "small (<= 100 points)"
	case Medium:
		return "medium (100 - 50,000 points)"
	case Large:
		return "large (> 50,000 points)"
	}
	return "unknown"
}

// How the hull of an input is computed. The names follow the two axes the
// choice is made on: the container the points are processed in, which grows
// with input size, and the reduction applied before the hull algorithm runs.
type Strategy int

const (
	StrategyJarvisMarch Strategy = iota
	StrategyListWithAklToussaint
	StrategyListWithPreconditioning
	StrategySpanWithAklToussaint
	StrategySpanWithPreconditioning
	StrategyPoolWithAklToussaint
	StrategyPoolWithPreconditioning
)

func (s Strategy) String() string {
	switch s {
	case StrategyJarvisMarch:
		return "Jarvis march (best for tiny sets)"
	case StrategyListWithAklToussaint:
		return "QuickHull + Akl-Toussaint reduction"
	case StrategyListWithPreconditioning:
		return "QuickHull + preconditioning (integer)"
	case StrategySpanWithAklToussaint:
		return "QuickHull + Akl-Toussaint reduction, parallel above 1,000 points"
	case StrategySpanWithPreconditioning:
		return "QuickHull + preconditioning (integer), parallel above 1,000 points"
	case StrategyPoolWithAklToussaint:
		return "Parallel QuickHull + Akl-Toussaint reduction"
	case StrategyPoolWithPreconditioning:
		return "Parallel QuickHull + preconditioning (integer)"
	}
	return "unknown strategy"
}

// Preconditioning strategies deduplicate integer coordinates before the
// Akl-Toussaint pass.
func (s Strategy) preconditions() bool {
	return s == StrategyListWithPreconditioning ||
		s == StrategySpanWithPreconditioning ||
		s == StrategyPoolWithPreconditioning
}

type Analysis struct {
	IsInteger          bool
	SizeClass          SizeClass
	BoundingBoxSize    float64
	PointCount         int
	Strategy           Strategy
	EstimatedReduction float64
}

func AnalyzeInput(points []Point) Analysis {
	if len(points) == 0 {
		return Analysis{SizeClass: Empty}
	}

	isInteger := true
	for _, p := range points {
		if !isIntegral(p.X) || !isIntegral(p.Y) {
			isInteger = false
			break
		}
	}

	var sizeClass SizeClass
	switch {
	case len(points) <= smallLimit:
		sizeClass = Small
	case len(points) <= mediumLimit:
		sizeClass = Medium
	default:
		sizeClass = Large
	}

	return Analysis{
		IsInteger:          isInteger,
		SizeClass:          sizeClass,
		BoundingBoxSize:    Bounds(points).Size(),
		PointCount:         len(points),
		Strategy:           DetermineStrategy(len(points), isInteger),
		EstimatedReduction: EstimateReduction(len(points), isInteger),
	}
}

func isIntegral(v float64) bool {
	return v == math.Floor(v) && v >= math.MinInt32 && v <= math.MaxInt32
}

func DetermineStrategy(pointCount int, isInteger bool) Strategy {
	switch {
	case pointCount <= jarvisLimit:
		return StrategyJarvisMarch
	case pointCount <= smallLimit && isInteger:
		return StrategyListWithPreconditioning
	case pointCount <= smallLimit:
		return StrategyListWithAklToussaint
	case pointCount <= mediumLimit && isInteger:
		return StrategySpanWithPreconditioning
	case pointCount <= mediumLimit:
		return StrategySpanWithAklToussaint
	case isInteger:
		return StrategyPoolWithPreconditioning
	default:
		return StrategyPoolWithAklToussaint
	}
}

// Rough share of the input the reduction step is expected to discard.
func EstimateReduction(pointCount int, isInteger bool) float64 {
	if pointCount <= jarvisLimit {
		return 0
	}
	switch {
	case isInteger && pointCount > 1000:
		return 0.95
	case isInteger:
		return 0.90
	case pointCount > 10000:
		return 0.92
	default:
		return 0.85
	}
}

// Run the strategy over the input. Workers bounds the parallel strategies; 0
// means one per CPU. Input must have passed CheckFinite and must not be
// degenerate.
func (s Strategy) Run(points []Point, workers int) (IndexList, error) {
	indices := AllIndices(len(points))
	if s == StrategyJarvisMarch {
		return JarvisMarch(points, indices), nil
	}

	if s.preconditions() {
		indices = Precondition(points, indices)
	}
	indices = AklToussaint(points, indices)

	switch s {
	case StrategyListWithAklToussaint, StrategyListWithPreconditioning:
		return QuickHull(points, indices), nil
	case StrategySpanWithAklToussaint, StrategySpanWithPreconditioning:
		if len(points) < parallelLimit {
			return QuickHull(points, indices), nil
		}
	}
	return ParallelQuickHull(points, indices, workers)
}
