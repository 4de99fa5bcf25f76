package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformSampler(t *testing.T) {
	points := NewUniformSampler(1).Sample(10000)
	assert.Len(t, points, 10000)
	for _, p := range points {
		for _, v := range []float64{p.X, p.Y} {
			assert.True(t, v >= 0 && v < 1, "%v outside [0, 1)", v)
			steps := v * gridSteps
			assert.InDelta(t, math.Round(steps), steps, 1e-6, "%v is not on the grid", v)
		}
	}
}

func TestUniformSampler_Seeded(t *testing.T) {
	assert.Equal(t, NewUniformSampler(7).Sample(50), NewUniformSampler(7).Sample(50))
	assert.NotEqual(t, NewUniformSampler(7).Sample(50), NewUniformSampler(8).Sample(50))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 0.999999, snap(0.9999999))
	assert.Equal(t, 0.0, snap(0.0000004))
	assert.Equal(t, 0.123456, snap(0.1234569))
}

func TestFixedSampler(t *testing.T) {
	s := FixedSampler(unitSquare)
	assert.Len(t, s.Sample(2), 2)
	assert.Len(t, s.Sample(10), 4)
}

func TestDemoPoints(t *testing.T) {
	points := DemoPoints(1000)
	assert.Len(t, points, 1000)
	assert.Equal(t, points, DemoPoints(1000), "demo data is deterministic")

	for i, p := range points[:900] {
		assert.LessOrEqual(t, math.Hypot(p.X, p.Y), 100.0, "point %d should be in the disc", i)
	}
	for i, p := range points[900:] {
		assert.True(t, p.X >= -200 && p.X < 200 && p.Y >= -200 && p.Y < 200, "outlier %d out of range", i)
	}
}
