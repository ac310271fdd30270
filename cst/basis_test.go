package cst

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestClassBoundaries(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, Class(0), "class function must vanish at the leading edge")
	assert.Equal(t, 0.0, Class(1), "class function must vanish at the trailing edge")
	assert.InDelta(t, 0.375, Class(0.25), 1e-12) // sqrt(1/4)·(3/4)
}

func TestBernsteinPartitionOfUnity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{0, 1, 3, 7, 12} {
		for _, psi := range []float64{0, 0.1, 0.5, 0.9, 1} {
			sum := 0.0
			for j := 0; j <= n; j++ {
				sum += Bernstein(n, j, psi)
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "n=%d psi=%g", n, psi)
		}
	}
}

func TestBernsteinOrderZeroIsConstantOne(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, psi := range []float64{0, 0.25, 0.5, 1} {
		assert.Equal(t, 1.0, Bernstein(0, 0, psi), "psi=%g", psi)
	}
}

func TestBernsteinBoundaryTerms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// At the edges only the boundary term survives, per the 0^0 = 1 rule.
	assert.Equal(t, 1.0, Bernstein(7, 0, 0))
	assert.Equal(t, 0.0, Bernstein(7, 3, 0))
	assert.Equal(t, 1.0, Bernstein(7, 7, 1))
	assert.Equal(t, 0.0, Bernstein(7, 4, 1))
}

func TestShapeWithUniformWeights(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// With all weights equal the shape function collapses to that constant.
	weights := []float64{0.3, 0.3, 0.3, 0.3, 0.3}
	for _, psi := range []float64{0, 0.2, 0.5, 0.8, 1} {
		assert.InDelta(t, 0.3, Shape(weights, psi), 1e-12, "psi=%g", psi)
	}
}
