package lineq

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func mustSolve(t *testing.T, A [][]float64, b []float64) []float64 {
	t.Helper()
	x, err := Solve(A, b)
	assert.NoError(t, err)
	return x
}

func hasNonFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func TestSolve2x2(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{2, 1},
		{1, 3},
	}
	b := []float64{5, 10}
	x := mustSolve(t, A, b)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 3.0, x[1], 1e-12)
}

func TestSolveTridiagonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	}
	b := []float64{1, 0, 1}
	x := mustSolve(t, A, b)
	for i := range x {
		assert.InDelta(t, 1.0, x[i], 1e-12, "component %d", i)
	}
}

func TestSolveRequiresPivotSwap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Elimination without row swapping would divide by the zero in A[0][0].
	A := [][]float64{
		{0, 1},
		{1, 0},
	}
	b := []float64{2, 3}
	x := mustSolve(t, A, b)
	assert.InDelta(t, 3.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}

func TestSolveDoesNotMutateInputs(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{0, 2, 1},
		{3, 1, -1},
		{1, 1, 1},
	}
	b := []float64{4, 2, 3}
	ACopy := [][]float64{
		{0, 2, 1},
		{3, 1, -1},
		{1, 1, 1},
	}
	bCopy := []float64{4, 2, 3}
	_ = mustSolve(t, A, b)
	assert.Equal(t, ACopy, A, "Solve mutated the coefficient matrix")
	assert.Equal(t, bCopy, b, "Solve mutated the right-hand side")
}

func TestSolveSingularSystemYieldsNonFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := [][]float64{
		{1, 1},
		{2, 2},
	}
	b := []float64{1, 3}
	x := mustSolve(t, A, b)
	assert.True(t, hasNonFinite(x), "expected NaN/Inf in solution of singular system, got %v", x)
}

func TestSolveDimensionMismatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Solve([][]float64{{1, 2}}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	_, err = Solve([][]float64{{1, 2}, {3}}, []float64{1, 2})
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

func TestSolveEmptySystem(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x := mustSolve(t, [][]float64{}, []float64{})
	assert.Empty(t, x)
}
