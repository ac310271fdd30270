// Package lineq solves dense systems of linear equations.
/*
The solver performs Gaussian elimination with partial pivoting: for each
column it swaps the largest-magnitude candidate pivot into place before
eliminating below, then back-substitutes. It carries no domain knowledge;
package cst uses it to solve the normal equations of a least-squares fit,
but any square system will do.

Two contract details matter to callers:

Inputs are never mutated. Solve copies the coefficient matrix and the
right-hand side into an owned augmented matrix before eliminating, so a
caller's data is safe to reuse after the call.

A singular system is not an error. A pivot of exactly zero propagates
NaN/Inf into the solution vector instead of aborting the elimination.
Callers that must stay total (such as the fitter) sanitize the result;
callers that care can inspect the solution for non-finite entries. There
is no iterative refinement and no condition-number check.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package lineq

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lineq'
func tracer() tracing.Trace {
	return tracing.Select("lineq")
}

// ErrDimensionMismatch indicates a non-square coefficient matrix or a
// right-hand side of the wrong length.
var ErrDimensionMismatch = errors.New("matrix and vector dimensions do not match")

// Solve solves A·x = b for a square n×n matrix A and a length-n vector b.
// A and b are left untouched; the returned slice is freshly allocated.
//
// Solve fails only for structurally malformed systems (ErrDimensionMismatch).
// Numeric degeneracy -- a zero or near-zero pivot -- yields non-finite
// entries in x by contract, never an error.
func Solve(A [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(A) != n {
		return nil, fmt.Errorf("%w: %d equations for %d unknowns", ErrDimensionMismatch, len(A), n)
	}
	for i, row := range A {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
	}
	m := augment(A, b)
	for col := 0; col < n; col++ {
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		m[col], m[pivot] = m[pivot], m[col]
		tracer().Debugf("pivot for column %d is %g (from row %d)", col, m[col][col], pivot)
		for row := col + 1; row < n; row++ {
			f := m[row][col] / m[col][col]
			for k := col; k <= n; k++ {
				m[row][k] -= f * m[col][k]
			}
		}
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := m[i][n]
		for k := i + 1; k < n; k++ {
			sum -= m[i][k] * x[k]
		}
		x[i] = sum / m[i][i]
	}
	return x, nil
}

// augment copies A and b into an owned augmented matrix [A|b], so that
// elimination never aliases caller-owned storage.
func augment(A [][]float64, b []float64) [][]float64 {
	n := len(b)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n+1)
		copy(m[i], A[i])
		m[i][n] = b[i]
	}
	return m
}
