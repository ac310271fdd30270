/*
Package airfoil implements numeric basics for processing airfoil geometry:
2D surface-sample points, epsilon arithmetic, and finite-value sanitizing.

Subpackages build on these to parameterize airfoil sections (package cst),
to solve the linear systems arising during fitting (package lineq), and to
measure sampled sections geometrically (package section).

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package airfoil

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'airfoil'
func tracer() tracing.Trace {
	return tracing.Select("airfoil")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Finite guards a numeric result against NaN and ±Inf: it returns n
// unchanged if n is finite, and the given fallback otherwise. Downstream
// fitting code funnels every computed parameter through here, so callers
// always receive usable values, even for degenerate input geometry.
func Finite(n, fallback float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		tracer().Debugf("sanitized non-finite value, substituting %g", fallback)
		return fallback
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a 2D surface-sample point (x = chordwise station, y = ordinate).
type Pair complex128

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Equal compares two pairs, with ε-tolerance per coordinate.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}
