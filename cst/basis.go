package cst

import "math"

// Class is the CST class function C(ψ) = sqrt(ψ)·(1−ψ). It imposes a
// round leading edge and, absent a trailing-edge term, a closed trailing
// edge by construction. Well-defined on [0,1] with C(0) = C(1) = 0.
func Class(psi float64) float64 {
	return math.Sqrt(psi) * (1 - psi)
}

// Bernstein evaluates the j-th Bernstein basis polynomial of degree n
// at ψ:
//
//	B.j(ψ) = C(n,j)·ψ^j·(1−ψ)^(n−j)
//
// Boundary values follow the power rules with the 0^0 = 1 convention, so
// ψ = 0 and ψ = 1 evaluate to 0 or to the single surviving boundary term.
// The binomial coefficient is computed from factorials; degrees beyond
// roughly 20 overflow the float64 factorial -- a known limitation of
// this evaluation scheme, not guarded against.
func Bernstein(n, j int, psi float64) float64 {
	return binomial(n, j) * math.Pow(psi, float64(j)) * math.Pow(1-psi, float64(n-j))
}

// Shape evaluates the shape function S(ψ): the weighted sum of Bernstein
// basis polynomials of degree len(weights)-1. The shape function is the
// tunable, fittable part of the parameterization.
func Shape(weights []float64, psi float64) float64 {
	n := len(weights) - 1
	s := 0.0
	for j, w := range weights {
		s += w * Bernstein(n, j, psi)
	}
	return s
}

func binomial(n, j int) float64 {
	return factorial(n) / (factorial(j) * factorial(n-j))
}

func factorial(n int) float64 {
	f := 1.0
	for k := 2; k <= n; k++ {
		f *= float64(k)
	}
	return f
}
