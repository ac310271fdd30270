// Package cst implements the Class Shape Transformation (CST)
// parameterization for airfoil sections.
/*

CST expresses each surface of an airfoil as a class function times a
weighted sum of Bernstein basis polynomials, plus small correction terms
for the leading and trailing edge:

   y(ψ) = C(ψ)·S(ψ) + w.le·ψ·(1−ψ)^(n+0.5) ± ψ·t.te/2

with the class function C(ψ) = sqrt(ψ)·(1−ψ) and the shape function
S(ψ) = Σ w.j·B.j(ψ) over the Bernstein basis of degree n. The primary
source for the parameterization is:

   "Universal Parametric Geometry Representation Method" -- B. M. Kulfan
   Journal of Aircraft, Vol. 45, No. 1, 2008

The package covers both directions of the mapping. Generate produces a
densely sampled outline from a parameter vector, on a cosine-spaced grid
that concentrates samples near the edges. Fit recovers a parameter vector
from raw, unstructured surface samples by linear least squares: it
chord-normalizes the samples, builds a design matrix from the class and
basis values, and solves the normal equations with package lineq. The two
edge parameters are estimated by decoupled single-pass heuristics after
the solve, which keeps the linear system small and well-conditioned near
the edges at the cost of some edge-region accuracy.

The fit is an approximation, not an inverse: normalized x-stations stand
in for the parametric coordinate ψ directly, without inverting the true
arc-length mapping. Round-tripping a generated outline through Fit
recovers weights only up to that simplification.

Fit is total. Degenerate input -- a zero-width chord, fewer samples than
unknowns, a singular system -- never raises an error and never yields
partial data; non-finite intermediate results are replaced by documented
fallback values instead.
*/
package cst

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'cst'
func tracer() tracing.Trace {
	return tracing.Select("cst")
}

// DefaultOrder is the Bernstein polynomial degree used when a caller does
// not request a specific one. Degree 7 yields 8 weights per surface.
const DefaultOrder = 7

// Fallback values substituted for non-finite fit results.
const (
	fallbackWeight      = 0.0
	fallbackLEWeight    = 0.5
	fallbackTEThickness = 0.0001
)

// Parameters is a compact analytic description of an airfoil section.
// The weight slices hold the Bernstein coefficients in basis order: index
// j is the coefficient of the j-th basis term of degree Order, so both
// slices have length Order+1.
type Parameters struct {
	UpperWeights []float64 // shape weights for the upper surface
	LowerWeights []float64 // shape weights for the lower surface
	LEWeight     float64   // leading-edge bluntness modifier
	TEThickness  float64   // trailing-edge gap, ≥ 0
	Order        int       // Bernstein polynomial degree, ≥ 0
}

// Coordinates is a sampled airfoil outline: four parallel sequences over
// a shared cosine-spaced parametric grid, each of length numPoints+1.
// The x-stations are chord-normalized to [0,1].
type Coordinates struct {
	UpperX []float64
	UpperY []float64
	LowerX []float64
	LowerY []float64
}

// DefaultParameters returns a hand-chosen seed parameter set describing a
// moderately cambered section. Hosts use it as a starting point before a
// fit has produced parameters of their own.
func DefaultParameters() Parameters {
	return Parameters{
		UpperWeights: []float64{0.1703, 0.1527, 0.5168, 0.0921, 0.6690, 0.1435, 0.2899, 0.1621},
		LowerWeights: []float64{-0.1631, -0.1440, 0.0890, -0.0706, 0.0974, 0.0147, 0.0789, 0.0808},
		LEWeight:     0.5035,
		TEThickness:  0.0001,
		Order:        DefaultOrder,
	}
}
