package cst

import (
	"math"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/lineq"
)

// leSampleCount is the window of raw samples nearest the leading edge
// used to back out the leading-edge weight.
const leSampleCount = 10

// A chord-normalized surface sample: parametric stations with matching
// ordinates. Transient; lives only for the duration of one fit.
type surface struct {
	psi []float64
	y   []float64
}

// Fit recovers CST parameters from two raw surface samples by linear
// least squares. The samples need not be sorted, deduplicated, or
// chord-normalized; Fit normalizes every x-station against the combined
// chord of both surfaces and uses the normalized station directly as the
// parametric coordinate ψ (see the package comment for the accuracy
// implications of that simplification).
//
// Each surface's weights solve the normal equations (AᵀA)w = Aᵀb over the
// design matrix A[i][j] = C(ψ.i)·B.j(ψ.i). The leading-edge weight and
// trailing-edge thickness are estimated afterwards by decoupled
// heuristics rather than folded into the system as joint unknowns.
//
// A negative order selects DefaultOrder. Fit always returns a
// structurally valid, fully finite result: non-finite weights become 0,
// a non-finite leading-edge weight becomes 0.5, and a non-finite
// trailing-edge thickness becomes 0.0001. Fewer samples than order+1
// leaves the system under-determined; such fits fall through to the same
// substitution instead of failing.
func Fit(upper, lower []airfoil.Pair, order int) Parameters {
	if order < 0 {
		order = DefaultOrder
	}
	up, lo := normalize(upper, lower)
	tracer().P("op", "fit").Infof("order %d, %d upper and %d lower samples",
		order, len(up.psi), len(lo.psi))
	p := Parameters{
		UpperWeights: fitWeights(up, order),
		LowerWeights: fitWeights(lo, order),
		Order:        order,
	}
	p.LEWeight = airfoil.Finite(estimateLEWeight(up, p.UpperWeights, order), fallbackLEWeight)
	p.TEThickness = airfoil.Finite(estimateTEGap(upper, lower), fallbackTEThickness)
	tracer().P("op", "fit").Infof("w.le = %g, t.te = %g", p.LEWeight, p.TEThickness)
	return p
}

// normalize maps the x-stations of both surfaces onto [0,1] against their
// combined chord. A degenerate chord (all x equal, or no samples at all)
// yields non-finite stations, which downstream sanitizing absorbs.
func normalize(upper, lower []airfoil.Pair) (surface, surface) {
	minX := math.Inf(1)
	maxX := math.Inf(-1)
	for _, pt := range upper {
		minX = math.Min(minX, pt.X())
		maxX = math.Max(maxX, pt.X())
	}
	for _, pt := range lower {
		minX = math.Min(minX, pt.X())
		maxX = math.Max(maxX, pt.X())
	}
	chord := maxX - minX
	tracer().Debugf("chord = %g over [%g,%g]", chord, minX, maxX)
	return normalizeSurface(upper, minX, chord), normalizeSurface(lower, minX, chord)
}

func normalizeSurface(sample []airfoil.Pair, minX, chord float64) surface {
	s := surface{
		psi: make([]float64, len(sample)),
		y:   make([]float64, len(sample)),
	}
	for i, pt := range sample {
		s.psi[i] = (pt.X() - minX) / chord
		s.y[i] = pt.Y()
	}
	return s
}

// fitWeights solves the normal equations for one surface and sanitizes
// the solution componentwise.
func fitWeights(s surface, order int) []float64 {
	m := order + 1
	design := make([][]float64, len(s.psi))
	for i, psi := range s.psi {
		class := Class(psi)
		row := make([]float64, m)
		for j := 0; j < m; j++ {
			row[j] = class * Bernstein(order, j, psi)
		}
		design[i] = row
	}
	gram := make([][]float64, m)
	rhs := make([]float64, m)
	for j := 0; j < m; j++ {
		gram[j] = make([]float64, m)
		for i, row := range design {
			for k := 0; k < m; k++ {
				gram[j][k] += row[j] * row[k]
			}
			rhs[j] += row[j] * s.y[i]
		}
	}
	weights, err := lineq.Solve(gram, rhs)
	if err != nil { // cannot happen: the Gram matrix is square by construction
		tracer().Errorf("normal equations rejected: %v", err)
		weights = make([]float64, m)
	}
	for j := range weights {
		weights[j] = airfoil.Finite(weights[j], fallbackWeight)
	}
	return weights
}

// estimateLEWeight backs the leading-edge modifier out of the residual
// between the raw ordinates near ψ = 0 and the fitted class/shape value
// there: the mean residual over the ≤ leSampleCount samples nearest the
// leading edge, divided by the leading-edge basis ψ·(1−ψ)^(order+0.5) at
// their mean station. Decoupled from the linear solve; the system stays
// at order+1 unknowns.
func estimateLEWeight(s surface, weights []float64, order int) float64 {
	nearest := treemap.NewWith(utils.Float64Comparator)
	for i, psi := range s.psi {
		nearest.Put(psi, s.y[i])
	}
	var sumPsi, sumY float64
	count := 0
	it := nearest.Iterator()
	for it.Next() && count < leSampleCount {
		sumPsi += it.Key().(float64)
		sumY += it.Value().(float64)
		count++
	}
	meanPsi := sumPsi / float64(count)
	meanY := sumY / float64(count)
	fitted := Class(meanPsi) * Shape(weights, meanPsi)
	leBasis := meanPsi * math.Pow(1-meanPsi, float64(order)+0.5)
	return (meanY - fitted) / leBasis
}

// estimateTEGap reads the trailing-edge gap straight off the raw samples.
// Upper surfaces are conventionally listed from the trailing edge, lower
// surfaces towards it, so the upper surface's first ordinate and the
// lower surface's last ordinate both sit at the trailing edge.
func estimateTEGap(upper, lower []airfoil.Pair) float64 {
	if len(upper) == 0 || len(lower) == 0 {
		return math.NaN() // sanitized by the caller
	}
	return math.Abs(upper[0].Y() - lower[len(lower)-1].Y())
}
