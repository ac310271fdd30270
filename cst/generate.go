package cst

import "math"

// Generate samples the airfoil outline described by p on a cosine-spaced
// parametric grid
//
//	ψ.i = (1 − cos(iπ/numPoints))/2 ,  i = 0…numPoints
//
// which is dense near both edges and sparse at mid-chord. Each returned
// sequence has numPoints+1 entries; x-stations equal ψ for both surfaces.
// Generation is purely deterministic, with no error conditions for finite
// parameters.
func Generate(p Parameters, numPoints int) Coordinates {
	coords := Coordinates{
		UpperX: make([]float64, numPoints+1),
		UpperY: make([]float64, numPoints+1),
		LowerX: make([]float64, numPoints+1),
		LowerY: make([]float64, numPoints+1),
	}
	leExponent := float64(p.Order) + 0.5
	for i := 0; i <= numPoints; i++ {
		psi := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(numPoints)))
		class := Class(psi)
		leTerm := p.LEWeight * psi * math.Pow(1-psi, leExponent)
		teTerm := psi * p.TEThickness / 2
		coords.UpperX[i] = psi
		coords.LowerX[i] = psi
		coords.UpperY[i] = class*Shape(p.UpperWeights, psi) + leTerm + teTerm
		coords.LowerY[i] = class*Shape(p.LowerWeights, psi) + leTerm - teTerm
	}
	tracer().Debugf("generated %d samples per surface for order %d", numPoints+1, p.Order)
	return coords
}
