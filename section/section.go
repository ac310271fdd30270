// Package section measures sampled airfoil sections geometrically.
/*
Hosts that let users compare airfoil geometries need numbers to compare
by. This package closes a sampled outline (as produced by cst.Generate)
into a polygon and derives planform area and, via polygon clipping, the
overlap area between two sections -- a simple similarity metric for
comparison views.
*/
package section

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/airfoil/cst"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'section'
func tracer() tracing.Trace {
	return tracing.Select("section")
}

// Outline closes a sampled section into a single polygon contour: the
// upper surface from the leading to the trailing edge, then the lower
// surface walked back towards the leading edge.
func Outline(coords cst.Coordinates) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, len(coords.UpperX)+len(coords.LowerX))
	for i := range coords.UpperX {
		contour = append(contour, polyclip.Point{X: coords.UpperX[i], Y: coords.UpperY[i]})
	}
	for i := len(coords.LowerX) - 1; i >= 0; i-- {
		contour = append(contour, polyclip.Point{X: coords.LowerX[i], Y: coords.LowerY[i]})
	}
	return polyclip.Polygon{contour}
}

// Area returns the area enclosed by a sampled section, in units of the
// squared chord.
func Area(coords cst.Coordinates) float64 {
	return polygonArea(Outline(coords))
}

// Overlap returns the area shared by two sampled sections. Identical
// sections overlap by their full area; the thinner a common core two
// sections share, the smaller the result.
func Overlap(a, b cst.Coordinates) float64 {
	clipped := Outline(a).Construct(polyclip.INTERSECTION, Outline(b))
	tracer().Debugf("section overlap clipped to %d contours", len(clipped))
	return polygonArea(clipped)
}

// polygonArea sums the absolute shoelace area over all contours.
// polyclip exposes no area computation of its own, hence the local
// formula.
func polygonArea(pg polyclip.Polygon) float64 {
	total := 0.0
	for _, contour := range pg {
		if len(contour) < 3 {
			continue
		}
		sum := 0.0
		for i, pt := range contour {
			next := contour[(i+1)%len(contour)]
			sum += pt.X*next.Y - next.X*pt.Y
		}
		total += math.Abs(sum) / 2
	}
	return total
}
