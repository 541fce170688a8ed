/*
Package geom provides the drafting primitives of the plane: lines (used as
infinite lines or as segments, depending on the call), circles and circular
arcs, together with their constructors and the intersection routines between
them.

Construction and intersection never fail loudly. Whenever a result is
geometrically impossible or numerically degenerate (collinear points,
zero-length lines, parallel lines, a point at a circle's center, disjoint
circles), functions report absence, either as a second boolean result or as
a nil pointer. Callers have to check before using a result.

Mutators (Move, RotateAround, Mirror…, Offset, Swap, Complement, trimming)
change their receiver in place and return it to enable chaining:

	l := geom.NewLine(planar.P(0, 0), planar.P(4, 0))
	l.Clone().Swap().LengthenEnd(2)

Clone first if the original value is still needed.

Orientation follows the mathematical convention: angles are measured
counter-clockwise from the x-axis, a positive sweep is counter-clockwise, and
"left" of a directed line is the side a counter-clockwise turn leads to.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// SideEpsilon is the default distance below which WhichSide reports a point
// as lying on a line.
var SideEpsilon = 0.01

// TangentThreshold is the tangent of the smallest angle (0.1 arc seconds)
// between two lines which XEquationLineLine will still intersect.
var TangentThreshold = 8.46097e-9
