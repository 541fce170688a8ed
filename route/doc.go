/*
Package route implements alignments: chains of straight lines, circular arcs
and clothoid transition curves ("eases"), as used for the center lines of
roads and rails.

A route is defined by its start tangent angle and a list of critical points.
Each critical point starts a segment, which ends at the next critical point;
the type of the critical point decides the geometry in between. Walking the
chain, every segment hands its exit tangent angle on to the next one. A
segment whose declared geometry does not fit the incoming tangent is not
rejected: it is flagged invalid and realized as a straight line.

Routes may be offset laterally. A positive offset lies to the left of the
direction of travel. Offset arcs are concentric arcs, offset eases are true
parallel curves of the clothoid.

Routes are assembled either from a slice of critical points or with a
builder:

	r, err := route.Start(0).
	    Line(planar.P(0, 0)).
	    Ease(planar.P(100, 0), route.Infinite, 60).
	    Arc(planar.P(118, 0.27), 200).
	    Line(planar.P(150, 3.1)).
	    End()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package route

import (
	"errors"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'route'
func tracer() tracing.Trace {
	return tracing.Select("route")
}

// AngleTolerance is the largest difference (radians) between the incoming
// tangent angle and a segment's own start direction which is still accepted.
var AngleTolerance = 0.01

// SampleStep is the largest increment of the clothoid tangent angle between
// two consecutive points of a sampled transition curve.
var SampleStep = math.Pi / 90

var (
	// ErrInvalidRadius indicates a radius not allowed for the type of critical point.
	ErrInvalidRadius = errors.New("invalid radius for critical point")
	// ErrInvalidParameter indicates a non-positive clothoid parameter.
	ErrInvalidParameter = errors.New("clothoid parameter must be positive")
	// ErrTooFewPoints indicates a route with a single critical point.
	ErrTooFewPoints = errors.New("route has too few critical points")
)
