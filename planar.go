/*
Package planar implements points and vectors in the plane, tolerant numeric
comparison, angle arithmetic and affine transformations. It is the base layer
for the geometry primitives in package geom and the alignment engine in
package route.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package planar

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'planar'
func tracer() tracing.Trace {
	return tracing.Select("planar")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = math.Pi / 180

// Epsilon : numbers below ε are considered 0. For numbers of larger magnitude
// Equal compares relative to the magnitude of its arguments.
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Equal is a predicate: is a = b within tolerance?
// Near zero the tolerance is absolute, otherwise relative to max(|a|,|b|).
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	d := math.Abs(a - b)
	if d <= Epsilon {
		return true
	}
	return d <= Epsilon*math.Max(math.Abs(a), math.Abs(b))
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}
