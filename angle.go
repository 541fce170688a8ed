package planar

import "math"

const pi2 = 2 * math.Pi

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * Deg2Rad
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad / Deg2Rad
}

// Fmod is the truncating floating point remainder x - y·trunc(x/y).
// Its sign follows x. ok is false for y = 0.
//
//	Fmod(-3.5, 1) = -0.5
//	Fmod(3.5, -1) = 0.5
func Fmod(x, y float64) (r float64, ok bool) {
	if y == 0 {
		return 0, false
	}
	return x - y*math.Trunc(x/y), true
}

// NormalizeAngle reduces an angle to fit into (-π, π].
func NormalizeAngle(a float64) float64 {
	cycles := math.Floor(a / pi2)
	a -= cycles * pi2
	if a > math.Pi {
		a -= pi2
	}
	return a
}

// NormalizeSweep reduces a sweep angle to fit into (-2π, 2π], keeping its
// sign. A full turn stays a full turn instead of collapsing to zero.
func NormalizeSweep(s float64) float64 {
	r, _ := Fmod(s, pi2)
	if r == 0 && s != 0 {
		return math.Copysign(pi2, s)
	}
	return r
}

// AngleBetween is true if angle lies on the arc starting at start and
// sweeping by sweep (negative sweeps run clockwise). Both arc ends are
// included. Angles may be given outside (-π, π].
func AngleBetween(angle, start, sweep float64) bool {
	angle = NormalizeAngle(angle)
	if math.Abs(sweep) >= pi2 {
		return true
	}
	if sweep < 0 {
		start, sweep = start+sweep, -sweep
	}
	start = NormalizeAngle(start)
	end := start + sweep
	if angle < start {
		angle += pi2
	}
	if angle <= end {
		return true
	}
	// tolerate rounding at either arc end
	return Equal(angle, end) || Equal(angle-pi2, start)
}
