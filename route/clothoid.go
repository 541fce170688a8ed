package route

import (
	"math"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/geom"
)

// A clothoid in its standard frame starts at the origin with infinite radius,
// heading along the positive x-axis and turning left. Its curvature grows
// linearly with the mileage m; A is the clothoid parameter with r·m = A².

// standardAngle is the tangent angle of the standard clothoid at radius r.
func standardAngle(a2, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return a2 / (2 * r * r)
}

// standardMile is the mileage of the standard clothoid at radius r.
func standardMile(a2, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return a2 / r
}

// mileAtAngle is the mileage at which the standard clothoid reaches
// tangent angle theta.
func mileAtAngle(a2, theta float64) float64 {
	if theta <= 0 {
		return 0
	}
	return math.Sqrt(2 * a2 * theta)
}

// standardPoint is the point of the standard clothoid with parameter a at
// mileage m, by the truncated Fresnel series.
func standardPoint(a, m float64) planar.Pair {
	a2 := a * a
	a4 := a2 * a2
	a6 := a4 * a2
	a8 := a4 * a4
	a10 := a8 * a2
	m2 := m * m
	m3 := m2 * m
	m5 := m3 * m2
	m7 := m5 * m2
	m9 := m7 * m2
	m11 := m9 * m2
	x := m - m5/(40*a4) + m9/(3456*a8)
	y := m3/(6*a2) - m7/(336*a6) + m11/(42240*a10)
	return planar.P(x, y)
}

// parallelPoint is the point at tangent angle theta of the curve parallel to
// the standard clothoid at distance d (positive to the left).
func parallelPoint(a, theta, d float64) planar.Pair {
	p := standardPoint(a, mileAtAngle(a*a, theta))
	if d == 0 {
		return p
	}
	sin, cos := math.Sincos(theta)
	return p + planar.P(-sin*d, cos*d)
}

// ease is a transition curve segment between two critical points, placed
// in the world by an affine transform of the standard frame.
type ease struct {
	a, a2          float64
	theta1, theta2 float64 // standard tangent angles at both ends
	mile1, mile2   float64 // standard mileages at both ends
	reverse        bool    // curvature decreases along the segment
	mirrored       bool    // the world turns opposite to the standard frame
	exit           float64 // world tangent angle at the segment's end
	frame          planar.AT
}

// newEase places the clothoid running from p1 to p2, with tangent angle
// entry at p1. Segments which cannot be realized as a clothoid, or whose
// clothoid does not leave p1 in direction entry, yield nil.
func newEase(entry float64, p1, p2 CriticalPoint) *ease {
	if p1.Point.Equal(p2.Point) || p1.A <= 0 {
		return nil
	}
	e := &ease{a: p1.A, a2: p1.A * p1.A}
	e.theta1, e.theta2 = standardAngle(e.a2, p1.Radius), standardAngle(e.a2, p2.Radius)
	if planar.Equal(e.theta1, e.theta2) {
		tracer().Debugf("ease from %v to %v has constant curvature", p1, p2)
		return nil
	}
	e.mile1, e.mile2 = standardMile(e.a2, p1.Radius), standardMile(e.a2, p2.Radius)
	switch {
	case p1.Radius == Infinite:
		e.reverse = false
	case p2.Radius == Infinite:
		e.reverse = true
	default:
		e.reverse = p2.Radius > p1.Radius
	}
	tangent := geom.LineFromP1AngleLength(p1.Point, entry, 1)
	e.mirrored = tangent.WhichSide(p2.Point, 0) == geom.SideRight
	if e.reverse {
		e.mirrored = !e.mirrored
	}
	e.exit = planar.NormalizeAngle(entry + e.sigma()*(e.theta2-e.theta1))
	m := planar.Identity()
	if e.mirrored {
		m = planar.Reflection()
	}
	switch {
	case p1.Radius == Infinite: // inflection point at p1
		e.frame = m.Combine(planar.Rotation(entry)).Combine(planar.Translation(p1.Point))
	case p2.Radius == Infinite: // inflection point at p2, running backwards
		e.frame = m.Combine(planar.Rotation(e.exit + math.Pi)).Combine(planar.Translation(p2.Point))
	default: // fit the chord between both ends
		s1 := m.Transform(standardPoint(e.a, e.mile1))
		s2 := m.Transform(standardPoint(e.a, e.mile2))
		phi := (p2.Point - p1.Point).Angle() - (s2 - s1).Angle()
		origin := p1.Point - planar.Rotation(phi).Transform(s1)
		e.frame = m.Combine(planar.Rotation(phi)).Combine(planar.Translation(origin))
	}
	if !e.fits(entry, p1.Point, p2.Point) {
		return nil
	}
	return e
}

// fits checks the placed clothoid against the route: it has to leave p1 in
// direction entry and run from p1 to p2.
func (e *ease) fits(entry float64, p1, p2 planar.Pair) bool {
	s1 := standardPoint(e.a, e.mile1)
	dir := planar.P(math.Cos(e.theta1), math.Sin(e.theta1))
	if e.reverse {
		dir = -dir
	}
	start := e.frame.Transform(s1+dir) - e.frame.Transform(s1)
	if angleDiff(start.Angle(), entry) > AngleTolerance {
		tracer().Debugf("ease leaves %v at %.4f, tangent is %.4f", p1, start.Angle(), entry)
		return false
	}
	tol := AngleTolerance * p1.Distance(p2)
	if e.frame.Transform(s1).Distance(p1) > tol ||
		e.frame.Transform(standardPoint(e.a, e.mile2)).Distance(p2) > tol {
		tracer().Debugf("ease does not connect %v and %v", p1, p2)
		return false
	}
	return true
}

func (e *ease) sigma() float64 {
	if e.mirrored {
		return -1
	}
	return 1
}

// mile is the length of the clothoid between both ends.
func (e *ease) mile() float64 {
	return math.Abs(e.mile2 - e.mile1)
}

// standardOffset converts a route offset (positive to the left of travel)
// to an offset in the standard frame.
func (e *ease) standardOffset(offset float64) float64 {
	d := offset * e.sigma()
	if e.reverse {
		d = -d
	}
	return d
}

// length is the length of the parallel curve at the given route offset.
func (e *ease) length(offset float64) float64 {
	return e.mile() - e.standardOffset(offset)*math.Abs(e.theta2-e.theta1)
}

// polyline samples the (offset) clothoid at uniform tangent angle steps no
// larger than SampleStep. Without offset the end points are exactly p1
// and p2.
func (e *ease) polyline(offset float64, p1, p2 planar.Pair) geom.Polyline {
	dtheta := e.theta2 - e.theta1
	n := int(math.Ceil(math.Abs(dtheta) / SampleStep))
	if n < 1 {
		n = 1
	}
	d := e.standardOffset(offset)
	points := make([]planar.Pair, 0, n+1)
	for k := 0; k <= n; k++ {
		theta := e.theta1 + dtheta*float64(k)/float64(n)
		points = append(points, e.frame.Transform(parallelPoint(e.a, theta, d)))
	}
	if offset == 0 {
		points[0], points[n] = p1, p2
	}
	return geom.Polyline{Points: points}
}
