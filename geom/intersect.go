package geom

import (
	"math"

	"github.com/npillmayer/planar"
)

// XLineLine intersects line a1-a2 with line b1-b2. Each of them is taken as
// an infinite line if its flag is set, as a segment otherwise.
//
// Parallel lines, coincident lines and segments which do not reach each other
// all report absence; callers cannot tell these cases apart.
func XLineLine(a1, a2 planar.Pair, aIsLine bool, b1, b2 planar.Pair, bIsLine bool) (planar.Pair, bool) {
	uaT := (b2.X()-b1.X())*(a1.Y()-b1.Y()) - (b2.Y()-b1.Y())*(a1.X()-b1.X())
	ubT := (a2.X()-a1.X())*(a1.Y()-b1.Y()) - (a2.Y()-a1.Y())*(a1.X()-b1.X())
	uB := (b2.Y()-b1.Y())*(a2.X()-a1.X()) - (b2.X()-b1.X())*(a2.Y()-a1.Y())
	if uB == 0 {
		if uaT == 0 || ubT == 0 {
			tracer().Debugf("lines %v--%v and %v--%v are coincident", a1, a2, b1, b2)
		} else {
			tracer().Debugf("lines %v--%v and %v--%v are parallel", a1, a2, b1, b2)
		}
		return planar.Origin, false
	}
	ua := uaT / uB
	ub := ubT / uB
	if (aIsLine || inUnitRange(ua)) && (bIsLine || inUnitRange(ub)) {
		return planar.P(a1.X()+ua*(a2.X()-a1.X()), a1.Y()+ua*(a2.Y()-a1.Y())), true
	}
	return planar.Origin, false
}

func inUnitRange(t float64) bool {
	return t >= -planar.Epsilon && t <= 1+planar.Epsilon
}

// XEquationLineLine intersects the lines a1·x + b1·y + c1 = 0 and
// a2·x + b2·y + c2 = 0. Lines enclosing an angle with a tangent below
// TangentThreshold count as parallel.
func XEquationLineLine(a1, b1, c1, a2, b2, c2 float64) (planar.Pair, bool) {
	if a1 == 0.0 && b1 == 0.0 || a2 == 0.0 && b2 == 0.0 {
		return planar.Origin, false
	}
	divisor := a1*b2 - a2*b1
	denominator := a1*a2 + b1*b2
	if denominator != 0.0 {
		tanPhi := math.Abs(divisor / denominator)
		if tanPhi < TangentThreshold {
			return planar.Origin, false
		}
	} // else the lines are perpendicular and divisor cannot be 0
	return planar.P((b1*c2-b2*c1)/divisor, (a2*c1-a1*c2)/divisor), true
}

// XLineCircle intersects line a1-a2 with the circle around c with radius r.
// The line is taken as infinite if isLine is set, as a segment otherwise.
//
// ok is false if the infinite line misses the circle. Otherwise the result
// holds the touching point of a tangent or up to two crossing points, each of
// them dropped if it lies outside of a segment.
func XLineCircle(a1, a2 planar.Pair, isLine bool, c planar.Pair, r float64) ([]planar.Pair, bool) {
	d := a2 - a1
	a := d.Magnitude2()
	if a == 0 {
		return nil, false
	}
	line := NewLine(a1, a2)
	foot, t, _ := line.ProjectOnLine(c)
	dist := foot.Distance(c)
	if planar.Equal(dist, r) { // tangent
		if isLine || inUnitRange(t) {
			return []planar.Pair{foot}, true
		}
		return []planar.Pair{}, true
	} else if dist > r {
		return nil, false
	}
	dt := math.Sqrt((r-dist)*(r+dist)) / math.Sqrt(a)
	u1, u2 := t+dt, t-dt
	points := make([]planar.Pair, 0, 2)
	if isLine || inUnitRange(u1) {
		points = append(points, line.TPoint(u1))
	}
	if isLine || inUnitRange(u2) {
		points = append(points, line.TPoint(u2))
	}
	return points, true
}

// XCircleCircle intersects the circle around c1 with radius r1 and the circle
// around c2 with radius r2. Disjoint circles, circles strictly inside one
// another and concentric circles report absence. Touching circles yield a
// single point.
func XCircleCircle(c1 planar.Pair, r1 float64, c2 planar.Pair, r2 float64) ([]planar.Pair, bool) {
	rMax := r1 + r2
	rMin := math.Abs(r1 - r2)
	dist := c1.Distance(c2)
	if dist == 0 {
		return nil, false
	}
	if dist > rMax && !planar.Equal(dist, rMax) {
		return nil, false // outside
	} else if dist < rMin && !planar.Equal(dist, rMin) {
		return nil, false // inside
	}
	a := (r1*r1 - r2*r2 + dist*dist) / (2 * dist)
	h2 := r1*r1 - a*a
	if h2 < 0 {
		h2 = 0
	}
	h := math.Sqrt(h2)
	p := NewLine(c1, c2).TPoint(a / dist)
	b := h / dist
	if planar.Is0(b) {
		return []planar.Pair{p}, true
	}
	d := c2 - c1
	return []planar.Pair{
		planar.P(p.X()-b*d.Y(), p.Y()+b*d.X()),
		planar.P(p.X()+b*d.Y(), p.Y()-b*d.X()),
	}, true
}

// removePointsNotOnArc filters points on a circle around center, keeping the
// ones within the angular range of an arc.
func removePointsNotOnArc(points []planar.Pair, center planar.Pair, startAngle, sweepAngle float64) []planar.Pair {
	startAngle = planar.NormalizeAngle(startAngle)
	sweepAngle = planar.NormalizeSweep(sweepAngle)
	kept := points[:0]
	for _, pt := range points {
		if planar.AngleBetween((pt - center).Angle(), startAngle, sweepAngle) {
			kept = append(kept, pt)
		}
	}
	return kept
}

// XLineArc intersects line a1-a2 (infinite if isLine, a segment otherwise)
// with arc. Absence is reported if the line misses the arc's circle.
func XLineArc(a1, a2 planar.Pair, isLine bool, arc *Arc) ([]planar.Pair, bool) {
	points, ok := XLineCircle(a1, a2, isLine, arc.Center, arc.Radius)
	if !ok {
		return nil, false
	}
	return removePointsNotOnArc(points, arc.Center, arc.StartAngle, arc.SweepAngle), true
}

// XCircleArc intersects circle c with arc. Absence is reported if the
// circles do not intersect.
func XCircleArc(c *Circle, arc *Arc) ([]planar.Pair, bool) {
	points, ok := XCircleCircle(c.Center, c.Radius, arc.Center, arc.Radius)
	if !ok {
		return nil, false
	}
	return removePointsNotOnArc(points, arc.Center, arc.StartAngle, arc.SweepAngle), true
}

// XArcArc intersects two arcs. Absence is reported if their circles do not
// intersect.
func XArcArc(a, b *Arc) ([]planar.Pair, bool) {
	points, ok := XCircleCircle(a.Center, a.Radius, b.Center, b.Radius)
	if !ok {
		return nil, false
	}
	points = removePointsNotOnArc(points, a.Center, a.StartAngle, a.SweepAngle)
	return removePointsNotOnArc(points, b.Center, b.StartAngle, b.SweepAngle), true
}
