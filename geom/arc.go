package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/planar"
)

// Arc is a part of a circle, starting at StartAngle and sweeping by
// SweepAngle. Positive sweeps run counter-clockwise. StartAngle is kept in
// (-π, π], SweepAngle in (-2π, 2π].
type Arc struct {
	Circle
	StartAngle float64
	SweepAngle float64
}

// NewArc creates an arc, normalizing its angles.
func NewArc(center planar.Pair, r, startAngle, sweepAngle float64) *Arc {
	return &Arc{
		Circle:     Circle{Center: center, Radius: r},
		StartAngle: planar.NormalizeAngle(startAngle),
		SweepAngle: planar.NormalizeSweep(sweepAngle),
	}
}

// ArcFromCenterRadiusAngles creates an arc from startAngle to endAngle,
// running counter-clockwise if ccw is set, clockwise otherwise.
func ArcFromCenterRadiusAngles(center planar.Pair, r, startAngle, endAngle float64, ccw bool) *Arc {
	startAngle = planar.NormalizeAngle(startAngle)
	endAngle = planar.NormalizeAngle(endAngle)
	sweep := endAngle - startAngle
	if sweep > 0 && !ccw {
		sweep -= 2 * math.Pi
	} else if sweep < 0 && ccw {
		sweep += 2 * math.Pi
	}
	return NewArc(center, r, startAngle, sweep)
}

// ArcFrom3Points creates the arc starting at p1, passing through p2 and
// ending at p3. Collinear points yield nil.
func ArcFrom3Points(p1, p2, p3 planar.Pair) *Arc {
	c := CircumCircle(p1, p2, p3)
	if c == nil {
		return nil
	}
	startAngle := (p1 - c.Center).Angle()
	endAngle := (p3 - c.Center).Angle()
	angle := (p2 - c.Center).Angle()
	sweep := endAngle - startAngle
	if sweep >= 0 {
		if !(angle >= startAngle && angle <= endAngle) {
			sweep -= 2 * math.Pi
		}
	} else if !(angle >= endAngle && angle <= startAngle) {
		sweep += 2 * math.Pi
	}
	return NewArc(c.Center, c.Radius, startAngle, sweep)
}

// ArcFromStartDirSweepRadius creates an arc with radius r, starting at start
// with tangent direction dir and sweeping by sweep. A zero direction or a
// non-positive radius yield nil.
func ArcFromStartDirSweepRadius(start, dir planar.Pair, sweep, r float64) *Arc {
	sweep = planar.NormalizeSweep(sweep)
	if dir.IsOrigin() || r <= 0 {
		return nil
	}
	var off planar.Pair
	if sweep < 0 {
		off = planar.P(dir.Y(), -dir.X()) // center to the right
	} else {
		off = planar.P(-dir.Y(), dir.X())
	}
	pp := r / dir.Magnitude()
	off = planar.P(off.X()*pp, off.Y()*pp)
	return NewArc(start+off, r, (-off).Angle(), sweep)
}

// ArcFromStartEndDir creates the arc from start to end whose tangent at start
// points in direction dir. An end point straight ahead of or behind start
// yields nil.
func ArcFromStartEndDir(start, end, dir planar.Pair) *Arc {
	a1, b1 := dir.X(), dir.Y()
	chord := end - start
	a2, b2 := chord.X(), chord.Y()
	if planar.Is0(dir.Cross(chord)) {
		return nil
	}
	c1 := -(a1*start.X() + b1*start.Y())
	mid := start.Mid(end)
	c2 := -(a2*mid.X() + b2*mid.Y())
	center, ok := XEquationLineLine(a1, b1, c1, a2, b2, c2)
	if !ok {
		return nil
	}
	startAngle := (start - center).Angle()
	endAngle := (end - center).Angle()
	sweep := endAngle - startAngle
	if dir.Dot(chord) >= 0 { // small arc
		if sweep > math.Pi {
			sweep -= 2 * math.Pi
		} else if sweep < -math.Pi {
			sweep += 2 * math.Pi
		}
	} else {
		if sweep < 0 && sweep > -math.Pi {
			sweep += 2 * math.Pi
		} else if sweep >= 0 && sweep < math.Pi {
			sweep -= 2 * math.Pi
		}
	}
	return NewArc(center, center.Distance(start), startAngle, sweep)
}

// ArcFromStartCenterEnd creates the counter-clockwise arc around center from
// start to the ray through end. Coinciding points yield nil.
func ArcFromStartCenterEnd(start, center, end planar.Pair) *Arc {
	if start.Equal(end) || start.Equal(center) || center.Equal(end) {
		return nil
	}
	startAngle := (start - center).Angle()
	sweep := (end - center).Angle() - startAngle
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return NewArc(center, center.Distance(start), startAngle, sweep)
}

// ArcFromStartAngleCenterEnd creates the counter-clockwise arc around center
// from startAngle to end. The radius is the distance of end from center.
func ArcFromStartAngleCenterEnd(startAngle float64, center, end planar.Pair) *Arc {
	if center.Equal(end) {
		return nil
	}
	endAngle := (end - center).Angle()
	sweep := endAngle - planar.NormalizeAngle(startAngle)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return NewArc(center, center.Distance(end), startAngle, sweep)
}

// ArcFromStartEndSweepAngle creates the arc from start to end sweeping by
// sweep. Equal points or a zero (or full-turn) sweep yield nil.
func ArcFromStartEndSweepAngle(start, end planar.Pair, sweep float64) *Arc {
	sweep = planar.NormalizeSweep(sweep)
	sin := math.Abs(math.Sin(sweep / 2))
	if start.Equal(end) || planar.Is0(sweep) || planar.Is0(sin) {
		return nil
	}
	se := end - start
	r := se.Magnitude() / 2 / sin
	centers, ok := XCircleCircle(start, r, end, r)
	if !ok {
		return nil
	}
	centerOnLeft := sweep > 0 && sweep <= math.Pi || sweep > -2*math.Pi && sweep <= -math.Pi
	for _, c := range centers {
		sc := c - start
		if centerOnLeft == (se.Cross(sc) >= 0) {
			return NewArc(c, r, (-sc).Angle(), sweep)
		}
	}
	return nil
}

// ArcFromStartEndChordHeight creates the counter-clockwise arc from start to
// end whose chord height is h. Heights above the radius give major arcs.
// Equal points or a non-positive height yield nil.
func ArcFromStartEndChordHeight(start, end planar.Pair, h float64) *Arc {
	if start.Equal(end) || h <= 0 {
		return nil
	}
	d := end - start
	l := d.Magnitude()
	r := h/2 + l*l/(8*h)
	pp := (h - r) / l
	center := start.Mid(end) + planar.P(d.Y()*pp, -d.X()*pp)
	startAngle := (start - center).Angle()
	sweep := (end - center).Angle() - startAngle
	if sweep <= 0 {
		sweep += 2 * math.Pi
	}
	return NewArc(center, r, startAngle, sweep)
}

// ArcFromStartEndRadius creates the counter-clockwise minor arc with radius
// r from start to end. Points farther apart than 2r yield nil.
func ArcFromStartEndRadius(start, end planar.Pair, r float64) *Arc {
	se := end - start
	if se == 0 || r <= 0 {
		return nil
	}
	centers, ok := XCircleCircle(start, r, end, r)
	if !ok || len(centers) == 0 {
		return nil
	}
	for _, c := range centers {
		cs := start - c
		if len(centers) == 1 || cs.Cross(se) > 0 {
			startAngle := cs.Angle()
			sweep := (end - c).Angle() - startAngle
			if sweep < 0 {
				sweep += 2 * math.Pi
			}
			return NewArc(c, r, startAngle, sweep)
		}
	}
	return nil
}

// ArcFrom2LinesRadius creates the fillet arc with radius r between the lines
// p1-corner and corner-p2. It starts where it touches the first line.
func ArcFrom2LinesRadius(p1, corner, p2 planar.Pair, r float64) *Arc {
	c := CircleFrom2LinesRadius(p1, corner, p2, r)
	if c == nil {
		return nil
	}
	l1 := NewLine(p1, corner)
	foot, _, ok := l1.ProjectOnLine(c.Center)
	if !ok {
		return nil
	}
	return NewArc(c.Center, r, (foot - c.Center).Angle(), l1.XAngle(NewLine(corner, p2)))
}

func (a *Arc) String() string {
	return fmt.Sprintf("arc(%v,r=%g,%.4f%+.4f)", a.Center, a.Radius, a.StartAngle, a.SweepAngle)
}

// Clone returns a copy of a.
func (a *Arc) Clone() *Arc {
	c := *a
	return &c
}

// Move translates a by (dx,dy).
func (a *Arc) Move(dx, dy float64) *Arc {
	a.Circle.Move(dx, dy)
	return a
}

// Complement turns a into the remaining part of its circle, keeping the
// start point and reversing the direction.
func (a *Arc) Complement() *Arc {
	if a.SweepAngle > 0 {
		a.SweepAngle -= 2 * math.Pi
	} else {
		a.SweepAngle += 2 * math.Pi
	}
	return a
}

// Swap reverses the direction of a.
func (a *Arc) Swap() *Arc {
	a.StartAngle = planar.NormalizeAngle(a.StartAngle + a.SweepAngle)
	a.SweepAngle = -a.SweepAngle
	return a
}

// Length returns the arc length.
func (a *Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

// AreaChord returns the area between the arc and its chord.
func (a *Arc) AreaChord() float64 {
	fan := a.AreaFan()
	triangle := 0.5 * a.Radius * a.Radius * math.Abs(math.Sin(a.SweepAngle))
	if math.Abs(a.SweepAngle) > math.Pi {
		return fan + triangle
	}
	return fan - triangle
}

// AreaFan returns the area of the circular sector.
func (a *Arc) AreaFan() float64 {
	return 0.5 * a.Radius * a.Radius * math.Abs(a.SweepAngle)
}

// RotateAround rotates a around p by angle (radians).
func (a *Arc) RotateAround(p planar.Pair, angle float64) *Arc {
	a.Center = planar.RotatePoint(p, a.Center, angle)
	a.StartAngle = planar.NormalizeAngle(a.StartAngle + angle)
	return a
}

// ChordHeight returns the distance between the chord and the arc's midpoint.
func (a *Arc) ChordHeight() float64 {
	return a.Radius * (1 - math.Cos(a.SweepAngle/2))
}

// ChordLength returns the distance between start and end point.
func (a *Arc) ChordLength() float64 {
	return 2 * a.Radius * math.Abs(math.Sin(a.SweepAngle/2))
}

// StartPoint returns the point the arc starts at.
func (a *Arc) StartPoint() planar.Pair {
	return a.Point(a.StartAngle)
}

// EndPoint returns the point the arc ends at.
func (a *Arc) EndPoint() planar.Pair {
	return a.Point(a.StartAngle + a.SweepAngle)
}

// MidPoint returns the point halfway along the arc.
func (a *Arc) MidPoint() planar.Pair {
	return a.Point(a.StartAngle + a.SweepAngle/2)
}

// TPoint returns the point at parameter t, with t=0 at the start and t=1 at
// the end.
func (a *Arc) TPoint(t float64) planar.Pair {
	return a.Point(a.StartAngle + t*a.SweepAngle)
}

// StartTangentAngle returns the direction of travel at the start point.
func (a *Arc) StartTangentAngle() float64 {
	return tangentAngle(a.StartAngle, a.SweepAngle)
}

// EndTangentAngle returns the direction of travel at the end point.
func (a *Arc) EndTangentAngle() float64 {
	return tangentAngle(a.StartAngle+a.SweepAngle, a.SweepAngle)
}

func tangentAngle(radial, sweep float64) float64 {
	if sweep > 0 {
		return planar.NormalizeAngle(radial + math.Pi/2)
	}
	return planar.NormalizeAngle(radial - math.Pi/2)
}

// PointSweepAngle returns the angle to sweep from the start of a, in the
// direction of a, to reach the ray from the center through pt.
func (a *Arc) PointSweepAngle(pt planar.Pair) float64 {
	result := (pt - a.Center).Angle() - a.StartAngle
	if a.SweepAngle > 0 {
		if result < 0 {
			result += 2 * math.Pi
		}
	} else if result > 0 {
		result -= 2 * math.Pi
	}
	return result
}

// Contains is a predicate: does the arc cover direction angle (radians)?
// Both ends are included.
func (a *Arc) Contains(angle float64) bool {
	return planar.AngleBetween(angle, a.StartAngle, a.SweepAngle)
}

// MirrorX mirrors a at the vertical line through x.
func (a *Arc) MirrorX(x float64) *Arc {
	a.Circle.MirrorX(x)
	if a.StartAngle >= 0 {
		a.StartAngle = math.Pi - a.StartAngle
	} else {
		a.StartAngle = -math.Pi - a.StartAngle
	}
	a.StartAngle = planar.NormalizeAngle(a.StartAngle)
	a.SweepAngle = -a.SweepAngle
	return a
}

// MirrorY mirrors a at the horizontal line through y.
func (a *Arc) MirrorY(y float64) *Arc {
	a.Circle.MirrorY(y)
	a.StartAngle = planar.NormalizeAngle(-a.StartAngle)
	a.SweepAngle = -a.SweepAngle
	return a
}

// Mirror mirrors a at the infinite line axis.
func (a *Arc) Mirror(axis *Line) *Arc {
	a.Circle.Mirror(axis)
	a.StartAngle = planar.NormalizeAngle(2*axis.Angle() - a.StartAngle)
	a.SweepAngle = -a.SweepAngle
	return a
}

// TrimStart moves the start of a forward to the first point where a meets
// the segment l. a is unchanged if they do not meet.
func (a *Arc) TrimStart(l *Line) *Arc {
	points, ok := XLineArc(l.P1, l.P2, false, a)
	if !ok || len(points) == 0 {
		return a
	}
	newt := a.firstSweep(points)
	a.StartAngle = planar.NormalizeAngle(a.StartAngle + newt)
	a.SweepAngle -= newt
	return a
}

// TrimEnd moves the end of a backward to the last point where a meets the
// segment l. a is unchanged if they do not meet.
func (a *Arc) TrimEnd(l *Line) *Arc {
	return a.Swap().TrimStart(l).Swap()
}

// ExtendStart moves the start of a backward along its circle to the nearest
// point where the circle meets the segment l. a is unchanged if the
// remainder of the circle does not meet l.
func (a *Arc) ExtendStart(l *Line) *Arc {
	comp := a.Clone().Complement()
	points, ok := XLineArc(l.P1, l.P2, false, comp)
	if !ok || len(points) == 0 {
		return a
	}
	newt := comp.firstSweep(points)
	a.StartAngle = planar.NormalizeAngle(a.StartAngle + newt)
	a.SweepAngle -= newt
	return a
}

// ExtendEnd moves the end of a forward along its circle to the nearest point
// where the circle meets the segment l. a is unchanged if the remainder of
// the circle does not meet l.
func (a *Arc) ExtendEnd(l *Line) *Arc {
	return a.Swap().ExtendStart(l).Swap()
}

// firstSweep returns the sweep angle of the point which comes first in the
// direction of a.
func (a *Arc) firstSweep(points []planar.Pair) float64 {
	newt := a.PointSweepAngle(points[0])
	for _, pt := range points[1:] {
		t := a.PointSweepAngle(pt)
		if a.SweepAngle > 0 {
			newt = math.Min(newt, t)
		} else {
			newt = math.Max(newt, t)
		}
	}
	return newt
}
