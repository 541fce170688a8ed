package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/planar"
)

// Line is a straight line through two points. Whether it is to be taken as
// an infinite line or as the segment P1-P2 is decided by the operation
// using it, not by the line itself.
type Line struct {
	P1 planar.Pair
	P2 planar.Pair
}

// Side classifies the position of a point relative to a directed line.
type Side int

// Results of Line.WhichSide.
const (
	SideDegenerate Side = -2 // zero-length line or point at the line's start
	SideRight      Side = -1
	SideOn         Side = 0
	SideLeft       Side = 1
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideOn:
		return "on"
	}
	return "degenerate"
}

// NewLine creates a line from p1 to p2.
func NewLine(p1, p2 planar.Pair) *Line {
	return &Line{P1: p1, P2: p2}
}

// LineFromP1Diff creates a line from p1 to p1+(dx,dy).
func LineFromP1Diff(p1 planar.Pair, dx, dy float64) *Line {
	return NewLine(p1, p1+planar.P(dx, dy))
}

// LineFromP2Diff creates a line from p2+(dx,dy) to p2.
func LineFromP2Diff(p2 planar.Pair, dx, dy float64) *Line {
	return NewLine(p2+planar.P(dx, dy), p2)
}

// LineFromP1AngleLength creates a line starting at p1 in direction angle
// (radians) with the given length.
func LineFromP1AngleLength(p1 planar.Pair, angle, length float64) *Line {
	sin, cos := math.Sincos(angle)
	return NewLine(p1, p1+planar.P(length*cos, length*sin))
}

// LineFromP2AngleLength creates a line ending at p2, coming from direction
// angle (radians), with the given length.
func LineFromP2AngleLength(p2 planar.Pair, angle, length float64) *Line {
	sin, cos := math.Sincos(angle)
	return NewLine(p2-planar.P(length*cos, length*sin), p2)
}

func (l *Line) String() string {
	return fmt.Sprintf("%v--%v", l.P1, l.P2)
}

// Clone returns a copy of l.
func (l *Line) Clone() *Line {
	return NewLine(l.P1, l.P2)
}

// Equal compares two lines, including their direction.
func (l *Line) Equal(o *Line) bool {
	return l.P1.Equal(o.P1) && l.P2.Equal(o.P2)
}

// IsZero is true if both points are at the origin.
func (l *Line) IsZero() bool {
	return l.P1.IsOrigin() && l.P2.IsOrigin()
}

// X returns the x-coordinate of the line at height y.
// Horizontal lines have no unique answer.
func (l *Line) X(y float64) (float64, bool) {
	dety := l.P2.Y() - l.P1.Y()
	if planar.Is0(dety) {
		return 0, false
	}
	dx := (y - l.P1.Y()) / dety * (l.P2.X() - l.P1.X())
	return l.P1.X() + dx, true
}

// Y returns the y-coordinate of the line at x.
// Vertical lines have no unique answer.
func (l *Line) Y(x float64) (float64, bool) {
	detx := l.P2.X() - l.P1.X()
	if planar.Is0(detx) {
		return 0, false
	}
	dy := (x - l.P1.X()) / detx * (l.P2.Y() - l.P1.Y())
	return l.P1.Y() + dy, true
}

// Dx is the x-extent of the line.
func (l *Line) Dx() float64 {
	return l.P2.X() - l.P1.X()
}

// Dy is the y-extent of the line.
func (l *Line) Dy() float64 {
	return l.P2.Y() - l.P1.Y()
}

// Vector returns P2 - P1.
func (l *Line) Vector() planar.Pair {
	return l.P2 - l.P1
}

// Length returns the distance between P1 and P2.
func (l *Line) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Angle returns the direction of the line in (-π, π].
func (l *Line) Angle() float64 {
	return l.Vector().Angle()
}

// XAngle returns the angle to turn from the direction of l to the direction
// of o, in (-π, π].
func (l *Line) XAngle(o *Line) float64 {
	result := o.Angle() - l.Angle()
	if result > math.Pi {
		result -= 2 * math.Pi
	} else if result <= -math.Pi {
		result += 2 * math.Pi
	}
	return result
}

// NormalAngle returns the direction of the left normal of l, in (-π, π].
func (l *Line) NormalAngle() float64 {
	return planar.NormalizeAngle(l.Angle() + math.Pi/2)
}

// Move translates l by (dx,dy).
func (l *Line) Move(dx, dy float64) *Line {
	d := planar.P(dx, dy)
	l.P1 += d
	l.P2 += d
	return l
}

// TPoint returns the point at parameter t, with t=0 at P1 and t=1 at P2.
func (l *Line) TPoint(t float64) planar.Pair {
	return planar.P(l.P1.X()+t*l.Dx(), l.P1.Y()+t*l.Dy())
}

// Swap reverses the direction of l.
func (l *Line) Swap() *Line {
	l.P1, l.P2 = l.P2, l.P1
	return l
}

// Normalize orders the end points such that P1.X <= P2.X, and
// P1.Y <= P2.Y for vertical lines.
func (l *Line) Normalize() *Line {
	if l.P1.X() > l.P2.X() || (l.P1.X() == l.P2.X() && l.P1.Y() > l.P2.Y()) {
		l.Swap()
	}
	return l
}

// TValue returns the parameter of the projection of pt onto l.
func (l *Line) TValue(pt planar.Pair) (float64, bool) {
	if l.P1.Equal(l.P2) {
		return 0, false
	}
	// t = (v1 dot v2) / (v2 dot v2)
	d := l.Vector()
	return (pt - l.P1).Dot(d) / d.Magnitude2(), true
}

// ProjectOnLine returns the foot of the perpendicular from pt onto the
// infinite line l, together with its parameter t along P1→P2.
func (l *Line) ProjectOnLine(pt planar.Pair) (foot planar.Pair, t float64, ok bool) {
	if t, ok = l.TValue(pt); !ok {
		return planar.Origin, 0, false
	}
	return l.TPoint(t), t, true
}

// DistToLine returns the perpendicular distance of pt from the infinite line l.
func (l *Line) DistToLine(pt planar.Pair) (float64, bool) {
	foot, _, ok := l.ProjectOnLine(pt)
	if !ok {
		return 0, false
	}
	return pt.Distance(foot), true
}

// DistToSegment returns the distance of pt from the segment P1-P2.
// Beyond the segment the distance to the nearer end point is measured.
func (l *Line) DistToSegment(pt planar.Pair) float64 {
	foot, t, ok := l.ProjectOnLine(pt)
	if !ok {
		return pt.Distance(l.P1.Mid(l.P2))
	}
	if t < 0 {
		return pt.Distance(l.P1)
	} else if t > 1 {
		return pt.Distance(l.P2)
	}
	return pt.Distance(foot)
}

// IsPointOnSegment is a predicate: is pt within distance eps of segment P1-P2?
func (l *Line) IsPointOnSegment(pt planar.Pair, eps float64) bool {
	if l.P1.Equal(l.P2) {
		return false
	}
	return l.DistToSegment(pt) <= eps
}

// IsPointOnLine is a predicate: is pt within distance eps of the infinite line?
func (l *Line) IsPointOnLine(pt planar.Pair, eps float64) bool {
	d, ok := l.DistToLine(pt)
	return ok && d <= eps
}

// WhichSide tells on which side of the directed line P1→P2 point pt lies.
// Points closer than eps to the line are reported as SideOn.
func (l *Line) WhichSide(pt planar.Pair, eps float64) Side {
	d := l.Vector()
	if d == 0 || pt.Equal(l.P1) {
		return SideDegenerate
	}
	dist, ok := l.DistToLine(pt)
	if !ok {
		return SideDegenerate
	}
	if dist <= eps {
		return SideOn
	}
	value := d.Cross(pt - l.P1)
	if value > 0 {
		return SideLeft
	} else if value < 0 {
		return SideRight
	}
	return SideOn
}

// MirrorX mirrors l at the vertical line through x.
func (l *Line) MirrorX(x float64) *Line {
	l.P1 = planar.P(2*x-l.P1.X(), l.P1.Y())
	l.P2 = planar.P(2*x-l.P2.X(), l.P2.Y())
	return l
}

// MirrorY mirrors l at the horizontal line through y.
func (l *Line) MirrorY(y float64) *Line {
	l.P1 = planar.P(l.P1.X(), 2*y-l.P1.Y())
	l.P2 = planar.P(l.P2.X(), 2*y-l.P2.Y())
	return l
}

// Mirror mirrors l at the infinite line axis.
func (l *Line) Mirror(axis *Line) *Line {
	l.P1 = MirrorPoint(l.P1, axis)
	l.P2 = MirrorPoint(l.P2, axis)
	return l
}

// RotateAround rotates l around center c by angle (radians).
func (l *Line) RotateAround(c planar.Pair, angle float64) *Line {
	l.P1 = planar.RotatePoint(c, l.P1, angle)
	l.P2 = planar.RotatePoint(c, l.P2, angle)
	return l
}

// Offset moves l sideways by dist. Positive distances move it to the left
// of P1→P2. Zero-length lines have no sideways direction and are not changed;
// Offset reports false then.
func (l *Line) Offset(dist float64) bool {
	dx, dy := l.Dx(), l.Dy()
	if dx == 0.0 && dy == 0.0 {
		return false
	}
	pp := dist / math.Hypot(dx, dy)
	det := planar.P(-dy*pp, dx*pp)
	l.P1 += det
	l.P2 += det
	return true
}

// ExTrimStartX moves P1 along the line to the point with x-coordinate x.
func (l *Line) ExTrimStartX(x float64) *Line {
	if y, ok := l.Y(x); ok {
		l.P1 = planar.P(x, y)
	}
	return l
}

// ExTrimEndX moves P2 along the line to the point with x-coordinate x.
func (l *Line) ExTrimEndX(x float64) *Line {
	if y, ok := l.Y(x); ok {
		l.P2 = planar.P(x, y)
	}
	return l
}

// ExTrimStartY moves P1 along the line to the point with y-coordinate y.
func (l *Line) ExTrimStartY(y float64) *Line {
	if x, ok := l.X(y); ok {
		l.P1 = planar.P(x, y)
	}
	return l
}

// ExTrimEndY moves P2 along the line to the point with y-coordinate y.
func (l *Line) ExTrimEndY(y float64) *Line {
	if x, ok := l.X(y); ok {
		l.P2 = planar.P(x, y)
	}
	return l
}

// ExTrimStart extends or trims l such that P1 is its intersection with the
// infinite line o. Parallel lines leave l unchanged.
func (l *Line) ExTrimStart(o *Line) *Line {
	if x, ok := XLineLine(l.P1, l.P2, true, o.P1, o.P2, true); ok {
		l.P1 = x
	}
	return l
}

// ExTrimEnd extends or trims l such that P2 is its intersection with the
// infinite line o. Parallel lines leave l unchanged.
func (l *Line) ExTrimEnd(o *Line) *Line {
	if x, ok := XLineLine(l.P1, l.P2, true, o.P1, o.P2, true); ok {
		l.P2 = x
	}
	return l
}

// LengthenStart moves P1 outwards by length (inwards for negative length).
func (l *Line) LengthenStart(length float64) *Line {
	d := l.P1 - l.P2
	if d == 0 {
		return l
	}
	co := length / d.Magnitude()
	l.P1 += planar.P(d.X()*co, d.Y()*co)
	return l
}

// LengthenEnd moves P2 outwards by length (inwards for negative length).
func (l *Line) LengthenEnd(length float64) *Line {
	return l.Swap().LengthenStart(length).Swap()
}

// MiddleFitTo changes the length of l, keeping its midpoint fixed.
func (l *Line) MiddleFitTo(length float64) *Line {
	d := l.Vector()
	if d == 0 {
		return l
	}
	co := length / 2.0 / d.Magnitude()
	half := planar.P(d.X()*co, d.Y()*co)
	mid := l.P1.Mid(l.P2)
	l.P1, l.P2 = mid-half, mid+half
	return l
}

// StartFitTo changes the length of l, keeping P1 fixed.
func (l *Line) StartFitTo(length float64) *Line {
	d := l.Vector()
	if d == 0 {
		return l
	}
	co := length / d.Magnitude()
	l.P2 = l.P1 + planar.P(d.X()*co, d.Y()*co)
	return l
}

// EndFitTo changes the length of l, keeping P2 fixed.
func (l *Line) EndFitTo(length float64) *Line {
	return l.Swap().StartFitTo(length).Swap()
}

// EqualDistPoints divides l into n parts of equal length and returns the
// n-1 inner division points.
func (l *Line) EqualDistPoints(n int) []planar.Pair {
	if n < 2 {
		return nil
	}
	step := planar.P(l.Dx()/float64(n), l.Dy()/float64(n))
	points := make([]planar.Pair, 0, n-1)
	pt := l.P1
	for i := 0; i < n-1; i++ {
		pt += step
		points = append(points, pt)
	}
	return points
}

// MirrorPoint reflects pt at the infinite line axis. A degenerate axis
// (P1 = P2) reflects at its midpoint instead.
func MirrorPoint(pt planar.Pair, axis *Line) planar.Pair {
	foot, _, ok := axis.ProjectOnLine(pt)
	if !ok {
		tracer().Debugf("mirror at degenerate axis %v, using its midpoint", axis)
		foot = axis.P1.Mid(axis.P2)
	}
	return planar.P(2*foot.X()-pt.X(), 2*foot.Y()-pt.Y())
}
