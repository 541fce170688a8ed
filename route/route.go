package route

import (
	"math"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/geom"
)

// Route is an alignment: a chain of segments between critical points,
// starting with a given tangent angle.
//
// Derived values (mileages, lengths, tangent angles, invalid flags) are
// recomputed completely whenever the route is offset or transformed.
type Route struct {
	startAngle float64
	points     []CriticalPoint
	offset     float64
	startMile  float64
	endMile    float64
	miles      []float64 // per segment, without offset
	lengths    []float64 // per segment, with offset
	angles     []float64 // entry tangent angle at each critical point
	invalid    []bool
	arcs       []*geom.Arc // resolved arcs, nil for other segments
	eases      []*ease     // placed clothoids, nil for other segments
}

// New creates a route starting with tangent angle startAngle (radians).
// A single critical point does not span a segment and results in an empty
// route.
func New(startAngle float64, points []CriticalPoint) *Route {
	r := &Route{startAngle: startAngle}
	if len(points) > 1 {
		r.points = make([]CriticalPoint, len(points))
		copy(r.points, points)
	}
	r.initLens()
	return r
}

// initLens walks the chain of segments, propagating the tangent angle.
func (r *Route) initLens() {
	n := len(r.points)
	r.miles = make([]float64, n)
	r.lengths = make([]float64, n)
	r.angles = make([]float64, n)
	r.invalid = make([]bool, n)
	r.arcs = make([]*geom.Arc, n)
	r.eases = make([]*ease, n)
	angle := r.startAngle
	total := 0.0
	for i := 0; i < n-1; i++ {
		r.angles[i] = angle
		r.miles[i], r.lengths[i], angle = r.calcSegment(i, angle)
		total += r.miles[i]
	}
	if n > 0 {
		r.angles[n-1] = angle
	}
	r.endMile = r.startMile + total
	tracer().Infof("route with %d segments, mile %.4f, offset %g", r.SegmentCount(), total, r.offset)
}

// calcSegment returns mileage, offset length and exit angle of segment i.
func (r *Route) calcSegment(i int, entry float64) (mile, length, exit float64) {
	p1, p2 := r.points[i], r.points[i+1]
	switch p1.Type {
	case ArcSegment:
		if arc := resolveArc(entry, p1, p2); arc != nil {
			r.arcs[i] = arc
			sweep := math.Abs(arc.SweepAngle)
			mile = arc.Radius * sweep
			if arc.SweepAngle > 0 { // left turn
				length = (arc.Radius - r.offset) * sweep
			} else {
				length = (arc.Radius + r.offset) * sweep
			}
			return mile, length, arc.EndTangentAngle()
		}
		tracer().Debugf("arc segment %d does not fit tangent angle %.4f", i, entry)
		r.invalid[i] = true
		return r.straight(i)
	case EaseSegment:
		if e := newEase(entry, p1, p2); e != nil {
			r.eases[i] = e
			return e.mile(), e.length(r.offset), e.exit
		}
		tracer().Debugf("ease segment %d does not fit tangent angle %.4f", i, entry)
		r.invalid[i] = true
		return r.straight(i)
	}
	mile, length, exit = r.straight(i)
	if angleDiff(exit, entry) > AngleTolerance {
		tracer().Debugf("line segment %d turns off tangent angle %.4f", i, entry)
		r.invalid[i] = true
	}
	return mile, length, exit
}

func (r *Route) straight(i int) (mile, length, exit float64) {
	d := r.points[i+1].Point - r.points[i].Point
	l := d.Magnitude()
	return l, l, d.Angle()
}

// resolveArc finds the arc from p1 to p2 which leaves p1 in direction entry.
func resolveArc(entry float64, p1, p2 CriticalPoint) *geom.Arc {
	arc := geom.ArcFromStartEndRadius(p1.Point, p2.Point, p1.Radius)
	if arc == nil {
		return nil
	}
	if angleDiff(arc.StartTangentAngle(), entry) > AngleTolerance {
		arc.Mirror(geom.NewLine(p1.Point, p2.Point))
		if angleDiff(arc.StartTangentAngle(), entry) > AngleTolerance {
			return nil
		}
	}
	return arc
}

func angleDiff(a, b float64) float64 {
	return math.Abs(planar.NormalizeAngle(a - b))
}

// Offset shifts the route laterally by d, positive to the left of travel.
// Offsets accumulate.
func (r *Route) Offset(d float64) *Route {
	r.offset += d
	r.initLens()
	return r
}

// LateralOffset returns the current offset of the route.
func (r *Route) LateralOffset() float64 {
	return r.offset
}

// SetStartMile sets the mileage at the first critical point.
func (r *Route) SetStartMile(m float64) *Route {
	r.startMile = m
	r.initLens()
	return r
}

// StartAngle returns the tangent angle at the first critical point.
func (r *Route) StartAngle() float64 {
	return r.startAngle
}

// Length returns the length of the (offset) route.
func (r *Route) Length() float64 {
	sum := 0.0
	for _, l := range r.lengths {
		sum += l
	}
	return sum
}

// Mile returns the mileage of the route, independent of its offset.
func (r *Route) Mile() float64 {
	return r.endMile - r.startMile
}

// StartMile returns the mileage at the first critical point.
func (r *Route) StartMile() float64 {
	return r.startMile
}

// EndMile returns the mileage at the last critical point.
func (r *Route) EndMile() float64 {
	return r.endMile
}

// SegmentCount returns the number of segments.
func (r *Route) SegmentCount() int {
	if len(r.points) < 2 {
		return 0
	}
	return len(r.points) - 1
}

func (r *Route) isSegment(i int) bool {
	return i >= 0 && i < r.SegmentCount()
}

// SegmentMile returns the mileage of segment i.
func (r *Route) SegmentMile(i int) float64 {
	if !r.isSegment(i) {
		return 0
	}
	return r.miles[i]
}

// SegmentLength returns the length of segment i, including offset.
func (r *Route) SegmentLength(i int) float64 {
	if !r.isSegment(i) {
		return 0
	}
	return r.lengths[i]
}

// EntryAngle returns the tangent angle at critical point i. For the last
// critical point this is the exit angle of the route.
func (r *Route) EntryAngle(i int) (float64, bool) {
	if i < 0 || i >= len(r.angles) {
		return 0, false
	}
	return r.angles[i], true
}

// IsInvalid is a predicate: does segment i not fit its incoming tangent?
// Invalid segments are realized as straight lines.
func (r *Route) IsInvalid(i int) bool {
	return r.isSegment(i) && r.invalid[i]
}

// CriticalPoints returns a copy of the route's critical points.
func (r *Route) CriticalPoints() []CriticalPoint {
	cps := make([]CriticalPoint, len(r.points))
	copy(cps, r.points)
	return cps
}

// Move translates the route by (dx,dy).
func (r *Route) Move(dx, dy float64) *Route {
	d := planar.P(dx, dy)
	for i := range r.points {
		r.points[i].Point += d
	}
	r.initLens()
	return r
}

// RotateAround rotates the route around c by angle (radians).
func (r *Route) RotateAround(c planar.Pair, angle float64) *Route {
	for i := range r.points {
		r.points[i].Point = planar.RotatePoint(c, r.points[i].Point, angle)
	}
	r.startAngle = planar.NormalizeAngle(r.startAngle + angle)
	r.initLens()
	return r
}

// MirrorX mirrors the route at the vertical line through x.
func (r *Route) MirrorX(x float64) *Route {
	for i := range r.points {
		p := r.points[i].Point
		r.points[i].Point = planar.P(2*x-p.X(), p.Y())
	}
	r.startAngle = planar.NormalizeAngle(math.Pi - r.startAngle)
	r.initLens()
	return r
}

// MirrorY mirrors the route at the horizontal line through y.
func (r *Route) MirrorY(y float64) *Route {
	for i := range r.points {
		p := r.points[i].Point
		r.points[i].Point = planar.P(p.X(), 2*y-p.Y())
	}
	r.startAngle = planar.NormalizeAngle(-r.startAngle)
	r.initLens()
	return r
}

// Mirror mirrors the route at the infinite line axis.
func (r *Route) Mirror(axis *geom.Line) *Route {
	for i := range r.points {
		r.points[i].Point = geom.MirrorPoint(r.points[i].Point, axis)
	}
	r.startAngle = planar.NormalizeAngle(2*axis.Angle() - r.startAngle)
	r.initLens()
	return r
}
