package route

import (
	"fmt"

	"github.com/npillmayer/planar"
)

// SegmentType is the kind of geometry starting at a critical point.
type SegmentType int

// Segment types.
const (
	LineSegment SegmentType = iota
	ArcSegment
	EaseSegment
)

func (t SegmentType) String() string {
	switch t {
	case ArcSegment:
		return "arc"
	case EaseSegment:
		return "ease"
	}
	return "line"
}

// Infinite is the radius of a straight end of a transition curve.
const Infinite = -1.0

// CriticalPoint marks the start of a segment of a route.
//
// For arcs, Radius is the arc's radius. For eases, Radius is the curvature
// radius at this point (Infinite for the inflection point) and A is the
// clothoid parameter. Lines carry Radius = Infinite.
type CriticalPoint struct {
	Type   SegmentType
	Point  planar.Pair
	Radius float64
	A      float64
}

// LinePoint creates a critical point starting a straight line.
func LinePoint(pt planar.Pair) CriticalPoint {
	return CriticalPoint{Type: LineSegment, Point: pt, Radius: Infinite}
}

// ArcPoint creates a critical point starting a circular arc with radius r.
func ArcPoint(pt planar.Pair, r float64) (CriticalPoint, error) {
	if r <= 0 {
		return CriticalPoint{}, fmt.Errorf("%w: arc at %v has radius %g", ErrInvalidRadius, pt, r)
	}
	return CriticalPoint{Type: ArcSegment, Point: pt, Radius: r}, nil
}

// EasePoint creates a critical point starting a transition curve with
// clothoid parameter a. r is the curvature radius at pt, which may be
// Infinite.
func EasePoint(pt planar.Pair, r, a float64) (CriticalPoint, error) {
	if r <= 0 && r != Infinite {
		return CriticalPoint{}, fmt.Errorf("%w: ease at %v has radius %g", ErrInvalidRadius, pt, r)
	}
	if a <= 0 {
		return CriticalPoint{}, fmt.Errorf("%w: ease at %v has parameter %g", ErrInvalidParameter, pt, a)
	}
	return CriticalPoint{Type: EaseSegment, Point: pt, Radius: r, A: a}, nil
}

func (cp CriticalPoint) String() string {
	switch cp.Type {
	case ArcSegment:
		return fmt.Sprintf("arc%v[r=%g]", cp.Point, cp.Radius)
	case EaseSegment:
		return fmt.Sprintf("ease%v[r=%g,A=%g]", cp.Point, cp.Radius, cp.A)
	}
	return fmt.Sprintf("line%v", cp.Point)
}
