package route

import (
	"fmt"

	"github.com/npillmayer/planar"
)

// Builder assembles a route point by point. The first error encountered is
// kept and reported by End; later calls are ignored then.
//
//	r, err := route.Start(math.Pi/2).Line(p0).Arc(p1, 500).Line(p2).End()
type Builder struct {
	startAngle float64
	points     []CriticalPoint
	startMile  float64
	offset     float64
	err        error
}

// Start begins a route with tangent angle angle (radians) at its first
// critical point. Part of builder functionality.
func Start(angle float64) *Builder {
	return &Builder{startAngle: angle}
}

// Line adds a critical point starting a straight line.
// Part of builder functionality.
func (b *Builder) Line(pt planar.Pair) *Builder {
	if b.err == nil {
		b.points = append(b.points, LinePoint(pt))
	}
	return b
}

// Arc adds a critical point starting a circular arc with radius r.
// Part of builder functionality.
func (b *Builder) Arc(pt planar.Pair, r float64) *Builder {
	if b.err != nil {
		return b
	}
	cp, err := ArcPoint(pt, r)
	return b.add(cp, err)
}

// Ease adds a critical point starting a transition curve with clothoid
// parameter a; r is the radius at pt and may be Infinite.
// Part of builder functionality.
func (b *Builder) Ease(pt planar.Pair, r, a float64) *Builder {
	if b.err != nil {
		return b
	}
	cp, err := EasePoint(pt, r, a)
	return b.add(cp, err)
}

func (b *Builder) add(cp CriticalPoint, err error) *Builder {
	if err != nil {
		b.err = fmt.Errorf("critical point #%d: %w", len(b.points), err)
		return b
	}
	b.points = append(b.points, cp)
	return b
}

// StartMile sets the mileage at the first critical point.
// Part of builder functionality.
func (b *Builder) StartMile(m float64) *Builder {
	b.startMile = m
	return b
}

// Offset sets the lateral offset of the route, positive to the left.
// Part of builder functionality.
func (b *Builder) Offset(d float64) *Builder {
	b.offset = d
	return b
}

// End finishes the route. It fails if a critical point was invalid or if
// fewer than two critical points have been added.
func (b *Builder) End() (*Route, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2, have %d", ErrTooFewPoints, len(b.points))
	}
	r := &Route{
		startAngle: b.startAngle,
		points:     append([]CriticalPoint(nil), b.points...),
		startMile:  b.startMile,
		offset:     b.offset,
	}
	r.initLens()
	return r, nil
}
