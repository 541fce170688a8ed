package geom

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/planar"
)

// Polyline is an open chain of points, used to approximate curves which are
// neither straight nor circular.
type Polyline struct {
	Points []planar.Pair
}

// Length returns the summed length of the polyline's segments.
func (pl Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(pl.Points); i++ {
		l += pl.Points[i-1].Distance(pl.Points[i])
	}
	return l
}

// Bounds returns the bounding box of the points.
func (pl Polyline) Bounds() r2.Rect {
	b := r2.EmptyRect()
	for _, pt := range pl.Points {
		b = b.AddPoint(R2(pt))
	}
	return b
}

// R2 converts a pair to a point of package r2.
func R2(p planar.Pair) r2.Point {
	return r2.Point{X: p.X(), Y: p.Y()}
}

// Bounds returns the bounding box of the segment P1-P2.
func (l *Line) Bounds() r2.Rect {
	return r2.RectFromPoints(R2(l.P1), R2(l.P2))
}

// Bounds returns the bounding box of c.
func (c *Circle) Bounds() r2.Rect {
	r := planar.P(c.Radius, c.Radius)
	return r2.RectFromPoints(R2(c.Center-r), R2(c.Center+r))
}

// Bounds returns the bounding box of a: its end points together with those
// quadrant points of the circle which the arc passes.
func (a *Arc) Bounds() r2.Rect {
	b := r2.RectFromPoints(R2(a.StartPoint()), R2(a.EndPoint()))
	for i, angle := range [4]float64{0, math.Pi / 2, math.Pi, -math.Pi / 2} {
		if a.Contains(angle) {
			q, _ := a.QuadrantPoint(i)
			b = b.AddPoint(R2(q))
		}
	}
	return b
}
