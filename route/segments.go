package route

import (
	"github.com/golang/geo/r2"
	"github.com/npillmayer/planar/geom"
)

// Segments is the realized geometry of a route, ready for rendering.
type Segments struct {
	Lines     []*geom.Line
	Arcs      []*geom.Arc
	Polylines []geom.Polyline
}

// Bounds returns the bounding box of all realized geometry. An empty set of
// segments has an empty rectangle.
func (s Segments) Bounds() r2.Rect {
	b := r2.EmptyRect()
	for _, l := range s.Lines {
		b = b.Union(l.Bounds())
	}
	for _, a := range s.Arcs {
		b = b.Union(a.Bounds())
	}
	for _, pl := range s.Polylines {
		b = b.Union(pl.Bounds())
	}
	return b
}

// Count returns the number of geometric items.
func (s Segments) Count() int {
	return len(s.Lines) + len(s.Arcs) + len(s.Polylines)
}

// Segments realizes the geometry of the route, including its offset.
// Invalid segments show up as lines.
func (r *Route) Segments() Segments {
	var segs Segments
	for i := 0; i < r.SegmentCount(); i++ {
		p1, p2 := r.points[i], r.points[i+1]
		switch {
		case r.arcs[i] != nil:
			arc := r.arcs[i].Clone()
			if arc.SweepAngle > 0 { // center to the left
				arc.Radius -= r.offset
			} else {
				arc.Radius += r.offset
			}
			if arc.Radius <= 0 {
				tracer().Errorf("offset %g collapses arc of segment %d", r.offset, i)
				continue
			}
			segs.Arcs = append(segs.Arcs, arc)
		case r.eases[i] != nil:
			segs.Polylines = append(segs.Polylines, r.eases[i].polyline(r.offset, p1.Point, p2.Point))
		default:
			l := geom.NewLine(p1.Point, p2.Point)
			if !l.Offset(r.offset) {
				tracer().Debugf("segment %d has zero length", i)
			}
			segs.Lines = append(segs.Lines, l)
		}
	}
	return segs
}
