package render

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/geom"
	"github.com/npillmayer/planar/route"
	"github.com/tdewolff/canvas"
)

// Kind is the type of a shape.
type Kind int

// Shape kinds.
const (
	LineShape Kind = iota
	CircleShape
	ArcShape
	PolylineShape
	GroupShape
)

func (k Kind) String() string {
	switch k {
	case LineShape:
		return "line"
	case CircleShape:
		return "circle"
	case ArcShape:
		return "arc"
	case PolylineShape:
		return "polyline"
	case GroupShape:
		return "group"
	}
	return "<unknown>"
}

// Options are handed through to every shape created by a conversion.
type Options struct {
	Name        string
	StrokeWidth float64
	Selectable  bool
}

// Shape is a renderable description of a geometric entity.
//
// Center, TopLeft and Radius are set for circles and arcs. TopLeft is the
// upper left corner of the circle's bounding square. Angles are in degrees,
// counter-clockwise from the positive x-axis, with the start angle always
// the smaller one. Groups are positioned at the lower left corner of their
// bounds.
type Shape struct {
	Kind       Kind
	Options    Options
	Center     planar.Pair
	TopLeft    planar.Pair
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Points     []planar.Pair
	Children   []*Shape
	Position   planar.Pair
	Bounds     r2.Rect
	Path       *canvas.Path
}

func (s *Shape) String() string {
	return fmt.Sprintf("%s[%d points, %d children]", s.Kind, len(s.Points), len(s.Children))
}

// ToRenderable converts v to a shape. v may be a line, circle, arc,
// polyline or route (pointers or, for polylines, values).
func ToRenderable(v any, opts Options) (*Shape, error) {
	switch x := v.(type) {
	case *geom.Line:
		if x != nil {
			return FromLine(x, opts), nil
		}
	case *geom.Circle:
		if x != nil {
			return FromCircle(x, opts), nil
		}
	case *geom.Arc:
		if x != nil {
			return FromArc(x, opts), nil
		}
	case geom.Polyline:
		return FromPolyline(x, opts), nil
	case *geom.Polyline:
		if x != nil {
			return FromPolyline(*x, opts), nil
		}
	case *route.Route:
		if x != nil {
			return FromRoute(x, opts), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
}

// FromLine converts a line segment.
func FromLine(l *geom.Line, opts Options) *Shape {
	s := &Shape{
		Kind:    LineShape,
		Options: opts,
		Points:  []planar.Pair{l.P1, l.P2},
		Bounds:  l.Bounds(),
	}
	s.finalize()
	return s
}

// FromCircle converts a full circle.
func FromCircle(c *geom.Circle, opts Options) *Shape {
	s := &Shape{
		Kind:     CircleShape,
		Options:  opts,
		Center:   c.Center,
		TopLeft:  c.Center + planar.P(-c.Radius, c.Radius),
		Radius:   c.Radius,
		EndAngle: 360,
		Bounds:   c.Bounds(),
	}
	s.finalize()
	return s
}

// FromArc converts a circular arc. For arcs running clockwise, start and end
// angle are swapped, so the shape always runs counter-clockwise.
func FromArc(a *geom.Arc, opts Options) *Shape {
	start := planar.Deg(a.StartAngle)
	end := planar.Deg(a.StartAngle + a.SweepAngle)
	if a.SweepAngle < 0 {
		start, end = end, start
	}
	s := &Shape{
		Kind:       ArcShape,
		Options:    opts,
		Center:     a.Center,
		TopLeft:    a.Center + planar.P(-a.Radius, a.Radius),
		Radius:     a.Radius,
		StartAngle: start,
		EndAngle:   end,
		Points:     []planar.Pair{a.StartPoint(), a.EndPoint()},
		Bounds:     a.Bounds(),
	}
	s.finalize()
	return s
}

// FromPolyline converts a polyline.
func FromPolyline(pl geom.Polyline, opts Options) *Shape {
	s := &Shape{
		Kind:    PolylineShape,
		Options: opts,
		Points:  append([]planar.Pair(nil), pl.Points...),
		Bounds:  pl.Bounds(),
	}
	s.finalize()
	return s
}

// FromRoute converts the realized segments of a route into a single group:
// lines first, then arcs, then transition curves.
func FromRoute(r *route.Route, opts Options) *Shape {
	segs := r.Segments()
	g := &Shape{
		Kind:     GroupShape,
		Options:  opts,
		Children: make([]*Shape, 0, segs.Count()),
		Bounds:   segs.Bounds(),
	}
	for _, l := range segs.Lines {
		g.Children = append(g.Children, FromLine(l, opts))
	}
	for _, a := range segs.Arcs {
		g.Children = append(g.Children, FromArc(a, opts))
	}
	for _, pl := range segs.Polylines {
		g.Children = append(g.Children, FromPolyline(pl, opts))
	}
	if !g.Bounds.IsEmpty() {
		lo := g.Bounds.Lo()
		g.Position = planar.P(lo.X, lo.Y)
	}
	g.finalize()
	tracer().Debugf("route rendered as %v", g)
	return g
}

// finalize assembles the canvas path of s. It is called once, after all
// fields (and children) have been set.
func (s *Shape) finalize() {
	s.Path = &canvas.Path{}
	s.draw(s.Path)
}

func (s *Shape) draw(p *canvas.Path) {
	switch s.Kind {
	case LineShape, PolylineShape:
		for i, pt := range s.Points {
			if i == 0 {
				p.MoveTo(pt.X(), pt.Y())
			} else {
				p.LineTo(pt.X(), pt.Y())
			}
		}
	case CircleShape:
		r := s.Radius
		p.MoveTo(s.Center.X()+r, s.Center.Y())
		p.ArcTo(r, r, 0, false, true, s.Center.X()-r, s.Center.Y())
		p.ArcTo(r, r, 0, false, true, s.Center.X()+r, s.Center.Y())
		p.Close()
	case ArcShape:
		drawArc(p, s.Center, s.Radius, planar.Rad(s.StartAngle), planar.Rad(s.EndAngle))
	case GroupShape:
		for _, c := range s.Children {
			c.draw(p)
		}
	}
}

// drawArc draws a counter-clockwise arc from angle start to angle end.
// Arcs of (nearly) a full turn are split, as a single arc command cannot
// return to its own start point.
func drawArc(p *canvas.Path, center planar.Pair, r, start, end float64) {
	sweep := end - start
	n := 1
	if sweep > math.Pi {
		n = 2
	}
	at := func(angle float64) (float64, float64) {
		pt := center + planar.P(math.Cos(angle), math.Sin(angle)).Scaled(r)
		return pt.X(), pt.Y()
	}
	p.MoveTo(at(start))
	for k := 1; k <= n; k++ {
		x, y := at(start + sweep*float64(k)/float64(n))
		p.ArcTo(r, r, 0, false, true, x, y)
	}
}
