package render

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/geom"
	"github.com/npillmayer/planar/route"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/tdewolff/test"
)

func TestLineShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := FromLine(geom.NewLine(planar.P(1, 2), planar.P(4, -2)), Options{Name: "l"})
	test.T(t, s.Kind, LineShape)
	test.T(t, s.Options.Name, "l")
	test.T(t, len(s.Points), 2)
	test.Float(t, s.Bounds.X.Lo, 1)
	test.Float(t, s.Bounds.Y.Lo, -2)
	test.Float(t, s.Bounds.Y.Hi, 2)
	test.That(t, s.Path != nil && !s.Path.IsEmpty())
}

func TestCircleShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := FromCircle(geom.NewCircle(planar.P(2, 3), 1.5), Options{})
	test.T(t, s.Kind, CircleShape)
	test.T(t, s.TopLeft, planar.P(0.5, 4.5))
	test.Float(t, s.Radius, 1.5)
	test.Float(t, s.StartAngle, 0)
	test.Float(t, s.EndAngle, 360)
	test.Float(t, s.Bounds.X.Hi, 3.5)
}

func TestArcShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := geom.NewArc(planar.P(0, 0), 2, 0, math.Pi/2)
	s := FromArc(a, Options{})
	test.T(t, s.Kind, ArcShape)
	test.Float(t, s.StartAngle, 0)
	test.Float(t, s.EndAngle, 90)
	test.T(t, s.TopLeft, planar.P(-2, 2))
	// clockwise arcs get their angles swapped
	a = geom.NewArc(planar.P(0, 0), 2, math.Pi/2, -math.Pi/2)
	s = FromArc(a, Options{})
	test.Float(t, s.StartAngle, 0)
	test.Float(t, s.EndAngle, 90)
	test.Float(t, s.Bounds.X.Hi, 2)
	test.Float(t, s.Bounds.Y.Hi, 2)
	// full turn
	a = geom.NewArc(planar.P(0, 0), 1, 0, 2*math.Pi)
	s = FromArc(a, Options{})
	test.Float(t, s.EndAngle-s.StartAngle, 360)
	test.That(t, !s.Path.IsEmpty())
}

func TestPolylineShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := geom.Polyline{Points: []planar.Pair{planar.P(0, 0), planar.P(1, 1), planar.P(2, 0)}}
	s := FromPolyline(pl, Options{})
	test.T(t, s.Kind, PolylineShape)
	test.T(t, len(s.Points), 3)
	pl.Points[1] = planar.P(5, 5)
	test.T(t, s.Points[1], planar.P(1, 1))
	test.Float(t, s.Bounds.Y.Hi, 1)
}

func TestRouteShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := route.Start(0).
		Line(planar.P(0, 0)).
		Arc(planar.P(10, 0), 10).
		Line(planar.P(20, 10)).
		Line(planar.P(20, 30)).
		End()
	test.That(t, err == nil)
	s := FromRoute(r, Options{Name: "r"})
	test.T(t, s.Kind, GroupShape)
	test.T(t, len(s.Children), 3)
	test.T(t, s.Children[0].Kind, LineShape)
	test.T(t, s.Children[1].Kind, LineShape)
	test.T(t, s.Children[2].Kind, ArcShape)
	test.T(t, s.Children[2].Options.Name, "r")
	test.Float(t, s.Position.X(), 0)
	test.Float(t, s.Position.Y(), 0)
	test.Float(t, s.Bounds.X.Hi, 20)
	test.Float(t, s.Bounds.Y.Hi, 30)
	test.That(t, !s.Path.IsEmpty())
}

func TestToRenderable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := ToRenderable(geom.NewLine(planar.P(0, 0), planar.P(1, 0)), Options{})
	test.That(t, err == nil)
	test.T(t, s.Kind, LineShape)
	s, err = ToRenderable(geom.Polyline{}, Options{})
	test.That(t, err == nil)
	test.T(t, s.Kind, PolylineShape)
	r := route.New(0, []route.CriticalPoint{route.LinePoint(planar.P(0, 0)), route.LinePoint(planar.P(3, 4))})
	s, err = ToRenderable(r, Options{})
	test.That(t, err == nil)
	test.T(t, len(s.Children), 1)
	_, err = ToRenderable(planar.P(1, 1), Options{})
	test.That(t, errors.Is(err, ErrUnsupported))
	var c *geom.Circle
	_, err = ToRenderable(c, Options{})
	test.That(t, errors.Is(err, ErrUnsupported))
}
