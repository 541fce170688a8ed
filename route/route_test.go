package route

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/planar"
	"github.com/npillmayer/planar/geom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linePoints(pts ...planar.Pair) []CriticalPoint {
	cps := make([]CriticalPoint, len(pts))
	for i, pt := range pts {
		cps[i] = LinePoint(pt)
	}
	return cps
}

func TestLineRouteLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := New(0, linePoints(planar.P(0, 0), planar.P(3, 0), planar.P(10, 0), planar.P(10.5, 0)))
	assert.Equal(t, 3, r.SegmentCount())
	assert.Equal(t, 10.5, r.Length())
	assert.Equal(t, 10.5, r.Mile())
	for i := 0; i < r.SegmentCount(); i++ {
		assert.False(t, r.IsInvalid(i), "segment %d", i)
	}
	// a zig-zag chain turns off its tangent, but its length is still exact
	pts := []planar.Pair{planar.P(0, 0), planar.P(3, 0), planar.P(3, 4), planar.P(0, 4), planar.P(-1.5, 7.25)}
	r = New(0, linePoints(pts...))
	sum := 0.0
	for i := 1; i < len(pts); i++ {
		sum += pts[i-1].Distance(pts[i])
	}
	assert.Equal(t, sum, r.Length())
	assert.False(t, r.IsInvalid(0))
	assert.True(t, r.IsInvalid(1))
	a, ok := r.EntryAngle(2)
	assert.True(t, ok)
	assert.InDelta(t, math.Pi/2, a, 1e-12)
	// offsetting lines does not change their length
	r.Offset(2.5)
	assert.Equal(t, sum, r.Length())
}

func TestSinglePointRoute(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := New(0, linePoints(planar.P(1, 1)))
	assert.Equal(t, 0, r.SegmentCount())
	assert.Empty(t, r.CriticalPoints())
	assert.Equal(t, 0.0, r.Length())
	assert.Equal(t, 0.0, r.Mile())
	assert.Equal(t, 0, r.Segments().Count())
	_, ok := r.EntryAngle(0)
	assert.False(t, ok)
}

// leftArcRoute runs east, turns left by 90° with radius 10, then runs north.
func leftArcRoute(t *testing.T) *Route {
	r, err := Start(0).
		Line(planar.P(0, 0)).
		Arc(planar.P(10, 0), 10).
		Line(planar.P(20, 10)).
		Line(planar.P(20, 30)).
		End()
	require.NoError(t, err)
	return r
}

func TestArcRoute(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := leftArcRoute(t)
	for i := 0; i < r.SegmentCount(); i++ {
		assert.False(t, r.IsInvalid(i), "segment %d", i)
	}
	assert.InDelta(t, 5*math.Pi, r.SegmentMile(1), 1e-9)
	assert.InDelta(t, 30+5*math.Pi, r.Mile(), 1e-9)
	exit, _ := r.EntryAngle(2)
	assert.InDelta(t, math.Pi/2, exit, 1e-9)
	segs := r.Segments()
	require.Len(t, segs.Arcs, 1)
	require.Len(t, segs.Lines, 2)
	diff(t, planar.P(10, 10), segs.Arcs[0].Center, approx)
	assert.InDelta(t, 10.0, segs.Arcs[0].Radius, 1e-9)

	r.Offset(1)
	assert.InDelta(t, 4.5*math.Pi, r.SegmentLength(1), 1e-9)
	assert.InDelta(t, 30+4.5*math.Pi, r.Length(), 1e-9)
	assert.InDelta(t, 30+5*math.Pi, r.Mile(), 1e-9, "mileage ignores the offset")
	segs = r.Segments()
	assert.InDelta(t, 9.0, segs.Arcs[0].Radius, 1e-9, "left offset shrinks a left turn")
	diff(t, geom.NewLine(planar.P(0, 1), planar.P(10, 1)), segs.Lines[0], approx)
	diff(t, geom.NewLine(planar.P(19, 10), planar.P(19, 30)), segs.Lines[1], approx)
}

func TestRightArcRoute(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Start(0).
		Line(planar.P(0, 0)).
		Arc(planar.P(10, 0), 10).
		Line(planar.P(20, -10)).
		Line(planar.P(20, -30)).
		Offset(1).
		End()
	require.NoError(t, err)
	for i := 0; i < r.SegmentCount(); i++ {
		assert.False(t, r.IsInvalid(i), "segment %d", i)
	}
	exit, _ := r.EntryAngle(2)
	assert.InDelta(t, -math.Pi/2, exit, 1e-9)
	assert.InDelta(t, 5.5*math.Pi, r.SegmentLength(1), 1e-9)
	segs := r.Segments()
	require.Len(t, segs.Arcs, 1)
	diff(t, planar.P(10, -10), segs.Arcs[0].Center, approx)
	assert.InDelta(t, 11.0, segs.Arcs[0].Radius, 1e-9, "left offset grows a right turn")
	assert.Less(t, segs.Arcs[0].SweepAngle, 0.0)
}

func TestInvalidArc(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Start(0).
		Line(planar.P(0, 0)).
		Arc(planar.P(10, 0), 2).
		Line(planar.P(20, 10)).
		Line(planar.P(30, 20)).
		End()
	require.NoError(t, err)
	assert.True(t, r.IsInvalid(1), "radius too small for the chord")
	assert.False(t, r.IsInvalid(2), "route continues along the fallback line")
	assert.InDelta(t, math.Sqrt(200), r.SegmentMile(1), 1e-9)
	segs := r.Segments()
	assert.Len(t, segs.Lines, 3)
	assert.Empty(t, segs.Arcs)
	// an arc leaving in the wrong direction is invalid as well
	r, _ = Start(math.Pi).
		Arc(planar.P(10, 0), 10).
		Line(planar.P(20, 10)).
		End()
	assert.True(t, r.IsInvalid(0))
}

func TestRouteTransforms(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mile := leftArcRoute(t).Mile()
	r := leftArcRoute(t).Move(5, -5)
	assert.InDelta(t, mile, r.Mile(), 1e-9)
	diff(t, planar.P(15, 5), r.Segments().Arcs[0].Center, approx)

	r = leftArcRoute(t).RotateAround(planar.Origin, math.Pi/2)
	assert.InDelta(t, math.Pi/2, r.StartAngle(), 1e-12)
	assert.InDelta(t, mile, r.Mile(), 1e-9)
	diff(t, planar.P(-10, 10), r.Segments().Arcs[0].Center, approx)

	for _, r := range []*Route{
		leftArcRoute(t).MirrorY(0),
		leftArcRoute(t).MirrorX(3),
		leftArcRoute(t).Mirror(geom.NewLine(planar.P(0, 5), planar.P(1, 6))),
	} {
		for i := 0; i < r.SegmentCount(); i++ {
			assert.False(t, r.IsInvalid(i), "segment %d", i)
		}
		assert.InDelta(t, mile, r.Mile(), 1e-9)
		assert.Less(t, r.Segments().Arcs[0].SweepAngle, 0.0, "mirrored left turn turns right")
	}
}

func TestRouteMileage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := Start(0).StartMile(100).Line(planar.P(0, 0)).Line(planar.P(25, 0)).End()
	require.NoError(t, err)
	assert.Equal(t, 100.0, r.StartMile())
	assert.Equal(t, 125.0, r.EndMile())
	r.SetStartMile(0)
	assert.Equal(t, 25.0, r.EndMile())
	r.Offset(1).Offset(1)
	assert.Equal(t, 2.0, r.LateralOffset())
	cps := r.CriticalPoints()
	cps[0].Point = planar.P(-100, 0)
	assert.Equal(t, 25.0, r.Mile(), "critical points are copied")
}

func TestBuilderErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := Start(0).Line(planar.Origin).Arc(planar.P(1, 0), -1).Line(planar.P(2, 0)).End()
	assert.True(t, errors.Is(err, ErrInvalidRadius))
	_, err = Start(0).Ease(planar.Origin, 0, 10).Line(planar.P(2, 0)).End()
	assert.True(t, errors.Is(err, ErrInvalidRadius))
	_, err = Start(0).Ease(planar.Origin, Infinite, 0).Line(planar.P(2, 0)).End()
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = Start(0).Line(planar.Origin).End()
	assert.True(t, errors.Is(err, ErrTooFewPoints))
}

func TestCriticalPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cp := LinePoint(planar.P(1, 2))
	assert.Equal(t, LineSegment, cp.Type)
	assert.Equal(t, Infinite, cp.Radius)
	_, err := ArcPoint(planar.P(1, 2), 0)
	assert.Error(t, err)
	cp, err = EasePoint(planar.P(1, 2), Infinite, 50)
	assert.NoError(t, err)
	assert.Equal(t, "ease", cp.Type.String())
	_, err = EasePoint(planar.P(1, 2), -2, 50)
	assert.True(t, errors.Is(err, ErrInvalidRadius))
}

func TestSegmentsBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := leftArcRoute(t).Segments().Bounds()
	assert.InDelta(t, 0.0, b.X.Lo, 1e-9)
	assert.InDelta(t, 20.0, b.X.Hi, 1e-9)
	assert.InDelta(t, 0.0, b.Y.Lo, 1e-9)
	assert.InDelta(t, 30.0, b.Y.Hi, 1e-9)
	assert.True(t, Segments{}.Bounds().IsEmpty())
}
